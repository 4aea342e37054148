// Package openings classifies move sequences against a static opening table.
package openings

import "strings"

// Entry is one opening line: an ECO code, a display name, and the SAN move
// sequence that defines it.
type Entry struct {
	ECO   string
	Name  string
	Moves []string
}

// Match is the classification result. A sequence with no matching entry
// yields {ECO: "", Name: "Unknown"}.
type Match struct {
	ECO  string `json:"eco,omitempty"`
	Name string `json:"name"`
}

// Unknown is returned when no entry matches.
var Unknown = Match{Name: "Unknown"}

// Book holds an immutable opening table. Construct one at process start and
// pass it by reference; it is safe for concurrent use.
type Book struct {
	entries []Entry
}

// NewBook builds a Book from explicit entries. Entry order is significant:
// when two entries match with the same (maximal) length, the one listed
// first wins, which keeps classification deterministic.
func NewBook(entries []Entry) *Book {
	owned := make([]Entry, len(entries))
	copy(owned, entries)
	return &Book{entries: owned}
}

// DefaultBook returns a Book over the built-in opening table.
func DefaultBook() *Book {
	return NewBook(defaultTable)
}

// ParseMoves splits a space-separated SAN line into tokens. Convenience for
// table literals.
func ParseMoves(line string) []string {
	return strings.Fields(line)
}

// Classify matches the move prefix against the table, considering at most
// maxPly plies. Among matching entries the longest one wins; equal lengths
// resolve to the entry listed first.
func (b *Book) Classify(moves []string, maxPly int) Match {
	if maxPly > 0 && len(moves) > maxPly {
		moves = moves[:maxPly]
	}

	best := Unknown
	bestLen := 0
	for _, e := range b.entries {
		if len(e.Moves) == 0 || len(e.Moves) > len(moves) || len(e.Moves) <= bestLen {
			continue
		}
		if isPrefix(e.Moves, moves) {
			best = Match{ECO: e.ECO, Name: e.Name}
			bestLen = len(e.Moves)
		}
	}
	return best
}

// Len returns the number of entries in the table.
func (b *Book) Len() int { return len(b.entries) }

func isPrefix(prefix, moves []string) bool {
	for i, m := range prefix {
		if moves[i] != m {
			return false
		}
	}
	return true
}
