package pgn

import (
	"regexp"
	"strings"
)

var tagRe = regexp.MustCompile(`\[(\w+)\s+"([^"]*)"\]`)

// ParseTags extracts PGN tag pairs into a map.
func ParseTags(pgn string) map[string]string {
	out := map[string]string{}
	for _, line := range strings.Split(pgn, "\n") {
		if !strings.HasPrefix(strings.TrimSpace(line), "[") {
			continue
		}
		m := tagRe.FindStringSubmatch(line)
		if len(m) == 3 {
			out[m[1]] = m[2]
		}
	}
	return out
}

var (
	moveNumberRe = regexp.MustCompile(`^\d+\.(\.\.)?$`)
	nagRe        = regexp.MustCompile(`^\$\d+$`)
)

// result markers terminate the movetext
var resultTokens = map[string]bool{
	"1-0":     true,
	"0-1":     true,
	"1/2-1/2": true,
	"*":       true,
}

// Movetext returns the SAN tokens of a PGN body in order, with tag pairs,
// comments, variations, NAGs, move numbers and the result marker stripped.
// Variations are dropped wholesale; only the main line is kept.
func Movetext(pgn string) []string {
	var body strings.Builder
	for _, line := range strings.Split(pgn, "\n") {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "[") || trimmed == "" {
			continue
		}
		body.WriteString(trimmed)
		body.WriteString(" ")
	}

	cleaned := stripDelimited(body.String(), '{', '}')
	cleaned = stripDelimited(cleaned, '(', ')')
	cleaned = strings.ReplaceAll(cleaned, ";", " ")

	var moves []string
	for _, tok := range strings.Fields(cleaned) {
		// "1.e4" style tokens carry the number and the move together.
		if idx := strings.LastIndex(tok, "."); idx >= 0 && idx < len(tok)-1 {
			prefix := tok[:idx+1]
			if moveNumberRe.MatchString(prefix) {
				tok = tok[idx+1:]
			}
		}
		switch {
		case tok == "":
		case moveNumberRe.MatchString(tok):
		case nagRe.MatchString(tok):
		case resultTokens[tok]:
		default:
			moves = append(moves, tok)
		}
	}
	return moves
}

// stripDelimited removes every open..close span, tolerating nesting and an
// unclosed trailing span.
func stripDelimited(s string, open, close byte) string {
	var sb strings.Builder
	depth := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case open:
			depth++
		case close:
			if depth > 0 {
				depth--
			}
		default:
			if depth == 0 {
				sb.WriteByte(s[i])
			}
		}
	}
	return sb.String()
}
