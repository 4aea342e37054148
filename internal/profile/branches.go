package profile

import (
	"sort"

	"github.com/ledren/scoutbook/internal/models"
)

// repertoire builds one branch tree per color the player appeared as. Each
// tree is a single annotated main line: every node lists the full next-move
// distribution at its prefix, then descends only along the most frequent
// continuation.
func (b *Builder) repertoire(games []models.NormalizedGame) map[string]*models.BranchNode {
	byColor := map[string][][]string{}
	for _, g := range games {
		byColor[g.PlayedAs] = append(byColor[g.PlayedAs], g.MovesSAN)
	}

	out := map[string]*models.BranchNode{}
	for color, lines := range byColor {
		if root := b.branch(lines, nil); root != nil {
			out[color] = root
		}
	}
	return out
}

// branch computes the next-move distribution at the given prefix, or nil when
// the node prunes: too small a sample, or no continuation popular enough to
// be worth following.
func (b *Builder) branch(lines [][]string, prefix []string) *models.BranchNode {
	if len(prefix) >= b.opts.BranchDepth {
		return nil
	}

	counts := map[string]int{}
	total := 0
	for _, moves := range lines {
		if len(moves) <= len(prefix) || !hasPrefix(moves, prefix) {
			continue
		}
		counts[moves[len(prefix)]]++
		total++
	}
	if total < b.opts.BranchMinCount {
		return nil
	}

	sans := make([]string, 0, len(counts))
	for san := range counts {
		sans = append(sans, san)
	}
	sort.Slice(sans, func(i, j int) bool {
		if counts[sans[i]] != counts[sans[j]] {
			return counts[sans[i]] > counts[sans[j]]
		}
		return sans[i] < sans[j]
	})
	if counts[sans[0]] < b.opts.BranchMinCount {
		return nil
	}

	node := &models.BranchNode{
		Ply:    len(prefix) + 1,
		Prefix: append([]string(nil), prefix...),
		Total:  total,
	}
	for _, san := range sans {
		node.Moves = append(node.Moves, models.BranchMove{
			SAN:     san,
			Count:   counts[san],
			Percent: pct(counts[san], total),
		})
	}
	node.Next = b.branch(lines, append(node.Prefix, sans[0]))
	return node
}

func hasPrefix(moves, prefix []string) bool {
	if len(moves) < len(prefix) {
		return false
	}
	for i, m := range prefix {
		if moves[i] != m {
			return false
		}
	}
	return true
}
