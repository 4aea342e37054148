package profile

import (
	"math"
	"sort"

	"github.com/ledren/scoutbook/internal/models"
)

// displayFloorPct is the display floor: named lines under it fold into the
// "Other" row instead of cluttering the table.
const displayFloorPct = 1.0

// firstMoveBuckets splits the scouted player's Black games by White's first
// move. Anything outside the list lands in "other".
var firstMoveBuckets = []string{"e4", "d4", "c4", "Nf3"}

func (b *Builder) openingTables(games []models.NormalizedGame) []models.OpeningTable {
	var white, black []models.NormalizedGame
	vsFirst := map[string][]models.NormalizedGame{}

	for _, g := range games {
		switch g.PlayedAs {
		case models.ColorWhite:
			white = append(white, g)
		case models.ColorBlack:
			black = append(black, g)
			vsFirst[firstMoveBucket(g.MovesSAN)] = append(vsFirst[firstMoveBucket(g.MovesSAN)], g)
		}
	}

	var tables []models.OpeningTable
	if t := b.table(models.ColorWhite, "", white); t != nil {
		tables = append(tables, *t)
	}
	if t := b.table(models.ColorBlack, "", black); t != nil {
		tables = append(tables, *t)
	}
	for _, bucket := range append(append([]string(nil), firstMoveBuckets...), "other") {
		if t := b.table(models.ColorBlack, bucket, vsFirst[bucket]); t != nil {
			tables = append(tables, *t)
		}
	}
	return tables
}

func firstMoveBucket(moves []string) string {
	if len(moves) == 0 {
		return "other"
	}
	for _, m := range firstMoveBuckets {
		if moves[0] == m {
			return m
		}
	}
	return "other"
}

// table counts opening classifications for one slice of games. Nil when the
// slice is empty; otherwise the top lines by frequency, ties broken by name,
// with the remainder and any sub-floor lines folded into "Other".
func (b *Builder) table(color, vsFirstMove string, games []models.NormalizedGame) *models.OpeningTable {
	if len(games) == 0 {
		return nil
	}

	type lineKey struct{ eco, name string }
	counts := map[lineKey]int{}
	for _, g := range games {
		m := b.book.Classify(g.MovesSAN, b.opts.OpeningMaxPly)
		counts[lineKey{m.ECO, m.Name}]++
	}

	keys := make([]lineKey, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if counts[keys[i]] != counts[keys[j]] {
			return counts[keys[i]] > counts[keys[j]]
		}
		return keys[i].name < keys[j].name
	})

	t := &models.OpeningTable{Color: color, VsFirstMove: vsFirstMove, Total: len(games)}
	other := 0
	for i, k := range keys {
		p := pct(counts[k], t.Total)
		if i >= b.opts.TableLines || p < displayFloorPct {
			other += counts[k]
			continue
		}
		t.Lines = append(t.Lines, models.OpeningLine{
			ECO:     k.eco,
			Name:    k.name,
			Count:   counts[k],
			Percent: p,
		})
	}
	if other > 0 {
		t.Lines = append(t.Lines, models.OpeningLine{
			Name:    "Other",
			Count:   other,
			Percent: pct(other, t.Total),
		})
	}
	return t
}

func pct(n, total int) float64 {
	if total == 0 {
		return 0
	}
	return round1(float64(n) / float64(total) * 100)
}

func round1(f float64) float64 {
	return math.Round(f*10) / 10
}
