package model

import (
	"math/rand"

	"github.com/ledren/scoutbook/internal/models"
)

// Sampling strategies.
const (
	StrategyProportional = "proportional"
	StrategyRandom       = "random"
)

// SelectMove picks one move from the candidate tallies. Proportional
// sampling weights each candidate by its observed count; random ignores
// counts entirely. An empty candidate list yields nil, never an error —
// "no data for this position" is the common case, not a failure.
func SelectMove(candidates []*models.MoveStats, strategy string, rng *rand.Rand) *models.MoveStats {
	if len(candidates) == 0 {
		return nil
	}

	switch strategy {
	case StrategyRandom:
		return candidates[rng.Intn(len(candidates))]
	default:
		return selectProportional(candidates, rng)
	}
}

// selectProportional draws uniformly from [0, total) and walks the
// candidates subtracting counts until the remainder goes negative. No
// cumulative array needed.
func selectProportional(candidates []*models.MoveStats, rng *rand.Rand) *models.MoveStats {
	total := 0
	for _, c := range candidates {
		total += c.Count
	}
	if total <= 0 {
		return candidates[rng.Intn(len(candidates))]
	}

	r := rng.Intn(total)
	for _, c := range candidates {
		r -= c.Count
		if r < 0 {
			return c
		}
	}
	return candidates[len(candidates)-1]
}
