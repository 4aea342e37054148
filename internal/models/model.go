package models

import "time"

// MoveStats is a frequency and outcome tally for one move played from one
// position by one side. Counters only ever increase.
type MoveStats struct {
	UCI   string `json:"uci"`
	SAN   string `json:"san"`
	Count int    `json:"count"`
	Win   int    `json:"win"`
	Loss  int    `json:"loss"`
	Draw  int    `json:"draw"`
}

// PositionStats maps position key -> move UCI -> tally.
type PositionStats map[string]map[string]*MoveStats

// Total returns the number of times the position was reached, i.e. the sum
// of move counts recorded under the key.
func (p PositionStats) Total(key string) int {
	total := 0
	for _, ms := range p[key] {
		total += ms.Count
	}
	return total
}

// OpponentModel holds the position-indexed move frequencies of one scouted
// player: the moves they made (Opponent) and the moves made against them
// (Counter). Read-only after construction; a rebuild replaces the whole
// value.
type OpponentModel struct {
	BuiltAt       time.Time     `json:"built_at"`
	BuildDuration time.Duration `json:"build_duration"`
	GamesUsed     int           `json:"games_used"`
	MaxGames      int           `json:"max_games"`
	PositionCap   int           `json:"position_cap"`
	Opponent      PositionStats `json:"opponent"`
	Counter       PositionStats `json:"counter"`
}

// ModelQueryResult is what simulation callers get for one position.
type ModelQueryResult struct {
	PositionKey   string       `json:"position_key"`
	OpponentMoves []*MoveStats `json:"opponent_moves"`
	OpponentTotal int          `json:"opponent_total"`
	CounterMoves  []*MoveStats `json:"counter_moves"`
	CounterTotal  int          `json:"counter_total"`
	Lookahead     int          `json:"lookahead"`
}

// CacheInfo describes how a model build request was served. Diagnostic
// metadata only.
type CacheInfo struct {
	Hit           bool          `json:"hit"`
	Age           time.Duration `json:"age"`
	GamesUsed     int           `json:"games_used"`
	BuildDuration time.Duration `json:"build_duration"`
}
