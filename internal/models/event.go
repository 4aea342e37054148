package models

import "time"

// MoveEvent is one per-ply row from the external move event store. The
// outcome flags are pre-aggregated per game and repeated on every row.
//
// IsOpponentMove marks plies made by the scouted player (the "opponent"
// being modeled); rows with it unset are the other side's replies. Ply
// numbering may be 0- or 1-based depending on the writer; the reconstructor
// infers the convention per game and normalizes to 1-based.
type MoveEvent struct {
	GameID         string    `json:"game_id"`
	PlayedAt       time.Time `json:"played_at"`
	Speed          string    `json:"speed,omitempty"`
	Rated          *bool     `json:"rated,omitempty"`
	Ply            int       `json:"ply"`
	IsOpponentMove bool      `json:"is_opponent_move"`
	SAN            string    `json:"san"`
	UCI            string    `json:"uci"`
	Win            int       `json:"win"`
	Loss           int       `json:"loss"`
	Draw           int       `json:"draw"`
}
