package models

import "time"

// Result of a game from the scouted player's point of view.
const (
	ResultWin     = "win"
	ResultLoss    = "loss"
	ResultDraw    = "draw"
	ResultUnknown = "unknown"
)

// Time-control buckets. An empty speed means the source carried no signal.
const (
	SpeedBullet         = "bullet"
	SpeedBlitz          = "blitz"
	SpeedRapid          = "rapid"
	SpeedClassical      = "classical"
	SpeedCorrespondence = "correspondence"
)

const (
	ColorWhite = "white"
	ColorBlack = "black"
)

// Identity names the scouted player in the external stores.
type Identity struct {
	UserID   int64  `json:"user_id"`
	Platform string `json:"platform"`
	Username string `json:"username"`
}

// NormalizedGame is one game reduced to what the engine needs: metadata
// inferred from the PGN tags plus the replayed move sequence. Immutable
// after extraction.
type NormalizedGame struct {
	ID       string         `json:"id"`
	PlayedAt *time.Time     `json:"played_at,omitempty"`
	Speed    string         `json:"speed,omitempty"`
	Rated    *bool          `json:"rated,omitempty"`
	PlayedAs string         `json:"played_as"`
	Result   string         `json:"result"`
	MovesSAN []string       `json:"moves_san"`
	Style    *StyleFeatures `json:"style,omitempty"`

	// Records carries the per-ply replay detail consumed by the model
	// builder. Not part of the serialized document.
	Records []MoveRecord `json:"-"`
}

// MoveRecord is one replayed ply.
type MoveRecord struct {
	Ply      int    // 1-based
	SAN      string
	UCI      string
	FEN      string // position before the move was played
	ByPlayer bool   // true when the scouted player made the move
}

// StyleFeatures are per-game behavioral scalars. Computed once during
// extraction, aggregated across games by the profile builder.
type StyleFeatures struct {
	CastleSide         string `json:"castle_side"` // "K", "Q", or ""
	CastleMove         int    `json:"castle_move"` // full-move number, 0 if never castled
	QueenTradeByMove20 bool   `json:"queen_trade_by_move_20"`
	KingsidePawnStorm  bool   `json:"kingside_pawn_storm"`
	QueensidePawnStorm bool   `json:"queenside_pawn_storm"`
	PawnMovesFirst10   int    `json:"pawn_moves_first_10"`
	CapturesFirst15    int    `json:"captures_first_15"`
	ChecksFirst15      int    `json:"checks_first_15"`
}

// GameRow is a raw row from the external game store.
type GameRow struct {
	ID             int64      `json:"id"`
	PlatformGameID string     `json:"platform_game_id"`
	PGN            string     `json:"pgn"`
	PlayedAt       time.Time  `json:"played_at"`
	EngineStats    *string    `json:"engine_stats,omitempty"`
}

// GameQuery selects games from the external stores. Results are ordered
// newest first and paginated by offset/limit.
type GameQuery struct {
	Identity Identity
	Since    *time.Time
	Until    *time.Time
	Limit    int
	Offset   int
}
