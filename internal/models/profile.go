package models

import "time"

// ProfileVersion is bumped whenever the profile document shape changes.
const ProfileVersion = 2

// ProfileDocument is the versioned scouting report for one player, keyed by
// time-control segment.
type ProfileDocument struct {
	Version     int                        `json:"version"`
	GeneratedAt time.Time                  `json:"generated_at"`
	Platform    string                     `json:"platform"`
	Username    string                     `json:"username"`
	GameCount   int                        `json:"game_count"`
	ContentHash string                     `json:"content_hash"`
	Segments    map[string]*SegmentProfile `json:"segments"`
}

// SegmentProfile is the report for one slice of games. A segment is a pure
// function of its input slice; segments never reference each other.
type SegmentProfile struct {
	Name          string                  `json:"name"`
	GameCount     int                     `json:"game_count"`
	SmallSample   bool                    `json:"small_sample,omitempty"`
	Summary       DatasetSummary          `json:"summary"`
	OpeningTables []OpeningTable          `json:"opening_tables"`
	Repertoire    map[string]*BranchNode  `json:"repertoire"` // keyed by color
	Style         StyleSummary            `json:"style"`
	Results       map[string]ColorResults `json:"results"` // keyed by color
}

// DatasetSummary describes the games that fed a segment.
type DatasetSummary struct {
	From          *time.Time     `json:"from,omitempty"`
	To            *time.Time     `json:"to,omitempty"`
	SpeedCounts   map[string]int `json:"speed_counts"`
	WhiteGames    int            `json:"white_games"`
	BlackGames    int            `json:"black_games"`
	DominantSpeed string         `json:"dominant_speed,omitempty"`
}

// OpeningTable lists the most frequent openings for one slice of a segment
// (by color, and for Black further by White's first move).
type OpeningTable struct {
	Color       string        `json:"color"`
	VsFirstMove string        `json:"vs_first_move,omitempty"`
	Total       int           `json:"total"`
	Lines       []OpeningLine `json:"lines"`
}

// OpeningLine is one row of an opening table. Percent is relative to the
// table's own total, not the segment total.
type OpeningLine struct {
	ECO     string  `json:"eco,omitempty"`
	Name    string  `json:"name"`
	Count   int     `json:"count"`
	Percent float64 `json:"percent"`
}

// BranchNode is one node of a repertoire tree: the distribution of next
// moves from a move prefix. Next follows the single most frequent
// continuation, so the tree is one annotated main line.
type BranchNode struct {
	Ply    int          `json:"ply"`
	Prefix []string     `json:"prefix"`
	Total  int          `json:"total"`
	Moves  []BranchMove `json:"moves"`
	Next   *BranchNode  `json:"next,omitempty"`
}

// BranchMove is one candidate continuation at a branch node.
type BranchMove struct {
	SAN     string  `json:"san"`
	Count   int     `json:"count"`
	Percent float64 `json:"percent"`
}

// StyleSummary aggregates per-game style features across a segment.
type StyleSummary struct {
	Games                 int     `json:"games"`
	CastleKingsidePct     float64 `json:"castle_kingside_pct"`
	CastleQueensidePct    float64 `json:"castle_queenside_pct"`
	NoCastlePct           float64 `json:"no_castle_pct"`
	AvgCastleMove         float64 `json:"avg_castle_move"` // over games that castled
	QueenTradeByMove20Pct float64 `json:"queen_trade_by_move_20_pct"`
	KingsideStormPct      float64 `json:"kingside_storm_pct"`
	QueensideStormPct     float64 `json:"queenside_storm_pct"`
	AvgPawnMovesFirst10   float64 `json:"avg_pawn_moves_first_10"`
	AvgCapturesFirst15    float64 `json:"avg_captures_first_15"`
	AvgChecksFirst15      float64 `json:"avg_checks_first_15"`
}

// ColorResults tallies outcomes for games played with one color.
type ColorResults struct {
	Games   int     `json:"games"`
	Wins    int     `json:"wins"`
	Losses  int     `json:"losses"`
	Draws   int     `json:"draws"`
	Unknown int     `json:"unknown"`
	WinRate float64 `json:"win_rate"` // over games with a known result
}
