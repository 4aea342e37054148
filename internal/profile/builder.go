package profile

import (
	"context"
	"sort"
	"time"

	"github.com/ledren/scoutbook/internal/logger"
	"github.com/ledren/scoutbook/internal/models"
	"github.com/ledren/scoutbook/internal/openings"
)

// Options tune how a profile is segmented and summarized.
type Options struct {
	// SegmentMinGames is the minimum game count for a per-speed segment
	// to appear at all. Buckets below it are omitted, not reported empty.
	SegmentMinGames int
	// SmallSampleMin flags segments below this count for the UI.
	SmallSampleMin int
	// BranchDepth is the repertoire tree depth in plies.
	BranchDepth int
	// BranchMinCount prunes branch nodes whose sample, or whose best
	// continuation, falls below it.
	BranchMinCount int
	// OpeningMaxPly bounds opening classification.
	OpeningMaxPly int
	// TableLines is the number of named rows per opening table before the
	// remainder folds into "Other".
	TableLines int
}

func (o Options) withDefaults() Options {
	if o.SegmentMinGames <= 0 {
		o.SegmentMinGames = 100
	}
	if o.SmallSampleMin <= 0 {
		o.SmallSampleMin = 50
	}
	if o.BranchDepth <= 0 {
		o.BranchDepth = 10
	}
	if o.BranchMinCount <= 0 {
		o.BranchMinCount = 10
	}
	if o.OpeningMaxPly <= 0 {
		o.OpeningMaxPly = 24
	}
	if o.TableLines <= 0 {
		o.TableLines = 5
	}
	return o
}

// segmentSpeeds are the time-control buckets that get their own segment.
// Anything else (correspondence, unknown) still counts toward "all".
var segmentSpeeds = []string{
	models.SpeedBullet,
	models.SpeedBlitz,
	models.SpeedRapid,
	models.SpeedClassical,
}

// Builder turns a set of normalized games into a profile document.
type Builder struct {
	book *openings.Book
	opts Options
}

// NewBuilder creates a Builder classifying against the given opening book.
func NewBuilder(book *openings.Book, opts Options) *Builder {
	return &Builder{book: book, opts: opts.withDefaults()}
}

// Build produces the profile document for one player from the games that
// passed the active filters. Each segment is a pure function of its slice of
// the input; an empty input still yields a valid document with an "all"
// segment of zero games.
func (b *Builder) Build(ctx context.Context, platform, username string, games []models.NormalizedGame) *models.ProfileDocument {
	log := logger.FromContext(ctx).WithPrefix("profile")

	doc := &models.ProfileDocument{
		Version:     models.ProfileVersion,
		GeneratedAt: time.Now().UTC(),
		Platform:    platform,
		Username:    username,
		GameCount:   len(games),
		ContentHash: ContentHash(games),
		Segments:    map[string]*models.SegmentProfile{},
	}

	doc.Segments["all"] = b.buildSegment("all", games)

	bySpeed := map[string][]models.NormalizedGame{}
	for _, g := range games {
		if g.Speed == "" {
			continue
		}
		bySpeed[g.Speed] = append(bySpeed[g.Speed], g)
	}
	for _, speed := range segmentSpeeds {
		slice := bySpeed[speed]
		if len(slice) == 0 {
			continue
		}
		if len(slice) < b.opts.SegmentMinGames {
			log.Debug("omitting segment %s: %d games below threshold %d", speed, len(slice), b.opts.SegmentMinGames)
			continue
		}
		doc.Segments[speed] = b.buildSegment(speed, slice)
	}

	log.Info("built profile: user=%s, games=%d, segments=%d", username, len(games), len(doc.Segments))
	return doc
}

func (b *Builder) buildSegment(name string, games []models.NormalizedGame) *models.SegmentProfile {
	seg := &models.SegmentProfile{
		Name:          name,
		GameCount:     len(games),
		SmallSample:   len(games) < b.opts.SmallSampleMin,
		Summary:       summarize(games),
		OpeningTables: b.openingTables(games),
		Repertoire:    b.repertoire(games),
		Style:         aggregateStyle(games),
		Results:       resultsByColor(games),
	}
	return seg
}

func summarize(games []models.NormalizedGame) models.DatasetSummary {
	s := models.DatasetSummary{SpeedCounts: map[string]int{}}
	for _, g := range games {
		if g.Speed != "" {
			s.SpeedCounts[g.Speed]++
		}
		switch g.PlayedAs {
		case models.ColorWhite:
			s.WhiteGames++
		case models.ColorBlack:
			s.BlackGames++
		}
		if g.PlayedAt != nil {
			if s.From == nil || g.PlayedAt.Before(*s.From) {
				t := *g.PlayedAt
				s.From = &t
			}
			if s.To == nil || g.PlayedAt.After(*s.To) {
				t := *g.PlayedAt
				s.To = &t
			}
		}
	}

	speeds := make([]string, 0, len(s.SpeedCounts))
	for speed := range s.SpeedCounts {
		speeds = append(speeds, speed)
	}
	sort.Strings(speeds)
	best := 0
	for _, speed := range speeds {
		if s.SpeedCounts[speed] > best {
			best = s.SpeedCounts[speed]
			s.DominantSpeed = speed
		}
	}
	return s
}

func aggregateStyle(games []models.NormalizedGame) models.StyleSummary {
	var sum models.StyleSummary
	var kingside, queenside, castled, castleMoveSum int
	var queenTrades, kStorms, qStorms int
	var pawnMoves, captures, checks int

	for _, g := range games {
		if g.Style == nil {
			continue
		}
		sum.Games++
		f := g.Style
		switch f.CastleSide {
		case "K":
			kingside++
		case "Q":
			queenside++
		}
		if f.CastleMove > 0 {
			castled++
			castleMoveSum += f.CastleMove
		}
		if f.QueenTradeByMove20 {
			queenTrades++
		}
		if f.KingsidePawnStorm {
			kStorms++
		}
		if f.QueensidePawnStorm {
			qStorms++
		}
		pawnMoves += f.PawnMovesFirst10
		captures += f.CapturesFirst15
		checks += f.ChecksFirst15
	}

	if sum.Games == 0 {
		return sum
	}
	n := float64(sum.Games)
	sum.CastleKingsidePct = pct(kingside, sum.Games)
	sum.CastleQueensidePct = pct(queenside, sum.Games)
	sum.NoCastlePct = pct(sum.Games-kingside-queenside, sum.Games)
	if castled > 0 {
		sum.AvgCastleMove = round1(float64(castleMoveSum) / float64(castled))
	}
	sum.QueenTradeByMove20Pct = pct(queenTrades, sum.Games)
	sum.KingsideStormPct = pct(kStorms, sum.Games)
	sum.QueensideStormPct = pct(qStorms, sum.Games)
	sum.AvgPawnMovesFirst10 = round1(float64(pawnMoves) / n)
	sum.AvgCapturesFirst15 = round1(float64(captures) / n)
	sum.AvgChecksFirst15 = round1(float64(checks) / n)
	return sum
}

func resultsByColor(games []models.NormalizedGame) map[string]models.ColorResults {
	out := map[string]models.ColorResults{}
	for _, g := range games {
		r := out[g.PlayedAs]
		r.Games++
		switch g.Result {
		case models.ResultWin:
			r.Wins++
		case models.ResultLoss:
			r.Losses++
		case models.ResultDraw:
			r.Draws++
		default:
			r.Unknown++
		}
		out[g.PlayedAs] = r
	}
	for color, r := range out {
		known := r.Wins + r.Losses + r.Draws
		if known > 0 {
			r.WinRate = pct(r.Wins, known)
		}
		out[color] = r
	}
	return out
}
