package extract

import (
	"strings"
	"time"

	"github.com/ledren/scoutbook/internal/models"
)

// orientResult classifies the Result tag from the player's point of view.
func orientResult(result, playedAs string) string {
	white := playedAs == models.ColorWhite
	switch result {
	case "1-0":
		if white {
			return models.ResultWin
		}
		return models.ResultLoss
	case "0-1":
		if white {
			return models.ResultLoss
		}
		return models.ResultWin
	case "1/2-1/2":
		return models.ResultDraw
	default:
		return models.ResultUnknown
	}
}

var knownSpeeds = []string{
	models.SpeedBullet,
	models.SpeedBlitz,
	models.SpeedRapid,
	models.SpeedClassical,
	models.SpeedCorrespondence,
}

// inferSpeed reads the Speed tag when present, otherwise looks for a
// time-control keyword in the Event tag. Returns "" when neither carries a
// signal; unknown is not the same as any concrete bucket.
func inferSpeed(tags map[string]string) string {
	if s := strings.ToLower(strings.TrimSpace(tags["Speed"])); s != "" {
		for _, known := range knownSpeeds {
			if s == known {
				return known
			}
		}
	}
	event := strings.ToLower(tags["Event"])
	for _, known := range knownSpeeds {
		if strings.Contains(event, known) {
			return known
		}
	}
	return ""
}

// inferRated reads the Rated tag when present, otherwise looks for
// "rated"/"casual" in the Event tag. Returns nil when neither carries a
// signal; unknown must not collapse into false.
func inferRated(tags map[string]string) *bool {
	switch strings.ToLower(strings.TrimSpace(tags["Rated"])) {
	case "true", "yes", "1":
		return boolPtr(true)
	case "false", "no", "0":
		return boolPtr(false)
	}
	event := strings.ToLower(tags["Event"])
	// "unrated" contains "rated", so the negative checks come first.
	if strings.Contains(event, "unrated") || strings.Contains(event, "casual") {
		return boolPtr(false)
	}
	if strings.Contains(event, "rated") {
		return boolPtr(true)
	}
	return nil
}

// inferDate prefers UTCDate (+UTCTime) and falls back to the Date tag.
// Malformed or placeholder values ("????.??.??") yield nil.
func inferDate(tags map[string]string) *time.Time {
	if d := tags["UTCDate"]; d != "" {
		if t := tags["UTCTime"]; t != "" {
			if ts, err := time.Parse("2006.01.02 15:04:05", d+" "+t); err == nil {
				return &ts
			}
		}
		if ts, err := time.Parse("2006.01.02", d); err == nil {
			return &ts
		}
	}
	if d := tags["Date"]; d != "" {
		if ts, err := time.Parse("2006.01.02", d); err == nil {
			return &ts
		}
	}
	return nil
}

func boolPtr(b bool) *bool { return &b }
