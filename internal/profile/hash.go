package profile

import (
	"crypto/sha256"
	"encoding/hex"
	"sort"

	"github.com/ledren/scoutbook/internal/models"
)

// ContentHash fingerprints the set of games behind a profile. The caller
// compares it across runs to tell whether underlying data changed; input
// order never affects it.
func ContentHash(games []models.NormalizedGame) string {
	ids := make([]string, 0, len(games))
	for _, g := range games {
		ids = append(ids, g.ID)
	}
	sort.Strings(ids)

	h := sha256.New()
	for _, id := range ids {
		h.Write([]byte(id))
		h.Write([]byte{0})
	}
	return hex.EncodeToString(h.Sum(nil))
}
