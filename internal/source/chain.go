package source

import (
	"context"

	"github.com/ledren/scoutbook/internal/errors"
	"github.com/ledren/scoutbook/internal/logger"
	"github.com/ledren/scoutbook/internal/models"
)

// Chain tries the primary source and falls back when it is unavailable or
// empty. An unavailable event store (missing table, missing column) is an
// expected deployment state, not an error; anything else from the primary
// propagates as a hard failure.
type Chain struct {
	primary  GameSource
	fallback GameSource
}

// NewChain creates a Chain preferring primary.
func NewChain(primary, fallback GameSource) *Chain {
	return &Chain{primary: primary, fallback: fallback}
}

func (c *Chain) Name() string { return c.primary.Name() + "+" + c.fallback.Name() }

func (c *Chain) Load(ctx context.Context, q models.GameQuery) ([]models.NormalizedGame, error) {
	log := logger.FromContext(ctx).WithPrefix("source-chain")

	games, err := c.primary.Load(ctx, q)
	switch {
	case err != nil && errors.IsUnavailable(err):
		log.Info("%s unavailable, falling back to %s: %v", c.primary.Name(), c.fallback.Name(), err)
	case err != nil:
		return nil, err
	case len(games) == 0:
		log.Debug("%s returned no games, falling back to %s", c.primary.Name(), c.fallback.Name())
	default:
		return games, nil
	}

	return c.fallback.Load(ctx, q)
}
