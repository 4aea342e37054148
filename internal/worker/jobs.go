package worker

import (
	"context"

	"github.com/ledren/scoutbook/internal/logger"
	"github.com/ledren/scoutbook/internal/model"
	"github.com/ledren/scoutbook/internal/services"
)

// RebuildProfileJob regenerates a player's profile in the background, so an
// interactive request never pays for a cold full-history build.
type RebuildProfileJob struct {
	Scout   services.ScoutService
	Request services.ProfileRequest
}

func (j *RebuildProfileJob) Name() string { return "rebuild_profile" }

func (j *RebuildProfileJob) Run(ctx context.Context) error {
	log := logger.FromContext(ctx).WithField("username", j.Request.Identity.Username)
	log.Info("rebuilding profile")

	doc, err := j.Scout.GenerateProfile(ctx, j.Request)
	if err != nil {
		return err
	}
	log.Info("profile rebuilt: games=%d, hash=%s", doc.GameCount, doc.ContentHash[:12])
	return nil
}

// WarmModelJob drops a stale model cache entry and rebuilds it eagerly.
type WarmModelJob struct {
	Cache  *model.Cache
	Params model.BuildParams
}

func (j *WarmModelJob) Name() string { return "warm_model" }

func (j *WarmModelJob) Run(ctx context.Context) error {
	log := logger.FromContext(ctx).WithField("username", j.Params.Identity.Username)
	log.Info("warming model cache")

	j.Cache.Invalidate(j.Params)
	m, _, err := j.Cache.Get(ctx, j.Params)
	if err != nil {
		return err
	}
	log.Info("model warmed: games=%d, positions=%d", m.GamesUsed, len(m.Opponent))
	return nil
}
