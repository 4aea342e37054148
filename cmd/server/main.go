package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ledren/scoutbook/internal/api"
	"github.com/ledren/scoutbook/internal/config"
	"github.com/ledren/scoutbook/internal/db"
	"github.com/ledren/scoutbook/internal/logger"
	"github.com/ledren/scoutbook/internal/model"
	"github.com/ledren/scoutbook/internal/openings"
	"github.com/ledren/scoutbook/internal/profile"
	"github.com/ledren/scoutbook/internal/repository/sqlite"
	"github.com/ledren/scoutbook/internal/services"
	"github.com/ledren/scoutbook/internal/source"
	"github.com/ledren/scoutbook/internal/worker"
)

func main() {
	cfg := config.Load()

	// Initialize logger
	log := logger.New(
		logger.WithLevel(logger.ParseLevel(cfg.LogLevel)),
		logger.WithColors(true),
	)
	logger.SetDefault(log)

	log.Info("===========================================")
	log.Info("Scoutbook Server Starting")
	log.Info("===========================================")
	log.Info("configuration loaded")
	log.Debug("addr=%s", cfg.Addr)
	log.Debug("db_path=%s", cfg.DBPath)
	log.Debug("log_level=%s", cfg.LogLevel)
	log.Debug("model_cache_ttl=%s", cfg.ModelCacheTTL)
	log.Debug("model_max_games=%d", cfg.ModelMaxGames)
	log.Debug("model_page_size=%d", cfg.ModelPageSize)
	log.Debug("position_cap=%d", cfg.PositionCap)
	log.Debug("segment_min_games=%d", cfg.SegmentMinGames)
	log.Debug("worker_count=%d", cfg.WorkerCount)
	log.Debug("queue_size=%d", cfg.QueueSize)

	// Open database
	database, err := db.Open(cfg.DBPath)
	if err != nil {
		log.Error("failed to open database: %v", err)
		os.Exit(1)
	}
	defer func() {
		log.Debug("closing database connection")
		database.Close()
	}()

	// Repositories over the external stores
	gameRepo := sqlite.NewGameRepository(database.DB)
	eventRepo := sqlite.NewMoveEventRepository(database.DB)

	// Game loading: events first, PGN parsing as fallback
	games := source.NewChain(
		source.NewEventSource(eventRepo),
		source.NewPGNSource(gameRepo, cfg.ModelPageSize),
	)

	// Model and profile machinery
	modelCache := model.NewCache(
		model.NewBuilder(gameRepo, cfg.ModelPageSize, cfg.PositionCap),
		cfg.ModelCacheTTL,
	)
	profileBuilder := profile.NewBuilder(openings.DefaultBook(), profile.Options{
		SegmentMinGames: cfg.SegmentMinGames,
		SmallSampleMin:  cfg.SmallSampleMin,
		BranchDepth:     cfg.BranchDepth,
		BranchMinCount:  cfg.BranchMinCount,
		OpeningMaxPly:   cfg.OpeningMaxPly,
	})

	scoutService := services.NewScoutService(games, profileBuilder, modelCache, 0)

	rebuildPool := worker.NewPool(cfg.WorkerCount, cfg.QueueSize)

	srv := &api.Server{
		Scout:       scoutService,
		RebuildPool: rebuildPool,
	}

	ctx, cancel := context.WithCancel(context.Background())
	rebuildPool.Start(ctx)

	// Configure HTTP server
	httpServer := &http.Server{
		Addr:         cfg.Addr,
		Handler:      srv.Routes(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start HTTP server
	go func() {
		log.Info("HTTP server listening on %s", cfg.Addr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("HTTP server error: %v", err)
			os.Exit(1)
		}
	}()

	// Wait for shutdown signal
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	sig := <-stop

	log.Info("received signal %v, initiating graceful shutdown", sig)

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	log.Debug("stopping worker pool")
	cancel()

	log.Debug("shutting down HTTP server")
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server shutdown error: %v", err)
	}

	rebuildPool.Stop()

	log.Info("===========================================")
	log.Info("Scoutbook Server Stopped")
	log.Info("===========================================")
}
