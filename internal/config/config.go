package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Addr            string
	DBPath          string
	LogLevel        string
	ModelCacheTTL   time.Duration
	ModelMaxGames   int
	ModelPageSize   int
	PositionCap     int
	SegmentMinGames int
	SmallSampleMin  int
	BranchDepth     int
	BranchMinCount  int
	OpeningMaxPly   int
	WorkerCount     int
	QueueSize       int
}

// Load reads configuration from a .env file (if present) and environment
// variables, applying sensible defaults when values are missing or invalid.
func Load() Config {
	// Ignore error so the app still starts when .env is absent in production.
	_ = godotenv.Load()

	return Config{
		Addr:            envOr("ADDR", ":8080"),
		DBPath:          envOr("DB_PATH", "file:scoutbook.db"),
		LogLevel:        envOr("LOG_LEVEL", "INFO"),
		ModelCacheTTL:   envDurationOr("MODEL_CACHE_TTL", 10*time.Minute),
		ModelMaxGames:   envIntOr("MODEL_MAX_GAMES", 2000),
		ModelPageSize:   envIntOr("MODEL_PAGE_SIZE", 500),
		PositionCap:     envIntOr("MODEL_POSITION_CAP", 2_000_000),
		SegmentMinGames: envIntOr("SEGMENT_MIN_GAMES", 100),
		SmallSampleMin:  envIntOr("SMALL_SAMPLE_MIN", 50),
		BranchDepth:     envIntOr("BRANCH_DEPTH", 10),
		BranchMinCount:  envIntOr("BRANCH_MIN_COUNT", 10),
		OpeningMaxPly:   envIntOr("OPENING_MAX_PLY", 24),
		WorkerCount:     envIntOr("WORKER_COUNT", 2),
		QueueSize:       envIntOr("QUEUE_SIZE", 32),
	}
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envIntOr(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
		log.Printf("invalid value for %s=%q, using default %d", key, v, def)
	}
	return def
}

func envDurationOr(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
		log.Printf("invalid value for %s=%q, using default %s", key, v, def)
	}
	return def
}
