package app

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"

	"github.com/fplstats/cleansheets/internal/config"
	"github.com/fplstats/cleansheets/internal/observability"
	"github.com/fplstats/cleansheets/internal/platform/logging"
)

// JobEnv is everything a batch job needs from the bootstrap.
type JobEnv struct {
	Cfg    config.Config
	Logger *logging.Logger
	DB     *sqlx.DB
}

// RunJob wraps a batch job with the shared bootstrap: env file, config,
// logging, observability, database. The job gets a context that is
// cancelled on SIGINT/SIGTERM; a returned error exits non-zero after
// teardown.
func RunJob(name string, run func(ctx context.Context, env JobEnv) error) {
	os.Exit(runJob(name, run))
}

func runJob(name string, run func(ctx context.Context, env JobEnv) error) int {
	// Optional; containerized runs pass real env vars instead.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		logging.NewJSON(logging.LevelInfo).Error("load config", "job", name, "error", err.Error())
		return 1
	}

	logger := logging.NewJSON(cfg.LogLevel).With("job", name)
	logging.SetDefault(logger)
	defer func() {
		_ = logger.Sync()
	}()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := observability.InitUptrace(cfg, logger)
	if err != nil {
		logger.Error("init uptrace", "error", err.Error())
		return 1
	}
	defer func() {
		if err := shutdownTracing(context.Background()); err != nil {
			logger.Warn("shutdown uptrace", "error", err.Error())
		}
	}()

	stopProfiler, err := observability.InitPyroscope(cfg, logger)
	if err != nil {
		logger.Error("init pyroscope", "error", err.Error())
		return 1
	}
	defer func() {
		if err := stopProfiler(); err != nil {
			logger.Warn("stop pyroscope", "error", err.Error())
		}
	}()

	db, err := OpenDB(ctx, cfg)
	if err != nil {
		logger.Error("open database", "error", err.Error())
		return 1
	}
	defer func() {
		_ = db.Close()
	}()

	if err := run(ctx, JobEnv{Cfg: cfg, Logger: logger, DB: db}); err != nil {
		logger.Error("job failed", "error", err.Error())
		return 1
	}
	return 0
}
