// Package wire assembles the application's dependency graph.
package wire

import (
	"io"
	"log/slog"
	"os"

	"github.com/jmoiron/sqlx"

	"github.com/sevigo/review-crew/internal/config"
	"github.com/sevigo/review-crew/internal/core"
	"github.com/sevigo/review-crew/internal/costs"
	"github.com/sevigo/review-crew/internal/db"
	"github.com/sevigo/review-crew/internal/jobs"
	"github.com/sevigo/review-crew/internal/logger"
)

func provideLoggerConfig(cfg *config.Config) logger.Config {
	return cfg.Logging
}

func provideLogWriter(cfg *config.Config) io.Writer {
	switch cfg.Logging.Output {
	case "stderr":
		return os.Stderr
	case "file":
		f, err := os.OpenFile("review-crew.log", os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0600)
		if err != nil {
			return os.Stdout
		}
		return f
	default:
		return os.Stdout
	}
}

func provideSlogLogger(loggerConfig logger.Config, writer io.Writer) *slog.Logger {
	return logger.NewLogger(loggerConfig, writer)
}

func provideDBConfig(cfg *config.Config) *config.DBConfig {
	return &cfg.Database
}

func provideSQLDB(conn *db.DB) *sqlx.DB {
	return conn.DB
}

func provideAccountant(cfg *config.Config, conn *sqlx.DB, slogger *slog.Logger) costs.Accountant {
	if cfg.PriceTableFile != "" {
		if err := costs.LoadPriceOverrides(cfg.PriceTableFile); err != nil {
			slogger.Warn("price table overrides not loaded", "error", err)
		}
	}
	return costs.NewAccountant(conn, slogger)
}

func provideDispatcher(reviewJob *jobs.ReviewJob, replyJob *jobs.ReplyJob, cfg *config.Config, slogger *slog.Logger) core.JobDispatcher {
	return jobs.NewDispatcher(reviewJob, replyJob, cfg.MaxWorkers, slogger)
}
