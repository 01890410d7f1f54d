//go:build wireinject
// +build wireinject

package wire

import (
	"context"

	"github.com/google/wire"

	"github.com/sevigo/review-crew/internal/app"
	"github.com/sevigo/review-crew/internal/config"
	"github.com/sevigo/review-crew/internal/db"
	"github.com/sevigo/review-crew/internal/github"
	"github.com/sevigo/review-crew/internal/jobs"
	"github.com/sevigo/review-crew/internal/llm"
	"github.com/sevigo/review-crew/internal/server"
	"github.com/sevigo/review-crew/internal/storage"
)

func InitializeApp(ctx context.Context) (*app.App, func(), error) {
	wire.Build(
		app.NewApp,
		server.NewServer,
		config.LoadConfig,
		db.NewDatabase,
		storage.NewStore,
		provideAccountant,
		github.NewClientFactory,
		llm.NewModel,
		llm.NewGateway,
		jobs.NewReviewJob,
		jobs.NewReplyJob,
		provideDispatcher,
		provideLoggerConfig,
		provideLogWriter,
		provideSlogLogger,
		provideDBConfig,
		provideSQLDB,
	)
	return &app.App{}, nil, nil
}
