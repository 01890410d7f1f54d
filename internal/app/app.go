// Package app ties the configuration, storage, job workers, and HTTP server
// together into one startable unit.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/sevigo/review-crew/internal/config"
	"github.com/sevigo/review-crew/internal/core"
	"github.com/sevigo/review-crew/internal/server"
	"github.com/sevigo/review-crew/internal/storage"
)

// App holds the main application components.
type App struct {
	cfg        *config.Config
	logger     *slog.Logger
	server     *server.Server
	dispatcher core.JobDispatcher
	store      storage.Store
}

// NewApp assembles the application and seeds agents from the configured
// agents file, when one is set.
func NewApp(ctx context.Context, cfg *config.Config, logger *slog.Logger, srv *server.Server, dispatcher core.JobDispatcher, store storage.Store) (*App, error) {
	a := &App{
		cfg:        cfg,
		logger:     logger,
		server:     srv,
		dispatcher: dispatcher,
		store:      store,
	}

	if cfg.AgentsFile != "" {
		if err := a.seedAgents(ctx, cfg.AgentsFile); err != nil {
			return nil, fmt.Errorf("failed to seed agents from %s: %w", cfg.AgentsFile, err)
		}
	}
	return a, nil
}

// Start runs the HTTP server and blocks until it stops.
func (a *App) Start() error {
	a.logger.Info("starting application",
		"port", a.cfg.Server.Port,
		"llm_provider", a.cfg.LLM.Provider,
		"model", a.cfg.LLM.Model,
		"max_workers", a.cfg.MaxWorkers)
	return a.server.Start()
}

// Stop shuts the server down and drains the job queue.
func (a *App) Stop() error {
	err := a.server.Stop()
	a.dispatcher.Stop()
	return err
}

// seedAgents upserts the agents and bindings declared in the seed file. The
// dashboard owns agents at runtime; seeding only bootstraps a fresh install.
func (a *App) seedAgents(ctx context.Context, path string) error {
	file, err := config.LoadAgentsFile(path)
	if err != nil {
		if errors.Is(err, config.ErrAgentsFileNotFound) {
			a.logger.Warn("agents file not found, skipping seeding", "path", path)
			return nil
		}
		return err
	}

	for i := range file.Agents {
		seed := &file.Agents[i]
		agent, err := a.store.UpsertAgent(ctx, &core.Agent{
			Name:              seed.Name,
			GenerationPrompt:  seed.GenerationPrompt,
			EvaluationPrompt:  seed.EvaluationPrompt,
			Dimensions:        seed.Dimensions,
			FileFilters:       seed.FileFilters,
			SeverityThreshold: seed.SeverityThreshold,
			Enabled:           seed.IsEnabled(),
		})
		if err != nil {
			return err
		}

		for _, fullName := range seed.Repositories {
			repo, err := a.upsertSeedRepository(ctx, fullName)
			if err != nil {
				return err
			}
			if err := a.store.BindAgent(ctx, agent.ID, repo.ID, true); err != nil {
				return err
			}
		}
		a.logger.Info("seeded agent", "name", agent.Name, "repositories", len(seed.Repositories))
	}
	return nil
}

// upsertSeedRepository registers a repository named in the seed file. The
// installation ID stays zero until the first webhook from that repository.
func (a *App) upsertSeedRepository(ctx context.Context, fullName string) (*core.Repository, error) {
	owner, name, ok := splitFullName(fullName)
	if !ok {
		return nil, fmt.Errorf("invalid repository full name %q", fullName)
	}
	return a.store.UpsertRepository(ctx, &core.Repository{
		Owner:    owner,
		Name:     name,
		FullName: fullName,
	})
}

func splitFullName(fullName string) (owner, name string, ok bool) {
	for i := range fullName {
		if fullName[i] == '/' {
			owner, name = fullName[:i], fullName[i+1:]
			return owner, name, owner != "" && name != ""
		}
	}
	return "", "", false
}
