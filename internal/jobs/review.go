package jobs

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/sevigo/review-crew/internal/config"
	"github.com/sevigo/review-crew/internal/core"
	"github.com/sevigo/review-crew/internal/costs"
	"github.com/sevigo/review-crew/internal/diff"
	"github.com/sevigo/review-crew/internal/github"
	"github.com/sevigo/review-crew/internal/llm"
	"github.com/sevigo/review-crew/internal/storage"
)

// ReviewJob runs one full review pass over a pull request: for every changed
// file, every bound agent, and every changed line, it generates a comment,
// applies the agent's severity gate, posts and persists the surviving
// comments, evaluates them, and tracks token cost.
//
// Failures while fetching files, loading bindings, or authenticating abort
// the job. Failures inside the per-line loop (generation, posting,
// evaluation, persistence) are handled at their own boundary and never abort
// the loop, so one bad line costs at most its own review.
type ReviewJob struct {
	cfg     *config.Config
	clients github.ClientFactory
	store   storage.Store
	gateway llm.Gateway
	costs   costs.Accountant
	logger  *slog.Logger
}

// NewReviewJob wires the review pipeline's dependencies.
func NewReviewJob(cfg *config.Config, clients github.ClientFactory, store storage.Store, gateway llm.Gateway, accountant costs.Accountant, logger *slog.Logger) *ReviewJob {
	if cfg == nil {
		panic("config cannot be nil")
	}
	if clients == nil || store == nil || gateway == nil || accountant == nil {
		panic("review job dependencies cannot be nil")
	}
	return &ReviewJob{
		cfg:     cfg,
		clients: clients,
		store:   store,
		gateway: gateway,
		costs:   accountant,
		logger:  logger,
	}
}

// Run executes the review pass for a pull request event.
func (j *ReviewJob) Run(ctx context.Context, event *core.GitHubEvent) error {
	if err := validateEvent(event, core.EventPullRequest); err != nil {
		return fmt.Errorf("input validation failed: %w", err)
	}

	j.logger.Info("starting review pass", "repo", event.RepoFullName, "pr", event.PRNumber, "sha", event.HeadSHA)

	client, err := j.clients.ClientFor(ctx, event.InstallationID)
	if err != nil {
		return fmt.Errorf("failed to create GitHub client: %w", err)
	}

	repo, err := j.store.UpsertRepository(ctx, &core.Repository{
		Owner:          event.RepoOwner,
		Name:           event.RepoName,
		FullName:       event.RepoFullName,
		InstallationID: event.InstallationID,
	})
	if err != nil {
		return fmt.Errorf("failed to register repository: %w", err)
	}

	agents, err := j.store.ListAgentsForRepository(ctx, repo.ID)
	if err != nil {
		return fmt.Errorf("failed to load agent bindings: %w", err)
	}
	if len(agents) == 0 {
		j.logger.Debug("no agents bound to repository, nothing to review", "repo", event.RepoFullName)
		return nil
	}

	files, err := client.GetChangedFiles(ctx, event.RepoOwner, event.RepoName, event.PRNumber)
	if err != nil {
		return fmt.Errorf("failed to fetch changed files: %w", err)
	}

	// Files, agents and lines are walked strictly sequentially. This bounds
	// external call concurrency and keeps the posting order deterministic.
	var reviewed int
	for _, file := range files {
		if file.Patch == "" {
			continue
		}

		hunks := diff.Parse(file.Patch)
		lines := diff.SelectChangedLines(hunks, diff.DefaultContextWindow)
		if len(lines) == 0 {
			continue
		}
		fileType := strings.TrimPrefix(filepath.Ext(file.Filename), ".")

		for i := range agents {
			agent := &agents[i]
			if !agent.MatchesFile(file.Filename) {
				continue
			}
			for _, line := range lines {
				j.reviewLine(ctx, client, repo, agent, event, file.Filename, fileType, line)
				reviewed++
			}
		}
	}

	j.logger.Info("review pass finished", "repo", event.RepoFullName, "pr", event.PRNumber, "lines_reviewed", reviewed)
	return nil
}

// reviewLine drives one changed line through the per-line state machine:
// generate, gate, post, record, evaluate, track. It never returns an error;
// every failure inside it is terminal for this line only.
func (j *ReviewJob) reviewLine(ctx context.Context, client github.Client, repo *core.Repository, agent *core.Agent, event *core.GitHubEvent, path, fileType string, line diff.ChangedLine) {
	gen := j.gateway.Generate(ctx, agent, llm.GenerationVars{
		CodeChunk: line.Context,
		FilePath:  path,
		FileType:  fileType,
	})

	// Severity gate: nothing is posted or recorded below the agent's
	// threshold, but the generation tokens were spent and are still charged.
	if gen.Comment == "" || gen.Severity < agent.SeverityThreshold {
		j.trackCost(ctx, agent.ID, repo.ID, gen.TokensUsed, 0)
		return
	}

	var commentID sql.NullInt64
	id, err := client.CreateInlineComment(ctx, event.RepoOwner, event.RepoName, event.PRNumber, event.HeadSHA, path, line.NewLineNumber, gen.Comment)
	if err != nil {
		j.logger.Warn("failed to post inline comment, keeping review locally",
			"repo", event.RepoFullName, "pr", event.PRNumber, "path", path, "line", line.NewLineNumber, "error", err)
	} else {
		commentID = sql.NullInt64{Int64: id, Valid: true}
	}

	review := &core.Review{
		RepositoryID:    repo.ID,
		AgentID:         agent.ID,
		PRNumber:        event.PRNumber,
		CommitSHA:       event.HeadSHA,
		FilePath:        path,
		LineNumber:      line.NewLineNumber,
		CodeChunk:       line.Context,
		Comment:         gen.Comment,
		Severity:        gen.Severity,
		GitHubCommentID: commentID,
		RawResponse:     gen.Raw,
	}
	if err := j.store.SaveReview(ctx, review); err != nil {
		j.logger.Error("failed to persist review",
			"repo", event.RepoFullName, "pr", event.PRNumber, "path", path, "line", line.NewLineNumber, "error", err)
		j.trackCost(ctx, agent.ID, repo.ID, gen.TokensUsed, 0)
		return
	}

	eval := j.gateway.Evaluate(ctx, agent, line.Context, gen.Comment, path)
	if err := j.store.SaveEvaluation(ctx, &core.Evaluation{
		ReviewID: review.ID,
		Scores:   eval.Scores,
		Summary:  eval.Summary,
	}); err != nil {
		j.logger.Error("failed to persist evaluation", "review_id", review.ID, "error", err)
	}

	j.trackCost(ctx, agent.ID, repo.ID, gen.TokensUsed, eval.TokensUsed)
}

func (j *ReviewJob) trackCost(ctx context.Context, agentID, repositoryID int64, generationTokens, evaluationTokens int) {
	err := j.costs.Track(ctx, agentID, &repositoryID, generationTokens, evaluationTokens, j.cfg.LLM.Model)
	if err != nil {
		j.logger.Error("failed to track cost", "agent_id", agentID, "error", err)
	}
}
