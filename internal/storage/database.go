// Package storage implements the persistence layer on Postgres.
package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	// import db drivers
	_ "github.com/lib/pq"

	"github.com/sevigo/review-crew/internal/core"
)

// ErrNotFound is returned when a lookup matches no row.
var ErrNotFound = errors.New("not found")

// Store defines all database operations the pipeline needs. Reviews,
// evaluations and cost records are append-only.
//
//go:generate mockgen -destination=../../mocks/mock_storage.go -package=mocks . Store
type Store interface {
	UpsertRepository(ctx context.Context, repo *core.Repository) (*core.Repository, error)
	GetRepositoryByFullName(ctx context.Context, fullName string) (*core.Repository, error)

	UpsertAgent(ctx context.Context, agent *core.Agent) (*core.Agent, error)
	GetAgent(ctx context.Context, id int64) (*core.Agent, error)
	// ListAgentsForRepository returns the enabled agents whose binding to the
	// repository is itself enabled, in stable ID order.
	ListAgentsForRepository(ctx context.Context, repositoryID int64) ([]core.Agent, error)
	BindAgent(ctx context.Context, agentID, repositoryID int64, enabled bool) error

	SaveReview(ctx context.Context, review *core.Review) error
	// GetReviewByCommentID looks a review up by the external comment ID it
	// was posted under. Returns ErrNotFound when the comment is not ours.
	GetReviewByCommentID(ctx context.Context, commentID int64) (*core.Review, error)
	SaveEvaluation(ctx context.Context, eval *core.Evaluation) error
}

type postgresStore struct {
	db *sqlx.DB
}

// NewStore creates a Postgres-backed Store.
func NewStore(db *sqlx.DB) Store {
	return &postgresStore{db: db}
}

func (s *postgresStore) UpsertRepository(ctx context.Context, repo *core.Repository) (*core.Repository, error) {
	query := `
		INSERT INTO repositories (owner, name, full_name, installation_id, created_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (full_name) DO UPDATE
			SET installation_id = GREATEST(repositories.installation_id, EXCLUDED.installation_id)
		RETURNING id, owner, name, full_name, installation_id, created_at`

	var out core.Repository
	err := s.db.GetContext(ctx, &out, query,
		repo.Owner, repo.Name, repo.FullName, repo.InstallationID, time.Now())
	if err != nil {
		return nil, fmt.Errorf("failed to upsert repository %s: %w", repo.FullName, err)
	}
	return &out, nil
}

func (s *postgresStore) GetRepositoryByFullName(ctx context.Context, fullName string) (*core.Repository, error) {
	var out core.Repository
	err := s.db.GetContext(ctx, &out,
		`SELECT id, owner, name, full_name, installation_id, created_at
		 FROM repositories WHERE full_name = $1`, fullName)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get repository %s: %w", fullName, err)
	}
	return &out, nil
}

func (s *postgresStore) UpsertAgent(ctx context.Context, agent *core.Agent) (*core.Agent, error) {
	query := `
		INSERT INTO agents (name, generation_prompt, evaluation_prompt, dimensions,
			file_filters, severity_threshold, enabled, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (name) DO UPDATE SET
			generation_prompt = EXCLUDED.generation_prompt,
			evaluation_prompt = EXCLUDED.evaluation_prompt,
			dimensions = EXCLUDED.dimensions,
			file_filters = EXCLUDED.file_filters,
			severity_threshold = EXCLUDED.severity_threshold,
			enabled = EXCLUDED.enabled
		RETURNING id, name, generation_prompt, evaluation_prompt, dimensions,
			file_filters, severity_threshold, enabled, created_at`

	var out core.Agent
	err := s.db.GetContext(ctx, &out, query,
		agent.Name, agent.GenerationPrompt, agent.EvaluationPrompt,
		agent.Dimensions, agent.FileFilters, agent.SeverityThreshold,
		agent.Enabled, time.Now())
	if err != nil {
		return nil, fmt.Errorf("failed to upsert agent %s: %w", agent.Name, err)
	}
	return &out, nil
}

func (s *postgresStore) GetAgent(ctx context.Context, id int64) (*core.Agent, error) {
	var out core.Agent
	err := s.db.GetContext(ctx, &out,
		`SELECT id, name, generation_prompt, evaluation_prompt, dimensions,
			file_filters, severity_threshold, enabled, created_at
		 FROM agents WHERE id = $1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get agent %d: %w", id, err)
	}
	return &out, nil
}

func (s *postgresStore) ListAgentsForRepository(ctx context.Context, repositoryID int64) ([]core.Agent, error) {
	query := `
		SELECT a.id, a.name, a.generation_prompt, a.evaluation_prompt,
			a.dimensions, a.file_filters, a.severity_threshold, a.enabled, a.created_at
		FROM agents a
		JOIN agent_repositories ar ON ar.agent_id = a.id
		WHERE ar.repository_id = $1 AND ar.enabled AND a.enabled
		ORDER BY a.id`

	var agents []core.Agent
	if err := s.db.SelectContext(ctx, &agents, query, repositoryID); err != nil {
		return nil, fmt.Errorf("failed to list agents for repository %d: %w", repositoryID, err)
	}
	return agents, nil
}

func (s *postgresStore) BindAgent(ctx context.Context, agentID, repositoryID int64, enabled bool) error {
	query := `
		INSERT INTO agent_repositories (agent_id, repository_id, enabled)
		VALUES ($1, $2, $3)
		ON CONFLICT (agent_id, repository_id) DO UPDATE SET enabled = EXCLUDED.enabled`

	if _, err := s.db.ExecContext(ctx, query, agentID, repositoryID, enabled); err != nil {
		return fmt.Errorf("failed to bind agent %d to repository %d: %w", agentID, repositoryID, err)
	}
	return nil
}

func (s *postgresStore) SaveReview(ctx context.Context, review *core.Review) error {
	query := `
		INSERT INTO reviews (repository_id, agent_id, pr_number, commit_sha,
			file_path, line_number, code_chunk, comment, severity,
			github_comment_id, is_thread_reply, parent_review_id, raw_response, posted_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		RETURNING id, posted_at`

	row := s.db.QueryRowContext(ctx, query,
		review.RepositoryID, review.AgentID, review.PRNumber, review.CommitSHA,
		review.FilePath, review.LineNumber, review.CodeChunk, review.Comment,
		review.Severity, review.GitHubCommentID, review.IsThreadReply,
		review.ParentReviewID, review.RawResponse, time.Now())
	if err := row.Scan(&review.ID, &review.PostedAt); err != nil {
		return fmt.Errorf("failed to save review: %w", err)
	}
	return nil
}

func (s *postgresStore) GetReviewByCommentID(ctx context.Context, commentID int64) (*core.Review, error) {
	var out core.Review
	err := s.db.GetContext(ctx, &out,
		`SELECT id, repository_id, agent_id, pr_number, commit_sha, file_path,
			line_number, code_chunk, comment, severity, github_comment_id,
			is_thread_reply, parent_review_id, raw_response, posted_at
		 FROM reviews WHERE github_comment_id = $1
		 ORDER BY id DESC LIMIT 1`, commentID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get review by comment %d: %w", commentID, err)
	}
	return &out, nil
}

func (s *postgresStore) SaveEvaluation(ctx context.Context, eval *core.Evaluation) error {
	query := `
		INSERT INTO evaluations (review_id, scores, summary, created_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at`

	row := s.db.QueryRowContext(ctx, query,
		eval.ReviewID, eval.Scores, eval.Summary, time.Now())
	if err := row.Scan(&eval.ID, &eval.CreatedAt); err != nil {
		return fmt.Errorf("failed to save evaluation for review %d: %w", eval.ReviewID, err)
	}
	return nil
}
