// Package costs turns token counts into dollar estimates and serves the
// read-only usage aggregates derived from the append-only cost records.
package costs

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/sevigo/review-crew/internal/core"
)

// The provider does not report the input/output token split, so estimates
// assume 60% of the tokens were input and 40% output.
const (
	inputShare  = 0.6
	outputShare = 0.4
)

type modelPrice struct {
	inputPerMTok  float64
	outputPerMTok float64
}

// USD per million tokens. Local Ollama models cost nothing; unknown models
// fall back to defaultPrice so a new model never goes unaccounted.
// priceMu guards the table against concurrent LoadPriceOverrides calls.
var priceMu sync.RWMutex

var priceTable = map[string]modelPrice{
	"gemini-2.5-flash":      {0.30, 2.50},
	"gemini-2.5-flash-lite": {0.10, 0.40},
	"gemini-2.5-pro":        {1.25, 10.00},
	"gemma3:latest":         {0, 0},
	"qwen2.5-coder:latest":  {0, 0},
	"llama3.1:latest":       {0, 0},
}

var defaultPrice = modelPrice{0.50, 1.50}

// EstimateCost converts a total token count into an estimated USD spend for
// the given model. For a fixed model the estimate is linear, and therefore
// monotonic, in the token count.
func EstimateCost(model string, totalTokens int) float64 {
	priceMu.RLock()
	price, ok := priceTable[model]
	if !ok {
		price = defaultPrice
	}
	priceMu.RUnlock()
	t := float64(totalTokens)
	return (t*inputShare*price.inputPerMTok + t*outputShare*price.outputPerMTok) / 1e6
}

// AgentUsage aggregates an agent's spend over a time window.
type AgentUsage struct {
	AgentID          int64   `db:"agent_id"`
	Records          int     `db:"records"`
	TotalTokens      int     `db:"total_tokens"`
	TotalCostUSD     float64 `db:"total_cost_usd"`
	AvgTokensPerCall float64 `db:"avg_tokens_per_call"`
}

// RepositoryUsage aggregates spend per repository. RepositoryID is NULL for
// records not attributable to a repository (e.g. offline runs).
type RepositoryUsage struct {
	RepositoryID sql.NullInt64 `db:"repository_id"`
	Records      int           `db:"records"`
	TotalTokens  int           `db:"total_tokens"`
	TotalCostUSD float64       `db:"total_cost_usd"`
}

// DailyUsage is one UTC calendar-day trend bucket.
type DailyUsage struct {
	Day          time.Time `db:"day"`
	Records      int       `db:"records"`
	TotalTokens  int       `db:"total_tokens"`
	TotalCostUSD float64   `db:"total_cost_usd"`
}

// Accountant records per-call token usage and serves aggregates over the
// resulting append-only rows.
//
//go:generate mockgen -destination=../../mocks/mock_costs_accountant.go -package=mocks . Accountant
type Accountant interface {
	// Track persists one cost record for an (agent, repository) pair.
	// repositoryID may be nil for usage not tied to a repository.
	Track(ctx context.Context, agentID int64, repositoryID *int64, generationTokens, evaluationTokens int, model string) error

	// AgentUsage returns an agent's totals and averages over the trailing
	// window ending now.
	AgentUsage(ctx context.Context, agentID int64, window time.Duration) (*AgentUsage, error)

	// UsageByRepository returns grouped totals per repository, most expensive
	// first.
	UsageByRepository(ctx context.Context) ([]RepositoryUsage, error)

	// DailyTrend returns per-UTC-day buckets for the trailing number of days,
	// oldest first.
	DailyTrend(ctx context.Context, days int) ([]DailyUsage, error)
}

type postgresAccountant struct {
	db     *sqlx.DB
	logger *slog.Logger
}

// NewAccountant creates a Postgres-backed Accountant.
func NewAccountant(db *sqlx.DB, logger *slog.Logger) Accountant {
	return &postgresAccountant{db: db, logger: logger}
}

func (a *postgresAccountant) Track(ctx context.Context, agentID int64, repositoryID *int64, generationTokens, evaluationTokens int, model string) error {
	total := generationTokens + evaluationTokens
	rec := core.CostRecord{
		AgentID:          agentID,
		Model:            model,
		GenerationTokens: generationTokens,
		EvaluationTokens: evaluationTokens,
		TotalTokens:      total,
		EstimatedCostUSD: EstimateCost(model, total),
	}
	if repositoryID != nil {
		rec.RepositoryID = sql.NullInt64{Int64: *repositoryID, Valid: true}
	}

	query := `
		INSERT INTO cost_records (agent_id, repository_id, model, generation_tokens,
			evaluation_tokens, total_tokens, estimated_cost_usd, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err := a.db.ExecContext(ctx, query,
		rec.AgentID, rec.RepositoryID, rec.Model, rec.GenerationTokens,
		rec.EvaluationTokens, rec.TotalTokens, rec.EstimatedCostUSD, time.Now())
	if err != nil {
		return fmt.Errorf("failed to track cost for agent %d: %w", agentID, err)
	}
	return nil
}

func (a *postgresAccountant) AgentUsage(ctx context.Context, agentID int64, window time.Duration) (*AgentUsage, error) {
	query := `
		SELECT $1::bigint AS agent_id,
			COUNT(*) AS records,
			COALESCE(SUM(total_tokens), 0) AS total_tokens,
			COALESCE(SUM(estimated_cost_usd), 0) AS total_cost_usd,
			COALESCE(AVG(total_tokens), 0) AS avg_tokens_per_call
		FROM cost_records
		WHERE agent_id = $1 AND created_at >= $2`

	var usage AgentUsage
	since := time.Now().Add(-window)
	if err := a.db.GetContext(ctx, &usage, query, agentID, since); err != nil {
		return nil, fmt.Errorf("failed to aggregate usage for agent %d: %w", agentID, err)
	}
	return &usage, nil
}

func (a *postgresAccountant) UsageByRepository(ctx context.Context) ([]RepositoryUsage, error) {
	query := `
		SELECT repository_id,
			COUNT(*) AS records,
			COALESCE(SUM(total_tokens), 0) AS total_tokens,
			COALESCE(SUM(estimated_cost_usd), 0) AS total_cost_usd
		FROM cost_records
		GROUP BY repository_id
		ORDER BY total_cost_usd DESC`

	var usage []RepositoryUsage
	if err := a.db.SelectContext(ctx, &usage, query); err != nil {
		return nil, fmt.Errorf("failed to aggregate usage by repository: %w", err)
	}
	return usage, nil
}

func (a *postgresAccountant) DailyTrend(ctx context.Context, days int) ([]DailyUsage, error) {
	if days <= 0 {
		days = 7
	}
	query := `
		SELECT date_trunc('day', created_at AT TIME ZONE 'UTC') AS day,
			COUNT(*) AS records,
			COALESCE(SUM(total_tokens), 0) AS total_tokens,
			COALESCE(SUM(estimated_cost_usd), 0) AS total_cost_usd
		FROM cost_records
		WHERE created_at >= $1
		GROUP BY day
		ORDER BY day`

	since := time.Now().UTC().AddDate(0, 0, -days)
	var trend []DailyUsage
	if err := a.db.SelectContext(ctx, &trend, query, since); err != nil {
		return nil, fmt.Errorf("failed to aggregate daily cost trend: %w", err)
	}
	return trend, nil
}
