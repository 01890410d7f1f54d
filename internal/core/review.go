package core

import (
	"database/sql"
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// Review is one persisted review event: either an original per-line comment
// produced by an agent, or a conversational thread reply. Rows are append-only
// and never mutated after creation.
//
// Severity is 1-5 for original reviews and always 0 for thread replies. A
// thread reply additionally carries its parent review's ID. GitHubCommentID is
// NULL when posting the comment failed; the review is kept regardless so no
// generated output is silently lost.
type Review struct {
	ID              int64         `db:"id"`
	RepositoryID    int64         `db:"repository_id"`
	AgentID         int64         `db:"agent_id"`
	PRNumber        int           `db:"pr_number"`
	CommitSHA       string        `db:"commit_sha"`
	FilePath        string        `db:"file_path"`
	LineNumber      int           `db:"line_number"`
	CodeChunk       string        `db:"code_chunk"`
	Comment         string        `db:"comment"`
	Severity        int           `db:"severity"`
	GitHubCommentID sql.NullInt64 `db:"github_comment_id"`
	IsThreadReply   bool          `db:"is_thread_reply"`
	ParentReviewID  sql.NullInt64 `db:"parent_review_id"`
	RawResponse     string        `db:"raw_response"`
	PostedAt        time.Time     `db:"posted_at"`
}

// ScoreMap maps an evaluation dimension name to its 1-10 score. It is stored
// as JSONB.
type ScoreMap map[string]int

// Value implements driver.Valuer for JSONB storage.
func (m ScoreMap) Value() (driver.Value, error) {
	return json.Marshal(m)
}

// Scan implements sql.Scanner for JSONB retrieval.
func (m *ScoreMap) Scan(src any) error {
	switch v := src.(type) {
	case []byte:
		return json.Unmarshal(v, m)
	case string:
		return json.Unmarshal([]byte(v), m)
	case nil:
		*m = nil
		return nil
	default:
		return fmt.Errorf("cannot scan %T into ScoreMap", src)
	}
}

// Evaluation scores a single generated review comment. Exactly one evaluation
// exists per non-thread-reply review, and its score keys are exactly the
// owning agent's declared dimensions at evaluation time.
type Evaluation struct {
	ID        int64     `db:"id"`
	ReviewID  int64     `db:"review_id"`
	Scores    ScoreMap  `db:"scores"`
	Summary   string    `db:"summary"`
	CreatedAt time.Time `db:"created_at"`
}

// CostRecord is one append-only token-usage entry, attributable to an agent
// and optionally a repository.
type CostRecord struct {
	ID               int64         `db:"id"`
	AgentID          int64         `db:"agent_id"`
	RepositoryID     sql.NullInt64 `db:"repository_id"`
	Model            string        `db:"model"`
	GenerationTokens int           `db:"generation_tokens"`
	EvaluationTokens int           `db:"evaluation_tokens"`
	TotalTokens      int           `db:"total_tokens"`
	EstimatedCostUSD float64       `db:"estimated_cost_usd"`
	CreatedAt        time.Time     `db:"created_at"`
}
