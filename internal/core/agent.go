// Package core defines the domain records and interfaces shared across the
// review pipeline: agents, reviews, evaluations, cost records, and the job
// contracts that connect the webhook layer to the background workers. These
// components are deliberately plain data so that implementations stay
// decoupled and testable.
package core

import (
	"path/filepath"
	"strings"
	"time"

	"github.com/lib/pq"
)

// Agent is a reviewer persona: prompt templates, evaluation dimensions, file
// filters and a posting threshold. Agents are configuration owned by the
// dashboard; the pipeline only ever reads them.
type Agent struct {
	ID                int64          `db:"id"`
	Name              string         `db:"name"`
	GenerationPrompt  string         `db:"generation_prompt"`
	EvaluationPrompt  string         `db:"evaluation_prompt"`
	Dimensions        pq.StringArray `db:"dimensions"`
	FileFilters       pq.StringArray `db:"file_filters"`
	SeverityThreshold int            `db:"severity_threshold"`
	Enabled           bool           `db:"enabled"`
	CreatedAt         time.Time      `db:"created_at"`
}

// MatchesFile reports whether the agent should review the given file path.
// An empty filter list matches everything. Otherwise the file matches when
// its path ends with one of the filter strings, or when its extension equals
// a filter given without the leading dot.
func (a *Agent) MatchesFile(path string) bool {
	if len(a.FileFilters) == 0 {
		return true
	}
	ext := filepath.Ext(path)
	for _, f := range a.FileFilters {
		if f == "" {
			continue
		}
		if strings.HasSuffix(path, f) || ext == "."+strings.TrimPrefix(f, ".") {
			return true
		}
	}
	return false
}

// AgentRepositoryBinding enables an agent on a single repository.
type AgentRepositoryBinding struct {
	AgentID      int64 `db:"agent_id"`
	RepositoryID int64 `db:"repository_id"`
	Enabled      bool  `db:"enabled"`
}

// Repository is a source-control repository registered with the app. Rows are
// upserted from webhook payloads, so the installation ID tracks the latest
// delivery.
type Repository struct {
	ID             int64     `db:"id"`
	Owner          string    `db:"owner"`
	Name           string    `db:"name"`
	FullName       string    `db:"full_name"`
	InstallationID int64     `db:"installation_id"`
	CreatedAt      time.Time `db:"created_at"`
}
