package jobs

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/sevigo/review-crew/internal/config"
	"github.com/sevigo/review-crew/internal/core"
	"github.com/sevigo/review-crew/internal/costs"
	"github.com/sevigo/review-crew/internal/github"
	"github.com/sevigo/review-crew/internal/llm"
	"github.com/sevigo/review-crew/internal/storage"
)

// ReplyJob handles the conversational branch: a developer answered one of the
// app's review comments, and the original agent answers back in the thread.
//
// Comments that do not resolve to a stored review are not ours and are
// silently ignored. Replies are persisted as severity-0 thread-reply reviews
// pointing at their parent; they are never evaluated.
type ReplyJob struct {
	cfg     *config.Config
	clients github.ClientFactory
	store   storage.Store
	gateway llm.Gateway
	costs   costs.Accountant
	logger  *slog.Logger
}

// NewReplyJob wires the thread-reply dependencies.
func NewReplyJob(cfg *config.Config, clients github.ClientFactory, store storage.Store, gateway llm.Gateway, accountant costs.Accountant, logger *slog.Logger) *ReplyJob {
	if cfg == nil {
		panic("config cannot be nil")
	}
	if clients == nil || store == nil || gateway == nil || accountant == nil {
		panic("reply job dependencies cannot be nil")
	}
	return &ReplyJob{
		cfg:     cfg,
		clients: clients,
		store:   store,
		gateway: gateway,
		costs:   accountant,
		logger:  logger,
	}
}

// Run executes the thread-reply branch for a comment event.
func (j *ReplyJob) Run(ctx context.Context, event *core.GitHubEvent) error {
	if err := validateEvent(event, core.EventCommentReply); err != nil {
		return fmt.Errorf("input validation failed: %w", err)
	}

	// Inline review threads carry the parent comment in in_reply_to_id;
	// plain issue comments only have their own ID to probe with.
	lookupID := event.InReplyToID
	if lookupID == 0 {
		lookupID = event.CommentID
	}

	original, err := j.store.GetReviewByCommentID(ctx, lookupID)
	if errors.Is(err, storage.ErrNotFound) {
		j.logger.Debug("comment does not belong to any stored review, ignoring",
			"repo", event.RepoFullName, "comment_id", event.CommentID)
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to look up original review: %w", err)
	}

	agent, err := j.store.GetAgent(ctx, original.AgentID)
	if err != nil {
		return fmt.Errorf("failed to load agent %d: %w", original.AgentID, err)
	}

	client, err := j.clients.ClientFor(ctx, event.InstallationID)
	if err != nil {
		return fmt.Errorf("failed to create GitHub client: %w", err)
	}

	j.logger.Info("answering thread reply",
		"repo", event.RepoFullName, "pr", original.PRNumber, "agent", agent.Name, "parent_review", original.ID)

	res := j.gateway.ConversationalReply(ctx, agent, original.CodeChunk, original.Comment, event.CommentBody)

	var commentID sql.NullInt64
	var postedID int64
	if event.ReviewThreadID != 0 && original.GitHubCommentID.Valid {
		postedID, err = client.CreateReplyComment(ctx, event.RepoOwner, event.RepoName, original.PRNumber, original.GitHubCommentID.Int64, res.Reply)
	} else {
		postedID, err = client.CreateIssueComment(ctx, event.RepoOwner, event.RepoName, original.PRNumber, res.Reply)
	}
	if err != nil {
		j.logger.Warn("failed to post thread reply, keeping it locally",
			"repo", event.RepoFullName, "pr", original.PRNumber, "error", err)
	} else {
		commentID = sql.NullInt64{Int64: postedID, Valid: true}
	}

	reply := &core.Review{
		RepositoryID:    original.RepositoryID,
		AgentID:         original.AgentID,
		PRNumber:        original.PRNumber,
		CommitSHA:       original.CommitSHA,
		FilePath:        original.FilePath,
		LineNumber:      original.LineNumber,
		CodeChunk:       original.CodeChunk,
		Comment:         res.Reply,
		Severity:        0,
		GitHubCommentID: commentID,
		IsThreadReply:   true,
		ParentReviewID:  sql.NullInt64{Int64: original.ID, Valid: true},
		RawResponse:     res.Reply,
	}
	if err := j.store.SaveReview(ctx, reply); err != nil {
		j.logger.Error("failed to persist thread reply", "parent_review", original.ID, "error", err)
	}

	if err := j.costs.Track(ctx, agent.ID, &original.RepositoryID, res.TokensUsed, 0, j.cfg.LLM.Model); err != nil {
		j.logger.Error("failed to track cost", "agent_id", agent.ID, "error", err)
	}
	return nil
}
