// Package handler provides the HTTP handlers for the webhook endpoint.
package handler

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/google/go-github/v73/github"

	"github.com/sevigo/review-crew/internal/config"
	"github.com/sevigo/review-crew/internal/core"
)

// WebhookHandler processes incoming webhooks from GitHub. A delivery is
// acknowledged as soon as its event is queued; processing happens in the
// background and its failures are only logged, never surfaced to GitHub, so
// delivery retries are not provoked by internal errors.
type WebhookHandler struct {
	cfg        *config.Config
	dispatcher core.JobDispatcher
	logger     *slog.Logger
}

// NewWebhookHandler creates a webhook handler.
func NewWebhookHandler(cfg *config.Config, dispatcher core.JobDispatcher, logger *slog.Logger) *WebhookHandler {
	return &WebhookHandler{
		cfg:        cfg,
		dispatcher: dispatcher,
		logger:     logger,
	}
}

// Handle validates the delivery signature, parses the payload, and routes the
// supported event types. Invalid signatures are rejected before any
// processing starts.
func (h *WebhookHandler) Handle(w http.ResponseWriter, r *http.Request) {
	payload, err := github.ValidatePayload(r, []byte(h.cfg.GitHub.WebhookSecret))
	if err != nil {
		h.logger.Error("invalid webhook payload signature", "error", err)
		http.Error(w, "Invalid signature", http.StatusUnauthorized)
		return
	}

	event, err := github.ParseWebHook(github.WebHookType(r), payload)
	if err != nil {
		h.logger.Error("could not parse webhook", "error", err)
		http.Error(w, "Could not parse webhook", http.StatusBadRequest)
		return
	}

	switch e := event.(type) {
	case *github.PullRequestEvent:
		converted, convErr := core.EventFromPullRequest(e)
		h.dispatch(r.Context(), w, converted, convErr)
	case *github.PullRequestReviewCommentEvent:
		converted, convErr := core.EventFromReviewComment(e)
		h.dispatch(r.Context(), w, converted, convErr)
	case *github.IssueCommentEvent:
		converted, convErr := core.EventFromIssueComment(e)
		h.dispatch(r.Context(), w, converted, convErr)
	default:
		h.logger.Debug("ignoring unhandled webhook event type", "type", github.WebHookType(r))
		_, _ = fmt.Fprint(w, "Event type not handled")
	}
}

// dispatch queues a converted event. Conversion errors mean the delivery is
// not relevant to the pipeline (wrong action, bot comment, missing fields);
// those are acknowledged and dropped.
func (h *WebhookHandler) dispatch(ctx context.Context, w http.ResponseWriter, event *core.GitHubEvent, convErr error) {
	if convErr != nil {
		h.logger.Debug("ignoring webhook delivery", "reason", convErr.Error())
		_, _ = fmt.Fprint(w, "Event ignored")
		return
	}

	if err := h.dispatcher.Dispatch(ctx, event); err != nil {
		h.logger.Error("failed to dispatch job", "error", err, "repo", event.RepoFullName)
		http.Error(w, "Failed to start job", http.StatusInternalServerError)
		return
	}

	h.logger.Info("job dispatched", "kind", event.Kind, "repo", event.RepoFullName, "pr", event.PRNumber)
	w.WriteHeader(http.StatusAccepted)
	_, _ = fmt.Fprint(w, "Job accepted")
}
