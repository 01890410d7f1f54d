package jobs

import (
	"fmt"

	"github.com/sevigo/review-crew/internal/core"
)

// validateEvent ensures an event carries everything the jobs dereference.
// Events are built by the core constructors, so failures here indicate a
// programming error rather than bad webhook input.
func validateEvent(event *core.GitHubEvent, want core.EventKind) error {
	if event == nil {
		return fmt.Errorf("event cannot be nil")
	}
	if event.Kind != want {
		return fmt.Errorf("expected %s event, got %s", want, event.Kind)
	}
	if event.RepoOwner == "" {
		return fmt.Errorf("repository owner cannot be empty")
	}
	if event.RepoName == "" {
		return fmt.Errorf("repository name cannot be empty")
	}
	if event.InstallationID <= 0 {
		return fmt.Errorf("installation ID must be positive, got: %d", event.InstallationID)
	}

	switch want {
	case core.EventPullRequest:
		if event.PRNumber <= 0 {
			return fmt.Errorf("pull request number must be positive, got: %d", event.PRNumber)
		}
		if event.HeadSHA == "" {
			return fmt.Errorf("head SHA cannot be empty")
		}
	case core.EventCommentReply:
		if event.CommentID == 0 {
			return fmt.Errorf("comment ID cannot be zero")
		}
		if event.CommentBody == "" {
			return fmt.Errorf("comment body cannot be empty")
		}
	}
	return nil
}
