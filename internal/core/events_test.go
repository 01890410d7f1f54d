package core

import (
	"testing"

	"github.com/google/go-github/v73/github"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validPREvent(action string) *github.PullRequestEvent {
	return &github.PullRequestEvent{
		Action: github.Ptr(action),
		Repo: &github.Repository{
			Owner:    &github.User{Login: github.Ptr("octo")},
			Name:     github.Ptr("demo"),
			FullName: github.Ptr("octo/demo"),
		},
		PullRequest: &github.PullRequest{
			Number: github.Ptr(12),
			Head:   &github.PullRequestBranch{SHA: github.Ptr("abc123")},
		},
		Installation: &github.Installation{ID: github.Ptr(int64(9))},
	}
}

func TestEventFromPullRequest(t *testing.T) {
	t.Run("reviewed actions are accepted", func(t *testing.T) {
		for _, action := range []string{"opened", "synchronize", "reopened"} {
			event, err := EventFromPullRequest(validPREvent(action))
			require.NoError(t, err, action)
			assert.Equal(t, EventPullRequest, event.Kind)
			assert.Equal(t, "octo", event.RepoOwner)
			assert.Equal(t, "demo", event.RepoName)
			assert.Equal(t, "octo/demo", event.RepoFullName)
			assert.Equal(t, int64(9), event.InstallationID)
			assert.Equal(t, 12, event.PRNumber)
			assert.Equal(t, "abc123", event.HeadSHA)
		}
	})

	t.Run("other actions are rejected", func(t *testing.T) {
		for _, action := range []string{"closed", "edited", "labeled", "assigned"} {
			_, err := EventFromPullRequest(validPREvent(action))
			assert.Error(t, err, action)
		}
	})

	t.Run("missing repository is rejected", func(t *testing.T) {
		raw := validPREvent("opened")
		raw.Repo = nil
		_, err := EventFromPullRequest(raw)
		assert.ErrorContains(t, err, "repository")
	})

	t.Run("missing head SHA is rejected", func(t *testing.T) {
		raw := validPREvent("opened")
		raw.PullRequest.Head = nil
		_, err := EventFromPullRequest(raw)
		assert.ErrorContains(t, err, "head SHA")
	})

	t.Run("missing installation is rejected", func(t *testing.T) {
		raw := validPREvent("opened")
		raw.Installation = nil
		_, err := EventFromPullRequest(raw)
		assert.ErrorContains(t, err, "installation")
	})
}

func validReviewCommentEvent() *github.PullRequestReviewCommentEvent {
	return &github.PullRequestReviewCommentEvent{
		Action: github.Ptr("created"),
		Comment: &github.PullRequestComment{
			ID:                  github.Ptr(int64(500)),
			Body:                github.Ptr("Why is this a problem?"),
			InReplyTo:           github.Ptr(int64(42)),
			PullRequestReviewID: github.Ptr(int64(77)),
			User:                &github.User{Login: github.Ptr("dev")},
		},
		Repo: &github.Repository{
			Owner:    &github.User{Login: github.Ptr("octo")},
			Name:     github.Ptr("demo"),
			FullName: github.Ptr("octo/demo"),
		},
		PullRequest:  &github.PullRequest{Number: github.Ptr(12)},
		Installation: &github.Installation{ID: github.Ptr(int64(9))},
	}
}

func TestEventFromReviewComment(t *testing.T) {
	t.Run("new comment maps to a reply event", func(t *testing.T) {
		event, err := EventFromReviewComment(validReviewCommentEvent())
		require.NoError(t, err)
		assert.Equal(t, EventCommentReply, event.Kind)
		assert.Equal(t, int64(500), event.CommentID)
		assert.Equal(t, int64(42), event.InReplyToID)
		assert.Equal(t, int64(77), event.ReviewThreadID)
		assert.Equal(t, "dev", event.Commenter)
		assert.Equal(t, 12, event.PRNumber)
	})

	t.Run("non-created actions are rejected", func(t *testing.T) {
		raw := validReviewCommentEvent()
		raw.Action = github.Ptr("edited")
		_, err := EventFromReviewComment(raw)
		assert.Error(t, err)
	})

	t.Run("bot comments never loop back", func(t *testing.T) {
		raw := validReviewCommentEvent()
		raw.Comment.User.Login = github.Ptr("review-crew[bot]")
		_, err := EventFromReviewComment(raw)
		assert.ErrorContains(t, err, "bot")
	})

	t.Run("empty body is rejected", func(t *testing.T) {
		raw := validReviewCommentEvent()
		raw.Comment.Body = github.Ptr("")
		_, err := EventFromReviewComment(raw)
		assert.Error(t, err)
	})
}

func validIssueCommentEvent() *github.IssueCommentEvent {
	return &github.IssueCommentEvent{
		Action: github.Ptr("created"),
		Issue: &github.Issue{
			Number:           github.Ptr(12),
			PullRequestLinks: &github.PullRequestLinks{URL: github.Ptr("https://api.github.com/repos/octo/demo/pulls/12")},
		},
		Comment: &github.IssueComment{
			ID:   github.Ptr(int64(600)),
			Body: github.Ptr("Can you elaborate?"),
			User: &github.User{Login: github.Ptr("dev")},
		},
		Repo: &github.Repository{
			Owner:    &github.User{Login: github.Ptr("octo")},
			Name:     github.Ptr("demo"),
			FullName: github.Ptr("octo/demo"),
		},
		Installation: &github.Installation{ID: github.Ptr(int64(9))},
	}
}

func TestEventFromIssueComment(t *testing.T) {
	t.Run("comment on a pull request maps to a reply event", func(t *testing.T) {
		event, err := EventFromIssueComment(validIssueCommentEvent())
		require.NoError(t, err)
		assert.Equal(t, EventCommentReply, event.Kind)
		assert.Equal(t, int64(600), event.CommentID)
		assert.Zero(t, event.InReplyToID)
		assert.Zero(t, event.ReviewThreadID)
		assert.Equal(t, 12, event.PRNumber)
	})

	t.Run("comment on a plain issue is rejected", func(t *testing.T) {
		raw := validIssueCommentEvent()
		raw.Issue.PullRequestLinks = nil
		_, err := EventFromIssueComment(raw)
		assert.ErrorContains(t, err, "not on a pull request")
	})

	t.Run("bot comments never loop back", func(t *testing.T) {
		raw := validIssueCommentEvent()
		raw.Comment.User.Login = github.Ptr("review-crew[bot]")
		_, err := EventFromIssueComment(raw)
		assert.ErrorContains(t, err, "bot")
	})
}
