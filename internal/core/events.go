package core

import (
	"fmt"
	"strings"

	"github.com/google/go-github/v73/github"
)

// EventKind distinguishes the two inbound triggers the pipeline reacts to.
type EventKind string

const (
	// EventPullRequest is a pull request being opened or updated; it starts
	// a full review pass over the changed files.
	EventPullRequest EventKind = "pull_request"
	// EventCommentReply is a comment created on an existing review thread;
	// it starts the conversational reply branch.
	EventCommentReply EventKind = "comment_reply"
)

// GitHubEvent is the simplified, internal view of a GitHub webhook delivery.
// Only the fields the jobs actually consume are carried over.
type GitHubEvent struct {
	Kind EventKind

	RepoOwner      string
	RepoName       string
	RepoFullName   string
	InstallationID int64

	// Pull request fields (EventPullRequest).
	PRNumber int
	HeadSHA  string

	// Comment fields (EventCommentReply).
	CommentID   int64
	CommentBody string
	InReplyToID int64
	// ReviewThreadID is the pull request review the comment belongs to.
	// Non-zero means the comment lives in an inline review thread; zero means
	// a plain issue-comment thread.
	ReviewThreadID int64
	Commenter      string
}

var reviewedPRActions = map[string]bool{
	"opened":      true,
	"synchronize": true,
	"reopened":    true,
}

// EventFromPullRequest transforms a raw PullRequestEvent into the internal
// representation. It acts as an anti-corruption layer: payloads missing
// required data, or actions the pipeline does not review, are rejected with
// an error and never reach a job.
func EventFromPullRequest(event *github.PullRequestEvent) (*GitHubEvent, error) {
	if !reviewedPRActions[event.GetAction()] {
		return nil, fmt.Errorf("pull request action %q does not trigger a review", event.GetAction())
	}

	repo := event.GetRepo()
	if repo == nil || repo.GetOwner().GetLogin() == "" || repo.GetName() == "" {
		return nil, fmt.Errorf("repository or owner information is missing from the event")
	}

	pr := event.GetPullRequest()
	if pr.GetNumber() <= 0 {
		return nil, fmt.Errorf("invalid pull request number: %d", pr.GetNumber())
	}
	if pr.GetHead().GetSHA() == "" {
		return nil, fmt.Errorf("pull request head SHA is missing from the event")
	}

	if event.GetInstallation().GetID() == 0 {
		return nil, fmt.Errorf("installation ID is missing from the event")
	}

	return &GitHubEvent{
		Kind:           EventPullRequest,
		RepoOwner:      repo.GetOwner().GetLogin(),
		RepoName:       repo.GetName(),
		RepoFullName:   repo.GetFullName(),
		InstallationID: event.GetInstallation().GetID(),
		PRNumber:       pr.GetNumber(),
		HeadSHA:        pr.GetHead().GetSHA(),
	}, nil
}

// EventFromReviewComment transforms a PullRequestReviewCommentEvent (a comment
// created inside an inline review thread) into the internal representation.
func EventFromReviewComment(event *github.PullRequestReviewCommentEvent) (*GitHubEvent, error) {
	if event.GetAction() != "created" {
		return nil, fmt.Errorf("review comment action %q is not a new comment", event.GetAction())
	}

	comment := event.GetComment()
	if comment.GetID() == 0 || comment.GetBody() == "" {
		return nil, fmt.Errorf("comment information is missing from the event")
	}
	if isBotLogin(comment.GetUser().GetLogin()) {
		return nil, fmt.Errorf("comment was authored by a bot")
	}

	repo := event.GetRepo()
	if repo == nil || repo.GetOwner().GetLogin() == "" || repo.GetName() == "" {
		return nil, fmt.Errorf("repository or owner information is missing from the event")
	}
	if event.GetInstallation().GetID() == 0 {
		return nil, fmt.Errorf("installation ID is missing from the event")
	}

	return &GitHubEvent{
		Kind:           EventCommentReply,
		RepoOwner:      repo.GetOwner().GetLogin(),
		RepoName:       repo.GetName(),
		RepoFullName:   repo.GetFullName(),
		InstallationID: event.GetInstallation().GetID(),
		PRNumber:       event.GetPullRequest().GetNumber(),
		CommentID:      comment.GetID(),
		CommentBody:    comment.GetBody(),
		InReplyToID:    comment.GetInReplyTo(),
		ReviewThreadID: comment.GetPullRequestReviewID(),
		Commenter:      comment.GetUser().GetLogin(),
	}, nil
}

// EventFromIssueComment transforms an IssueCommentEvent into the internal
// representation. Only new comments on pull requests are accepted; everything
// else is rejected so the handler can acknowledge and drop it.
func EventFromIssueComment(event *github.IssueCommentEvent) (*GitHubEvent, error) {
	if event.GetAction() != "created" {
		return nil, fmt.Errorf("issue comment action %q is not a new comment", event.GetAction())
	}
	if !event.GetIssue().IsPullRequest() {
		return nil, fmt.Errorf("comment is not on a pull request")
	}

	comment := event.GetComment()
	if comment.GetID() == 0 || comment.GetBody() == "" {
		return nil, fmt.Errorf("comment information is missing from the event")
	}
	if isBotLogin(comment.GetUser().GetLogin()) {
		return nil, fmt.Errorf("comment was authored by a bot")
	}

	repo := event.GetRepo()
	if repo == nil || repo.GetOwner().GetLogin() == "" || repo.GetName() == "" {
		return nil, fmt.Errorf("repository or owner information is missing from the event")
	}
	if event.GetInstallation().GetID() == 0 {
		return nil, fmt.Errorf("installation ID is missing from the event")
	}

	return &GitHubEvent{
		Kind:           EventCommentReply,
		RepoOwner:      repo.GetOwner().GetLogin(),
		RepoName:       repo.GetName(),
		RepoFullName:   repo.GetFullName(),
		InstallationID: event.GetInstallation().GetID(),
		PRNumber:       event.GetIssue().GetNumber(),
		CommentID:      comment.GetID(),
		CommentBody:    comment.GetBody(),
		Commenter:      comment.GetUser().GetLogin(),
	}, nil
}

// isBotLogin guards against the app replying to its own comments.
func isBotLogin(login string) bool {
	return strings.HasSuffix(login, "[bot]")
}
