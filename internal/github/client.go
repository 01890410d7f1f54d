// Package github provides the focused GitHub API surface the review pipeline
// needs, plus installation authentication with a cached token.
package github

import (
	"context"
	"log/slog"

	"github.com/google/go-github/v73/github"
	"golang.org/x/oauth2"
)

// ChangedFile holds the filename and unified-diff patch for a single file of
// a pull request. Files without textual changes (binaries, renames) have an
// empty patch.
type ChangedFile struct {
	Filename string
	Patch    string
}

// Client defines the GitHub operations the jobs call.
//
//go:generate mockgen -destination=../../mocks/mock_github_client.go -package=mocks . Client
type Client interface {
	GetChangedFiles(ctx context.Context, owner, repo string, number int) ([]ChangedFile, error)
	// CreateInlineComment anchors a review comment to the new side of a line
	// in the head commit and returns the created comment's ID.
	CreateInlineComment(ctx context.Context, owner, repo string, number int, commitSHA, path string, line int, body string) (int64, error)
	// CreateReplyComment answers an existing inline review comment in its
	// thread and returns the created comment's ID.
	CreateReplyComment(ctx context.Context, owner, repo string, number int, inReplyTo int64, body string) (int64, error)
	// CreateIssueComment posts a plain comment on the pull request
	// conversation and returns the created comment's ID.
	CreateIssueComment(ctx context.Context, owner, repo string, number int, body string) (int64, error)
}

type gitHubClient struct {
	client *github.Client
	logger *slog.Logger
}

// NewClient wraps the official go-github client in the pipeline's Client
// interface.
func NewClient(client *github.Client, logger *slog.Logger) Client {
	return &gitHubClient{client: client, logger: logger}
}

// NewPATClient creates a Client authenticated with a personal access token,
// for CLI use where no App installation is available.
func NewPATClient(ctx context.Context, token string, logger *slog.Logger) Client {
	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
	tc := oauth2.NewClient(ctx, ts)
	return &gitHubClient{client: github.NewClient(tc), logger: logger}
}

// GetChangedFiles lists the files modified in a pull request, paging through
// the API's 100-files-per-page limit.
func (g *gitHubClient) GetChangedFiles(ctx context.Context, owner, repo string, number int) ([]ChangedFile, error) {
	var allFiles []ChangedFile
	opts := &github.ListOptions{PerPage: 100}

	for {
		files, resp, err := g.client.PullRequests.ListFiles(ctx, owner, repo, number, opts)
		if err != nil {
			g.logger.Error("failed to list files for pull request", "owner", owner, "repo", repo, "pr", number, "error", err)
			return nil, err
		}

		for _, file := range files {
			allFiles = append(allFiles, ChangedFile{
				Filename: file.GetFilename(),
				Patch:    file.GetPatch(),
			})
		}

		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}

	return allFiles, nil
}

func (g *gitHubClient) CreateInlineComment(ctx context.Context, owner, repo string, number int, commitSHA, path string, line int, body string) (int64, error) {
	comment := &github.PullRequestComment{
		Body:     github.Ptr(body),
		CommitID: github.Ptr(commitSHA),
		Path:     github.Ptr(path),
		Line:     github.Ptr(line),
		Side:     github.Ptr("RIGHT"),
	}

	created, _, err := g.client.PullRequests.CreateComment(ctx, owner, repo, number, comment)
	if err != nil {
		g.logger.Error("failed to create inline comment", "owner", owner, "repo", repo, "pr", number, "path", path, "line", line, "error", err)
		return 0, err
	}
	return created.GetID(), nil
}

func (g *gitHubClient) CreateReplyComment(ctx context.Context, owner, repo string, number int, inReplyTo int64, body string) (int64, error) {
	created, _, err := g.client.PullRequests.CreateCommentInReplyTo(ctx, owner, repo, number, body, inReplyTo)
	if err != nil {
		g.logger.Error("failed to reply to review comment", "owner", owner, "repo", repo, "pr", number, "in_reply_to", inReplyTo, "error", err)
		return 0, err
	}
	return created.GetID(), nil
}

func (g *gitHubClient) CreateIssueComment(ctx context.Context, owner, repo string, number int, body string) (int64, error) {
	created, _, err := g.client.Issues.CreateComment(ctx, owner, repo, number, &github.IssueComment{Body: github.Ptr(body)})
	if err != nil {
		g.logger.Error("failed to create issue comment", "owner", owner, "repo", repo, "pr", number, "error", err)
		return 0, err
	}
	return created.GetID(), nil
}
