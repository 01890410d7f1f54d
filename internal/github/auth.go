package github

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/bradleyfalzon/ghinstallation/v2"
	"github.com/google/go-github/v73/github"
	"golang.org/x/oauth2"

	"github.com/sevigo/review-crew/internal/config"
)

// ClientFactory hands out clients authenticated as a specific App
// installation. Tokens are cached per installation until shortly before
// their expiry.
//
//go:generate mockgen -destination=../../mocks/mock_github_factory.go -package=mocks . ClientFactory
type ClientFactory interface {
	ClientFor(ctx context.Context, installationID int64) (Client, error)
}

type appClientFactory struct {
	appID      int64
	privateKey []byte
	cache      *tokenCache
	logger     *slog.Logger
}

// NewClientFactory loads the App's private key and prepares the token cache.
func NewClientFactory(cfg *config.Config, logger *slog.Logger) (ClientFactory, error) {
	privateKey, err := os.ReadFile(cfg.GitHub.PrivateKeyPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read private key from %s: %w", cfg.GitHub.PrivateKeyPath, err)
	}

	return &appClientFactory{
		appID:      cfg.GitHub.AppID,
		privateKey: privateKey,
		cache:      newTokenCache(),
		logger:     logger,
	}, nil
}

// ClientFor returns a client for the installation, minting a fresh token only
// when the cached one is missing or close to expiry.
func (f *appClientFactory) ClientFor(ctx context.Context, installationID int64) (Client, error) {
	token, err := f.cache.token(ctx, installationID, f.mintToken)
	if err != nil {
		return nil, fmt.Errorf("failed to obtain installation token for %d: %w", installationID, err)
	}

	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
	tc := oauth2.NewClient(ctx, ts)
	return NewClient(github.NewClient(tc), f.logger), nil
}

// mintToken exchanges the App JWT for an installation access token.
func (f *appClientFactory) mintToken(ctx context.Context, installationID int64) (string, time.Time, error) {
	appTransport, err := ghinstallation.NewAppsTransport(http.DefaultTransport, f.appID, f.privateKey)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to create GitHub App transport: %w", err)
	}
	appClient := github.NewClient(&http.Client{Transport: appTransport})

	token, _, err := appClient.Apps.CreateInstallationToken(ctx, installationID, nil)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to create installation token for installation %d: %w", installationID, err)
	}
	if token.GetToken() == "" {
		return "", time.Time{}, fmt.Errorf("received an empty installation token")
	}

	f.logger.Info("minted installation token",
		"installation_id", installationID, "expires_at", token.GetExpiresAt())
	return token.GetToken(), token.GetExpiresAt().Time, nil
}
