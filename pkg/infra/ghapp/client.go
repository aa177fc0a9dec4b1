package ghapp

import (
	"context"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/bradleyfalzon/ghinstallation/v2"
	"github.com/google/go-github/v53/github"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/octosched/pkg/domain/interfaces"
	"github.com/m-mizutani/octosched/pkg/domain/model"
	"github.com/m-mizutani/octosched/pkg/domain/types"
	"github.com/m-mizutani/octosched/pkg/utils/logging"
)

type Client struct {
	appID     types.GitHubAppID
	pem       types.GitHubAppPrivateKey
	baseURL   string
	transport http.RoundTripper

	initialInterval  time.Duration
	maxElapsedTime   time.Duration
	maxRateLimitWait time.Duration
}

var _ interfaces.GitHubApp = (*Client)(nil)

type Option func(*Client)

// WithBaseURL sets the REST API endpoint, e.g. for GitHub Enterprise Server.
func WithBaseURL(baseURL string) Option {
	return func(x *Client) {
		x.baseURL = strings.TrimSuffix(baseURL, "/")
	}
}

func WithTransport(tr http.RoundTripper) Option {
	return func(x *Client) {
		x.transport = tr
	}
}

// WithRetry configures retries of rate limited calls. maxWait bounds how long a single
// rate limit reset is awaited; a longer reset fails the call immediately.
func WithRetry(initialInterval, maxElapsedTime, maxWait time.Duration) Option {
	return func(x *Client) {
		x.initialInterval = initialInterval
		x.maxElapsedTime = maxElapsedTime
		x.maxRateLimitWait = maxWait
	}
}

func New(appID types.GitHubAppID, pem types.GitHubAppPrivateKey, options ...Option) (*Client, error) {
	if appID == 0 {
		return nil, goerr.Wrap(types.ErrInvalidOption, "appID is empty")
	}
	if pem == "" {
		return nil, goerr.Wrap(types.ErrInvalidOption, "pem is empty")
	}

	client := &Client{
		appID:            appID,
		pem:              pem,
		baseURL:          "https://api.github.com",
		transport:        http.DefaultTransport,
		initialInterval:  time.Second,
		maxElapsedTime:   5 * time.Minute,
		maxRateLimitWait: time.Minute,
	}
	for _, opt := range options {
		opt(client)
	}

	if _, err := ghinstallation.NewAppsTransport(client.transport, int64(appID), []byte(pem)); err != nil {
		return nil, types.WrapCause(types.ErrInvalidOption, err, "invalid GitHub App private key",
			goerr.V("appID", appID),
		)
	}

	return client, nil
}

func (x *Client) newGitHubClient(tr http.RoundTripper) (*github.Client, error) {
	client := github.NewClient(&http.Client{Transport: tr})
	baseURL, err := url.Parse(x.baseURL + "/")
	if err != nil {
		return nil, goerr.Wrap(err, "failed to parse GitHub base URL", goerr.V("baseURL", x.baseURL))
	}
	client.BaseURL = baseURL
	return client, nil
}

func (x *Client) buildInstallationClient(installID types.GitHubAppInstallID) (*github.Client, error) {
	itr, err := ghinstallation.New(x.transport, int64(x.appID), int64(installID), []byte(x.pem))
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create installation transport", goerr.V("installID", installID))
	}
	itr.BaseURL = x.baseURL

	return x.newGitHubClient(itr)
}

func (x *Client) buildAppClient() (*github.Client, error) {
	atr, err := ghinstallation.NewAppsTransport(x.transport, int64(x.appID), []byte(x.pem))
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create app transport")
	}
	atr.BaseURL = x.baseURL

	return x.newGitHubClient(atr)
}

// GetInstallation fetches the installation with the App JWT. Both the regular and the suspended
// shapes are returned as model.Installation.
func (x *Client) GetInstallation(ctx context.Context, installID types.GitHubAppInstallID) (*model.Installation, error) {
	client, err := x.buildAppClient()
	if err != nil {
		return nil, err
	}

	var installation *github.Installation
	if err := x.call(ctx, func() (*github.Response, error) {
		var resp *github.Response
		var err error
		installation, resp, err = client.Apps.GetInstallation(ctx, int64(installID))
		return resp, err
	}); err != nil {
		return nil, wrapError(err, "failed to get installation", goerr.V("installID", installID))
	}

	return toInstallation(installation), nil
}

func (x *Client) ListInstallations(ctx context.Context) ([]*model.Installation, error) {
	client, err := x.buildAppClient()
	if err != nil {
		return nil, err
	}

	var all []*model.Installation
	opts := &github.ListOptions{PerPage: 100}

	for {
		var installations []*github.Installation
		var resp *github.Response
		if err := x.call(ctx, func() (*github.Response, error) {
			var err error
			installations, resp, err = client.Apps.ListInstallations(ctx, opts)
			return resp, err
		}); err != nil {
			return nil, wrapError(err, "failed to list installations", goerr.V("page", opts.Page))
		}

		for _, inst := range installations {
			all = append(all, toInstallation(inst))
		}

		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}

	logging.From(ctx).Info("Listed installations", slog.Int("count", len(all)))

	return all, nil
}

func (x *Client) ListInstallationRepos(ctx context.Context, installID types.GitHubAppInstallID) ([]*model.Repository, error) {
	client, err := x.buildInstallationClient(installID)
	if err != nil {
		return nil, err
	}

	var allRepos []*model.Repository
	opts := &github.ListOptions{PerPage: 100}

	for {
		var result *github.ListRepositories
		var resp *github.Response
		if err := x.call(ctx, func() (*github.Response, error) {
			var err error
			result, resp, err = client.Apps.ListRepos(ctx, opts)
			return resp, err
		}); err != nil {
			return nil, wrapError(err, "failed to list installation repos",
				goerr.V("installID", installID),
				goerr.V("page", opts.Page),
			)
		}

		for _, repo := range result.Repositories {
			allRepos = append(allRepos, toRepository(installID, repo))
		}

		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}

	logging.From(ctx).Info("Listed installation repos",
		slog.Int("count", len(allRepos)),
		slog.Any("installID", installID),
	)

	return allRepos, nil
}

func (x *Client) GetRepositoryByID(ctx context.Context, installID types.GitHubAppInstallID, repoID types.GitHubRepoID) (*model.Repository, error) {
	client, err := x.buildInstallationClient(installID)
	if err != nil {
		return nil, err
	}

	var repo *github.Repository
	if err := x.call(ctx, func() (*github.Response, error) {
		var resp *github.Response
		var err error
		repo, resp, err = client.Repositories.GetByID(ctx, int64(repoID))
		return resp, err
	}); err != nil {
		return nil, wrapError(err, "failed to get repository",
			goerr.V("installID", installID),
			goerr.V("repoID", repoID),
		)
	}

	return toRepository(installID, repo), nil
}

// GetInstallationIDForOwner looks up the organization installation first and falls back to the
// user installation when the owner is not an organization.
func (x *Client) GetInstallationIDForOwner(ctx context.Context, owner string) (types.GitHubAppInstallID, error) {
	client, err := x.buildAppClient()
	if err != nil {
		return 0, err
	}

	var installation *github.Installation
	orgErr := x.call(ctx, func() (*github.Response, error) {
		var resp *github.Response
		var err error
		installation, resp, err = client.Apps.FindOrganizationInstallation(ctx, owner)
		return resp, err
	})
	if orgErr == nil && installation != nil {
		logging.From(ctx).Info("Found organization installation",
			slog.String("owner", owner),
			slog.Int64("installID", installation.GetID()),
		)
		return types.GitHubAppInstallID(installation.GetID()), nil
	}

	// Not an organization (404), try user installation
	if orgErr != nil && statusCodeOf(orgErr) != http.StatusNotFound {
		return 0, wrapError(orgErr, "failed to find organization installation for owner",
			goerr.V("owner", owner),
		)
	}

	if err := x.call(ctx, func() (*github.Response, error) {
		var resp *github.Response
		var err error
		installation, resp, err = client.Apps.FindUserInstallation(ctx, owner)
		return resp, err
	}); err != nil {
		return 0, wrapError(err, "failed to find user installation for owner",
			goerr.V("owner", owner),
		)
	}

	if installation == nil {
		return 0, goerr.Wrap(types.ErrNotFound, "installation not found for owner",
			goerr.V("owner", owner),
		)
	}

	logging.From(ctx).Info("Found user installation",
		slog.String("owner", owner),
		slog.Int64("installID", installation.GetID()),
	)
	return types.GitHubAppInstallID(installation.GetID()), nil
}
