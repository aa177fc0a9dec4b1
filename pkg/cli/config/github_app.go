package config

import (
	"log/slog"
	"time"

	"github.com/m-mizutani/octosched/pkg/domain/types"
	"github.com/m-mizutani/octosched/pkg/infra/ghapp"
	"github.com/urfave/cli/v3"
)

type GitHubApp struct {
	id         types.GitHubAppID
	secret     types.GitHubAppSecret     `masq:"secret"`
	privateKey types.GitHubAppPrivateKey `masq:"secret"`
	baseURL    string
	maxWait    time.Duration
}

func (x *GitHubApp) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.Int64Flag{
			Name:        "github-app-id",
			Usage:       "GitHub App ID",
			Category:    "GitHub App",
			Destination: (*int64)(&x.id),
			Sources:     cli.EnvVars("OCTOSCHED_GITHUB_APP_ID"),
			Required:    true,
		},
		&cli.StringFlag{
			Name:        "github-app-private-key",
			Usage:       "GitHub App Private Key",
			Category:    "GitHub App",
			Destination: (*string)(&x.privateKey),
			Sources:     cli.EnvVars("OCTOSCHED_GITHUB_APP_PRIVATE_KEY"),
			Required:    true,
		},
		&cli.StringFlag{
			Name:        "github-app-secret",
			Usage:       "GitHub App Webhook Secret",
			Category:    "GitHub App",
			Destination: (*string)(&x.secret),
			Sources:     cli.EnvVars("OCTOSCHED_GITHUB_APP_SECRET"),
		},
		&cli.StringFlag{
			Name:        "github-base-url",
			Usage:       "GitHub API base URL for GitHub Enterprise Server",
			Category:    "GitHub App",
			Destination: &x.baseURL,
			Sources:     cli.EnvVars("OCTOSCHED_GITHUB_BASE_URL"),
		},
		&cli.DurationFlag{
			Name:        "github-rate-limit-max-wait",
			Usage:       "Longest wait for a GitHub rate limit reset before giving up",
			Category:    "GitHub App",
			Destination: &x.maxWait,
			Sources:     cli.EnvVars("OCTOSCHED_GITHUB_RATE_LIMIT_MAX_WAIT"),
			Value:       5 * time.Minute,
		},
	}
}

func (x GitHubApp) New() (*ghapp.Client, error) {
	var options []ghapp.Option
	if x.baseURL != "" {
		options = append(options, ghapp.WithBaseURL(x.baseURL))
	}
	if x.maxWait > 0 {
		options = append(options, ghapp.WithRetry(time.Second, x.maxWait, x.maxWait))
	}
	return ghapp.New(x.id, x.privateKey, options...)
}

func (x GitHubApp) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int64("ID", int64(x.id)),
		slog.Int("Secret.len", len(x.secret)),
		slog.Int("privateKey.len", len(x.privateKey)),
		slog.String("BaseURL", x.baseURL),
		slog.Duration("MaxWait", x.maxWait),
	)
}

func (x GitHubApp) Secret() types.GitHubAppSecret {
	return x.secret
}
