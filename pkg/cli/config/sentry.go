package config

import (
	"context"
	"log/slog"

	"github.com/getsentry/sentry-go"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/octosched/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

// Sentry receives errors passed to errutil.HandleError. Reporting is off when DSN is empty.
type Sentry struct {
	dsn         string `masq:"secret"`
	environment string
	release     string
	sampleRate  float64
}

func (x *Sentry) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "sentry-dsn",
			Usage:       "Sentry DSN",
			Category:    "Sentry",
			Destination: &x.dsn,
			Sources:     cli.EnvVars("OCTOSCHED_SENTRY_DSN"),
		},
		&cli.StringFlag{
			Name:        "sentry-env",
			Usage:       "Sentry environment",
			Category:    "Sentry",
			Destination: &x.environment,
			Sources:     cli.EnvVars("OCTOSCHED_SENTRY_ENV"),
		},
		&cli.StringFlag{
			Name:        "sentry-release",
			Usage:       "Release name reported to Sentry",
			Category:    "Sentry",
			Destination: &x.release,
			Sources:     cli.EnvVars("OCTOSCHED_SENTRY_RELEASE"),
		},
		&cli.FloatFlag{
			Name:        "sentry-sample-rate",
			Usage:       "Ratio of reported errors [0.0-1.0]",
			Category:    "Sentry",
			Destination: &x.sampleRate,
			Sources:     cli.EnvVars("OCTOSCHED_SENTRY_SAMPLE_RATE"),
			Value:       1.0,
		},
	}
}

func (x *Sentry) Enabled() bool {
	return x.dsn != ""
}

func (x *Sentry) Configure(ctx context.Context) error {
	if !x.Enabled() {
		logging.From(ctx).Warn("sentry is not configured")
		return nil
	}
	if x.sampleRate < 0 || x.sampleRate > 1 {
		return goerr.New("sentry sample rate must be between 0 and 1", goerr.V("sampleRate", x.sampleRate))
	}

	if err := sentry.Init(sentry.ClientOptions{
		Dsn:         x.dsn,
		Environment: x.environment,
		Release:     x.release,
		SampleRate:  x.sampleRate,
	}); err != nil {
		return goerr.Wrap(err, "failed to initialize sentry")
	}

	logging.From(ctx).Info("sentry is configured",
		slog.String("environment", x.environment),
		slog.String("release", x.release),
	)
	return nil
}

func (x *Sentry) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("DSN.len", len(x.dsn)),
		slog.String("Environment", x.environment),
		slog.String("Release", x.release),
		slog.Float64("SampleRate", x.sampleRate),
	)
}
