package config

import (
	"context"
	"log/slog"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"github.com/urfave/cli/v3"

	"github.com/m-mizutani/octosched/pkg/infra/scheduler/redis"
)

// Redis switches the job scheduler from the in-process one to the Redis backed one.
type Redis struct {
	addr         string
	password     string `masq:"secret"`
	db           int64
	prefix       string
	pollInterval time.Duration
}

func (x *Redis) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "redis-addr",
			Usage:       "Redis address (host:port). In-process scheduler is used if empty",
			Category:    "Redis",
			Sources:     cli.EnvVars("OCTOSCHED_REDIS_ADDR"),
			Destination: &x.addr,
		},
		&cli.StringFlag{
			Name:        "redis-password",
			Usage:       "Redis password",
			Category:    "Redis",
			Sources:     cli.EnvVars("OCTOSCHED_REDIS_PASSWORD"),
			Destination: &x.password,
		},
		&cli.Int64Flag{
			Name:        "redis-db",
			Usage:       "Redis database number",
			Category:    "Redis",
			Sources:     cli.EnvVars("OCTOSCHED_REDIS_DB"),
			Destination: &x.db,
		},
		&cli.StringFlag{
			Name:        "redis-prefix",
			Usage:       "Key prefix of scheduler data",
			Category:    "Redis",
			Sources:     cli.EnvVars("OCTOSCHED_REDIS_PREFIX"),
			Value:       "octosched:",
			Destination: &x.prefix,
		},
		&cli.DurationFlag{
			Name:        "redis-poll-interval",
			Usage:       "Interval to poll due schedules and jobs",
			Category:    "Redis",
			Sources:     cli.EnvVars("OCTOSCHED_REDIS_POLL_INTERVAL"),
			Value:       time.Second,
			Destination: &x.pollInterval,
		},
	}
}

func (x *Redis) Enabled() bool {
	return x.addr != ""
}

func (x *Redis) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("addr", x.addr),
		slog.Int("password.len", len(x.password)),
		slog.Int64("db", x.db),
		slog.String("prefix", x.prefix),
		slog.Duration("pollInterval", x.pollInterval),
	)
}

func (x *Redis) Connect(ctx context.Context) (*goredis.Client, error) {
	return redis.Connect(ctx, x.addr, x.password, int(x.db))
}

func (x *Redis) Options() []redis.Option {
	return []redis.Option{
		redis.WithPrefix(x.prefix),
		redis.WithPollInterval(x.pollInterval),
	}
}
