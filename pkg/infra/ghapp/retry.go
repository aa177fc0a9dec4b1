package ghapp

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/bradleyfalzon/ghinstallation/v2"
	"github.com/cenkalti/backoff/v4"
	"github.com/google/go-github/v53/github"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/octosched/pkg/domain/types"
	"github.com/m-mizutani/octosched/pkg/utils/logging"
)

// call runs op and retries it while GitHub reports a primary or secondary rate limit. Any other
// error stops the retry immediately.
func (x *Client) call(ctx context.Context, op func() (*github.Response, error)) error {
	b := backoff.WithContext(&backoff.ExponentialBackOff{
		InitialInterval:     x.initialInterval,
		RandomizationFactor: backoff.DefaultRandomizationFactor,
		Multiplier:          backoff.DefaultMultiplier,
		MaxInterval:         backoff.DefaultMaxInterval,
		MaxElapsedTime:      x.maxElapsedTime,
		Stop:                backoff.Stop,
		Clock:               backoff.SystemClock,
	}, ctx)

	operation := func() error {
		_, err := op()
		if err == nil {
			return nil
		}

		var rateErr *github.RateLimitError
		var abuseErr *github.AbuseRateLimitError
		switch {
		case errors.As(err, &rateErr):
			if err := x.waitHint(ctx, time.Until(rateErr.Rate.Reset.Time)); err != nil {
				return backoff.Permanent(err)
			}
			return err

		case errors.As(err, &abuseErr):
			if err := x.waitHint(ctx, abuseErr.GetRetryAfter()); err != nil {
				return backoff.Permanent(err)
			}
			return err

		default:
			return backoff.Permanent(err)
		}
	}

	notify := func(err error, wait time.Duration) {
		logging.From(ctx).Warn("GitHub API rate limited, retrying",
			slog.Any("error", err),
			slog.Duration("wait", wait),
		)
	}

	return backoff.RetryNotify(operation, b, notify)
}

// waitHint sleeps until the reset or retry-after hint given by GitHub.
func (x *Client) waitHint(ctx context.Context, wait time.Duration) error {
	if wait <= 0 {
		return nil
	}
	if wait > x.maxRateLimitWait {
		return goerr.New("rate limit reset is too far", goerr.V("wait", wait.String()))
	}

	timer := time.NewTimer(wait)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func statusCodeOf(err error) int {
	var respErr *github.ErrorResponse
	if errors.As(err, &respErr) && respErr.Response != nil {
		return respErr.Response.StatusCode
	}

	var tokenErr *ghinstallation.HTTPError
	if errors.As(err, &tokenErr) && tokenErr.Response != nil {
		return tokenErr.Response.StatusCode
	}

	return 0
}

// wrapError maps rejected credentials to types.ErrAuthFailed and missing targets to
// types.ErrNotFound. Other errors keep their cause.
func wrapError(err error, msg string, options ...goerr.Option) error {
	switch statusCodeOf(err) {
	case http.StatusUnauthorized, http.StatusForbidden:
		return types.WrapCause(types.ErrAuthFailed, err, msg, options...)
	case http.StatusNotFound:
		return types.WrapCause(types.ErrNotFound, err, msg, options...)
	default:
		return goerr.Wrap(err, msg, options...)
	}
}
