package types

import (
	"fmt"

	"github.com/m-mizutani/goerr/v2"
)

var (
	ErrInvalidOption     = goerr.New("invalid option")
	ErrValidationFailed  = goerr.New("validation failed")
	ErrInvalidGitHubData = goerr.New("invalid GitHub data")

	// ErrAuthFailed means the credentials of an installation are invalid or revoked.
	// It is fatal for the pass that hit it and is never retried internally.
	ErrAuthFailed = goerr.New("GitHub App authentication failed")

	// ErrNotFound is surfaced as 404 at the admin boundary.
	ErrNotFound = goerr.New("not found")

	// ErrReconciliation means the batched repository write failed partially or fully.
	ErrReconciliation = goerr.New("reconciliation failed")

	// ErrScheduling means the job scheduler was unreachable or rejected a request.
	ErrScheduling = goerr.New("scheduling failed")
)

// WrapCause wraps cause under base. errors.Is matches both, and the cause message stays in
// Error() so it reaches logs and HTTP error bodies.
func WrapCause(base, cause error, msg string, options ...goerr.Option) error {
	return goerr.Wrap(fmt.Errorf("%w: %w", base, cause), msg, options...)
}
