package testutil_test

import (
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/m-mizutani/octosched/pkg/utils/testutil"
)

func TestGetEnvOrSkip(t *testing.T) {
	t.Setenv("TEST_OCTOSCHED_ENV", "value")
	gt.V(t, testutil.GetEnvOrSkip(t, "TEST_OCTOSCHED_ENV")).Equal("value")
}
