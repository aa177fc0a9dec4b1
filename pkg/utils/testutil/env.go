package testutil

import (
	"os"
	"testing"
)

// GetEnvOrSkip returns the environment variable key, skipping the test when it is unset.
// Integration tests against Firestore, Redis, BigQuery and GitHub are gated this way.
func GetEnvOrSkip(t *testing.T, key string) string {
	t.Helper()
	value, ok := os.LookupEnv(key)
	if !ok || value == "" {
		t.Skipf("%s is not set, skipping", key)
	}
	return value
}
