package memory_test

import (
	"testing"

	"github.com/m-mizutani/octosched/pkg/repository/memory"
	"github.com/m-mizutani/octosched/pkg/repository/testhelper"
)

func TestMemoryInstallationRepository(t *testing.T) {
	repo := memory.New()
	testhelper.TestAll(t, repo)
}
