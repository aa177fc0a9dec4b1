package usecase

import (
	"sync"

	"github.com/m-mizutani/octosched/pkg/domain/types"
)

// keyedMutex serializes work per installation. Entries are dropped once nobody holds or waits
// for them.
type keyedMutex struct {
	mu    sync.Mutex
	locks map[types.GitHubAppInstallID]*refMutex
}

type refMutex struct {
	sync.Mutex
	refs int
}

func newKeyedMutex() *keyedMutex {
	return &keyedMutex{
		locks: make(map[types.GitHubAppInstallID]*refMutex),
	}
}

// Lock blocks until the lock for id is held and returns the function releasing it.
func (x *keyedMutex) Lock(id types.GitHubAppInstallID) func() {
	x.mu.Lock()
	m, ok := x.locks[id]
	if !ok {
		m = &refMutex{}
		x.locks[id] = m
	}
	m.refs++
	x.mu.Unlock()

	m.Lock()

	return func() {
		m.Unlock()

		x.mu.Lock()
		m.refs--
		if m.refs == 0 {
			delete(x.locks, id)
		}
		x.mu.Unlock()
	}
}

func (x *keyedMutex) size() int {
	x.mu.Lock()
	defer x.mu.Unlock()
	return len(x.locks)
}
