package repository

import (
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/octosched/pkg/domain/types"
)

var (
	// ErrNotFound is the domain sentinel so callers above the store can match it without
	// importing this package.
	ErrNotFound     = types.ErrNotFound
	ErrInvalidInput = goerr.New("invalid input")
)
