package model

import (
	"github.com/m-mizutani/octosched/pkg/domain/types"
)

// RepositoryDiff is the three-way difference between the local and live repository sets of
// one installation, computed by id.
type RepositoryDiff struct {
	ToAdd    []*Repository
	ToUpdate []*Repository
	ToRemove []types.GitHubRepoID
}

// ComputeRepositoryDiff classifies every repository id as present remotely only (add), in both
// (update) or locally only (remove). Order follows the live list for add/update and the local
// list for remove.
func ComputeRepositoryDiff(local, live []*Repository) *RepositoryDiff {
	existing := make(map[types.GitHubRepoID]struct{}, len(local))
	for _, r := range local {
		existing[r.ID] = struct{}{}
	}

	diff := &RepositoryDiff{}
	seen := make(map[types.GitHubRepoID]struct{}, len(live))
	for _, r := range live {
		if _, dup := seen[r.ID]; dup {
			continue
		}
		seen[r.ID] = struct{}{}

		if _, ok := existing[r.ID]; ok {
			diff.ToUpdate = append(diff.ToUpdate, r)
		} else {
			diff.ToAdd = append(diff.ToAdd, r)
		}
	}

	for _, r := range local {
		if _, ok := seen[r.ID]; !ok {
			diff.ToRemove = append(diff.ToRemove, r.ID)
		}
	}

	return diff
}

func (x *RepositoryDiff) Empty() bool {
	return len(x.ToAdd) == 0 && len(x.ToUpdate) == 0 && len(x.ToRemove) == 0
}

// WriteResult counts what a batched repository write applied.
type WriteResult struct {
	Added   int `json:"added"`
	Updated int `json:"updated"`
	Removed int `json:"removed"`
}

type ReconcileOption struct {
	TriggerImmediately bool
}

// ReconcileResult is returned by a reconciliation pass. Repositories is the post-diff set;
// it is empty when the installation is suspended.
type ReconcileResult struct {
	Installation *Installation  `json:"installation"`
	Repositories []*Repository `json:"repositories"`
	Written      WriteResult   `json:"written"`
	Scheduled    int           `json:"scheduled"`
}

// FullSyncResult summarizes one full-sync sweep.
type FullSyncResult struct {
	Total     int                        `json:"total"`
	Succeeded int                        `json:"succeeded"`
	Failed    []types.GitHubAppInstallID `json:"failed"`
}
