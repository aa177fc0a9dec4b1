package firestore

import (
	"context"
	"fmt"
	"sort"
	"strconv"

	"cloud.google.com/go/firestore"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/octosched/pkg/domain/model"
	"github.com/m-mizutani/octosched/pkg/domain/types"
	"github.com/m-mizutani/octosched/pkg/repository"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	collectionInstallation     = "installation"
	collectionRepository       = "repository"
	collectionScheduleMetadata = "schedule_metadata"
	batchSize                  = 500
)

type installationRepository struct {
	client *firestore.Client
	prefix string
}

func (r *installationRepository) collection(name string) *firestore.CollectionRef {
	return r.client.Collection(r.prefix + name)
}

// ToRepositoryDocID builds the document ID of a repository. The pair of numeric ids is unique
// and never contains the ':' separator.
func ToRepositoryDocID(id types.GitHubAppInstallID, repoID types.GitHubRepoID) (string, error) {
	if id <= 0 || repoID <= 0 {
		return "", goerr.Wrap(repository.ErrInvalidInput, "installation ID or repository ID is empty",
			goerr.V("installationID", id),
			goerr.V("repoID", repoID),
		)
	}
	return fmt.Sprintf("%d:%d", id, repoID), nil
}

func installationDocID(id types.GitHubAppInstallID) string {
	return strconv.FormatInt(int64(id), 10)
}

func metadataDocID(repoID types.GitHubRepoID) string {
	return strconv.FormatInt(int64(repoID), 10)
}

// Installation operations

func (r *installationRepository) PutInstallation(ctx context.Context, inst *model.Installation) error {
	if err := inst.Validate(); err != nil {
		return err
	}

	docRef := r.collection(collectionInstallation).Doc(installationDocID(inst.ID))
	if _, err := docRef.Set(ctx, inst); err != nil {
		return goerr.Wrap(err, "failed to put installation",
			goerr.V("installationID", inst.ID),
		)
	}

	return nil
}

func (r *installationRepository) GetInstallation(ctx context.Context, id types.GitHubAppInstallID) (*model.Installation, error) {
	snap, err := r.collection(collectionInstallation).Doc(installationDocID(id)).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, goerr.Wrap(repository.ErrNotFound, "installation not found",
				goerr.V("installationID", id),
			)
		}
		return nil, goerr.Wrap(err, "failed to get installation",
			goerr.V("installationID", id),
		)
	}

	var inst model.Installation
	if err := snap.DataTo(&inst); err != nil {
		return nil, goerr.Wrap(err, "failed to decode installation",
			goerr.V("installationID", id),
		)
	}

	return &inst, nil
}

func (r *installationRepository) FindInstallationByLogin(ctx context.Context, login string) (*model.Installation, error) {
	iter := r.collection(collectionInstallation).
		Where("Account.Login", "==", login).
		Limit(1).
		Documents(ctx)
	defer iter.Stop()

	snap, err := iter.Next()
	if err == iterator.Done {
		return nil, goerr.Wrap(repository.ErrNotFound, "installation not found",
			goerr.V("login", login),
		)
	}
	if err != nil {
		return nil, goerr.Wrap(err, "failed to query installation by login",
			goerr.V("login", login),
		)
	}

	var inst model.Installation
	if err := snap.DataTo(&inst); err != nil {
		return nil, goerr.Wrap(err, "failed to decode installation",
			goerr.V("login", login),
		)
	}

	return &inst, nil
}

func (r *installationRepository) GetInstallationWithRepositories(ctx context.Context, id types.GitHubAppInstallID) (*model.Installation, []*model.Repository, error) {
	inst, err := r.GetInstallation(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	repos, err := r.ListRepositories(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	return inst, repos, nil
}

func (r *installationRepository) DeleteInstallation(ctx context.Context, id types.GitHubAppInstallID) error {
	repos, err := r.ListRepositories(ctx, id)
	if err != nil {
		return err
	}

	ops := r.repositoryDeleteOps(id, model.RepositoryIDs(repos))
	ops = append(ops, batchOp{
		ref: r.collection(collectionInstallation).Doc(installationDocID(id)),
	})

	if err := r.commit(ctx, ops); err != nil {
		return goerr.Wrap(err, "failed to delete installation",
			goerr.V("installationID", id),
		)
	}

	return nil
}

// Repository operations

func (r *installationRepository) ListRepositories(ctx context.Context, id types.GitHubAppInstallID) ([]*model.Repository, error) {
	iter := r.collection(collectionRepository).
		Where("InstallationID", "==", int64(id)).
		Documents(ctx)
	defer iter.Stop()

	var repos []*model.Repository
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to iterate repositories",
				goerr.V("installationID", id),
			)
		}

		var repo model.Repository
		if err := snap.DataTo(&repo); err != nil {
			return nil, goerr.Wrap(err, "failed to decode repository")
		}

		repos = append(repos, &repo)
	}

	sort.Slice(repos, func(i, j int) bool { return repos[i].ID < repos[j].ID })
	return repos, nil
}

func (r *installationRepository) WriteRepositories(ctx context.Context, id types.GitHubAppInstallID, live []*model.Repository) (*model.WriteResult, error) {
	for _, repo := range live {
		if err := repo.Validate(); err != nil {
			return nil, types.WrapCause(types.ErrReconciliation, err, "invalid repository in live set",
				goerr.V("installationID", id),
			)
		}
		if repo.InstallationID != id {
			return nil, goerr.Wrap(types.ErrReconciliation, "repository belongs to another installation",
				goerr.V("installationID", id),
				goerr.V("repoID", repo.ID),
				goerr.V("repoInstallationID", repo.InstallationID),
			)
		}
	}

	local, err := r.ListRepositories(ctx, id)
	if err != nil {
		return nil, types.WrapCause(types.ErrReconciliation, err, "failed to load stored repositories",
			goerr.V("installationID", id),
		)
	}

	diff := model.ComputeRepositoryDiff(local, live)

	var ops []batchOp
	for _, repo := range append(append([]*model.Repository{}, diff.ToAdd...), diff.ToUpdate...) {
		docID, err := ToRepositoryDocID(id, repo.ID)
		if err != nil {
			return nil, types.WrapCause(types.ErrReconciliation, err, "invalid repository in live set",
				goerr.V("installationID", id),
			)
		}
		ops = append(ops, batchOp{
			ref:  r.collection(collectionRepository).Doc(docID),
			data: repo,
		})
	}
	ops = append(ops, r.repositoryDeleteOps(id, diff.ToRemove)...)

	if err := r.commit(ctx, ops); err != nil {
		return nil, types.WrapCause(types.ErrReconciliation, err, "failed to write repositories",
			goerr.V("installationID", id),
			goerr.V("toAdd", len(diff.ToAdd)),
			goerr.V("toUpdate", len(diff.ToUpdate)),
			goerr.V("toRemove", len(diff.ToRemove)),
		)
	}

	return &model.WriteResult{
		Added:   len(diff.ToAdd),
		Updated: len(diff.ToUpdate),
		Removed: len(diff.ToRemove),
	}, nil
}

func (r *installationRepository) DeleteRepositories(ctx context.Context, id types.GitHubAppInstallID) error {
	repos, err := r.ListRepositories(ctx, id)
	if err != nil {
		return err
	}

	if err := r.commit(ctx, r.repositoryDeleteOps(id, model.RepositoryIDs(repos))); err != nil {
		return goerr.Wrap(err, "failed to delete repositories",
			goerr.V("installationID", id),
		)
	}

	return nil
}

func (r *installationRepository) GetRepository(ctx context.Context, id types.GitHubAppInstallID, repoID types.GitHubRepoID) (*model.Repository, error) {
	docID, err := ToRepositoryDocID(id, repoID)
	if err != nil {
		return nil, err
	}

	snap, err := r.collection(collectionRepository).Doc(docID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, goerr.Wrap(repository.ErrNotFound, "repository not found",
				goerr.V("installationID", id),
				goerr.V("repoID", repoID),
			)
		}
		return nil, goerr.Wrap(err, "failed to get repository",
			goerr.V("installationID", id),
			goerr.V("repoID", repoID),
		)
	}

	var repo model.Repository
	if err := snap.DataTo(&repo); err != nil {
		return nil, goerr.Wrap(err, "failed to decode repository",
			goerr.V("repoID", repoID),
		)
	}

	return &repo, nil
}

func (r *installationRepository) FindRepositoryByFullName(ctx context.Context, fullName string) (*model.Repository, error) {
	iter := r.collection(collectionRepository).
		Where("FullName", "==", fullName).
		Limit(1).
		Documents(ctx)
	defer iter.Stop()

	snap, err := iter.Next()
	if err == iterator.Done {
		return nil, goerr.Wrap(repository.ErrNotFound, "repository not found",
			goerr.V("fullName", fullName),
		)
	}
	if err != nil {
		return nil, goerr.Wrap(err, "failed to query repository by full name",
			goerr.V("fullName", fullName),
		)
	}

	var repo model.Repository
	if err := snap.DataTo(&repo); err != nil {
		return nil, goerr.Wrap(err, "failed to decode repository",
			goerr.V("fullName", fullName),
		)
	}

	return &repo, nil
}

func (r *installationRepository) PutRepository(ctx context.Context, repo *model.Repository) error {
	if err := repo.Validate(); err != nil {
		return err
	}

	docID, err := ToRepositoryDocID(repo.InstallationID, repo.ID)
	if err != nil {
		return err
	}

	if _, err := r.collection(collectionRepository).Doc(docID).Set(ctx, repo); err != nil {
		return goerr.Wrap(err, "failed to put repository",
			goerr.V("installationID", repo.InstallationID),
			goerr.V("repoID", repo.ID),
		)
	}

	return nil
}

func (r *installationRepository) DeleteRepository(ctx context.Context, id types.GitHubAppInstallID, repoID types.GitHubRepoID) (*model.Repository, error) {
	repo, err := r.GetRepository(ctx, id, repoID)
	if err != nil {
		return nil, err
	}

	if err := r.commit(ctx, r.repositoryDeleteOps(id, []types.GitHubRepoID{repoID})); err != nil {
		return nil, goerr.Wrap(err, "failed to delete repository",
			goerr.V("installationID", id),
			goerr.V("repoID", repoID),
		)
	}

	return repo, nil
}

// Schedule metadata operations

func (r *installationRepository) GetScheduleMetadata(ctx context.Context, repoID types.GitHubRepoID) (*model.ScheduleMetadata, error) {
	snap, err := r.collection(collectionScheduleMetadata).Doc(metadataDocID(repoID)).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, goerr.Wrap(repository.ErrNotFound, "schedule metadata not found",
				goerr.V("repoID", repoID),
			)
		}
		return nil, goerr.Wrap(err, "failed to get schedule metadata",
			goerr.V("repoID", repoID),
		)
	}

	var md model.ScheduleMetadata
	if err := snap.DataTo(&md); err != nil {
		return nil, goerr.Wrap(err, "failed to decode schedule metadata",
			goerr.V("repoID", repoID),
		)
	}

	return &md, nil
}

func (r *installationRepository) PutScheduleMetadata(ctx context.Context, md *model.ScheduleMetadata) error {
	if err := md.Validate(); err != nil {
		return err
	}

	if _, err := r.collection(collectionScheduleMetadata).Doc(metadataDocID(md.RepositoryID)).Set(ctx, md); err != nil {
		return goerr.Wrap(err, "failed to put schedule metadata",
			goerr.V("repoID", md.RepositoryID),
		)
	}

	return nil
}

// batchOp is a Set when data is non-nil, otherwise a Delete.
type batchOp struct {
	ref  *firestore.DocumentRef
	data any
}

func (r *installationRepository) repositoryDeleteOps(id types.GitHubAppInstallID, repoIDs []types.GitHubRepoID) []batchOp {
	ops := make([]batchOp, 0, len(repoIDs)*2)
	for _, repoID := range repoIDs {
		ops = append(ops,
			batchOp{ref: r.collection(collectionRepository).Doc(fmt.Sprintf("%d:%d", id, repoID))},
			batchOp{ref: r.collection(collectionScheduleMetadata).Doc(metadataDocID(repoID))},
		)
	}
	return ops
}

// commit applies ops in chunks of batchSize (Firestore limit per batch).
func (r *installationRepository) commit(ctx context.Context, ops []batchOp) error {
	for i := 0; i < len(ops); i += batchSize {
		end := i + batchSize
		if end > len(ops) {
			end = len(ops)
		}

		batch := r.client.Batch()
		for _, op := range ops[i:end] {
			if op.data != nil {
				batch.Set(op.ref, op.data)
			} else {
				batch.Delete(op.ref)
			}
		}

		if _, err := batch.Commit(ctx); err != nil {
			return goerr.Wrap(err, "failed to commit batch",
				goerr.V("batchStart", i),
				goerr.V("batchEnd", end),
			)
		}
	}

	return nil
}
