package bq_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"cloud.google.com/go/bigquery"
	"github.com/google/uuid"
	"github.com/m-mizutani/bqs"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/m-mizutani/octosched/pkg/domain/model"
	"github.com/m-mizutani/octosched/pkg/domain/types"
	"github.com/m-mizutani/octosched/pkg/infra/bq"
	"github.com/m-mizutani/octosched/pkg/utils/testutil"
)

func newTestClient(t *testing.T, prefix string) (*bq.Client, types.BQTableID) {
	projectID := testutil.GetEnvOrSkip(t, "TEST_BIGQUERY_PROJECT_ID")
	datasetID := testutil.GetEnvOrSkip(t, "TEST_BIGQUERY_DATASET_ID")

	tblName := types.BQTableID(time.Now().Format(prefix + "_20060102_150405"))
	client := gt.R1(bq.New(context.Background(),
		types.GoogleProjectID(projectID),
		types.BQDatasetID(datasetID),
		tblName,
		nil,
		bq.WithSchemaRetry(10, 3*time.Second),
	)).NoError(t)
	t.Cleanup(func() { _ = client.Close() })

	return client, tblName
}

func TestInsertSyncRecord(t *testing.T) {
	client, tblName := newTestClient(t, "sync_record_test")
	ctx := context.Background()

	record := model.SyncRecord{
		ID:             types.NewSyncRecordID(),
		Timestamp:      time.Now(),
		InstallationID: 1234,
		AccountLogin:   "octo-org",
		Trigger:        string(model.SyncTriggerAdmin),
		Added:          2,
		Updated:        1,
		Scheduled:      3,
	}
	raw := model.SyncRawRecord{
		SyncRecord: record,
		Timestamp:  record.Timestamp.UnixMicro(),
	}

	schema := gt.R1(bqs.Infer(record)).NoError(t)
	gt.NoError(t, client.CreateTable(ctx, &bigquery.TableMetadata{
		Name:   tblName.String(),
		Schema: schema,
	}))

	md := gt.R1(client.GetMetadata(ctx)).NoError(t)
	gt.V(t, md).NotEqual(nil)
	gt.True(t, bqs.Equal(md.Schema, schema))

	gt.NoError(t, client.Insert(ctx, schema, raw))
}

func TestSchemaUpdateThenInsert(t *testing.T) {
	client, tblName := newTestClient(t, "schema_update_test")
	ctx := context.Background()

	initial := bigquery.Schema{
		{Name: "id", Type: bigquery.StringFieldType},
	}
	gt.NoError(t, client.CreateTable(ctx, &bigquery.TableMetadata{
		Name:   tblName.String(),
		Schema: initial,
	}))

	md := gt.R1(client.GetMetadata(ctx)).NoError(t)
	updated := gt.R1(bqs.Merge(md.Schema, bigquery.Schema{
		{Name: "added", Type: bigquery.IntegerFieldType},
	})).NoError(t)
	gt.NoError(t, client.UpdateTable(ctx, bigquery.TableMetadataToUpdate{Schema: updated}, md.ETag))

	row := struct {
		ID    string `json:"id"`
		Added int    `json:"added"`
	}{ID: uuid.NewString(), Added: 3}
	gt.NoError(t, client.Insert(ctx, updated, row))
}

func TestGetMetadataOfMissingTable(t *testing.T) {
	client, _ := newTestClient(t, "missing_table_test")

	md, err := client.GetMetadata(context.Background())
	gt.NoError(t, err)
	gt.V(t, md).Equal(nil)
}

func TestIsSchemaNotFoundError(t *testing.T) {
	mismatch := status.Error(codes.InvalidArgument, "Input schema has more fields than BigQuery schema, extra fields: 'added'")

	t.Run("plain status error", func(t *testing.T) {
		gt.True(t, bq.IsSchemaNotFoundError(mismatch))
	})

	t.Run("wrapped twice", func(t *testing.T) {
		err := goerr.Wrap(goerr.Wrap(mismatch, "failed to append rows"), "failed to insert row")
		gt.True(t, bq.IsSchemaNotFoundError(err))
	})

	t.Run("other invalid argument", func(t *testing.T) {
		err := status.Error(codes.InvalidArgument, "Invalid request parameters")
		gt.False(t, bq.IsSchemaNotFoundError(err))
	})

	t.Run("other code", func(t *testing.T) {
		err := status.Error(codes.PermissionDenied, "Input schema has more fields than BigQuery schema")
		gt.False(t, bq.IsSchemaNotFoundError(err))
	})

	t.Run("not a grpc error", func(t *testing.T) {
		gt.False(t, bq.IsSchemaNotFoundError(errors.New("boom")))
	})
}
