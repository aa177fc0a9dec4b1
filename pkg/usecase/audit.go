package usecase

import (
	"context"

	"cloud.google.com/go/bigquery"
	"github.com/m-mizutani/bqs"
	"github.com/m-mizutani/goerr/v2"

	"github.com/m-mizutani/octosched/pkg/domain/interfaces"
	"github.com/m-mizutani/octosched/pkg/domain/model"
	"github.com/m-mizutani/octosched/pkg/utils/errutil"
)

// recordSync exports one reconciliation pass to BigQuery when it is configured. A failed
// export is reported but never fails the pass.
func (x *UseCase) recordSync(ctx context.Context, record *model.SyncRecord) {
	bq := x.clients.BigQuery()
	if bq == nil {
		return
	}

	if err := insertSyncRecord(ctx, bq, record); err != nil {
		errutil.HandleError(ctx, "failed to export sync record", err)
	}
}

func insertSyncRecord(ctx context.Context, bq interfaces.BigQuery, record *model.SyncRecord) error {
	schema, err := createOrUpdateBigQueryTable(ctx, bq, record)
	if err != nil {
		return err
	}

	raw := model.SyncRawRecord{
		SyncRecord: *record,
		Timestamp:  record.Timestamp.UnixMicro(),
	}
	if err := bq.Insert(ctx, schema, raw); err != nil {
		return goerr.Wrap(err, "failed to insert sync record", goerr.V("recordID", record.ID))
	}
	return nil
}

func createOrUpdateBigQueryTable(ctx context.Context, bq interfaces.BigQuery, record *model.SyncRecord) (bigquery.Schema, error) {
	schema, err := bqs.Infer(record)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to infer sync record schema")
	}

	md, err := bq.GetMetadata(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get BigQuery table metadata")
	}
	if md == nil {
		if err := bq.CreateTable(ctx, &bigquery.TableMetadata{
			Schema: schema,
		}); err != nil {
			return nil, goerr.Wrap(err, "failed to create BigQuery table")
		}
		return schema, nil
	}

	if bqs.Equal(md.Schema, schema) {
		return schema, nil
	}

	merged, err := bqs.Merge(md.Schema, schema)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to merge BigQuery schema")
	}
	if err := bq.UpdateTable(ctx, bigquery.TableMetadataToUpdate{
		Schema: merged,
	}, md.ETag); err != nil {
		return nil, goerr.Wrap(err, "failed to update BigQuery table")
	}

	return merged, nil
}
