package model

import (
	"time"

	"github.com/m-mizutani/octosched/pkg/domain/types"
)

// SyncTrigger names what started a reconciliation pass.
type SyncTrigger string

const (
	SyncTriggerWebhook  SyncTrigger = "webhook"
	SyncTriggerAdmin    SyncTrigger = "admin"
	SyncTriggerFullSync SyncTrigger = "full_sync"
	SyncTriggerFallback SyncTrigger = "fallback"
)

// SyncRecord is one audit row describing a reconciliation pass.
type SyncRecord struct {
	ID             types.SyncRecordID `bigquery:"id" json:"id"`
	Timestamp      time.Time          `bigquery:"timestamp" json:"timestamp"`
	InstallationID int64              `bigquery:"installation_id" json:"installation_id"`
	AccountLogin   string             `bigquery:"account_login" json:"account_login"`
	Trigger        string             `bigquery:"trigger" json:"trigger"`
	Suspended      bool               `bigquery:"suspended" json:"suspended"`
	Added          int                `bigquery:"added" json:"added"`
	Updated        int                `bigquery:"updated" json:"updated"`
	Removed        int                `bigquery:"removed" json:"removed"`
	Scheduled      int                `bigquery:"scheduled" json:"scheduled"`
	Error          string             `bigquery:"error" json:"error"`
}

// SyncRawRecord replaces the timestamp with microseconds for the BigQuery storage write API.
type SyncRawRecord struct {
	SyncRecord
	Timestamp int64 `bigquery:"timestamp" json:"timestamp"`
}
