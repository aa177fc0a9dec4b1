package types

import "github.com/google/uuid"

type RequestID string

func NewRequestID() RequestID {
	return RequestID(uuid.NewString())
}

type SyncRecordID string

func NewSyncRecordID() SyncRecordID {
	return SyncRecordID(uuid.NewString())
}
