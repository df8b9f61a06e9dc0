package domain

import (
	"time"
)

// SyncState é o estado da última sincronização de uma plataforma
type SyncState string

const (
	SyncSuccess    SyncState = "SUCCESS"
	SyncError      SyncState = "ERROR"
	SyncInProgress SyncState = "IN_PROGRESS"
	SyncPending    SyncState = "PENDING"
)

// SyncStatus é o resultado da última sincronização de uma plataforma.
// Existe no máximo um por plataforma; cada tentativa sobrescreve o anterior.
type SyncStatus struct {
	Platform         PlatformKind `json:"platform"`
	LastSync         time.Time    `json:"last_sync"`
	Status           SyncState    `json:"status"`
	Error            string       `json:"error,omitempty"`
	RecordsProcessed int          `json:"records_processed"`
	NextSync         *time.Time   `json:"next_sync,omitempty"`
}
