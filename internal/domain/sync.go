package domain

import "time"

// SyncMetadata tracks the last import of a catalog document
type SyncMetadata struct {
	ConfigName   string    `json:"config_name" db:"config_name"`
	LastSyncTime time.Time `json:"last_sync_time" db:"last_sync_time"`
	FileHash     string    `json:"file_hash" db:"file_hash"`
}
