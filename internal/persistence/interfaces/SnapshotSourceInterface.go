package interfaces

import "focustimer/internal/models"

// SnapshotSourceInterface is a store that can be dumped to and restored from
// a snapshot.
type SnapshotSourceInterface interface {
	GetSnapshot() *models.Snapshot
	PutUserData(userID string, data *models.UserData)
}
