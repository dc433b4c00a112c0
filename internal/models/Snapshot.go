package models

const SnapshotVersion = 1

// UserData is everything stored for one user.
type UserData struct {
	Sessions []Session `json:"sessions"`
	Settings *Settings `json:"settings,omitempty"`
}

// Snapshot is the on-disk image of the in-memory store.
type Snapshot struct {
	Version int                  `json:"version"`
	Users   map[string]*UserData `json:"users"`
}
