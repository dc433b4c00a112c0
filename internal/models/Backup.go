package models

import "time"

// Backup is the JSON export envelope, also accepted by import.
type Backup struct {
	Sessions   []Session `json:"sessions"`
	Settings   *Settings `json:"settings,omitempty"`
	ExportDate time.Time `json:"exportDate"`
}

type ImportResult struct {
	Imported      int  `json:"imported"`
	Skipped       int  `json:"skipped"`
	SettingsSaved bool `json:"settingsSaved"`
}
