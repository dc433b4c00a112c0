package persistence

import (
	"fmt"
	"os"
	"path/filepath"

	"focustimer/internal/models"
	"focustimer/internal/persistence/interfaces"
	"focustimer/internal/providers"

	json "github.com/goccy/go-json"
)

type FileManager struct {
	source     interfaces.SnapshotSourceInterface
	compressor interfaces.CompressorInterface
	logger     providers.Logger
}

func NewFileManager(compressor interfaces.CompressorInterface, source interfaces.SnapshotSourceInterface, logger providers.Logger) *FileManager {
	return &FileManager{
		compressor: compressor,
		source:     source,
		logger:     logger,
	}
}

// SaveToFile writes the snapshot to a temp file and renames it over fileName.
func (f *FileManager) SaveToFile(fileName string) error {
	snapshot := f.source.GetSnapshot()

	jsonData, err := json.Marshal(snapshot)
	if err != nil {
		return err
	}
	data, err := f.compressor.Compress(jsonData)
	if err != nil {
		return err
	}

	if dir := filepath.Dir(fileName); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create snapshot dir: %w", err)
		}
	}

	tmpFile := fileName + ".tmp"
	file, err := os.Create(tmpFile)
	if err != nil {
		return err
	}

	_, err = file.Write(data)
	if err != nil {
		file.Close()
		os.Remove(tmpFile)
		return err
	}

	if err = file.Sync(); err != nil {
		file.Close()
		os.Remove(tmpFile)
		return err
	}

	if err = file.Close(); err != nil {
		os.Remove(tmpFile)
		return err
	}

	return os.Rename(tmpFile, fileName)
}

func (f *FileManager) Close() {
	f.compressor.Close()
}

// LoadFromFile restores a snapshot. A missing file is not an error. A file
// holding a JSON backup instead of a snapshot is loaded for fallbackUser.
func (f *FileManager) LoadFromFile(fileName, fallbackUser string) error {
	data, err := os.ReadFile(fileName)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	decompressedData, err := f.compressor.Decompress(data)
	if err != nil {
		return err
	}

	var snapshot models.Snapshot
	if err := json.Unmarshal(decompressedData, &snapshot); err == nil && snapshot.Users != nil {
		for userID, userData := range snapshot.Users {
			if userData == nil {
				userData = &models.UserData{}
			}
			f.source.PutUserData(userID, userData)
		}
		return nil
	}

	f.logger.Warnf(providers.TypeStore, "Snapshot format not recognized, trying backup format")
	var backup models.Backup
	if err := json.Unmarshal(decompressedData, &backup); err != nil || backup.Sessions == nil {
		f.logger.Warnf(providers.TypeStore, "Backup format not recognized either")
		if err == nil {
			err = fmt.Errorf("snapshot %s has no users and no sessions", fileName)
		}
		return err
	}
	f.source.PutUserData(fallbackUser, &models.UserData{
		Sessions: backup.Sessions,
		Settings: backup.Settings,
	})
	f.logger.Warnf(providers.TypeStore, "Loaded %d sessions from backup into user %s", len(backup.Sessions), fallbackUser)
	return nil
}
