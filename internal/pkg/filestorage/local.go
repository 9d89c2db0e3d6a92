package filestorage

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/JuanS3/globant-data-eng/internal/pkg/logger"
)

// LocalStorage archives files on the local filesystem.
type LocalStorage struct {
	basePath string // The root directory where files will be stored
}

// NewLocalStorage creates a new LocalStorage instance rooted at basePath.
func NewLocalStorage(basePath string) (*LocalStorage, error) {
	if err := os.MkdirAll(basePath, os.ModePerm); err != nil {
		logger.Error().Err(err).Str("path", basePath).Msg("Failed to create storage directory")
		return nil, fmt.Errorf("failed to create storage directory %s: %w", basePath, err)
	}
	logger.Info().Str("path", basePath).Msg("Local storage directory ensured")

	return &LocalStorage{
		basePath: basePath,
	}, nil
}

// Archive stores the payload as <subDir>/<batchID><ext>, where ext is
// taken from the original filename. The returned path is relative to
// the storage root.
func (ls *LocalStorage) Archive(subDir string, batchID uuid.UUID, originalName string, data []byte) (string, error) {
	fullDirPath := ls.basePath
	if subDir != "" {
		fullDirPath = filepath.Join(ls.basePath, subDir)
		if err := os.MkdirAll(fullDirPath, os.ModePerm); err != nil {
			logger.Error().Err(err).Str("path", fullDirPath).Msg("Failed to create subdirectory")
			return "", fmt.Errorf("failed to create subdirectory: %w", err)
		}
	}

	ext := filepath.Ext(originalName)
	if ext == "" {
		ext = ".csv"
	}
	storedName := batchID.String() + ext

	dstPath := filepath.Join(fullDirPath, storedName)
	if err := os.WriteFile(dstPath, data, 0o644); err != nil {
		logger.Error().Err(err).Str("path", dstPath).Msg("Failed to write archived file")
		return "", fmt.Errorf("failed to write archived file: %w", err)
	}

	storedPath := storedName
	if subDir != "" {
		storedPath = filepath.Join(subDir, storedName)
	}

	logger.Info().Str("filename", originalName).Str("saved_as", storedPath).Msg("File archived")
	return storedPath, nil
}

// Remove deletes an archived file. A missing file is treated as
// already removed.
func (ls *LocalStorage) Remove(storedPath string) error {
	if storedPath == "" {
		return nil
	}

	physicalPath := ls.FullPath(storedPath)
	if physicalPath == "" {
		return fmt.Errorf("invalid stored path: %s", storedPath)
	}

	if _, err := os.Stat(physicalPath); os.IsNotExist(err) {
		logger.Warn().Str("path", physicalPath).Msg("File to delete does not exist")
		return nil
	}

	if err := os.Remove(physicalPath); err != nil {
		logger.Error().Err(err).Str("path", physicalPath).Msg("Failed to delete file")
		return fmt.Errorf("failed to delete file: %w", err)
	}

	logger.Info().Str("path", physicalPath).Msg("Archived file deleted")
	return nil
}

// FullPath returns the full filesystem path for a stored path. Paths
// escaping the storage root resolve to empty.
func (ls *LocalStorage) FullPath(storedPath string) string {
	cleaned := filepath.Clean(storedPath)
	if cleaned == "" || cleaned == "." || strings.HasPrefix(cleaned, "..") || filepath.IsAbs(cleaned) {
		return ""
	}
	return filepath.Join(ls.basePath, cleaned)
}
