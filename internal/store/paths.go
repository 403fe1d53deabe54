package store

import (
	"fmt"
	"os"
	"path/filepath"
)

// DataDirName is the per-project readscore directory.
const DataDirName = ".readscore"

// HistoryFile is the sqlite database inside the data directory.
const HistoryFile = "history.db"

// LocalDataPath returns the path to the .readscore directory for the given
// project root.
func LocalDataPath(projectRoot string) string {
	return filepath.Join(projectRoot, DataDirName)
}

// HistoryPath returns the path to the history database for the given project root.
func HistoryPath(projectRoot string) string {
	return filepath.Join(LocalDataPath(projectRoot), HistoryFile)
}

// EnsureDataDir creates the .readscore directory if it doesn't exist and
// returns its path.
func EnsureDataDir(projectRoot string) (string, error) {
	dir := LocalDataPath(projectRoot)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create %s directory: %w", DataDirName, err)
	}
	return dir, nil
}

// dataGitignore is the default .gitignore content for .readscore directories.
const dataGitignore = `# SQLite history (local runtime data)
history.db
history.db-shm
history.db-wal
`

// EnsureGitignore creates a .gitignore in the given data directory if one
// does not already exist.
func EnsureGitignore(dataDir string) error {
	gitignorePath := filepath.Join(dataDir, ".gitignore")
	if _, err := os.Stat(gitignorePath); err == nil {
		return nil // already exists, respect user customizations
	}
	if err := os.WriteFile(gitignorePath, []byte(dataGitignore), 0600); err != nil {
		return fmt.Errorf("failed to create .gitignore: %w", err)
	}
	return nil
}
