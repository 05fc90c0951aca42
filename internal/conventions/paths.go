package conventions

import "path/filepath"

const (
	// DefaultDataDir is the default fitrack data directory name (relative to home).
	DefaultDataDir = ".fitrack"
	// DBFile is the SQLite database filename with the local session.
	DBFile = "fitrack.db"
)

// DBPath returns the database path inside a home directory.
func DBPath(homeDir string) string {
	return filepath.Join(homeDir, DefaultDataDir, DBFile)
}
