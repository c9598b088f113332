package config

import (
	"os"
	"path/filepath"
)

const lockFileName = "config.lock"

// FileLock provides file-based locking for cross-process synchronization.
// It uses a separate lock file rather than locking the config file directly,
// so the config can be replaced by rename while the lock is held.
type FileLock struct {
	path string
	file *os.File
}

// NewFileLock creates a new FileLock for the given path.
// The lock file will be created in the same directory as the given path.
func NewFileLock(path string) *FileLock {
	return &FileLock{
		path: filepath.Join(filepath.Dir(path), lockFileName),
	}
}

// Path returns the lock file's path.
func (l *FileLock) Path() string {
	return l.path
}

// GetConfigLock returns a FileLock for the default config location.
func GetConfigLock() (*FileLock, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return nil, err
	}
	return NewFileLock(filepath.Join(configDir, ConfigFileName)), nil
}
