package utils

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
)

// WriteLock serializes history writes between vitalis processes sharing one
// database. The lock file sits next to the database as <db>.lock.
type WriteLock struct {
	fl *flock.Flock
}

// NewWriteLock resolves dbPath, creates its directory and prepares the lock
// file. Nothing is locked yet.
func NewWriteLock(dbPath string) (*WriteLock, error) {
	abs, err := GetAbsDBPath(dbPath)
	if err != nil {
		return nil, fmt.Errorf("resolve db path: %w", err)
	}
	if err := EnsureDBDir(abs); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}
	return &WriteLock{fl: flock.New(abs + ".lock")}, nil
}

// Path is the lock file location.
func (l *WriteLock) Path() string { return l.fl.Path() }

// Lock blocks until no other process is writing history.
func (l *WriteLock) Lock() error {
	ok, err := l.fl.TryLock()
	if err != nil {
		return fmt.Errorf("history write lock %s: %w", l.Path(), err)
	}
	if ok {
		return nil
	}
	Log.Debugf("history write waiting for another vitalis process (%s)", l.Path())
	if err := l.fl.Lock(); err != nil {
		return fmt.Errorf("history write lock %s: %w", l.Path(), err)
	}
	return nil
}

// Unlock releases the lock. Releasing a lock that is not held is a no-op.
func (l *WriteLock) Unlock() error {
	if !l.fl.Locked() {
		return nil
	}
	if err := l.fl.Unlock(); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("release history write lock %s: %w", l.Path(), err)
	}
	return nil
}

// GetAbsDBPath resolves the database path, defaulting to ~/.config/vitalis/vitalis.sqlite.
func GetAbsDBPath(dbPath string) (string, error) {
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(home, ".config", "vitalis", "vitalis.sqlite"), nil
	}
	return filepath.Abs(dbPath)
}

// EnsureDBDir creates the parent directory of the database file.
func EnsureDBDir(absPath string) error {
	return os.MkdirAll(filepath.Dir(absPath), 0o755)
}
