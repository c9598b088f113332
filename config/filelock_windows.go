//go:build windows

package config

import (
	"fmt"
	"os"

	"golang.org/x/sys/windows"
)

// Lock acquires an exclusive lock, blocking until it is available.
func (l *FileLock) Lock() error {
	return l.acquire(os.O_RDWR, windows.LOCKFILE_EXCLUSIVE_LOCK)
}

// RLock acquires a shared lock, blocking until it is available. Several
// readers may hold it at once.
func (l *FileLock) RLock() error {
	return l.acquire(os.O_RDONLY, 0)
}

func (l *FileLock) acquire(flag int, lockFlags uint32) error {
	if l.file != nil {
		return fmt.Errorf("lock %s already held", l.path)
	}

	f, err := os.OpenFile(l.path, os.O_CREATE|flag, 0644)
	if err != nil {
		return fmt.Errorf("failed to open lock file: %w", err)
	}
	// Lock the first byte; every holder agrees on the same range.
	if err := windows.LockFileEx(windows.Handle(f.Fd()), lockFlags, 0, 1, 0, new(windows.Overlapped)); err != nil {
		f.Close()
		return fmt.Errorf("failed to acquire lock %s: %w", l.path, err)
	}

	l.file = f
	return nil
}

// Unlock releases the lock. Unlocking a lock that is not held is a no-op.
func (l *FileLock) Unlock() error {
	if l.file == nil {
		return nil
	}
	defer func() { l.file = nil }()

	if err := windows.UnlockFileEx(windows.Handle(l.file.Fd()), 0, 1, 0, new(windows.Overlapped)); err != nil {
		l.file.Close()
		return fmt.Errorf("failed to release lock: %w", err)
	}
	return l.file.Close()
}
