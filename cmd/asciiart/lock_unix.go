//go:build !windows

package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"syscall"

	"github.com/dixieflatline76/asciiart/config"
	"github.com/dixieflatline76/asciiart/util/log"
)

var lockFile *os.File

// acquireLock takes an exclusive fcntl lock on a file in the temp dir.
// It reports false without error when another instance holds the lock.
func acquireLock() (bool, error) {
	lockFilePath := filepath.Join(os.TempDir(), config.LockName+".lock")
	file, err := os.OpenFile(lockFilePath, os.O_RDWR|os.O_CREATE, 0o666)
	if err != nil {
		return false, fmt.Errorf("failed to open lock file: %w", err)
	}

	err = syscall.FcntlFlock(file.Fd(), syscall.F_SETLK, &syscall.Flock_t{
		Type:   syscall.F_WRLCK,
		Whence: 0,
		Start:  0,
		Len:    0, // whole file
	})
	if err != nil {
		file.Close()
		if errors.Is(err, syscall.EAGAIN) || errors.Is(err, syscall.EACCES) {
			return false, nil
		}
		return false, fmt.Errorf("failed to acquire lock: %w", err)
	}

	lockFile = file
	return true, nil
}

// releaseLock drops the lock and removes the lock file.
func releaseLock() {
	if lockFile == nil {
		return
	}
	if err := syscall.FcntlFlock(lockFile.Fd(), syscall.F_SETLK, &syscall.Flock_t{
		Type: syscall.F_UNLCK,
		Len:  0,
	}); err != nil {
		log.Printf("Failed to unlock %s: %v", lockFile.Name(), err)
	}
	lockFile.Close()
	os.Remove(lockFile.Name())
	lockFile = nil
}
