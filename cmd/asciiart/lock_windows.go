//go:build windows

package main

import (
	"errors"
	"fmt"

	"golang.org/x/sys/windows"

	"github.com/dixieflatline76/asciiart/config"
	"github.com/dixieflatline76/asciiart/util/log"
)

var mutex windows.Handle

// acquireLock creates a named mutex. It reports false without error when the
// mutex already exists, meaning another instance is running.
func acquireLock() (bool, error) {
	namePtr, err := windows.UTF16PtrFromString(config.LockName + "_SingleInstanceMutex")
	if err != nil {
		return false, err
	}

	handle, err := windows.CreateMutex(nil, false, namePtr)
	if errors.Is(err, windows.ERROR_ALREADY_EXISTS) {
		if handle != 0 {
			windows.CloseHandle(handle)
		}
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to create mutex: %w", err)
	}

	mutex = handle
	return true, nil
}

// releaseLock closes the mutex handle.
func releaseLock() {
	if mutex == 0 {
		return
	}
	if err := windows.CloseHandle(mutex); err != nil {
		log.Printf("Failed to close mutex handle: %v", err)
	}
	mutex = 0
}
