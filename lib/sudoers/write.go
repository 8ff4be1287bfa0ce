// Copyright 2026 The Droneplay Authors
// SPDX-License-Identifier: Apache-2.0

package sudoers

import (
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/sys/unix"
)

// policyMode is the mode visudo installs drop-ins with. sudo refuses
// world-writable files.
const policyMode = 0o440

// writePolicy replaces dir/name with data. The new content is written
// to a temporary file in dir, synced, and renamed over the target, so
// the target is always either the old or the new content. An exclusive
// flock on dir serialises concurrent writers.
func writePolicy(dir, name string, data []byte) error {
	unlock, err := lockDir(dir)
	if err != nil {
		return err
	}
	defer unlock()

	path := filepath.Join(dir, name)
	// The leading "." keeps sudo's #includedir from reading the
	// temporary file.
	temporaryPath := filepath.Join(dir, "."+name+".droneplay-tmp")
	os.Remove(temporaryPath) // leftover from an interrupted write

	file, err := os.OpenFile(temporaryPath, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o600)
	if err != nil {
		return fmt.Errorf("creating temporary policy file: %w", err)
	}

	// Write, chmod, sync, then close. If any step fails,
	// remove the temporary file and report the first error.
	if _, err := file.Write(data); err != nil {
		file.Close()
		os.Remove(temporaryPath)
		return fmt.Errorf("writing temporary policy file: %w", err)
	}
	if err := file.Chmod(policyMode); err != nil {
		file.Close()
		os.Remove(temporaryPath)
		return fmt.Errorf("setting policy file mode: %w", err)
	}
	if err := file.Sync(); err != nil {
		file.Close()
		os.Remove(temporaryPath)
		return fmt.Errorf("syncing temporary policy file: %w", err)
	}
	if err := file.Close(); err != nil {
		os.Remove(temporaryPath)
		return fmt.Errorf("closing temporary policy file: %w", err)
	}

	if err := os.Rename(temporaryPath, path); err != nil {
		os.Remove(temporaryPath)
		return fmt.Errorf("renaming policy file into place: %w", err)
	}

	// Make the rename durable before reporting success.
	if directory, err := os.Open(dir); err == nil {
		directory.Sync()
		directory.Close()
	}

	return nil
}

// lockDir takes an exclusive advisory lock on dir and returns the
// function that releases it.
func lockDir(dir string) (func(), error) {
	directory, err := os.Open(dir)
	if err != nil {
		return nil, fmt.Errorf("opening policy directory: %w", err)
	}
	for {
		err = unix.Flock(int(directory.Fd()), unix.LOCK_EX)
		if err != unix.EINTR {
			break
		}
	}
	if err != nil {
		directory.Close()
		return nil, fmt.Errorf("locking policy directory %s: %w", dir, err)
	}
	return func() {
		unix.Flock(int(directory.Fd()), unix.LOCK_UN)
		directory.Close()
	}, nil
}
