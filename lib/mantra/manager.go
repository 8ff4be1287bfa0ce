// Copyright 2026 The Droneplay Authors
// SPDX-License-Identifier: Apache-2.0

package mantra

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/droneplay/droneplay/lib/principal"
)

// DefaultRoot is the parent of all mantra directories.
const DefaultRoot = "/var/lib/droneplay-mantra/"

// directoryMode applies to the mantra directory and any missing
// parents created along with it.
const directoryMode = 0o755

// Manager creates and inspects mantra directories.
type Manager struct {
	Users  principal.Directory
	Owner  principal.Owner
	Logger *slog.Logger
}

// NewManager returns a Manager.
func NewManager(users principal.Directory, owner principal.Owner, logger *slog.Logger) *Manager {
	return &Manager{Users: users, Owner: owner, Logger: logger}
}

// Presence is the answer to "does this user's mantra directory exist".
type Presence struct {
	Username string `json:"username"`
	Path     string `json:"path"`
	Exists   bool   `json:"exists"`
}

// Assign makes sure root/username exists, creating missing parents.
// When the directory is created by this call it is chowned to the
// user (group unchanged). An existing directory is left exactly as it
// is. Returns whether the directory was created.
//
// The user is resolved before anything is created, so an unknown user
// fails with [principal.ErrUnknownUser] and leaves the filesystem
// untouched.
func (m *Manager) Assign(root, username string) (bool, error) {
	if err := principal.ValidateUsername(username); err != nil {
		return false, err
	}
	account, err := m.Users.Lookup(username)
	if err != nil {
		return false, err
	}

	path := filepath.Join(root, username)
	logger := m.Logger.With("command", "mantra/assign", "user", username, "path", path)

	if _, err := os.Stat(path); err == nil {
		logger.Debug("mantra directory already exists; ownership left as is")
		return false, nil
	}

	if err := os.MkdirAll(path, directoryMode); err != nil {
		return false, fmt.Errorf("creating mantra directory for %s: %w", username, err)
	}
	if err := m.Owner.SetOwner(path, account.UID); err != nil {
		return true, fmt.Errorf("assigning mantra directory to %s: %w", username, err)
	}

	logger.Info("mantra directory created", "uid", account.UID)
	return true, nil
}

// Recite reports on the mantra directory of the user running the
// process.
func (m *Manager) Recite(root string) (Presence, error) {
	account, err := m.Users.Current()
	if err != nil {
		return Presence{}, err
	}
	return m.Show(root, account.Name)
}

// Show reports on the mantra directory of username. The check is
// made on every call; any stat failure counts as absent.
func (m *Manager) Show(root, username string) (Presence, error) {
	if err := principal.ValidateUsername(username); err != nil {
		return Presence{}, err
	}
	path := filepath.Join(root, username)
	_, err := os.Stat(path)
	return Presence{Username: username, Path: path, Exists: err == nil}, nil
}
