// Copyright 2026 The Droneplay Authors
// SPDX-License-Identifier: Apache-2.0

package sudoers

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/droneplay/droneplay/lib/principal"
)

// DelegatorVariable names the environment variable sudo sets to the
// user who invoked it.
const DelegatorVariable = "SUDO_USER"

// ErrNoDelegator is returned by [Controller.Safeword] when the process
// was not started through sudo. It is a usage mistake, not a failure.
var ErrNoDelegator = errors.New("environment variable not found")

// Controller cages and releases users by rewriting their policy file.
type Controller struct {
	// Dir holds the policy files. Production callers use [DefaultDir].
	Dir string

	// Users resolves target usernames. Lock and Unlock refuse names
	// that do not resolve.
	Users principal.Directory

	Logger *slog.Logger
}

// NewController returns a Controller writing into dir.
func NewController(dir string, users principal.Directory, logger *slog.Logger) *Controller {
	return &Controller{Dir: dir, Users: users, Logger: logger}
}

// Path returns the policy file path for username. username must
// already have passed [principal.ValidateUsername].
func (c *Controller) Path(username string) string {
	return filepath.Join(c.Dir, username)
}

// Lock restricts username to running executable (with the safeword
// arguments). Any previous policy for the user is replaced.
func (c *Controller) Lock(username, executable string) error {
	if executable == "" {
		return fmt.Errorf("caging %s: executable path is empty", username)
	}
	if strings.ContainsAny(executable, "\n\x00") {
		return fmt.Errorf("caging %s: executable path %q contains a newline or NUL", username, executable)
	}
	return c.apply("lock", Restricted(username, executable))
}

// Unlock restores unrestricted sudo for username.
func (c *Controller) Unlock(username string) error {
	return c.apply("unlock", Unrestricted(username))
}

// Safeword releases the user who ran sudo. lookupEnv is the
// invocation's environment (os.LookupEnv in production). Returns the
// released username, or ErrNoDelegator without touching any file when
// SUDO_USER is unset or empty.
func (c *Controller) Safeword(lookupEnv func(string) (string, bool)) (string, error) {
	username, ok := lookupEnv(DelegatorVariable)
	if !ok || username == "" {
		return "", ErrNoDelegator
	}
	if err := c.Unlock(username); err != nil {
		return "", err
	}
	return username, nil
}

// Status reads the current policy file for username without changing
// it.
func (c *Controller) Status(username string) (Status, error) {
	if err := principal.ValidateUsername(username); err != nil {
		return Status{}, err
	}

	status := Status{Username: username, Path: c.Path(username)}
	content, err := os.ReadFile(status.Path)
	if errors.Is(err, os.ErrNotExist) {
		status.State = StateAbsent
		return status, nil
	}
	if err != nil {
		return Status{}, fmt.Errorf("reading policy for %s: %w", username, err)
	}

	status.State, status.Executable = Classify(username, string(content))
	return status, nil
}

// apply validates the entry's user and writes the entry.
func (c *Controller) apply(action string, entry Entry) error {
	username := entry.Username
	if err := principal.ValidateUsername(username); err != nil {
		return err
	}
	if _, err := c.Users.Lookup(username); err != nil {
		return err
	}

	logger := c.Logger.With("command", "cage/"+action, "user", username, "path", c.Path(username))
	if strings.Contains(username, ".") {
		logger.Warn("sudo skips #includedir files whose names contain '.'; this policy will not take effect until it is referenced explicitly")
	}

	if err := writePolicy(c.Dir, username, []byte(entry.String())); err != nil {
		return fmt.Errorf("writing policy for %s: %w", username, err)
	}

	if entry.IsRestricted() {
		logger.Info("policy written", "scope", entry.Executable)
	} else {
		logger.Info("policy written", "scope", unrestrictedScope)
	}
	return nil
}
