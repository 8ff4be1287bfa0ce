// Copyright 2026 The Droneplay Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"io"
	"os"

	"golang.org/x/sys/unix"

	"github.com/droneplay/droneplay/lib/config"
	"github.com/droneplay/droneplay/lib/principal"
	"github.com/droneplay/droneplay/lib/sudoers"
)

// Invocation is the process context a command runs in. Command
// constructors take one and close over it; nothing below main reads
// os.Environ, os.Stdout or the user database directly.
type Invocation struct {
	// Stdout receives the one-line confirmations and --json output.
	Stdout io.Writer

	// LookupEnv reads the invocation environment. Only SUDO_USER is
	// consulted.
	LookupEnv func(string) (string, bool)

	// Users resolves account names.
	Users principal.Directory

	// Owner changes file ownership.
	Owner principal.Owner

	// SudoersDir holds the policy files. Always [sudoers.DefaultDir]
	// outside tests.
	SudoersDir string

	// Euid reports the effective uid, for doctor's privilege check.
	Euid func() int

	// Config supplies flag defaults.
	Config *config.Config
}

// SystemInvocation returns the Invocation for a real process run.
func SystemInvocation(cfg *config.Config) *Invocation {
	return &Invocation{
		Stdout:     os.Stdout,
		LookupEnv:  os.LookupEnv,
		Users:      principal.SystemDirectory{},
		Owner:      principal.SystemOwner{},
		SudoersDir: sudoers.DefaultDir,
		Euid:       unix.Geteuid,
		Config:     cfg,
	}
}
