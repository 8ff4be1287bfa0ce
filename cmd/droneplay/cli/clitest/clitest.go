// Copyright 2026 The Droneplay Authors
// SPDX-License-Identifier: Apache-2.0

// Package clitest builds [cli.Invocation] values for command tests.
package clitest

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/droneplay/droneplay/cmd/droneplay/cli"
	"github.com/droneplay/droneplay/lib/config"
	"github.com/droneplay/droneplay/lib/principal/principaltest"
)

// Harness is an Invocation wired to in-memory fakes and temporary
// directories, plus handles on those fakes.
type Harness struct {
	*cli.Invocation

	// Output collects everything written to Stdout.
	Output *bytes.Buffer

	// Directory and Owner are the fakes behind Users and Owner.
	Directory *principaltest.Directory
	Owner     *principaltest.Owner

	// Environment backs LookupEnv.
	Environment map[string]string
}

// New returns a Harness whose directory knows users (the first is the
// current user), whose policy directory and mantra root are fresh
// temporary directories, and whose effective uid is 1000.
func New(t testing.TB, users ...string) *Harness {
	t.Helper()

	cfg := config.Default()
	cfg.Mantra.Root = t.TempDir()

	h := &Harness{
		Output:      &bytes.Buffer{},
		Directory:   principaltest.NewDirectory(users...),
		Owner:       &principaltest.Owner{},
		Environment: map[string]string{},
	}
	h.Invocation = &cli.Invocation{
		Stdout: h.Output,
		LookupEnv: func(key string) (string, bool) {
			value, ok := h.Environment[key]
			return value, ok
		},
		Users:      h.Directory,
		Owner:      h.Owner,
		SudoersDir: t.TempDir(),
		Euid:       func() int { return 1000 },
		Config:     cfg,
	}
	return h
}

// Run executes command with args and a discarding logger, returning
// the error and whatever was printed.
func (h *Harness) Run(command *cli.Command, args ...string) (string, error) {
	h.Output.Reset()
	err := command.Execute(context.Background(), args, slog.New(slog.DiscardHandler))
	return h.Output.String(), err
}
