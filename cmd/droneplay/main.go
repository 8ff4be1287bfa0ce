// Copyright 2026 The Droneplay Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/droneplay/droneplay/cmd/droneplay/cli"
	"github.com/droneplay/droneplay/cmd/droneplay/commands"
	"github.com/droneplay/droneplay/lib/config"
)

func main() {
	if err := run(); err != nil {
		// Commands that print their own output (like doctor) return an
		// exit error with the desired exit code. Don't print a redundant
		// "error:" line for those.
		if coder, ok := err.(interface{ ExitCode() int }); ok {
			os.Exit(coder.ExitCode())
		}
		fmt.Fprintf(os.Stderr, "error: %v\n", cli.Classify(err))
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := cli.NewCommandLogger(cfg.Level())
	inv := cli.SystemInvocation(cfg)
	return commands.Root(inv).Execute(context.Background(), os.Args[1:], logger)
}
