// Copyright 2026 The Droneplay Authors
// SPDX-License-Identifier: Apache-2.0

package cage

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/droneplay/droneplay/cmd/droneplay/cli"
	"github.com/droneplay/droneplay/lib/sudoers"
)

func safewordCommand(inv *cli.Invocation) *cli.Command {
	return &cli.Command{
		Name:    "safeword",
		Summary: "Release the user who invoked sudo",
		Description: `Restore unrestricted sudo for the user named by SUDO_USER. Only the
invoking user can be released this way; there is no target argument.

Run outside sudo, it prints a reminder and changes nothing.`,
		Usage: "sudo droneplay cage safeword",
		Run: func(ctx context.Context, args []string, logger *slog.Logger) error {
			if err := cli.RequireArgs(args); err != nil {
				return err
			}

			username, err := newController(inv, logger).Safeword(inv.LookupEnv)
			if errors.Is(err, sudoers.ErrNoDelegator) {
				fmt.Fprintf(inv.Stdout, "Safeword needs to be run with sudo: %v\n", err)
				return nil
			}
			if err != nil {
				return err
			}
			fmt.Fprintf(inv.Stdout, "%s has used their safeword\n", username)
			return nil
		},
	}
}
