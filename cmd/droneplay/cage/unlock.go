// Copyright 2026 The Droneplay Authors
// SPDX-License-Identifier: Apache-2.0

package cage

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/droneplay/droneplay/cmd/droneplay/cli"
)

func unlockCommand(inv *cli.Invocation) *cli.Command {
	return &cli.Command{
		Name:        "unlock",
		Summary:     "Restore a user's unrestricted sudo",
		Description: "Overwrite the user's policy file with an unrestricted entry.",
		Usage:       "droneplay cage unlock <username>",
		Run: func(ctx context.Context, args []string, logger *slog.Logger) error {
			if err := cli.RequireArgs(args, "username"); err != nil {
				return err
			}
			username := args[0]

			if err := newController(inv, logger).Unlock(username); err != nil {
				return err
			}
			fmt.Fprintf(inv.Stdout, "%s has been released\n", username)
			return nil
		},
	}
}
