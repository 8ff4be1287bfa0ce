// Copyright 2026 The Droneplay Authors
// SPDX-License-Identifier: Apache-2.0

package cage

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/pflag"

	"github.com/droneplay/droneplay/cmd/droneplay/cli"
)

type lockParams struct {
	Path string `flag:"path,p" desc:"the only executable the user may run through sudo"`
}

func lockCommand(inv *cli.Invocation) *cli.Command {
	var params lockParams

	return &cli.Command{
		Name:    "lock",
		Summary: "Restrict a user to a single executable",
		Description: `Overwrite the user's policy file so that sudo only lets them run one
executable, followed by the "cage safeword" arguments.

The user must exist in the system user database.`,
		Usage: "droneplay cage lock <username> [flags]",
		Examples: []cli.Example{
			{
				Description: "Cage alice to a custom build of droneplay",
				Command:     "sudo droneplay cage lock alice --path /opt/droneplay/bin/droneplay",
			},
		},
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("lock", &params, cli.Defaults{
				"path": inv.Config.Cage.DefaultExecutable,
			})
		},
		Run: func(ctx context.Context, args []string, logger *slog.Logger) error {
			if err := cli.RequireArgs(args, "username"); err != nil {
				return err
			}
			username := args[0]

			if err := newController(inv, logger).Lock(username, params.Path); err != nil {
				return err
			}
			fmt.Fprintf(inv.Stdout, "%s has been caged\n", username)
			return nil
		},
	}
}
