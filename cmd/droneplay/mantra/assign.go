// Copyright 2026 The Droneplay Authors
// SPDX-License-Identifier: Apache-2.0

package mantra

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/pflag"

	"github.com/droneplay/droneplay/cmd/droneplay/cli"
)

func assignCommand(inv *cli.Invocation) *cli.Command {
	var params rootParams

	return &cli.Command{
		Name:    "assign",
		Summary: "Create a user's mantra directory",
		Description: `Create <root>/<username> (and any missing parents) and hand it to the
user. The group is left alone. If the directory already exists nothing
is changed, including its ownership.

The user must exist in the system user database; nothing is created
otherwise.`,
		Usage: "droneplay mantra assign <username> <mantra> [flags]",
		Examples: []cli.Example{
			{
				Description: "Assign under a scratch root",
				Command:     `sudo droneplay mantra assign bob "be kind" --path /tmp/m`,
			},
		},
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("assign", &params, rootDefaults(inv))
		},
		Run: func(ctx context.Context, args []string, logger *slog.Logger) error {
			if err := cli.RequireArgs(args, "username", "mantra"); err != nil {
				return err
			}
			username, text := args[0], args[1]

			if _, err := newManager(inv, logger).Assign(params.Root, username); err != nil {
				return err
			}
			fmt.Fprintf(inv.Stdout, "mantra assign: %s\n", text)
			return nil
		},
	}
}
