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

type showParams struct {
	rootParams
	cli.JSONOutput
}

func showCommand(inv *cli.Invocation) *cli.Command {
	var params showParams

	return &cli.Command{
		Name:        "show",
		Summary:     "Check a user's mantra directory",
		Description: "Check whether <root>/<username> exists. Nothing is created.",
		Usage:       "droneplay mantra show <username> [flags]",
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("show", &params, rootDefaults(inv))
		},
		Run: func(ctx context.Context, args []string, logger *slog.Logger) error {
			if err := cli.RequireArgs(args, "username"); err != nil {
				return err
			}

			presence, err := newManager(inv, logger).Show(params.Root, args[0])
			if err != nil {
				return err
			}
			if done, err := params.EmitJSON(inv.Stdout, presence); done {
				return err
			}

			if presence.Exists {
				fmt.Fprintln(inv.Stdout, "mantra show")
			} else {
				fmt.Fprintln(inv.Stdout, "mantra directory does not exist")
			}
			return nil
		},
	}
}
