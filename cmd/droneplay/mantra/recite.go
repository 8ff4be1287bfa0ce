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

type reciteParams struct {
	rootParams
	cli.JSONOutput
}

func reciteCommand(inv *cli.Invocation) *cli.Command {
	var params reciteParams

	return &cli.Command{
		Name:    "recite",
		Summary: "Check your own mantra directory",
		Description: `Check whether <root>/<you> exists, where <you> is the user running
droneplay. Nothing is created.`,
		Usage: "droneplay mantra recite [flags]",
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("recite", &params, rootDefaults(inv))
		},
		Run: func(ctx context.Context, args []string, logger *slog.Logger) error {
			if err := cli.RequireArgs(args); err != nil {
				return err
			}

			presence, err := newManager(inv, logger).Recite(params.Root)
			if err != nil {
				return err
			}
			if done, err := params.EmitJSON(inv.Stdout, presence); done {
				return err
			}

			if presence.Exists {
				fmt.Fprintln(inv.Stdout, "mantra recite")
			} else {
				fmt.Fprintln(inv.Stdout, "wait for your programmer to set up your mantra directory")
			}
			return nil
		},
	}
}
