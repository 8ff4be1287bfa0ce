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

func safewordCommand(inv *cli.Invocation) *cli.Command {
	var params rootParams

	return &cli.Command{
		Name:        "safeword",
		Summary:     "Print the mantra root",
		Description: "Print the mantra root. The filesystem is not consulted.",
		Usage:       "droneplay mantra safeword [flags]",
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("safeword", &params, rootDefaults(inv))
		},
		Run: func(ctx context.Context, args []string, logger *slog.Logger) error {
			if err := cli.RequireArgs(args); err != nil {
				return err
			}
			fmt.Fprintf(inv.Stdout, "safeword %s\n", params.Root)
			return nil
		},
	}
}
