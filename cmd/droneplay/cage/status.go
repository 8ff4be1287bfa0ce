// Copyright 2026 The Droneplay Authors
// SPDX-License-Identifier: Apache-2.0

package cage

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/pflag"

	"github.com/droneplay/droneplay/cmd/droneplay/cli"
	"github.com/droneplay/droneplay/lib/sudoers"
)

type statusParams struct {
	cli.JSONOutput
}

func statusCommand(inv *cli.Invocation) *cli.Command {
	var params statusParams

	return &cli.Command{
		Name:    "status",
		Summary: "Show whether a user is caged",
		Description: `Read the user's policy file and report one of:

  absent        no policy file
  restricted    caged to one executable
  unrestricted  released
  unmanaged     the file holds something droneplay did not write

Nothing is written.`,
		Usage: "droneplay cage status <username> [flags]",
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("status", &params, nil)
		},
		Run: func(ctx context.Context, args []string, logger *slog.Logger) error {
			if err := cli.RequireArgs(args, "username"); err != nil {
				return err
			}

			status, err := newController(inv, logger).Status(args[0])
			if err != nil {
				return err
			}
			if done, err := params.EmitJSON(inv.Stdout, status); done {
				return err
			}

			fmt.Fprintln(inv.Stdout, describe(status))
			return nil
		},
	}
}

func describe(status sudoers.Status) string {
	switch status.State {
	case sudoers.StateRestricted:
		return fmt.Sprintf("%s is caged to %s", status.Username, status.Executable)
	case sudoers.StateUnrestricted:
		return fmt.Sprintf("%s is released", status.Username)
	case sudoers.StateUnmanaged:
		return fmt.Sprintf("%s has a policy file droneplay did not write (%s)", status.Username, status.Path)
	default:
		return fmt.Sprintf("%s has no policy file (%s)", status.Username, status.Path)
	}
}
