// Copyright 2026 The Droneplay Authors
// SPDX-License-Identifier: Apache-2.0

package mantra

import (
	"log/slog"

	"github.com/droneplay/droneplay/cmd/droneplay/cli"
	"github.com/droneplay/droneplay/lib/mantra"
)

// rootParams is the --path flag shared by every mantra subcommand.
type rootParams struct {
	Root string `flag:"path,p" desc:"directory holding the per-user mantra directories"`
}

func rootDefaults(inv *cli.Invocation) cli.Defaults {
	return cli.Defaults{"path": inv.Config.Mantra.Root}
}

// Command returns the "mantra" parent command with all subcommands.
func Command(inv *cli.Invocation) *cli.Command {
	return &cli.Command{
		Name:    "mantra",
		Summary: "Manage per-user mantra directories",
		Description: `Manage the per-user mantra directories under the mantra root
(/var/lib/droneplay-mantra/ unless --path or the config file says
otherwise).

"assign" creates <root>/<username>, owned by that user, and echoes the
mantra. The text itself is not stored.

"recite" and "show" report whether the directory exists, for the
current user or a named one. "safeword" prints the root and touches
nothing.`,
		Subcommands: []*cli.Command{
			assignCommand(inv),
			reciteCommand(inv),
			showCommand(inv),
			safewordCommand(inv),
		},
		Examples: []cli.Example{
			{
				Description: "Give bob a mantra directory",
				Command:     `sudo droneplay mantra assign bob "be kind"`,
			},
			{
				Description: "Check your own mantra directory",
				Command:     "droneplay mantra recite",
			},
		},
	}
}

func newManager(inv *cli.Invocation, logger *slog.Logger) *mantra.Manager {
	return mantra.NewManager(inv.Users, inv.Owner, logger)
}
