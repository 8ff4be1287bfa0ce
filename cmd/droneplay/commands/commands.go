// Copyright 2026 The Droneplay Authors
// SPDX-License-Identifier: Apache-2.0

// Package commands builds the complete droneplay command tree from an
// [cli.Invocation]. main passes the real process context; tests pass
// fakes from clitest.
package commands

import (
	"context"
	"fmt"
	"log/slog"

	cagecmd "github.com/droneplay/droneplay/cmd/droneplay/cage"
	"github.com/droneplay/droneplay/cmd/droneplay/cli"
	doctorcmd "github.com/droneplay/droneplay/cmd/droneplay/doctor"
	mantracmd "github.com/droneplay/droneplay/cmd/droneplay/mantra"
	"github.com/droneplay/droneplay/lib/version"
)

// Root builds and returns the complete droneplay command tree.
func Root(inv *cli.Invocation) *cli.Command {
	return &cli.Command{
		Name: "droneplay",
		Description: `droneplay: cage and release sudo users, and hand out mantra directories.

Cage commands rewrite /etc/sudoers.d/<username>. Mantra commands manage
directories under the mantra root. Both need root to change anything.`,
		Subcommands: []*cli.Command{
			cagecmd.Command(inv),
			mantracmd.Command(inv),
			doctorcmd.Command(inv),
			{
				Name:    "version",
				Summary: "Print version information",
				Run: func(_ context.Context, args []string, _ *slog.Logger) error {
					if err := cli.RequireArgs(args); err != nil {
						return err
					}
					fmt.Fprintf(inv.Stdout, "droneplay %s\n", version.Full())
					return nil
				},
			},
		},
		Examples: []cli.Example{
			{
				Description: "Cage a user to droneplay itself",
				Command:     "sudo droneplay cage lock alice",
			},
			{
				Description: "Give a user a mantra directory",
				Command:     `sudo droneplay mantra assign bob "be kind"`,
			},
			{
				Description: "Check the host",
				Command:     "sudo droneplay doctor",
			},
		},
	}
}
