// Copyright 2026 The Droneplay Authors
// SPDX-License-Identifier: Apache-2.0

package cage

import (
	"log/slog"

	"github.com/droneplay/droneplay/cmd/droneplay/cli"
	"github.com/droneplay/droneplay/lib/sudoers"
)

// Command returns the "cage" parent command with all subcommands.
func Command(inv *cli.Invocation) *cli.Command {
	return &cli.Command{
		Name:    "cage",
		Summary: "Restrict or release a user's sudo rights",
		Description: `Restrict or release a user's sudo rights by rewriting their drop-in
policy file under /etc/sudoers.d.

"lock" limits the user to running a single executable (by default
droneplay itself) with the "cage safeword" arguments, so the user can
still release themselves with "sudo droneplay cage safeword".

"unlock" restores unrestricted sudo. "safeword" does the same for the
user who invoked sudo, read from SUDO_USER.

"status" reports which of these states a user's policy file is in
without changing it.

Every write replaces the whole file. Writes must run as root.`,
		Subcommands: []*cli.Command{
			lockCommand(inv),
			unlockCommand(inv),
			safewordCommand(inv),
			statusCommand(inv),
		},
		Examples: []cli.Example{
			{
				Description: "Cage a user to the default executable",
				Command:     "sudo droneplay cage lock alice",
			},
			{
				Description: "Release a user",
				Command:     "sudo droneplay cage unlock alice",
			},
			{
				Description: "Release yourself from a cage",
				Command:     "sudo droneplay cage safeword",
			},
		},
	}
}

func newController(inv *cli.Invocation, logger *slog.Logger) *sudoers.Controller {
	return sudoers.NewController(inv.SudoersDir, inv.Users, logger)
}
