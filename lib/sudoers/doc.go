// Copyright 2026 The Droneplay Authors
// SPDX-License-Identifier: Apache-2.0

// Package sudoers writes the per-user sudoers drop-in that cages or
// releases a user.
//
// Each managed user has exactly one file, <dir>/<username>, whose whole
// content is a single [Entry]:
//
//	alice ALL=(ALL:ALL) /usr/local/bin/droneplay cage safeword
//	alice ALL=(ALL:ALL) ALL
//
// The first form (restricted) lets alice run only the caged executable
// with the arguments "cage safeword", which is exactly the self-release
// command. The second form (unrestricted) restores full sudo.
//
// [Controller.Lock], [Controller.Unlock] and [Controller.Safeword]
// replace the file wholesale. Writes go through a dot-prefixed
// temporary file that is renamed into place while holding an flock(2)
// on the directory: sudo's #includedir skips names containing ".", so
// it never parses a partial file, and two droneplay processes racing on
// the same directory serialise instead of interleaving. The last writer
// still wins.
//
// [Controller.Status] reads a file back and classifies it as absent,
// restricted, unrestricted, or unmanaged (content droneplay did not
// write).
//
// The package formats policy lines literally. It does not validate
// sudoers grammar and does not talk to sudo.
package sudoers
