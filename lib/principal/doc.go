// Copyright 2026 The Droneplay Authors
// SPDX-License-Identifier: Apache-2.0

// Package principal resolves the Unix accounts droneplay acts on and
// isolates the privileged calls made against them.
//
// Two small interfaces keep the host's user database and chown(2) out
// of the domain packages:
//
//   - [Directory] resolves a name to an [Account] and reports the
//     account the process runs as. [SystemDirectory] backs it with
//     os/user.
//   - [Owner] changes the owning UID of a path. [SystemOwner] backs it
//     with os.Chown and leaves the group untouched.
//
// Tests substitute the fakes in principaltest, so nothing under lib/
// needs real accounts or root.
//
// [ValidateUsername] enforces the rules that make a username safe to
// use as a single path component: under /etc/sudoers.d for policy
// files, and under the mantra root for mantra directories.
package principal
