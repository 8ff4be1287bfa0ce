// Copyright 2026 The Droneplay Authors
// SPDX-License-Identifier: Apache-2.0

// Package cage implements the "droneplay cage" command group: lock,
// unlock, safeword, and status. Each subcommand is a thin shell over
// [sudoers.Controller] that prints one confirmation line.
package cage
