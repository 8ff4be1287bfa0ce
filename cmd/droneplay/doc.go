// Copyright 2026 The Droneplay Authors
// SPDX-License-Identifier: Apache-2.0

// Droneplay restricts and restores a user's sudo rights and manages
// per-user mantra directories.
//
// Usage:
//
//	droneplay cage lock <username> [--path <exe>]
//	droneplay cage unlock <username>
//	droneplay cage safeword
//	droneplay cage status <username> [--json]
//	droneplay mantra assign <username> <mantra> [--path <root>]
//	droneplay mantra recite [--path <root>] [--json]
//	droneplay mantra show <username> [--path <root>] [--json]
//	droneplay mantra safeword [--path <root>]
//	droneplay doctor [--fix] [--dry-run] [--json]
//	droneplay version
//
// Set DRONEPLAY_CONFIG to a YAML file to change the mantra root, the
// default cage executable, or the log level.
package main
