// Copyright 2026 The Droneplay Authors
// SPDX-License-Identifier: Apache-2.0

// Package mantra implements the "droneplay mantra" command group:
// assign, recite, show, and safeword. The directory work is done by
// [mantra.Manager]; this package parses arguments and prints the fixed
// status lines.
package mantra
