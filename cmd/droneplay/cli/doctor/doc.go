// Copyright 2026 The Droneplay Authors
// SPDX-License-Identifier: Apache-2.0

// Package doctor provides the check-and-repair workflow behind
// "droneplay doctor".
//
// A check produces a [Result]. Fixable failures carry a fix closure that
// runs in --fix mode. The package provides:
//
//   - [Result] with status, message, and optional fix action
//   - Constructors: [Pass], [Fail], [FailWithFix], [FailElevated], [Warn], [Skip]
//   - [ExecuteFixes] for running fix closures with elevation awareness
//   - [PrintChecklist] for human-readable output
//   - [BuildJSON] for machine-readable output
//   - [MarkRepaired] for cross-iteration repair tracking
//
// What to check lives in cmd/droneplay/doctor. This package only runs
// the workflow.
package doctor
