// Copyright 2026 The Droneplay Authors
// SPDX-License-Identifier: Apache-2.0

// Package version reports build information for the droneplay binary.
//
// [GitCommit], [BuildTime] and [Version] can be injected with
// -ldflags -X. When they are not, [Info] falls back to the VCS stamp
// the Go toolchain embeds in the binary (runtime/debug.ReadBuildInfo),
// so "go install" builds still report their revision.
package version
