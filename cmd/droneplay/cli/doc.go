// Copyright 2026 The Droneplay Authors
// SPDX-License-Identifier: Apache-2.0

// Package cli provides the command-line framework for droneplay.
//
// The central type is [Command], which represents a named subcommand with
// optional nested [Command.Subcommands], a [pflag.FlagSet] factory, and a
// Run function. Commands are assembled into a tree in cmd/droneplay/commands
// and dispatched via [Command.Execute], which handles flag parsing,
// subcommand routing, and structured help output with examples.
//
// When a user types an unknown subcommand or flag, the framework computes
// Levenshtein edit distance against all known names and suggests the
// closest match (threshold: distance <= 3).
//
// Flag sets are usually built from tagged parameter structs with
// [FlagsFromParams]; [Defaults] lets a command feed config-file values
// in as flag defaults so that --help shows what will actually be used.
//
// Commands receive their process context through an [Invocation]
// (environment, user directory, chown capability, stdout) rather than
// reaching for globals, so the whole tree can run against fakes.
//
// Errors returned by commands are either an [ExitError] (the command has
// already reported; exit with its code) or any other error, which main
// prints. [Classify] turns domain errors into a [ToolError] carrying a
// category and, for permission failures, a hint.
package cli
