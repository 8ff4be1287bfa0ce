// Copyright 2026 The Droneplay Authors
// SPDX-License-Identifier: Apache-2.0

// Package mantra manages per-user mantra directories.
//
// A mantra directory is <root>/<username>. Its existence is the only
// state droneplay observes. [Manager.Assign] creates it and hands it to
// the user. [Manager.Recite] and [Manager.Show] report whether it
// exists. Ownership is applied once, at creation, and never re-checked.
// Nothing in this package deletes or renames a directory.
package mantra
