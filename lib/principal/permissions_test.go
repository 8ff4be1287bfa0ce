// Copyright 2026 The Droneplay Authors
// SPDX-License-Identifier: Apache-2.0

package principal

import (
	"os"
	"path/filepath"
	"syscall"
	"testing"
)

func TestSystemOwner_SetOwnerToSelf(t *testing.T) {
	// Chowning to the UID that already owns the path is permitted
	// without privileges, so this exercises the real syscall.
	path := filepath.Join(t.TempDir(), "owned")
	if err := os.Mkdir(path, 0o755); err != nil {
		t.Fatal(err)
	}
	before := statOwner(t, path)

	if err := (SystemOwner{}).SetOwner(path, os.Getuid()); err != nil {
		t.Fatalf("SetOwner() error: %v", err)
	}

	after := statOwner(t, path)
	if int(after.Uid) != os.Getuid() {
		t.Errorf("owner uid = %d, want %d", after.Uid, os.Getuid())
	}
	if after.Gid != before.Gid {
		t.Errorf("group changed from %d to %d", before.Gid, after.Gid)
	}
}

func statOwner(t *testing.T, path string) *syscall.Stat_t {
	t.Helper()
	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	stat, ok := info.Sys().(*syscall.Stat_t)
	if !ok {
		t.Skip("ownership not observable on this platform")
	}
	return stat
}

func TestSystemOwner_MissingPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "absent")
	if err := (SystemOwner{}).SetOwner(path, os.Getuid()); err == nil {
		t.Fatal("expected error for missing path")
	}
}
