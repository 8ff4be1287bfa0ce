// Copyright 2026 The Droneplay Authors
// SPDX-License-Identifier: Apache-2.0

package principal

import (
	"errors"
	"os"
	"os/user"
	"strings"
	"testing"
)

func TestValidateUsername(t *testing.T) {
	tests := []struct {
		name     string
		username string
		wantErr  string // substring of error message, empty means no error expected
	}{
		{name: "simple", username: "alice", wantErr: ""},
		{name: "with_digits", username: "bob42", wantErr: ""},
		{name: "with_dot", username: "john.doe", wantErr: ""},
		{name: "with_hyphen", username: "svc-backup", wantErr: ""},
		{name: "trailing_dollar", username: "machine$", wantErr: ""},

		{name: "empty", username: "", wantErr: "empty"},
		{name: "slash", username: "alice/bob", wantErr: "path separator"},
		{name: "traversal", username: "../etc/passwd", wantErr: "path separator"},
		{name: "nul", username: "alice\x00", wantErr: "NUL"},
		{name: "dot", username: ".", wantErr: "starts with '.'"},
		{name: "dotdot", username: "..", wantErr: "starts with '.'"},
		{name: "hidden", username: ".alice", wantErr: "starts with '.'"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			err := ValidateUsername(test.username)
			if test.wantErr == "" {
				if err != nil {
					t.Fatalf("ValidateUsername(%q) = %v, want nil", test.username, err)
				}
				return
			}
			if err == nil {
				t.Fatalf("ValidateUsername(%q) = nil, want error containing %q", test.username, test.wantErr)
			}
			if !errors.Is(err, ErrInvalidUsername) {
				t.Errorf("ValidateUsername(%q) error %v does not wrap ErrInvalidUsername", test.username, err)
			}
			if !strings.Contains(err.Error(), test.wantErr) {
				t.Errorf("ValidateUsername(%q) = %q, want substring %q", test.username, err, test.wantErr)
			}
		})
	}
}

func TestSystemDirectory_Current(t *testing.T) {
	expected, err := user.Current()
	if err != nil {
		t.Skipf("os/user cannot resolve the current user: %v", err)
	}

	account, err := SystemDirectory{}.Current()
	if err != nil {
		t.Fatalf("Current() error: %v", err)
	}
	if account.Name != expected.Username {
		t.Errorf("Current().Name = %q, want %q", account.Name, expected.Username)
	}
	if account.UID != os.Getuid() {
		t.Errorf("Current().UID = %d, want %d", account.UID, os.Getuid())
	}
}

func TestSystemDirectory_LookupUnknown(t *testing.T) {
	_, err := SystemDirectory{}.Lookup("droneplay-definitely-not-a-real-user-xyzzy")
	if err == nil {
		t.Fatal("expected error for nonexistent user")
	}
	if !errors.Is(err, ErrUnknownUser) {
		t.Errorf("Lookup() error = %v, want ErrUnknownUser", err)
	}
}
