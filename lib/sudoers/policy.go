// Copyright 2026 The Droneplay Authors
// SPDX-License-Identifier: Apache-2.0

package sudoers

import (
	"fmt"
	"strings"
)

const (
	// DefaultDir is where sudo reads drop-in policy files from.
	DefaultDir = "/etc/sudoers.d"

	// DefaultExecutable is the program a caged user may still run.
	DefaultExecutable = "/usr/local/bin/droneplay"

	// Marker follows the executable in a restricted entry. It is the
	// argument list of the self-release command, so a caged user can
	// run "sudo droneplay cage safeword" and nothing else.
	Marker = "cage safeword"

	// unrestrictedScope is the sudoers command list granting everything.
	unrestrictedScope = "ALL"

	// hostRunAs is the host and run-as specification shared by both
	// entry forms.
	hostRunAs = "ALL=(ALL:ALL)"
)

// Entry is one policy line.
type Entry struct {
	Username string

	// Executable is the only command the user may run. Empty means
	// the entry is unrestricted.
	Executable string
}

// Restricted returns the entry caging username to executable.
func Restricted(username, executable string) Entry {
	return Entry{Username: username, Executable: executable}
}

// Unrestricted returns the entry granting username full sudo.
func Unrestricted(username string) Entry {
	return Entry{Username: username}
}

// IsRestricted reports whether the entry limits the user to one
// executable.
func (e Entry) IsRestricted() bool {
	return e.Executable != ""
}

// String renders the entry as file content, newline-terminated.
func (e Entry) String() string {
	if e.IsRestricted() {
		return fmt.Sprintf("%s %s %s %s\n", e.Username, hostRunAs, e.Executable, Marker)
	}
	return fmt.Sprintf("%s %s %s\n", e.Username, hostRunAs, unrestrictedScope)
}

// State classifies the policy file of one user.
type State string

const (
	StateAbsent       State = "absent"
	StateRestricted   State = "restricted"
	StateUnrestricted State = "unrestricted"
	StateUnmanaged    State = "unmanaged"
)

// Status is what [Controller.Status] found for a user.
type Status struct {
	Username   string `json:"username"`
	Path       string `json:"path"`
	State      State  `json:"state"`
	Executable string `json:"executable,omitempty"`
}

// Classify maps file content back to the state that produced it.
// Content that is not byte-for-byte one of the two entry forms for
// username is unmanaged.
func Classify(username, content string) (State, string) {
	if content == Unrestricted(username).String() {
		return StateUnrestricted, ""
	}

	prefix := username + " " + hostRunAs + " "
	suffix := " " + Marker + "\n"
	if strings.HasPrefix(content, prefix) && strings.HasSuffix(content, suffix) && len(content) > len(prefix)+len(suffix) {
		executable := content[len(prefix) : len(content)-len(suffix)]
		if executable != "" && !strings.ContainsAny(executable, "\n") {
			return StateRestricted, executable
		}
	}

	return StateUnmanaged, ""
}
