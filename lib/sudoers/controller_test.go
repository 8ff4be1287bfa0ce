// Copyright 2026 The Droneplay Authors
// SPDX-License-Identifier: Apache-2.0

package sudoers

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/droneplay/droneplay/lib/principal"
	"github.com/droneplay/droneplay/lib/principal/principaltest"
)

func newTestController(t *testing.T, users ...string) *Controller {
	t.Helper()
	return NewController(t.TempDir(), principaltest.NewDirectory(users...), slog.New(slog.DiscardHandler))
}

func readPolicy(t *testing.T, controller *Controller, username string) string {
	t.Helper()
	data, err := os.ReadFile(controller.Path(username))
	if err != nil {
		t.Fatalf("reading policy: %v", err)
	}
	return string(data)
}

func noEnvironment(string) (string, bool) { return "", false }

func environment(values map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		value, ok := values[key]
		return value, ok
	}
}

func TestLock_WritesRestrictedEntry(t *testing.T) {
	controller := newTestController(t, "alice")

	if err := controller.Lock("alice", "/usr/bin/vim"); err != nil {
		t.Fatalf("Lock() error: %v", err)
	}

	want := "alice ALL=(ALL:ALL) /usr/bin/vim cage safeword\n"
	if got := readPolicy(t, controller, "alice"); got != want {
		t.Errorf("policy = %q, want %q", got, want)
	}

	info, err := os.Stat(controller.Path("alice"))
	if err != nil {
		t.Fatal(err)
	}
	if mode := info.Mode().Perm(); mode != policyMode {
		t.Errorf("mode = %o, want %o", mode, policyMode)
	}
}

func TestUnlock_WritesUnrestrictedEntry(t *testing.T) {
	controller := newTestController(t, "alice")

	if err := controller.Lock("alice", DefaultExecutable); err != nil {
		t.Fatal(err)
	}
	if err := controller.Unlock("alice"); err != nil {
		t.Fatalf("Unlock() error: %v", err)
	}

	want := "alice ALL=(ALL:ALL) ALL\n"
	if got := readPolicy(t, controller, "alice"); got != want {
		t.Errorf("policy = %q, want %q", got, want)
	}
}

func TestLock_Idempotent(t *testing.T) {
	controller := newTestController(t, "alice")

	if err := controller.Lock("alice", "/usr/bin/vim"); err != nil {
		t.Fatal(err)
	}
	first := readPolicy(t, controller, "alice")
	if err := controller.Lock("alice", "/usr/bin/vim"); err != nil {
		t.Fatalf("second Lock() error: %v", err)
	}
	if second := readPolicy(t, controller, "alice"); second != first {
		t.Errorf("second Lock changed content: %q -> %q", first, second)
	}
}

func TestLock_OverwritesForeignContent(t *testing.T) {
	controller := newTestController(t, "alice")
	path := controller.Path("alice")
	if err := os.WriteFile(path, []byte("alice ALL=(ALL) NOPASSWD: ALL\n# extra\n"), 0o440); err != nil {
		t.Fatal(err)
	}

	if err := controller.Lock("alice", "/bin/true"); err != nil {
		t.Fatalf("Lock() error: %v", err)
	}
	if got, want := readPolicy(t, controller, "alice"), "alice ALL=(ALL:ALL) /bin/true cage safeword\n"; got != want {
		t.Errorf("policy = %q, want %q", got, want)
	}
}

func TestLock_LeavesNoTemporaryFiles(t *testing.T) {
	controller := newTestController(t, "alice")
	if err := controller.Lock("alice", "/bin/true"); err != nil {
		t.Fatal(err)
	}
	if err := controller.Unlock("alice"); err != nil {
		t.Fatal(err)
	}

	entries, err := os.ReadDir(controller.Dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 || entries[0].Name() != "alice" {
		var names []string
		for _, entry := range entries {
			names = append(names, entry.Name())
		}
		t.Errorf("directory contents = %v, want [alice]", names)
	}
}

func TestLock_RejectsBadInput(t *testing.T) {
	tests := []struct {
		name       string
		username   string
		executable string
		wantIs     error
	}{
		{name: "unknown_user", username: "mallory", executable: "/bin/true", wantIs: principal.ErrUnknownUser},
		{name: "traversal", username: "../passwd", executable: "/bin/true", wantIs: principal.ErrInvalidUsername},
		{name: "hidden", username: ".alice", executable: "/bin/true", wantIs: principal.ErrInvalidUsername},
		{name: "empty_executable", username: "alice", executable: ""},
		{name: "newline_executable", username: "alice", executable: "/bin/true\nalice ALL=(ALL) ALL"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			controller := newTestController(t, "alice")
			err := controller.Lock(test.username, test.executable)
			if err == nil {
				t.Fatal("expected error")
			}
			if test.wantIs != nil && !errors.Is(err, test.wantIs) {
				t.Errorf("error = %v, want errors.Is %v", err, test.wantIs)
			}
			entries, _ := os.ReadDir(controller.Dir)
			if len(entries) != 0 {
				t.Errorf("rejected Lock created %d file(s)", len(entries))
			}
		})
	}
}

func TestUnlock_UnknownUser(t *testing.T) {
	controller := newTestController(t, "alice")
	if err := controller.Unlock("mallory"); !errors.Is(err, principal.ErrUnknownUser) {
		t.Fatalf("Unlock() error = %v, want ErrUnknownUser", err)
	}
}

func TestLock_UnwritableDirectory(t *testing.T) {
	controller := newTestController(t, "alice")
	controller.Dir = filepath.Join(controller.Dir, "missing")

	if err := controller.Lock("alice", "/bin/true"); err == nil {
		t.Fatal("expected error writing into a missing directory")
	}
}

func TestSafeword_WithoutDelegator(t *testing.T) {
	controller := newTestController(t, "alice")

	username, err := controller.Safeword(noEnvironment)
	if !errors.Is(err, ErrNoDelegator) {
		t.Fatalf("Safeword() error = %v, want ErrNoDelegator", err)
	}
	if username != "" {
		t.Errorf("username = %q, want empty", username)
	}

	entries, err := os.ReadDir(controller.Dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 0 {
		t.Errorf("Safeword without %s wrote %d file(s)", DelegatorVariable, len(entries))
	}
}

func TestSafeword_EmptyDelegator(t *testing.T) {
	controller := newTestController(t, "alice")
	_, err := controller.Safeword(environment(map[string]string{DelegatorVariable: ""}))
	if !errors.Is(err, ErrNoDelegator) {
		t.Fatalf("Safeword() error = %v, want ErrNoDelegator", err)
	}
}

func TestSafeword_MatchesUnlock(t *testing.T) {
	safeword := newTestController(t, "alice")
	unlock := newTestController(t, "alice")

	for _, controller := range []*Controller{safeword, unlock} {
		if err := controller.Lock("alice", DefaultExecutable); err != nil {
			t.Fatal(err)
		}
	}

	username, err := safeword.Safeword(environment(map[string]string{DelegatorVariable: "alice"}))
	if err != nil {
		t.Fatalf("Safeword() error: %v", err)
	}
	if username != "alice" {
		t.Errorf("released %q, want alice", username)
	}
	if err := unlock.Unlock("alice"); err != nil {
		t.Fatal(err)
	}

	if got, want := readPolicy(t, safeword, "alice"), readPolicy(t, unlock, "alice"); got != want {
		t.Errorf("safeword policy %q differs from unlock policy %q", got, want)
	}
}

func TestStatus(t *testing.T) {
	controller := newTestController(t, "alice")

	status, err := controller.Status("alice")
	if err != nil {
		t.Fatalf("Status() error: %v", err)
	}
	if status.State != StateAbsent {
		t.Errorf("state before any write = %q, want %q", status.State, StateAbsent)
	}

	if err := controller.Lock("alice", "/usr/bin/vim"); err != nil {
		t.Fatal(err)
	}
	status, err = controller.Status("alice")
	if err != nil {
		t.Fatal(err)
	}
	if status.State != StateRestricted || status.Executable != "/usr/bin/vim" {
		t.Errorf("after Lock: %+v", status)
	}
	if status.Path != controller.Path("alice") {
		t.Errorf("Path = %q, want %q", status.Path, controller.Path("alice"))
	}

	if err := controller.Unlock("alice"); err != nil {
		t.Fatal(err)
	}
	status, err = controller.Status("alice")
	if err != nil {
		t.Fatal(err)
	}
	if status.State != StateUnrestricted || status.Executable != "" {
		t.Errorf("after Unlock: %+v", status)
	}
}

func TestStatus_InvalidUsername(t *testing.T) {
	controller := newTestController(t)
	if _, err := controller.Status("../shadow"); !errors.Is(err, principal.ErrInvalidUsername) {
		t.Fatalf("Status() error = %v, want ErrInvalidUsername", err)
	}
}

func TestConcurrentWritersLastWriteWins(t *testing.T) {
	controller := newTestController(t, "alice")

	const writers = 16
	valid := make(map[string]bool, writers)
	var waitGroup sync.WaitGroup
	errs := make(chan error, writers)
	for i := range writers {
		executable := fmt.Sprintf("/usr/bin/tool%d", i)
		valid[Restricted("alice", executable).String()] = true
		waitGroup.Add(1)
		go func() {
			defer waitGroup.Done()
			errs <- controller.Lock("alice", executable)
		}()
	}
	waitGroup.Wait()
	close(errs)

	for err := range errs {
		if err != nil {
			t.Fatalf("concurrent Lock() error: %v", err)
		}
	}
	if content := readPolicy(t, controller, "alice"); !valid[content] {
		t.Errorf("policy after racing writers is not any single writer's entry: %q", content)
	}
}
