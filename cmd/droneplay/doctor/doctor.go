// Copyright 2026 The Droneplay Authors
// SPDX-License-Identifier: Apache-2.0

package doctor

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/pflag"
	"golang.org/x/sys/unix"

	"github.com/droneplay/droneplay/cmd/droneplay/cli"
	"github.com/droneplay/droneplay/cmd/droneplay/cli/doctor"
	"github.com/droneplay/droneplay/lib/config"
	"github.com/droneplay/droneplay/lib/sudoers"
)

// rerunCommand is printed when elevated fixes were skipped.
const rerunCommand = "sudo droneplay doctor --fix"

// mantraRootMode matches the mode mantra directories are created with.
const mantraRootMode = 0o755

type doctorParams struct {
	cli.JSONOutput
	Fix    bool `flag:"fix" desc:"automatically repair fixable issues"`
	DryRun bool `flag:"dry-run" desc:"preview repairs without executing (requires --fix)"`
}

// Command returns the "doctor" command.
func Command(inv *cli.Invocation) *cli.Command {
	var params doctorParams

	return &cli.Command{
		Name:    "doctor",
		Summary: "Check that this host is ready for droneplay",
		Description: `Check the host for what cage and mantra commands need:

  - running as root
  - the policy directory exists and is writable
  - the mantra root exists
  - SUDO_USER is set, and what that user's policy says

Exits with code 1 if any check fails. Warnings do not fail.

Use --fix to create a missing mantra root, and --fix --dry-run to see
what would be done. Use --json for machine-readable output.`,
		Usage: "droneplay doctor [flags]",
		Examples: []cli.Example{
			{
				Description: "Check the host",
				Command:     "sudo droneplay doctor",
			},
			{
				Description: "Preview repairs without executing",
				Command:     "sudo droneplay doctor --fix --dry-run",
			},
		},
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("doctor", &params, nil)
		},
		Run: func(ctx context.Context, args []string, logger *slog.Logger) error {
			if err := cli.RequireArgs(args); err != nil {
				return err
			}
			if params.DryRun && !params.Fix {
				return cli.Validation("--dry-run requires --fix")
			}
			return run(ctx, inv, params, logger.With("command", "doctor"))
		},
	}
}

func run(ctx context.Context, inv *cli.Invocation, params doctorParams, logger *slog.Logger) error {
	// One pass repairs everything fixable; the second confirms it.
	const maxFixIterations = 2

	root := inv.Euid() == 0
	repairedNames := make(map[string]bool)
	var aggregateOutcome doctor.Outcome
	var results []doctor.Result

	for range maxFixIterations {
		results = check(inv, logger)

		if !params.Fix {
			break
		}

		for _, result := range results {
			if result.Status == doctor.StatusFail {
				repairedNames[result.Name] = true
			}
		}

		outcome := doctor.ExecuteFixes(ctx, results, params.DryRun, root)
		aggregateOutcome.PermissionDenied = aggregateOutcome.PermissionDenied || outcome.PermissionDenied
		aggregateOutcome.ElevatedSkipped += outcome.ElevatedSkipped
		if outcome.FixedCount == 0 || params.DryRun {
			break
		}
	}

	doctor.MarkRepaired(results, repairedNames)

	if done, err := params.EmitJSON(inv.Stdout, doctor.BuildJSON(results, params.DryRun, aggregateOutcome)); done {
		if err != nil {
			return err
		}
		if doctor.AnyFailed(results) {
			return &cli.ExitError{Code: 1}
		}
		return nil
	}
	return doctor.PrintChecklist(inv.Stdout, results, params.Fix, params.DryRun, aggregateOutcome, rerunCommand)
}

// check runs every check in display order.
func check(inv *cli.Invocation, logger *slog.Logger) []doctor.Result {
	euid := inv.Euid()

	var results []doctor.Result
	results = append(results, checkConfig(inv))
	results = append(results, checkPrivileges(euid))
	results = append(results, checkPolicyDirectory(inv.SudoersDir, euid))
	results = append(results, checkMantraRoot(inv.Config.Mantra.Root, logger))
	results = append(results, checkDelegator(inv)...)
	return results
}

func checkConfig(inv *cli.Invocation) doctor.Result {
	const name = "configuration"
	if path, ok := inv.LookupEnv(config.EnvironmentVariable); ok && path != "" {
		return doctor.Pass(name, fmt.Sprintf("loaded from %s", path))
	}
	return doctor.Pass(name, "built-in defaults ("+config.EnvironmentVariable+" not set)")
}

func checkPrivileges(euid int) doctor.Result {
	const name = "running as root"
	if euid == 0 {
		return doctor.Pass(name, "effective uid 0")
	}
	return doctor.Warn(name, fmt.Sprintf("effective uid %d; cage writes and mantra assign need root", euid))
}

func checkPolicyDirectory(dir string, euid int) doctor.Result {
	const name = "policy directory"

	info, err := os.Stat(dir)
	if errors.Is(err, fs.ErrNotExist) {
		return doctor.Fail(name, fmt.Sprintf("%s does not exist (is sudo installed?)", dir))
	}
	if err != nil {
		return doctor.Fail(name, fmt.Sprintf("cannot stat %s: %v", dir, err))
	}
	if !info.IsDir() {
		return doctor.Fail(name, fmt.Sprintf("%s is not a directory", dir))
	}

	if err := unix.Access(dir, unix.W_OK); err != nil {
		if euid != 0 {
			return doctor.Warn(name, fmt.Sprintf("%s is not writable as uid %d; re-run with sudo", dir, euid))
		}
		return doctor.Fail(name, fmt.Sprintf("%s is not writable: %v", dir, err))
	}
	return doctor.Pass(name, fmt.Sprintf("%s is writable", dir))
}

func checkMantraRoot(root string, logger *slog.Logger) doctor.Result {
	const name = "mantra root"

	info, err := os.Stat(root)
	if err == nil {
		if !info.IsDir() {
			return doctor.Fail(name, fmt.Sprintf("%s exists but is not a directory", root))
		}
		return doctor.Pass(name, fmt.Sprintf("%s exists", root))
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return doctor.Fail(name, fmt.Sprintf("cannot stat %s: %v", root, err))
	}

	message := fmt.Sprintf("%s does not exist", root)
	hint := fmt.Sprintf("create %s (mode %o)", root, mantraRootMode)
	fix := func(ctx context.Context) error {
		if err := os.MkdirAll(root, mantraRootMode); err != nil {
			return fmt.Errorf("creating mantra root: %w", err)
		}
		logger.Info("mantra root created", "path", root)
		return nil
	}

	if !writableAncestor(root) {
		return doctor.FailElevated(name, message, hint, fix)
	}
	return doctor.FailWithFix(name, message, hint, fix)
}

// writableAncestor reports whether the nearest existing ancestor of path
// is writable by this process, meaning MkdirAll can succeed without root.
func writableAncestor(path string) bool {
	for dir := filepath.Dir(filepath.Clean(path)); ; dir = filepath.Dir(dir) {
		if _, err := os.Stat(dir); err == nil {
			return unix.Access(dir, unix.W_OK) == nil
		}
		if dir == filepath.Dir(dir) {
			return false
		}
	}
}

func checkDelegator(inv *cli.Invocation) []doctor.Result {
	const (
		variableName = "invoking user"
		policyName   = "invoking user policy"
	)

	username, ok := inv.LookupEnv(sudoers.DelegatorVariable)
	if !ok || username == "" {
		return []doctor.Result{
			doctor.Warn(variableName, sudoers.DelegatorVariable+" is not set; cage safeword must run under sudo"),
			doctor.Skip(policyName, "skipped: no invoking user"),
		}
	}

	results := []doctor.Result{
		doctor.Pass(variableName, fmt.Sprintf("%s=%s", sudoers.DelegatorVariable, username)),
	}

	controller := sudoers.NewController(inv.SudoersDir, inv.Users, slog.New(slog.DiscardHandler))
	status, err := controller.Status(username)
	if err != nil {
		return append(results, doctor.Fail(policyName, err.Error()))
	}

	switch status.State {
	case sudoers.StateRestricted:
		results = append(results, doctor.Pass(policyName, fmt.Sprintf("%s is caged to %s", username, status.Executable)))
	case sudoers.StateUnrestricted:
		results = append(results, doctor.Pass(policyName, fmt.Sprintf("%s is released", username)))
	case sudoers.StateUnmanaged:
		results = append(results, doctor.Warn(policyName, fmt.Sprintf("%s holds an entry droneplay did not write", status.Path)))
	default:
		results = append(results, doctor.Pass(policyName, fmt.Sprintf("%s has no policy file", username)))
	}
	return results
}
