// Copyright 2026 The Droneplay Authors
// SPDX-License-Identifier: Apache-2.0

package doctor

import "context"

// Status is the outcome of a single check.
type Status string

const (
	StatusPass  Status = "pass"
	StatusFail  Status = "fail"
	StatusWarn  Status = "warn"
	StatusSkip  Status = "skip"
	StatusFixed Status = "fixed"
)

// FixAction repairs a failed check. Paths and capabilities are captured
// in the closure when the check is built.
type FixAction func(ctx context.Context) error

// Result holds the outcome of a single check. Fixable failures carry a
// FixHint and an unexported fix function. Fixes that need root set
// Elevated.
type Result struct {
	Name     string `json:"name"`
	Status   Status `json:"status"`
	Message  string `json:"message"`
	FixHint  string `json:"fix_hint,omitempty"`
	Elevated bool   `json:"elevated,omitempty"`
	fix      FixAction
}

// HasFix reports whether this result carries a fix action.
func (r *Result) HasFix() bool {
	return r.fix != nil
}

// Pass creates a passing check result.
func Pass(name, message string) Result {
	return Result{Name: name, Status: StatusPass, Message: message}
}

// Fail creates a failing check result with no automatic fix.
func Fail(name, message string) Result {
	return Result{Name: name, Status: StatusFail, Message: message}
}

// FailWithFix creates a failing check result with an automatic fix.
func FailWithFix(name, message, fixHint string, fix FixAction) Result {
	return Result{Name: name, Status: StatusFail, Message: message, FixHint: fixHint, fix: fix}
}

// FailElevated creates a failing check result that requires root to fix.
// ExecuteFixes skips it when not running as root and counts it in
// Outcome.ElevatedSkipped.
func FailElevated(name, message, fixHint string, fix FixAction) Result {
	return Result{Name: name, Status: StatusFail, Message: message, FixHint: fixHint, Elevated: true, fix: fix}
}

// Warn creates a warning. Warnings do not make doctor exit non-zero.
func Warn(name, message string) Result {
	return Result{Name: name, Status: StatusWarn, Message: message}
}

// Skip creates a skipped check result, used when a prerequisite check
// failed.
func Skip(name, message string) Result {
	return Result{Name: name, Status: StatusSkip, Message: message}
}

// Outcome holds the aggregate results of a fix pass.
type Outcome struct {
	// FixedCount is the number of successfully applied fixes.
	FixedCount int

	// PermissionDenied is true if any fix failed with EPERM or EACCES.
	PermissionDenied bool

	// ElevatedSkipped is the number of fixes skipped because they
	// require root and the process is not root.
	ElevatedSkipped int
}

// JSONOutput is the --json document.
type JSONOutput struct {
	Checks           []Result `json:"checks"`
	OK               bool     `json:"ok"`
	DryRun           bool     `json:"dry_run,omitempty"`
	PermissionDenied bool     `json:"permission_denied,omitempty"`
	ElevatedSkipped  int      `json:"elevated_skipped,omitempty"`
}
