// Copyright 2026 The Droneplay Authors
// SPDX-License-Identifier: Apache-2.0

package doctor

import (
	"context"
	"errors"
	"fmt"
	"syscall"
)

// ExecuteFixes runs the fix action for each fixable failure, updating
// results in place. In dry-run mode nothing runs and an empty Outcome
// is returned.
//
// Elevated fixes are skipped unless root is true; they are counted in
// Outcome.ElevatedSkipped. A fix error wrapping EPERM or EACCES sets
// Outcome.PermissionDenied.
func ExecuteFixes(ctx context.Context, results []Result, dryRun, root bool) Outcome {
	if dryRun {
		return Outcome{}
	}

	var outcome Outcome
	for i := range results {
		if results[i].Status != StatusFail || results[i].fix == nil {
			continue
		}
		if results[i].Elevated && !root {
			outcome.ElevatedSkipped++
			continue
		}
		if err := results[i].fix(ctx); err != nil {
			if isPermissionDenied(err) {
				outcome.PermissionDenied = true
				results[i].Message = fmt.Sprintf("%s (insufficient permissions)", results[i].Message)
			} else {
				results[i].Message = fmt.Sprintf("%s (fix failed: %v)", results[i].Message, err)
			}
		} else {
			results[i].Status = StatusFixed
			outcome.FixedCount++
		}
	}

	return outcome
}

func isPermissionDenied(err error) bool {
	return errors.Is(err, syscall.EPERM) || errors.Is(err, syscall.EACCES)
}

// BuildJSON builds the JSON output struct from results and outcome
// metadata.
func BuildJSON(results []Result, dryRun bool, outcome Outcome) JSONOutput {
	return JSONOutput{
		Checks:           results,
		OK:               !AnyFailed(results),
		DryRun:           dryRun,
		PermissionDenied: outcome.PermissionDenied,
		ElevatedSkipped:  outcome.ElevatedSkipped,
	}
}

// AnyFailed reports whether any result is still failing.
func AnyFailed(results []Result) bool {
	for _, result := range results {
		if result.Status == StatusFail {
			return true
		}
	}
	return false
}

// MarkRepaired marks results that pass now but failed in an earlier
// iteration as fixed. repairedNames holds the names that failed before.
func MarkRepaired(results []Result, repairedNames map[string]bool) {
	for i := range results {
		if results[i].Status == StatusPass && repairedNames[results[i].Name] {
			results[i].Status = StatusFixed
		}
	}
}
