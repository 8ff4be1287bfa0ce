// Copyright 2026 The Droneplay Authors
// SPDX-License-Identifier: Apache-2.0

package doctor

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/droneplay/droneplay/cmd/droneplay/cli"
)

// statusColors are ANSI palette indices for each status label.
var statusColors = map[Status]lipgloss.Color{
	StatusPass:  "2",
	StatusFail:  "1",
	StatusWarn:  "3",
	StatusSkip:  "8",
	StatusFixed: "6",
}

// PrintChecklist writes results to w as a checklist. Status labels are
// coloured only when w is a terminal. Elevated fixes that were skipped
// are grouped at the bottom with the command that would apply them.
// Returns an [cli.ExitError] with code 1 when any check is still failing.
func PrintChecklist(w io.Writer, results []Result, fixMode, dryRun bool, outcome Outcome, rerun string) error {
	renderer := lipgloss.NewRenderer(w)

	anyFailed := false
	fixableCount := 0
	fixedCount := 0
	var elevatedHints []string

	for _, result := range results {
		label := fmt.Sprintf("%-5s", strings.ToUpper(string(result.Status)))
		label = renderer.NewStyle().Foreground(statusColors[result.Status]).Render(label)
		fmt.Fprintf(w, "[%s]  %-32s  %s\n", label, result.Name, result.Message)

		switch result.Status {
		case StatusFail:
			anyFailed = true
			if result.FixHint != "" {
				fixableCount++
				if dryRun {
					elevationNote := ""
					if result.Elevated {
						elevationNote = " (requires sudo)"
					}
					fmt.Fprintf(w, "         %-32s  would fix: %s%s\n", "", result.FixHint, elevationNote)
				}
				if result.Elevated {
					elevatedHints = append(elevatedHints, result.FixHint)
				}
			}
		case StatusFixed:
			fixedCount++
		}
	}

	fmt.Fprintln(w)

	if anyFailed {
		if dryRun && fixableCount > 0 {
			fmt.Fprintf(w, "%d issue(s) would be repaired. Run without --dry-run to apply.\n", fixableCount)
		} else if !fixMode && fixableCount > 0 {
			fmt.Fprintf(w, "Run with --fix to repair %d issue(s).\n", fixableCount)
		} else {
			fmt.Fprintln(w, "Some checks failed.")
		}
		if outcome.PermissionDenied {
			fmt.Fprintln(w)
			fmt.Fprintln(w, "Some fixes failed due to insufficient permissions.")
		}
		if outcome.ElevatedSkipped > 0 {
			fmt.Fprintln(w)
			fmt.Fprintf(w, "%d fix(es) require root privileges:\n", outcome.ElevatedSkipped)
			for _, hint := range elevatedHints {
				fmt.Fprintf(w, "  - %s\n", hint)
			}
			fmt.Fprintln(w)
			fmt.Fprintln(w, "Re-run with sudo to apply these fixes:")
			fmt.Fprintf(w, "  %s\n", rerun)
		}
		return &cli.ExitError{Code: 1}
	}

	if fixedCount > 0 {
		fmt.Fprintf(w, "%d issue(s) repaired.\n", fixedCount)
		return nil
	}

	fmt.Fprintln(w, "All checks passed.")
	return nil
}
