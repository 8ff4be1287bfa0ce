// Copyright 2026 The Droneplay Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/spf13/pflag"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func TestCommand_Execute_DispatchesToSubcommand(t *testing.T) {
	var called string

	root := &Command{
		Name: "droneplay",
		Subcommands: []*Command{
			{
				Name: "version",
				Run: func(ctx context.Context, args []string, logger *slog.Logger) error {
					called = "version"
					return nil
				},
			},
			{
				Name: "cage",
				Run: func(ctx context.Context, args []string, logger *slog.Logger) error {
					called = "cage"
					return nil
				},
			},
		},
	}

	if err := root.Execute(context.Background(), []string{"cage"}, discardLogger()); err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	if called != "cage" {
		t.Errorf("dispatched to %q, want %q", called, "cage")
	}
}

func TestCommand_Execute_NestedSubcommands(t *testing.T) {
	var called string
	var receivedArgs []string

	root := &Command{
		Name: "droneplay",
		Subcommands: []*Command{
			{
				Name: "mantra",
				Subcommands: []*Command{
					{
						Name: "assign",
						Run: func(ctx context.Context, args []string, logger *slog.Logger) error {
							called = "mantra assign"
							receivedArgs = args
							return nil
						},
					},
				},
			},
		},
	}

	if err := root.Execute(context.Background(), []string{"mantra", "assign", "alice"}, discardLogger()); err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	if called != "mantra assign" {
		t.Errorf("dispatched to %q, want %q", called, "mantra assign")
	}
	if len(receivedArgs) != 1 || receivedArgs[0] != "alice" {
		t.Errorf("args = %v, want [alice]", receivedArgs)
	}
}

func TestCommand_Execute_FlagParsing(t *testing.T) {
	var path string
	var target string

	command := &Command{
		Name: "lock",
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("lock", pflag.ContinueOnError)
			flagSet.StringVarP(&path, "path", "p", "/usr/local/bin/droneplay", "executable")
			return flagSet
		},
		Run: func(ctx context.Context, args []string, logger *slog.Logger) error {
			if len(args) > 0 {
				target = args[0]
			}
			return nil
		},
	}

	if err := command.Execute(context.Background(), []string{"alice", "-p", "/opt/bin/tool"}, discardLogger()); err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	if path != "/opt/bin/tool" {
		t.Errorf("path = %q, want %q", path, "/opt/bin/tool")
	}
	if target != "alice" {
		t.Errorf("target = %q, want %q", target, "alice")
	}
}

func TestCommand_Execute_UnknownFlagSuggestion(t *testing.T) {
	command := &Command{
		Name: "status",
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("status", pflag.ContinueOnError)
			flagSet.Bool("json", false, "output as JSON")
			flagSet.String("path", "", "path")
			return flagSet
		},
		Run: func(ctx context.Context, args []string, logger *slog.Logger) error { return nil },
	}

	err := command.Execute(context.Background(), []string{"--jsno"}, discardLogger())
	if err == nil {
		t.Fatal("expected error for unknown flag")
	}
	if !strings.Contains(err.Error(), "did you mean --json?") {
		t.Errorf("error = %q, want suggestion for --json", err)
	}

	var toolErr *ToolError
	if !errors.As(err, &toolErr) || toolErr.Category != CategoryValidation {
		t.Errorf("expected validation ToolError, got %T", err)
	}
}

func TestCommand_Execute_UnknownSubcommandSuggestion(t *testing.T) {
	root := &Command{
		Name: "droneplay",
		Subcommands: []*Command{
			{Name: "cage"},
			{Name: "mantra"},
			{Name: "doctor"},
		},
	}

	err := root.Execute(context.Background(), []string{"mnatra"}, discardLogger())
	if err == nil {
		t.Fatal("expected error for unknown subcommand")
	}
	if !strings.Contains(err.Error(), `did you mean "mantra"?`) {
		t.Errorf("error = %q, want suggestion for mantra", err)
	}
}

func TestCommand_Execute_UnknownSubcommandNoSuggestion(t *testing.T) {
	root := &Command{
		Name:        "droneplay",
		Subcommands: []*Command{{Name: "cage"}},
	}

	err := root.Execute(context.Background(), []string{"zzzzzzzzzz"}, discardLogger())
	if err == nil {
		t.Fatal("expected error for unknown subcommand")
	}
	if strings.Contains(err.Error(), "did you mean") {
		t.Errorf("error = %q, should not suggest anything", err)
	}
}

func TestCommand_Execute_SubcommandRequired(t *testing.T) {
	root := &Command{
		Name:        "droneplay",
		Subcommands: []*Command{{Name: "cage"}},
	}

	err := root.Execute(context.Background(), nil, discardLogger())
	if err == nil || !strings.Contains(err.Error(), "subcommand required") {
		t.Errorf("error = %v, want subcommand required", err)
	}
}

func TestCommand_Execute_HelpFlag(t *testing.T) {
	ran := false
	command := &Command{
		Name: "lock",
		Run: func(ctx context.Context, args []string, logger *slog.Logger) error {
			ran = true
			return nil
		},
	}

	for _, arg := range []string{"-h", "--help", "help"} {
		if err := command.Execute(context.Background(), []string{arg}, discardLogger()); err != nil {
			t.Errorf("Execute(%q) error: %v", arg, err)
		}
	}
	if ran {
		t.Error("help flag should not run the command")
	}
}

func TestCommand_Execute_PassesErrorsThrough(t *testing.T) {
	sentinel := errors.New("boom")
	command := &Command{
		Name: "lock",
		Run: func(ctx context.Context, args []string, logger *slog.Logger) error {
			return sentinel
		},
	}

	if err := command.Execute(context.Background(), nil, discardLogger()); !errors.Is(err, sentinel) {
		t.Errorf("error = %v, want %v", err, sentinel)
	}
}

func TestCommand_PrintHelp(t *testing.T) {
	root := &Command{
		Name:        "droneplay",
		Description: "Manage cages and mantras.",
		Subcommands: []*Command{
			{Name: "cage", Summary: "Restrict or release a user's sudo"},
			{Name: "mantra", Summary: "Manage mantra directories"},
		},
		Examples: []Example{
			{Description: "Cage a user", Command: "droneplay cage lock alice"},
		},
	}

	var buffer bytes.Buffer
	root.PrintHelp(&buffer)
	output := buffer.String()

	for _, want := range []string{
		"Manage cages and mantras.",
		"droneplay <command> [flags]",
		"cage",
		"Restrict or release a user's sudo",
		"# Cage a user",
		"droneplay cage lock alice",
		"Run 'droneplay <command> --help'",
	} {
		if !strings.Contains(output, want) {
			t.Errorf("help output missing %q:\n%s", want, output)
		}
	}
}

func TestCommand_PrintHelp_FullName(t *testing.T) {
	lock := &Command{
		Name: "lock",
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("lock", pflag.ContinueOnError)
			flagSet.StringP("path", "p", "/usr/local/bin/droneplay", "the only executable the user may run")
			return flagSet
		},
	}
	cage := &Command{Name: "cage", Subcommands: []*Command{lock}}
	lock.parent = cage
	cage.parent = &Command{Name: "droneplay"}

	var buffer bytes.Buffer
	lock.PrintHelp(&buffer)
	output := buffer.String()

	if !strings.Contains(output, "droneplay cage lock [flags]") {
		t.Errorf("help output missing full usage line:\n%s", output)
	}
	if !strings.Contains(output, "-p, --path") || !strings.Contains(output, "/usr/local/bin/droneplay") {
		t.Errorf("help output missing flag usage:\n%s", output)
	}
}

func TestRequireArgs(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr string
	}{
		{name: "exact", args: []string{"alice"}},
		{name: "missing", args: nil, wantErr: "missing <username> argument"},
		{name: "surplus", args: []string{"alice", "bob"}, wantErr: "unexpected argument: bob"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			err := RequireArgs(test.args, "username")
			if test.wantErr == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), test.wantErr) {
				t.Errorf("error = %v, want %q", err, test.wantErr)
			}
		})
	}
}
