package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// resetFlags restores every flag in the command tree to its default so that
// executions sharing rootCmd do not leak state into each other.
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}

// runCLI executes rootCmd with args against the config root and returns
// stdout, stderr and the error.
func runCLI(t *testing.T, root string, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv("TOOLPLAN_ROOT", root)
	t.Setenv("TOOLPLAN_MODE", "")
	t.Setenv("TOOLPLAN_LANG", "")
	t.Setenv("TOOLPLAN_LOG_LEVEL", "")

	resetFlags(rootCmd)
	rootCmd.SetArgs(args)
	var bufOut, bufErr bytes.Buffer
	rootCmd.SetOut(&bufOut)
	rootCmd.SetErr(&bufErr)

	err := rootCmd.Execute()
	return bufOut.String(), bufErr.String(), err
}

// executeCommand runs args against a fresh config root.
func executeCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	out, _, err := runCLI(t, t.TempDir(), args...)
	return out, err
}

func TestRootCommand_Help(t *testing.T) {
	output, err := executeCommand(t, "--help")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	if output == "" {
		t.Error("expected help output, got empty string")
	}
	for _, want := range []string{"toolplan", "Planning:", "Catalog:", "CLI & Tooling:", "plan", "tiers"} {
		if !strings.Contains(output, want) {
			t.Errorf("expected help to contain %q", want)
		}
	}
}

func TestRootCommand_Version(t *testing.T) {
	SetVersion("1.2.3")
	defer SetVersion("dev")

	output, err := executeCommand(t, "version")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if !strings.Contains(output, "1.2.3") {
		t.Errorf("expected version output to contain version, got %q", output)
	}
}

func TestRootCommand_InvalidCommand(t *testing.T) {
	_, err := executeCommand(t, "invalid-command")
	if err == nil {
		t.Error("expected error for invalid command")
	}
}

func TestSetVersion(t *testing.T) {
	defer SetVersion("dev")

	tests := []struct {
		name    string
		version string
		want    string
	}{
		{"normal version", "1.2.3", "1.2.3"},
		{"empty version", "", "1.2.3"}, // Should not change if empty
		{"dev version", "dev", "dev"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			SetVersion(tt.version)
			if rootCmd.Version != tt.want {
				t.Errorf("SetVersion(%q) = %q, want %q", tt.version, rootCmd.Version, tt.want)
			}
		})
	}
}

func TestRootCommand_Subcommands(t *testing.T) {
	subcommands := []string{
		"plan", "tier", "tiers", "toolsets", "config", "version", "completion",
	}

	for _, cmd := range subcommands {
		t.Run(cmd, func(t *testing.T) {
			subCmd, _, err := rootCmd.Find([]string{cmd})
			if err != nil {
				t.Errorf("Find(%q) error = %v", cmd, err)
			}
			if subCmd == nil || subCmd.Name() != cmd {
				t.Errorf("Find(%q) returned %v", cmd, subCmd)
			}
		})
	}
}

func TestCompletionCommand(t *testing.T) {
	output, err := executeCommand(t, "completion", "bash")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if !strings.Contains(output, "toolplan") {
		t.Error("expected bash completion to mention toolplan")
	}
}
