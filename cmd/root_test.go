package cmd

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/iksnae/activity-recap/testutil"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// resetFlags restores every flag to its default between Execute calls
func resetFlags(c *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	c.Flags().VisitAll(reset)
	c.PersistentFlags().VisitAll(reset)
	for _, sub := range c.Commands() {
		resetFlags(sub)
	}
}

// testEnv points HOME and the config dir at temp dirs and returns a db path
func testEnv(t *testing.T) string {
	t.Helper()
	home := testutil.CreateTempDir(t)
	t.Setenv("HOME", home)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(home, ".config"))
	return filepath.Join(home, "recap.db")
}

// runCommand executes the root command with args and captures stdout
func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	resetFlags(rootCmd)
	var stdout, stderr bytes.Buffer
	rootCmd.SetArgs(args)
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	err := rootCmd.Execute()
	return stdout.String(), err
}

func TestRootCommand(t *testing.T) {
	testEnv(t)

	tests := []struct {
		name     string
		args     []string
		wantErr  bool
		contains string
	}{
		{
			name:     "version flag",
			args:     []string{"--version"},
			contains: "dev (commit: unknown",
		},
		{
			name:     "help flag",
			args:     []string{"--help"},
			contains: "activity-recap generate <session-id>",
		},
		{
			name:    "unknown command",
			args:    []string{"bogus"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := runCommand(t, tt.args...)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Execute() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.contains != "" && !strings.Contains(out, tt.contains) {
				t.Errorf("output = %q, want it to contain %q", out, tt.contains)
			}
		})
	}
}

func TestRootCommand_ConfigFile(t *testing.T) {
	db := testEnv(t)
	dir := testutil.CreateTempDir(t)

	valid := testutil.WriteFile(t, dir, "valid.yaml", []byte("profile: developer\nlog:\n  level: debug\n"))
	if _, err := runCommand(t, "--config", valid, "--db", db, "list"); err != nil {
		t.Fatalf("list with valid config: %v", err)
	}
	if cfg.Profile != "developer" {
		t.Errorf("cfg.Profile = %q, want developer", cfg.Profile)
	}
	if cfg.DBPath != db {
		t.Errorf("cfg.DBPath = %q, want --db override %q", cfg.DBPath, db)
	}

	invalid := testutil.WriteFile(t, dir, "invalid.yaml", []byte("profile: astronaut\n"))
	if _, err := runCommand(t, "--config", invalid, "--db", db, "list"); err == nil {
		t.Error("expected an error for an unknown profile in the config file")
	}

	if _, err := runCommand(t, "--config", filepath.Join(dir, "missing.yaml"), "list"); err == nil {
		t.Error("expected an error for a missing explicit config file")
	}
}
