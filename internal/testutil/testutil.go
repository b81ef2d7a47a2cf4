// Package testutil builds throwaway apps and runs cobra commands against them
package testutil

import (
	"bytes"
	"context"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/talento/internal/app"
	"github.com/thenoetrevino/talento/internal/cli"
	"github.com/thenoetrevino/talento/internal/config"
	"github.com/thenoetrevino/talento/internal/pipeline"
)

// NewTestApp creates an app backed by a temporary database seeded with the
// sample board. New candidates get ids cand-9, cand-10, ...
func NewTestApp(t *testing.T) *app.App {
	t.Helper()
	cfg := config.Default()
	cfg.Database.Path = filepath.Join(t.TempDir(), "board.db")

	a, err := app.New(context.Background(), cfg, app.WithIDGenerator(pipeline.NewSequentialIDs(pipeline.SeedIDCount+1)))
	if err != nil {
		t.Fatalf("Failed to create test app: %v", err)
	}
	t.Cleanup(func() { _ = a.Close() })
	return a
}

// ExecuteCommand runs cmd with args against testApp and returns its stdout
func ExecuteCommand(t *testing.T, testApp *app.App, cmd *cobra.Command, args ...string) (string, error) {
	t.Helper()
	stdout, _, err := ExecuteCommandWithStderr(t, testApp, cmd, args...)
	return stdout, err
}

// ExecuteCommandContext is ExecuteCommand with a caller-controlled context
func ExecuteCommandContext(t *testing.T, ctx context.Context, testApp *app.App, cmd *cobra.Command, args ...string) (string, error) {
	t.Helper()
	stdout, _, err := execute(t, ctx, testApp, cmd, args)
	return stdout, err
}

// ExecuteCommandWithStderr is ExecuteCommand that also returns stderr
func ExecuteCommandWithStderr(t *testing.T, testApp *app.App, cmd *cobra.Command, args ...string) (string, string, error) {
	t.Helper()
	return execute(t, context.Background(), testApp, cmd, args)
}

func execute(t *testing.T, ctx context.Context, testApp *app.App, cmd *cobra.Command, args []string) (string, string, error) {
	t.Helper()
	if testApp == nil {
		t.Fatal("testApp cannot be nil - NewTestApp must be called first")
	}

	var stdout, stderr bytes.Buffer
	cmd.SetArgs(args)
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetIn(&bytes.Buffer{})
	// Disable usage output on error for cleaner test output
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true

	err := cmd.ExecuteContext(cli.WithApp(ctx, testApp))
	return stdout.String(), stderr.String(), err
}

// ParseJSON parses JSON output from CLI commands
func ParseJSON(t *testing.T, output string) map[string]any {
	t.Helper()

	var result map[string]any
	if err := json.Unmarshal([]byte(output), &result); err != nil {
		t.Fatalf("Failed to parse JSON output: %v\nOutput: %s", err, output)
	}

	return result
}
