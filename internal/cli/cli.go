// Package cli holds what every talento subcommand shares: the application
// context, output formatting and exit codes.
package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/talento/internal/app"
	"github.com/thenoetrevino/talento/internal/config"
)

type contextKey string

const appKey contextKey = "talento-app"

// WithApp returns a context carrying an already built App. Commands run
// with it reuse the App instead of opening the configured database.
func WithApp(ctx context.Context, a *app.App) context.Context {
	return context.WithValue(ctx, appKey, a)
}

// CLI represents the CLI application context
type CLI struct {
	App   *app.App
	owned bool
}

// GetCLIFromContext returns the App injected with WithApp, or builds one
// from the user's configuration.
func GetCLIFromContext(ctx context.Context) (*CLI, error) {
	if a, ok := ctx.Value(appKey).(*app.App); ok && a != nil {
		return &CLI{App: a}, nil
	}

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	a, err := app.New(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return &CLI{App: a, owned: true}, nil
}

// Close cleans up CLI resources. An injected App is left open for its owner.
func (c *CLI) Close() error {
	if !c.owned {
		return nil
	}
	return c.App.Close()
}

// Confirm asks a y/N question on the command's stdin and stdout
func Confirm(cmd *cobra.Command, question string) bool {
	fmt.Fprintf(cmd.OutOrStdout(), "%s (y/N): ", question)
	var response string
	if _, err := fmt.Fscanln(cmd.InOrStdin(), &response); err != nil {
		return false
	}
	response = strings.ToLower(strings.TrimSpace(response))
	return response == "y" || response == "yes"
}
