// Package assistant holds the chat subcommands that talk to the HR assistant
package assistant

import (
	"github.com/spf13/cobra"
)

// ChatCmd returns the chat parent command
func ChatCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "chat",
		Short: "Ask the HR assistant",
	}

	cmd.AddCommand(AskCmd())
	cmd.AddCommand(StatusCmd())

	return cmd
}
