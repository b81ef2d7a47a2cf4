// Package cmd wires the talento command tree
package cmd

import (
	"log"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/talento/internal/cli"
	"github.com/thenoetrevino/talento/internal/cli/assistant"
	"github.com/thenoetrevino/talento/internal/cli/board"
	"github.com/thenoetrevino/talento/internal/cli/candidate"
	"github.com/thenoetrevino/talento/internal/cli/serve"
	"github.com/thenoetrevino/talento/internal/launcher"
)

var rootCmd = &cobra.Command{
	Use:   "talento",
	Short: "Talento - a recruiting pipeline board",
	Long: `Talento tracks candidates through the hiring pipeline as a kanban board.

Run without a subcommand to open the interactive board in the terminal.`,
	SilenceErrors: true,
	SilenceUsage:  true,
	RunE:          runBoard,
}

func init() {
	rootCmd.AddCommand(board.BoardCmd())
	rootCmd.AddCommand(candidate.CandidateCmd())
	rootCmd.AddCommand(assistant.ChatCmd())
	rootCmd.AddCommand(serve.ServeCmd())

	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return &cli.ExitError{Code: cli.ExitUsage, Err: err}
	})
}

// Execute runs the command tree
func Execute() error {
	return rootCmd.Execute()
}

func runBoard(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if err := cliInstance.Close(); err != nil {
			log.Printf("Error closing CLI: %v", err)
		}
	}()

	return launcher.Launch(ctx, cliInstance.App)
}
