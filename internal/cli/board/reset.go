package board

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/talento/internal/cli"
)

// ResetCmd returns the board reset subcommand
func ResetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Replace the board with the sample candidates",
		Long:  "Discard every change and restore the sample board (requires confirmation unless --yes).",
		RunE:  runReset,
	}

	cmd.Flags().Bool("yes", false, "Skip confirmation")
	cli.AddOutputFlags(cmd)

	return cmd
}

func runReset(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.NewFormatter(cmd)
	yes, _ := cmd.Flags().GetBool("yes")

	if !yes && !cli.Confirm(cmd, "Discard all changes and restore the sample board?") {
		fmt.Fprintln(cmd.OutOrStdout(), "Cancelled")
		return nil
	}

	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return formatter.Fail(err)
	}
	defer func() {
		if err := cliInstance.Close(); err != nil {
			log.Printf("Error closing CLI: %v", err)
		}
	}()

	if err := cliInstance.App.BoardService.Reset(ctx); err != nil {
		return formatter.Fail(err)
	}

	n := cliInstance.App.BoardService.Board(ctx).Len()
	return formatter.Success("candidates", n, fmt.Sprintf("✓ Board reset (%d candidates)", n))
}
