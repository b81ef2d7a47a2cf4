package candidate

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/talento/internal/cli"
	"github.com/thenoetrevino/talento/internal/pipeline"
)

// DeleteCmd returns the candidate delete subcommand
func DeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Delete a candidate",
		Long:  "Delete a candidate by ID (requires confirmation unless --yes).",
		RunE:  runDelete,
	}

	cmd.Flags().String("id", "", "Candidate ID (required)")
	if err := cmd.MarkFlagRequired("id"); err != nil {
		log.Printf("Error marking flag as required: %v", err)
	}
	cmd.Flags().Bool("yes", false, "Skip confirmation")
	cli.AddOutputFlags(cmd)

	return cmd
}

func runDelete(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.NewFormatter(cmd)
	id, _ := cmd.Flags().GetString("id")
	yes, _ := cmd.Flags().GetBool("yes")

	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return formatter.Fail(err)
	}
	defer func() {
		if err := cliInstance.Close(); err != nil {
			log.Printf("Error closing CLI: %v", err)
		}
	}()

	svc := cliInstance.App.BoardService

	columnID, _, ok := svc.Board(ctx).Find(id)
	if !ok {
		return formatter.FailWithSuggestion(fmt.Errorf("%w: %s", pipeline.ErrItemNotFound, id),
			"Use 'talento candidate find' to look up candidate ids")
	}

	pending, err := svc.RequestDelete(ctx, id, columnID)
	if err != nil {
		return formatter.Fail(err)
	}

	if !yes && !cli.Confirm(cmd, fmt.Sprintf("Delete candidate '%s' (%s)?", pending.Name, pending.ID)) {
		svc.CancelDelete(ctx)
		fmt.Fprintln(cmd.OutOrStdout(), "Cancelled")
		return nil
	}

	deleted, removed, err := svc.ConfirmDelete(ctx)
	if err != nil {
		return formatter.Fail(err)
	}
	if !removed {
		return formatter.Fail(fmt.Errorf("%w: %s", pipeline.ErrItemNotFound, id))
	}

	return formatter.Success("deleted", deleted, fmt.Sprintf("✓ Candidate %s deleted", deleted.Name))
}
