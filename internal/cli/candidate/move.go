package candidate

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/talento/internal/cli"
	"github.com/thenoetrevino/talento/internal/pipeline"
)

// MoveCmd returns the candidate move subcommand
func MoveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "move",
		Short: "Move a candidate to another column or position",
		Long: `Move a candidate to a column, at --index (0-based) or at the end.

Examples:
  talento candidate move --id cand-2 --to entrevista-rrhh
  talento candidate move --id cand-3 --to revision-cv --index 0`,
		RunE: runMove,
	}

	cmd.Flags().String("id", "", "Candidate ID (required)")
	cmd.Flags().String("to", "", "Destination column id or title (required)")
	cmd.Flags().Int("index", -1, "Destination position, -1 for the end")
	for _, name := range []string{"id", "to"} {
		if err := cmd.MarkFlagRequired(name); err != nil {
			log.Printf("Error marking flag as required: %v", err)
		}
	}
	cli.AddOutputFlags(cmd)

	return cmd
}

// moveResult is the JSON payload of a successful move
type moveResult struct {
	ID       string `json:"id"`
	ColumnID string `json:"columnId"`
	Index    int    `json:"index"`
}

func (r moveResult) GetID() string {
	return r.ID
}

func runMove(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.NewFormatter(cmd)
	id, _ := cmd.Flags().GetString("id")
	to, _ := cmd.Flags().GetString("to")
	index, _ := cmd.Flags().GetInt("index")

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
	dest := cli.ResolveColumn(to)

	b := svc.Board(ctx)
	if index < 0 {
		index = endIndex(b, id, dest)
	}

	next, err := svc.MoveCandidate(ctx, id, dest, index)
	if err != nil {
		return formatter.Fail(err)
	}

	_, finalIdx, _ := next.Find(id)
	result := moveResult{ID: id, ColumnID: dest, Index: finalIdx}
	return formatter.Success("move", result,
		fmt.Sprintf("✓ Candidate %s moved to %s (position %d)", id, cli.StageTitle(dest), finalIdx+1))
}

// endIndex is the insertion index that puts id last in dest. Unknown ids
// and columns return 0 and are reported by the move itself.
func endIndex(b *pipeline.Board, id, dest string) int {
	col, ok := b.Column(dest)
	if !ok {
		return 0
	}
	if srcID, _, found := b.Find(id); found && srcID == dest {
		return col.Len() - 1
	}
	return col.Len()
}
