package candidate

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/talento/internal/cli"
	"github.com/thenoetrevino/talento/internal/models"
)

// CreateCmd returns the candidate create subcommand
func CreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Add a candidate to the board",
		Long: `Add a candidate at the end of its status column.

Examples:
  talento candidate create --name "Ana Ruiz" --position "QA" --priority alta
  talento candidate create --name "Luis Pardo" --status preseleccion --skills "Go,SQL" --quiet`,
		RunE: runCreate,
	}

	addFieldFlags(cmd)
	if err := cmd.MarkFlagRequired("name"); err != nil {
		log.Printf("Error marking flag as required: %v", err)
	}
	cli.AddOutputFlags(cmd)

	return cmd
}

func runCreate(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.NewFormatter(cmd)

	in := models.CandidateInput{
		Status:          models.StageNuevos,
		Priority:        models.PriorityMedia,
		ApplicationDate: today(),
	}
	if err := applyFieldFlags(cmd, &in); err != nil {
		return formatter.Fail(err)
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

	item, err := cliInstance.App.BoardService.CreateCandidate(ctx, in)
	if err != nil {
		return formatter.Fail(err)
	}

	return formatter.Success("candidate", item,
		fmt.Sprintf("✓ Candidate %s created in %s (%s)", item.Name, cli.StageTitle(in.Status), item.ID))
}
