package candidate

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/talento/internal/cli"
	"github.com/thenoetrevino/talento/internal/cli/styles"
	"github.com/thenoetrevino/talento/internal/models"
	"github.com/thenoetrevino/talento/internal/pipeline"
)

// ShowCmd returns the candidate show subcommand
func ShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Show candidate details",
		Args:  cobra.ExactArgs(1),
		RunE:  runShow,
	}

	cli.AddOutputFlags(cmd)

	return cmd
}

// showResult is the JSON payload of candidate show
type showResult struct {
	*models.CandidateItem
	ColumnID string `json:"columnId"`
}

func runShow(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.NewFormatter(cmd)
	id := args[0]

	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return formatter.Fail(err)
	}
	defer func() {
		if err := cliInstance.Close(); err != nil {
			log.Printf("Error closing CLI: %v", err)
		}
	}()

	item, columnID, ok := cliInstance.App.BoardService.Board(ctx).Item(id)
	if !ok {
		return formatter.Fail(fmt.Errorf("%w: %s", pipeline.ErrItemNotFound, id))
	}

	return formatter.Success("candidate", showResult{CandidateItem: item, ColumnID: columnID},
		styles.RenderCandidate(item, cli.StageTitle(columnID)))
}
