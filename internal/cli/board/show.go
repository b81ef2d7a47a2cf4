package board

import (
	"fmt"
	"log"
	"strings"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/talento/internal/cli"
	"github.com/thenoetrevino/talento/internal/cli/styles"
	"github.com/thenoetrevino/talento/internal/models"
	"github.com/thenoetrevino/talento/internal/pipeline"
)

// ShowCmd returns the board show subcommand
func ShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show the board columns and their candidates",
		RunE:  runShow,
	}

	cmd.Flags().String("column", "", "Only show this column (id or title)")
	cli.AddOutputFlags(cmd)

	return cmd
}

func runShow(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.NewFormatter(cmd)
	columnFlag, _ := cmd.Flags().GetString("column")

	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return formatter.Fail(err)
	}
	defer func() {
		if err := cliInstance.Close(); err != nil {
			log.Printf("Error closing CLI: %v", err)
		}
	}()

	b := cliInstance.App.BoardService.Board(ctx)
	columns := b.Columns()
	if columnFlag != "" {
		col, ok := b.Column(cli.ResolveColumn(columnFlag))
		if !ok {
			return formatter.FailWithSuggestion(
				fmt.Errorf("%w: %q", pipeline.ErrUnknownColumn, columnFlag),
				"Columns: "+strings.Join(b.ColumnIDs(), ", "))
		}
		columns = []*models.Column{col}
	}

	if formatter.JSON {
		return formatter.Success("columns", columns, "")
	}

	out := cmd.OutOrStdout()
	if formatter.Quiet {
		for _, col := range columns {
			for _, item := range col.Items {
				fmt.Fprintln(out, item.ID)
			}
		}
		return nil
	}

	for _, col := range columns {
		fmt.Fprintln(out, styles.SectionStyle.Render(fmt.Sprintf("%s (%d)", col.Title, col.Len())))
		if col.Len() == 0 {
			fmt.Fprintln(out, styles.SubtitleStyle.Render("  sin candidatos"))
			continue
		}
		for _, item := range col.Items {
			fmt.Fprintln(out, "  "+styles.RenderCandidateLine(item))
		}
	}
	return nil
}
