package candidate

import (
	"fmt"
	"log"
	"strings"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/talento/internal/cli"
	"github.com/thenoetrevino/talento/internal/cli/styles"
)

// FindCmd returns the candidate find subcommand
func FindCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "find <query>",
		Short: "Search candidates",
		Long:  "Search by name, email, position, department or tag. Accents and small typos are ignored.",
		Args:  cobra.MinimumNArgs(1),
		RunE:  runFind,
	}

	cmd.Flags().Int("limit", 10, "Maximum number of results, 0 for all")
	cli.AddOutputFlags(cmd)

	return cmd
}

func runFind(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.NewFormatter(cmd)
	limit, _ := cmd.Flags().GetInt("limit")
	query := strings.Join(args, " ")

	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return formatter.Fail(err)
	}
	defer func() {
		if err := cliInstance.Close(); err != nil {
			log.Printf("Error closing CLI: %v", err)
		}
	}()

	hits := cliInstance.App.BoardService.Search(ctx, query, limit)

	if formatter.JSON {
		return formatter.Success("hits", hits, "")
	}

	out := cmd.OutOrStdout()
	if formatter.Quiet {
		for _, h := range hits {
			fmt.Fprintln(out, h.Item.ID)
		}
		return nil
	}

	if len(hits) == 0 {
		fmt.Fprintf(out, "No candidates match %q\n", query)
		return nil
	}
	fmt.Fprintf(out, "Found %d candidates:\n", len(hits))
	for _, h := range hits {
		fmt.Fprintf(out, "  %s %s\n", styles.RenderCandidateLine(h.Item), styles.SubtitleStyle.Render("· "+cli.StageTitle(h.ColumnID)))
	}
	return nil
}
