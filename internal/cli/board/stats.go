package board

import (
	"fmt"
	"log"
	"strings"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/talento/internal/cli"
	"github.com/thenoetrevino/talento/internal/cli/styles"
	"github.com/thenoetrevino/talento/internal/models"
	"github.com/thenoetrevino/talento/internal/stats"
)

// StatsCmd returns the board stats subcommand
func StatsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show recruiting statistics",
		RunE:  runStats,
	}

	cli.AddOutputFlags(cmd)

	return cmd
}

func runStats(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.NewFormatter(cmd)

	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return formatter.Fail(err)
	}
	defer func() {
		if err := cliInstance.Close(); err != nil {
			log.Printf("Error closing CLI: %v", err)
		}
	}()

	summary := cliInstance.App.BoardService.Stats(ctx)
	if formatter.Quiet && !formatter.JSON {
		fmt.Fprintln(cmd.OutOrStdout(), summary.Total)
		return nil
	}
	return formatter.Success("stats", summary, renderStats(summary))
}

func renderStats(s stats.Summary) string {
	var b strings.Builder
	line := func(label string, value any) {
		fmt.Fprintf(&b, "%s %v\n", styles.LabelStyle.Render(label+":"), value)
	}

	b.WriteString(styles.TitleStyle.Render("Estadísticas de selección") + "\n")
	line("Total", s.Total)
	line("Activos", s.Active)
	line("Contratados", s.Hired)
	line("Descartados", s.Rejected)
	line("Salario medio", fmt.Sprintf("%.0f €", s.AverageSalary))

	b.WriteString(styles.SectionStyle.Render("Por columna") + "\n")
	for _, c := range s.ByColumn {
		fmt.Fprintf(&b, "  %-28s %d\n", c.Title, c.Count)
	}

	b.WriteString(styles.SectionStyle.Render("Por prioridad") + "\n")
	for _, p := range models.Priorities {
		fmt.Fprintf(&b, "  %s %d\n", styles.RenderPriority(p), s.ByPriority[p])
	}

	b.WriteString(styles.SectionStyle.Render("Embudo") + "\n")
	for _, step := range s.Funnel {
		fmt.Fprintf(&b, "  %-28s %3d %5.1f%%\n", cli.StageTitle(step.ColumnID), step.Reached, step.Rate*100)
	}
	return strings.TrimRight(b.String(), "\n")
}
