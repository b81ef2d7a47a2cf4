package assistant

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/talento/internal/chat"
	"github.com/thenoetrevino/talento/internal/cli"
	"github.com/thenoetrevino/talento/internal/cli/styles"
)

// StatusCmd returns the chat status subcommand
func StatusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Check whether the assistant is up and has its manual loaded",
		RunE:  runStatus,
	}

	cli.AddOutputFlags(cmd)

	return cmd
}

func runStatus(cmd *cobra.Command, args []string) error {
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

	session := cliInstance.App.Chat
	if _, err := session.CheckStatus(ctx); err != nil {
		return formatter.FailWithSuggestion(err,
			fmt.Sprintf("Is the assistant running at %s? Set chat.base_url or TALENTO_CHAT_URL", session.Client().BaseURL()))
	}

	report := session.LastStatus()
	return formatter.Success("status", report, renderStatus(report))
}

func renderStatus(r chat.StatusReport) string {
	yesNo := func(ok bool) string {
		if ok {
			return styles.SuccessStyle.Render("yes")
		}
		return styles.ErrorStyle.Render("no")
	}
	return fmt.Sprintf("%s %s\n%s %s",
		styles.LabelStyle.Render("Assistant available:"), yesNo(r.OK),
		styles.LabelStyle.Render("Manual loaded:"), yesNo(r.ManualCargado))
}
