package assistant

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/talento/internal/cli"
)

// errAssistantUnavailable marks an answer that is the fallback message
var errAssistantUnavailable = errors.New("assistant unavailable")

// AskCmd returns the chat ask subcommand
func AskCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ask <message>",
		Short: "Ask the assistant a question",
		Long: `Send one question to the assistant and print its answer.

When the assistant cannot answer, the standard apology is printed and the
command exits with status 1.`,
		Args: cobra.MinimumNArgs(1),
		RunE: runAsk,
	}

	cli.AddOutputFlags(cmd)

	return cmd
}

func runAsk(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.NewFormatter(cmd)
	message := strings.Join(args, " ")

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
	answer, err := session.Ask(ctx, message)
	// Let the follow-up status check finish before the process exits
	defer session.WaitRechecks()
	if err != nil {
		return formatter.Fail(err)
	}

	if formatter.Quiet && !formatter.JSON {
		fmt.Fprintln(cmd.OutOrStdout(), answer.Text)
	} else if err := formatter.Success("answer", answer, answer.Text); err != nil {
		return err
	}

	if answer.Fallback {
		return &cli.ExitError{Code: cli.ExitGeneral, Err: errAssistantUnavailable}
	}
	return nil
}
