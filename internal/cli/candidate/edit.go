package candidate

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/talento/internal/cli"
	"github.com/thenoetrevino/talento/internal/cli/styles"
	"github.com/thenoetrevino/talento/internal/models"
)

// EditCmd returns the candidate edit subcommand
func EditCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "edit",
		Short: "Edit a candidate",
		Long: `Update the fields given as flags, keeping the rest.

Changing --status moves the candidate to the end of that column.`,
		RunE: runEdit,
	}

	cmd.Flags().String("id", "", "Candidate ID (required)")
	if err := cmd.MarkFlagRequired("id"); err != nil {
		log.Printf("Error marking flag as required: %v", err)
	}
	addFieldFlags(cmd)
	cli.AddOutputFlags(cmd)

	return cmd
}

// editResult is the JSON payload of a successful edit
type editResult struct {
	Candidate  *models.CandidateItem `json:"candidate"`
	FromColumn string                `json:"fromColumn,omitempty"`
	ToColumn   string                `json:"toColumn"`
	Moved      bool                  `json:"moved"`
	Recovered  bool                  `json:"recovered"`
}

func (r editResult) GetID() string {
	return r.Candidate.ID
}

func runEdit(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.NewFormatter(cmd)
	id, _ := cmd.Flags().GetString("id")

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

	// Start from the stored candidate so unset flags keep their values.
	// A missing candidate starts empty and the board decides whether to
	// re-add it or reject the edit.
	in := models.CandidateInput{Status: models.StageNuevos, Priority: models.PriorityMedia, ApplicationDate: today()}
	if item, columnID, ok := svc.Board(ctx).Item(id); ok {
		in = models.InputFromItem(item, columnID)
	}
	if err := applyFieldFlags(cmd, &in); err != nil {
		return formatter.Fail(err)
	}

	outcome, err := svc.EditCandidate(ctx, id, in)
	if err != nil {
		return formatter.FailWithSuggestion(err, "Use 'talento candidate find' to look up candidate ids")
	}

	result := editResult{
		Candidate:  outcome.Item,
		FromColumn: outcome.FromColumn,
		ToColumn:   outcome.ToColumn,
		Moved:      outcome.Moved,
		Recovered:  outcome.Recovered,
	}

	msg := fmt.Sprintf("✓ Candidate %s updated", outcome.Item.ID)
	switch {
	case outcome.Recovered:
		msg = styles.ErrorStyle.Render("⚠ Candidate "+id+" was not on the board") +
			fmt.Sprintf("\n✓ Re-added to %s", cli.StageTitle(outcome.ToColumn))
	case outcome.Moved:
		msg += fmt.Sprintf(" and moved %s → %s", cli.StageTitle(outcome.FromColumn), cli.StageTitle(outcome.ToColumn))
	}
	return formatter.Success("result", result, msg)
}
