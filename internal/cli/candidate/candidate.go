package candidate

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/talento/internal/cli"
	"github.com/thenoetrevino/talento/internal/models"
)

// CandidateCmd returns the candidate parent command
func CandidateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "candidate",
		Aliases: []string{"c"},
		Short:   "Manage candidates",
	}

	cmd.AddCommand(CreateCmd())
	cmd.AddCommand(EditCmd())
	cmd.AddCommand(MoveCmd())
	cmd.AddCommand(DeleteCmd())
	cmd.AddCommand(FindCmd())
	cmd.AddCommand(ShowCmd())

	return cmd
}

// addFieldFlags registers the candidate field flags shared by create and edit
func addFieldFlags(cmd *cobra.Command) {
	cmd.Flags().String("name", "", "Full name")
	cmd.Flags().String("status", "", "Column id or title")
	cmd.Flags().String("email", "", "Email address")
	cmd.Flags().String("position", "", "Position applied for")
	cmd.Flags().String("department", "", "Department")
	cmd.Flags().String("skills", "", "Comma separated skills")
	cmd.Flags().Float64("salary", 0, "Expected salary")
	cmd.Flags().String("priority", "", "Priority: alta, media or baja")
	cmd.Flags().String("applied", "", "Application date (YYYY-MM-DD)")
	cmd.Flags().String("interview", "", "Interview date (YYYY-MM-DD)")
	cmd.Flags().String("hired", "", "Hire date (YYYY-MM-DD)")
	cmd.Flags().String("notes", "", "Notes (markdown)")
	cmd.Flags().String("tags", "", "Comma separated tags")
	cmd.Flags().String("contract", "", "Contract: indefinido, temporal, practicas or freelance")
}

// applyFieldFlags overwrites in with every field flag the user set
func applyFieldFlags(cmd *cobra.Command, in *models.CandidateInput) error {
	flags := cmd.Flags()
	str := func(name string) string {
		v, _ := flags.GetString(name)
		return v
	}

	if flags.Changed("name") {
		in.Name = str("name")
	}
	if flags.Changed("status") {
		in.Status = cli.ResolveColumn(str("status"))
	}
	if flags.Changed("email") {
		in.Email = str("email")
	}
	if flags.Changed("position") {
		in.Position = str("position")
	}
	if flags.Changed("department") {
		in.Department = str("department")
	}
	if flags.Changed("skills") {
		in.Skills = cli.SplitList(str("skills"))
	}
	if flags.Changed("salary") {
		in.Salary, _ = flags.GetFloat64("salary")
		if in.Salary < 0 {
			return fmt.Errorf("%w: salary cannot be negative", cli.ErrInvalidValue)
		}
	}
	if flags.Changed("priority") {
		p, err := models.ParsePriority(str("priority"))
		if err != nil {
			return err
		}
		in.Priority = p
	}
	if flags.Changed("applied") {
		t, err := cli.ParseDate(str("applied"))
		if err != nil {
			return err
		}
		in.ApplicationDate = t
	}
	if flags.Changed("interview") {
		t, err := cli.ParseDatePtr(str("interview"))
		if err != nil {
			return err
		}
		in.InterviewDate = t
	}
	if flags.Changed("hired") {
		t, err := cli.ParseDatePtr(str("hired"))
		if err != nil {
			return err
		}
		in.HireDate = t
	}
	if flags.Changed("notes") {
		in.Notes = str("notes")
	}
	if flags.Changed("tags") {
		in.Tags = cli.SplitList(str("tags"))
	}
	if flags.Changed("contract") {
		if raw := str("contract"); raw == "" {
			in.ContractType = nil
		} else {
			ct, err := models.ParseContractType(raw)
			if err != nil {
				return err
			}
			in.ContractType = &ct
		}
	}
	return nil
}

// today is the default application date
func today() time.Time {
	now := time.Now().UTC()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}
