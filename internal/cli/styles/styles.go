// Package styles renders human-readable CLI output with lipgloss
package styles

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/talento/internal/config"
	"github.com/thenoetrevino/talento/internal/models"
)

var (
	// Card styles
	CardStyle lipgloss.Style
	CardWidth = 72

	// Text styles
	TitleStyle    lipgloss.Style
	SubtitleStyle lipgloss.Style
	LabelStyle    lipgloss.Style // For field labels like "Email:", "Salary:"
	ValueStyle    lipgloss.Style // For field values
	SectionStyle  lipgloss.Style // For section headers like column titles

	// Status styles
	SuccessStyle lipgloss.Style
	ErrorStyle   lipgloss.Style
)

func init() {
	Init(config.DefaultTheme())
}

// Init initializes all CLI styles with the given theme
func Init(theme config.Theme) {
	CardStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(theme.CardBorder)).
		Padding(0, 1).
		Width(CardWidth)

	TitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(theme.Title))

	SubtitleStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Subtle))

	LabelStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(theme.Accent))

	ValueStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Normal))

	SectionStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Accent)).
		Bold(true).
		MarginTop(1)

	SuccessStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(theme.InfoFg))

	ErrorStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(theme.ErrorFg))
}

// ═══════════════════════════════════════════════════════════════════
// HELPER FUNCTIONS
// ═══════════════════════════════════════════════════════════════════

// ColoredText renders text with a hex color
func ColoredText(text, hexColor string) string {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(hexColor)).
		Render(text)
}

// RenderPriority renders a priority in its color
func RenderPriority(p models.Priority) string {
	return lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(p.Color())).
		Render(string(p))
}

// RenderTags renders tags as "[remoto] [senior]"
func RenderTags(tags []string) string {
	chips := make([]string, len(tags))
	for i, t := range tags {
		chips[i] = "[" + t + "]"
	}
	return SubtitleStyle.Render(strings.Join(chips, " "))
}

// RenderCandidateLine renders one candidate as a single list line
// Format: "• Name - Position (PRIORITY) id"
func RenderCandidateLine(item *models.CandidateItem) string {
	line := fmt.Sprintf("• %s - %s", ValueStyle.Render(item.Name), item.Position)
	line += " " + RenderPriority(item.Priority)
	return line + " " + SubtitleStyle.Render(item.ID)
}

// RenderCandidate renders a full candidate card
func RenderCandidate(item *models.CandidateItem, columnTitle string) string {
	var b strings.Builder
	b.WriteString(TitleStyle.Render(item.Name))
	b.WriteString("\n")
	b.WriteString(SubtitleStyle.Render(item.ID + " · " + columnTitle))
	b.WriteString("\n\n")

	field := func(label, value string) {
		if value == "" {
			return
		}
		b.WriteString(LabelStyle.Render(label+":") + " " + ValueStyle.Render(value) + "\n")
	}
	field("Email", item.Email)
	field("Puesto", item.Position)
	field("Departamento", item.Department)
	field("Prioridad", RenderPriority(item.Priority))
	if item.Salary > 0 {
		field("Salario", fmt.Sprintf("%.0f €", item.Salary))
	}
	field("Solicitud", item.ApplicationDate.Format("2006-01-02"))
	if item.InterviewDate != nil {
		field("Entrevista", item.InterviewDate.Format("2006-01-02"))
	}
	if item.HireDate != nil {
		field("Contratación", item.HireDate.Format("2006-01-02"))
	}
	if item.ContractType != nil {
		field("Contrato", string(*item.ContractType))
	}
	field("Habilidades", strings.Join(item.Skills, ", "))
	if len(item.Tags) > 0 {
		field("Etiquetas", RenderTags(item.Tags))
	}
	if item.Notes != "" {
		b.WriteString("\n" + item.Notes)
	}
	return RenderCard(strings.TrimRight(b.String(), "\n"))
}

// RenderCard wraps content in a styled card border
func RenderCard(content string) string {
	return CardStyle.Render(content)
}
