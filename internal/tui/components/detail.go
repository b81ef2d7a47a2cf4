package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/talento/internal/models"
)

// dateLayout formats candidate dates in the detail pane
const dateLayout = "2006-01-02"

// RenderDetail renders every field of a candidate followed by its notes.
// The result is meant to be placed in a scrollable viewport.
func RenderDetail(item *models.CandidateItem, columnTitle string, width int) string {
	label := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(Theme.Accent)).
		Width(14)

	var b strings.Builder
	b.WriteString(TitleStyle.Render(item.Name) + "\n")
	b.WriteString(SubtleStyle.Render(item.ID+" · "+columnTitle) + "\n\n")

	field := func(name, value string) {
		if value == "" {
			return
		}
		b.WriteString(label.Render(name) + NormalStyle.Render(value) + "\n")
	}
	field("Email", item.Email)
	field("Puesto", item.Position)
	field("Departamento", item.Department)
	field("Prioridad", RenderPriority(item.Priority))
	if item.Salary > 0 {
		field("Salario", fmt.Sprintf("%.0f €", item.Salary))
	}
	if !item.ApplicationDate.IsZero() {
		field("Solicitud", item.ApplicationDate.Format(dateLayout))
	}
	if item.InterviewDate != nil {
		field("Entrevista", item.InterviewDate.Format(dateLayout))
	}
	if item.HireDate != nil {
		field("Contratación", item.HireDate.Format(dateLayout))
	}
	if item.ContractType != nil {
		field("Contrato", string(*item.ContractType))
	}
	field("Habilidades", strings.Join(item.Skills, ", "))
	field("Etiquetas", strings.Join(item.Tags, ", "))

	b.WriteString("\n" + RenderNotes(item.Notes, width))
	return b.String()
}
