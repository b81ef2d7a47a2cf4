package notifications

import "github.com/thenoetrevino/talento/internal/config"

// Severity represents the severity level of a notification
type Severity int

const (
	Info Severity = iota
	Warning
	Error
)

type style struct {
	icon       string
	title      string
	foreground string
	border     string
}

// warningFg is not part of the configurable theme
const warningFg = "#FFAF00"

func (s Severity) style(theme config.Theme) style {
	switch s {
	case Warning:
		return style{icon: "⚠", title: "Warning", foreground: warningFg, border: warningFg}
	case Error:
		return style{icon: "✕", title: "Error", foreground: theme.ErrorFg, border: theme.ErrorFg}
	default:
		return style{icon: "🔔", title: "Info", foreground: theme.InfoFg, border: theme.InfoFg}
	}
}
