package tui

import (
	"charm.land/bubbles/v2/key"
	"github.com/thenoetrevino/talento/internal/config"
)

// KeyMap holds the help bindings of the board, built from the configured
// key mappings so the help screen shows what the user actually types.
type KeyMap struct {
	Navigate  key.Binding
	Cards     key.Binding
	MoveLeft  key.Binding
	MoveRight key.Binding
	MoveUp    key.Binding
	MoveDown  key.Binding
	Delete    key.Binding
	View      key.Binding
	Search    key.Binding
	Reload    key.Binding
	Help      key.Binding
	Quit      key.Binding
}

// NewKeyMap builds the help bindings from km
func NewKeyMap(km config.KeyMappings) KeyMap {
	binding := func(help, desc string, keys ...string) key.Binding {
		return key.NewBinding(key.WithKeys(keys...), key.WithHelp(help, desc))
	}
	return KeyMap{
		Navigate:  binding("←/"+km.PrevColumn+" →/"+km.NextColumn, "column", "left", "right", km.PrevColumn, km.NextColumn),
		Cards:     binding("↑/"+km.PrevCard+" ↓/"+km.NextCard, "candidate", "up", "down", km.PrevCard, km.NextCard),
		MoveLeft:  binding(km.MoveCardLeft, "move to previous stage", km.MoveCardLeft),
		MoveRight: binding(km.MoveCardRight, "move to next stage", km.MoveCardRight),
		MoveUp:    binding(km.MoveCardUp, "move up", km.MoveCardUp),
		MoveDown:  binding(km.MoveCardDown, "move down", km.MoveCardDown),
		Delete:    binding(km.DeleteCard, "delete", km.DeleteCard),
		View:      binding(km.ViewCard, "details", km.ViewCard),
		Search:    binding(km.Search, "search", km.Search),
		Reload:    binding(km.Reload, "reload", km.Reload),
		Help:      binding(km.ShowHelp, "help", km.ShowHelp),
		Quit:      binding(km.Quit, "quit", km.Quit, "ctrl+c"),
	}
}

// ShortHelp implements help.KeyMap
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Navigate, k.Cards, k.View, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Navigate, k.Cards, k.View, k.Search},
		{k.MoveLeft, k.MoveRight, k.MoveUp, k.MoveDown},
		{k.Delete, k.Reload, k.Help, k.Quit},
	}
}
