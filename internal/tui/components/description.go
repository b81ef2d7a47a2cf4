package components

import (
	"strings"
	"sync"

	"github.com/charmbracelet/glamour"
)

// Cache Glamour renderers by width to avoid expensive re-creation
var rendererCache sync.Map // map[int]*glamour.TermRenderer

// getRenderer returns a cached renderer for the given width
func getRenderer(width int) (*glamour.TermRenderer, error) {
	if cached, ok := rendererCache.Load(width); ok {
		return cached.(*glamour.TermRenderer), nil
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("dark"),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil, err
	}

	rendererCache.Store(width, renderer)
	return renderer, nil
}

// RenderNotes renders candidate notes as markdown. Rendering failures fall
// back to the raw text.
func RenderNotes(notes string, width int) string {
	if strings.TrimSpace(notes) == "" {
		return SubtleStyle.Italic(true).Render("Sin notas")
	}

	renderer, err := getRenderer(width)
	if err != nil {
		return notes
	}
	out, err := renderer.Render(notes)
	if err != nil {
		return notes
	}
	return strings.TrimSpace(out)
}
