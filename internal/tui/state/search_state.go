package state

import (
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/talento/internal/pipeline"
)

// SearchState backs the search prompt: the query input and the ranked hits
// of the last query.
type SearchState struct {
	input    textinput.Model
	hits     []pipeline.SearchHit
	selected int
}

// NewSearchState creates an empty search prompt
func NewSearchState() *SearchState {
	ti := textinput.New()
	ti.Placeholder = "name, skill, position..."
	ti.Prompt = "/"
	ti.CharLimit = 80
	return &SearchState{input: ti}
}

// Start clears the previous query and focuses the input
func (s *SearchState) Start() tea.Cmd {
	s.input.SetValue("")
	s.hits = nil
	s.selected = 0
	return s.input.Focus()
}

// Stop blurs the input
func (s *SearchState) Stop() {
	s.input.Blur()
}

// Update forwards a message to the text input
func (s *SearchState) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return cmd
}

// Query returns the current query text
func (s *SearchState) Query() string {
	return s.input.Value()
}

// View renders the prompt line
func (s *SearchState) View() string {
	return s.input.View()
}

// SetHits replaces the result list, keeping the selection in range
func (s *SearchState) SetHits(hits []pipeline.SearchHit) {
	s.hits = hits
	if s.selected >= len(hits) {
		s.selected = max(len(hits)-1, 0)
	}
}

// Hits returns the current results
func (s *SearchState) Hits() []pipeline.SearchHit {
	return s.hits
}

// Selected returns the index of the highlighted hit
func (s *SearchState) Selected() int {
	return s.selected
}

// MoveSelection moves the highlighted hit by delta, clamped to the list
func (s *SearchState) MoveSelection(delta int) {
	if len(s.hits) == 0 {
		s.selected = 0
		return
	}
	s.selected = min(max(s.selected+delta, 0), len(s.hits)-1)
}

// Current returns the highlighted hit
func (s *SearchState) Current() (pipeline.SearchHit, bool) {
	if s.selected < 0 || s.selected >= len(s.hits) {
		return pipeline.SearchHit{}, false
	}
	return s.hits[s.selected], true
}
