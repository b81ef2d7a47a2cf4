package config

// KeyMappings defines all configurable key bindings of the terminal board
type KeyMappings struct {
	// Candidates
	MoveCardLeft  string `yaml:"move_card_left"`
	MoveCardRight string `yaml:"move_card_right"`
	MoveCardUp    string `yaml:"move_card_up"`
	MoveCardDown  string `yaml:"move_card_down"`
	DeleteCard    string `yaml:"delete_card"`
	ViewCard      string `yaml:"view_card"`

	// Navigation
	PrevColumn string `yaml:"prev_column"`
	NextColumn string `yaml:"next_column"`
	PrevCard   string `yaml:"prev_card"`
	NextCard   string `yaml:"next_card"`

	// Other
	Search   string `yaml:"search"`
	Reload   string `yaml:"reload"`
	ShowHelp string `yaml:"show_help"`
	Quit     string `yaml:"quit"`
}

// DefaultKeyMappings returns the default key mappings
func DefaultKeyMappings() KeyMappings {
	return KeyMappings{
		MoveCardLeft:  "<",
		MoveCardRight: ">",
		MoveCardUp:    "K",
		MoveCardDown:  "J",
		DeleteCard:    "d",
		ViewCard:      "enter",

		PrevColumn: "h",
		NextColumn: "l",
		PrevCard:   "k",
		NextCard:   "j",

		Search:   "/",
		Reload:   "r",
		ShowHelp: "?",
		Quit:     "q",
	}
}

// applyDefaults fills in missing key mappings with defaults
func (k *KeyMappings) applyDefaults() {
	defaults := DefaultKeyMappings()
	pairs := []struct {
		field *string
		def   string
	}{
		{&k.MoveCardLeft, defaults.MoveCardLeft},
		{&k.MoveCardRight, defaults.MoveCardRight},
		{&k.MoveCardUp, defaults.MoveCardUp},
		{&k.MoveCardDown, defaults.MoveCardDown},
		{&k.DeleteCard, defaults.DeleteCard},
		{&k.ViewCard, defaults.ViewCard},
		{&k.PrevColumn, defaults.PrevColumn},
		{&k.NextColumn, defaults.NextColumn},
		{&k.PrevCard, defaults.PrevCard},
		{&k.NextCard, defaults.NextCard},
		{&k.Search, defaults.Search},
		{&k.Reload, defaults.Reload},
		{&k.ShowHelp, defaults.ShowHelp},
		{&k.Quit, defaults.Quit},
	}
	for _, p := range pairs {
		if *p.field == "" {
			*p.field = p.def
		}
	}
}
