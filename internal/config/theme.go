package config

// Theme defines all configurable color values of the terminal board
type Theme struct {
	// Preset name: "default" or "monochrome"
	Preset string `yaml:"preset"`

	// Primary accent color (used for selections, titles, highlights)
	Accent string `yaml:"accent"`

	// Red - delete confirmations
	Delete string `yaml:"delete"`

	ColumnBorder   string `yaml:"column_border"`
	CardBorder     string `yaml:"card_border"`
	SelectedBorder string `yaml:"selected_border"`

	Title  string `yaml:"title"`
	Subtle string `yaml:"subtle"` // Muted/placeholder text
	Normal string `yaml:"normal"`

	ErrorFg string `yaml:"error_fg"`
	InfoFg  string `yaml:"info_fg"`
}

// DefaultTheme returns the default purple theme
func DefaultTheme() Theme {
	return Theme{
		Preset:         "default",
		Accent:         "#874BFD",
		Delete:         "#FF0000",
		ColumnBorder:   "#5F87D7",
		CardBorder:     "#585858",
		SelectedBorder: "#D75FD7",
		Title:          "#D75FD7",
		Subtle:         "#585858",
		Normal:         "#D0D0D0",
		ErrorFg:        "#FF5F5F",
		InfoFg:         "#00AFFF",
	}
}

// MonochromeTheme returns a black and white theme
func MonochromeTheme() Theme {
	return Theme{
		Preset:         "monochrome",
		Accent:         "#FFFFFF",
		Delete:         "#FFFFFF",
		ColumnBorder:   "#808080",
		CardBorder:     "#585858",
		SelectedBorder: "#FFFFFF",
		Title:          "#FFFFFF",
		Subtle:         "#808080",
		Normal:         "#D0D0D0",
		ErrorFg:        "#FFFFFF",
		InfoFg:         "#D0D0D0",
	}
}

// preset returns a preset theme by name
func preset(name string) Theme {
	if name == "monochrome" {
		return MonochromeTheme()
	}
	return DefaultTheme()
}

// ApplyDefaults fills in missing colors from the preset, keeping custom values
func (t *Theme) ApplyDefaults() {
	base := preset(t.Preset)
	if t.Preset == "" {
		t.Preset = base.Preset
	}
	pairs := []struct {
		field *string
		def   string
	}{
		{&t.Accent, base.Accent},
		{&t.Delete, base.Delete},
		{&t.ColumnBorder, base.ColumnBorder},
		{&t.CardBorder, base.CardBorder},
		{&t.SelectedBorder, base.SelectedBorder},
		{&t.Title, base.Title},
		{&t.Subtle, base.Subtle},
		{&t.Normal, base.Normal},
		{&t.ErrorFg, base.ErrorFg},
		{&t.InfoFg, base.InfoFg},
	}
	for _, p := range pairs {
		if *p.field == "" {
			*p.field = p.def
		}
	}
}
