package viz

import "github.com/charmbracelet/lipgloss"

// Theme defines the color scheme for the TUI
type Theme struct {
	Name      string
	Primary   lipgloss.Color // headers, group symbol
	Secondary lipgloss.Color // solid wireframe accents
	Accent    lipgloss.Color // active operation
	Text      lipgloss.Color
	Muted     lipgloss.Color
	Warning   lipgloss.Color
}

// Available themes
var (
	ThemeAmethyst = Theme{
		Name:      "amethyst",
		Primary:   lipgloss.Color("#b388ff"),
		Secondary: lipgloss.Color("#7c4dff"),
		Accent:    lipgloss.Color("#ffd740"),
		Text:      lipgloss.Color("#ede7f6"),
		Muted:     lipgloss.Color("#6d6685"),
		Warning:   lipgloss.Color("#ff8a65"),
	}

	ThemeQuartz = Theme{
		Name:      "quartz",
		Primary:   lipgloss.Color("#ffffff"),
		Secondary: lipgloss.Color("#cfd8dc"),
		Accent:    lipgloss.Color("#4fc3f7"),
		Text:      lipgloss.Color("#eceff1"),
		Muted:     lipgloss.Color("#78909c"),
		Warning:   lipgloss.Color("#ffab40"),
	}

	ThemeEmerald = Theme{
		Name:      "emerald",
		Primary:   lipgloss.Color("#69f0ae"),
		Secondary: lipgloss.Color("#00bfa5"),
		Accent:    lipgloss.Color("#ffff8d"),
		Text:      lipgloss.Color("#e8f5e9"),
		Muted:     lipgloss.Color("#4e7a60"),
		Warning:   lipgloss.Color("#ff7043"),
	}

	ThemeGraphite = Theme{
		Name:      "graphite",
		Primary:   lipgloss.Color("#bdbdbd"),
		Secondary: lipgloss.Color("#9e9e9e"),
		Accent:    lipgloss.Color("#ffffff"),
		Text:      lipgloss.Color("#e0e0e0"),
		Muted:     lipgloss.Color("#616161"),
		Warning:   lipgloss.Color("#ef9a9a"),
	}

	// Default theme
	CurrentTheme = ThemeAmethyst

	// All available themes
	Themes = []Theme{ThemeAmethyst, ThemeQuartz, ThemeEmerald, ThemeGraphite}
)

// GetTheme returns a theme by name
func GetTheme(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return ThemeAmethyst
}

// SetTheme changes the current theme
func SetTheme(name string) {
	CurrentTheme = GetTheme(name)
}

// ThemeNames returns list of available theme names
func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}
