// Package styles provides shared lipgloss styles and theme palettes for the
// TUI.
package styles

import (
	"image/color"
	"sort"

	lipgloss "charm.land/lipgloss/v2"
)

// Palette defines a minimal semantic theme palette.
type Palette struct {
	Primary    color.Color
	Secondary  color.Color
	Foreground color.Color
	Muted      color.Color
	Surface    color.Color
	Success    color.Color
	Warning    color.Color
	Error      color.Color
}

// DefaultTheme is the name of the default theme.
const DefaultTheme = "tokyo-night"

// themes holds the built-in named palettes.
var themes = map[string]Palette{
	"tokyo-night": {
		Primary:    lipgloss.Color("#7aa2f7"),
		Secondary:  lipgloss.Color("#7dcfff"),
		Foreground: lipgloss.Color("#c0caf5"),
		Muted:      lipgloss.Color("#565f89"),
		Surface:    lipgloss.Color("#3b4261"),
		Success:    lipgloss.Color("#9ece6a"),
		Warning:    lipgloss.Color("#e0af68"),
		Error:      lipgloss.Color("#f7768e"),
	},
	"gruvbox": {
		Primary:    lipgloss.Color("#83a598"),
		Secondary:  lipgloss.Color("#8ec07c"),
		Foreground: lipgloss.Color("#ebdbb2"),
		Muted:      lipgloss.Color("#665c54"),
		Surface:    lipgloss.Color("#3c3836"),
		Success:    lipgloss.Color("#b8bb26"),
		Warning:    lipgloss.Color("#fabd2f"),
		Error:      lipgloss.Color("#fb4934"),
	},
}

// ThemeNames returns sorted names of all built-in themes.
func ThemeNames() []string {
	names := make([]string, 0, len(themes))
	for name := range themes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// GetPalette returns the palette for the given theme name.
func GetPalette(name string) (Palette, bool) {
	p, ok := themes[name]
	return p, ok
}

// CurrentPalette holds the active theme palette.
var CurrentPalette Palette

// Style exports, rebuilt by SetTheme.
var (
	TitleStyle        lipgloss.Style
	HeaderStyle       lipgloss.Style
	SelectedRowStyle  lipgloss.Style
	DoneMarkStyle     lipgloss.Style
	PendingMarkStyle  lipgloss.Style
	MutedStyle        lipgloss.Style
	HelpStyle         lipgloss.Style
	NoticeStyle       lipgloss.Style
	ErrorStyle        lipgloss.Style
	SearchMatchStyle  lipgloss.Style
	ProgressStyle     lipgloss.Style
	ModalStyle        lipgloss.Style
	ModalTitleStyle   lipgloss.Style
	InputPromptStyle  lipgloss.Style
	CurrentLangStyle  lipgloss.Style
	FileListItemStyle lipgloss.Style
)

// SetTheme sets the active palette and rebuilds all global styles.
func SetTheme(p Palette) {
	CurrentPalette = p

	TitleStyle = lipgloss.NewStyle().
		Foreground(p.Primary).
		Bold(true)
	HeaderStyle = lipgloss.NewStyle().
		Foreground(p.Muted).
		Bold(true)
	SelectedRowStyle = lipgloss.NewStyle().
		Background(p.Surface).
		Foreground(p.Foreground).
		Bold(true)
	DoneMarkStyle = lipgloss.NewStyle().
		Foreground(p.Success)
	PendingMarkStyle = lipgloss.NewStyle().
		Foreground(p.Muted)
	MutedStyle = lipgloss.NewStyle().
		Foreground(p.Muted)
	HelpStyle = lipgloss.NewStyle().
		Foreground(p.Muted)
	NoticeStyle = lipgloss.NewStyle().
		Foreground(p.Success).
		Bold(true)
	ErrorStyle = lipgloss.NewStyle().
		Foreground(p.Error).
		Bold(true)
	SearchMatchStyle = lipgloss.NewStyle().
		Foreground(p.Warning)
	ProgressStyle = lipgloss.NewStyle().
		Foreground(p.Secondary)
	ModalStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(p.Primary).
		Padding(1, 2)
	ModalTitleStyle = lipgloss.NewStyle().
		Foreground(p.Primary).
		Bold(true)
	InputPromptStyle = lipgloss.NewStyle().
		Foreground(p.Primary)
	CurrentLangStyle = lipgloss.NewStyle().
		Foreground(p.Warning)
	FileListItemStyle = lipgloss.NewStyle().
		Foreground(p.Foreground)
}

func init() {
	SetTheme(themes[DefaultTheme])
}
