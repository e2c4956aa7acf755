package styles

import (
	"strings"

	catppuccin "github.com/catppuccin/go"
	"github.com/charmbracelet/lipgloss"
)

// Themes accepted by New.
const (
	ThemeAuto  = "auto"
	ThemeDark  = "dark"
	ThemeLight = "light"
)

// Palette is the set of colors the UI draws with.
type Palette struct {
	Primary   lipgloss.TerminalColor
	Playing   lipgloss.TerminalColor
	Warning   lipgloss.TerminalColor
	Error     lipgloss.TerminalColor
	Love      lipgloss.TerminalColor
	Text      lipgloss.TerminalColor
	TextMuted lipgloss.TerminalColor
	TextDim   lipgloss.TerminalColor
	Border    lipgloss.TerminalColor
}

// NewPalette returns the catppuccin palette for theme. Auto picks Latte or
// Mocha from the terminal background.
func NewPalette(theme string) Palette {
	pick := func(c func(catppuccin.Flavour) catppuccin.Color) lipgloss.TerminalColor {
		switch theme {
		case ThemeDark:
			return lipgloss.Color(c(catppuccin.Mocha).Hex)
		case ThemeLight:
			return lipgloss.Color(c(catppuccin.Latte).Hex)
		default:
			return lipgloss.AdaptiveColor{
				Light: c(catppuccin.Latte).Hex,
				Dark:  c(catppuccin.Mocha).Hex,
			}
		}
	}

	return Palette{
		Primary:   pick(catppuccin.Flavour.Mauve),
		Playing:   pick(catppuccin.Flavour.Green),
		Warning:   pick(catppuccin.Flavour.Peach),
		Error:     pick(catppuccin.Flavour.Red),
		Love:      pick(catppuccin.Flavour.Pink),
		Text:      pick(catppuccin.Flavour.Text),
		TextMuted: pick(catppuccin.Flavour.Subtext0),
		TextDim:   pick(catppuccin.Flavour.Overlay0),
		Border:    pick(catppuccin.Flavour.Surface2),
	}
}

// Styles holds the rendering styles for one palette.
type Styles struct {
	Palette Palette

	Title     lipgloss.Style
	Subtitle  lipgloss.Style
	Label     lipgloss.Style
	Highlight lipgloss.Style
	Muted     lipgloss.Style
	Dim       lipgloss.Style
	Playing   lipgloss.Style
	Paused    lipgloss.Style
	Error     lipgloss.Style
	Love      lipgloss.Style

	BorderStyle   lipgloss.Style
	FocusedBorder lipgloss.Style
}

// New builds styles for theme.
func New(theme string) Styles {
	p := NewPalette(theme)
	return Styles{
		Palette: p,

		Title:     lipgloss.NewStyle().Bold(true).Foreground(p.Text),
		Subtitle:  lipgloss.NewStyle().Foreground(p.TextMuted),
		Label:     lipgloss.NewStyle().Foreground(p.TextDim),
		Highlight: lipgloss.NewStyle().Bold(true).Foreground(p.Primary),
		Muted:     lipgloss.NewStyle().Foreground(p.TextMuted),
		Dim:       lipgloss.NewStyle().Foreground(p.TextDim),
		Playing:   lipgloss.NewStyle().Foreground(p.Playing),
		Paused:    lipgloss.NewStyle().Foreground(p.Warning),
		Error:     lipgloss.NewStyle().Foreground(p.Error),
		Love:      lipgloss.NewStyle().Foreground(p.Love),

		BorderStyle: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.Border),
		FocusedBorder: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.Primary),
	}
}

// Panel creates a bordered panel style
func (s Styles) Panel(focused bool) lipgloss.Style {
	if focused {
		return s.FocusedBorder.Padding(0, 1)
	}
	return s.BorderStyle.Padding(0, 1)
}

// PanelTitle creates a styled panel title
func (s Styles) PanelTitle(title string, focused bool) string {
	style := s.Label
	if focused {
		style = s.Highlight
	}
	return style.Render(" " + title + " ")
}

// Filled returns how many of width cells percent covers.
func Filled(percent float64, width int) int {
	filled := int(percent / 100 * float64(width))
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}
	return filled
}

// ProgressBar creates a bar string of exactly width cells. A hidden fill
// draws only the track.
func (s Styles) ProgressBar(percent float64, width int, fill bool) string {
	if width <= 0 {
		return ""
	}
	filled := 0
	if fill {
		filled = Filled(percent, width)
	}

	filledStyle := lipgloss.NewStyle().Foreground(s.Palette.Primary)
	emptyStyle := lipgloss.NewStyle().Foreground(s.Palette.Border)

	return filledStyle.Render(strings.Repeat("━", filled)) +
		emptyStyle.Render(strings.Repeat("─", width-filled))
}

// Truncate shortens str to max cells, marking the cut with an ellipsis.
func Truncate(str string, max int) string {
	if max <= 0 {
		return ""
	}
	if lipgloss.Width(str) <= max {
		return str
	}
	runes := []rune(str)
	if max == 1 {
		return "…"
	}
	for len(runes) > 0 && lipgloss.Width(string(runes))+1 > max {
		runes = runes[:len(runes)-1]
	}
	return string(runes) + "…"
}
