package components

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/tessro/playbar/internal/core"
	"github.com/tessro/playbar/internal/tui/styles"
)

// HeartWidth is the cells taken by the like marker and its gap.
const HeartWidth = 2

// NowPlaying displays the current track at the left of the control bar
type NowPlaying struct {
	styles styles.Styles
}

// NewNowPlaying creates a new NowPlaying component
func NewNowPlaying(s styles.Styles) *NowPlaying {
	return &NowPlaying{styles: s}
}

// Render renders the track name and artist into width cells. The heart is
// decoration only.
func (n *NowPlaying) Render(track *core.Track, width int) string {
	box := lipgloss.NewStyle().Width(width).MaxWidth(width).PaddingLeft(1)
	if track == nil {
		return box.Render(n.styles.Muted.Render("No track"))
	}

	available := width - 1 - HeartWidth
	name, artist := split(track.Name, track.Artist, available)

	line := n.styles.Love.Render("♡") + " " + n.styles.Title.Render(name)
	if artist != "" {
		line += n.styles.Subtitle.Render(" · " + artist)
	}
	return box.Render(line)
}

// split truncates name and artist to share available cells, keeping at
// least a third for the artist when both are long.
func split(name, artist string, available int) (string, string) {
	const sep = 3
	if artist == "" {
		return styles.Truncate(name, available), ""
	}
	if lipgloss.Width(name)+sep+lipgloss.Width(artist) <= available {
		return name, artist
	}

	available -= sep
	artistSpace := available / 3
	if w := lipgloss.Width(artist); w < artistSpace {
		artistSpace = w
	}
	nameSpace := available - artistSpace
	if nameSpace <= 0 {
		return styles.Truncate(name, available+sep), ""
	}
	return styles.Truncate(name, nameSpace), styles.Truncate(artist, artistSpace)
}
