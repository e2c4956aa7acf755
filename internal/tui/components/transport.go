package components

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/tessro/playbar/internal/controls"
	"github.com/tessro/playbar/internal/tui/styles"
)

// Geometry of the transport column, in cells from its left edge.
const (
	ButtonWidth = 3
	LabelWidth  = 6

	PrevOffset     = 0
	PlayOffset     = PrevOffset + ButtonWidth
	NextOffset     = PlayOffset + ButtonWidth
	ElapsedOffset  = NextOffset + ButtonWidth + 1
	ProgressOffset = ElapsedOffset + LabelWidth + 1

	// transportChrome is everything in the column except the bar.
	transportChrome = ProgressOffset + 1 + LabelWidth
)

// ProgressWidth returns the bar width for a transport column of width.
func ProgressWidth(width int) int {
	if w := width - transportChrome; w > 0 {
		return w
	}
	return 0
}

// Transport displays the skip and play buttons followed by the progress bar
type Transport struct {
	styles styles.Styles
}

// NewTransport creates a new Transport component
func NewTransport(s styles.Styles) *Transport {
	return &Transport{styles: s}
}

// Render renders the transport column into width cells.
func (t *Transport) Render(snap controls.Snapshot, width int) string {
	button := lipgloss.NewStyle().Width(ButtonWidth).Align(lipgloss.Center)

	play := "▶"
	if snap.Transport.Icon == controls.IconPause {
		play = "⏸"
	}
	playStyle := t.styles.Highlight
	switch {
	case snap.Transport.Disabled:
		playStyle = t.styles.Dim
	case snap.Transport.Icon == controls.IconPause:
		playStyle = t.styles.Playing
	}

	elapsed := lipgloss.NewStyle().Width(LabelWidth).Align(lipgloss.Right)
	total := lipgloss.NewStyle().Width(LabelWidth).Align(lipgloss.Left)

	row := button.Render(t.styles.Dim.Render("⏮")) +
		button.Render(playStyle.Render(play)) +
		button.Render(t.styles.Dim.Render("⏭")) +
		" " +
		elapsed.Render(t.styles.Muted.Render(snap.Elapsed)) +
		" " +
		t.styles.ProgressBar(snap.Fill, ProgressWidth(width), snap.FillVisible) +
		" " +
		total.Render(t.styles.Muted.Render(snap.Total))

	return lipgloss.NewStyle().Width(width).MaxWidth(width).Render(row)
}
