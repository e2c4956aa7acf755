package components

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/tessro/playbar/internal/core"
	"github.com/tessro/playbar/internal/tui/styles"
)

// Tracks displays the library with a cursor
type Tracks struct {
	styles   styles.Styles
	offset   int
	selected int
}

// NewTracks creates a new Tracks component
func NewTracks(s styles.Styles) *Tracks {
	return &Tracks{styles: s}
}

// SelectNext moves the cursor down, stopping at the last of count tracks
func (t *Tracks) SelectNext(count int) {
	if t.selected < count-1 {
		t.selected++
	}
}

// SelectPrev moves the cursor up
func (t *Tracks) SelectPrev() {
	if t.selected > 0 {
		t.selected--
	}
}

// Selected returns the cursor index
func (t *Tracks) Selected() int {
	return t.selected
}

// Render renders the track list panel
func (t *Tracks) Render(tracks []core.Track, current *core.Track, width, height int, focused bool) string {
	title := t.styles.PanelTitle("Tracks", focused)

	var content string
	if len(tracks) == 0 {
		content = t.styles.Muted.Render("No tracks")
	} else {
		content = t.renderTracks(tracks, current, width-4, height-4)
	}

	panel := t.styles.Panel(focused).
		Width(width).
		Height(height)

	return panel.Render(lipgloss.JoinVertical(lipgloss.Left,
		title,
		"",
		content,
	))
}

func (t *Tracks) renderTracks(tracks []core.Track, current *core.Track, width, maxLines int) string {
	visibleCount := maxLines - 1 // room for the "more" line
	if visibleCount < 1 {
		visibleCount = 1
	}

	// Keep the cursor on screen
	if t.selected >= len(tracks) {
		t.selected = len(tracks) - 1
	}
	if t.selected < t.offset {
		t.offset = t.selected
	}
	if t.selected >= t.offset+visibleCount {
		t.offset = t.selected - visibleCount + 1
	}

	start := t.offset
	end := start + visibleCount
	if end > len(tracks) {
		end = len(tracks)
	}

	lines := make([]string, 0, end-start+1)

	// "XX. " (4) + "▶ " (2)
	const overhead = 6

	for i := start; i < end; i++ {
		track := tracks[i]
		num := fmt.Sprintf("%2d.", i+1)
		name, artist := split(track.Name, track.Artist, width-overhead)

		marker := "  "
		if current != nil && current.Path == track.Path {
			marker = t.styles.Playing.Render("▶ ")
		}

		label := name
		if artist != "" {
			label += t.styles.Muted.Render(" · " + artist)
		}
		if i == t.selected {
			label = t.styles.Highlight.Render(name)
			if artist != "" {
				label += t.styles.Subtitle.Render(" · " + artist)
			}
		}

		lines = append(lines, t.styles.Dim.Render(num)+" "+marker+label)
	}

	if end < len(tracks) {
		more := t.styles.Dim.Render(fmt.Sprintf("    ... and %d more", len(tracks)-end))
		lines = append(lines, more)
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// SetSelected moves the cursor to index
func (t *Tracks) SetSelected(index int) {
	if index >= 0 {
		t.selected = index
	}
}
