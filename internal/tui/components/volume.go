package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/tessro/playbar/internal/controls"
	"github.com/tessro/playbar/internal/tui/styles"
)

// VolumeIconOffset is where the icon starts in the volume column.
const VolumeIconOffset = 1

// Volume displays the volume icon and the popover slider
type Volume struct {
	styles styles.Styles
}

// NewVolume creates a new Volume component
func NewVolume(s styles.Styles) *Volume {
	return &Volume{styles: s}
}

// Icon returns the glyph for mode.
func Icon(mode controls.VolumeMode) string {
	switch mode {
	case controls.VolumeMuted:
		return "🔇"
	case controls.VolumeZero:
		return "🔈"
	default:
		return "🔊"
	}
}

// Render renders the icon and level into width cells.
func (v *Volume) Render(snap controls.Snapshot, width int) string {
	icon := lipgloss.NewStyle().Width(ButtonWidth).Align(lipgloss.Center)
	iconStyle := v.styles.Highlight
	if snap.Transport.Disabled {
		iconStyle = v.styles.Dim
	}

	level := v.styles.Muted.Render(fmt.Sprintf("%3.0f%%", snap.Volume.Level))
	if snap.Volume.Muted {
		level = v.styles.Dim.Render("mute")
	}

	row := strings.Repeat(" ", VolumeIconOffset) +
		icon.Render(iconStyle.Render(Icon(snap.VolumeMode))) +
		" " + level
	return lipgloss.NewStyle().Width(width).MaxWidth(width).Render(row)
}

// Popover renders the slider, width cells wide, filled to the level even
// while muted.
func (v *Volume) Popover(snap controls.Snapshot, width int) string {
	if !snap.PopoverOpen {
		return strings.Repeat(" ", max(width, 0))
	}
	return v.styles.ProgressBar(snap.Volume.Level, width, true)
}
