package tui

import (
	"github.com/tessro/playbar/internal/controls"
	"github.com/tessro/playbar/internal/tui/components"
)

// Rect is a cell region of the screen.
type Rect struct {
	X, Y, W, H int
}

// Contains reports whether the cell at x, y falls inside r.
func (r Rect) Contains(x, y int) bool {
	return r.W > 0 && r.H > 0 &&
		x >= r.X && x < r.X+r.W &&
		y >= r.Y && y < r.Y+r.H
}

// Bar maps r onto a pointer bar so the first cell is 0% and the last 100%.
func (r Rect) Bar() controls.Bar {
	return controls.Bar{Left: float64(r.X), Width: float64(r.W - 1)}
}

// clip limits r horizontally to within.
func clip(r, within Rect) Rect {
	end := within.X + within.W
	lo := max(r.X, within.X)
	hi := min(r.X+r.W, end)
	if hi < lo {
		lo = min(lo, end)
		hi = lo
	}
	r.X, r.W = lo, hi-lo
	return r
}

// Layout holds the screen regions for one terminal size. The last row is
// the footer, above it the control bar, above that the volume popover row,
// and the track list takes the rest.
type Layout struct {
	Width, Height int

	Body    Rect
	Popover Rect
	Footer  Rect

	NowPlaying Rect
	Transport  Rect
	Volume     Rect

	Prev       Rect
	Play       Rect
	Next       Rect
	Progress   Rect
	VolumeIcon Rect
}

// NewLayout computes the regions for a width by height terminal.
func NewLayout(width, height int) Layout {
	l := Layout{Width: width, Height: height}
	footerY := height - 1
	barY := height - 2
	popoverY := height - 3

	l.Body = Rect{X: 0, Y: 0, W: width, H: max(height-3, 0)}
	l.Footer = Rect{X: 0, Y: footerY, W: width, H: 1}

	lw := width * 30 / 100
	rw := max(width*20/100, 14)
	if rw > width-lw {
		rw = max(width-lw, 0)
	}
	cw := width - lw - rw
	rx := lw + cw

	l.NowPlaying = Rect{X: 0, Y: barY, W: lw, H: 1}
	l.Transport = Rect{X: lw, Y: barY, W: cw, H: 1}
	l.Volume = Rect{X: rx, Y: barY, W: rw, H: 1}

	button := func(offset int) Rect {
		return clip(Rect{X: lw + offset, Y: barY, W: components.ButtonWidth, H: 1}, l.Transport)
	}
	l.Prev = button(components.PrevOffset)
	l.Play = button(components.PlayOffset)
	l.Next = button(components.NextOffset)
	l.Progress = Rect{X: lw + components.ProgressOffset, Y: barY, W: components.ProgressWidth(cw), H: 1}

	l.VolumeIcon = clip(Rect{X: rx + components.VolumeIconOffset, Y: barY, W: components.ButtonWidth, H: 1}, l.Volume)
	l.Popover = Rect{X: rx + 1, Y: popoverY, W: max(rw-2, 0), H: 1}
	return l
}
