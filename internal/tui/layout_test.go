package tui

import "testing"

func TestRectContains(t *testing.T) {
	r := Rect{X: 10, Y: 2, W: 3, H: 1}
	tests := []struct {
		x, y int
		want bool
	}{
		{10, 2, true},
		{12, 2, true},
		{13, 2, false},
		{9, 2, false},
		{11, 1, false},
		{11, 3, false},
	}
	for _, tt := range tests {
		if got := r.Contains(tt.x, tt.y); got != tt.want {
			t.Errorf("Contains(%d, %d) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}

	if (Rect{X: 0, Y: 0, W: 0, H: 1}).Contains(0, 0) {
		t.Error("empty rect contains its origin")
	}
}

func TestRectBar(t *testing.T) {
	bar := Rect{X: 40, Y: 0, W: 11, H: 1}.Bar()
	if got := bar.Percent(40); got != 0 {
		t.Errorf("first cell = %v, want 0", got)
	}
	if got := bar.Percent(50); got != 100 {
		t.Errorf("last cell = %v, want 100", got)
	}
	if got := bar.Percent(45); got != 50 {
		t.Errorf("middle cell = %v, want 50", got)
	}
}

func TestNewLayout(t *testing.T) {
	l := NewLayout(100, 20)

	if l.Body != (Rect{X: 0, Y: 0, W: 100, H: 17}) {
		t.Errorf("Body = %+v", l.Body)
	}
	if l.Footer.Y != 19 || l.Play.Y != 18 || l.Popover.Y != 17 {
		t.Errorf("rows: footer %d, bar %d, popover %d", l.Footer.Y, l.Play.Y, l.Popover.Y)
	}

	if l.NowPlaying.W+l.Transport.W+l.Volume.W != 100 {
		t.Errorf("columns sum to %d, want 100", l.NowPlaying.W+l.Transport.W+l.Volume.W)
	}
	if l.Transport.X != 30 || l.Volume.X != 80 {
		t.Errorf("columns start at %d and %d, want 30 and 80", l.Transport.X, l.Volume.X)
	}

	if l.Prev.X != 30 || l.Play.X != 33 || l.Next.X != 36 {
		t.Errorf("buttons at %d, %d, %d", l.Prev.X, l.Play.X, l.Next.X)
	}
	if l.Progress != (Rect{X: 47, Y: 18, W: 26, H: 1}) {
		t.Errorf("Progress = %+v", l.Progress)
	}
	if l.VolumeIcon != (Rect{X: 81, Y: 18, W: 3, H: 1}) {
		t.Errorf("VolumeIcon = %+v", l.VolumeIcon)
	}
	if l.Popover != (Rect{X: 81, Y: 17, W: 18, H: 1}) {
		t.Errorf("Popover = %+v", l.Popover)
	}
}

func TestNewLayoutNarrow(t *testing.T) {
	l := NewLayout(20, 5)

	if l.Progress.W != 0 {
		t.Errorf("Progress.W = %d, want 0 when there is no room", l.Progress.W)
	}
	if l.Progress.Contains(l.Progress.X, l.Progress.Y) {
		t.Error("zero-width progress is clickable")
	}
	for _, r := range []Rect{l.Prev, l.Play, l.Next} {
		if r.X+r.W > l.Transport.X+l.Transport.W {
			t.Errorf("button %+v spills out of transport %+v", r, l.Transport)
		}
	}
}
