package core

import (
	"math"
	"testing"
)

func TestHasTrack(t *testing.T) {
	var nilSession *PlaybackSession
	if nilSession.HasTrack() {
		t.Error("HasTrack() = true for nil session, want false")
	}

	s := &PlaybackSession{}
	if s.HasTrack() {
		t.Error("HasTrack() = true without track, want false")
	}

	s.CurrentTrack = &Track{Name: "Song"}
	if !s.HasTrack() {
		t.Error("HasTrack() = false with track, want true")
	}
}

func TestValidDuration(t *testing.T) {
	tests := []struct {
		d    float64
		want bool
	}{
		{200, true},
		{0.5, true},
		{0, false},
		{-1, false},
		{math.NaN(), false},
		{math.Inf(1), false},
	}

	for _, tt := range tests {
		if got := ValidDuration(tt.d); got != tt.want {
			t.Errorf("ValidDuration(%v) = %v, want %v", tt.d, got, tt.want)
		}
	}
}
