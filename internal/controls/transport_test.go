package controls

import (
	"testing"

	"github.com/tessro/playbar/internal/core"
)

func TestTransportFor(t *testing.T) {
	track := &core.Track{Name: "Song"}

	tests := []struct {
		name         string
		session      core.PlaybackSession
		wantIcon     Icon
		wantDisabled bool
	}{
		{"no track", core.PlaybackSession{}, IconPlay, true},
		{"paused", core.PlaybackSession{CurrentTrack: track}, IconPlay, false},
		{"playing", core.PlaybackSession{CurrentTrack: track, IsPlaying: true}, IconPause, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := TransportFor(tt.session)
			if got.Icon != tt.wantIcon {
				t.Errorf("Icon = %v, want %v", got.Icon, tt.wantIcon)
			}
			if got.Disabled != tt.wantDisabled {
				t.Errorf("Disabled = %v, want %v", got.Disabled, tt.wantDisabled)
			}
		})
	}
}
