package controls

import "github.com/tessro/playbar/internal/core"

// Icon is the glyph shown on the play/pause button.
type Icon int

const (
	IconPlay Icon = iota
	IconPause
)

// String returns the icon name.
func (i Icon) String() string {
	if i == IconPause {
		return "pause"
	}
	return "play"
}

// Transport is the rendered state of the prev, play/pause and next buttons.
type Transport struct {
	Icon     Icon
	Disabled bool
}

// TransportFor derives the transport buttons from the session.
func TransportFor(s core.PlaybackSession) Transport {
	t := Transport{
		Icon:     IconPlay,
		Disabled: !s.HasTrack(),
	}
	if s.IsPlaying {
		t.Icon = IconPause
	}
	return t
}
