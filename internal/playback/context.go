// Package playback owns track selection and the audio element, and exposes
// them to the control surface through Context.
package playback

import (
	"github.com/tessro/playbar/internal/audio"
	"github.com/tessro/playbar/internal/core"
)

// Context is what the control surface needs from the owner of track
// selection. The control surface reports what it observes on the audio
// resource through SetCurrentTime and SetDuration and never changes
// IsPlaying itself.
type Context interface {
	Session() core.PlaybackSession
	TogglePlayPause()
	SetCurrentTime(seconds float64)
	SetDuration(seconds float64)
	Audio() audio.Resource
}
