//go:build noaudio

package audio

import perrors "github.com/tessro/playbar/internal/errors"

// Backend names the sound output this build plays through.
const Backend = "none"

// Speaker is unavailable in builds without audio support.
type Speaker struct {
	Memory
}

// NewSpeaker always fails in builds without audio support.
func NewSpeaker(opts ...Option) (*Speaker, error) {
	return nil, perrors.ErrNoAudioDevice
}
