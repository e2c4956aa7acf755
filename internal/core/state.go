package core

import "math"

// PlaybackSession mirrors what the audio resource reports about the
// selected track. Duration is NaN until metadata has loaded.
type PlaybackSession struct {
	CurrentTrack *Track  `json:"current_track"`
	IsPlaying    bool    `json:"is_playing"`
	CurrentTime  float64 `json:"current_time"`
	Duration     float64 `json:"duration"`
}

// HasTrack returns true if a track is selected.
func (s *PlaybackSession) HasTrack() bool {
	return s != nil && s.CurrentTrack != nil
}

// HasDuration returns true once the duration is a usable positive number.
func (s *PlaybackSession) HasDuration() bool {
	return s != nil && ValidDuration(s.Duration)
}

// ValidDuration reports whether d can be used as a divisor for progress.
func ValidDuration(d float64) bool {
	return d > 0 && !math.IsNaN(d) && !math.IsInf(d, 0)
}
