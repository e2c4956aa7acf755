package playback

import (
	"math"
	"sync"

	log "github.com/sirupsen/logrus"
	"github.com/tessro/playbar/internal/audio"
	"github.com/tessro/playbar/internal/core"
	perrors "github.com/tessro/playbar/internal/errors"
	"github.com/tessro/playbar/internal/logging"
)

// Player is the Context backed by a single audio element.
type Player struct {
	mu      sync.Mutex
	element audio.Element
	track   *core.Track
	current float64
	length  float64
	log     *log.Entry
}

// Verify Player implements Context at compile time.
var _ Context = (*Player)(nil)

// New creates a player around element. A nil element leaves the player
// without an audio resource.
func New(element audio.Element, logger *log.Entry) *Player {
	if logger == nil {
		logger = logging.Component(nil, "playback")
	}
	return &Player{
		element: element,
		length:  math.NaN(),
		log:     logger,
	}
}

// Select loads track into the element and makes it the current track,
// paused at the start.
func (p *Player) Select(track core.Track) error {
	if p.element == nil {
		return perrors.ErrNotLoaded
	}
	if err := p.element.Load(track.Path); err != nil {
		return err
	}

	p.mu.Lock()
	p.track = &track
	p.current = 0
	p.length = p.element.Duration()
	p.mu.Unlock()

	p.log.WithField("track", track.Name).Info("selected")
	return nil
}

// Clear drops the current track.
func (p *Player) Clear() {
	if p.element != nil {
		p.element.Pause()
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	p.track = nil
	p.current = 0
	p.length = math.NaN()
}

// Session returns a snapshot of the playback state.
func (p *Player) Session() core.PlaybackSession {
	p.mu.Lock()
	defer p.mu.Unlock()

	s := core.PlaybackSession{
		CurrentTime: p.current,
		Duration:    p.length,
	}
	if p.track != nil {
		t := *p.track
		s.CurrentTrack = &t
		s.IsPlaying = p.element != nil && !p.element.Paused()
	}
	return s
}

// TogglePlayPause starts or pauses the element. Start failures are logged
// and leave the session paused.
func (p *Player) TogglePlayPause() {
	p.mu.Lock()
	hasTrack := p.track != nil
	p.mu.Unlock()
	if !hasTrack || p.element == nil {
		return
	}

	if !p.element.Paused() {
		p.element.Pause()
		p.log.Debug("paused")
		return
	}
	if err := p.element.Play(); err != nil {
		p.log.WithError(err).Warn("play failed")
		return
	}
	p.log.Debug("playing")
}

// SetCurrentTime records the observed position.
func (p *Player) SetCurrentTime(seconds float64) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.current = seconds
}

// SetDuration records the observed duration.
func (p *Player) SetDuration(seconds float64) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.length = seconds
}

// Audio returns the element, or nil if the player has none.
func (p *Player) Audio() audio.Resource {
	if p.element == nil {
		return nil
	}
	return p.element
}

// Close releases the element.
func (p *Player) Close() error {
	if p.element == nil {
		return nil
	}
	return p.element.Close()
}
