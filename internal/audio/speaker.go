//go:build !noaudio

package audio

import (
	"math"
	"sync"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/effects"
	"github.com/faiface/beep/speaker"
	"github.com/pkg/errors"
	perrors "github.com/tessro/playbar/internal/errors"
)

// Backend names the sound output this build plays through.
const Backend = "beep/speaker"

const (
	// resampling quality
	quality = 4

	// deviceRate is the sample rate the speaker is opened with. Every
	// track is resampled to it.
	deviceRate beep.SampleRate = 44100
)

var (
	speakerOnce sync.Once
	speakerErr  error
)

func initSpeaker(buffer time.Duration) error {
	speakerOnce.Do(func() {
		if err := speaker.Init(deviceRate, deviceRate.N(buffer)); err != nil {
			speakerErr = errors.Wrap(perrors.ErrNoAudioDevice, err.Error())
		}
	})
	return speakerErr
}

// chain is the per-track streamer graph:
// source -> ctrl (pause) -> resampler -> gain -> speaker.
type chain struct {
	source beep.StreamSeekCloser
	format beep.Format
	ctrl   *beep.Ctrl
	gain   *effects.Gain
	queued bool
}

// Speaker renders audio through the system sound device.
type Speaker struct {
	Emitter
	settings

	mu     sync.Mutex
	chain  *chain
	volume float64
	stop   chan struct{}
}

// NewSpeaker opens the sound device and returns an element bound to it.
func NewSpeaker(opts ...Option) (*Speaker, error) {
	s := &Speaker{
		settings: newSettings(opts),
		volume:   1,
	}
	if err := initSpeaker(s.buffer); err != nil {
		return nil, err
	}
	return s, nil
}

// Load decodes path and queues it on the speaker, paused at the start.
func (s *Speaker) Load(path string) error {
	source, format, err := Decode(path)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.pauseLocked()
	old := s.chain

	ctrl := &beep.Ctrl{Streamer: source, Paused: true}
	resampled := beep.Resample(quality, format.SampleRate, deviceRate, ctrl)
	c := &chain{
		source: source,
		format: format,
		ctrl:   ctrl,
		gain:   &effects.Gain{Streamer: resampled, Gain: s.volume - 1},
	}
	s.chain = c
	s.mu.Unlock()

	speaker.Clear()
	if old != nil {
		speaker.Lock()
		_ = old.source.Close()
		speaker.Unlock()
	}
	s.queue(c)

	s.log.WithField("path", path).WithField("rate", format.SampleRate).Debug("loaded")
	s.Emit(EventLoadedMetadata)
	return nil
}

// queue hands c to the speaker. The trailing callback fires when the
// source is drained.
func (s *Speaker) queue(c *chain) {
	s.mu.Lock()
	c.queued = true
	s.mu.Unlock()

	speaker.Play(beep.Seq(c.gain, beep.Callback(func() {
		// Runs inside the speaker lock.
		go s.finish(c)
	})))
}

func (s *Speaker) finish(c *chain) {
	s.mu.Lock()
	if s.chain != c {
		s.mu.Unlock()
		return
	}
	c.queued = false
	s.pauseLocked()
	s.mu.Unlock()

	s.log.Debug("ended")
	s.Emit(EventTimeUpdate)
}

// Play resumes output and starts time updates.
func (s *Speaker) Play() error {
	s.mu.Lock()
	c := s.chain
	if c == nil {
		s.mu.Unlock()
		return perrors.ErrNotLoaded
	}
	if s.stop != nil {
		s.mu.Unlock()
		return nil
	}
	requeue := !c.queued
	s.mu.Unlock()

	if requeue {
		speaker.Lock()
		if c.source.Position() >= c.source.Len() {
			_ = c.source.Seek(0)
		}
		speaker.Unlock()
		s.queue(c)
	}

	s.mu.Lock()
	speaker.Lock()
	c.ctrl.Paused = false
	speaker.Unlock()
	stop := make(chan struct{})
	s.stop = stop
	s.mu.Unlock()

	go pump(s.clock, s.interval, stop, func(time.Duration) bool {
		s.Emit(EventTimeUpdate)
		return true
	})
	return nil
}

// Pause halts output and time updates.
func (s *Speaker) Pause() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pauseLocked()
}

func (s *Speaker) pauseLocked() {
	if s.chain != nil {
		speaker.Lock()
		s.chain.ctrl.Paused = true
		speaker.Unlock()
	}
	if s.stop != nil {
		close(s.stop)
		s.stop = nil
	}
}

// Paused reports whether output is halted.
func (s *Speaker) Paused() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stop == nil
}

// CurrentTime returns the decode position in seconds.
func (s *Speaker) CurrentTime() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.chain == nil {
		return 0
	}

	speaker.Lock()
	defer speaker.Unlock()
	return s.chain.format.SampleRate.D(s.chain.source.Position()).Seconds()
}

// SetCurrentTime seeks to seconds, clamped to the track.
func (s *Speaker) SetCurrentTime(seconds float64) {
	if math.IsNaN(seconds) {
		return
	}

	s.mu.Lock()
	c := s.chain
	s.mu.Unlock()
	if c == nil {
		return
	}

	n := c.format.SampleRate.N(time.Duration(seconds * float64(time.Second)))

	speaker.Lock()
	if n < 0 {
		n = 0
	}
	if l := c.source.Len(); n > l {
		n = l
	}
	err := c.source.Seek(n)
	speaker.Unlock()

	if err != nil {
		s.log.WithError(err).WithField("seconds", seconds).Warn("seek failed")
	}
	s.Emit(EventTimeUpdate)
}

// Duration returns the track length in seconds, or NaN before a load.
func (s *Speaker) Duration() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.chain == nil {
		return math.NaN()
	}

	speaker.Lock()
	defer speaker.Unlock()
	return s.chain.format.SampleRate.D(s.chain.source.Len()).Seconds()
}

// Volume returns the output volume in [0,1].
func (s *Speaker) Volume() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.volume
}

// SetVolume sets the linear output gain, clamped to [0,1].
func (s *Speaker) SetVolume(v float64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.volume = clampVolume(v)
	if s.chain != nil {
		speaker.Lock()
		s.chain.gain.Gain = s.volume - 1
		speaker.Unlock()
	}
}

// Close stops output and releases the decoder.
func (s *Speaker) Close() error {
	s.mu.Lock()
	s.pauseLocked()
	c := s.chain
	s.chain = nil
	s.mu.Unlock()

	speaker.Clear()
	if c == nil {
		return nil
	}
	speaker.Lock()
	defer speaker.Unlock()
	return c.source.Close()
}
