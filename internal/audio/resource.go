// Package audio provides the audio elements the control surface drives.
//
// An element decodes a local file, renders it, and reports its clock through
// two notifications modelled on a media element: EventTimeUpdate fires
// periodically while playing and after every seek, EventLoadedMetadata fires
// once per load when the duration becomes known.
package audio

import (
	"math"
	"time"

	"github.com/jonboulle/clockwork"
	log "github.com/sirupsen/logrus"
	"github.com/tessro/playbar/internal/logging"
)

// Event identifies a notification kind emitted by an element.
type Event int

const (
	EventTimeUpdate Event = iota
	EventLoadedMetadata
)

// String returns the event name.
func (e Event) String() string {
	switch e {
	case EventTimeUpdate:
		return "timeupdate"
	case EventLoadedMetadata:
		return "loadedmetadata"
	default:
		return "unknown"
	}
}

// Handler is called when a subscribed event fires. Handlers read the
// element's properties themselves.
type Handler func()

// Resource is the view of an audio element that the control surface reads
// and writes. Times are in seconds; volume is in [0,1].
type Resource interface {
	CurrentTime() float64
	SetCurrentTime(seconds float64)
	Duration() float64
	Volume() float64
	SetVolume(v float64)
	Subscribe(e Event, h Handler) (unsubscribe func())
}

// Element is a Resource that can also be loaded and started.
type Element interface {
	Resource
	Load(path string) error
	Play() error
	Pause()
	Paused() bool
	Close() error
}

// ProbeFunc returns the duration in seconds of the file at path.
type ProbeFunc func(path string) (float64, error)

// Option configures an element.
type Option func(*settings)

type settings struct {
	clock    clockwork.Clock
	interval time.Duration
	buffer   time.Duration
	probe    ProbeFunc
	log      *log.Entry
}

func newSettings(opts []Option) settings {
	s := settings{
		clock:    clockwork.NewRealClock(),
		interval: 250 * time.Millisecond,
		buffer:   100 * time.Millisecond,
		probe:    Probe,
	}
	for _, opt := range opts {
		opt(&s)
	}
	if s.log == nil {
		s.log = logging.Component(nil, "audio")
	}
	return s
}

// WithClock sets the clock driving time updates.
func WithClock(c clockwork.Clock) Option {
	return func(s *settings) {
		if c != nil {
			s.clock = c
		}
	}
}

// WithInterval sets how often EventTimeUpdate fires during playback.
func WithInterval(d time.Duration) Option {
	return func(s *settings) {
		if d > 0 {
			s.interval = d
		}
	}
}

// WithBuffer sets the speaker buffer length.
func WithBuffer(d time.Duration) Option {
	return func(s *settings) {
		if d > 0 {
			s.buffer = d
		}
	}
}

// WithProbe sets how the silent element learns a file's duration.
func WithProbe(p ProbeFunc) Option {
	return func(s *settings) {
		if p != nil {
			s.probe = p
		}
	}
}

// WithLogger sets the log entry used by the element.
func WithLogger(l *log.Entry) Option {
	return func(s *settings) {
		s.log = l
	}
}

func clampVolume(v float64) float64 {
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// pump calls step on every tick until stop closes or step reports that
// playback ended.
func pump(clock clockwork.Clock, interval time.Duration, stop <-chan struct{}, step func(elapsed time.Duration) bool) {
	last := clock.Now()
	ticker := clock.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case now := <-ticker.Chan():
			elapsed := now.Sub(last)
			last = now
			if !step(elapsed) {
				return
			}
		}
	}
}
