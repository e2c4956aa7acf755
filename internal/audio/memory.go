package audio

import (
	"math"
	"sync"
	"time"

	perrors "github.com/tessro/playbar/internal/errors"
)

// Memory is a silent element. It keeps a clock-driven position instead of
// rendering samples, which makes it usable without a sound device.
type Memory struct {
	Emitter
	settings

	mu       sync.Mutex
	path     string
	position float64
	duration float64
	volume   float64
	paused   bool
	stop     chan struct{}
}

// NewMemory creates a silent element.
func NewMemory(opts ...Option) *Memory {
	return &Memory{
		settings: newSettings(opts),
		duration: math.NaN(),
		volume:   1,
		paused:   true,
	}
}

// Load probes path for its duration and rewinds to the start, paused.
func (m *Memory) Load(path string) error {
	m.Pause()

	d, err := m.probe(path)
	if err != nil {
		return err
	}

	m.mu.Lock()
	m.path = path
	m.position = 0
	m.duration = d
	m.mu.Unlock()

	m.log.WithField("path", path).WithField("duration", d).Debug("loaded")
	m.Emit(EventLoadedMetadata)
	return nil
}

// Play starts advancing the clock.
func (m *Memory) Play() error {
	m.mu.Lock()
	if m.path == "" {
		m.mu.Unlock()
		return perrors.ErrNotLoaded
	}
	if !m.paused {
		m.mu.Unlock()
		return nil
	}
	if m.position >= m.duration {
		m.position = 0
	}
	m.paused = false
	stop := make(chan struct{})
	m.stop = stop
	m.mu.Unlock()

	go pump(m.clock, m.interval, stop, m.Step)
	return nil
}

// Pause stops the clock.
func (m *Memory) Pause() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.pauseLocked()
}

func (m *Memory) pauseLocked() {
	m.paused = true
	if m.stop != nil {
		close(m.stop)
		m.stop = nil
	}
}

// Paused reports whether the clock is stopped.
func (m *Memory) Paused() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.paused
}

// Step advances a playing element by elapsed and emits a time update.
// It returns false once playback is paused or has reached the end.
func (m *Memory) Step(elapsed time.Duration) bool {
	m.mu.Lock()
	if m.paused {
		m.mu.Unlock()
		return false
	}
	m.position += elapsed.Seconds()
	ended := m.position >= m.duration
	if ended {
		m.position = m.duration
		m.pauseLocked()
	}
	m.mu.Unlock()

	m.Emit(EventTimeUpdate)
	return !ended
}

// CurrentTime returns the position in seconds.
func (m *Memory) CurrentTime() float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.position
}

// SetCurrentTime seeks to seconds, clamped to the loaded duration.
func (m *Memory) SetCurrentTime(seconds float64) {
	if math.IsNaN(seconds) {
		return
	}

	m.mu.Lock()
	if seconds < 0 {
		seconds = 0
	}
	if !math.IsNaN(m.duration) && seconds > m.duration {
		seconds = m.duration
	}
	m.position = seconds
	m.mu.Unlock()

	m.Emit(EventTimeUpdate)
}

// Duration returns the loaded duration in seconds, or NaN before a load.
func (m *Memory) Duration() float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.duration
}

// Volume returns the output volume in [0,1].
func (m *Memory) Volume() float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.volume
}

// SetVolume sets the output volume, clamped to [0,1].
func (m *Memory) SetVolume(v float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.volume = clampVolume(v)
}

// Close stops playback.
func (m *Memory) Close() error {
	m.Pause()
	return nil
}
