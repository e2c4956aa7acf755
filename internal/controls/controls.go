// Package controls keeps a transport, progress and volume control in sync
// with an audio resource and the playback context that owns track
// selection.
//
// Controls is not safe for concurrent use. All methods, including the
// notification handlers the resource triggers, must run on one event loop;
// WithDispatcher moves resource notifications onto that loop.
package controls

import (
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	log "github.com/sirupsen/logrus"
	"github.com/tessro/playbar/internal/audio"
	"github.com/tessro/playbar/internal/core"
	"github.com/tessro/playbar/internal/logging"
	"github.com/tessro/playbar/internal/playback"
)

// Option configures Controls.
type Option func(*Controls)

// WithDispatcher sets how resource notifications reach the event loop.
// The default runs them immediately on the notifying goroutine.
func WithDispatcher(dispatch func(func())) Option {
	return func(c *Controls) {
		if dispatch != nil {
			c.dispatch = dispatch
		}
	}
}

// WithSeekGuard drops time updates that disagree with a seek for up to
// window after it. Zero disables the guard.
func WithSeekGuard(window time.Duration) Option {
	return func(c *Controls) {
		c.progress.guard.window = window
	}
}

// WithClock sets the clock used by the seek guard.
func WithClock(clock clockwork.Clock) Option {
	return func(c *Controls) {
		if clock != nil {
			c.progress.guard.clock = clock
		}
	}
}

// WithLogger sets the logger.
func WithLogger(logger *log.Logger) Option {
	return func(c *Controls) {
		c.logger = logger
	}
}

// Controls is the playback control surface.
type Controls struct {
	ctx      playback.Context
	resource audio.Resource
	release  []func()
	mounted  bool

	progress progress
	volume   volume

	dispatch func(func())
	logger   *log.Logger
	log      *log.Entry
}

// New creates controls for ctx. Call Mount before use.
func New(ctx playback.Context, opts ...Option) *Controls {
	c := &Controls{
		ctx:      ctx,
		volume:   newVolume(),
		dispatch: func(f func()) { f() },
	}
	c.progress.ctx = ctx
	c.progress.guard.clock = clockwork.NewRealClock()

	for _, opt := range opts {
		opt(c)
	}

	c.log = logging.Component(c.logger, "controls").WithField("session", uuid.NewString())
	c.progress.log = c.log
	c.volume.sink = func(v float64) {
		if c.resource != nil {
			c.resource.SetVolume(v)
		}
	}
	return c
}

// Mount subscribes to the current resource and applies the volume. The
// volume state starts at DefaultLevel, unmuted, on every mount.
func (c *Controls) Mount() {
	if c.mounted {
		return
	}
	c.mounted = true
	c.volume = volume{state: VolumeState{Level: DefaultLevel}, sink: c.volume.sink}
	c.bind(c.ctx.Audio())
	c.log.Debug("mounted")
}

// Unmount releases the resource subscriptions.
func (c *Controls) Unmount() {
	if !c.mounted {
		return
	}
	c.bind(nil)
	c.mounted = false
	c.log.Debug("unmounted")
}

// Mounted reports whether Mount has been called without Unmount.
func (c *Controls) Mounted() bool {
	return c.mounted
}

// Sync rebinds if the context now exposes a different resource.
func (c *Controls) Sync() {
	if !c.mounted {
		return
	}
	if r := c.ctx.Audio(); r != c.resource {
		c.bind(r)
	}
}

func (c *Controls) bind(r audio.Resource) {
	for _, release := range c.release {
		release()
	}
	c.release = nil
	c.resource = r
	c.progress.guard.reset()
	if r == nil {
		return
	}

	c.release = append(c.release,
		r.Subscribe(audio.EventTimeUpdate, func() {
			c.dispatch(func() {
				if c.resource == r {
					c.progress.onTimeUpdate(r)
				}
			})
		}),
		r.Subscribe(audio.EventLoadedMetadata, func() {
			c.dispatch(func() {
				if c.resource == r {
					c.progress.onLoadedMetadata(r)
				}
			})
		}),
	)
	c.volume.apply()
	c.log.Debug("bound resource")
}

// ready returns the session and resource when a command may act on them.
// Every pointer and key command requires a selected track.
func (c *Controls) ready(cmd string) (core.PlaybackSession, bool) {
	s := c.ctx.Session()
	if !c.mounted || !s.HasTrack() {
		c.log.WithField("cmd", cmd).Debug("ignored without track")
		return s, false
	}
	return s, true
}

// TogglePlayPause asks the playback context to start or pause.
func (c *Controls) TogglePlayPause() {
	if _, ok := c.ready("play"); !ok {
		return
	}
	c.ctx.TogglePlayPause()
}

// SkipBack is present for layout only.
func (c *Controls) SkipBack() {
	c.ready("prev")
}

// SkipForward is present for layout only.
func (c *Controls) SkipForward() {
	c.ready("next")
}

// ClickProgress seeks to where x falls on bar.
func (c *Controls) ClickProgress(x float64, bar Bar) {
	c.SeekToPercent(bar.Percent(x))
}

// SeekToPercent seeks to percentage of the duration.
func (c *Controls) SeekToPercent(percentage float64) {
	s, ok := c.ready("seek")
	if !ok || c.resource == nil || !s.HasDuration() || math.IsNaN(percentage) {
		return
	}
	percentage = math.Max(0, math.Min(100, percentage))
	c.progress.seek(c.resource, percentage/100*s.Duration)
}

// SeekBy moves the position by delta seconds, clamped to the track.
func (c *Controls) SeekBy(delta float64) {
	s, ok := c.ready("seek")
	if !ok || c.resource == nil || !s.HasDuration() || math.IsNaN(delta) {
		return
	}
	target := math.Max(0, math.Min(s.Duration, s.CurrentTime+delta))
	c.progress.seek(c.resource, target)
}

// ClickVolumeIcon toggles mute and the volume popover together.
func (c *Controls) ClickVolumeIcon() {
	if _, ok := c.ready("volume-icon"); !ok {
		return
	}
	c.volume.toggleMute()
	c.volume.togglePopover()
}

// ToggleMute flips mute without touching the popover.
func (c *Controls) ToggleMute() {
	if _, ok := c.ready("mute"); !ok {
		return
	}
	c.volume.toggleMute()
}

// ToggleVolumePopover shows or hides the volume slider.
func (c *Controls) ToggleVolumePopover() {
	if _, ok := c.ready("volume-popover"); !ok {
		return
	}
	c.volume.togglePopover()
}

// ClickVolume sets the level to where x falls on bar.
func (c *Controls) ClickVolume(x float64, bar Bar) {
	c.SetVolumePercent(bar.Percent(x))
}

// SetVolumePercent sets the level. Zero mutes, anything else unmutes.
func (c *Controls) SetVolumePercent(percentage float64) {
	if _, ok := c.ready("volume"); !ok {
		return
	}
	c.volume.setLevel(percentage)
}

// AdjustVolume changes the level by delta percent.
func (c *Controls) AdjustVolume(delta float64) {
	c.SetVolumePercent(c.volume.state.Level + delta)
}

// Volume returns the current volume state.
func (c *Controls) Volume() VolumeState {
	return c.volume.state
}

// Snapshot is everything needed to draw the control surface.
type Snapshot struct {
	Track       *core.Track
	Transport   Transport
	FillVisible bool
	Fill        float64
	Elapsed     string
	Total       string
	Volume      VolumeState
	VolumeMode  VolumeMode
	PopoverOpen bool
}

// Snapshot derives the display state from the session and volume.
func (c *Controls) Snapshot() Snapshot {
	s := c.ctx.Session()
	return Snapshot{
		Track:       s.CurrentTrack,
		Transport:   TransportFor(s),
		FillVisible: s.HasTrack(),
		Fill:        Fill(s),
		Elapsed:     FormatTime(s.CurrentTime),
		Total:       FormatTime(s.Duration),
		Volume:      c.volume.state,
		VolumeMode:  c.volume.state.Mode(),
		PopoverOpen: c.volume.popover,
	}
}
