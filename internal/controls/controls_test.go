package controls

import (
	"math"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/tessro/playbar/internal/audio"
	"github.com/tessro/playbar/internal/core"
	"github.com/tessro/playbar/internal/playback"
)

func newMemory(duration float64) *audio.Memory {
	return audio.NewMemory(
		audio.WithClock(clockwork.NewFakeClock()),
		audio.WithProbe(func(string) (float64, error) {
			return duration, nil
		}),
	)
}

// newTestControls returns mounted controls over a player with a 200s track
// selected.
func newTestControls(t *testing.T, opts ...Option) (*Controls, *playback.Player, *audio.Memory) {
	t.Helper()
	element := newMemory(200)
	p := playback.New(element, nil)
	t.Cleanup(func() { _ = p.Close() })

	c := New(p, opts...)
	c.Mount()
	t.Cleanup(c.Unmount)

	if err := p.Select(core.Track{Name: "Song", Artist: "Band", Path: "song.mp3"}); err != nil {
		t.Fatalf("Select() error = %v", err)
	}
	return c, p, element
}

// swapContext is a playback context whose resource can be replaced.
type swapContext struct {
	session  core.PlaybackSession
	resource audio.Resource
	toggles  int
}

func (s *swapContext) Session() core.PlaybackSession { return s.session }
func (s *swapContext) TogglePlayPause() { s.toggles++ }
func (s *swapContext) SetCurrentTime(seconds float64) { s.session.CurrentTime = seconds }
func (s *swapContext) SetDuration(seconds float64) { s.session.Duration = seconds }
func (s *swapContext) Audio() audio.Resource { return s.resource }

func TestScenarioNoTrack(t *testing.T) {
	element := newMemory(200)
	p := playback.New(element, nil)
	c := New(p)
	c.Mount()
	defer c.Unmount()

	snap := c.Snapshot()
	if !snap.Transport.Disabled {
		t.Error("Transport.Disabled = false without track, want true")
	}
	if snap.FillVisible {
		t.Error("FillVisible = true without track, want false")
	}

	// Every command is a no-op without a track.
	c.TogglePlayPause()
	c.SkipBack()
	c.SkipForward()
	c.SeekToPercent(50)
	c.ClickVolumeIcon()
	c.SetVolumePercent(10)

	if !element.Paused() {
		t.Error("element started without track")
	}
	if c.Volume() != (VolumeState{Level: 100}) {
		t.Errorf("Volume() = %+v, want default", c.Volume())
	}
	if c.Snapshot().PopoverOpen {
		t.Error("PopoverOpen = true without track, want false")
	}
}

func TestScenarioProgressDisplay(t *testing.T) {
	c, p, _ := newTestControls(t)

	p.SetCurrentTime(50)

	snap := c.Snapshot()
	if snap.Fill != 25 {
		t.Errorf("Fill = %v, want 25", snap.Fill)
	}
	if snap.Elapsed != "0:50" || snap.Total != "3:20" {
		t.Errorf("labels = %q / %q, want 0:50 / 3:20", snap.Elapsed, snap.Total)
	}
	if !snap.FillVisible || snap.Transport.Disabled {
		t.Errorf("snapshot = %+v, want enabled with fill", snap)
	}
}

func TestScenarioVolume(t *testing.T) {
	c, _, element := newTestControls(t)

	if element.Volume() != 1 {
		t.Errorf("initial resource volume = %v, want 1", element.Volume())
	}

	// Open the popover, which also mutes; then drag to 60%.
	c.ClickVolumeIcon()
	bar := Bar{Left: 0, Width: 10}
	c.ClickVolume(6, bar)
	if got := element.Volume(); got != 0.6 {
		t.Errorf("resource volume after slider = %v, want 0.6", got)
	}
	if c.Volume().Muted {
		t.Error("Muted = true after slider at 60, want false")
	}

	c.ClickVolumeIcon()
	if got := element.Volume(); got != 0 {
		t.Errorf("resource volume after mute = %v, want 0", got)
	}
	if c.Volume().Level != 60 {
		t.Errorf("Level after mute = %v, want 60", c.Volume().Level)
	}

	c.ClickVolumeIcon()
	if got := element.Volume(); got != 0.6 {
		t.Errorf("resource volume after unmute = %v, want 0.6", got)
	}
}

func TestVolumeIconTogglesPopover(t *testing.T) {
	c, _, _ := newTestControls(t)

	c.ClickVolumeIcon()
	snap := c.Snapshot()
	if !snap.PopoverOpen || snap.VolumeMode != VolumeMuted {
		t.Errorf("after first click: popover=%v mode=%v, want true/muted", snap.PopoverOpen, snap.VolumeMode)
	}

	c.ClickVolumeIcon()
	snap = c.Snapshot()
	if snap.PopoverOpen || snap.VolumeMode != VolumeUnmuted {
		t.Errorf("after second click: popover=%v mode=%v, want false/unmuted", snap.PopoverOpen, snap.VolumeMode)
	}

	c.ToggleVolumePopover()
	if !c.Snapshot().PopoverOpen {
		t.Error("ToggleVolumePopover() did not open the popover")
	}
	if c.Volume().Muted {
		t.Error("ToggleVolumePopover() changed mute")
	}
}

func TestToggleMuteLeavesPopover(t *testing.T) {
	c, _, element := newTestControls(t)

	c.ToggleMute()
	if !c.Volume().Muted || c.Snapshot().PopoverOpen {
		t.Errorf("after ToggleMute: muted=%v popover=%v, want true/false", c.Volume().Muted, c.Snapshot().PopoverOpen)
	}
	if element.Volume() != 0 {
		t.Errorf("element volume = %v, want 0", element.Volume())
	}

	c.ToggleMute()
	if c.Volume().Muted || c.Volume().Level != 100 {
		t.Errorf("after second ToggleMute: %+v, want level 100 unmuted", c.Volume())
	}
	if element.Volume() != 1 {
		t.Errorf("element volume = %v, want 1", element.Volume())
	}
}

func TestSliderToZeroMutes(t *testing.T) {
	c, _, element := newTestControls(t)

	c.ClickVolume(-5, Bar{Left: 0, Width: 10})
	if !c.Volume().Muted || c.Volume().Level != 0 {
		t.Errorf("Volume() = %+v, want level 0 muted", c.Volume())
	}
	if c.Snapshot().VolumeMode != VolumeZero {
		t.Errorf("VolumeMode = %v, want zero", c.Snapshot().VolumeMode)
	}
	if element.Volume() != 0 {
		t.Errorf("resource volume = %v, want 0", element.Volume())
	}

	c.AdjustVolume(10)
	if c.Volume().Muted || c.Volume().Level != 10 {
		t.Errorf("Volume() after adjust = %+v, want level 10 unmuted", c.Volume())
	}
}

func TestSeekIsExactAndIdempotent(t *testing.T) {
	c, p, element := newTestControls(t)

	for _, pct := range []float64{0, 12.5, 33, 100} {
		c.SeekToPercent(pct)
		want := pct / 100 * 200
		if got := p.Session().CurrentTime; got != want {
			t.Errorf("SeekToPercent(%v): CurrentTime = %v, want %v", pct, got, want)
		}
		if got := element.CurrentTime(); got != want {
			t.Errorf("SeekToPercent(%v): resource time = %v, want %v", pct, got, want)
		}

		c.SeekToPercent(pct)
		if got := p.Session().CurrentTime; got != want {
			t.Errorf("second SeekToPercent(%v): CurrentTime = %v, want %v", pct, got, want)
		}
	}
}

func TestClickProgress(t *testing.T) {
	c, p, _ := newTestControls(t)

	c.ClickProgress(30, Bar{Left: 20, Width: 40})
	if got := p.Session().CurrentTime; got != 50 {
		t.Errorf("CurrentTime = %v, want 50", got)
	}

	c.ClickProgress(100, Bar{Left: 20, Width: 40})
	if got := p.Session().CurrentTime; got != 200 {
		t.Errorf("CurrentTime = %v, want 200", got)
	}
}

func TestSeekBy(t *testing.T) {
	c, p, _ := newTestControls(t)

	c.SeekBy(-5)
	if got := p.Session().CurrentTime; got != 0 {
		t.Errorf("CurrentTime = %v, want 0", got)
	}

	c.SeekBy(30)
	if got := p.Session().CurrentTime; got != 30 {
		t.Errorf("CurrentTime = %v, want 30", got)
	}

	c.SeekBy(1000)
	if got := p.Session().CurrentTime; got != 200 {
		t.Errorf("CurrentTime = %v, want 200", got)
	}
}

func TestSeekWithoutDuration(t *testing.T) {
	ctx := &swapContext{
		session: core.PlaybackSession{
			CurrentTrack: &core.Track{Name: "Song"},
			Duration:     math.NaN(),
		},
		resource: newMemory(200),
	}
	c := New(ctx)
	c.Mount()
	defer c.Unmount()

	c.SeekToPercent(50)
	if ctx.session.CurrentTime != 0 {
		t.Errorf("CurrentTime = %v, want 0", ctx.session.CurrentTime)
	}
	if got := c.Snapshot().Fill; got != 0 {
		t.Errorf("Fill = %v, want 0", got)
	}
	if got := c.Snapshot().Total; got != "0:00" {
		t.Errorf("Total = %q, want 0:00", got)
	}
}

func TestCommandsWithoutResource(t *testing.T) {
	ctx := &swapContext{
		session: core.PlaybackSession{
			CurrentTrack: &core.Track{Name: "Song"},
			Duration:     200,
		},
	}
	c := New(ctx)
	c.Mount()
	defer c.Unmount()

	c.SeekToPercent(50)
	c.ClickVolumeIcon()
	c.SetVolumePercent(40)
	c.TogglePlayPause()

	if ctx.session.CurrentTime != 0 {
		t.Errorf("CurrentTime = %v, want 0", ctx.session.CurrentTime)
	}
	if c.Volume().Level != 40 {
		t.Errorf("Level = %v, want 40", c.Volume().Level)
	}
	if ctx.toggles != 1 {
		t.Errorf("toggles = %d, want 1", ctx.toggles)
	}
}

func TestTogglePlayPauseDelegates(t *testing.T) {
	c, p, _ := newTestControls(t)

	c.TogglePlayPause()
	if !p.Session().IsPlaying {
		t.Error("IsPlaying = false after toggle, want true")
	}
	if c.Snapshot().Transport.Icon != IconPause {
		t.Error("Icon != pause while playing")
	}

	c.TogglePlayPause()
	if p.Session().IsPlaying {
		t.Error("IsPlaying = true after second toggle, want false")
	}
}

func TestInboundNotifications(t *testing.T) {
	_, p, element := newTestControls(t)

	if got := p.Session().Duration; got != 200 {
		t.Errorf("Duration = %v, want 200", got)
	}

	element.SetCurrentTime(75)
	if got := p.Session().CurrentTime; got != 75 {
		t.Errorf("CurrentTime = %v, want 75", got)
	}
}

func TestSubscriptionLifecycle(t *testing.T) {
	first := newMemory(100)
	second := newMemory(300)
	ctx := &swapContext{
		session:  core.PlaybackSession{CurrentTrack: &core.Track{Name: "Song"}},
		resource: first,
	}

	c := New(ctx)
	if first.Subscribers(audio.EventTimeUpdate) != 0 {
		t.Fatal("subscribed before Mount")
	}

	c.Mount()
	c.Mount()
	if got := first.Subscribers(audio.EventTimeUpdate); got != 1 {
		t.Errorf("timeupdate subscribers = %d, want 1", got)
	}
	if got := first.Subscribers(audio.EventLoadedMetadata); got != 1 {
		t.Errorf("loadedmetadata subscribers = %d, want 1", got)
	}

	c.SetVolumePercent(30)
	ctx.resource = second
	c.Sync()
	if first.Subscribers(audio.EventTimeUpdate) != 0 {
		t.Error("old resource still subscribed after rebind")
	}
	if second.Subscribers(audio.EventTimeUpdate) != 1 {
		t.Error("new resource not subscribed after rebind")
	}
	if second.Volume() != 0.3 {
		t.Errorf("new resource volume = %v, want 0.3", second.Volume())
	}

	// Notifications from the released resource are ignored.
	if err := first.Load("a.mp3"); err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if ctx.session.Duration == 100 {
		t.Error("released resource updated the duration")
	}

	if err := second.Load("b.mp3"); err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if ctx.session.Duration != 300 {
		t.Errorf("Duration = %v, want 300", ctx.session.Duration)
	}

	c.Unmount()
	if second.Subscribers(audio.EventTimeUpdate) != 0 || second.Subscribers(audio.EventLoadedMetadata) != 0 {
		t.Error("subscriptions left after Unmount")
	}
	if c.Mounted() {
		t.Error("Mounted() = true after Unmount")
	}
}

func TestMountResetsVolume(t *testing.T) {
	c, _, element := newTestControls(t)

	c.SetVolumePercent(20)
	c.Unmount()
	c.Mount()

	if c.Volume() != (VolumeState{Level: 100}) {
		t.Errorf("Volume() after remount = %+v, want default", c.Volume())
	}
	if element.Volume() != 1 {
		t.Errorf("resource volume after remount = %v, want 1", element.Volume())
	}
}

func TestDispatcherDefersNotifications(t *testing.T) {
	var queue []func()
	_, p, element := newTestControls(t, WithDispatcher(func(f func()) {
		queue = append(queue, f)
	}))

	// Select's loadedmetadata is queued rather than applied.
	queue = nil
	element.SetCurrentTime(42)
	if got := p.Session().CurrentTime; got != 0 {
		t.Errorf("CurrentTime before dispatch = %v, want 0", got)
	}
	if len(queue) != 1 {
		t.Fatalf("queued = %d, want 1", len(queue))
	}

	queue[0]()
	if got := p.Session().CurrentTime; got != 42 {
		t.Errorf("CurrentTime after dispatch = %v, want 42", got)
	}
}

func TestSeekGuardSuppressesStaleUpdate(t *testing.T) {
	clock := clockwork.NewFakeClock()
	var queue []func()
	c, p, element := newTestControls(t,
		WithClock(clock),
		WithSeekGuard(300*time.Millisecond),
		WithDispatcher(func(f func()) { queue = append(queue, f) }),
	)

	// A time update reporting 10s is pending when the user seeks to 50%.
	element.SetCurrentTime(10)
	stale := queue[len(queue)-1]
	queue = nil

	c.SeekToPercent(50)
	if got := p.Session().CurrentTime; got != 100 {
		t.Fatalf("CurrentTime after seek = %v, want 100", got)
	}

	// The stale handler reads the resource, which has already moved, so
	// simulate an update that still carries the old position.
	element.SetCurrentTime(10)
	stale()
	for _, f := range queue {
		f()
	}
	if got := p.Session().CurrentTime; got != 100 {
		t.Errorf("CurrentTime after stale update = %v, want 100", got)
	}

	clock.Advance(300 * time.Millisecond)
	element.SetCurrentTime(12)
	queue[len(queue)-1]()
	if got := p.Session().CurrentTime; got != 12 {
		t.Errorf("CurrentTime after window = %v, want 12", got)
	}
}
