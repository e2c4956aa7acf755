package controls

import (
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
)

func TestSeekGuardDisabled(t *testing.T) {
	g := seekGuard{clock: clockwork.NewFakeClock()}

	if seq := g.arm(100); seq != 1 {
		t.Errorf("arm() = %d, want 1", seq)
	}
	if !g.admit(3) {
		t.Error("admit() = false with guard disabled, want true")
	}
}

func TestSeekGuardDropsStaleUntilConfirmed(t *testing.T) {
	clock := clockwork.NewFakeClock()
	g := seekGuard{clock: clock, window: 300 * time.Millisecond}

	g.arm(100)
	if g.admit(12) {
		t.Error("admit(stale) = true, want false")
	}
	if !g.admit(100.2) {
		t.Error("admit(confirming) = false, want true")
	}
	if !g.admit(12) {
		t.Error("admit() after confirmation = false, want true")
	}
}

func TestSeekGuardExpires(t *testing.T) {
	clock := clockwork.NewFakeClock()
	g := seekGuard{clock: clock, window: 300 * time.Millisecond}

	g.arm(100)
	clock.Advance(299 * time.Millisecond)
	if g.admit(12) {
		t.Error("admit() inside window = true, want false")
	}

	clock.Advance(time.Millisecond)
	if !g.admit(12) {
		t.Error("admit() at deadline = false, want true")
	}
}

func TestSeekGuardSequence(t *testing.T) {
	g := seekGuard{clock: clockwork.NewFakeClock(), window: time.Second}
	first := g.arm(10)
	second := g.arm(20)
	if second <= first {
		t.Errorf("seq %d not greater than %d", second, first)
	}
	if g.admit(10) {
		t.Error("admit(previous target) = true, want false")
	}
}
