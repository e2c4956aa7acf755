package controls

import (
	"math"
	"time"

	"github.com/jonboulle/clockwork"
)

// seekTolerance is how close a time update must be to a pending seek target
// to count as the resource having applied it.
const seekTolerance = 0.5

// seekGuard drops time updates that were already in flight when a seek was
// issued. A zero window disables it.
type seekGuard struct {
	clock    clockwork.Clock
	window   time.Duration
	seq      uint64
	target   float64
	deadline time.Time
	armed    bool
}

// arm records a seek to target and returns its sequence number.
func (g *seekGuard) arm(target float64) uint64 {
	g.seq++
	if g.window <= 0 {
		return g.seq
	}
	g.target = target
	g.deadline = g.clock.Now().Add(g.window)
	g.armed = true
	return g.seq
}

// admit reports whether an inbound time t may overwrite the displayed time.
func (g *seekGuard) admit(t float64) bool {
	if !g.armed {
		return true
	}
	if !g.clock.Now().Before(g.deadline) || math.Abs(t-g.target) <= seekTolerance {
		g.armed = false
		return true
	}
	return false
}

func (g *seekGuard) reset() {
	g.armed = false
}
