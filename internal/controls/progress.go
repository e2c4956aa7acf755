package controls

import (
	"math"

	log "github.com/sirupsen/logrus"
	"github.com/tessro/playbar/internal/audio"
	"github.com/tessro/playbar/internal/core"
	"github.com/tessro/playbar/internal/playback"
)

// progress mirrors the resource clock into the playback context and turns
// seek requests into resource writes.
type progress struct {
	ctx   playback.Context
	guard seekGuard
	log   *log.Entry
}

func (p *progress) onTimeUpdate(r audio.Resource) {
	t := r.CurrentTime()
	if !p.guard.admit(t) {
		p.log.WithField("time", t).WithField("seq", p.guard.seq).Debug("dropped stale time update")
		return
	}
	p.ctx.SetCurrentTime(t)
}

func (p *progress) onLoadedMetadata(r audio.Resource) {
	p.guard.reset()
	p.ctx.SetDuration(r.Duration())
}

// seek moves the resource clock to target and reports it upward without
// waiting for the resource to confirm.
func (p *progress) seek(r audio.Resource, target float64) {
	seq := p.guard.arm(target)
	r.SetCurrentTime(target)
	p.ctx.SetCurrentTime(target)
	p.log.WithField("target", target).WithField("seq", seq).Debug("seek")
}

// Fill returns how much of the progress bar is filled, in percent. It is 0
// until the duration is known.
func Fill(s core.PlaybackSession) float64 {
	if !s.HasDuration() || math.IsNaN(s.CurrentTime) {
		return 0
	}
	return math.Max(0, math.Min(100, s.CurrentTime/s.Duration*100))
}
