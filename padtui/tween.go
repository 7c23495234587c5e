package padtui

import (
	"math"

	"github.com/charmbracelet/harmonica"
)

// settle thresholds, in rows and rows per frame
const (
	settlePos = 0.01
	settleVel = 0.01
)

// tween animates one visibility machine's extent towards its target.
type tween struct {
	spring harmonica.Spring
	pos    float64
	vel    float64
	target float64
	seq    uint64
	done   bool

	reported uint64
}

func newTween(spring harmonica.Spring) tween {
	return tween{spring: spring, done: true}
}

// retarget points the tween at target for transition seq. The current
// position and velocity carry over, which is what supersedes a slide in flight.
func (t *tween) retarget(target float64, seq uint64) {
	if t.seq == seq && t.target == target {
		return
	}
	t.target = target
	t.seq = seq
	t.done = t.pos == target && t.vel == 0
}

// step advances one frame.
func (t *tween) step() {
	if t.done {
		return
	}
	t.pos, t.vel = t.spring.Update(t.pos, t.vel, t.target)
	if math.Abs(t.pos-t.target) < settlePos && math.Abs(t.vel) < settleVel {
		t.pos, t.vel = t.target, 0
		t.done = true
	}
}

// completed returns the transition to report once the tween rests at its
// target. Each sequence number is returned at most once.
func (t *tween) completed() (uint64, bool) {
	if !t.done || t.reported == t.seq {
		return 0, false
	}
	t.reported = t.seq
	return t.seq, true
}

// rows returns the extent rounded to whole terminal rows, clamped at zero.
func (t *tween) rows() int {
	r := int(math.Round(t.pos))
	if r < 0 {
		return 0
	}
	return r
}
