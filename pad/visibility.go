package pad

// VisibilityState is one of the two states of a keypad or shifter.
type VisibilityState int

const (
	Hidden VisibilityState = iota
	Visible
)

func (s VisibilityState) String() string {
	if s == Visible {
		return "visible"
	}
	return "hidden"
}

// Transition identifies one requested move towards Target.
// Seq increases with every request, so a completion for an older Seq can be
// recognised as superseded.
type Transition struct {
	Target VisibilityState
	Seq    uint64
}

// Visibility is the hidden/visible state machine behind Keypad and Shifter.
// It carries no timing: the renderer animates towards Target and reports
// back through Complete.
type Visibility struct {
	target  VisibilityState
	seq     uint64
	pending bool
}

// Request retargets the machine. Requesting the state already targeted is a
// no-op and returns false; otherwise any in-flight transition is superseded.
func (v *Visibility) Request(target VisibilityState) (Transition, bool) {
	if v.target == target {
		return v.Current(), false
	}
	v.target = target
	v.seq++
	v.pending = true
	return v.Current(), true
}

// Complete settles the transition seq. It returns false for superseded or
// already settled transitions.
func (v *Visibility) Complete(seq uint64) bool {
	if !v.pending || seq != v.seq {
		return false
	}
	v.pending = false
	return true
}

// Current returns the latest requested transition.
func (v *Visibility) Current() Transition {
	return Transition{Target: v.target, Seq: v.seq}
}

// Target returns the state the machine is heading to.
func (v *Visibility) Target() VisibilityState { return v.target }

// Settled reports whether the latest transition has completed.
func (v *Visibility) Settled() bool { return !v.pending }
