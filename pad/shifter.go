package pad

import "github.com/muurk/numpad/internal/logging"

// Shifter moves sibling content out of the keypad's way while it is shown.
type Shifter struct {
	id    ShifterID
	coord *Coordinator
	vis   Visibility
}

// NewShifter creates a shifter and registers it with coord.
func NewShifter(coord *Coordinator) *Shifter {
	s := &Shifter{id: NewShifterID(), coord: coord}
	coord.RegisterShifter(s.id, s)
	return s
}

// ID returns the shifter's identity.
func (s *Shifter) ID() ShifterID { return s.id }

// Show starts a transition to the shifted position.
func (s *Shifter) Show() {
	if t, ok := s.vis.Request(Visible); ok {
		logging.LogVisibility("shifter", t.Target.String(), t.Seq)
	}
}

// Hide starts a transition back to the resting position.
func (s *Shifter) Hide() {
	if t, ok := s.vis.Request(Hidden); ok {
		logging.LogVisibility("shifter", t.Target.String(), t.Seq)
	}
}

// Transition returns the latest requested transition.
func (s *Shifter) Transition() Transition { return s.vis.Current() }

// Complete settles the transition seq.
func (s *Shifter) Complete(seq uint64) { s.vis.Complete(seq) }

// Offset is the space the shifter targets: the keypad height while visible.
func (s *Shifter) Offset() int {
	if s.vis.Target() == Visible {
		return s.coord.KeypadHeight()
	}
	return 0
}

// Close unregisters the shifter and returns it to rest.
func (s *Shifter) Close() {
	s.coord.UnregisterShifter(s.id)
	s.Hide()
}
