package pad

import (
	"fmt"
	"testing"
)

// recordingHandle is a FieldHandle that logs calls.
type recordingHandle struct {
	calls []string
}

func (h *recordingHandle) Activate(from bool)   { h.calls = append(h.calls, fmt.Sprintf("activate(%v)", from)) }
func (h *recordingHandle) Deactivate(from bool) { h.calls = append(h.calls, fmt.Sprintf("deactivate(%v)", from)) }
func (h *recordingHandle) ReceiveKey(k Key)     { h.calls = append(h.calls, "key:"+string(k)) }

// surface counts show/hide calls.
type surface struct {
	shown, hidden int
	visible       bool
}

func (s *surface) Show() { s.shown++; s.visible = true }
func (s *surface) Hide() { s.hidden++; s.visible = false }

func TestCoordinator_RequestFocusDeactivatesOthersFirst(t *testing.T) {
	c := NewCoordinator()
	var order []string

	a := &orderedHandle{name: "a", log: &order, coord: c}
	b := &orderedHandle{name: "b", log: &order, coord: c}
	c.RegisterField("a", a)
	c.RegisterField("b", b)

	c.RequestFocus("b")

	want := []string{"a.deactivate(true)", "b.activate(true)"}
	if fmt.Sprint(order) != fmt.Sprint(want) {
		t.Errorf("call order = %v, want %v", order, want)
	}
	if id, ok := c.Active(); !ok || id != "b" {
		t.Errorf("Active() = %q, %v; want b", id, ok)
	}
	if !b.sawActive {
		t.Error("coordinator should record the active id before activating the field")
	}
}

// orderedHandle records into a shared log and checks coordinator state.
type orderedHandle struct {
	name      string
	log       *[]string
	coord     *Coordinator
	sawActive bool
}

func (h *orderedHandle) Activate(from bool) {
	*h.log = append(*h.log, fmt.Sprintf("%s.activate(%v)", h.name, from))
	h.sawActive = h.coord.IsActive(FieldID(h.name))
}
func (h *orderedHandle) Deactivate(from bool) {
	*h.log = append(*h.log, fmt.Sprintf("%s.deactivate(%v)", h.name, from))
}
func (h *orderedHandle) ReceiveKey(Key) {}

func TestCoordinator_ShowsAndHidesSurfaces(t *testing.T) {
	c := NewCoordinator()
	kp := &surface{}
	sh1, sh2 := &surface{}, &surface{}
	c.RegisterKeypad(kp)
	c.RegisterShifter("s1", sh1)
	c.RegisterShifter("s2", sh2)
	c.RegisterField("a", &recordingHandle{})

	c.RequestFocus("a")
	if !kp.visible || !sh1.visible || !sh2.visible {
		t.Fatal("focus should show keypad and every shifter")
	}

	c.RequestBlur()
	if kp.visible || sh1.visible || sh2.visible {
		t.Fatal("blur should hide keypad and every shifter")
	}
	if _, ok := c.Active(); ok {
		t.Error("blur should clear the active field")
	}
}

func TestCoordinator_DispatchKey(t *testing.T) {
	c := NewCoordinator()
	a, b := &recordingHandle{}, &recordingHandle{}
	c.RegisterField("a", a)
	c.RegisterField("b", b)

	if c.DispatchKey("1") {
		t.Error("DispatchKey with no active field should report false")
	}
	if len(a.calls)+len(b.calls) != 0 {
		t.Error("no field should receive a key while nothing is active")
	}

	c.RequestFocus("b")
	if !c.DispatchKey("7") {
		t.Error("DispatchKey should report delivery")
	}
	if got := b.calls[len(b.calls)-1]; got != "key:7" {
		t.Errorf("active field last call = %q, want key:7", got)
	}
	for _, call := range a.calls {
		if call == "key:7" {
			t.Error("inactive field received a key")
		}
	}
}

func TestCoordinator_UnregisterActiveField(t *testing.T) {
	c := NewCoordinator()
	kp := &surface{}
	sh := &surface{}
	c.RegisterKeypad(kp)
	c.RegisterShifter("s", sh)
	a := &recordingHandle{}
	c.RegisterField("a", a)

	c.RequestFocus("a")
	c.UnregisterField("a", a)

	if _, ok := c.Active(); ok {
		t.Error("unregistering the active field should clear activity")
	}
	if kp.visible || sh.visible {
		t.Error("unregistering the active field should hide keypad and shifters")
	}
	if c.DispatchKey("1") {
		t.Error("keys should not be delivered after the active field is gone")
	}

	// idempotent
	c.UnregisterField("a", a)
	c.UnregisterField("never-registered", a)
}

func TestCoordinator_UnregisterInactiveFieldKeepsFocus(t *testing.T) {
	c := NewCoordinator()
	kp := &surface{}
	c.RegisterKeypad(kp)
	b := &recordingHandle{}
	c.RegisterField("a", &recordingHandle{})
	c.RegisterField("b", b)

	c.RequestFocus("a")
	c.UnregisterField("b", b)

	if id, _ := c.Active(); id != "a" {
		t.Errorf("Active() = %q, want a", id)
	}
	if !kp.visible {
		t.Error("keypad should stay visible")
	}
}

func TestCoordinator_DuplicateRegistrationLastWins(t *testing.T) {
	c := NewCoordinator()
	first, second := &recordingHandle{}, &recordingHandle{}
	c.RegisterField("a", first)
	c.RegisterField("a", second)

	if got := len(c.Fields()); got != 1 {
		t.Fatalf("Fields() has %d entries, want 1", got)
	}

	c.RequestFocus("a")
	c.DispatchKey("3")

	if len(first.calls) != 0 {
		t.Errorf("replaced handle received calls: %v", first.calls)
	}
	if len(second.calls) == 0 {
		t.Error("replacement handle received nothing")
	}
}

func TestCoordinator_RequestFocusUnknownField(t *testing.T) {
	c := NewCoordinator()
	kp := &surface{}
	c.RegisterKeypad(kp)

	c.RequestFocus("ghost")

	if _, ok := c.Active(); ok {
		t.Error("unknown field must not become active")
	}
	if kp.shown != 0 {
		t.Error("keypad should not be shown for an unknown field")
	}
}

func TestCoordinator_RefocusActiveFieldIsNotReactivated(t *testing.T) {
	c := NewCoordinator()
	a := &recordingHandle{}
	c.RegisterField("a", a)

	c.RequestFocus("a")
	calls := len(a.calls)
	c.RequestFocus("a")

	if len(a.calls) != calls {
		t.Errorf("refocusing the active field produced calls %v", a.calls[calls:])
	}
}

func TestCoordinator_FocusNextPrev(t *testing.T) {
	c := NewCoordinator()
	for _, id := range []FieldID{"a", "b", "c"} {
		c.RegisterField(id, &recordingHandle{})
	}

	steps := []struct {
		next bool
		want FieldID
	}{
		{true, "a"},
		{true, "b"},
		{true, "c"},
		{true, "a"},
		{false, "c"},
		{false, "b"},
	}
	for i, s := range steps {
		if s.next {
			c.FocusNext()
		} else {
			c.FocusPrev()
		}
		if id, _ := c.Active(); id != s.want {
			t.Fatalf("step %d: Active() = %q, want %q", i, id, s.want)
		}
	}

	c.RequestBlur()
	c.FocusPrev()
	if id, _ := c.Active(); id != "c" {
		t.Errorf("FocusPrev with nothing active = %q, want c", id)
	}
}

func TestCoordinator_LateRegistrationFollowsFocus(t *testing.T) {
	c := NewCoordinator()
	c.RegisterField("a", &recordingHandle{})
	c.RequestFocus("a")

	kp, sh := &surface{}, &surface{}
	c.RegisterKeypad(kp)
	c.RegisterShifter("s", sh)

	if !kp.visible || !sh.visible {
		t.Error("surfaces registered while a field is active should be shown")
	}
}

func TestCoordinator_Close(t *testing.T) {
	c := NewCoordinator()
	kp := &surface{}
	a := &recordingHandle{}
	c.RegisterKeypad(kp)
	c.RegisterField("a", a)
	c.RequestFocus("a")

	c.Close()

	if _, ok := c.Active(); ok {
		t.Error("Close should clear activity")
	}
	if len(c.Fields()) != 0 {
		t.Error("Close should drop every field")
	}
	if got := a.calls[len(a.calls)-1]; got != "deactivate(true)" {
		t.Errorf("Close should deactivate the active field, last call %q", got)
	}
	if kp.visible {
		t.Error("Close should hide the keypad")
	}
}

func TestCoordinator_ReplacingActiveFieldDeactivatesIt(t *testing.T) {
	c := NewCoordinator()
	kp := &surface{}
	c.RegisterKeypad(kp)
	sched := newManualScheduler()

	old := NewField(c, FieldOptions{ID: "x", Caret: true, Scheduler: sched})
	old.Tap()
	typeKeys(c, "4", "2")

	repl := NewField(c, FieldOptions{ID: "x", Scheduler: sched})

	if old.State().Active {
		t.Error("replaced field should be deactivated")
	}
	if got := old.Display(); got != "42.00" {
		t.Errorf("replaced field display = %q, want the committed 42.00", got)
	}
	if sched.live() != 0 {
		t.Errorf("caret tasks = %d, want 0", sched.live())
	}
	if _, ok := c.Active(); ok {
		t.Error("no field should be active after the replacement")
	}
	if kp.visible {
		t.Error("keypad should hide when the active field is replaced")
	}

	other := NewField(c, FieldOptions{})
	other.Tap()
	if n := activeCount(old, repl, other); n != 1 {
		t.Errorf("%d fields active, want 1", n)
	}

	repl.Tap()
	if n := activeCount(old, repl, other); n != 1 || !repl.State().Active {
		t.Errorf("replacement should be the only active field, %d active", n)
	}
}

func TestCoordinator_ClosingReplacedFieldKeepsReplacement(t *testing.T) {
	c := NewCoordinator()
	old := NewField(c, FieldOptions{ID: "x"})
	repl := NewField(c, FieldOptions{ID: "x"})

	old.Close()

	if got := c.Fields(); len(got) != 1 || got[0] != "x" {
		t.Fatalf("Fields() = %v, want [x]", got)
	}
	repl.Tap()
	if !repl.State().Active {
		t.Error("replacement should still take focus after the old field closed")
	}

	repl.Close()
	if len(c.Fields()) != 0 {
		t.Error("closing the registered field should unregister it")
	}
	if _, ok := c.Active(); ok {
		t.Error("closing the active field should clear activity")
	}
}
