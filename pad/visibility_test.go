package pad

import "testing"

func TestVisibility_RequestAndComplete(t *testing.T) {
	var v Visibility

	if v.Target() != Hidden || !v.Settled() {
		t.Fatal("zero Visibility should be hidden and settled")
	}

	if _, ok := v.Request(Hidden); ok {
		t.Error("requesting the current target should be a no-op")
	}

	show, ok := v.Request(Visible)
	if !ok || show.Target != Visible || show.Seq != 1 {
		t.Fatalf("Request(Visible) = %+v, %v", show, ok)
	}
	if v.Settled() {
		t.Error("transition in flight should not be settled")
	}

	if !v.Complete(show.Seq) {
		t.Error("Complete(current) should settle")
	}
	if v.Complete(show.Seq) {
		t.Error("Complete twice should report false")
	}
}

func TestVisibility_SupersededTransition(t *testing.T) {
	var v Visibility

	show, _ := v.Request(Visible)
	hide, _ := v.Request(Hidden)

	if hide.Seq <= show.Seq {
		t.Fatalf("sequence did not advance: %d then %d", show.Seq, hide.Seq)
	}
	if v.Complete(show.Seq) {
		t.Error("superseded transition must not complete")
	}
	if v.Settled() {
		t.Error("stale completion must not settle the machine")
	}
	if !v.Complete(hide.Seq) {
		t.Error("current transition should complete")
	}
	if v.Target() != Hidden {
		t.Errorf("Target() = %v, want hidden", v.Target())
	}
}

func TestVisibilityState_String(t *testing.T) {
	if Visible.String() != "visible" || Hidden.String() != "hidden" {
		t.Errorf("unexpected names %q %q", Visible, Hidden)
	}
}
