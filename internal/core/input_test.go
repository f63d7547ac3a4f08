package core

import "testing"

func TestInputFrame(t *testing.T) {
	f := NewInputFrame()
	if len(f.Actions) != 0 || f.Pointer != nil {
		t.Error("new frame should be empty")
	}

	f.Set(ActionLeft)
	if !f.Has(ActionLeft) {
		t.Error("Has(ActionLeft) should be true after Set")
	}
	if f.Has(ActionRight) {
		t.Error("Has(ActionRight) should be false")
	}

	f.Click(4, 7)
	if f.Pointer == nil || f.Pointer.X != 4 || f.Pointer.Y != 7 {
		t.Errorf("Pointer = %+v, expected (4, 7)", f.Pointer)
	}

	f.Clear()
	if f.Has(ActionLeft) || f.Pointer != nil {
		t.Error("frame should be empty after Clear")
	}
}

func TestZeroInputFrame(t *testing.T) {
	var f InputFrame
	if f.Has(ActionUp) {
		t.Error("zero frame should not report actions")
	}
	f.Set(ActionUp)
	if !f.Has(ActionUp) {
		t.Error("Set on zero frame should allocate")
	}
}

func TestActionString(t *testing.T) {
	if ActionConfirm.String() != "Confirm" {
		t.Errorf("ActionConfirm.String() = %q", ActionConfirm.String())
	}
	if Action(99).String() != "Unknown" {
		t.Errorf("Action(99).String() = %q", Action(99).String())
	}
}
