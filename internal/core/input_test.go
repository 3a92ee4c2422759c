package core

import "testing"

func TestActionString(t *testing.T) {
	tests := []struct {
		action   Action
		expected string
	}{
		{ActionNone, "None"},
		{ActionJump, "Jump"},
		{ActionRestart, "Restart"},
		{ActionQuit, "Quit"},
		{Action(42), "Unknown"},
		{Action(-1), "Unknown"},
	}

	for _, tc := range tests {
		if got := tc.action.String(); got != tc.expected {
			t.Errorf("Action(%d).String() = %q, expected %q", int(tc.action), got, tc.expected)
		}
	}
}

func TestInputFrame(t *testing.T) {
	var f InputFrame
	if f.Has(ActionJump) {
		t.Error("zero frame reports a jump")
	}

	f.Set(ActionJump)
	f.Set(ActionJump)
	if !f.Has(ActionJump) || len(f.Actions) != 1 {
		t.Errorf("repeated press: Actions = %v, expected a single jump", f.Actions)
	}

	f.Clear()
	if f.Has(ActionJump) || f.Actions == nil {
		t.Errorf("after Clear: Actions = %v, expected empty non-nil map", f.Actions)
	}
}
