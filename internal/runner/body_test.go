package runner

import "testing"

func TestBodyJumpArc(t *testing.T) {
	b := NewBody(20)

	if ev := b.Integrate(0.1); ev != ContactNone || b.Y != 0 {
		t.Fatalf("resting body moved: ev=%v y=%v", ev, b.Y)
	}

	b.Impulse(7)
	if ev := b.Integrate(0.01); ev != ContactEnd {
		t.Fatalf("takeoff event = %v, want ContactEnd", ev)
	}

	peak := 0.0
	var landed bool
	for i := 0; i < 1000; i++ {
		ev := b.Integrate(0.01)
		if b.Y < 0 {
			t.Fatalf("body sank below the ground: %v", b.Y)
		}
		peak = max(peak, b.Y)
		if ev == ContactBegin {
			landed = true
			break
		}
	}

	if !landed || !b.Grounded() {
		t.Fatal("body never landed")
	}
	// v²/2g = 49/40
	if peak < 1.1 || peak > 1.3 {
		t.Errorf("peak = %v, want about 1.2", peak)
	}
}

func TestBodyReset(t *testing.T) {
	b := NewBody(20)
	b.Impulse(5)
	b.Integrate(0.1)
	b.Reset()

	if b.Y != 0 || b.VY != 0 || !b.Grounded() {
		t.Errorf("after reset: %+v", *b)
	}
}
