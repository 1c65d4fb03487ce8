package deck

import "testing"

func TestWheelDelta(t *testing.T) {
	tests := []struct {
		name   string
		wx, wy float64
		want   float64
		ok     bool
	}{
		{"no scroll", 0, 0, 0, false},
		{"toward user", 0, -1, 1, true},
		{"away from user", 0, 2, -2, true},
		{"horizontal only", 3, 0, 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := wheelDelta(tt.wx, tt.wy)
			if ok != tt.ok || got != tt.want {
				t.Errorf("wheelDelta(%v, %v) = %v, %v; want %v, %v", tt.wx, tt.wy, got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestHorizontalWheelGoesUp(t *testing.T) {
	d := newTestDeck(t)
	d.ctrl.RequestTransitionTo(2)
	d.tweens.Update(d.cfg.Duration + 1)
	if d.ctrl.Locked() {
		t.Fatal("transition should have completed")
	}

	dy, ok := wheelDelta(1, 0)
	if !ok {
		t.Fatal("horizontal scroll should count as a wheel event")
	}
	if err := d.handleWheel(dy); err != nil {
		t.Fatal(err)
	}
	if d.ctrl.Current() != 1 {
		t.Errorf("Current = %d, want 1", d.ctrl.Current())
	}
}
