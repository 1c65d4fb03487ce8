package deck

import "testing"

func newTestIndicator(t *testing.T) (*Indicator, *SceneView) {
	t.Helper()
	cfg := DefaultConfig()
	v := newTestView(t, cfg)
	return NewIndicator(v, &recordingEngine{}, cfg.Indicator), v
}

func TestIndicatorMarkerAndRightColumn(t *testing.T) {
	ind, v := newTestIndicator(t)
	tl := &recordingTimeline{}

	if !ind.Apply(tl, 3, 1) {
		t.Fatal("Apply to a new index should schedule effects")
	}
	marker := tl.find(v.Target(TargetActiveIndicator))
	if len(marker) != 1 || !approx(marker[0].to, testHeight*32.0/9.0/100*3) {
		t.Errorf("marker = %+v, want to %v", marker, testHeight*32.0/9.0/100*3)
	}
	right := tl.find(v.Target(TargetPageRight))
	if len(right) != 1 || right[0].to != -51 {
		t.Errorf("right column = %+v, want to -51", right)
	}
	if n := len(tl.find(v.Target(TargetPageLeft))); n != 0 {
		t.Errorf("left column moved %d times away from the last slide", n)
	}
	if ind.Shown() != 3 {
		t.Errorf("Shown = %d, want 3", ind.Shown())
	}
}

func TestIndicatorSameIndexIsNoop(t *testing.T) {
	ind, _ := newTestIndicator(t)
	tl := &recordingTimeline{}
	if ind.Apply(tl, 0, 1) {
		t.Error("Apply to the shown index should do nothing")
	}
	if len(tl.tweens) != 0 {
		t.Errorf("effects = %d, want 0", len(tl.tweens))
	}
}

func TestIndicatorTerminalShiftOnce(t *testing.T) {
	ind, v := newTestIndicator(t)
	left, middle := v.Target(TargetPageLeft), v.Target(TargetPageMiddle)

	// Entering the last slide shifts left and middle once.
	tl := &recordingTimeline{}
	ind.Apply(tl, 6, 1)
	for _, n := range []*Node{left, middle} {
		got := tl.find(n)
		if len(got) != 1 || got[0].to != -17 {
			t.Errorf("%s entering last = %+v, want one effect to -17", n.Name, got)
		}
	}

	// Leaving it shifts them back once.
	tl = &recordingTimeline{}
	ind.Apply(tl, 2, 1)
	for _, n := range []*Node{left, middle} {
		got := tl.find(n)
		if len(got) != 1 || got[0].to != 0 {
			t.Errorf("%s leaving last = %+v, want one effect to 0", n.Name, got)
		}
	}

	// Moving between non-terminal slides leaves them alone.
	tl = &recordingTimeline{}
	ind.Apply(tl, 4, 1)
	if len(tl.find(left)) != 0 || len(tl.find(middle)) != 0 {
		t.Error("non-terminal move touched the terminal rows")
	}
}

func TestIndicatorReflowUsesViewportHeight(t *testing.T) {
	ind, v := newTestIndicator(t)
	ind.Apply(&recordingTimeline{}, 2, 1)

	v.Relayout(testWidth, 900)
	tl := &recordingTimeline{}
	ind.Reflow(tl, 1)
	got := tl.find(v.Target(TargetActiveIndicator))
	if len(got) != 1 || !approx(got[0].to, 900*32.0/9.0/100*2) {
		t.Errorf("reflow = %+v, want to %v", got, 900*32.0/9.0/100*2)
	}
}

func TestIndicatorReset(t *testing.T) {
	ind, v := newTestIndicator(t)
	for _, name := range []string{TargetActiveIndicator, TargetPageLeft, TargetPageMiddle, TargetPageRight} {
		v.Target(name).TranslateY = 42
	}
	ind.Apply(&recordingTimeline{}, 5, 1)
	ind.Reset()
	if ind.Shown() != 0 {
		t.Errorf("Shown = %d, want 0", ind.Shown())
	}
	for _, name := range []string{TargetActiveIndicator, TargetPageLeft, TargetPageMiddle, TargetPageRight} {
		if y := v.Target(name).TranslateY; y != 0 {
			t.Errorf("%s TranslateY = %v, want 0", name, y)
		}
	}
}
