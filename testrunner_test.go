package deck

import (
	"errors"
	"strings"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

// runScript steps d until the script finishes or maxFrames pass.
func runScript(t *testing.T, d *Deck, s *Script, maxFrames int) {
	t.Helper()
	d.SetScript(s)
	for i := 0; i < maxFrames && !s.Done(); i++ {
		if err := d.step(frame); err != nil {
			t.Fatalf("step %d: %v", i, err)
		}
	}
	if !s.Done() {
		t.Fatalf("script not done after %d frames", maxFrames)
	}
}

func TestLoadScriptValid(t *testing.T) {
	s, err := LoadScript([]byte(`{"steps": [
		{"action": "wheel", "dy": 100},
		{"action": "key", "key": "ArrowDown"},
		{"action": "swipe", "fromX": 10, "fromY": 500, "toX": 10, "toY": 200, "ms": 150},
		{"action": "click", "x": 5, "y": 5},
		{"action": "hover", "x": 5, "y": 5},
		{"action": "resize", "width": 800, "height": 600},
		{"action": "wait", "frames": 3},
		{"action": "expect", "slide": 0}
	]}`))
	if err != nil {
		t.Fatal(err)
	}
	if len(s.steps) != 8 {
		t.Errorf("steps = %d, want 8", len(s.steps))
	}
	if s.steps[1].key != ebiten.KeyArrowDown {
		t.Errorf("key = %v, want ArrowDown", s.steps[1].key)
	}
}

func TestLoadScriptErrors(t *testing.T) {
	tests := []struct {
		name string
		json string
		want string
	}{
		{"bad json", `{`, "parse script"},
		{"no steps", `{"steps": []}`, "no steps"},
		{"unknown action", `{"steps": [{"action": "screenshot"}]}`, "unknown action"},
		{"bad key", `{"steps": [{"action": "key", "key": "Nope"}]}`, "step 0"},
		{"expect without slide", `{"steps": [{"action": "expect"}]}`, "needs slide"},
		{"resize without size", `{"steps": [{"action": "resize"}]}`, "width and height"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadScript([]byte(tt.json))
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("err = %v, want containing %q", err, tt.want)
			}
		})
	}
}

func TestScriptNavigatesAndExpects(t *testing.T) {
	d := newTestDeck(t)
	s, err := LoadScript([]byte(`{"steps": [
		{"action": "key", "key": "J"},
		{"action": "expect", "slide": 1},
		{"action": "wheel", "dy": 40},
		{"action": "expect", "slide": 2},
		{"action": "key", "key": "End"},
		{"action": "expect", "slide": 6},
		{"action": "swipe", "fromX": 300, "fromY": 200, "toX": 300, "toY": 500, "ms": 120},
		{"action": "expect", "slide": 5},
		{"action": "resize", "width": 1280, "height": 480},
		{"action": "expect", "slide": 5}
	]}`))
	if err != nil {
		t.Fatal(err)
	}
	runScript(t, d, s, 1200)
	if err := s.Err(); err != nil {
		t.Errorf("script failed: %v", err)
	}
	if d.Controller().Height() != 480 {
		t.Errorf("Height = %v, want 480", d.Controller().Height())
	}
}

func TestScriptCollectsFailedExpectations(t *testing.T) {
	d := newTestDeck(t)
	s, err := LoadScript([]byte(`{"steps": [
		{"action": "key", "key": "J"},
		{"action": "expect", "slide": 3},
		{"action": "expect", "slide": 1}
	]}`))
	if err != nil {
		t.Fatal(err)
	}
	runScript(t, d, s, 300)
	err = s.Err()
	if err == nil {
		t.Fatal("expected a failed expectation")
	}
	if !strings.Contains(err.Error(), "expected slide 3, got 1") {
		t.Errorf("err = %v", err)
	}
}

func TestScriptWaitsForInjections(t *testing.T) {
	d := newTestDeck(t)
	s, err := LoadScript([]byte(`{"steps": [{"action": "click", "x": 1, "y": 1}]}`))
	if err != nil {
		t.Fatal(err)
	}
	d.SetScript(s)

	// Frame 1 queues press and release and consumes the press.
	d.step(frame)
	if s.Done() {
		t.Fatal("script should wait for the release to drain")
	}
	d.step(frame)
	d.step(frame)
	if !s.Done() {
		t.Error("script should be done once the queue drained")
	}
}

func TestScriptExitTerminates(t *testing.T) {
	d := newTestDeck(t)
	s, err := LoadScript([]byte(`{"exit": true, "steps": [{"action": "wait", "frames": 2}]}`))
	if err != nil {
		t.Fatal(err)
	}
	d.SetScript(s)

	var stepErr error
	for i := 0; i < 10 && stepErr == nil; i++ {
		stepErr = d.step(frame)
	}
	if !errors.Is(stepErr, ebiten.Termination) {
		t.Errorf("step error = %v, want ebiten.Termination", stepErr)
	}
}

func TestScriptExitReturnsFailure(t *testing.T) {
	d := newTestDeck(t)
	s, err := LoadScript([]byte(`{"exit": true, "steps": [{"action": "expect", "slide": 2}]}`))
	if err != nil {
		t.Fatal(err)
	}
	d.SetScript(s)

	var stepErr error
	for i := 0; i < 10 && stepErr == nil; i++ {
		stepErr = d.step(frame)
	}
	if stepErr == nil || errors.Is(stepErr, ebiten.Termination) {
		t.Errorf("step error = %v, want the failed expectation", stepErr)
	}
}
