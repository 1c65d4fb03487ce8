package deck

import (
	"strings"
	"testing"
)

func TestDebugTextReportsState(t *testing.T) {
	d := newTestDeck(t)
	txt := d.debugText(debugStats{commandCount: 12})
	for _, want := range []string{"slide 0/6", "indicator 0", "idle", "commands 12"} {
		if !strings.Contains(txt, want) {
			t.Errorf("debug text missing %q:\n%s", want, txt)
		}
	}

	d.Controller().RequestTransition(IntentDown)
	d.SetViewport(1280, 640)
	txt = d.debugText(debugStats{})
	if !strings.Contains(txt, "locked resize-pending") {
		t.Errorf("debug text should show lock and pending resize:\n%s", txt)
	}
}
