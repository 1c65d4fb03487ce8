package deck

import (
	"testing"
	"time"
)

func TestSwipeDetector(t *testing.T) {
	ms := time.Millisecond
	tests := []struct {
		name           string
		startX, startY float64
		endX, endY     float64
		elapsed        time.Duration
		want           Intent
	}{
		{"finger up is down", 100, 500, 120, 300, 200 * ms, IntentDown},
		{"finger down is up", 100, 300, 80, 480, 250 * ms, IntentUp},
		{"too short", 100, 500, 100, 400, 100 * ms, IntentNone},
		{"too slow", 100, 500, 100, 200, 400 * ms, IntentNone},
		{"too much drift", 100, 500, 250, 300, 100 * ms, IntentNone},
		{"exactly at thresholds", 0, 0, 100, 150, 300 * ms, IntentUp},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSwipeDetector(DefaultSwipeThresholds())
			start := 5 * time.Second
			s.Begin(tt.startX, tt.startY, start)
			got := s.End(tt.endX, tt.endY, start+tt.elapsed)
			if got != tt.want {
				t.Errorf("End = %s, want %s", got, tt.want)
			}
			if _, ok := s.StartedAt(); ok {
				t.Error("session should be cleared after End")
			}
		})
	}
}

func TestSwipeDetectorEndWithoutBegin(t *testing.T) {
	s := NewSwipeDetector(DefaultSwipeThresholds())
	if got := s.End(0, 500, time.Second); got != IntentNone {
		t.Errorf("End without Begin = %s, want none", got)
	}
}

func TestSwipeDetectorBeginOverwrites(t *testing.T) {
	s := NewSwipeDetector(DefaultSwipeThresholds())
	s.Begin(0, 1000, 0)
	s.Begin(0, 400, time.Second)
	at, ok := s.StartedAt()
	if !ok || at != time.Second {
		t.Fatalf("StartedAt = %v, %v; want 1s, true", at, ok)
	}
	// Measured from the second start: 200px up within 100ms.
	if got := s.End(0, 200, time.Second+100*time.Millisecond); got != IntentDown {
		t.Errorf("End = %s, want down", got)
	}
}
