package deck

import (
	"math"
	"time"
)

// SwipeThresholds bound what counts as a vertical swipe.
type SwipeThresholds struct {
	MinDistance      float64       // minimum vertical travel in pixels
	MaxPerpendicular float64       // maximum horizontal drift in pixels
	AllowedTime      time.Duration // maximum gesture duration
}

// DefaultSwipeThresholds returns 150px travel, 100px drift, 300ms.
func DefaultSwipeThresholds() SwipeThresholds {
	return SwipeThresholds{
		MinDistance:      150,
		MaxPerpendicular: 100,
		AllowedTime:      300 * time.Millisecond,
	}
}

// swipeSession is the start sample of one in-flight gesture.
type swipeSession struct {
	startX, startY float64
	startTime      time.Duration
}

// SwipeDetector correlates a touch start and touch end into an intent.
// It tracks one gesture at a time.
type SwipeDetector struct {
	thresholds SwipeThresholds
	session    *swipeSession
}

// NewSwipeDetector creates a detector with the given thresholds.
func NewSwipeDetector(th SwipeThresholds) *SwipeDetector {
	return &SwipeDetector{thresholds: th}
}

// Begin records the start of a gesture, discarding any unfinished one.
func (s *SwipeDetector) Begin(x, y float64, at time.Duration) {
	s.session = &swipeSession{startX: x, startY: y, startTime: at}
}

// StartedAt returns the start time of the pending gesture.
func (s *SwipeDetector) StartedAt() (time.Duration, bool) {
	if s.session == nil {
		return 0, false
	}
	return s.session.startTime, true
}

// End evaluates the gesture ending at (x, y) and clears it. A finger moving
// down reveals the content above, so positive dy is IntentUp.
func (s *SwipeDetector) End(x, y float64, at time.Duration) Intent {
	sess := s.session
	s.session = nil
	if sess == nil {
		return IntentNone
	}

	dx := x - sess.startX
	dy := y - sess.startY
	elapsed := at - sess.startTime
	if elapsed > s.thresholds.AllowedTime ||
		math.Abs(dy) < s.thresholds.MinDistance ||
		math.Abs(dx) > s.thresholds.MaxPerpendicular {
		return IntentNone
	}
	switch {
	case dy > 0:
		return IntentUp
	case dy < 0:
		return IntentDown
	default:
		return IntentNone
	}
}
