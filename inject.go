package deck

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

type syntheticKind uint8

const (
	synthWheel syntheticKind = iota
	synthKey
	synthTouchStart
	synthTouchEnd
	synthPointer
	synthResize
)

// syntheticEvent represents a single injected input event. Coordinates are
// screen pixels, identical to real input.
type syntheticEvent struct {
	kind    syntheticKind
	deltaY  float64
	key     ebiten.Key
	x, y    float64
	pressed bool
	hold    time.Duration // touch end: time since the touch started
	w, h    int
}

func (d *Deck) enqueue(ev syntheticEvent) {
	d.injectQueue = append(d.injectQueue, ev)
}

// InjectWheel queues a wheel event with the page-style delta (positive
// scrolls down). The event is consumed on the next frame.
func (d *Deck) InjectWheel(deltaY float64) {
	d.enqueue(syntheticEvent{kind: synthWheel, deltaY: deltaY})
}

// InjectKey queues a key press.
func (d *Deck) InjectKey(k ebiten.Key) {
	d.enqueue(syntheticEvent{kind: synthKey, key: k})
}

// InjectSwipe queues a touch that starts at (fromX, fromY) and lifts at
// (toX, toY) after elapsed. Consumes two frames; the swipe is timed by
// elapsed, not by the frames in between.
func (d *Deck) InjectSwipe(fromX, fromY, toX, toY float64, elapsed time.Duration) {
	d.enqueue(syntheticEvent{kind: synthTouchStart, x: fromX, y: fromY})
	d.enqueue(syntheticEvent{kind: synthTouchEnd, x: toX, y: toY, hold: elapsed})
}

// InjectPointer queues a mouse position with the left button state.
func (d *Deck) InjectPointer(x, y float64, pressed bool) {
	d.enqueue(syntheticEvent{kind: synthPointer, x: x, y: y, pressed: pressed})
}

// InjectClick is a convenience that queues a press followed by a release
// at the same coordinates. Consumes two frames.
func (d *Deck) InjectClick(x, y float64) {
	d.InjectPointer(x, y, true)
	d.InjectPointer(x, y, false)
}

// InjectResize queues a viewport change, as if the window was resized.
func (d *Deck) InjectResize(w, h int) {
	d.enqueue(syntheticEvent{kind: synthResize, w: w, h: h})
}

// processInjectedInput pops one event from the inject queue and feeds it
// through the same handlers as real input. Returns true if an event was
// consumed (real input should be skipped).
func (d *Deck) processInjectedInput() (bool, error) {
	if len(d.injectQueue) == 0 {
		return false, nil
	}
	ev := d.injectQueue[0]
	copy(d.injectQueue, d.injectQueue[1:])
	d.injectQueue = d.injectQueue[:len(d.injectQueue)-1]

	switch ev.kind {
	case synthWheel:
		return true, d.handleWheel(ev.deltaY)
	case synthKey:
		return true, d.handleKey(ev.key)
	case synthTouchStart:
		d.handleTouchStart(ev.x, ev.y)
	case synthTouchEnd:
		at := d.clock
		if start, ok := d.swipe.StartedAt(); ok {
			at = start + ev.hold
		}
		return true, d.handleTouchEnd(ev.x, ev.y, at)
	case synthPointer:
		d.processPointer(ev.x, ev.y, ev.pressed)
	case synthResize:
		d.SetViewport(ev.w, ev.h)
	}
	return true, nil
}
