package deck

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// --- Pointer and touch state ---

type pointerState struct {
	down      bool
	lastX     float64
	lastY     float64
	hitNode   *Node
	hoverNode *Node // last hitbox under the pointer (for enter/leave)
	inGroup   bool  // pointer inside the hitbox column
}

// touchState tracks the one touch a swipe is measured from.
type touchState struct {
	active bool
	id     ebiten.TouchID
}

// --- Hit testing ---

// collectInteractable walks the tree in painter order, appending
// interactable nodes to buf. Visible=false subtrees are skipped.
func collectInteractable(n *Node, buf []*Node) []*Node {
	if !n.Visible {
		return buf
	}
	if n.Interactable {
		buf = append(buf, n)
	}
	for _, child := range n.children {
		buf = collectInteractable(child, buf)
	}
	return buf
}

// hitTest finds the topmost interactable node at (x, y), or nil.
func (d *Deck) hitTest(x, y float64) *Node {
	d.hitBuf = collectInteractable(d.view.Root(), d.hitBuf[:0])

	// Reverse painter order: topmost first.
	for i := len(d.hitBuf) - 1; i >= 0; i-- {
		n := d.hitBuf[i]
		lx, ly := n.WorldToLocal(x, y)
		if n.containsLocal(lx, ly) {
			return n
		}
	}
	return nil
}

// --- Input processing ---

// processInput is called from step. One injected event replaces real input
// for the frame; otherwise wheel, keyboard, touch and mouse are polled.
func (d *Deck) processInput() error {
	if handled, err := d.processInjectedInput(); handled {
		return err
	}

	if dy, ok := wheelDelta(ebiten.Wheel()); ok {
		if err := d.handleWheel(dy); err != nil {
			return err
		}
	}

	d.keyBuf = inpututil.AppendJustPressedKeys(d.keyBuf[:0])
	for _, k := range d.keyBuf {
		if err := d.handleKey(k); err != nil {
			return err
		}
	}

	if err := d.processTouches(); err != nil {
		return err
	}

	mx, my := ebiten.CursorPosition()
	d.processPointer(float64(mx), float64(my), ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft))
	return nil
}

// processTouches feeds touch starts and the tracked touch's release to the
// swipe detector. A new touch replaces the tracked one.
func (d *Deck) processTouches() error {
	d.touchBuf = inpututil.AppendJustPressedTouchIDs(d.touchBuf[:0])
	for _, id := range d.touchBuf {
		x, y := ebiten.TouchPosition(id)
		d.touch = touchState{active: true, id: id}
		d.handleTouchStart(float64(x), float64(y))
	}
	if !d.touch.active || !inpututil.IsTouchJustReleased(d.touch.id) {
		return nil
	}
	d.touch.active = false
	x, y := inpututil.TouchPositionInPreviousTick(d.touch.id)
	return d.handleTouchEnd(float64(x), float64(y), d.clock)
}

// wheelDelta converts an Ebitengine wheel reading into a page-style delta,
// positive toward the next slide. Any scroll counts as a wheel event, so a
// horizontal-only scroll has a zero delta and classifies as Up.
func wheelDelta(wx, wy float64) (float64, bool) {
	if wx == 0 && wy == 0 {
		return 0, false
	}
	// Ebitengine reports wheel-away-from-user as positive.
	return -wy, true
}

func (d *Deck) handleWheel(deltaY float64) error {
	return d.navigate(InputEvent{Category: InputWheel, WheelDeltaY: deltaY})
}

func (d *Deck) handleKey(k ebiten.Key) error {
	return d.navigate(InputEvent{Category: InputKey, Key: k})
}

func (d *Deck) handleTouchStart(x, y float64) {
	d.swipe.Begin(x, y, d.clock)
}

// handleTouchEnd closes the swipe session. Gestures that are not a swipe
// produce no event.
func (d *Deck) handleTouchEnd(x, y float64, at time.Duration) error {
	in := d.swipe.End(x, y, at)
	if in == IntentNone {
		return nil
	}
	return d.navigate(InputEvent{Category: InputTouch, Swipe: in})
}

// processPointer runs the pointer state machine over the hitbox column:
// enter previews the hovered index, leaving the column restores it, and a
// press and release on the same hitbox clicks it.
func (d *Deck) processPointer(x, y float64, pressed bool) {
	ps := &d.pointer
	target := d.hitTest(x, y)

	if target != ps.hoverNode {
		if ps.hoverNode != nil {
			firePointer(ps.hoverNode, ps.hoverNode.OnPointerLeave, x, y)
		}
		if target != nil {
			firePointer(target, target.OnPointerEnter, x, y)
		}
		ps.hoverNode = target
	}

	inGroup := false
	if group := d.view.Target(TargetHitboxes); group != nil {
		inGroup = group.containsLocal(group.WorldToLocal(x, y))
	}
	if ps.inGroup && !inGroup {
		d.ctrl.RestoreIndicator()
	}
	ps.inGroup = inGroup

	switch {
	case pressed && !ps.down:
		ps.down = true
		ps.hitNode = target
	case !pressed && ps.down:
		if ps.hitNode != nil && ps.hitNode == target {
			firePointer(target, target.OnClick, x, y)
		}
		ps.down = false
		ps.hitNode = nil
	}
	ps.lastX, ps.lastY = x, y
}

func firePointer(n *Node, fn func(PointerContext), x, y float64) {
	if fn == nil {
		return
	}
	lx, ly := n.WorldToLocal(x, y)
	fn(PointerContext{
		Node: n, UserData: n.UserData,
		GlobalX: x, GlobalY: y, LocalX: lx, LocalY: ly,
	})
}
