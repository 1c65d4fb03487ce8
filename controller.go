package deck

import (
	"fmt"
	"log/slog"

	"github.com/tanema/gween/ease"
)

// Controller owns the current slide index and the transition lock. It turns
// navigation intents into transitions and fans each transition out to the
// parallax, indicator and reveal effects, all scheduled on one timeline.
//
// Intents that arrive while a transition runs are dropped, not queued. The
// lock is released by the timeline's completion callback; a watchdog driven
// by Tick force-releases it if completion never arrives.
type Controller struct {
	engine    AnimationEngine
	view      ViewAdapter
	parallax  *Parallax
	indicator *Indicator
	container *Node

	duration      float32
	hoverDuration float32
	lockTimeout   float32
	revealCfg     RevealConfig

	last    int
	current int
	height  float64

	lock          Timeline
	lockAge       float32
	lockFrom      int
	reflowPending bool

	logger *slog.Logger
	sink   EventSink
}

// NewController creates a controller at slide 0 for the slides view reports.
func NewController(engine AnimationEngine, view ViewAdapter, cfg Config) (*Controller, error) {
	n := view.SlideCount()
	if n < 1 {
		return nil, fmt.Errorf("controller: view has no slides")
	}
	container := view.Target(TargetFullpage)
	if container == nil {
		return nil, fmt.Errorf("controller: view has no %q target", TargetFullpage)
	}
	par, err := NewParallax(view, cfg.Parallax, cfg.Duration)
	if err != nil {
		return nil, fmt.Errorf("controller: %w", err)
	}
	_, h := view.Viewport()
	return &Controller{
		engine:        engine,
		view:          view,
		parallax:      par,
		indicator:     NewIndicator(view, engine, cfg.Indicator),
		container:     container,
		duration:      cfg.Duration,
		hoverDuration: cfg.HoverDuration,
		lockTimeout:   cfg.LockTimeout,
		revealCfg:     cfg.Reveal,
		last:          n - 1,
		height:        h,
		logger:        slog.New(slog.DiscardHandler),
	}, nil
}

// SetLogger sets the logger used for transition and watchdog messages.
func (c *Controller) SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(slog.DiscardHandler)
	}
	c.logger = l
}

// SetEventSink sets the optional transition observer.
func (c *Controller) SetEventSink(sink EventSink) {
	c.sink = sink
}

// Current returns the committed slide index.
func (c *Controller) Current() int { return c.current }

// Last returns the index of the last slide.
func (c *Controller) Last() int { return c.last }

// Locked reports whether a transition is in progress.
func (c *Controller) Locked() bool { return c.lock != nil && c.lock.Active() }

// Height returns the viewport height transitions are computed with.
func (c *Controller) Height() float64 { return c.height }

// Indicator returns the controller's indicator.
func (c *Controller) Indicator() *Indicator { return c.indicator }

// RequestTransition navigates according to in and reports whether a
// transition started. Moving past either end and requests made while locked
// are ignored. A value outside the declared intents returns ErrUnknownIntent.
func (c *Controller) RequestTransition(in Intent) (bool, error) {
	if !in.valid() {
		return false, fmt.Errorf("request transition %d: %w", in, ErrUnknownIntent)
	}
	if c.Locked() {
		return false, nil
	}
	to := c.current
	switch in {
	case IntentDown:
		if c.current >= c.last {
			return false, nil
		}
		to++
	case IntentUp:
		if c.current <= 0 {
			return false, nil
		}
		to--
	case IntentHome:
		to = 0
	case IntentEnd:
		to = c.last
	default:
		return false, nil
	}
	c.logger.Debug("transition requested", "intent", in.String(), "from", c.current, "to", to)
	c.start(c.current, to)
	return true, nil
}

// RequestTransitionTo jumps straight to index, as a hitbox click does.
func (c *Controller) RequestTransitionTo(index int) bool {
	if index == c.current || index < 0 || index > c.last || c.Locked() {
		return false
	}
	c.logger.Debug("jump requested", "from", c.current, "to", index)
	c.start(c.current, index)
	return true
}

// OnViewportResize records a new viewport height and repositions the
// current slide. The index never changes. While a transition runs the
// reposition is deferred until the lock releases.
func (c *Controller) OnViewportResize(height float64) bool {
	if height == c.height {
		return false
	}
	c.height = height
	if c.Locked() {
		c.reflowPending = true
		return false
	}
	c.start(c.current, c.current)
	return true
}

// PreviewIndicator moves the indicator to a hovered hitbox without changing
// the slide.
func (c *Controller) PreviewIndicator(index int) bool {
	if index < 0 || index > c.last {
		return false
	}
	return c.indicator.Preview(index, c.hoverDuration)
}

// RestoreIndicator returns the indicator to the committed slide.
func (c *Controller) RestoreIndicator() bool {
	return c.indicator.Preview(c.current, c.hoverDuration)
}

// Tick advances the lock watchdog by dt seconds.
func (c *Controller) Tick(dt float32) {
	if c.lock == nil {
		return
	}
	if !c.lock.Active() {
		// Finished without reaching its completion callback.
		c.release(c.lock)
		return
	}
	if c.lockTimeout <= 0 {
		return
	}
	c.lockAge += dt
	if c.lockAge < c.lockTimeout {
		return
	}
	c.logger.Warn("transition lock timed out", "from", c.lockFrom, "to", c.current, "timeout", c.lockTimeout)
	c.lock = nil
	c.emit(TransitionForced, c.lockFrom, c.current)
	c.afterRelease()
}

// start commits `to` and issues the transition. from == to repositions the
// container for the current height without parallax or reveal.
func (c *Controller) start(from, to int) {
	c.current = to
	tl := c.engine.NewTimeline()
	c.lock = tl
	c.lockAge = 0
	c.lockFrom = from

	opt := Tween{Duration: c.duration, Ease: ease.InOutQuad}
	tl.To(c.container, PropTranslateY, -c.height*float64(to), opt)
	c.parallax.Apply(tl, from, to)
	if !c.indicator.Apply(tl, to, c.duration) {
		c.indicator.Reflow(tl, c.duration)
	}
	if from < to {
		reveal(c.engine, c.view, c.revealCfg, to)
	}

	kind := TransitionStarted
	if from == to {
		kind = TransitionReflowed
	}
	c.emit(kind, from, to)
	tl.OnComplete(func() { c.release(tl) })
}

// release clears the lock held by tl. Completion of a timeline the watchdog
// already released is ignored.
func (c *Controller) release(tl Timeline) {
	if c.lock != tl {
		return
	}
	c.lock = nil
	c.logger.Debug("transition completed", "slide", c.current)
	c.emit(TransitionCompleted, c.lockFrom, c.current)
	c.afterRelease()
}

func (c *Controller) afterRelease() {
	if c.reflowPending {
		c.reflowPending = false
		c.start(c.current, c.current)
	}
}

func (c *Controller) emit(kind TransitionKind, from, to int) {
	if c.sink != nil {
		c.sink.EmitTransition(TransitionEvent{Kind: kind, From: from, To: to})
	}
}
