package deck

import "github.com/tanema/gween/ease"

// Indicator keeps the progress marker and the page-number ticker in step
// with the slide index. The ticker shows a distinct terminal state on the
// last slide by shifting its left and middle rows.
type Indicator struct {
	view   ViewAdapter
	engine AnimationEngine
	cfg    IndicatorConfig
	last   int
	shown  int
	fn     ease.TweenFunc

	marker, left, middle, right *Node
}

// NewIndicator resolves the indicator targets. Missing targets are skipped.
func NewIndicator(view ViewAdapter, engine AnimationEngine, cfg IndicatorConfig) *Indicator {
	return &Indicator{
		view:   view,
		engine: engine,
		cfg:    cfg,
		last:   view.SlideCount() - 1,
		fn:     ease.InOutQuad,
		marker: view.Target(TargetActiveIndicator),
		left:   view.Target(TargetPageLeft),
		middle: view.Target(TargetPageMiddle),
		right:  view.Target(TargetPageRight),
	}
}

// Shown returns the index the indicator currently displays.
func (ind *Indicator) Shown() int {
	return ind.shown
}

// Apply schedules the move to `to` on tl. It does nothing when `to` is
// already displayed and reports whether anything was scheduled.
func (ind *Indicator) Apply(tl Timeline, to int, duration float32) bool {
	if to == ind.shown {
		return false
	}
	opt := Tween{Duration: duration, Ease: ind.fn}
	to64 := float64(to)
	if ind.marker != nil {
		tl.To(ind.marker, PropTranslateY, ind.markerStep()*to64, opt)
	}
	if ind.right != nil {
		tl.To(ind.right, PropTranslateY, -ind.cfg.PageStep*to64, opt)
	}
	switch {
	case ind.shown == ind.last:
		ind.terminal(tl, 0, opt)
	case to == ind.last:
		ind.terminal(tl, -ind.cfg.PageStep, opt)
	}
	ind.shown = to
	return true
}

func (ind *Indicator) terminal(tl Timeline, y float64, opt Tween) {
	for _, n := range []*Node{ind.left, ind.middle} {
		if n != nil {
			tl.To(n, PropTranslateY, y, opt)
		}
	}
}

// Preview moves the indicator to a hovered hitbox on its own timeline.
func (ind *Indicator) Preview(to int, duration float32) bool {
	return ind.Apply(ind.engine.NewTimeline(), to, duration)
}

// Reflow re-places the marker for the current viewport height without
// touching the ticker.
func (ind *Indicator) Reflow(tl Timeline, duration float32) {
	if ind.marker != nil {
		tl.To(ind.marker, PropTranslateY, ind.markerStep()*float64(ind.shown), Tween{Duration: duration, Ease: ind.fn})
	}
}

// Reset snaps every indicator target to the first slide.
func (ind *Indicator) Reset() {
	for _, n := range []*Node{ind.marker, ind.left, ind.middle, ind.right} {
		if n != nil {
			n.TranslateY = 0
		}
	}
	ind.shown = 0
}

// markerStep converts the per-slide marker travel from viewport percent to
// pixels.
func (ind *Indicator) markerStep() float64 {
	_, h := ind.view.Viewport()
	return h * ind.cfg.MarkerStep / 100
}
