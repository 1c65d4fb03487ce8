package deck

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Property selects the animated field of a Node.
type Property uint8

const (
	PropTranslateX Property = iota
	PropTranslateY
	PropAlpha
)

func (p Property) field(n *Node) *float64 {
	switch p {
	case PropTranslateX:
		return &n.TranslateX
	case PropTranslateY:
		return &n.TranslateY
	default:
		return &n.Alpha
	}
}

// Position anchors an effect relative to the effect added before it.
type Position uint8

const (
	WithPrevious  Position = iota // start together with the previous effect
	AfterPrevious                 // start when the previous effect ends
)

// Tween holds the timing options of a scheduled effect. Times are seconds.
type Tween struct {
	Duration float32
	Delay    float32
	Ease     ease.TweenFunc
	Position Position
}

// Timeline is a group of scheduled effects that completes when all of them
// have finished.
type Timeline interface {
	// To animates p from its value at the effect's start time to `to`.
	To(n *Node, p Property, to float64, opt Tween)
	// FromTo writes `from` immediately and animates to `to`.
	FromTo(n *Node, p Property, from, to float64, opt Tween)
	// Set writes v instantly at the effect's start time.
	Set(n *Node, p Property, v float64, pos Position)
	// OnComplete registers fn to run once when every effect has finished.
	OnComplete(fn func())
	// Active reports whether the timeline still has unfinished effects.
	Active() bool
}

// AnimationEngine creates timelines. The controller and orchestrators depend
// only on this interface.
type AnimationEngine interface {
	NewTimeline() Timeline
}

// track interpolates a single node field.
type track struct {
	target   *Node
	field    *float64
	from     float64
	hasFrom  bool
	to       float64
	start    float32
	duration float32
	fn       ease.TweenFunc
	tween    *gween.Tween
	done     bool
}

// update advances the track to the timeline time `now`.
func (tr *track) update(now, dt float32) {
	if tr.done {
		return
	}
	if tr.target.IsDisposed() {
		tr.done = true
		return
	}
	if now < tr.start {
		return
	}
	if tr.duration <= 0 {
		*tr.field = tr.to
		tr.done = true
		return
	}
	step := dt
	if tr.tween == nil {
		from := *tr.field
		if tr.hasFrom {
			from = tr.from
		}
		tr.tween = gween.New(float32(from), float32(tr.to), tr.duration, tr.fn)
		// First frame only covers the time since the track started.
		step = now - tr.start
	}
	val, finished := tr.tween.Update(step)
	*tr.field = float64(val)
	if finished {
		*tr.field = tr.to
		tr.done = true
	}
}

// tweenTimeline is the gween-backed Timeline created by a Tweener.
type tweenTimeline struct {
	tracks     []*track
	now        float32
	prevStart  float32
	prevEnd    float32
	onComplete []func()
	done       bool
}

func (tl *tweenTimeline) schedule(n *Node, p Property, to float64, opt Tween) *track {
	start := tl.prevStart
	if opt.Position == AfterPrevious {
		start = tl.prevEnd
	}
	start += opt.Delay
	fn := opt.Ease
	if fn == nil {
		fn = ease.Linear
	}
	tr := &track{
		target:   n,
		field:    p.field(n),
		to:       to,
		start:    start,
		duration: opt.Duration,
		fn:       fn,
	}
	tl.tracks = append(tl.tracks, tr)
	tl.prevStart = start
	tl.prevEnd = start + opt.Duration
	return tr
}

func (tl *tweenTimeline) To(n *Node, p Property, to float64, opt Tween) {
	tl.schedule(n, p, to, opt)
}

func (tl *tweenTimeline) FromTo(n *Node, p Property, from, to float64, opt Tween) {
	tr := tl.schedule(n, p, to, opt)
	tr.from = from
	tr.hasFrom = true
	*tr.field = from
}

func (tl *tweenTimeline) Set(n *Node, p Property, v float64, pos Position) {
	tl.schedule(n, p, v, Tween{Position: pos})
}

func (tl *tweenTimeline) OnComplete(fn func()) {
	tl.onComplete = append(tl.onComplete, fn)
}

func (tl *tweenTimeline) Active() bool {
	return !tl.done
}

// update advances all tracks by dt and reports whether the timeline finished
// during this call.
func (tl *tweenTimeline) update(dt float32) bool {
	if tl.done {
		return false
	}
	tl.now += dt
	allDone := true
	for _, tr := range tl.tracks {
		tr.update(tl.now, dt)
		if !tr.done {
			allDone = false
		}
	}
	if !allDone {
		return false
	}
	tl.done = true
	for _, fn := range tl.onComplete {
		fn()
	}
	return true
}

// Tweener is the AnimationEngine backed by gween. Call Update(dt) once per
// frame; completion callbacks run from inside Update.
//
// Each Deck owns one Tweener.
type Tweener struct {
	live []*tweenTimeline
}

// NewTweener creates an empty Tweener.
func NewTweener() *Tweener {
	return &Tweener{}
}

// NewTimeline creates a timeline that starts advancing on the next Update.
func (t *Tweener) NewTimeline() Timeline {
	tl := &tweenTimeline{}
	t.live = append(t.live, tl)
	return tl
}

// Len returns the number of timelines that have not completed.
func (t *Tweener) Len() int {
	return len(t.live)
}

// Update advances every live timeline by dt seconds and drops the finished
// ones. Timelines created by completion callbacks start on the next Update.
func (t *Tweener) Update(dt float32) {
	live := t.live
	t.live = nil
	kept := live[:0]
	for _, tl := range live {
		tl.update(dt)
		if !tl.done {
			kept = append(kept, tl)
		}
	}
	for i := len(kept); i < len(live); i++ {
		live[i] = nil
	}
	t.live = append(kept, t.live...)
}
