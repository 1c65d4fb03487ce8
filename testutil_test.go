package deck

import "testing"

// --- Recording animation engine ---

// recordedTween is one effect scheduled on a recordingTimeline.
type recordedTween struct {
	node    *Node
	prop    Property
	from    float64
	hasFrom bool
	to      float64
	opt     Tween
}

// recordingTimeline records scheduled effects without animating them.
// complete runs the completion callbacks, as a finished timeline would.
type recordingTimeline struct {
	tweens    []recordedTween
	callbacks []func()
	done      bool
}

func (tl *recordingTimeline) To(n *Node, p Property, to float64, opt Tween) {
	tl.tweens = append(tl.tweens, recordedTween{node: n, prop: p, to: to, opt: opt})
}

func (tl *recordingTimeline) FromTo(n *Node, p Property, from, to float64, opt Tween) {
	tl.tweens = append(tl.tweens, recordedTween{node: n, prop: p, from: from, hasFrom: true, to: to, opt: opt})
}

func (tl *recordingTimeline) Set(n *Node, p Property, v float64, pos Position) {
	tl.tweens = append(tl.tweens, recordedTween{node: n, prop: p, to: v, opt: Tween{Position: pos}})
}

func (tl *recordingTimeline) OnComplete(fn func()) {
	tl.callbacks = append(tl.callbacks, fn)
}

func (tl *recordingTimeline) Active() bool { return !tl.done }

func (tl *recordingTimeline) complete() {
	if tl.done {
		return
	}
	tl.done = true
	for _, fn := range tl.callbacks {
		fn()
	}
}

// find returns the effects targeting n.
func (tl *recordingTimeline) find(n *Node) []recordedTween {
	var out []recordedTween
	for _, tw := range tl.tweens {
		if tw.node == n {
			out = append(out, tw)
		}
	}
	return out
}

type recordingEngine struct {
	timelines []*recordingTimeline
}

func (e *recordingEngine) NewTimeline() Timeline {
	tl := &recordingTimeline{}
	e.timelines = append(e.timelines, tl)
	return tl
}

func (e *recordingEngine) last() *recordingTimeline {
	if len(e.timelines) == 0 {
		return nil
	}
	return e.timelines[len(e.timelines)-1]
}

// --- Recording sink ---

type recordingSink struct {
	events []TransitionEvent
}

func (s *recordingSink) EmitTransition(e TransitionEvent) {
	s.events = append(s.events, e)
}

func (s *recordingSink) kinds() []TransitionKind {
	out := make([]TransitionKind, len(s.events))
	for i, e := range s.events {
		out[i] = e.Kind
	}
	return out
}

// --- Fixtures ---

const (
	testWidth  = 1280.0
	testHeight = 720.0
)

func newTestView(t testing.TB, cfg Config) *SceneView {
	t.Helper()
	v, err := NewSceneView(cfg, testWidth, testHeight)
	if err != nil {
		t.Fatal(err)
	}
	return v
}

type controllerFixture struct {
	cfg    Config
	view   *SceneView
	engine *recordingEngine
	sink   *recordingSink
	ctrl   *Controller
}

func newControllerFixture(t testing.TB) *controllerFixture {
	t.Helper()
	cfg := DefaultConfig()
	f := &controllerFixture{
		cfg:    cfg,
		view:   newTestView(t, cfg),
		engine: &recordingEngine{},
		sink:   &recordingSink{},
	}
	ctrl, err := NewController(f.engine, f.view, cfg)
	if err != nil {
		t.Fatal(err)
	}
	ctrl.SetEventSink(f.sink)
	f.ctrl = ctrl
	return f
}

// lockTimeline returns the timeline currently holding the lock.
func (f *controllerFixture) lockTimeline() *recordingTimeline {
	if f.ctrl.lock == nil {
		return nil
	}
	return f.ctrl.lock.(*recordingTimeline)
}

// settle completes the running transition, if any.
func (f *controllerFixture) settle() {
	if tl := f.lockTimeline(); tl != nil {
		tl.complete()
	}
}

func approx(a, b float64) bool {
	d := a - b
	return d < 1e-6 && d > -1e-6
}
