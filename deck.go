package deck

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// Deck is the top-level object that owns the view, the tween engine, the
// controller and the input state. It implements ebiten.Game.
type Deck struct {
	cfg        Config
	view       *SceneView
	tweens     *Tweener
	ctrl       *Controller
	normalizer *Normalizer
	swipe      *SwipeDetector
	resize     *ResizeAdapter
	logger     *slog.Logger
	sink       EventSink
	debug      bool

	clock         time.Duration
	width, height int

	// Input state
	pointer     pointerState
	touch       touchState
	keyBuf      []ebiten.Key
	touchBuf    []ebiten.TouchID
	hitBuf      []*Node
	injectQueue []syntheticEvent

	commands []RenderCommand
	script   *Script
}

// Option configures a Deck.
type Option func(*Deck)

// WithLogger sets the structured logger. The default discards output.
func WithLogger(l *slog.Logger) Option {
	return func(d *Deck) { d.logger = l }
}

// WithEventSink forwards transition events to sink.
func WithEventSink(sink EventSink) Option {
	return func(d *Deck) { d.sink = sink }
}

// NewDeck validates cfg and wires the deck's components.
func NewDeck(cfg Config, opts ...Option) (*Deck, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	km, err := cfg.Keys.KeyMap()
	if err != nil {
		return nil, err
	}
	normalizer, err := NewNormalizer(km)
	if err != nil {
		return nil, err
	}
	view, err := NewSceneView(cfg, float64(cfg.Width), float64(cfg.Height))
	if err != nil {
		return nil, err
	}
	tweens := NewTweener()
	ctrl, err := NewController(tweens, view, cfg)
	if err != nil {
		return nil, err
	}

	d := &Deck{
		cfg:        cfg,
		view:       view,
		tweens:     tweens,
		ctrl:       ctrl,
		normalizer: normalizer,
		swipe:      NewSwipeDetector(cfg.Swipe.Thresholds()),
		logger:     slog.New(slog.DiscardHandler),
		debug:      cfg.Debug,
		width:      cfg.Width,
		height:     cfg.Height,
	}
	d.resize = NewResizeAdapter(cfg.ResizeDebounce, float64(cfg.Height), d.applyResize)
	for _, o := range opts {
		o(d)
	}
	if d.logger == nil {
		d.logger = slog.New(slog.DiscardHandler)
	}
	ctrl.SetLogger(d.logger)
	ctrl.SetEventSink(d.sink)
	ctrl.Indicator().Reset()

	for i := 0; i < view.SlideCount(); i++ {
		hb := view.Hitbox(i)
		hb.OnClick = func(PointerContext) { d.ctrl.RequestTransitionTo(i) }
		hb.OnPointerEnter = func(PointerContext) { d.ctrl.PreviewIndicator(i) }
	}

	d.logger.Debug("deck ready", "slides", view.SlideCount(), "width", cfg.Width, "height", cfg.Height)
	return d, nil
}

// Controller returns the deck's transition controller.
func (d *Deck) Controller() *Controller { return d.ctrl }

// View returns the deck's scene view.
func (d *Deck) View() *SceneView { return d.view }

// Clock returns the time the deck has advanced through Update.
func (d *Deck) Clock() time.Duration { return d.clock }

// SetDebugMode enables or disables the debug overlay and debug logging of
// input.
func (d *Deck) SetDebugMode(enabled bool) {
	d.debug = enabled
}

// Update advances the deck by one tick. Classification errors are returned,
// which stops the Ebitengine loop.
func (d *Deck) Update() error {
	return d.step(float32(1.0 / float64(ebiten.TPS())))
}

// step runs one frame of dt seconds: scripted steps, input, the resize
// debounce, the lock watchdog and finally the tweens.
func (d *Deck) step(dt float32) error {
	d.clock += time.Duration(float64(dt) * float64(time.Second))

	if d.script != nil {
		d.script.step(d)
	}
	if err := d.processInput(); err != nil {
		return err
	}
	d.resize.Tick(dt)
	d.ctrl.Tick(dt)
	d.tweens.Update(dt)

	if d.script != nil && d.script.exit && d.script.Done() {
		if err := d.script.Err(); err != nil {
			return err
		}
		return ebiten.Termination
	}
	return nil
}

// Layout reports the outside size as the logical screen size. A change in
// size relayouts the view and notifies the resize debounce.
func (d *Deck) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != d.width || outsideHeight != d.height {
		d.SetViewport(outsideWidth, outsideHeight)
	}
	return outsideWidth, outsideHeight
}

// SetViewport applies a new viewport size. Layout follows immediately; the
// slide offset is recomputed once the debounce settles.
func (d *Deck) SetViewport(w, h int) {
	d.width, d.height = w, h
	d.view.Relayout(float64(w), float64(h))
	d.resize.Notify(float64(h))
}

func (d *Deck) applyResize(height float64) {
	d.logger.Debug("viewport resized", "height", height, "slide", d.ctrl.Current())
	d.ctrl.OnViewportResize(height)
}

// navigate classifies ev and hands the intent to the controller.
func (d *Deck) navigate(ev InputEvent) error {
	in, err := d.normalizer.Classify(ev)
	if err != nil {
		return err
	}
	if in == IntentNone {
		return nil
	}
	if d.debug {
		d.logger.Debug("intent", "category", ev.Category, "intent", in.String(), "locked", d.ctrl.Locked())
	}
	_, err = d.ctrl.RequestTransition(in)
	return err
}

// Run opens a resizable window and runs d until the window closes or a
// script with exit set finishes.
func Run(d *Deck) error {
	ebiten.SetWindowTitle(d.cfg.Title)
	ebiten.SetWindowSize(d.cfg.Width, d.cfg.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if err := ebiten.RunGame(d); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("run deck: %w", err)
	}
	if d.script != nil {
		return d.script.Err()
	}
	return nil
}
