package deck

import (
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
type Color struct {
	R, G, B, A float64
}

// ColorWhite is the default tint.
var ColorWhite = Color{1, 1, 1, 1}

// ParseColor converts a "#rrggbb" hex string into an opaque Color.
func ParseColor(hex string) (Color, error) {
	c, err := colorful.Hex(hex)
	if err != nil {
		return Color{}, err
	}
	return Color{R: c.R, G: c.G, B: c.B, A: 1}, nil
}

// toRGBA converts to a premultiplied color.RGBA for ebiten fills.
func (c Color) toRGBA() color.RGBA {
	return color.RGBA{
		R: uint8(c.R * c.A * 255),
		G: uint8(c.G * c.A * 255),
		B: uint8(c.B * c.A * 255),
		A: uint8(c.A * 255),
	}
}

// Intent is a normalized navigation request derived from raw input.
type Intent uint8

const (
	IntentNone Intent = iota // input that does not navigate
	IntentUp                 // previous slide
	IntentDown               // next slide
	IntentHome               // first slide
	IntentEnd                // last slide
)

var intentNames = [...]string{"none", "up", "down", "home", "end"}

func (i Intent) String() string {
	if int(i) < len(intentNames) {
		return intentNames[i]
	}
	return "invalid"
}

// valid reports whether i is one of the declared intents.
func (i Intent) valid() bool {
	return i <= IntentEnd
}

// InputCategory identifies the kind of raw input an InputEvent carries.
type InputCategory uint8

const (
	InputWheel InputCategory = iota // mouse or trackpad wheel
	InputKey                        // keyboard key press
	InputTouch                      // resolved touch swipe
)

// TransitionKind distinguishes the transition events published to an EventSink.
type TransitionKind uint8

const (
	TransitionStarted   TransitionKind = iota // a navigation transition began
	TransitionCompleted                       // its timeline completed and the lock released
	TransitionForced                          // the lock watchdog released a stuck transition
	TransitionReflowed                        // a viewport resize repositioned the current slide
)

// TransitionEvent describes a controller state change.
type TransitionEvent struct {
	Kind TransitionKind
	From int
	To   int
}

// EventSink is the interface for optional transition observers, such as the
// ECS bridge in deck/ecs.
type EventSink interface {
	EmitTransition(event TransitionEvent)
}

var transitionKindNames = [...]string{"started", "completed", "forced", "reflowed"}

func (k TransitionKind) String() string {
	if int(k) < len(transitionKindNames) {
		return transitionKindNames[k]
	}
	return "invalid"
}
