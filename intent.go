package deck

import (
	"errors"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

var (
	// ErrUnknownInputCategory is returned by Classify for an event category
	// outside wheel, key and touch. It signals a wiring defect.
	ErrUnknownInputCategory = errors.New("deck: unknown input category")
	// ErrUnknownIntent is returned when a value outside the declared intents
	// reaches the controller.
	ErrUnknownIntent = errors.New("deck: unknown intent")
)

// InputEvent is a single raw input occurrence. Only the field matching
// Category is read.
type InputEvent struct {
	Category InputCategory
	// WheelDeltaY is positive when the content should scroll down.
	WheelDeltaY float64
	Key         ebiten.Key
	// Swipe is the intent resolved by a SwipeDetector.
	Swipe Intent
}

// KeyMap assigns a group of keys to each navigating intent.
type KeyMap map[Intent][]ebiten.Key

// DefaultKeyMap returns the standard key groups: next {J, ArrowDown,
// PageDown}, previous {K, ArrowUp, PageUp}, first {Home}, last {End}.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		IntentDown: {ebiten.KeyJ, ebiten.KeyArrowDown, ebiten.KeyPageDown},
		IntentUp:   {ebiten.KeyK, ebiten.KeyArrowUp, ebiten.KeyPageUp},
		IntentHome: {ebiten.KeyHome},
		IntentEnd:  {ebiten.KeyEnd},
	}
}

// Normalizer maps raw input to navigation intents through a total lookup
// table built at construction.
type Normalizer struct {
	keys map[ebiten.Key]Intent
}

// NewNormalizer validates km and builds the key table. Every navigating
// intent needs at least one key and no key may appear in two groups.
func NewNormalizer(km KeyMap) (*Normalizer, error) {
	n := &Normalizer{keys: make(map[ebiten.Key]Intent)}
	for _, in := range []Intent{IntentDown, IntentUp, IntentHome, IntentEnd} {
		group := km[in]
		if len(group) == 0 {
			return nil, fmt.Errorf("key map: no keys for %s", in)
		}
		for _, k := range group {
			if prev, ok := n.keys[k]; ok {
				return nil, fmt.Errorf("key map: key %s bound to both %s and %s", k, prev, in)
			}
			n.keys[k] = in
		}
	}
	for in := range km {
		if in == IntentNone || !in.valid() {
			return nil, fmt.Errorf("key map: cannot bind keys to %s", in)
		}
	}
	return n, nil
}

// Classify converts ev into an intent. Unrecognized keys yield IntentNone;
// an unrecognized category is an error.
func (n *Normalizer) Classify(ev InputEvent) (Intent, error) {
	switch ev.Category {
	case InputWheel:
		if ev.WheelDeltaY > 0 {
			return IntentDown, nil
		}
		return IntentUp, nil
	case InputKey:
		if in, ok := n.keys[ev.Key]; ok {
			return in, nil
		}
		return IntentNone, nil
	case InputTouch:
		return ev.Swipe, nil
	default:
		return IntentNone, fmt.Errorf("classify category %d: %w", ev.Category, ErrUnknownInputCategory)
	}
}

// Keys returns the recognized keys and their intents.
func (n *Normalizer) Keys() map[ebiten.Key]Intent {
	out := make(map[ebiten.Key]Intent, len(n.keys))
	for k, in := range n.keys {
		out[k] = in
	}
	return out
}
