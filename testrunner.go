package deck

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// scriptStep represents a single action in a script.
type scriptStep struct {
	Action string  `json:"action"`
	DeltaY float64 `json:"dy,omitempty"`
	Key    string  `json:"key,omitempty"`
	X      float64 `json:"x,omitempty"`
	Y      float64 `json:"y,omitempty"`
	FromX  float64 `json:"fromX,omitempty"`
	FromY  float64 `json:"fromY,omitempty"`
	ToX    float64 `json:"toX,omitempty"`
	ToY    float64 `json:"toY,omitempty"`
	Ms     int     `json:"ms,omitempty"`
	Width  int     `json:"width,omitempty"`
	Height int     `json:"height,omitempty"`
	Frames int     `json:"frames,omitempty"`
	Slide  *int    `json:"slide,omitempty"`

	key ebiten.Key
}

// scriptFile is the top-level JSON structure of a script.
type scriptFile struct {
	Exit  bool         `json:"exit"`
	Steps []scriptStep `json:"steps"`
}

// Script sequences injected input and slide assertions across frames.
// Attach to a Deck via SetScript.
type Script struct {
	steps     []scriptStep
	cursor    int
	waitCount int
	done      bool
	exit      bool
	errs      []error
}

// LoadScript parses a JSON script. Unknown actions and key names are
// rejected here rather than mid-run.
func LoadScript(data []byte) (*Script, error) {
	var f scriptFile
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse script: %w", err)
	}
	if len(f.Steps) == 0 {
		return nil, fmt.Errorf("parse script: no steps")
	}
	for i := range f.Steps {
		st := &f.Steps[i]
		switch st.Action {
		case "wheel", "swipe", "click", "hover", "wait":
		case "key":
			if err := st.key.UnmarshalText([]byte(st.Key)); err != nil {
				return nil, fmt.Errorf("parse script: step %d: %w", i, err)
			}
		case "resize":
			if st.Width <= 0 || st.Height <= 0 {
				return nil, fmt.Errorf("parse script: step %d: resize needs width and height", i)
			}
		case "expect":
			if st.Slide == nil {
				return nil, fmt.Errorf("parse script: step %d: expect needs slide", i)
			}
		default:
			return nil, fmt.Errorf("parse script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &Script{steps: f.Steps, exit: f.Exit}, nil
}

// SetScript attaches a script to the deck. The script's step method is
// called from Update before input is processed each frame.
func (d *Deck) SetScript(s *Script) {
	d.script = s
}

// Done reports whether all steps have been executed.
func (s *Script) Done() bool {
	return s.done
}

// Err returns the failed expectations, joined, or nil.
func (s *Script) Err() error {
	return errors.Join(s.errs...)
}

// step advances the script by one frame.
func (s *Script) step(d *Deck) {
	if s.done {
		return
	}
	// Wait for pending injections to drain before advancing.
	if len(d.injectQueue) > 0 {
		return
	}
	if s.waitCount > 0 {
		s.waitCount--
		return
	}
	if s.cursor >= len(s.steps) {
		s.done = true
		return
	}

	st := s.steps[s.cursor]
	if st.Action == "expect" && (d.ctrl.Locked() || d.resize.Pending()) {
		// Assertions hold the script until the deck has settled.
		return
	}
	s.cursor++

	switch st.Action {
	case "wheel":
		d.InjectWheel(st.DeltaY)
	case "key":
		d.InjectKey(st.key)
	case "swipe":
		d.InjectSwipe(st.FromX, st.FromY, st.ToX, st.ToY, time.Duration(st.Ms)*time.Millisecond)
	case "click":
		d.InjectClick(st.X, st.Y)
	case "hover":
		d.InjectPointer(st.X, st.Y, false)
	case "resize":
		d.InjectResize(st.Width, st.Height)
	case "wait":
		if st.Frames > 0 {
			s.waitCount = st.Frames - 1 // this frame counts as one
		}
	case "expect":
		if got := d.ctrl.Current(); got != *st.Slide {
			err := fmt.Errorf("script step %d: expected slide %d, got %d", s.cursor-1, *st.Slide, got)
			s.errs = append(s.errs, err)
			d.logger.Error("script expectation failed", "step", s.cursor-1, "want", *st.Slide, "got", got)
		}
	}

	if s.cursor >= len(s.steps) && s.waitCount == 0 && len(d.injectQueue) == 0 {
		s.done = true
	}
}
