package deck

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/pelletier/go-toml/v2"
)

// Config describes a deck: its slides, timings, gesture thresholds, key
// bindings and parallax tables. Times are seconds unless named otherwise.
type Config struct {
	Title  string `toml:"title"`
	Width  int    `toml:"width"`
	Height int    `toml:"height"`
	Debug  bool   `toml:"debug"`

	// Duration is the length of a slide transition.
	Duration float32 `toml:"duration"`
	// HoverDuration is used when a hitbox hover previews the indicator.
	HoverDuration float32 `toml:"hover_duration"`
	// ResizeDebounce is the trailing-edge delay for viewport changes.
	ResizeDebounce float32 `toml:"resize_debounce"`
	// LockTimeout force-releases a transition lock held longer than this.
	// It must exceed Duration. Zero disables the watchdog.
	LockTimeout float32 `toml:"lock_timeout"`

	Swipe     SwipeConfig     `toml:"swipe"`
	Keys      KeyConfig       `toml:"keys"`
	Parallax  ParallaxConfig  `toml:"parallax"`
	Indicator IndicatorConfig `toml:"indicator"`
	Reveal    RevealConfig    `toml:"reveal"`
	Slides    []SlideConfig   `toml:"slides"`
}

// SwipeConfig holds the touch gesture thresholds.
type SwipeConfig struct {
	MinDistance      float64 `toml:"min_distance"`
	MaxPerpendicular float64 `toml:"max_perpendicular"`
	AllowedTimeMs    int64   `toml:"allowed_time_ms"`
}

// Thresholds converts the config to SwipeThresholds.
func (c SwipeConfig) Thresholds() SwipeThresholds {
	return SwipeThresholds{
		MinDistance:      c.MinDistance,
		MaxPerpendicular: c.MaxPerpendicular,
		AllowedTime:      time.Duration(c.AllowedTimeMs) * time.Millisecond,
	}
}

// KeyConfig names the key groups using Ebitengine key names.
type KeyConfig struct {
	Next     []string `toml:"next"`
	Previous []string `toml:"previous"`
	First    []string `toml:"first"`
	Last     []string `toml:"last"`
}

// KeyMap parses the key names.
func (c KeyConfig) KeyMap() (KeyMap, error) {
	km := KeyMap{}
	groups := []struct {
		intent Intent
		names  []string
	}{
		{IntentDown, c.Next},
		{IntentUp, c.Previous},
		{IntentHome, c.First},
		{IntentEnd, c.Last},
	}
	for _, g := range groups {
		for _, name := range g.names {
			var k ebiten.Key
			if err := k.UnmarshalText([]byte(name)); err != nil {
				return nil, fmt.Errorf("key %q: %w", name, err)
			}
			km[g.intent] = append(km[g.intent], k)
		}
	}
	return km, nil
}

// ParallaxConfig holds the shared travel-distance table and the per-project
// layer lists.
type ParallaxConfig struct {
	// Distances is the travel per layer depth.
	Distances []float64 `toml:"distances"`
	// HeroDepth selects the hero holder's exit travel.
	HeroDepth int `toml:"hero_depth"`
	// ShapesDepth selects the background shapes' travel per slide.
	ShapesDepth int             `toml:"shapes_depth"`
	Projects    []ProjectConfig `toml:"projects"`
}

// ProjectConfig is one project slide with its image layers ordered from the
// bottom layer to the top. Layer i travels Distances[i+Depth].
type ProjectConfig struct {
	Slide  int      `toml:"slide"`
	Layers []string `toml:"layers"`
	Depth  int      `toml:"depth"`
}

// IndicatorConfig holds the progress marker and page ticker geometry.
type IndicatorConfig struct {
	// PageStep is the ticker row height in pixels.
	PageStep float64 `toml:"page_step"`
	// MarkerStep is the marker travel per slide in percent of viewport height.
	MarkerStep float64 `toml:"marker_step"`
}

// RevealConfig holds the reveal-on-enter timing.
type RevealConfig struct {
	Offset   float64 `toml:"offset"`
	Duration float32 `toml:"duration"`
	Delay    float32 `toml:"delay"`
	Stagger  float32 `toml:"stagger"`
}

// SlideConfig is one slide of the deck.
type SlideConfig struct {
	Name  string   `toml:"name"`
	Title string   `toml:"title"`
	Lines []string `toml:"lines"`
	Color string   `toml:"color"`
}

// DefaultConfig returns the landing-page deck: a hero, an introduction, four
// project slides and a contact slide.
func DefaultConfig() Config {
	return Config{
		Title:          "deck",
		Width:          1280,
		Height:         720,
		Duration:       1,
		HoverDuration:  0.75,
		ResizeDebounce: 0.2,
		LockTimeout:    3,
		Swipe: SwipeConfig{
			MinDistance:      150,
			MaxPerpendicular: 100,
			AllowedTimeMs:    300,
		},
		Keys: KeyConfig{
			Next:     []string{"J", "ArrowDown", "PageDown"},
			Previous: []string{"K", "ArrowUp", "PageUp"},
			First:    []string{"Home"},
			Last:     []string{"End"},
		},
		Parallax: ParallaxConfig{
			Distances:   []float64{200, 50, -100, -400, -1200, -1700, -2200},
			HeroDepth:   3,
			ShapesDepth: 6,
			Projects: []ProjectConfig{
				{Slide: 2, Depth: 0, Layers: []string{"flash5", "flash6", "flash4", "flash3", "flash2", "flash1"}},
				{Slide: 3, Depth: 1, Layers: []string{"spenmo5", "spenmo1", "spenmo2", "spenmo4", "spenmo3"}},
				{Slide: 4, Depth: 1, Layers: []string{"tightrope5", "tightrope1", "tightrope2", "tightrope4", "tightrope3"}},
				{Slide: 5, Depth: 1, Layers: []string{"diab3", "diab1", "diab4", "diab5", "diab2"}},
			},
		},
		Indicator: IndicatorConfig{
			PageStep:   17,
			MarkerStep: 32.0 / 9.0,
		},
		Reveal: RevealConfig{
			Offset:   200,
			Duration: 0.5,
			Delay:    0.5,
			Stagger:  0.075,
		},
		Slides: []SlideConfig{
			{Name: "hero", Title: "Hello.", Lines: []string{"Designer and developer.", "Scroll, swipe or press J/K."}, Color: "#1d1b26"},
			{Name: "about", Title: "About", Lines: []string{"Interfaces that move with intent."}, Color: "#23202e"},
			{Name: "flash", Title: "Flash", Lines: []string{"Flashcards for busy students."}, Color: "#2a2336"},
			{Name: "spenmo", Title: "Spenmo", Lines: []string{"Spend management for teams."}, Color: "#1f2a36"},
			{Name: "tightrope", Title: "Tightrope", Lines: []string{"Budgeting on a thin line."}, Color: "#1f3630"},
			{Name: "diab", Title: "Diab", Lines: []string{"Living with diabetes, day by day."}, Color: "#36261f"},
			{Name: "contact", Title: "Say hi.", Lines: []string{"hello@example.com"}, Color: "#1d1b26"},
		},
	}
}

// LoadConfig reads a TOML file over DefaultConfig and validates the result.
// Unknown fields are rejected.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	return ParseConfig(data)
}

// ParseConfig decodes TOML data over DefaultConfig and validates the result.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	var raw map[string]any
	if err := toml.Unmarshal(data, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	cfg.clearListed(raw)
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		var strict *toml.StrictMissingError
		if errors.As(err, &strict) {
			return Config{}, fmt.Errorf("parse config: %s", strict.String())
		}
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// clearListed drops the default lists the document sets so decoded arrays
// replace them instead of extending them.
func (c *Config) clearListed(raw map[string]any) {
	if _, ok := raw["slides"]; ok {
		c.Slides = nil
	}
	if keys, ok := raw["keys"].(map[string]any); ok {
		for name, list := range map[string]*[]string{
			"next": &c.Keys.Next, "previous": &c.Keys.Previous,
			"first": &c.Keys.First, "last": &c.Keys.Last,
		} {
			if _, ok := keys[name]; ok {
				*list = nil
			}
		}
	}
	if par, ok := raw["parallax"].(map[string]any); ok {
		if _, ok := par["distances"]; ok {
			c.Parallax.Distances = nil
		}
		if _, ok := par["projects"]; ok {
			c.Parallax.Projects = nil
		}
	}
}

// Marshal encodes the config as TOML.
func (c Config) Marshal() ([]byte, error) {
	return toml.Marshal(c)
}

// Validate checks ranges and cross references.
func (c Config) Validate() error {
	var errs []error
	if c.Width <= 0 || c.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size %dx%d must be positive", c.Width, c.Height))
	}
	if c.Duration <= 0 {
		errs = append(errs, fmt.Errorf("duration must be positive"))
	}
	if c.HoverDuration <= 0 {
		errs = append(errs, fmt.Errorf("hover_duration must be positive"))
	}
	if c.ResizeDebounce < 0 {
		errs = append(errs, fmt.Errorf("resize_debounce must not be negative"))
	}
	if c.LockTimeout < 0 {
		errs = append(errs, fmt.Errorf("lock_timeout must not be negative"))
	} else if c.LockTimeout > 0 && c.LockTimeout <= c.Duration {
		// Every effect on the lock's timeline runs for Duration with no delay.
		errs = append(errs, fmt.Errorf("lock_timeout %g must exceed duration %g", c.LockTimeout, c.Duration))
	}
	if c.Swipe.MinDistance <= 0 || c.Swipe.MaxPerpendicular < 0 || c.Swipe.AllowedTimeMs <= 0 {
		errs = append(errs, fmt.Errorf("swipe thresholds must be positive"))
	}
	if c.Indicator.PageStep <= 0 || c.Indicator.MarkerStep <= 0 {
		errs = append(errs, fmt.Errorf("indicator steps must be positive"))
	}
	if len(c.Slides) == 0 {
		errs = append(errs, fmt.Errorf("at least one slide is required"))
	}
	names := make(map[string]bool)
	for i, s := range c.Slides {
		if s.Name == "" {
			errs = append(errs, fmt.Errorf("slide %d: name is required", i))
		} else if names[s.Name] {
			errs = append(errs, fmt.Errorf("slide %d: duplicate name %q", i, s.Name))
		}
		names[s.Name] = true
		if _, err := ParseColor(s.Color); err != nil {
			errs = append(errs, fmt.Errorf("slide %q: color %q: %w", s.Name, s.Color, err))
		}
	}
	if err := c.Parallax.validate(len(c.Slides)); err != nil {
		errs = append(errs, err)
	}
	km, err := c.Keys.KeyMap()
	if err != nil {
		errs = append(errs, err)
	} else if _, err := NewNormalizer(km); err != nil {
		errs = append(errs, err)
	}
	if len(errs) > 0 {
		return fmt.Errorf("invalid config: %w", errors.Join(errs...))
	}
	return nil
}

func (p ParallaxConfig) validate(slides int) error {
	n := len(p.Distances)
	if n == 0 {
		return fmt.Errorf("parallax: distances table is empty")
	}
	if p.HeroDepth < 0 || p.HeroDepth >= n {
		return fmt.Errorf("parallax: hero_depth %d outside distances table", p.HeroDepth)
	}
	if p.ShapesDepth < 0 || p.ShapesDepth >= n {
		return fmt.Errorf("parallax: shapes_depth %d outside distances table", p.ShapesDepth)
	}
	seenSlide := make(map[int]bool)
	seenLayer := make(map[string]bool)
	for _, pr := range p.Projects {
		if pr.Slide <= 0 || pr.Slide >= slides {
			return fmt.Errorf("parallax: project slide %d must be in [1, %d]", pr.Slide, slides-1)
		}
		if seenSlide[pr.Slide] {
			return fmt.Errorf("parallax: slide %d has two projects", pr.Slide)
		}
		seenSlide[pr.Slide] = true
		if pr.Depth < 0 || pr.Depth+len(pr.Layers) > n {
			return fmt.Errorf("parallax: project on slide %d needs depths %d..%d, table has %d",
				pr.Slide, pr.Depth, pr.Depth+len(pr.Layers)-1, n)
		}
		for _, l := range pr.Layers {
			if seenLayer[l] {
				return fmt.Errorf("parallax: duplicate layer %q", l)
			}
			seenLayer[l] = true
		}
	}
	return nil
}
