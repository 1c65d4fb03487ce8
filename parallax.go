package deck

import (
	"fmt"

	"github.com/tanema/gween/ease"
)

// projectLayers is a project slide resolved against the view.
type projectLayers struct {
	nodes []*Node
	depth int
}

// Parallax schedules the layered background and project image offsets for
// a slide transition. Which distances apply is data (layer lists plus one
// shared table); how they move is one procedure keyed by direction.
type Parallax struct {
	distances  []float64
	heroTravel float64
	shapeStep  float64
	hero       *Node
	shapes     *Node
	projects   map[int]projectLayers
	duration   float32
	fn         ease.TweenFunc
}

// NewParallax resolves every configured layer against view.
func NewParallax(view ViewAdapter, cfg ParallaxConfig, duration float32) (*Parallax, error) {
	if err := cfg.validate(view.SlideCount()); err != nil {
		return nil, err
	}
	p := &Parallax{
		distances:  cfg.Distances,
		heroTravel: cfg.Distances[cfg.HeroDepth],
		shapeStep:  cfg.Distances[cfg.ShapesDepth],
		hero:       view.Target(TargetHero),
		shapes:     view.Target(TargetShapes),
		projects:   make(map[int]projectLayers, len(cfg.Projects)),
		duration:   duration,
		fn:         ease.InOutQuad,
	}
	for _, pr := range cfg.Projects {
		pl := projectLayers{depth: pr.Depth}
		for _, name := range pr.Layers {
			n := view.Target(ImageTarget(name))
			if n == nil {
				return nil, fmt.Errorf("parallax: view has no layer %q", name)
			}
			pl.nodes = append(pl.nodes, n)
		}
		p.projects[pr.Slide] = pl
	}
	return p, nil
}

// Apply schedules the exit of `from`, the entry of `to` and the background
// shapes onto tl. Equal indices schedule nothing.
func (p *Parallax) Apply(tl Timeline, from, to int) {
	if from == to {
		return
	}
	down := from < to
	p.slide(tl, from, false, down)
	p.slide(tl, to, true, down)
	if p.shapes != nil {
		tl.To(p.shapes, PropTranslateY, p.shapeStep*float64(to), p.tween())
	}
}

func (p *Parallax) slide(tl Timeline, index int, entering, down bool) {
	if index == 0 {
		if p.hero == nil {
			return
		}
		y := p.heroTravel
		if entering {
			y = 0
		}
		tl.To(p.hero, PropTranslateY, y, p.tween())
		return
	}
	if pl, ok := p.projects[index]; ok {
		p.layers(tl, pl, entering, down)
	}
}

// layers moves each image by its depth's distance. Entering slides settle
// from the side they come from; leaving slides travel away in the direction
// of navigation.
func (p *Parallax) layers(tl Timeline, pl projectLayers, entering, down bool) {
	sign := -1.0
	if down {
		sign = 1
	}
	for i, n := range pl.nodes {
		d := p.distances[i+pl.depth]
		if entering {
			tl.FromTo(n, PropTranslateY, -sign*d, 0, p.tween())
		} else {
			tl.FromTo(n, PropTranslateY, 0, sign*d, p.tween())
		}
	}
}

func (p *Parallax) tween() Tween {
	return Tween{Duration: p.duration, Ease: p.fn}
}
