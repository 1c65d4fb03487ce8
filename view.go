package deck

import (
	"fmt"
	"math"
	"strconv"
)

// Logical target names a ViewAdapter resolves.
const (
	TargetFullpage        = "fullpage"
	TargetShapes          = "shapes"
	TargetHero            = "hero"
	TargetActiveIndicator = "active-indicator"
	TargetPageLeft        = "page-left"
	TargetPageMiddle      = "page-middle"
	TargetPageRight       = "page-right"
	TargetHitboxes        = "hitboxes"
)

// ImageTarget returns the target name of a project image layer.
func ImageTarget(layer string) string {
	return "image:" + layer
}

// ViewAdapter exposes the presentation as named logical targets so the
// controller and orchestrators never look up presentation details directly.
type ViewAdapter interface {
	// SlideCount returns the number of slide containers.
	SlideCount() int
	// Target returns the node for a logical name, or nil if the view has none.
	Target(name string) *Node
	// Hitbox returns the navigation-index hitbox of slide i, or nil.
	Hitbox(i int) *Node
	// RevealTargets returns the text elements revealed when slide i is entered.
	RevealTargets(slide int) []*Node
	// Viewport returns the current viewport size in pixels.
	Viewport() (w, h float64)
}

const (
	hitboxWidth   = 24.0
	overlayMargin = 32.0
	shapeCount    = 12
	shapeSize     = 48.0
)

var imagePalette = []Color{
	{R: 0.93, G: 0.42, B: 0.36, A: 1},
	{R: 0.98, G: 0.75, B: 0.32, A: 1},
	{R: 0.42, G: 0.78, B: 0.62, A: 1},
	{R: 0.36, G: 0.58, B: 0.92, A: 1},
	{R: 0.66, G: 0.46, B: 0.88, A: 1},
	{R: 0.92, G: 0.52, B: 0.76, A: 1},
}

// SceneView is the ViewAdapter that builds a node tree from a Config.
type SceneView struct {
	root     *Node
	shapes   *Node
	fullpage *Node
	overlay  *Node
	slides   []*Node
	reveals  [][]*Node
	images   map[int][]*Node
	hitboxes []*Node
	targets  map[string]*Node

	shapesTravel float64
	markerStep   float64
	width        float64
	height       float64
}

// NewSceneView builds the view for cfg and lays it out for a w×h viewport.
func NewSceneView(cfg Config, w, h float64) (*SceneView, error) {
	if len(cfg.Slides) == 0 {
		return nil, fmt.Errorf("scene view: no slides")
	}
	v := &SceneView{
		root:       NewNode("root"),
		targets:    make(map[string]*Node),
		images:     make(map[int][]*Node),
		markerStep: cfg.Indicator.MarkerStep,
	}
	fonts, err := DefaultFonts()
	if err != nil {
		return nil, fmt.Errorf("scene view: %w", err)
	}
	last := len(cfg.Slides) - 1
	if d := cfg.Parallax.ShapesDepth; d >= 0 && d < len(cfg.Parallax.Distances) {
		v.shapesTravel = math.Abs(cfg.Parallax.Distances[d]) * float64(last)
	}

	v.shapes = NewNode(TargetShapes)
	for i := 0; i < shapeCount; i++ {
		c := imagePalette[i%len(imagePalette)]
		c.A = 0.35
		v.shapes.AddChild(NewBox(fmt.Sprintf("shape%d", i), shapeSize, shapeSize, c))
	}
	v.root.AddChild(v.shapes)

	v.fullpage = NewNode(TargetFullpage)
	v.root.AddChild(v.fullpage)
	for i, sc := range cfg.Slides {
		bg, err := ParseColor(sc.Color)
		if err != nil {
			return nil, fmt.Errorf("scene view: slide %d color %q: %w", i, sc.Color, err)
		}
		bg.A = 0.85
		slide := NewBox("slide:"+sc.Name, w, h, bg)
		v.fullpage.AddChild(slide)
		v.slides = append(v.slides, slide)

		var reveal []*Node
		title := NewNode("title:" + sc.Name)
		title.Label = sc.Title
		title.Font = fonts.Title
		reveal = append(reveal, title)
		for j, line := range sc.Lines {
			n := NewNode(fmt.Sprintf("line:%s:%d", sc.Name, j))
			n.Label = line
			n.Font = fonts.Body
			reveal = append(reveal, n)
		}
		if i == 0 {
			hero := NewBox(TargetHero, 0, 0, Color{R: 1, G: 1, B: 1, A: 0.1})
			for _, n := range reveal {
				hero.AddChild(n)
			}
			slide.AddChild(hero)
			v.targets[TargetHero] = hero
		} else {
			for _, n := range reveal {
				slide.AddChild(n)
			}
		}
		v.reveals = append(v.reveals, reveal)
	}

	for _, pc := range cfg.Parallax.Projects {
		if pc.Slide < 0 || pc.Slide > last {
			return nil, fmt.Errorf("scene view: project slide %d out of range", pc.Slide)
		}
		for k, layer := range pc.Layers {
			img := NewBox(ImageTarget(layer), 0, 0, imagePalette[k%len(imagePalette)])
			v.slides[pc.Slide].AddChild(img)
			v.images[pc.Slide] = append(v.images[pc.Slide], img)
			v.targets[img.Name] = img
		}
	}

	v.overlay = NewNode("overlay")
	v.root.AddChild(v.overlay)
	track := NewBox("scrollbar", 0, 0, Color{R: 1, G: 1, B: 1, A: 0.15})
	v.overlay.AddChild(track)
	marker := NewBox(TargetActiveIndicator, 0, 0, ColorWhite)
	track.AddChild(marker)
	group := NewNode(TargetHitboxes)
	v.overlay.AddChild(group)
	for i := 0; i <= last; i++ {
		hb := NewNode(fmt.Sprintf("hitbox[%d]", i))
		hb.Interactable = true
		hb.UserData = i
		group.AddChild(hb)
		v.hitboxes = append(v.hitboxes, hb)
	}

	left := NewNode(TargetPageLeft)
	left.Rows = []string{"", "F"}
	middle := NewNode(TargetPageMiddle)
	middle.Rows = []string{"0", "I"}
	right := NewNode(TargetPageRight)
	for i := 0; i < last; i++ {
		right.Rows = append(right.Rows, strconv.Itoa(i+1))
	}
	right.Rows = append(right.Rows, "N")
	for _, n := range []*Node{left, middle, right} {
		n.RowHeight = cfg.Indicator.PageStep
		n.Font = fonts.Small
		v.overlay.AddChild(n)
	}

	for _, n := range []*Node{v.shapes, v.fullpage, marker, group, left, middle, right} {
		v.targets[n.Name] = n
	}

	v.Relayout(w, h)
	return v, nil
}

// Relayout positions every node for a w×h viewport. Animated translations
// are left untouched.
func (v *SceneView) Relayout(w, h float64) {
	v.width, v.height = w, h

	span := h + v.shapesTravel
	for i, s := range v.shapes.Children() {
		s.X = overlayMargin / 2
		if i%2 == 1 {
			s.X = w - overlayMargin/2 - shapeSize
		}
		s.Y = span * float64(i) / shapeCount
	}

	for i, slide := range v.slides {
		slide.X, slide.Y = 0, float64(i)*h
		slide.Width, slide.Height = w, h

		lineY := h * 0.35
		for _, n := range v.reveals[i] {
			n.X, n.Y = w*0.12, lineY
			lineY += labelHeight(n) + 6
		}
		imgs := v.images[i]
		for k, img := range imgs {
			img.Width, img.Height = w*0.22, h*0.3
			img.X = w*0.5 + float64(k)*w*0.05
			img.Y = h*0.2 + float64(k)*h*0.06
		}
	}
	if hero := v.targets[TargetHero]; hero != nil {
		hero.X, hero.Y = 0, 0
		hero.Width, hero.Height = w, h
	}

	step := h * v.markerStep / 100
	total := step * float64(len(v.slides))
	trackX := w - overlayMargin - hitboxWidth/2
	trackY := (h - total) / 2
	track := v.overlay.Children()[0]
	track.X, track.Y = trackX, trackY
	track.Width, track.Height = 2, total
	marker := v.targets[TargetActiveIndicator]
	marker.X, marker.Y = -1, 0
	marker.Width, marker.Height = 4, step

	group := v.targets[TargetHitboxes]
	group.X, group.Y = trackX-hitboxWidth/2, trackY
	group.HitShape = HitRect{Width: hitboxWidth, Height: total}
	for i, hb := range v.hitboxes {
		hb.X, hb.Y = 0, float64(i)*step
		hb.HitShape = HitRect{Width: hitboxWidth, Height: step}
	}

	baseY := h - overlayMargin - 16
	for i, name := range []string{TargetPageLeft, TargetPageMiddle, TargetPageRight} {
		n := v.targets[name]
		n.X, n.Y = w-overlayMargin-80+float64(i)*8, baseY
	}
}

// Root returns the root node of the view tree.
func (v *SceneView) Root() *Node { return v.root }

func (v *SceneView) SlideCount() int { return len(v.slides) }

func (v *SceneView) Target(name string) *Node { return v.targets[name] }

func (v *SceneView) Hitbox(i int) *Node {
	if i < 0 || i >= len(v.hitboxes) {
		return nil
	}
	return v.hitboxes[i]
}

func (v *SceneView) RevealTargets(slide int) []*Node {
	if slide < 0 || slide >= len(v.reveals) {
		return nil
	}
	return v.reveals[slide]
}

func (v *SceneView) Viewport() (w, h float64) { return v.width, v.height }
