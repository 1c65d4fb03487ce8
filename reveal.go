package deck

import "github.com/tanema/gween/ease"

// reveal raises the text elements of a slide into place. It runs on its own
// timeline so the transition lock does not wait for the stagger.
func reveal(engine AnimationEngine, view ViewAdapter, cfg RevealConfig, slide int) Timeline {
	nodes := view.RevealTargets(slide)
	if len(nodes) == 0 {
		return nil
	}
	tl := engine.NewTimeline()
	for i, n := range nodes {
		// Each element starts one stagger after the previous one.
		delay := cfg.Stagger
		if i == 0 {
			delay = cfg.Delay
		}
		tl.FromTo(n, PropTranslateY, cfg.Offset, 0, Tween{
			Duration: cfg.Duration,
			Delay:    delay,
			Ease:     ease.OutQuad,
		})
	}
	return tl
}
