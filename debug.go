package deck

import (
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// debugStats holds per-frame timing and command metrics.
// Only reported when the deck is in debug mode.
type debugStats struct {
	traverseTime time.Duration
	submitTime   time.Duration
	commandCount int
}

// debugText formats the overlay shown in debug mode.
func (d *Deck) debugText(stats debugStats) string {
	state := "idle"
	if d.ctrl.Locked() {
		state = "locked"
	}
	if d.resize.Pending() {
		state += " resize-pending"
	}
	return fmt.Sprintf("FPS: %.1f  TPS: %.1f\nslide %d/%d  indicator %d  %s\ntweens %d  commands %d\ntraverse %v  submit %v",
		ebiten.ActualFPS(), ebiten.ActualTPS(),
		d.ctrl.Current(), d.ctrl.Last(), d.ctrl.Indicator().Shown(), state,
		d.tweens.Len(), stats.commandCount,
		stats.traverseTime, stats.submitTime)
}

// drawDebug prints the overlay in the top-left corner.
func (d *Deck) drawDebug(screen *ebiten.Image, stats debugStats) {
	ebitenutil.DebugPrint(screen, d.debugText(stats))
}
