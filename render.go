package deck

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// CommandType identifies the kind of render command.
type CommandType uint8

const (
	CommandRect CommandType = iota // solid box
	CommandText                    // label or ticker row
)

// RenderCommand is a single draw instruction emitted during tree traversal.
type RenderCommand struct {
	Type          CommandType
	X, Y          float64
	Width, Height float64
	Color         Color // alpha already multiplied by the node's world alpha
	Text          string
	Font          *Font
}

var backgroundColor = Color{R: 0.07, G: 0.07, B: 0.09, A: 1}

// whitePixel is the 1x1 source image for every rect, created on first draw.
var whitePixel *ebiten.Image

func ensureWhitePixel() *ebiten.Image {
	if whitePixel == nil {
		whitePixel = ebiten.NewImage(1, 1)
		whitePixel.Fill(ColorWhite.toRGBA())
	}
	return whitePixel
}

// traverse walks the tree depth-first and appends commands for visible
// nodes. Children are always drawn after their parent.
func traverse(n *Node, w, h float64, buf []RenderCommand) []RenderCommand {
	if !n.Visible {
		return buf
	}
	x, y := n.WorldPosition()
	alpha := n.WorldAlpha()

	if n.Width > 0 && n.Height > 0 && n.Color.A > 0 && overlaps(x, y, n.Width, n.Height, w, h) {
		c := n.Color
		c.A *= alpha
		buf = append(buf, RenderCommand{Type: CommandRect, X: x, Y: y, Width: n.Width, Height: n.Height, Color: c})
	}
	if n.Label != "" || len(n.Rows) > 0 {
		tc := n.TextColor
		tc.A *= alpha
		cmd := RenderCommand{Type: CommandText, X: x, Y: y, Color: tc, Text: n.Label, Font: n.Font}
		if len(n.Rows) > 0 {
			// A ticker draws at its layout position; TranslateY selects the row.
			cmd.Y -= n.TranslateY
			cmd.Text = n.Rows[n.visibleRow()]
		}
		if overlaps(cmd.X, cmd.Y, 1, labelHeight(n), w, h) {
			buf = append(buf, cmd)
		}
	}

	for _, child := range n.children {
		buf = traverse(child, w, h, buf)
	}
	return buf
}

// overlaps culls rects entirely outside the w×h viewport.
func overlaps(x, y, rw, rh, w, h float64) bool {
	return x+rw > 0 && y+rh > 0 && x < w && y < h
}

// Draw renders the deck. Called by Ebitengine once per frame.
func (d *Deck) Draw(screen *ebiten.Image) {
	var stats debugStats
	t0 := time.Now()

	screen.Fill(backgroundColor.toRGBA())
	w, h := d.view.Viewport()
	d.commands = traverse(d.view.Root(), w, h, d.commands[:0])
	stats.traverseTime = time.Since(t0)

	t1 := time.Now()
	submit(screen, d.commands)
	stats.submitTime = time.Since(t1)
	stats.commandCount = len(d.commands)

	if d.debug {
		d.drawDebug(screen, stats)
	}
}

// submit issues the draw calls for cmds in order.
func submit(screen *ebiten.Image, cmds []RenderCommand) {
	px := ensureWhitePixel()
	var op ebiten.DrawImageOptions
	for i := range cmds {
		cmd := &cmds[i]
		switch cmd.Type {
		case CommandRect:
			op.GeoM.Reset()
			op.GeoM.Scale(cmd.Width, cmd.Height)
			op.GeoM.Translate(cmd.X, cmd.Y)
			op.ColorScale.Reset()
			a := float32(cmd.Color.A)
			op.ColorScale.Scale(float32(cmd.Color.R)*a, float32(cmd.Color.G)*a, float32(cmd.Color.B)*a, a)
			screen.DrawImage(px, &op)
		case CommandText:
			drawTextCommand(screen, cmd)
		}
	}
}
