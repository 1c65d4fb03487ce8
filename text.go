package deck

import (
	"bytes"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

// Font wraps Ebitengine's text/v2 for TrueType label rendering.
type Font struct {
	face *text.GoTextFace
	size float64
	lh   float64 // cached line height
}

// LoadFont loads a TrueType font from raw TTF/OTF data at the given size.
func LoadFont(ttfData []byte, size float64) (*Font, error) {
	source, err := text.NewGoTextFaceSource(bytes.NewReader(ttfData))
	if err != nil {
		return nil, fmt.Errorf("deck: failed to parse TTF data: %w", err)
	}
	face := &text.GoTextFace{Source: source, Size: size}
	m := face.Metrics()
	return &Font{face: face, size: size, lh: m.HAscent + m.HDescent + m.HLineGap}, nil
}

// MeasureString returns the width and height of the rendered text.
func (f *Font) MeasureString(s string) (width, height float64) {
	return text.Measure(s, f.face, f.lh)
}

// LineHeight returns the vertical distance between baselines.
func (f *Font) LineHeight() float64 {
	return f.lh
}

// Fonts groups the faces the scene view assigns to its labels.
type Fonts struct {
	Title *Font
	Body  *Font
	Small *Font
}

// DefaultFonts loads the Go font family at the sizes the scene view uses.
func DefaultFonts() (Fonts, error) {
	title, err := LoadFont(gobold.TTF, 34)
	if err != nil {
		return Fonts{}, err
	}
	body, err := LoadFont(goregular.TTF, 18)
	if err != nil {
		return Fonts{}, err
	}
	small, err := LoadFont(goregular.TTF, 12)
	if err != nil {
		return Fonts{}, err
	}
	return Fonts{Title: title, Body: body, Small: small}, nil
}

// labelHeight is the vertical space a label occupies in a column of text.
func labelHeight(n *Node) float64 {
	if n.Font != nil {
		return n.Font.LineHeight()
	}
	return debugLineHeight
}

// debugLineHeight is the glyph height of ebitenutil's debug font.
const debugLineHeight = 16

// drawTextCommand draws a text command, falling back to the debug font
// when it has no Font.
func drawTextCommand(screen *ebiten.Image, cmd *RenderCommand) {
	if cmd.Font == nil {
		ebitenutil.DebugPrintAt(screen, cmd.Text, int(cmd.X), int(cmd.Y))
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(cmd.X, cmd.Y)
	a := float32(cmd.Color.A)
	op.ColorScale.Scale(float32(cmd.Color.R)*a, float32(cmd.Color.G)*a, float32(cmd.Color.B)*a, a)
	op.LineSpacing = cmd.Font.lh
	text.Draw(screen, cmd.Text, cmd.Font.face, op)
}
