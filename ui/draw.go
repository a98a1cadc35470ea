package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/milk9111/devilrun/common"
)

func drawCentered(screen *ebiten.Image, s string, f text.Face, cx, y float32, col color.RGBA) {
	if s == "" {
		return
	}
	w, h := text.Measure(s, f, 0)
	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(cx)-w/2, float64(y)-h/2)
	op.ColorScale.ScaleWithColor(col)
	text.Draw(screen, s, f, op)
}

func drawAt(screen *ebiten.Image, s string, f text.Face, x, y float32, col color.RGBA) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(x), float64(y))
	op.ColorScale.ScaleWithColor(col)
	text.Draw(screen, s, f, op)
}

// button is a clickable rect driven by plain cursor hit-testing. The menu
// screens draw the world themselves, so they use these instead of widgets.
type button struct {
	rect  common.Rect
	label string
	bg    color.RGBA
	fg    color.RGBA
}

func (b button) hit(x, y int) bool {
	fx, fy := float64(x), float64(y)
	return fx >= b.rect.X && fx < b.rect.Right() && fy >= b.rect.Y && fy < b.rect.Bottom()
}

func (b button) draw(screen *ebiten.Image, f text.Face) {
	vector.FillRect(screen, float32(b.rect.X), float32(b.rect.Y), float32(b.rect.Width), float32(b.rect.Height), b.bg, false)
	drawCentered(screen, b.label, f, float32(b.rect.CenterX()), float32(b.rect.CenterY()), b.fg)
}
