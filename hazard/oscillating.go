package hazard

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/milk9111/devilrun/common"
	"github.com/milk9111/devilrun/config"
)

// Axis selects which coordinate an Oscillating hazard sweeps.
type Axis int

const (
	AxisY Axis = iota
	AxisX
)

// Oscillating is a block riding a sine wave around its base position. Levels
// use it for sliding walls and bobbing crush blocks.
type Oscillating struct {
	base      common.Rect
	rect      common.Rect
	axis      Axis
	amplitude float64
	speed     float64
	timer     float64
}

func NewOscillating(rect common.Rect, axis Axis, amplitude, speed float64) *Oscillating {
	return &Oscillating{
		base:      rect,
		rect:      rect,
		axis:      axis,
		amplitude: amplitude,
		speed:     speed,
	}
}

func (o *Oscillating) Update(dt float64, _ *common.Rect) {
	o.timer += dt
	offset := math.Sin(o.timer*o.speed) * o.amplitude
	if o.axis == AxisX {
		o.rect.X = o.base.X + offset
	} else {
		o.rect.Y = o.base.Y + offset
	}
}

func (o *Oscillating) Draw(screen *ebiten.Image, cameraX float64) {
	vector.FillRect(screen, float32(o.rect.X-cameraX), float32(o.rect.Y), float32(o.rect.Width), float32(o.rect.Height), config.TrapColor, false)
}

func (o *Oscillating) Collides(r common.Rect) bool {
	return o.rect.Intersects(generousHitbox(r))
}

// Rect exposes the current position for tests and debug overlays.
func (o *Oscillating) Rect() common.Rect { return o.rect }
