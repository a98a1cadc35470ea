package hazard

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/milk9111/devilrun/common"
	"github.com/milk9111/devilrun/config"
)

// SwingingAxe is a blade on a chain, swinging like a pendulum around a fixed
// pivot. Collision is against the blade's AABB only; the chain is decoration.
type SwingingAxe struct {
	pivotX, pivotY float64
	length         float64
	swingRadians   float64
	speed          float64
	time           float64
	rect           common.Rect
}

func NewSwingingAxe(pivotX, pivotY, length, bladeW, bladeH, swingDegrees, speed float64) *SwingingAxe {
	a := &SwingingAxe{
		pivotX:       pivotX,
		pivotY:       pivotY,
		length:       length,
		swingRadians: swingDegrees * math.Pi / 180,
		speed:        speed,
		rect:         common.Rect{Width: bladeW, Height: bladeH},
	}
	a.Update(0, nil)
	return a
}

func (a *SwingingAxe) Update(dt float64, _ *common.Rect) {
	a.time += dt
	angle := math.Sin(a.time*a.speed) * a.swingRadians
	cx := a.pivotX + math.Sin(angle)*a.length
	cy := a.pivotY + math.Cos(angle)*a.length
	a.rect = a.rect.SetCenter(cx, cy)
}

func (a *SwingingAxe) Draw(screen *ebiten.Image, cameraX float64) {
	px := float32(a.pivotX - cameraX)
	py := float32(a.pivotY)
	bx := float32(a.rect.CenterX() - cameraX)
	by := float32(a.rect.CenterY())
	vector.StrokeLine(screen, px, py, bx, by, 4, config.Ink, false)
	vector.FillRect(screen, float32(a.rect.X-cameraX), float32(a.rect.Y), float32(a.rect.Width), float32(a.rect.Height), config.TrapColor, false)
}

func (a *SwingingAxe) Collides(r common.Rect) bool {
	return a.rect.Intersects(generousHitbox(r))
}

func (a *SwingingAxe) Rect() common.Rect { return a.rect }
