package hazard

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/milk9111/devilrun/common"
	"github.com/milk9111/devilrun/config"
)

// Chaser is a drone that drifts toward the player's horizontal center for a
// limited lifetime, then shuts down for good. It never overshoots the target
// and never leaves its spawn height.
type Chaser struct {
	posX, posY float64
	speed      float64
	maxTime    float64
	timer      float64
	active     bool
	rect       common.Rect
}

func NewChaser(spawnX, spawnY, speed, maxTime float64) *Chaser {
	c := &Chaser{
		posX:    spawnX,
		posY:    spawnY,
		speed:   speed,
		maxTime: maxTime,
		timer:   maxTime,
		active:  true,
		rect:    common.Rect{Width: config.TileSize, Height: config.TileSize},
	}
	c.rect.X = c.posX - c.rect.Width/2
	c.rect.Y = c.posY
	return c
}

func (c *Chaser) Update(dt float64, player *common.Rect) {
	if !c.active {
		return
	}
	c.timer -= dt
	if c.timer <= 0 {
		c.active = false
		return
	}
	if player == nil {
		return
	}
	dx := player.CenterX() - c.posX
	step := c.speed * dt
	if dx > 0 {
		c.posX += math.Min(dx, step)
	} else if dx < 0 {
		c.posX += math.Max(dx, -step)
	}
	c.rect.X = c.posX - c.rect.Width/2
	c.rect.Y = c.posY
}

func (c *Chaser) Draw(screen *ebiten.Image, cameraX float64) {
	if !c.active {
		return
	}
	// Pulse shrinks as the lifetime runs out.
	radius := config.TileSize * 0.4 * (0.5 + c.timer/c.maxTime)
	vector.FillCircle(screen, float32(c.rect.CenterX()-cameraX), float32(c.rect.CenterY()), float32(radius), config.TrapColor, false)
}

func (c *Chaser) Collides(r common.Rect) bool {
	return c.active && c.rect.Intersects(generousHitbox(r))
}

func (c *Chaser) Active() bool      { return c.active }
func (c *Chaser) Rect() common.Rect { return c.rect }
