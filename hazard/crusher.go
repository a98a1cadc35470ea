package hazard

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/milk9111/devilrun/common"
	"github.com/milk9111/devilrun/config"
)

type crusherState int

const (
	crusherIdle crusherState = iota
	crusherSlamming
	crusherReturning
)

// Crusher is a ceiling block that slams down when the player walks under it,
// then grinds back up to its rest position. Unlike the other traps it hits
// with its full rect; standing at the edge of a crusher is standing under it.
type Crusher struct {
	base        common.Rect
	rect        common.Rect
	slamHeight  float64
	speed       float64
	returnSpeed float64
	state       crusherState
	targetY     float64
}

func NewCrusher(rect common.Rect, slamHeight, speed, returnSpeed float64) *Crusher {
	return &Crusher{
		base:        rect,
		rect:        rect,
		slamHeight:  slamHeight,
		speed:       speed,
		returnSpeed: returnSpeed,
		targetY:     rect.Y + slamHeight,
	}
}

func (c *Crusher) Update(dt float64, player *common.Rect) {
	switch c.state {
	case crusherIdle:
		if player != nil && math.Abs(player.CenterX()-c.rect.CenterX()) < 100 {
			c.state = crusherSlamming
		}
	case crusherSlamming:
		c.rect.Y += c.speed * dt
		if c.rect.Y >= c.targetY {
			c.rect.Y = c.targetY
			c.state = crusherReturning
		}
	case crusherReturning:
		c.rect.Y -= c.returnSpeed * dt
		if c.rect.Y <= c.base.Y {
			c.rect.Y = c.base.Y
			c.state = crusherIdle
		}
	}
}

func (c *Crusher) Draw(screen *ebiten.Image, cameraX float64) {
	x := float32(c.rect.X - cameraX)
	y := float32(c.rect.Y)
	w := float32(c.rect.Width)
	h := float32(c.rect.Height)
	vector.FillRect(screen, x, y, w, h, config.PeachDark, false)
	vector.StrokeRect(screen, x, y, w, h, 4, config.TrapColor, false)
}

func (c *Crusher) Collides(r common.Rect) bool {
	return c.rect.Intersects(r)
}

func (c *Crusher) Rect() common.Rect { return c.rect }

// Slamming reports whether the crusher is mid-slam, for tests and the
// screen-shake cue.
func (c *Crusher) Slamming() bool { return c.state == crusherSlamming }
