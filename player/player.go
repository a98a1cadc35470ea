// Package player implements the runner: input, jump staging, gravity, and
// axis-separated collision against the level's solid platforms.
package player

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/milk9111/devilrun/common"
	"github.com/milk9111/devilrun/config"
)

// Player carries all per-attempt movement state. Reset puts everything back
// to the spawn point; the level manager owns where that is.
type Player struct {
	spawn common.Vec2

	Rect        common.Rect
	Vel         common.Vec2
	OnGround    bool
	FacingRight bool

	coyoteTimer     float64
	jumpBufferTimer float64
	jumpsLeft       int

	walkTimer   float64
	breathTimer float64
	moving      bool
}

func New(spawn common.Vec2) *Player {
	p := &Player{
		spawn: spawn,
		Rect: common.Rect{
			X:      spawn.X,
			Y:      spawn.Y,
			Width:  config.TileSize,
			Height: config.TileSize * 1.5,
		},
		FacingRight: true,
	}
	p.Reset()
	return p
}

// Reset moves the player back to spawn with cleared velocity, timers, and a
// full jump allowance.
func (p *Player) Reset() {
	p.Rect.X = p.spawn.X
	p.Rect.Y = p.spawn.Y
	p.Vel = common.Vec2{}
	p.OnGround = false
	p.coyoteTimer = 0
	p.jumpBufferTimer = 0
	p.jumpsLeft = config.MaxAirJumps
}

// SetSpawn repoints the spawn and resets immediately. Called on level load.
func (p *Player) SetSpawn(spawn common.Vec2) {
	p.spawn = spawn
	p.Reset()
}

// HandleInput reads the held movement keys. Jumping is edge-triggered and
// goes through RequestJump instead.
func (p *Player) HandleInput(left, right bool) {
	p.Vel.X = 0
	p.moving = false
	if left {
		p.Vel.X = -config.PlayerSpeed
		p.FacingRight = false
		p.moving = true
	}
	if right {
		p.Vel.X = config.PlayerSpeed
		p.FacingRight = true
		p.moving = true
	}
}

// RequestJump arms the jump buffer. The buffered press survives for
// JumpBufferTime and fires on the first frame a jump becomes legal.
func (p *Player) RequestJump() {
	p.jumpBufferTimer = config.JumpBufferTime
}

// JumpsLeft reports the remaining air jumps, for the HUD.
func (p *Player) JumpsLeft() int { return p.jumpsLeft }

// Advance runs one fixed physics step: timers, gravity, x move and resolve,
// x clamp to the level, y move and resolve, coyote refresh, then the
// buffered-jump consumption. Returns true when a jump actually fired this
// frame so the caller can play the sound.
func (p *Player) Advance(dt float64, platforms []common.Rect, levelLength float64) bool {
	wasOnGround := p.OnGround
	p.jumpBufferTimer = math.Max(0, p.jumpBufferTimer-dt)
	p.coyoteTimer = math.Max(0, p.coyoteTimer-dt)

	p.Vel.Y += config.Gravity
	p.Vel.Y = math.Min(p.Vel.Y, config.MaxFallSpeed)

	p.Rect.X += p.Vel.X
	p.resolveX(platforms)
	p.Rect.X = common.Clamp(p.Rect.X, 0, levelLength-p.Rect.Width)

	p.Rect.Y += p.Vel.Y
	p.OnGround = false
	p.resolveY(platforms)

	if p.OnGround {
		p.jumpsLeft = config.MaxAirJumps
		p.coyoteTimer = config.CoyoteTime
	} else if wasOnGround {
		p.coyoteTimer = config.CoyoteTime
	}

	p.breathTimer += dt * 4
	if p.moving {
		p.walkTimer += dt * 14
	}

	return p.consumeBufferedJump()
}

// consumeBufferedJump fires a pending jump if one is legal. Ground and
// coyote jumps spend the full force and leave one air jump; air jumps are
// weaker and burn the remaining allowance.
func (p *Player) consumeBufferedJump() bool {
	if p.jumpBufferTimer <= 0 {
		return false
	}
	if p.OnGround || p.coyoteTimer > 0 {
		p.Vel.Y = config.JumpForce
		p.OnGround = false
		p.jumpBufferTimer = 0
		p.coyoteTimer = 0
		p.jumpsLeft = 1
		return true
	}
	if p.jumpsLeft > 0 {
		p.Vel.Y = config.JumpForce * config.AirJumpFactor
		p.jumpBufferTimer = 0
		p.jumpsLeft--
		return true
	}
	return false
}

func (p *Player) resolveX(platforms []common.Rect) {
	for _, plat := range platforms {
		if !p.Rect.Intersects(plat) {
			continue
		}
		if p.Vel.X > 0 {
			p.Rect.X = plat.X - p.Rect.Width
		} else if p.Vel.X < 0 {
			p.Rect.X = plat.Right()
		}
		p.Vel.X = 0
	}
}

func (p *Player) resolveY(platforms []common.Rect) {
	for _, plat := range platforms {
		if !p.Rect.Intersects(plat) {
			continue
		}
		if p.Vel.Y > 0 {
			p.Rect.Y = plat.Y - p.Rect.Height
			p.Vel.Y = 0
			p.OnGround = true
		} else if p.Vel.Y < 0 {
			p.Rect.Y = plat.Bottom()
			p.Vel.Y = 0
		}
	}
}

// Draw renders the procedural runner: legs, torso, head, and a trailing arm,
// with a little walk swing and idle breathing.
func (p *Player) Draw(screen *ebiten.Image, cameraX float64) {
	x := float32(p.Rect.X - cameraX)
	y := float32(p.Rect.Y)
	w := float32(p.Rect.Width)
	h := float32(p.Rect.Height)

	clothes := config.PlayerColor
	skin := config.PeachMed
	breathe := float32(math.Sin(p.breathTimer)) * 2
	legSwing := float32(0)
	armSwing := breathe
	if p.moving {
		legSwing = float32(math.Sin(p.walkTimer)) * 12
		armSwing = -float32(math.Sin(p.walkTimer)) * 10
	}

	legTop := y + h*0.7
	vector.StrokeLine(screen, x+w/4, legTop, x+w/4+legSwing, y+h, 6, clothes, false)
	vector.StrokeLine(screen, x+3*w/4, legTop, x+3*w/4-legSwing, y+h, 6, clothes, false)

	vector.FillRect(screen, x+w/4, y+h/3+breathe, w/2, h/2, clothes, false)

	headR := w * 0.4
	headX := x + w/2
	headY := y + h/5 + breathe
	vector.FillCircle(screen, headX, headY, headR, skin, false)

	eyeOffset := float32(6)
	pupilShift := float32(1)
	if !p.FacingRight {
		eyeOffset = -6
		pupilShift = -1
	}
	vector.FillCircle(screen, headX+eyeOffset, headY-2, 3, config.White, false)
	vector.FillCircle(screen, headX+eyeOffset+pupilShift, headY-2, 1, config.Ink, false)

	armX := headX + 15 + armSwing
	if !p.FacingRight {
		armX = headX - 15 - armSwing
	}
	vector.StrokeLine(screen, headX, y+h/3+5, armX, y+h/2+5, 4, clothes, false)
}
