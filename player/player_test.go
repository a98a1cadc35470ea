package player

import (
	"math"
	"testing"

	"github.com/milk9111/devilrun/common"
	"github.com/milk9111/devilrun/config"
)

const (
	dt     = 1.0 / 60.0
	length = 4000.0
)

func newAirborne() *Player {
	return New(common.Vec2{X: 500, Y: 100})
}

func groundAt(y float64) []common.Rect {
	return []common.Rect{{X: 0, Y: y, Width: length, Height: 40}}
}

// settle runs steps until the player reports grounded.
func settle(t *testing.T, p *Player, platforms []common.Rect) {
	t.Helper()
	for i := 0; i < 300; i++ {
		p.Advance(dt, platforms, length)
		if p.OnGround {
			return
		}
	}
	t.Fatalf("player never landed")
}

func TestFallSpeedPlateau(t *testing.T) {
	p := newAirborne()
	for i := 0; i < 30; i++ {
		p.Advance(dt, nil, length)
	}
	if p.Vel.Y != config.MaxFallSpeed {
		t.Fatalf("fall speed = %f, want exactly %f", p.Vel.Y, float64(config.MaxFallSpeed))
	}
}

func TestGroundJumpForce(t *testing.T) {
	p := newAirborne()
	settle(t, p, groundAt(400))
	p.RequestJump()
	if !p.Advance(dt, groundAt(400), length) {
		t.Fatalf("grounded jump did not fire")
	}
	if p.Vel.Y != config.JumpForce {
		t.Fatalf("jump velocity = %f, want %f", p.Vel.Y, float64(config.JumpForce))
	}
	if p.OnGround {
		t.Fatalf("still grounded after jump")
	}
}

func TestCoyoteJump(t *testing.T) {
	p := newAirborne()
	settle(t, p, groundAt(400))

	// Walk off the ledge: the ground vanishes, and for CoyoteTime the jump
	// still counts as grounded.
	for i := 0; i < 5; i++ {
		p.Advance(dt, nil, length)
	}
	p.RequestJump()
	p.Advance(dt, nil, length)
	if p.Vel.Y != config.JumpForce {
		t.Fatalf("coyote jump velocity = %f, want full force %f", p.Vel.Y, float64(config.JumpForce))
	}
}

func TestLateJumpIsAirJump(t *testing.T) {
	p := newAirborne()
	settle(t, p, groundAt(400))

	// Fall well past the coyote window.
	for i := 0; i < 15; i++ {
		p.Advance(dt, nil, length)
	}
	p.RequestJump()
	p.Advance(dt, nil, length)
	want := config.JumpForce * config.AirJumpFactor
	if math.Abs(p.Vel.Y-want) > 1e-12 {
		t.Fatalf("late jump velocity = %f, want air force %f", p.Vel.Y, want)
	}
}

func TestAirJumpExhaustion(t *testing.T) {
	p := newAirborne()
	settle(t, p, groundAt(400))

	// Ground jump leaves exactly one air jump.
	p.RequestJump()
	if !p.Advance(dt, groundAt(400), length) {
		t.Fatalf("ground jump did not fire")
	}
	if p.JumpsLeft() != 1 {
		t.Fatalf("jumps left after ground jump = %d, want 1", p.JumpsLeft())
	}

	for i := 0; i < 12; i++ {
		p.Advance(dt, nil, length)
	}
	p.RequestJump()
	if !p.Advance(dt, nil, length) {
		t.Fatalf("first air jump did not fire")
	}

	for i := 0; i < 12; i++ {
		p.Advance(dt, nil, length)
	}
	p.RequestJump()
	velBefore := p.Vel.Y
	if p.Advance(dt, nil, length) {
		t.Fatalf("third jump fired with no allowance")
	}
	if p.Vel.Y != velBefore+config.Gravity && p.Vel.Y != config.MaxFallSpeed {
		t.Fatalf("exhausted jump changed velocity: %f", p.Vel.Y)
	}
}

func TestJumpBufferFiresOnLanding(t *testing.T) {
	p := New(common.Vec2{X: 500, Y: 320})
	ground := groundAt(400)

	// Press jump while still falling; the press must survive until touchdown.
	p.RequestJump()
	jumped := false
	for i := 0; i < 8; i++ {
		if p.Advance(dt, ground, length) {
			jumped = true
			break
		}
	}
	if !jumped {
		t.Fatalf("buffered jump never fired")
	}
	if p.Vel.Y != config.JumpForce {
		t.Fatalf("buffered jump velocity = %f", p.Vel.Y)
	}
}

func TestJumpBufferExpires(t *testing.T) {
	p := New(common.Vec2{X: 500, Y: 0})
	ground := groundAt(600)

	p.RequestJump()
	// Spend the whole buffer in the air, then land: no jump.
	for i := 0; i < 120; i++ {
		if p.Advance(dt, ground, length) {
			t.Fatalf("stale buffered jump fired on frame %d", i)
		}
	}
	if !p.OnGround {
		t.Fatalf("player never landed")
	}
}

func TestLandingSnapsToPlatformTop(t *testing.T) {
	p := newAirborne()
	settle(t, p, groundAt(400))
	if p.Rect.Bottom() != 400 {
		t.Fatalf("bottom = %f, want 400", p.Rect.Bottom())
	}
	if p.Vel.Y != 0 {
		t.Fatalf("vertical velocity after landing = %f", p.Vel.Y)
	}
}

func TestCeilingBump(t *testing.T) {
	p := newAirborne()
	ceiling := []common.Rect{{X: 0, Y: 0, Width: length, Height: 60}}
	p.Vel.Y = config.JumpForce
	for i := 0; i < 10; i++ {
		p.Advance(dt, ceiling, length)
		if p.Vel.Y == 0 && !p.OnGround {
			break
		}
	}
	if p.Rect.Y != 60 {
		t.Fatalf("head snap y = %f, want 60", p.Rect.Y)
	}
}

func TestWallStopsHorizontalMotion(t *testing.T) {
	p := newAirborne()
	wall := []common.Rect{{X: 600, Y: 0, Width: 40, Height: 1000}}
	p.HandleInput(false, true)
	for i := 0; i < 30; i++ {
		p.HandleInput(false, true)
		p.Advance(dt, wall, length)
	}
	if p.Rect.Right() != 600 {
		t.Fatalf("right edge = %f, want flush at 600", p.Rect.Right())
	}
}

func TestWorldEdgeClamp(t *testing.T) {
	p := New(common.Vec2{X: 5, Y: 100})
	for i := 0; i < 30; i++ {
		p.HandleInput(true, false)
		p.Advance(dt, nil, length)
	}
	if p.Rect.X != 0 {
		t.Fatalf("left clamp x = %f", p.Rect.X)
	}
	for i := 0; i < 600; i++ {
		p.HandleInput(false, true)
		p.Advance(dt, nil, length)
	}
	if p.Rect.X != length-p.Rect.Width {
		t.Fatalf("right clamp x = %f, want %f", p.Rect.X, length-p.Rect.Width)
	}
}

func TestResetRestoresSpawnState(t *testing.T) {
	p := newAirborne()
	settle(t, p, groundAt(400))
	p.RequestJump()
	p.Advance(dt, groundAt(400), length)

	p.Reset()
	if p.Rect.X != 500 || p.Rect.Y != 100 {
		t.Fatalf("reset position (%f, %f)", p.Rect.X, p.Rect.Y)
	}
	if p.Vel != (common.Vec2{}) || p.OnGround {
		t.Fatalf("reset left motion state: %+v grounded=%v", p.Vel, p.OnGround)
	}
	if p.JumpsLeft() != config.MaxAirJumps {
		t.Fatalf("reset jumps = %d", p.JumpsLeft())
	}
}
