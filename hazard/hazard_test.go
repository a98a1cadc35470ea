package hazard

import (
	"math"
	"testing"

	"github.com/milk9111/devilrun/common"
	"github.com/milk9111/devilrun/config"
)

const dt = 1.0 / 60.0

func TestOscillatingFollowsSine(t *testing.T) {
	tests := []struct {
		name string
		axis Axis
	}{
		{name: "vertical", axis: AxisY},
		{name: "horizontal", axis: AxisX},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			base := common.Rect{X: 100, Y: 200, Width: 40, Height: 40}
			o := NewOscillating(base, tt.axis, 35, 2.2)
			elapsed := 0.0
			for i := 0; i < 30; i++ {
				o.Update(dt, nil)
				elapsed += dt
			}
			want := math.Sin(elapsed*2.2) * 35
			got := o.Rect()
			if tt.axis == AxisX {
				if math.Abs(got.X-(base.X+want)) > 1e-9 {
					t.Fatalf("x = %f, want %f", got.X, base.X+want)
				}
				if got.Y != base.Y {
					t.Fatalf("y drifted to %f", got.Y)
				}
			} else {
				if math.Abs(got.Y-(base.Y+want)) > 1e-9 {
					t.Fatalf("y = %f, want %f", got.Y, base.Y+want)
				}
				if got.X != base.X {
					t.Fatalf("x drifted to %f", got.X)
				}
			}
		})
	}
}

func TestGenerousHitbox(t *testing.T) {
	o := NewOscillating(common.Rect{X: 0, Y: 0, Width: 40, Height: 40}, AxisY, 0, 1)
	// Overlapping by 4px or less on a side should not register.
	graze := common.Rect{X: 37, Y: 0, Width: 40, Height: 40}
	if o.Collides(graze) {
		t.Fatalf("3px graze should not kill")
	}
	hit := common.Rect{X: 30, Y: 0, Width: 40, Height: 40}
	if !o.Collides(hit) {
		t.Fatalf("10px overlap should kill")
	}
}

func TestTriggerSpike(t *testing.T) {
	trigger := common.Rect{X: 0, Y: 0, Width: 40, Height: 40}
	spike := common.Rect{X: 100, Y: 300, Width: 40, Height: 40}
	s := NewTriggerSpike(trigger, spike, 40, 140)

	if s.Active() {
		t.Fatalf("spike armed before trigger")
	}
	if s.Rect().Y != spike.Y+40 {
		t.Fatalf("hidden y = %f, want %f", s.Rect().Y, spike.Y+40)
	}

	// Standing on the hidden spike does nothing.
	onSpike := common.Rect{X: 100, Y: 320, Width: 30, Height: 50}
	s.Update(dt, &onSpike)
	if s.Active() || s.Collides(onSpike) {
		t.Fatalf("hidden spike should be inert")
	}

	// Enter the trigger zone.
	inTrigger := common.Rect{X: 10, Y: 10, Width: 30, Height: 50}
	s.Update(dt, &inTrigger)
	if !s.Active() {
		t.Fatalf("spike did not arm on trigger overlap")
	}

	// The rise is monotonic and stops exactly at the rest position.
	prev := s.Rect().Y
	away := common.Rect{X: 900, Y: 0, Width: 30, Height: 50}
	for i := 0; i < 60; i++ {
		s.Update(dt, &away)
		y := s.Rect().Y
		if y > prev {
			t.Fatalf("spike moved back down: %f -> %f", prev, y)
		}
		prev = y
	}
	if s.Rect().Y != spike.Y {
		t.Fatalf("rest y = %f, want %f", s.Rect().Y, spike.Y)
	}
	// Armed forever, even after the player leaves.
	if !s.Active() {
		t.Fatalf("spike disarmed after player left")
	}
	if !s.Collides(common.Rect{X: 100, Y: 300, Width: 40, Height: 40}) {
		t.Fatalf("risen spike should kill")
	}
}

func TestChaserTracksWithoutOvershoot(t *testing.T) {
	c := NewChaser(0, 100, 120, 3)
	player := common.Rect{X: 50, Y: 100, Width: 30, Height: 50} // centerx = 65
	for i := 0; i < 600; i++ {
		c.Update(dt, &player)
	}
	// Lifetime expired well before 10 seconds.
	if c.Active() {
		t.Fatalf("chaser still active after lifetime")
	}
	if c.Collides(player) {
		t.Fatalf("expired chaser should not kill")
	}
}

func TestChaserConvergesOnPlayerCenter(t *testing.T) {
	c := NewChaser(0, 100, 120, 60)
	player := common.Rect{X: 50, Y: 100, Width: 30, Height: 50}
	for i := 0; i < 120; i++ {
		c.Update(dt, &player)
	}
	// 2 seconds at 120 px/s covers the 65px gap; the chaser must sit exactly
	// on the player's center, never past it.
	if got := c.Rect().CenterX(); math.Abs(got-player.CenterX()) > 1e-9 {
		t.Fatalf("chaser centerx = %f, want %f", got, player.CenterX())
	}
	if c.Rect().Y != 100 {
		t.Fatalf("chaser left its spawn height: %f", c.Rect().Y)
	}
}

func TestDisappearingPlatformLatch(t *testing.T) {
	trigger := common.Rect{X: 200, Y: 0, Width: 40, Height: 700}
	platform := common.Rect{X: 300, Y: 400, Width: 120, Height: 40}
	d := NewDisappearingPlatform(trigger, platform)

	outside := common.Rect{X: 0, Y: 0, Width: 30, Height: 50}
	d.Update(dt, &outside)
	if d.Removed() {
		t.Fatalf("removed without trigger contact")
	}

	inside := common.Rect{X: 210, Y: 100, Width: 30, Height: 50}
	d.Update(dt, &inside)
	if !d.Removed() {
		t.Fatalf("trigger contact did not remove platform")
	}

	// Latched for the rest of the attempt.
	d.Update(dt, &outside)
	if !d.Removed() {
		t.Fatalf("removal did not stick")
	}
	if d.Collides(inside) {
		t.Fatalf("disappearing platform must never kill directly")
	}
}

func TestCrusherCycle(t *testing.T) {
	base := common.Rect{X: 400, Y: 80, Width: 80, Height: 40}
	c := NewCrusher(base, 400, 600, 100)

	// Player far away: stays idle.
	far := common.Rect{X: 0, Y: 500, Width: 30, Height: 50}
	c.Update(dt, &far)
	if c.Slamming() || c.Rect().Y != base.Y {
		t.Fatalf("crusher moved with player out of range")
	}

	// Player under the block (|dx| < 100 between centers) starts the slam.
	under := common.Rect{X: 420, Y: 500, Width: 30, Height: 50}
	c.Update(dt, &under)
	if !c.Slamming() {
		t.Fatalf("crusher did not slam with player underneath")
	}

	// Slam reaches the bottom, then returns slowly to rest.
	for i := 0; i < 60; i++ {
		c.Update(dt, &far)
	}
	if c.Slamming() {
		t.Fatalf("slam should finish well inside a second")
	}
	for i := 0; i < 60*5; i++ {
		c.Update(dt, &far)
	}
	if got := c.Rect().Y; got != base.Y {
		t.Fatalf("crusher rest y = %f, want %f", got, base.Y)
	}
}

func TestCrusherUsesFullRect(t *testing.T) {
	c := NewCrusher(common.Rect{X: 0, Y: 0, Width: 80, Height: 40}, 400, 600, 100)
	// A 2px edge overlap kills: no generous shrink for crushers.
	graze := common.Rect{X: 78, Y: 0, Width: 30, Height: 50}
	if !c.Collides(graze) {
		t.Fatalf("crusher edge graze should kill")
	}
}

func TestChaserRectIsTileSized(t *testing.T) {
	c := NewChaser(100, 200, 120, 3)
	r := c.Rect()
	if r.Width != config.TileSize || r.Height != config.TileSize {
		t.Fatalf("chaser rect %fx%f, want %dx%d", r.Width, r.Height, config.TileSize, config.TileSize)
	}
	// Spawn position is the top-center of the rect.
	if r.CenterX() != 100 || r.Y != 200 {
		t.Fatalf("chaser spawn rect misplaced: %+v", r)
	}
}
