package obj

import (
	"image/color"
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/milk9111/devilrun/common"
)

// Particle is a short-lived circle for death bursts and goal confetti. It
// shrinks as its life runs out.
type Particle struct {
	Pos     common.Vec2
	Vel     common.Vec2
	Color   color.RGBA
	Life    float64
	maxLife float64
}

func NewParticle(pos, vel common.Vec2, col color.RGBA, life float64) *Particle {
	return &Particle{Pos: pos, Vel: vel, Color: col, Life: life, maxLife: life}
}

// Update advances the particle and reports whether it is still alive.
func (p *Particle) Update(dt float64) bool {
	p.Pos.X += p.Vel.X * dt
	p.Pos.Y += p.Vel.Y * dt
	p.Life -= dt
	return p.Life > 0
}

func (p *Particle) Draw(screen *ebiten.Image, cameraX float64) {
	frac := p.Life / p.maxLife
	radius := 4 * frac
	if radius < 1 {
		radius = 1
	}
	vector.FillCircle(screen, float32(p.Pos.X-cameraX), float32(p.Pos.Y), float32(radius), p.Color, false)
}

// Burst spawns count particles scattering from pos, tuned for death splats.
func Burst(pos common.Vec2, count int, col color.RGBA) []*Particle {
	out := make([]*Particle, 0, count)
	for i := 0; i < count; i++ {
		vel := common.Vec2{
			X: -100 + rand.Float64()*200,
			Y: -200 + rand.Float64()*250,
		}
		life := 0.5 + rand.Float64()*0.7
		out = append(out, NewParticle(pos, vel, col, life))
	}
	return out
}
