package hazard

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/milk9111/devilrun/common"
	"github.com/milk9111/devilrun/config"
)

// TriggerSpike stays sunk below its resting position until the player enters
// an invisible trigger zone, then rises toward the resting position and stays
// armed forever. It only kills once armed.
type TriggerSpike struct {
	trigger   common.Rect
	rect      common.Rect
	targetY   float64
	riseSpeed float64
	active    bool
}

func NewTriggerSpike(trigger, spike common.Rect, risePixels, riseSpeed float64) *TriggerSpike {
	t := &TriggerSpike{
		trigger:   trigger,
		rect:      spike,
		targetY:   spike.Y,
		riseSpeed: riseSpeed,
	}
	t.rect.Y += risePixels
	return t
}

func (t *TriggerSpike) Update(dt float64, player *common.Rect) {
	if !t.active && player != nil && player.Intersects(t.trigger) {
		t.active = true
	}
	if t.active && t.rect.Y > t.targetY {
		t.rect.Y -= t.riseSpeed * dt
		if t.rect.Y < t.targetY {
			t.rect.Y = t.targetY
		}
	}
}

func (t *TriggerSpike) Draw(screen *ebiten.Image, cameraX float64) {
	vector.FillRect(screen, float32(t.rect.X-cameraX), float32(t.rect.Y), float32(t.rect.Width), float32(t.rect.Height), config.TrapColor, false)
}

func (t *TriggerSpike) Collides(r common.Rect) bool {
	return t.active && t.rect.Intersects(generousHitbox(r))
}

func (t *TriggerSpike) Active() bool      { return t.active }
func (t *TriggerSpike) Rect() common.Rect { return t.rect }
