package hazard

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/milk9111/devilrun/common"
)

// DisappearingPlatform latches when the player enters its trigger zone. The
// level manager owns the platform rect and excises it from the solid set once
// Removed reports true; removal is permanent for the life of the attempt.
type DisappearingPlatform struct {
	trigger  common.Rect
	platform common.Rect
	removed  bool
}

func NewDisappearingPlatform(trigger, platform common.Rect) *DisappearingPlatform {
	return &DisappearingPlatform{trigger: trigger, platform: platform}
}

func (d *DisappearingPlatform) Update(_ float64, player *common.Rect) {
	if !d.removed && player != nil && player.Intersects(d.trigger) {
		d.removed = true
	}
}

// Draw is a no-op: while solid the platform is drawn by the level manager,
// and once removed there is nothing to show.
func (d *DisappearingPlatform) Draw(_ *ebiten.Image, _ float64) {}

// Collides always reports false; this hazard kills by absence, not contact.
func (d *DisappearingPlatform) Collides(common.Rect) bool { return false }

func (d *DisappearingPlatform) Removed() bool         { return d.removed }
func (d *DisappearingPlatform) Platform() common.Rect { return d.platform }
