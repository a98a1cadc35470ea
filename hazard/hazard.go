// Package hazard implements the trap primitives placed by level blueprints.
// Every hazard advances on a fixed dt and reports lethal overlap against the
// player's rect; levels own placement and ordering.
package hazard

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/milk9111/devilrun/common"
)

// Hazard is anything a level can place that moves on its own and can kill
// the player on contact. Update receives the player's current rect so traps
// can react to position; it may be nil before the player has spawned.
type Hazard interface {
	Update(dt float64, player *common.Rect)
	Draw(screen *ebiten.Image, cameraX float64)
	Collides(r common.Rect) bool
}

// generousHitbox insets the player's rect so near misses stay misses. The
// crusher skips this on purpose; everything else uses it.
func generousHitbox(r common.Rect) common.Rect {
	return r.Shrink(4)
}
