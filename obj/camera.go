package obj

import (
	"github.com/milk9111/devilrun/common"
	"github.com/milk9111/devilrun/config"
)

// Camera scrolls horizontally, keeping the player at a fixed fraction of the
// viewport. Vertical scrolling is never needed; levels fit the screen height.
type Camera struct {
	X float64

	viewport    float64
	levelLength float64
	smooth      float64
	lookahead   float64
}

func NewCamera(viewport float64) *Camera {
	return &Camera{
		viewport:  viewport,
		smooth:    config.CameraSmoothing,
		lookahead: config.CameraLookahead,
	}
}

// SetLevelLength fixes the right scroll bound for the loaded level.
func (c *Camera) SetLevelLength(length float64) {
	c.levelLength = length
}

// SetViewport updates the logical screen width, for fullscreen toggles.
func (c *Camera) SetViewport(w float64) {
	if w > 0 {
		c.viewport = w
	}
}

// Reset snaps the camera back to the level start.
func (c *Camera) Reset() {
	c.X = 0
}

// Update eases toward the player with lookahead and clamps to the level.
// Call once per fixed-rate tick so the smoothing stays consistent.
func (c *Camera) Update(playerCenterX float64) {
	target := playerCenterX - c.viewport*c.lookahead
	c.X += (target - c.X) * c.smooth

	maxScroll := c.levelLength - c.viewport
	if maxScroll < 0 {
		maxScroll = 0
	}
	c.X = common.Clamp(c.X, 0, maxScroll)
}
