package config

import "image/color"

// Display.
const (
	ScreenWidth  = 960
	ScreenHeight = 700
	TileSize     = 40
	TPS          = 60
)

// Physics, tuned for jump feel at 60 TPS. Gravity and speeds are in pixels
// per frame; timers are in seconds.
const (
	PlayerSpeed    = 8.0
	JumpForce      = -22.0
	Gravity        = 0.8
	MaxFallSpeed   = 14.0
	CoyoteTime     = 0.15
	JumpBufferTime = 0.15
	AirJumpFactor  = 0.85
	MaxAirJumps    = 2
)

// Camera.
const (
	CameraLookahead = 0.35 // fraction of viewport kept ahead of the player
	CameraSmoothing = 0.12
)

// Levels. A level is at least this many screens wide; the world-bottom kill
// line sits this far below the visible area.
const (
	LevelScrollScreens  = 4
	WorldBottomMargin   = 200
	GoalDetectionMargin = 25
)

// Progression.
const (
	TotalLevels     = 12 // plus the boss stage
	BossUnlockStars = 22
	MaxToxicityTier = 4
	MaxAttempts     = 20 // past this the narrator gives up on dialogue
	DialogueLockMS  = 2500
)

// Palette. Dark peach-and-brown theme with a loud green goal.
var (
	Ink        = color.RGBA{R: 15, G: 10, B: 12, A: 255}
	PeachDark  = color.RGBA{R: 60, G: 35, B: 20, A: 255}
	PeachMed   = color.RGBA{R: 95, G: 55, B: 35, A: 255}
	PeachLight = color.RGBA{R: 30, G: 18, B: 12, A: 255}
	AccentRed  = color.RGBA{R: 150, G: 85, B: 50, A: 255}
	Gold       = color.RGBA{R: 255, G: 215, B: 0, A: 255}
	White      = color.RGBA{R: 240, G: 240, B: 240, A: 255}
	GoalGreen  = color.RGBA{R: 0, G: 255, B: 0, A: 255}
)

// Role colors, aliased so call sites read by intent.
var (
	BackgroundColor = PeachLight
	PlatformColor   = PeachDark
	GoalColor       = GoalGreen
	PlayerColor     = White
	TrapColor       = AccentRed
	HUDTextColor    = White
	UIBorderColor   = Ink
)

// Rank is a title a runner earns (or suffers) at a star threshold.
type Rank struct {
	Stars int
	Name  string
}

// Ranks in ascending threshold order; RankFor picks the highest one reached.
var Ranks = []Rank{
	{0, "Noob (Pure Shame)"},
	{5, "Amateur (Just Stop)"},
	{10, "Rookie (Barely Competent)"},
	{15, "Veteran (Moderately Hated)"},
	{22, "Elite (Toxic Master)"},
	{28, "GOD (The Narrator's Equal)"},
}

// RankFor returns the highest rank whose threshold totalStars meets.
func RankFor(totalStars int) Rank {
	best := Ranks[0]
	for _, r := range Ranks {
		if totalStars >= r.Stars {
			best = r
		}
	}
	return best
}
