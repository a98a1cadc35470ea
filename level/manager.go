// Package level turns blueprints into live levels: solid geometry, trap
// instances, attempt tracking, and the star rating for a finished run.
package level

import (
	"fmt"
	"image/color"
	"log"
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/milk9111/devilrun/common"
	"github.com/milk9111/devilrun/config"
	"github.com/milk9111/devilrun/hazard"
)

// DeathLogger records where a run ended. The store satisfies it; tests hand
// in fakes.
type DeathLogger interface {
	LogDeath(levelID, x, y int) error
}

type decorKind int

const (
	decorGrass decorKind = iota
	decorStone
	decorTree
)

type decoration struct {
	kind  decorKind
	x, y  float64
	size  float64
	color [3]uint8
}

// Manager owns the currently loaded level. Load rebuilds every list from the
// blueprint, so death-and-retry is just another Load.
type Manager struct {
	index    int
	id       int
	attempts int

	Spawn       common.Vec2
	Goal        common.Rect
	Platforms   []common.Rect
	StaticTraps []common.Rect
	Length      float64

	Oscillators  []*hazard.Oscillating
	Triggers     []*hazard.TriggerSpike
	Axes         []*hazard.SwingingAxe
	Chasers      []*hazard.Chaser
	Disappearing []*hazard.DisappearingPlatform
	Crushers     []*hazard.Crusher

	decorations []decoration

	Deaths DeathLogger
}

// NewManager loads the level with the given 1-based id; out-of-range ids wrap
// around the blueprint table.
func NewManager(levelID int) *Manager {
	m := &Manager{}
	idx := levelID - 1
	if idx < 0 {
		idx = 0
	}
	m.Load(idx)
	return m
}

// Load rebuilds the manager from the blueprint at index (modulo the table
// length), resetting every hazard to its initial state.
func (m *Manager) Load(index int) {
	m.index = ((index % len(Blueprints)) + len(Blueprints)) % len(Blueprints)
	bp := Blueprints[m.index]
	m.id = bp.ID
	m.Spawn = bp.Spawn
	m.Goal = bp.Goal

	m.Platforms = append([]common.Rect(nil), bp.Platforms...)
	m.StaticTraps = append([]common.Rect(nil), bp.StaticTraps...)

	m.Length = MinLength
	if right := m.Goal.Right() + config.TileSize; right > m.Length {
		m.Length = right
	}

	// Disappearing platforms first: their targets join the solid list until
	// triggered.
	m.Disappearing = m.Disappearing[:0]
	for _, d := range bp.Disappear {
		m.Disappearing = append(m.Disappearing, hazard.NewDisappearingPlatform(d.Trigger, d.Platform))
		if !containsRect(m.Platforms, d.Platform) {
			m.Platforms = append(m.Platforms, d.Platform)
		}
	}

	m.Oscillators = m.Oscillators[:0]
	for _, o := range bp.Oscillators {
		m.Oscillators = append(m.Oscillators, hazard.NewOscillating(o.Rect, o.Axis, o.Amplitude, o.Speed))
	}
	m.Triggers = m.Triggers[:0]
	for _, t := range bp.Triggers {
		m.Triggers = append(m.Triggers, hazard.NewTriggerSpike(t.Trigger, t.Spike, 40, 140))
	}
	m.Axes = m.Axes[:0]
	for _, a := range bp.Axes {
		length := a.Length
		if length == 0 {
			length = 130
		}
		swing := a.SwingDegrees
		if swing == 0 {
			swing = 45
		}
		speed := a.Speed
		if speed == 0 {
			speed = 1.8
		}
		m.Axes = append(m.Axes, hazard.NewSwingingAxe(a.Pivot.X, a.Pivot.Y, length, 30, 60, swing, speed))
	}
	m.Chasers = m.Chasers[:0]
	for _, c := range bp.Chasers {
		m.Chasers = append(m.Chasers, hazard.NewChaser(c.Spawn.X, c.Spawn.Y, c.Speed, c.MaxTime))
	}
	m.Crushers = m.Crushers[:0]
	for _, c := range bp.Crushers {
		slam := c.SlamHeight
		if slam == 0 {
			slam = 400
		}
		m.Crushers = append(m.Crushers, hazard.NewCrusher(c.Rect, slam, 600, 100))
	}

	m.buildDecorations(bp)
}

// Reload restarts the current level from scratch.
func (m *Manager) Reload() {
	m.Load(m.index)
}

// buildDecorations scatters grass, stones, and trees on top of the level's
// platforms. Seeded by level id so a retry looks like the same place.
func (m *Manager) buildDecorations(bp Blueprint) {
	rng := rand.New(rand.NewSource(int64(bp.ID)))
	m.decorations = m.decorations[:0]
	for _, plat := range bp.Platforms {
		n := int(plat.Width) / 60
		for i := 0; i < n; i++ {
			dx := float64(rng.Intn(int(plat.Width) - 10))
			d := decoration{x: plat.X + dx, y: plat.Y}
			switch rng.Intn(3) {
			case 0:
				d.kind = decorGrass
				d.color = [3]uint8{0, uint8(100 + rng.Intn(101)), 50}
				d.size = float64(5 + rng.Intn(8))
			case 1:
				d.kind = decorStone
				c := uint8(80 + rng.Intn(41))
				d.color = [3]uint8{c, c, c}
				d.size = float64(5 + rng.Intn(8))
			default:
				d.kind = decorTree
				d.color = [3]uint8{uint8(20 + rng.Intn(41)), uint8(80 + rng.Intn(61)), 20}
				d.size = float64(40 + rng.Intn(41))
			}
			m.decorations = append(m.decorations, d)
		}
	}
}

func containsRect(rects []common.Rect, r common.Rect) bool {
	for _, x := range rects {
		if x == r {
			return true
		}
	}
	return false
}

// UpdateHazards steps every trap. Disappearing platforms go last so a
// platform removed this frame stops being solid before the next physics
// step.
func (m *Manager) UpdateHazards(dt float64, player *common.Rect) {
	for _, o := range m.Oscillators {
		o.Update(dt, player)
	}
	for _, t := range m.Triggers {
		t.Update(dt, player)
	}
	for _, a := range m.Axes {
		a.Update(dt, player)
	}
	for _, c := range m.Chasers {
		c.Update(dt, player)
	}
	for _, c := range m.Crushers {
		c.Update(dt, player)
	}
	for _, d := range m.Disappearing {
		d.Update(dt, player)
		if d.Removed() {
			m.removePlatform(d.Platform())
		}
	}
}

func (m *Manager) removePlatform(r common.Rect) {
	for i, p := range m.Platforms {
		if p == r {
			m.Platforms = append(m.Platforms[:i], m.Platforms[i+1:]...)
			return
		}
	}
}

// CheckHazardCollision reports whether rect touches anything lethal. First
// hit wins; callers only care that death happened.
func (m *Manager) CheckHazardCollision(rect common.Rect) bool {
	for _, trap := range m.StaticTraps {
		if trap.Intersects(rect) {
			return true
		}
	}
	for _, o := range m.Oscillators {
		if o.Collides(rect) {
			return true
		}
	}
	for _, t := range m.Triggers {
		if t.Collides(rect) {
			return true
		}
	}
	for _, a := range m.Axes {
		if a.Collides(rect) {
			return true
		}
	}
	for _, c := range m.Chasers {
		if c.Collides(rect) {
			return true
		}
	}
	for _, c := range m.Crushers {
		if c.Collides(rect) {
			return true
		}
	}
	return false
}

func (m *Manager) ResetAttempts() { m.attempts = 0 }

func (m *Manager) IncrementAttempts() int {
	m.attempts++
	return m.attempts
}

func (m *Manager) Attempts() int { return m.attempts }

// CalculateStarRating scores the finished level by how many attempts it
// took: 3 stars within three tries, 2 within five, otherwise 1.
func (m *Manager) CalculateStarRating() int {
	switch {
	case m.attempts <= 3:
		return 3
	case m.attempts <= 5:
		return 2
	default:
		return 1
	}
}

// LogDeath hands the death position to the store. Logging failures never
// interrupt play.
func (m *Manager) LogDeath(pos common.Vec2) {
	if m.Deaths == nil {
		return
	}
	if err := m.Deaths.LogDeath(m.id, int(pos.X), int(pos.Y)); err != nil {
		log.Printf("[level] log death: %v", err)
	}
}

// AdvanceLevel moves to the next blueprint, wrapping past the boss back to
// level one.
func (m *Manager) AdvanceLevel() {
	m.Load(m.index + 1)
}

func (m *Manager) LevelID() int { return m.id }

func (m *Manager) LevelNumber() int { return m.index + 1 }

func (m *Manager) LevelName() string { return Blueprints[m.index].Name }

func (m *Manager) TotalLevels() int { return len(Blueprints) }

func (m *Manager) PeekNextLevelName() string {
	return Blueprints[(m.index+1)%len(Blueprints)].Name
}

// Draw renders the level body: decorations, platforms, static traps, the
// goal, and every live hazard, all offset by the camera.
func (m *Manager) Draw(screen *ebiten.Image, cameraX float64) {
	for _, d := range m.decorations {
		m.drawDecoration(screen, d, cameraX)
	}
	for _, p := range m.Platforms {
		vector.FillRect(screen, float32(p.X-cameraX), float32(p.Y), float32(p.Width), float32(p.Height), config.PlatformColor, false)
	}
	for _, t := range m.StaticTraps {
		vector.FillRect(screen, float32(t.X-cameraX), float32(t.Y), float32(t.Width), float32(t.Height), config.TrapColor, false)
	}
	vector.FillRect(screen, float32(m.Goal.X-cameraX), float32(m.Goal.Y), float32(m.Goal.Width), float32(m.Goal.Height), config.GoalColor, false)

	for _, o := range m.Oscillators {
		o.Draw(screen, cameraX)
	}
	for _, t := range m.Triggers {
		t.Draw(screen, cameraX)
	}
	for _, a := range m.Axes {
		a.Draw(screen, cameraX)
	}
	for _, c := range m.Chasers {
		c.Draw(screen, cameraX)
	}
	for _, c := range m.Crushers {
		c.Draw(screen, cameraX)
	}
}

func rgb(c [3]uint8) color.RGBA {
	return color.RGBA{R: c[0], G: c[1], B: c[2], A: 255}
}

func (m *Manager) drawDecoration(screen *ebiten.Image, d decoration, cameraX float64) {
	x := float32(d.x - cameraX)
	y := float32(d.y)
	col := rgb(d.color)
	switch d.kind {
	case decorGrass:
		vector.StrokeLine(screen, x, y, x, y-float32(d.size), 2, col, false)
		vector.StrokeLine(screen, x, y, x-3, y-float32(d.size)+2, 2, col, false)
	case decorStone:
		vector.FillCircle(screen, x, y, float32(d.size), col, false)
	case decorTree:
		trunk := rgb([3]uint8{60, 40, 20})
		vector.StrokeLine(screen, x, y, x, y-float32(d.size), 4, trunk, false)
		vector.FillCircle(screen, x, y-float32(d.size), float32(d.size)*0.4, col, false)
	}
}

// ValidateBlueprints fails fast on malformed level data. Called once at
// startup; a broken table is a build error, not a runtime surprise.
func ValidateBlueprints() error {
	if len(Blueprints) != config.TotalLevels+1 {
		return fmt.Errorf("level: expected %d blueprints, have %d", config.TotalLevels+1, len(Blueprints))
	}
	for i, bp := range Blueprints {
		if bp.ID != i+1 {
			return fmt.Errorf("level: blueprint %d has id %d", i, bp.ID)
		}
		if bp.Name == "" {
			return fmt.Errorf("level %d: empty name", bp.ID)
		}
		if len(bp.Platforms) == 0 {
			return fmt.Errorf("level %d: no platforms", bp.ID)
		}
		if bp.Goal.Width <= 0 || bp.Goal.Height <= 0 {
			return fmt.Errorf("level %d: degenerate goal %+v", bp.ID, bp.Goal)
		}
		if bp.Spawn.Y > GroundY {
			return fmt.Errorf("level %d: spawn below ground", bp.ID)
		}
		for _, d := range bp.Disappear {
			if d.Platform.Width <= 0 || d.Platform.Height <= 0 {
				return fmt.Errorf("level %d: degenerate disappearing platform", bp.ID)
			}
		}
	}
	return nil
}
