package ui

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/milk9111/devilrun/common"
	"github.com/milk9111/devilrun/config"
)

const nodeHitboxSize = 70

// MapMenu is the level-select screen: a zigzag of gates across the screen,
// the boss gate at the end, and the runner's rank and star total up top.
type MapMenu struct {
	OnSelect func(levelIndex int)
	OnDelete func()
	OnQuit   func()
	OnLocked func(msg string)

	username   string
	progress   map[int]int
	totalStars int

	screenW, screenH float64

	titleFace text.Face
	hudFace   text.Face
	nodeFace  text.Face
}

func NewMapMenu(screenW, screenH float64) *MapMenu {
	return &MapMenu{
		progress:  map[int]int{},
		screenW:   screenW,
		screenH:   screenH,
		titleFace: face(34),
		hudFace:   face(18),
		nodeFace:  face(20),
	}
}

// SetUser swaps in the logged-in runner's name.
func (m *MapMenu) SetUser(username string) { m.username = username }

// SetProgress replaces the per-level best stars used for unlock checks and
// star markers. A nil map clears all progress.
func (m *MapMenu) SetProgress(progress map[int]int, totalStars int) {
	if progress == nil {
		progress = map[int]int{}
	}
	m.progress = progress
	m.totalStars = totalStars
}

// nodePos spreads node positions evenly across the width, alternating above
// and below the center line. The boss gate sits on the center line past the
// last regular node.
func (m *MapMenu) nodePos(i int) (float64, float64) {
	marginX := m.screenW * 0.1
	totalNodes := config.TotalLevels + 1
	xStep := (m.screenW - 2*marginX) / float64(totalNodes)
	x := marginX + float64(i-1)*xStep

	centerY := m.screenH/2 + 20
	amplitude := m.screenH * 0.15
	y := centerY - amplitude
	if i%2 == 0 {
		y = centerY + amplitude
	}
	if i == config.TotalLevels+1 {
		x += xStep * 0.5
		y = centerY
	}
	return x, y
}

func (m *MapMenu) unlocked(i int) bool {
	switch {
	case i == 1:
		return true
	case i <= config.TotalLevels:
		_, ok := m.progress[i-1]
		return ok
	case i == config.TotalLevels+1:
		return m.totalStars >= config.BossUnlockStars
	}
	return false
}

func (m *MapMenu) quitButton() button {
	return button{
		rect:  common.Rect{X: m.screenW - 150, Y: 80, Width: 120, Height: 50},
		label: "Quit",
		bg:    config.PeachMed,
		fg:    config.White,
	}
}

func (m *MapMenu) deleteButton() button {
	return button{
		rect:  common.Rect{X: m.screenW/2 - 100, Y: m.screenH - 60, Width: 200, Height: 40},
		label: "Delete Account",
		bg:    color.RGBA{R: 80, G: 80, B: 80, A: 255},
		fg:    config.White,
	}
}

// Update handles one frame of clicks. Selecting a locked gate reports the
// reason through OnLocked instead of loading anything.
func (m *MapMenu) Update() {
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return
	}
	mx, my := ebiten.CursorPosition()

	if m.quitButton().hit(mx, my) {
		if m.OnQuit != nil {
			m.OnQuit()
		}
		return
	}
	if m.deleteButton().hit(mx, my) {
		if m.OnDelete != nil {
			m.OnDelete()
		}
		return
	}

	for i := 1; i <= config.TotalLevels+1; i++ {
		x, y := m.nodePos(i)
		hit := common.Rect{
			X:      x - nodeHitboxSize/2,
			Y:      y - nodeHitboxSize/2,
			Width:  nodeHitboxSize,
			Height: nodeHitboxSize,
		}
		if !(button{rect: hit}).hit(mx, my) {
			continue
		}
		if m.unlocked(i) {
			if m.OnSelect != nil {
				m.OnSelect(i - 1)
			}
		} else if m.OnLocked != nil {
			if i == config.TotalLevels+1 {
				m.OnLocked(fmt.Sprintf("LOCKED! Need %d.", config.BossUnlockStars))
			} else {
				m.OnLocked("Locked! Finish previous.")
			}
		}
		return
	}
}

func (m *MapMenu) rank() (string, color.RGBA) {
	r := config.RankFor(m.totalStars)
	if r.Stars >= 15 {
		return r.Name, config.Gold
	}
	return r.Name, config.PeachMed
}

func (m *MapMenu) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	w := float32(m.screenW)

	// Header bar with rank, runner name, and star total.
	vector.FillRect(screen, 0, 0, w, 140, config.PeachDark, false)
	rankName, rankColor := m.rank()
	drawAt(screen, rankName, m.titleFace, 40, 20, rankColor)
	drawAt(screen, "Runner: "+m.username, m.hudFace, 40, 85, config.White)
	starLine := fmt.Sprintf("Total Stars: %d", m.totalStars)
	sw, _ := text.Measure(starLine, m.titleFace, 0)
	drawAt(screen, starLine, m.titleFace, w-40-float32(sw), 20, config.Gold)

	m.quitButton().draw(screen, m.hudFace)
	m.deleteButton().draw(screen, m.hudFace)

	// Path lines first so the gates sit on top of them.
	var lastX, lastY float64
	for i := 1; i <= config.TotalLevels+1; i++ {
		x, y := m.nodePos(i)
		if i > 1 {
			lineColor := config.Ink
			if m.unlocked(i) {
				lineColor = config.AccentRed
			}
			vector.StrokeLine(screen, float32(lastX), float32(lastY), float32(x), float32(y), 4, lineColor, false)
		}
		lastX, lastY = x, y
	}

	for i := 1; i <= config.TotalLevels+1; i++ {
		m.drawNode(screen, i)
	}
}

func (m *MapMenu) drawNode(screen *ebiten.Image, i int) {
	x, y := m.nodePos(i)
	fx, fy := float32(x), float32(y)
	isBoss := i == config.TotalLevels+1
	isUnlocked := m.unlocked(i)

	nodeColor := config.PeachDark
	if isBoss {
		nodeColor = config.AccentRed
	}
	if !isUnlocked {
		nodeColor = config.Ink
	}
	borderColor := config.PeachMed
	if isUnlocked {
		borderColor = config.Gold
	}
	if isBoss && isUnlocked {
		borderColor = config.AccentRed
	}

	radius := float32(28)
	if isBoss {
		radius = 35
	}
	vector.FillCircle(screen, fx, fy, radius, nodeColor, false)
	vector.StrokeCircle(screen, fx, fy, radius+4, 4, borderColor, false)

	label := fmt.Sprintf("%d", i)
	if isBoss {
		label = "BOSS"
	}
	drawCentered(screen, label, m.nodeFace, fx, fy, config.White)

	if stars := m.progress[i]; stars > 0 {
		drawCentered(screen, strings.Repeat("★", stars), m.hudFace, fx, fy+45, config.Gold)
	}

	if !isUnlocked {
		vector.StrokeLine(screen, fx-15, fy-15, fx+15, fy+15, 4, config.AccentRed, false)
		vector.StrokeLine(screen, fx+15, fy-15, fx-15, fy+15, 4, config.AccentRed, false)
	}
}
