package ui

import (
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/milk9111/devilrun/common"
	"github.com/milk9111/devilrun/config"
)

// VictoryOverlay darkens the level behind it and shows the star result with
// Continue and Replay buttons.
type VictoryOverlay struct {
	OnContinue func()
	OnReplay   func()

	levelName string
	stars     int

	screenW, screenH float64

	titleFace text.Face
	hudFace   text.Face
}

func NewVictoryOverlay(screenW, screenH float64) *VictoryOverlay {
	return &VictoryOverlay{
		screenW:   screenW,
		screenH:   screenH,
		titleFace: face(34),
		hudFace:   face(18),
	}
}

// Set records the result to display before the overlay is shown.
func (v *VictoryOverlay) Set(levelName string, stars int) {
	v.levelName = levelName
	v.stars = stars
}

func (v *VictoryOverlay) continueButton() button {
	return button{
		rect:  common.Rect{X: v.screenW/2 - 100, Y: v.screenH/2 + 50, Width: 200, Height: 50},
		label: "CONTINUE",
		bg:    config.GoalGreen,
		fg:    config.Ink,
	}
}

func (v *VictoryOverlay) replayButton() button {
	return button{
		rect:  common.Rect{X: v.screenW/2 - 100, Y: v.screenH/2 + 120, Width: 200, Height: 50},
		label: "REPLAY",
		bg:    color.RGBA{R: 100, G: 100, B: 100, A: 255},
		fg:    config.White,
	}
}

func (v *VictoryOverlay) Update() {
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return
	}
	mx, my := ebiten.CursorPosition()
	if v.continueButton().hit(mx, my) && v.OnContinue != nil {
		v.OnContinue()
	} else if v.replayButton().hit(mx, my) && v.OnReplay != nil {
		v.OnReplay()
	}
}

func (v *VictoryOverlay) Draw(screen *ebiten.Image) {
	vector.FillRect(screen, 0, 0, float32(v.screenW), float32(v.screenH), color.RGBA{A: 180}, false)

	cx := float32(v.screenW / 2)
	cy := float32(v.screenH / 2)
	drawCentered(screen, "LEVEL COMPLETE!", v.titleFace, cx, cy-120, config.GoalGreen)
	drawCentered(screen, v.levelName, v.hudFace, cx, cy-60, config.White)
	stars := strings.Repeat("★", v.stars) + strings.Repeat("☆", 3-v.stars)
	drawCentered(screen, stars, v.titleFace, cx, cy, config.Gold)

	v.continueButton().draw(screen, v.hudFace)
	v.replayButton().draw(screen, v.hudFace)
}

// DeathMenu is the give-up screen after the attempt cap. The narrator keeps
// talking underneath; this only adds the verdict and the two ways out.
type DeathMenu struct {
	OnRetry func()
	OnMenu  func()

	screenW, screenH float64

	titleFace text.Face
	hudFace   text.Face
}

func NewDeathMenu(screenW, screenH float64) *DeathMenu {
	return &DeathMenu{
		screenW:   screenW,
		screenH:   screenH,
		titleFace: face(34),
		hudFace:   face(18),
	}
}

func (d *DeathMenu) retryButton() button {
	return button{
		rect:  common.Rect{X: d.screenW/2 - 60, Y: 200, Width: 120, Height: 50},
		label: "Retry",
		bg:    config.GoalGreen,
		fg:    config.Ink,
	}
}

func (d *DeathMenu) menuButton() button {
	return button{
		rect:  common.Rect{X: d.screenW - 150, Y: 20, Width: 120, Height: 50},
		label: "Menu",
		bg:    config.PeachMed,
		fg:    config.White,
	}
}

func (d *DeathMenu) Update() {
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return
	}
	mx, my := ebiten.CursorPosition()
	if d.retryButton().hit(mx, my) && d.OnRetry != nil {
		d.OnRetry()
	} else if d.menuButton().hit(mx, my) && d.OnMenu != nil {
		d.OnMenu()
	}
}

func (d *DeathMenu) Draw(screen *ebiten.Image) {
	drawCentered(screen, "YOU FAILED. AGAIN.", d.titleFace, float32(d.screenW/2), 100, config.AccentRed)
	d.retryButton().draw(screen, d.hudFace)
	d.menuButton().draw(screen, d.hudFace)
}
