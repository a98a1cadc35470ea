// Package dialogue runs the toxic narrator: escalating insult tiers, a
// character-by-character typing effect, and an input lock so the player has
// to sit through the abuse.
package dialogue

import (
	"bytes"
	"image/color"
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/milk9111/devilrun/config"
)

const (
	typingSpeed = 0.04 // seconds per character
	hintText    = "Press Any Key to Retry (If you dare)"
)

// Manager owns the dialogue overlay state. Trigger arms it; Update advances
// the lock timer and typing; Draw paints the overlay when active.
type Manager struct {
	screenW, screenH float64

	active bool
	locked bool

	phrase string
	tier   int

	lockRemaining float64
	displayed     int
	displayedHint int
	textTimer     float64

	fade *gween.Tween

	// Blip fires per typed character, wired to the audio blip. Optional.
	Blip func()

	rng  *rand.Rand
	face text.Face
	big  text.Face
}

func NewManager(screenW, screenH float64) *Manager {
	m := &Manager{
		screenW: screenW,
		screenH: screenH,
		rng:     rand.New(rand.NewSource(rand.Int63())),
	}
	if src, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF)); err == nil {
		m.big = &text.GoTextFace{Source: src, Size: 30}
		m.face = &text.GoTextFace{Source: src, Size: 20}
	}
	return m
}

// SetScreenSize follows fullscreen toggles.
func (m *Manager) SetScreenSize(w, h float64) {
	m.screenW, m.screenH = w, h
}

// Trigger activates the overlay with a phrase from the tier the attempt
// count has earned, locks input, and restarts the typing effect.
func (m *Manager) Trigger(attempts int) {
	m.tier = TierFor(attempts)
	phrases := phrasesFor(m.tier)
	if len(phrases) == 0 {
		m.phrase = "..."
	} else {
		m.phrase = phrases[m.rng.Intn(len(phrases))]
	}

	m.active = true
	m.locked = true
	m.lockRemaining = float64(config.DialogueLockMS) / 1000
	m.displayed = 0
	m.displayedHint = 0
	m.textTimer = 0
	m.fade = gween.New(0, 180, 0.3, ease.OutQuad)
	if m.Blip != nil {
		m.Blip()
	}
}

// SetPhrases swaps the live phrase tables. Safe to call from the hot-reload
// watcher goroutine while the game loop keeps triggering dialogue.
func SetPhrases(tiers map[int][]string) {
	phrasesMu.Lock()
	defer phrasesMu.Unlock()
	for tier, phrases := range tiers {
		if len(phrases) > 0 {
			defaultTiers[tier] = phrases
		}
	}
}

// Update steps the lock timer and the typing effect. The retry hint only
// starts typing once the main phrase is finished and the lock has expired.
func (m *Manager) Update(dt float64) {
	if !m.active {
		return
	}
	if m.locked {
		m.lockRemaining -= dt
		if m.lockRemaining <= 0 {
			m.locked = false
		}
	}

	m.textTimer += dt
	if m.displayed < len(m.phrase) {
		if m.textTimer >= typingSpeed {
			ch := m.phrase[m.displayed]
			m.displayed++
			m.textTimer = 0
			if ch != ' ' && m.Blip != nil {
				m.Blip()
			}
		}
		return
	}
	if !m.locked && m.displayedHint < len(hintText) && m.textTimer >= typingSpeed {
		ch := hintText[m.displayedHint]
		m.displayedHint++
		m.textTimer = 0
		if ch != ' ' && m.Blip != nil {
			m.Blip()
		}
	}
}

// End closes the overlay.
func (m *Manager) End() {
	m.active = false
	m.locked = false
}

func (m *Manager) Active() bool { return m.active }

// Locked reports whether input is still being held hostage.
func (m *Manager) Locked() bool { return m.active && m.locked }

// Tier reports the toxicity tier of the current phrase, for the HUD.
func (m *Manager) Tier() int { return m.tier }

// Phrase exposes the full current phrase, mainly for tests.
func (m *Manager) Phrase() string { return m.phrase }

// DisplayedText is the portion of the phrase typed so far.
func (m *Manager) DisplayedText() string { return m.phrase[:m.displayed] }

// Draw paints the darkened overlay, the narrator's face, and the typed text.
func (m *Manager) Draw(screen *ebiten.Image, dt float64) {
	if !m.active {
		return
	}

	alpha := float32(180)
	if m.fade != nil {
		v, done := m.fade.Update(float32(dt))
		alpha = v
		if done {
			m.fade = nil
		}
	}
	vector.FillRect(screen, 0, 0, float32(m.screenW), float32(m.screenH), color.RGBA{A: uint8(alpha)}, false)

	m.drawFace(screen)

	cx := float32(m.screenW / 2)
	if m.big != nil {
		drawCentered(screen, m.DisplayedText(), m.big, cx, float32(m.screenH/2+100), config.White)
	}
	if !m.locked && m.face != nil {
		drawCentered(screen, hintText[:m.displayedHint], m.face, cx, float32(m.screenH/2+150), config.Gold)
	}
}

// drawFace renders the blocky narrator face in the center of the screen.
func (m *Manager) drawFace(screen *ebiten.Image) {
	fx := float32(m.screenW/2) - 110
	fy := float32(m.screenH/2) - 130
	vector.FillRect(screen, fx+10, fy+10, 200, 200, config.AccentRed, false)
	vector.FillCircle(screen, fx+80, fy+90, 25, config.Gold, false)
	vector.FillCircle(screen, fx+140, fy+90, 25, config.Gold, false)
	vector.FillCircle(screen, fx+80, fy+90, 10, config.Ink, false)
	vector.FillCircle(screen, fx+140, fy+90, 10, config.Ink, false)
	vector.FillRect(screen, fx+60, fy+150, 100, 20, config.Ink, false)
}

func drawCentered(screen *ebiten.Image, s string, face text.Face, cx, y float32, col color.RGBA) {
	if s == "" {
		return
	}
	w, _ := text.Measure(s, face, 0)
	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(cx)-w/2, float64(y))
	op.ColorScale.ScaleWithColor(col)
	text.Draw(screen, s, face, op)
}
