package main

import (
	"fmt"
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/milk9111/devilrun/audio"
	"github.com/milk9111/devilrun/common"
	"github.com/milk9111/devilrun/config"
	"github.com/milk9111/devilrun/dialogue"
	"github.com/milk9111/devilrun/level"
	"github.com/milk9111/devilrun/obj"
	"github.com/milk9111/devilrun/player"
	"github.com/milk9111/devilrun/store"
	"github.com/milk9111/devilrun/ui"
)

// Mode is the game's top-level state. Physics only runs in ModePlaying;
// everything else is a menu or an overlay.
type Mode int

const (
	ModeLogin Mode = iota
	ModeSignup
	ModeMap
	ModePlaying
	ModeDialogue
	ModeDeathMenu
	ModeVictory
)

var modeNames = [...]string{"login", "signup", "map", "playing", "dialogue", "death-menu", "victory"}

func (m Mode) String() string {
	if int(m) < len(modeNames) {
		return modeNames[m]
	}
	return fmt.Sprintf("mode(%d)", int(m))
}

// transitions lists the legal mode edges. An edge missing here is a bug in
// the caller, not a state to recover from, so setMode logs and refuses.
var transitions = map[Mode][]Mode{
	ModeLogin:     {ModeSignup, ModeMap},
	ModeSignup:    {ModeLogin, ModeMap},
	ModeMap:       {ModePlaying, ModeLogin},
	ModePlaying:   {ModeDialogue, ModeDeathMenu, ModeVictory, ModeMap},
	ModeDialogue:  {ModePlaying},
	ModeDeathMenu: {ModePlaying, ModeMap},
	ModeVictory:   {ModeMap, ModePlaying},
}

func canTransition(from, to Mode) bool {
	for _, m := range transitions[from] {
		if m == to {
			return true
		}
	}
	return false
}

var dustColor = color.RGBA{R: 200, G: 200, B: 200, A: 255}

type Game struct {
	mode Mode
	quit bool

	input     *obj.Input
	player    *player.Player
	levels    *level.Manager
	camera    *obj.Camera
	particles []*obj.Particle

	narrator *dialogue.Manager
	sounds   *audio.Player
	db       *store.Store

	auth      *ui.AuthForm
	mapMenu   *ui.MapMenu
	victoryUI *ui.VictoryOverlay
	deathUI   *ui.DeathMenu

	user     *store.User
	progress map[int]int

	// pending carries results of off-frame store calls back onto the game
	// loop. Buffered so the goroutines never block on a slow frame.
	pending chan func()

	flashText  string
	flashTimer float64

	titleFace text.Face
	hudFace   text.Face
}

func NewGame(db *store.Store) *Game {
	g := &Game{
		mode:      ModeLogin,
		input:     obj.NewInput(),
		levels:    level.NewManager(1),
		camera:    obj.NewCamera(config.ScreenWidth),
		narrator:  dialogue.NewManager(config.ScreenWidth, config.ScreenHeight),
		sounds:    audio.NewPlayer(),
		db:        db,
		progress:  map[int]int{},
		pending:   make(chan func(), 16),
		titleFace: ui.Face(34),
		hudFace:   ui.Face(18),
	}
	g.levels.Deaths = db
	g.player = player.New(g.levels.Spawn)
	g.camera.SetLevelLength(g.levels.Length)
	g.narrator.Blip = g.sounds.PlayBlip
	if err := g.sounds.StartMusic(); err != nil {
		log.Printf("[game] start music: %v", err)
	}

	g.auth = ui.NewAuthForm(db, g.onLogin)
	g.auth.OnToggle = func(signup bool) {
		if signup {
			g.setMode(ModeSignup)
		} else {
			g.setMode(ModeLogin)
		}
	}

	g.mapMenu = ui.NewMapMenu(config.ScreenWidth, config.ScreenHeight)
	g.mapMenu.OnSelect = g.startLevel
	g.mapMenu.OnDelete = g.deleteAccount
	g.mapMenu.OnQuit = func() { g.quit = true }
	g.mapMenu.OnLocked = func(msg string) { g.flash(msg, 1) }

	g.victoryUI = ui.NewVictoryOverlay(config.ScreenWidth, config.ScreenHeight)
	g.victoryUI.OnContinue = func() {
		g.levels.ResetAttempts()
		g.player.SetSpawn(g.levels.Spawn)
		g.camera.Reset()
		g.setMode(ModeMap)
	}
	g.victoryUI.OnReplay = func() {
		g.levels.ResetAttempts()
		g.player.SetSpawn(g.levels.Spawn)
		g.camera.Reset()
		g.setMode(ModePlaying)
	}

	g.deathUI = ui.NewDeathMenu(config.ScreenWidth, config.ScreenHeight)
	g.deathUI.OnRetry = func() {
		g.narrator.End()
		g.levels.ResetAttempts()
		g.player.Reset()
		g.camera.Reset()
		g.setMode(ModePlaying)
	}
	g.deathUI.OnMenu = func() {
		g.narrator.End()
		g.player.Reset()
		g.setMode(ModeMap)
	}

	return g
}

func (g *Game) setMode(to Mode) {
	if g.mode == to {
		return
	}
	if !canTransition(g.mode, to) {
		log.Printf("[game] refusing transition %s -> %s", g.mode, to)
		return
	}
	g.mode = to
}

func (g *Game) flash(msg string, seconds float64) {
	g.flashText = msg
	g.flashTimer = seconds
}

func (g *Game) onLogin(u *store.User, welcome string) {
	g.user = u
	if progress, err := g.db.GetPlayerLevelStars(u.ID); err == nil {
		g.applyProgress(progress)
	} else {
		log.Printf("[game] load progress: %v", err)
	}
	g.mapMenu.SetUser(u.Username)
	g.setMode(ModeMap)
	g.flash(welcome, 4)
}

func (g *Game) applyProgress(progress map[int]int) {
	g.progress = progress
	total := 0
	for _, stars := range progress {
		total += stars
	}
	if g.user != nil {
		g.user.TotalStars = total
	}
	g.mapMenu.SetProgress(progress, total)
}

func (g *Game) startLevel(index int) {
	g.levels.Load(index)
	g.levels.ResetAttempts()
	g.player.SetSpawn(g.levels.Spawn)
	g.camera.SetLevelLength(g.levels.Length)
	g.camera.Reset()
	g.setMode(ModePlaying)
	g.flash(fmt.Sprintf("Entering %s...", g.levels.LevelName()), 1.5)
}

func (g *Game) deleteAccount() {
	if g.user == nil {
		return
	}
	if err := g.db.DeleteUser(g.user.ID); err != nil {
		log.Printf("[game] delete account: %v", err)
		g.flash(fmt.Sprintf("Delete failed: %v", err), 4)
		return
	}
	g.user = nil
	g.applyProgress(map[int]int{})
	g.mapMenu.SetUser("")
	g.auth.ShowLogin()
	g.setMode(ModeLogin)
	g.auth.SetError("Account Deleted.")
}

func (g *Game) Update() error {
	if g.quit {
		return ebiten.Termination
	}
	dt := 1.0 / float64(config.TPS)

	g.input.Update()
	if g.input.FullscreenPressed {
		ebiten.SetFullscreen(!ebiten.IsFullscreen())
	}
	g.drainPending()

	switch g.mode {
	case ModeLogin, ModeSignup:
		g.auth.Update()
	case ModeMap:
		g.mapMenu.Update()
	case ModePlaying:
		if g.input.PausePressed {
			g.setMode(ModeMap)
			break
		}
		g.updatePlay(dt)
	case ModeDialogue:
		g.narrator.Update(dt)
		if !g.narrator.Locked() && g.input.AnyKeyPressed {
			g.narrator.End()
			g.player.Reset()
			g.camera.Reset()
			g.setMode(ModePlaying)
		}
	case ModeDeathMenu:
		g.narrator.Update(dt)
		g.deathUI.Update()
	case ModeVictory:
		g.victoryUI.Update()
	}

	alive := g.particles[:0]
	for _, p := range g.particles {
		if p.Update(dt) {
			alive = append(alive, p)
		}
	}
	g.particles = alive

	if g.flashTimer > 0 {
		g.flashTimer -= dt
	}
	return nil
}

func (g *Game) drainPending() {
	for {
		select {
		case fn := <-g.pending:
			fn()
		default:
			return
		}
	}
}

func (g *Game) updatePlay(dt float64) {
	g.player.HandleInput(g.input.MoveLeft, g.input.MoveRight)
	if g.input.JumpPressed {
		g.player.RequestJump()
		dust := common.Vec2{X: g.player.Rect.CenterX(), Y: g.player.Rect.Bottom()}
		g.particles = append(g.particles, obj.Burst(dust, 5, dustColor)...)
	}
	if g.player.Advance(dt, g.levels.Platforms, g.levels.Length) {
		g.sounds.PlayJump()
	}
	g.levels.UpdateHazards(dt, &g.player.Rect)

	// Death wins over the goal when both would fire on the same frame.
	if g.player.Rect.Y > config.ScreenHeight+config.WorldBottomMargin ||
		g.levels.CheckHazardCollision(g.player.Rect) {
		g.handleDeath()
		return
	}
	if g.player.Rect.Intersects(g.levels.Goal.Inflate(config.GoalDetectionMargin)) {
		g.handleVictory()
		return
	}
	g.camera.Update(g.player.Rect.CenterX())
}

func (g *Game) handleDeath() {
	attempts := g.levels.IncrementAttempts()
	pos := common.Vec2{X: g.player.Rect.CenterX(), Y: g.player.Rect.CenterY()}
	logDeathAsync(g.db, g.levels.LevelID(), pos)

	g.particles = append(g.particles, obj.Burst(pos, 15, config.TrapColor)...)
	g.sounds.PlayDeath()

	g.narrator.Trigger(attempts)
	if attempts > config.MaxAttempts {
		g.setMode(ModeDeathMenu)
	} else {
		g.setMode(ModeDialogue)
	}
}

// logDeathAsync records a death position off the frame. The level id and
// logger are captured before the goroutine starts so a level switch while
// the write is in flight cannot change what gets recorded.
func logDeathAsync(deaths level.DeathLogger, levelID int, pos common.Vec2) {
	if deaths == nil {
		return
	}
	go func() {
		if err := deaths.LogDeath(levelID, int(pos.X), int(pos.Y)); err != nil {
			log.Printf("[game] log death: %v", err)
		}
	}()
}

func (g *Game) handleVictory() {
	stars := g.levels.CalculateStarRating()
	g.victoryUI.Set(g.levels.LevelName(), stars)

	if g.user != nil {
		userID := g.user.ID
		levelID := g.levels.LevelID()
		attempts := g.levels.Attempts()
		go func() {
			if _, err := g.db.RecordLevelAttempt(userID, levelID, attempts, stars); err != nil {
				g.pending <- func() { g.flash(fmt.Sprintf("Save Error: %v", err), 4) }
				return
			}
			progress, err := g.db.GetPlayerLevelStars(userID)
			if err != nil {
				g.pending <- func() { g.flash(fmt.Sprintf("Save Error: %v", err), 4) }
				return
			}
			g.pending <- func() { g.applyProgress(progress) }
		}()
	}
	g.setMode(ModeVictory)
}

func (g *Game) Draw(screen *ebiten.Image) {
	dt := 1.0 / float64(config.TPS)

	switch g.mode {
	case ModeLogin, ModeSignup:
		g.auth.Draw(screen)
	case ModeMap:
		g.mapMenu.Draw(screen)
	case ModeDeathMenu:
		screen.Fill(config.BackgroundColor)
		g.narrator.Draw(screen, dt)
		g.deathUI.Draw(screen)
	case ModeVictory:
		g.drawLevel(screen)
		g.victoryUI.Draw(screen)
	default:
		g.drawLevel(screen)
		if g.mode == ModeDialogue {
			g.narrator.Draw(screen, dt)
		}
	}

	if g.flashTimer > 0 && g.flashText != "" {
		g.drawCentered(screen, g.flashText, g.hudFace, config.ScreenWidth/2, 40, config.TrapColor)
	}
}

func (g *Game) drawLevel(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	g.levels.Draw(screen, g.camera.X)

	// Level name banner.
	vector.FillRect(screen, 0, 0, config.ScreenWidth, 70, config.PeachMed, false)
	g.drawCentered(screen, g.levels.LevelName(), g.titleFace, config.ScreenWidth/2, 40, config.White)

	g.player.Draw(screen, g.camera.X)
	for _, p := range g.particles {
		p.Draw(screen, g.camera.X)
	}
	g.drawHUD(screen)
}

func (g *Game) drawHUD(screen *ebiten.Image) {
	h := float64(config.ScreenHeight)
	g.drawText(screen, fmt.Sprintf("tries %d", g.levels.Attempts()), g.hudFace, 20, h-60, config.HUDTextColor)
	if g.user != nil {
		g.drawText(screen, "runner: "+g.user.Username, g.hudFace, 20, h-90, config.HUDTextColor)
	}
}

func (g *Game) drawText(screen *ebiten.Image, s string, f text.Face, x, y float64, col color.RGBA) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(col)
	text.Draw(screen, s, f, op)
}

func (g *Game) drawCentered(screen *ebiten.Image, s string, f text.Face, cx, cy float64, col color.RGBA) {
	w, h := text.Measure(s, f, 0)
	g.drawText(screen, s, f, cx-w/2, cy-h/2, col)
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return config.ScreenWidth, config.ScreenHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}
