package obj

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Input holds one frame of polled input state for the run.
type Input struct {
	// MoveLeft and MoveRight are true while the keys are held.
	MoveLeft  bool
	MoveRight bool
	// JumpPressed is true only on the frame the jump key goes down.
	JumpPressed bool
	// AnyKeyPressed is true on any key or primary-button edge, for the
	// "press any key" prompts.
	AnyKeyPressed bool
	// PausePressed is true on the frame Escape goes down.
	PausePressed bool
	// FullscreenPressed is true on the frame F11 goes down.
	FullscreenPressed bool

	pressedKeys []ebiten.Key
}

func NewInput() *Input {
	return &Input{}
}

// Update polls the keyboard and, when present, the first gamepad.
func (i *Input) Update() {
	i.MoveLeft = ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyLeft)
	i.MoveRight = ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyRight)
	i.JumpPressed = inpututil.IsKeyJustPressed(ebiten.KeySpace) ||
		inpututil.IsKeyJustPressed(ebiten.KeyW) ||
		inpututil.IsKeyJustPressed(ebiten.KeyUp)
	i.PausePressed = inpututil.IsKeyJustPressed(ebiten.KeyEscape)
	i.FullscreenPressed = inpututil.IsKeyJustPressed(ebiten.KeyF11)

	i.pressedKeys = inpututil.AppendJustPressedKeys(i.pressedKeys[:0])
	i.AnyKeyPressed = len(i.pressedKeys) > 0 ||
		inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)

	ids := ebiten.GamepadIDs()
	if len(ids) == 0 {
		return
	}
	gid := ids[0]
	leftX := ebiten.StandardGamepadAxisValue(gid, ebiten.StandardGamepadAxisLeftStickHorizontal)
	if leftX < -0.3 {
		i.MoveLeft = true
	} else if leftX > 0.3 {
		i.MoveRight = true
	}
	if inpututil.IsStandardGamepadButtonJustPressed(gid, ebiten.StandardGamepadButtonRightBottom) {
		i.JumpPressed = true
		i.AnyKeyPressed = true
	}
	if inpututil.IsStandardGamepadButtonJustPressed(gid, ebiten.StandardGamepadButtonCenterRight) {
		i.PausePressed = true
	}
}
