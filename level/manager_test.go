package level

import (
	"errors"
	"testing"

	"github.com/milk9111/devilrun/common"
	"github.com/milk9111/devilrun/config"
)

const dt = 1.0 / 60.0

func TestValidateBlueprints(t *testing.T) {
	if err := ValidateBlueprints(); err != nil {
		t.Fatalf("blueprint table invalid: %v", err)
	}
}

func TestLoadWrapsIndex(t *testing.T) {
	tests := []struct {
		name     string
		levelID  int
		wantID   int
		wantName string
	}{
		{name: "first", levelID: 1, wantID: 1, wantName: "Level 1: The Descent"},
		{name: "boss", levelID: 13, wantID: 13, wantName: "BOSS: The Devil's Throne"},
		{name: "zero clamps to first", levelID: 0, wantID: 1, wantName: "Level 1: The Descent"},
		{name: "past the end wraps", levelID: 14, wantID: 1, wantName: "Level 1: The Descent"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewManager(tt.levelID)
			if m.LevelID() != tt.wantID {
				t.Fatalf("level id = %d, want %d", m.LevelID(), tt.wantID)
			}
			if m.LevelName() != tt.wantName {
				t.Fatalf("level name = %q, want %q", m.LevelName(), tt.wantName)
			}
		})
	}
}

func TestLevelLengthStretchesToGoal(t *testing.T) {
	m := NewManager(1)
	if m.Length != float64(MinLength) {
		t.Fatalf("level 1 length = %f, want minimum %d", m.Length, MinLength)
	}
	m = NewManager(13)
	want := Blueprints[12].Goal.Right() + config.TileSize
	if m.Length != want {
		t.Fatalf("boss length = %f, want %f", m.Length, want)
	}
}

func TestDisappearingPlatformExcision(t *testing.T) {
	m := NewManager(1)
	target := Blueprints[0].Disappear[0].Platform
	if !containsRect(m.Platforms, target) {
		t.Fatalf("disappearing target not solid at load")
	}
	solidBefore := len(m.Platforms)

	trigger := Blueprints[0].Disappear[0].Trigger
	player := common.Rect{X: trigger.X + 5, Y: trigger.Y + 5, Width: 30, Height: 50}
	m.UpdateHazards(dt, &player)

	if containsRect(m.Platforms, target) {
		t.Fatalf("triggered platform still solid")
	}
	if len(m.Platforms) != solidBefore-1 {
		t.Fatalf("platform count %d, want %d", len(m.Platforms), solidBefore-1)
	}

	// Reload restores it.
	m.Reload()
	if !containsRect(m.Platforms, target) {
		t.Fatalf("reload did not restore platform")
	}
}

func TestStarRating(t *testing.T) {
	tests := []struct {
		attempts int
		want     int
	}{
		{attempts: 1, want: 3},
		{attempts: 3, want: 3},
		{attempts: 4, want: 2},
		{attempts: 5, want: 2},
		{attempts: 6, want: 1},
		{attempts: 40, want: 1},
	}
	for _, tt := range tests {
		m := NewManager(1)
		for i := 0; i < tt.attempts; i++ {
			m.IncrementAttempts()
		}
		if got := m.CalculateStarRating(); got != tt.want {
			t.Fatalf("rating after %d attempts = %d, want %d", tt.attempts, got, tt.want)
		}
	}
}

func TestAdvanceLevelWrapsPastBoss(t *testing.T) {
	m := NewManager(13)
	m.AdvanceLevel()
	if m.LevelID() != 1 {
		t.Fatalf("after boss advance, level id = %d, want 1", m.LevelID())
	}
}

func TestPeekNextLevelName(t *testing.T) {
	m := NewManager(12)
	if got := m.PeekNextLevelName(); got != "BOSS: The Devil's Throne" {
		t.Fatalf("peek = %q", got)
	}
}

func TestStaticTrapCollision(t *testing.T) {
	m := NewManager(1)
	trap := m.StaticTraps[0]
	inside := common.Rect{X: trap.X + 1, Y: trap.Y + 1, Width: 10, Height: 10}
	if !m.CheckHazardCollision(inside) {
		t.Fatalf("rect inside static trap not lethal")
	}
	safe := common.Rect{X: trap.X - 100, Y: trap.Y - 500, Width: 10, Height: 10}
	if m.CheckHazardCollision(safe) {
		t.Fatalf("rect far from traps reported lethal")
	}
}

type fakeDeathLogger struct {
	levelID, x, y int
	calls         int
	err           error
}

func (f *fakeDeathLogger) LogDeath(levelID, x, y int) error {
	f.levelID, f.x, f.y = levelID, x, y
	f.calls++
	return f.err
}

func TestLogDeath(t *testing.T) {
	m := NewManager(3)
	f := &fakeDeathLogger{}
	m.Deaths = f
	m.LogDeath(common.Vec2{X: 123.7, Y: 456.2})
	if f.calls != 1 || f.levelID != 3 || f.x != 123 || f.y != 456 {
		t.Fatalf("logged %+v", f)
	}

	// Errors are swallowed; play continues.
	f.err = errors.New("disk full")
	m.LogDeath(common.Vec2{X: 1, Y: 2})
	if f.calls != 2 {
		t.Fatalf("second log not attempted")
	}

	// No logger wired is fine too.
	m.Deaths = nil
	m.LogDeath(common.Vec2{})
}

func TestAttemptsResetOnDemandNotOnLoad(t *testing.T) {
	m := NewManager(1)
	m.IncrementAttempts()
	m.IncrementAttempts()
	m.Reload()
	if m.Attempts() != 2 {
		t.Fatalf("reload cleared attempts: %d", m.Attempts())
	}
	m.ResetAttempts()
	if m.Attempts() != 0 {
		t.Fatalf("reset left attempts at %d", m.Attempts())
	}
}
