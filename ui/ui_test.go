package ui

import (
	"strings"
	"testing"

	"github.com/milk9111/devilrun/common"
	"github.com/milk9111/devilrun/config"
)

func TestMapMenuUnlockRules(t *testing.T) {
	m := NewMapMenu(config.ScreenWidth, config.ScreenHeight)

	if !m.unlocked(1) {
		t.Fatal("level 1 should always be unlocked")
	}
	if m.unlocked(2) {
		t.Fatal("level 2 should be locked with no progress")
	}

	m.SetProgress(map[int]int{1: 2}, 2)
	if !m.unlocked(2) {
		t.Fatal("level 2 should unlock after level 1 is completed")
	}
	if m.unlocked(3) {
		t.Fatal("level 3 should stay locked until level 2 is completed")
	}
}

func TestMapMenuBossUnlock(t *testing.T) {
	m := NewMapMenu(config.ScreenWidth, config.ScreenHeight)
	boss := config.TotalLevels + 1

	progress := map[int]int{}
	for i := 1; i <= config.TotalLevels; i++ {
		progress[i] = 1
	}
	m.SetProgress(progress, config.BossUnlockStars-1)
	if m.unlocked(boss) {
		t.Fatalf("boss should stay locked below %d stars", config.BossUnlockStars)
	}

	m.SetProgress(progress, config.BossUnlockStars)
	if !m.unlocked(boss) {
		t.Fatalf("boss should unlock at %d stars", config.BossUnlockStars)
	}
}

func TestMapMenuNodeLayout(t *testing.T) {
	m := NewMapMenu(config.ScreenWidth, config.ScreenHeight)
	centerY := float64(config.ScreenHeight)/2 + 20

	_, y1 := m.nodePos(1)
	_, y2 := m.nodePos(2)
	if y1 >= centerY {
		t.Fatalf("odd node should sit above the center line, got y=%v center=%v", y1, centerY)
	}
	if y2 <= centerY {
		t.Fatalf("even node should sit below the center line, got y=%v center=%v", y2, centerY)
	}

	// The boss gate lands on the center line past the last regular node.
	bossX, bossY := m.nodePos(config.TotalLevels + 1)
	lastX, _ := m.nodePos(config.TotalLevels)
	if bossY != centerY {
		t.Fatalf("boss node y = %v, want %v", bossY, centerY)
	}
	if bossX <= lastX {
		t.Fatalf("boss node x = %v, should be past node %d at %v", bossX, config.TotalLevels, lastX)
	}
}

func TestMapMenuRankColor(t *testing.T) {
	m := NewMapMenu(config.ScreenWidth, config.ScreenHeight)

	m.SetProgress(nil, 14)
	if _, col := m.rank(); col != config.PeachMed {
		t.Fatalf("low rank color = %v, want %v", col, config.PeachMed)
	}
	m.SetProgress(nil, 15)
	if name, col := m.rank(); col != config.Gold {
		t.Fatalf("rank %q color = %v, want %v", name, col, config.Gold)
	}
}

func TestButtonHit(t *testing.T) {
	b := button{rect: common.Rect{X: 100, Y: 50, Width: 120, Height: 40}}

	tests := []struct {
		name string
		x, y int
		want bool
	}{
		{"center", 160, 70, true},
		{"top left corner", 100, 50, true},
		{"right edge exclusive", 220, 70, false},
		{"bottom edge exclusive", 160, 90, false},
		{"outside", 99, 70, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := b.hit(tt.x, tt.y); got != tt.want {
				t.Fatalf("hit(%d, %d) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestWelcomeForIncludesUsername(t *testing.T) {
	for i := 0; i < 20; i++ {
		msg := welcomeFor("runner7")
		if !strings.Contains(msg, "runner7") {
			t.Fatalf("welcome %q does not mention the username", msg)
		}
	}
}
