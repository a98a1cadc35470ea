package store

import (
	"errors"
	"testing"
)

// memBackend is an in-memory Backend for tests.
type memBackend struct {
	items map[string][]byte
}

func newMemBackend() *memBackend {
	return &memBackend{items: map[string][]byte{}}
}

func (m *memBackend) SaveItem(key string, data []byte) error {
	m.items[key] = append([]byte(nil), data...)
	return nil
}

func (m *memBackend) LoadItem(key string) ([]byte, error) {
	return m.items[key], nil
}

func TestCreateAndAuthenticate(t *testing.T) {
	s := New(newMemBackend())

	u, err := s.CreateUser("devil", "hunter2", "Dev", "2000-01-01")
	if err != nil {
		t.Fatalf("create user: %v", err)
	}
	if u.ID == "" {
		t.Fatalf("user id empty")
	}
	if u.TotalStars != 0 {
		t.Fatalf("new user stars = %d", u.TotalStars)
	}
	if u.PasswordHash == "hunter2" {
		t.Fatalf("password stored in the clear")
	}

	got, err := s.Authenticate("devil", "hunter2")
	if err != nil {
		t.Fatalf("authenticate: %v", err)
	}
	if got.ID != u.ID {
		t.Fatalf("authenticated wrong user")
	}

	if _, err := s.Authenticate("devil", "wrong"); !errors.Is(err, ErrBadCredentials) {
		t.Fatalf("wrong password error = %v", err)
	}
	if _, err := s.Authenticate("nobody", "hunter2"); !errors.Is(err, ErrBadCredentials) {
		t.Fatalf("unknown user error = %v", err)
	}
}

func TestDuplicateUsername(t *testing.T) {
	s := New(newMemBackend())
	if _, err := s.CreateUser("devil", "a", "", ""); err != nil {
		t.Fatalf("first create: %v", err)
	}
	if _, err := s.CreateUser("devil", "b", "", ""); !errors.Is(err, ErrUsernameTaken) {
		t.Fatalf("duplicate create error = %v", err)
	}
}

func TestNetGainStarCrediting(t *testing.T) {
	s := New(newMemBackend())
	u, err := s.CreateUser("devil", "pw", "", "")
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	tests := []struct {
		name      string
		stars     int
		wantTotal int
	}{
		{name: "first clear with 2 stars", stars: 2, wantTotal: 2},
		{name: "worse rerun keeps total", stars: 1, wantTotal: 2},
		{name: "matching rerun keeps total", stars: 2, wantTotal: 2},
		{name: "improvement credits the delta", stars: 3, wantTotal: 3},
		{name: "repeat of best keeps total", stars: 3, wantTotal: 3},
	}
	for _, tt := range tests {
		total, err := s.RecordLevelAttempt(u.ID, 1, 4, tt.stars)
		if err != nil {
			t.Fatalf("%s: %v", tt.name, err)
		}
		if total != tt.wantTotal {
			t.Fatalf("%s: total = %d, want %d", tt.name, total, tt.wantTotal)
		}
	}

	// A second level accumulates independently.
	total, err := s.RecordLevelAttempt(u.ID, 2, 1, 3)
	if err != nil {
		t.Fatalf("level 2: %v", err)
	}
	if total != 6 {
		t.Fatalf("total after level 2 = %d, want 6", total)
	}
}

func TestGetPlayerLevelStars(t *testing.T) {
	s := New(newMemBackend())
	u, _ := s.CreateUser("devil", "pw", "", "")
	s.RecordLevelAttempt(u.ID, 1, 2, 3)
	s.RecordLevelAttempt(u.ID, 1, 9, 1)
	s.RecordLevelAttempt(u.ID, 4, 5, 2)

	stars, err := s.GetPlayerLevelStars(u.ID)
	if err != nil {
		t.Fatalf("get stars: %v", err)
	}
	if stars[1] != 3 || stars[4] != 2 {
		t.Fatalf("stars map = %v", stars)
	}
	if _, ok := stars[2]; ok {
		t.Fatalf("unplayed level has an entry")
	}
}

func TestDeleteUser(t *testing.T) {
	s := New(newMemBackend())
	u, _ := s.CreateUser("devil", "pw", "", "")
	s.RecordLevelAttempt(u.ID, 1, 1, 3)

	if err := s.DeleteUser(u.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := s.Authenticate("devil", "pw"); !errors.Is(err, ErrBadCredentials) {
		t.Fatalf("deleted user still authenticates")
	}
	stars, err := s.GetPlayerLevelStars(u.ID)
	if err != nil {
		t.Fatalf("get stars after delete: %v", err)
	}
	if len(stars) != 0 {
		t.Fatalf("attempts survived delete: %v", stars)
	}

	if err := s.DeleteUser("missing-id"); err == nil {
		t.Fatalf("deleting unknown id should fail")
	}
}

func TestDeathLogAndLethalSpots(t *testing.T) {
	s := New(newMemBackend())
	for i := 0; i < 3; i++ {
		if err := s.LogDeath(2, 100, 200); err != nil {
			t.Fatalf("log death: %v", err)
		}
	}
	s.LogDeath(2, 500, 300)
	s.LogDeath(7, 100, 200) // other level, must not count

	spots, err := s.MostLethalSpots(2, 5)
	if err != nil {
		t.Fatalf("lethal spots: %v", err)
	}
	if len(spots) != 2 {
		t.Fatalf("got %d spots, want 2", len(spots))
	}
	if spots[0].X != 100 || spots[0].Y != 200 || spots[0].Count != 3 {
		t.Fatalf("top spot = %+v", spots[0])
	}

	spots, _ = s.MostLethalSpots(2, 1)
	if len(spots) != 1 {
		t.Fatalf("limit ignored: %d spots", len(spots))
	}
}
