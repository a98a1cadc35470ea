// Package store persists accounts, level results, and death locations in the
// platform's app-data directory. Records are JSON documents behind a small
// key-value backend so tests can swap in memory.
package store

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/quasilyte/gdata"
)

// Backend is the key-value surface the store needs. *gdata.Manager satisfies
// it.
type Backend interface {
	SaveItem(itemKey string, data []byte) error
	LoadItem(itemKey string) ([]byte, error)
}

// ErrUsernameTaken is returned by CreateUser for a duplicate username.
var ErrUsernameTaken = errors.New("store: username already taken")

// ErrBadCredentials is returned by Authenticate when the username does not
// exist or the password does not match. Callers must not distinguish the two.
var ErrBadCredentials = errors.New("store: bad credentials")

// User is an account row. TotalStars only ever grows: recording a worse run
// on a level never subtracts.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"password_hash"`
	Name         string    `json:"name,omitempty"`
	DOB          string    `json:"dob,omitempty"`
	TotalStars   int       `json:"total_stars"`
	CreatedAt    time.Time `json:"created_at"`
}

// Attempt is one completed level run.
type Attempt struct {
	ID          string    `json:"id"`
	LevelID     int       `json:"level_id"`
	Attempts    int       `json:"attempts"`
	StarsEarned int       `json:"stars_earned"`
	CompletedAt time.Time `json:"completed_at"`
}

// Death is one recorded death position.
type Death struct {
	ID      string    `json:"id"`
	LevelID int       `json:"level_id"`
	X       int       `json:"x"`
	Y       int       `json:"y"`
	At      time.Time `json:"at"`
}

// DeathSpot aggregates deaths at one coordinate.
type DeathSpot struct {
	X     int
	Y     int
	Count int
}

// Store reads and writes the save data. Methods are synchronous; the game
// loop dispatches them off the frame when latency matters.
type Store struct {
	backend Backend
}

// Open creates a store over the platform app-data directory.
func Open(appName string) (*Store, error) {
	m, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		return nil, fmt.Errorf("store: open data dir: %w", err)
	}
	return New(m), nil
}

// New wraps an existing backend. Tests use this with an in-memory map.
func New(b Backend) *Store {
	return &Store{backend: b}
}

func hashPassword(raw string) string {
	sum := sha256.Sum256([]byte(raw))
	return hex.EncodeToString(sum[:])
}

const (
	playersKey = "players"
	deathsKey  = "deaths"
)

func attemptsKey(userID string) string {
	return "attempts/" + userID
}

func (s *Store) loadPlayers() (map[string]*User, error) {
	data, err := s.backend.LoadItem(playersKey)
	if err != nil {
		return nil, fmt.Errorf("store: load players: %w", err)
	}
	users := map[string]*User{}
	if len(data) == 0 {
		return users, nil
	}
	if err := json.Unmarshal(data, &users); err != nil {
		return nil, fmt.Errorf("store: decode players: %w", err)
	}
	return users, nil
}

func (s *Store) savePlayers(users map[string]*User) error {
	data, err := json.Marshal(users)
	if err != nil {
		return fmt.Errorf("store: encode players: %w", err)
	}
	if err := s.backend.SaveItem(playersKey, data); err != nil {
		return fmt.Errorf("store: save players: %w", err)
	}
	return nil
}

func (s *Store) loadAttempts(userID string) ([]Attempt, error) {
	data, err := s.backend.LoadItem(attemptsKey(userID))
	if err != nil {
		return nil, fmt.Errorf("store: load attempts: %w", err)
	}
	if len(data) == 0 {
		return nil, nil
	}
	var out []Attempt
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("store: decode attempts: %w", err)
	}
	return out, nil
}

func (s *Store) saveAttempts(userID string, attempts []Attempt) error {
	data, err := json.Marshal(attempts)
	if err != nil {
		return fmt.Errorf("store: encode attempts: %w", err)
	}
	if err := s.backend.SaveItem(attemptsKey(userID), data); err != nil {
		return fmt.Errorf("store: save attempts: %w", err)
	}
	return nil
}

// CreateUser registers an account with a salted-free sha256 password hash and
// zero stars.
func (s *Store) CreateUser(username, password, name, dob string) (*User, error) {
	users, err := s.loadPlayers()
	if err != nil {
		return nil, err
	}
	if _, exists := users[username]; exists {
		return nil, ErrUsernameTaken
	}
	u := &User{
		ID:           uuid.NewString(),
		Username:     username,
		PasswordHash: hashPassword(password),
		Name:         name,
		DOB:          dob,
		CreatedAt:    time.Now().UTC(),
	}
	users[username] = u
	if err := s.savePlayers(users); err != nil {
		return nil, err
	}
	return u, nil
}

// Authenticate checks the password against the stored hash.
func (s *Store) Authenticate(username, password string) (*User, error) {
	users, err := s.loadPlayers()
	if err != nil {
		return nil, err
	}
	u, ok := users[username]
	if !ok {
		return nil, ErrBadCredentials
	}
	if hashPassword(password) != u.PasswordHash {
		return nil, ErrBadCredentials
	}
	return u, nil
}

// DeleteUser removes the account and its attempt history.
func (s *Store) DeleteUser(userID string) error {
	users, err := s.loadPlayers()
	if err != nil {
		return err
	}
	var username string
	for name, u := range users {
		if u.ID == userID {
			username = name
			break
		}
	}
	if username == "" {
		return fmt.Errorf("store: no user with id %s", userID)
	}
	delete(users, username)
	if err := s.savePlayers(users); err != nil {
		return err
	}
	if err := s.saveAttempts(userID, nil); err != nil {
		return err
	}
	return nil
}

// maxStarsForLevel is the user's best recorded result on a level, zero if
// never finished.
func maxStarsForLevel(attempts []Attempt, levelID int) int {
	best := 0
	for _, a := range attempts {
		if a.LevelID == levelID && a.StarsEarned > best {
			best = a.StarsEarned
		}
	}
	return best
}

// RecordLevelAttempt appends the run and credits only the net gain over the
// previous best to the user's total. A worse run is stored for metrics but
// never subtracts stars. Returns the updated total.
func (s *Store) RecordLevelAttempt(userID string, levelID, attempts, starsEarned int) (int, error) {
	history, err := s.loadAttempts(userID)
	if err != nil {
		return 0, err
	}
	delta := starsEarned - maxStarsForLevel(history, levelID)
	if delta < 0 {
		delta = 0
	}

	history = append(history, Attempt{
		ID:          uuid.NewString(),
		LevelID:     levelID,
		Attempts:    attempts,
		StarsEarned: starsEarned,
		CompletedAt: time.Now().UTC(),
	})
	if err := s.saveAttempts(userID, history); err != nil {
		return 0, err
	}

	users, err := s.loadPlayers()
	if err != nil {
		return 0, err
	}
	for _, u := range users {
		if u.ID == userID {
			if delta > 0 {
				u.TotalStars += delta
				if err := s.savePlayers(users); err != nil {
					return 0, err
				}
			}
			return u.TotalStars, nil
		}
	}
	return 0, fmt.Errorf("store: no user with id %s", userID)
}

// GetPlayerLevelStars maps level id to the user's best stars, for the map
// screen's unlock and rating display.
func (s *Store) GetPlayerLevelStars(userID string) (map[int]int, error) {
	history, err := s.loadAttempts(userID)
	if err != nil {
		return nil, err
	}
	out := map[int]int{}
	for _, a := range history {
		if a.StarsEarned > out[a.LevelID] {
			out[a.LevelID] = a.StarsEarned
		}
	}
	return out, nil
}

// LogDeath appends a death position to the global death log.
func (s *Store) LogDeath(levelID, x, y int) error {
	data, err := s.backend.LoadItem(deathsKey)
	if err != nil {
		return fmt.Errorf("store: load deaths: %w", err)
	}
	var deaths []Death
	if len(data) > 0 {
		if err := json.Unmarshal(data, &deaths); err != nil {
			return fmt.Errorf("store: decode deaths: %w", err)
		}
	}
	deaths = append(deaths, Death{
		ID:      uuid.NewString(),
		LevelID: levelID,
		X:       x,
		Y:       y,
		At:      time.Now().UTC(),
	})
	out, err := json.Marshal(deaths)
	if err != nil {
		return fmt.Errorf("store: encode deaths: %w", err)
	}
	if err := s.backend.SaveItem(deathsKey, out); err != nil {
		return fmt.Errorf("store: save deaths: %w", err)
	}
	return nil
}

// MostLethalSpots returns the top death coordinates for a level, most deaths
// first.
func (s *Store) MostLethalSpots(levelID, limit int) ([]DeathSpot, error) {
	data, err := s.backend.LoadItem(deathsKey)
	if err != nil {
		return nil, fmt.Errorf("store: load deaths: %w", err)
	}
	var deaths []Death
	if len(data) > 0 {
		if err := json.Unmarshal(data, &deaths); err != nil {
			return nil, fmt.Errorf("store: decode deaths: %w", err)
		}
	}
	counts := map[[2]int]int{}
	for _, d := range deaths {
		if d.LevelID == levelID {
			counts[[2]int{d.X, d.Y}]++
		}
	}
	spots := make([]DeathSpot, 0, len(counts))
	for pos, n := range counts {
		spots = append(spots, DeathSpot{X: pos[0], Y: pos[1], Count: n})
	}
	sort.Slice(spots, func(i, j int) bool { return spots[i].Count > spots[j].Count })
	if limit > 0 && len(spots) > limit {
		spots = spots[:limit]
	}
	return spots, nil
}

// TotalStars fetches the user's current star total.
func (s *Store) TotalStars(userID string) (int, error) {
	users, err := s.loadPlayers()
	if err != nil {
		return 0, err
	}
	for _, u := range users {
		if u.ID == userID {
			return u.TotalStars, nil
		}
	}
	return 0, fmt.Errorf("store: no user with id %s", userID)
}
