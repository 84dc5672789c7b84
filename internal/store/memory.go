// Package store keeps the session history of played games.
//
// History lives in process memory only; nothing survives a restart.
package store

import (
	"context"
	"errors"
	"sync"

	"github.com/robalobadob/ewordle/internal/game"
)

// ErrNotFound is returned by Get for unknown IDs.
var ErrNotFound = errors.New("not found")

// Store records games as they start, progress and finish.
type Store interface {
	// Save inserts g or replaces the game with the same ID.
	Save(ctx context.Context, g *game.Game) error

	// Get retrieves a game by ID.
	Get(ctx context.Context, id string) (*game.Game, error)

	// List returns all games in the order they were first saved.
	List(ctx context.Context) ([]*game.Game, error)

	// DailyPlayed reports whether a daily game for the date key was saved.
	DailyPlayed(ctx context.Context, date string) (bool, error)
}

type memory struct {
	mu      sync.RWMutex
	history []*game.Game   // first-save order
	byID    map[string]int // index into history
	daily   map[string]string
}

// NewMemoryStore returns an empty concurrency-safe Store.
func NewMemoryStore() Store {
	return &memory{
		byID:  make(map[string]int),
		daily: make(map[string]string),
	}
}

func (m *memory) Save(_ context.Context, g *game.Game) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if i, ok := m.byID[g.ID]; ok {
		m.history[i] = g
	} else {
		m.byID[g.ID] = len(m.history)
		m.history = append(m.history, g)
	}
	if g.Daily != "" {
		if _, ok := m.daily[g.Daily]; !ok {
			m.daily[g.Daily] = g.ID
		}
	}
	return nil
}

func (m *memory) Get(_ context.Context, id string) (*game.Game, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	i, ok := m.byID[id]
	if !ok {
		return nil, ErrNotFound
	}
	return m.history[i], nil
}

func (m *memory) List(_ context.Context) ([]*game.Game, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]*game.Game, len(m.history))
	copy(out, m.history)
	return out, nil
}

func (m *memory) DailyPlayed(_ context.Context, date string) (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	_, ok := m.daily[date]
	return ok, nil
}
