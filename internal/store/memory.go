// internal/store/memory.go
//
// In-memory session store for active games.
//
// Characteristics:
//   - Stores *game.Game objects keyed by ID, each tagged with the player that
//     owns it and the time it was last touched.
//   - A player holds at most one game: saving a new one drops the previous.
//   - Update runs its callback with the store lock held, so at most one
//     guess per game is being applied at any time.
//   - Sweep evicts finished and idle games; state is lost on restart.

package store

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/robalobadob/lumiere-wordle/internal/game"
)

var (
	// ErrNotFound is returned for unknown game IDs.
	ErrNotFound = errors.New("store: game not found")
	// ErrForbidden is returned when a game exists but belongs to another player.
	ErrForbidden = errors.New("store: game belongs to another player")
)

// Store defines the session-holding interface used by the HTTP layer.
// Every game access names the owner; a mismatch yields ErrForbidden.
type Store interface {
	// Save adds g for owner, replacing (and dropping) owner's previous game.
	Save(ctx context.Context, owner string, g *game.Game) error

	// Update runs fn on the game with exclusive access and returns fn's error.
	Update(ctx context.Context, id, owner string, fn func(*game.Game) error) error

	// View runs fn on the game while no Update can run.
	View(ctx context.Context, id, owner string, fn func(*game.Game) error) error

	// Delete drops a game.
	Delete(ctx context.Context, id, owner string) error

	// Sweep drops terminal games untouched for finished and any game untouched
	// for idle, returning how many were removed. A zero duration disables that rule.
	Sweep(ctx context.Context, finished, idle time.Duration) (int, error)

	// Len reports how many games are held.
	Len() int
}

type entry struct {
	g       *game.Game
	owner   string
	touched time.Time
}

// memory is an in-memory map-based Store implementation.
type memory struct {
	mu      sync.RWMutex      // guards games, byOwner and the games themselves
	games   map[string]*entry // keyed by Game.ID()
	byOwner map[string]string // owner → game ID
	now     func() time.Time
}

// Option customizes the memory store.
type Option func(*memory)

// WithClock overrides the time source used for last-touched stamps.
func WithClock(now func() time.Time) Option {
	return func(m *memory) { m.now = now }
}

// NewMemoryStore constructs a new in-memory Store.
func NewMemoryStore(opts ...Option) Store {
	m := &memory{
		games:   make(map[string]*entry),
		byOwner: make(map[string]string),
		now:     time.Now,
	}
	for _, o := range opts {
		o(m)
	}
	return m
}

func (m *memory) Save(ctx context.Context, owner string, g *game.Game) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if prev, ok := m.byOwner[owner]; ok && prev != g.ID() {
		delete(m.games, prev)
	}
	m.games[g.ID()] = &entry{g: g, owner: owner, touched: m.now()}
	m.byOwner[owner] = g.ID()
	return nil
}

// lookup must be called with m.mu held.
func (m *memory) lookup(id, owner string) (*entry, error) {
	e, ok := m.games[id]
	if !ok {
		return nil, ErrNotFound
	}
	if e.owner != owner {
		return nil, ErrForbidden
	}
	return e, nil
}

func (m *memory) Update(ctx context.Context, id, owner string, fn func(*game.Game) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	e, err := m.lookup(id, owner)
	if err != nil {
		return err
	}
	e.touched = m.now()
	return fn(e.g)
}

func (m *memory) View(ctx context.Context, id, owner string, fn func(*game.Game) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	e, err := m.lookup(id, owner)
	if err != nil {
		return err
	}
	return fn(e.g)
}

func (m *memory) Delete(ctx context.Context, id, owner string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, err := m.lookup(id, owner); err != nil {
		return err
	}
	m.remove(id)
	return nil
}

// remove must be called with m.mu held.
func (m *memory) remove(id string) {
	e, ok := m.games[id]
	if !ok {
		return
	}
	delete(m.games, id)
	if m.byOwner[e.owner] == id {
		delete(m.byOwner, e.owner)
	}
}

func (m *memory) Sweep(ctx context.Context, finished, idle time.Duration) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	now := m.now()
	removed := 0
	for id, e := range m.games {
		age := now.Sub(e.touched)
		if (finished > 0 && e.g.Status().Terminal() && age >= finished) || (idle > 0 && age >= idle) {
			m.remove(id)
			removed++
		}
	}
	return removed, nil
}

func (m *memory) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.games)
}
