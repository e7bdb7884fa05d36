// Package score bridges game sessions to persistent best scores. When the
// backing store fails, the bridge keeps bests in memory for the rest of the
// run so play is never interrupted.
package score

import (
	"sync"

	"github.com/charmbracelet/log"
)

// Best score keys. Only snake and flappy persist a best.
const (
	KeySnake  = "snakeHighScore"
	KeyFlappy = "flappyBest"
)

// Store loads and saves scalar best scores by key.
type Store interface {
	// LoadBest returns the stored best, or 0 when none was saved.
	LoadBest(key string) (int, error)
	SaveBest(key string, value int) error
}

// Bridge caches best scores and writes a new best through to the store
// only when it strictly beats the known best. Safe for concurrent use.
type Bridge struct {
	mu     sync.Mutex
	store  Store
	logger *log.Logger
	best   map[string]int
}

// NewBridge creates a bridge over store. A nil store keeps everything in
// memory. A nil logger discards warnings.
func NewBridge(store Store, logger *log.Logger) *Bridge {
	return &Bridge{
		store:  store,
		logger: logger,
		best:   make(map[string]int),
	}
}

// Best returns the best score for key, loading it on first use. A failing
// load is logged and treated as 0.
func (b *Bridge) Best(key string) int {
	if key == "" {
		return 0
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.bestLocked(key)
}

func (b *Bridge) bestLocked(key string) int {
	if v, ok := b.best[key]; ok {
		return v
	}
	v := 0
	if b.store != nil {
		loaded, err := b.store.LoadBest(key)
		if err != nil {
			b.warn("best score unavailable, using in-memory value", "key", key, "err", err)
		} else {
			v = loaded
		}
	}
	b.best[key] = v
	return v
}

// Record offers a final session score. It returns the best after the offer
// and whether this score became the new best. The store is written only on
// improvement; a failed write keeps the value in memory.
func (b *Bridge) Record(key string, score int) (best int, improved bool) {
	if key == "" {
		return 0, false
	}
	b.mu.Lock()
	defer b.mu.Unlock()

	current := b.bestLocked(key)
	if score <= current {
		return current, false
	}
	b.best[key] = score
	if b.store != nil {
		if err := b.store.SaveBest(key, score); err != nil {
			b.warn("cannot persist best score", "key", key, "score", score, "err", err)
		}
	}
	return score, true
}

func (b *Bridge) warn(msg string, keyvals ...any) {
	if b.logger != nil {
		b.logger.Warn(msg, keyvals...)
	}
}

// MemoryStore is a Store that lives for the process only.
type MemoryStore struct {
	mu     sync.Mutex
	values map[string]int
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: make(map[string]int)}
}

func (m *MemoryStore) LoadBest(key string) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.values[key], nil
}

func (m *MemoryStore) SaveBest(key string, value int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
	return nil
}
