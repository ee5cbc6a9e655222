package store

import (
	"context"
	"sync"
	"time"
)

// memoryAttemptStorage is a process-local fixed-window counter. Expired
// windows are dropped lazily on every Hit.
type memoryAttemptStorage struct {
	mu      sync.Mutex
	windows map[string]*attemptWindow
	now     func() time.Time
}

type attemptWindow struct {
	count     int64
	expiresAt time.Time
}

// NewMemoryAttemptStorage returns an [AttemptStorage] kept in memory. It is
// used when no Redis address is configured.
func NewMemoryAttemptStorage() AttemptStorage {
	return &memoryAttemptStorage{
		windows: make(map[string]*attemptWindow),
		now:     time.Now,
	}
}

func (m *memoryAttemptStorage) Hit(_ context.Context, key string, window time.Duration) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	for k, w := range m.windows {
		if !now.Before(w.expiresAt) {
			delete(m.windows, k)
		}
	}

	w, ok := m.windows[key]
	if !ok {
		w = &attemptWindow{expiresAt: now.Add(window)}
		m.windows[key] = w
	}
	w.count++

	return w.count, nil
}

func (m *memoryAttemptStorage) Reset(_ context.Context, key string) error {
	m.mu.Lock()
	delete(m.windows, key)
	m.mu.Unlock()
	return nil
}
