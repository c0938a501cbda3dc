package ratelimit

import (
	"context"
	"sync"
	"time"
)

// MemoryStore represents process-local in-memory rate limit store
// Записи переживают только жизнь процесса; для multi-instance деплоя
// нужна реализация Store поверх общего хранилища
type MemoryStore struct {
	entries  map[string]Entry
	cleanupC chan struct{}
	window   time.Duration
	mu       sync.RWMutex
}

// NewMemoryStore создает новый in-memory store
// window используется для периодической очистки неактивных записей
func NewMemoryStore(window time.Duration) *MemoryStore {
	s := &MemoryStore{
		entries:  make(map[string]Entry),
		cleanupC: make(chan struct{}),
		window:   window,
	}

	// Запускаем периодическую очистку, иначе записи копятся бесконечно
	go s.cleanup()

	return s
}

// Get retrieves entry for identity
func (s *MemoryStore) Get(ctx context.Context, identity string) (*Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entry, ok := s.entries[identity]
	if !ok {
		return nil, nil
	}

	// Возвращаем копию, чтобы вызывающий не мутировал map напрямую
	return &entry, nil
}

// Put stores entry for identity
func (s *MemoryStore) Put(ctx context.Context, identity string, entry *Entry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries[identity] = *entry
	return nil
}

// Len возвращает текущее количество записей (для тестов и метрик)
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

// Stop останавливает cleanup goroutine
func (s *MemoryStore) Stop() {
	close(s.cleanupC)
}

// cleanup периодически удаляет неактивные записи для экономии памяти
func (s *MemoryStore) cleanup() {
	ticker := time.NewTicker(s.window * 2)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.removeStale(time.Now())
		case <-s.cleanupC:
			return
		}
	}
}

// removeStale удаляет записи без активности дольше 2*window
// Записи с действующей блокировкой не удаляются
func (s *MemoryStore) removeStale(now time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for identity, entry := range s.entries {
		if now.Before(entry.LockoutUntil) {
			continue
		}
		if now.Sub(entry.LastAttempt) > s.window*2 {
			delete(s.entries, identity)
		}
	}
}
