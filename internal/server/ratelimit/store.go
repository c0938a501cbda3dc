package ratelimit

import (
	"context"
	"time"
)

// Entry хранит состояние попыток входа для одного identity
type Entry struct {
	Count        int       // количество попыток в текущем окне
	LastAttempt  time.Time // время последней попытки
	LockoutUntil time.Time // время окончания блокировки (zero value - блокировки нет)
}

// Store defines interface for rate limit entry persistence
// Реализация по умолчанию - process-local map; интерфейс позволяет
// заменить ее на общий store (например Redis) без изменения Limiter
type Store interface {
	// Get retrieves entry for identity
	// Returns nil if no entry exists
	Get(ctx context.Context, identity string) (*Entry, error)

	// Put stores entry for identity, replacing any existing one
	Put(ctx context.Context, identity string, entry *Entry) error
}
