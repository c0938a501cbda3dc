// Package ratelimit реализует per-identity ограничение попыток входа
// с окном подсчета и эскалацией в блокировку.
package ratelimit

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"
)

// Коды ошибок rate limiter, попадают в поле error.code ответа
const (
	// CodeExceeded - попытка во время действующей блокировки
	CodeExceeded = "rate_limit_exceeded"
	// CodeLockout - попытка, превысившая порог и установившая блокировку
	CodeLockout = "rate_limit_lockout"
)

// Дефолтные параметры лимитера
const (
	DefaultMaxAttempts = 5
	DefaultWindow      = 5 * time.Minute
	DefaultLockout     = 10 * time.Minute
)

// Error возвращается когда попытка входа отклонена лимитером
type Error struct {
	Until   time.Time     // когда блокировка закончится
	Lockout time.Duration // полная длительность блокировки
	Code    string        // CodeExceeded или CodeLockout
}

// Error возвращает сообщение для пользователя с оставшимся временем
func (e *Error) Error() string {
	if e.Code == CodeLockout {
		return fmt.Sprintf("Account locked for %.0f minutes", e.Lockout.Minutes())
	}
	return fmt.Sprintf("Too many attempts. Blocked until %d", e.Until.Unix())
}

// Config содержит параметры лимитера
type Config struct {
	MaxAttempts int           // порог попыток в окне
	Window      time.Duration // окно подсчета попыток
	Lockout     time.Duration // длительность блокировки после превышения
}

// DefaultConfig возвращает конфигурацию с дефолтными параметрами
func DefaultConfig() Config {
	return Config{
		MaxAttempts: DefaultMaxAttempts,
		Window:      DefaultWindow,
		Lockout:     DefaultLockout,
	}
}

// Limiter считает попытки входа по identity и блокирует брутфорс
type Limiter struct {
	store   Store
	logger  *slog.Logger
	nowFunc func() time.Time
	cfg     Config
	mu      sync.Mutex
}

// New создает новый Limiter поверх переданного store
func New(store Store, cfg Config, logger *slog.Logger) *Limiter {
	return &Limiter{
		store:   store,
		cfg:     cfg,
		logger:  logger,
		nowFunc: time.Now,
	}
}

// CheckAndRecord проверяет и записывает попытку входа для identity.
// Вызывается на каждую попытку, включая успешные - успешный вход
// не сбрасывает счетчик.
// Возвращает *Error если identity заблокирован или только что превысил порог.
//
// Последовательность проверок фиксирована:
//  1. действующая блокировка - отказ без изменения записи
//  2. сброс счетчика, если окно истекло
//  3. запись попытки и инкремент счетчика
//  4. превышение порога - установка блокировки и отказ
func (l *Limiter) CheckAndRecord(ctx context.Context, identity string) error {
	if identity == "" {
		return fmt.Errorf("identity cannot be empty")
	}

	// Read-modify-write для одного identity должен быть атомарным:
	// конкурентные логины не должны оба увидеть count ниже порога
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.nowFunc()

	entry, err := l.store.Get(ctx, identity)
	if err != nil {
		return fmt.Errorf("failed to get rate limit entry: %w", err)
	}
	if entry == nil {
		entry = &Entry{}
	}

	// Блокировка проверяется раньше любой логики окна и не меняет запись
	if now.Before(entry.LockoutUntil) {
		l.logger.WarnContext(ctx, "login attempt while locked out",
			slog.String("identity", identity),
			slog.Time("lockout_until", entry.LockoutUntil))
		return &Error{Code: CodeExceeded, Until: entry.LockoutUntil, Lockout: l.cfg.Lockout}
	}

	// Окно закрылось - счетчик начинается заново
	if now.Sub(entry.LastAttempt) > l.cfg.Window {
		entry.Count = 0
	}

	entry.LastAttempt = now
	entry.Count++

	if entry.Count > l.cfg.MaxAttempts {
		entry.LockoutUntil = now.Add(l.cfg.Lockout)

		if err := l.store.Put(ctx, identity, entry); err != nil {
			return fmt.Errorf("failed to store rate limit entry: %w", err)
		}

		l.logger.WarnContext(ctx, "identity locked out",
			slog.String("identity", identity),
			slog.Int("attempts", entry.Count),
			slog.Time("lockout_until", entry.LockoutUntil))

		return &Error{Code: CodeLockout, Until: entry.LockoutUntil, Lockout: l.cfg.Lockout}
	}

	if err := l.store.Put(ctx, identity, entry); err != nil {
		return fmt.Errorf("failed to store rate limit entry: %w", err)
	}

	return nil
}
