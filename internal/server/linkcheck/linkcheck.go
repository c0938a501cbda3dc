// Package linkcheck проверяет доступность внешних ссылок перед сохранением закладки.
package linkcheck

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"net/url"
	"time"
)

// Коды ошибок проверки ссылки, попадают в поле error.code ответа
const (
	// CodeTimeout - внешний ресурс не ответил вовремя
	CodeTimeout = "link_timeout"
	// CodeUnreachable - ресурс недоступен или вернул ошибочный статус
	CodeUnreachable = "link_unreachable"
	// CodeInvalidFormat - ссылка имеет неверный формат
	CodeInvalidFormat = "link_invalid_format"
)

// Ошибки проверки ссылки
var (
	ErrTimeout       = errors.New("external link check timed out")
	ErrUnreachable   = errors.New("external link is unreachable or returned error status")
	ErrInvalidFormat = errors.New("link format is invalid or check failed")
)

// DefaultTimeout - таймаут HEAD запроса к внешнему ресурсу
const DefaultTimeout = 5 * time.Second

// Checker проверяет внешние ссылки HEAD запросом
type Checker struct {
	httpClient *http.Client
	logger     *slog.Logger
}

// New создает новый Checker с дефолтным таймаутом
func New(logger *slog.Logger) *Checker {
	return &Checker{
		logger: logger,
		httpClient: &http.Client{
			Timeout: DefaultTimeout,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				// Ограничиваем количество редиректов
				if len(via) >= 10 {
					return fmt.Errorf("stopped after 10 redirects")
				}
				return nil
			},
		},
	}
}

// Check проверяет доступность ссылки HEAD запросом
// Пустая ссылка считается валидной (закладка без ссылки)
func (c *Checker) Check(ctx context.Context, link string) error {
	if link == "" {
		return nil
	}

	parsed, err := url.Parse(link)
	if err != nil || (parsed.Scheme != "http" && parsed.Scheme != "https") || parsed.Host == "" {
		return ErrInvalidFormat
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodHead, link, nil)
	if err != nil {
		return ErrInvalidFormat
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		var netErr net.Error
		if errors.As(err, &netErr) && netErr.Timeout() {
			c.logger.WarnContext(ctx, "link check timed out", slog.String("link", link))
			return ErrTimeout
		}
		if errors.Is(err, context.DeadlineExceeded) {
			c.logger.WarnContext(ctx, "link check timed out", slog.String("link", link))
			return ErrTimeout
		}

		c.logger.WarnContext(ctx, "link check failed", slog.String("link", link), slog.Any("error", err))
		return ErrUnreachable
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		c.logger.WarnContext(ctx, "link returned error status",
			slog.String("link", link),
			slog.Int("status", resp.StatusCode))
		return ErrUnreachable
	}

	return nil
}
