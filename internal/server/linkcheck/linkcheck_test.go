package linkcheck

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func setupTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestChecker_EmptyLink(t *testing.T) {
	c := New(setupTestLogger())

	err := c.Check(context.Background(), "")
	assert.NoError(t, err)
}

func TestChecker_ReachableLink(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodHead, r.Method)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	c := New(setupTestLogger())

	err := c.Check(context.Background(), srv.URL)
	assert.NoError(t, err)
}

func TestChecker_RedirectsAreFollowed(t *testing.T) {
	final := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer final.Close()

	redirecting := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, final.URL, http.StatusMovedPermanently)
	}))
	defer redirecting.Close()

	c := New(setupTestLogger())

	err := c.Check(context.Background(), redirecting.URL)
	assert.NoError(t, err)
}

func TestChecker_InvalidFormat(t *testing.T) {
	c := New(setupTestLogger())

	tests := []struct {
		name string
		link string
	}{
		{"no scheme", "example.com/page"},
		{"unsupported scheme", "ftp://example.com/file"},
		{"scheme only", "http://"},
		{"not a url", "::broken::"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := c.Check(context.Background(), tt.link)
			assert.ErrorIs(t, err, ErrInvalidFormat)
		})
	}
}

func TestChecker_ErrorStatus(t *testing.T) {
	tests := []struct {
		name   string
		status int
	}{
		{"not found", http.StatusNotFound},
		{"server error", http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
			}))
			defer srv.Close()

			c := New(setupTestLogger())

			err := c.Check(context.Background(), srv.URL)
			assert.ErrorIs(t, err, ErrUnreachable)
		})
	}
}

func TestChecker_ConnectionRefused(t *testing.T) {
	// Сервер закрыт до запроса - соединение отклоняется
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	c := New(setupTestLogger())

	err := c.Check(context.Background(), url)
	assert.ErrorIs(t, err, ErrUnreachable)
}

func TestChecker_Timeout(t *testing.T) {
	block := make(chan struct{})
	defer close(block)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-block:
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()

	c := New(setupTestLogger())

	// Контекст с коротким дедлайном истекает раньше ответа
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	err := c.Check(ctx, srv.URL)
	assert.ErrorIs(t, err, ErrTimeout)
}
