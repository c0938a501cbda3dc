package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"
)

// DefaultJWTSecret используется только если JWT_SECRET_KEY не задан
// В production обязательно задавать секрет через окружение
const DefaultJWTSecret = "fallback-insecure-key-use-env-var-in-prod"

// Server содержит конфигурацию сервера
// Все значения читаются из переменных окружения с дефолтами
type Server struct {
	Addr      string // адрес HTTP сервера (LINKKEEPER_ADDR)
	DBPath    string // путь к файлу SQLite (LINKKEEPER_DB_PATH)
	JWTSecret string // секрет для подписи токенов (JWT_SECRET_KEY)

	AccessTokenTTL time.Duration // время жизни access token (ACCESS_TOKEN_EXPIRE_MINUTES)
	IdleTimeout    time.Duration // idle timeout сессии (IDLE_TIMEOUT_MINUTES)

	LoginMaxAttempts int           // максимум попыток входа в окне (LOGIN_MAX_ATTEMPTS)
	LoginWindow      time.Duration // окно подсчета попыток (LOGIN_WINDOW_SECONDS)
	LoginLockout     time.Duration // длительность блокировки (LOGIN_LOCKOUT_SECONDS)

	LogLevel slog.Level // уровень логирования (LOG_LEVEL)
}

// Client содержит конфигурацию CLI клиента
type Client struct {
	ServerURL string // базовый URL сервера (LINKKEEPER_SERVER_URL)
	DBPath    string // путь к локальной BoltDB (LINKKEEPER_CLIENT_DB)
}

// LoadServer читает конфигурацию сервера из переменных окружения
func LoadServer() (*Server, error) {
	cfg := &Server{
		Addr:      getEnv("LINKKEEPER_ADDR", ":8080"),
		DBPath:    getEnv("LINKKEEPER_DB_PATH", "linkkeeper.db"),
		JWTSecret: getEnv("JWT_SECRET_KEY", DefaultJWTSecret),
	}

	tokenMinutes, err := getEnvInt("ACCESS_TOKEN_EXPIRE_MINUTES", 30)
	if err != nil {
		return nil, err
	}
	cfg.AccessTokenTTL = time.Duration(tokenMinutes) * time.Minute

	idleMinutes, err := getEnvInt("IDLE_TIMEOUT_MINUTES", 60)
	if err != nil {
		return nil, err
	}
	cfg.IdleTimeout = time.Duration(idleMinutes) * time.Minute

	maxAttempts, err := getEnvInt("LOGIN_MAX_ATTEMPTS", 5)
	if err != nil {
		return nil, err
	}
	cfg.LoginMaxAttempts = maxAttempts

	windowSeconds, err := getEnvInt("LOGIN_WINDOW_SECONDS", 300)
	if err != nil {
		return nil, err
	}
	cfg.LoginWindow = time.Duration(windowSeconds) * time.Second

	lockoutSeconds, err := getEnvInt("LOGIN_LOCKOUT_SECONDS", 600)
	if err != nil {
		return nil, err
	}
	cfg.LoginLockout = time.Duration(lockoutSeconds) * time.Second

	level, err := parseLogLevel(getEnv("LOG_LEVEL", "info"))
	if err != nil {
		return nil, err
	}
	cfg.LogLevel = level

	return cfg, nil
}

// LoadClient читает конфигурацию клиента из переменных окружения
func LoadClient() *Client {
	return &Client{
		ServerURL: getEnv("LINKKEEPER_SERVER_URL", "http://localhost:8080"),
		DBPath:    getEnv("LINKKEEPER_CLIENT_DB", "linkkeeper-client.db"),
	}
}

// IsDefaultSecret сообщает, используется ли небезопасный дефолтный секрет
func (c *Server) IsDefaultSecret() bool {
	return c.JWTSecret == DefaultJWTSecret
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return fallback, nil
	}

	parsed, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid value for %s: %w", key, err)
	}
	if parsed <= 0 {
		return 0, fmt.Errorf("invalid value for %s: must be positive, got %d", key, parsed)
	}

	return parsed, nil
}

func parseLogLevel(value string) (slog.Level, error) {
	switch value {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("invalid LOG_LEVEL: %q (expected debug, info, warn or error)", value)
	}
}
