// Package token выпускает и проверяет подписанные session токены
// с абсолютным сроком жизни и idle timeout.
package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Ошибки валидации токена. Наружу все они отображаются в единый
// ответ 401 - внутренние различия не должны утекать клиенту.
var (
	// ErrTokenExpiredOrInvalid - подпись не сошлась, структура битая или токен истек
	ErrTokenExpiredOrInvalid = errors.New("token is invalid or expired")
	// ErrTokenInvalid - в payload отсутствует subject
	ErrTokenInvalid = errors.New("token payload missing subject")
	// ErrSessionExpired - превышен idle timeout сессии
	ErrSessionExpired = errors.New("session expired due to inactivity")
)

// Claims представляет payload session токена
// last_activity фиксируется при выпуске и не обновляется при использовании:
// токен неизменяем, "продление" активности требует выпуска нового токена
type Claims struct {
	LastActivity int64 `json:"last_activity"` // unix timestamp последней активности
	jwt.RegisteredClaims
}

// Config содержит параметры выпуска и проверки токенов
type Config struct {
	Secret         []byte        // секрет для HMAC подписи
	AccessTokenTTL time.Duration // абсолютный срок жизни токена
	IdleTimeout    time.Duration // максимальное время с last_activity
}

// Service выпускает и валидирует session токены
type Service struct {
	nowFunc func() time.Time
	cfg     Config
}

// NewService создает новый token service
// Secret должен быть криптографически стойкой случайной строкой
func NewService(cfg Config) *Service {
	return &Service{
		cfg:     cfg,
		nowFunc: time.Now,
	}
}

// Issue выпускает подписанный токен для subject
// Возвращает токен и время жизни в секундах
func (s *Service) Issue(subject string) (string, int64, error) {
	if subject == "" {
		return "", 0, fmt.Errorf("subject cannot be empty")
	}

	now := s.nowFunc()
	expiresAt := now.Add(s.cfg.AccessTokenTTL)

	claims := Claims{
		LastActivity: now.Unix(),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    "linkkeeper",
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(s.cfg.Secret)
	if err != nil {
		return "", 0, fmt.Errorf("failed to sign token: %w", err)
	}

	return tokenString, int64(s.cfg.AccessTokenTTL.Seconds()), nil
}

// Validate проверяет токен и возвращает subject
// Любая проблема декодирования, подписи или срока жизни дает
// ErrTokenExpiredOrInvalid; различать причины вызывающий не должен.
// Idle timeout проверяется отдельно от exp и может сработать раньше него.
func (s *Service) Validate(tokenString string) (string, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		// Проверяем что используется правильный алгоритм подписи
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.cfg.Secret, nil
	}, jwt.WithTimeFunc(s.nowFunc))

	if err != nil {
		return "", ErrTokenExpiredOrInvalid
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return "", ErrTokenExpiredOrInvalid
	}

	if claims.Subject == "" {
		return "", ErrTokenInvalid
	}

	now := s.nowFunc()
	if claims.LastActivity > 0 && now.Unix()-claims.LastActivity > int64(s.cfg.IdleTimeout.Seconds()) {
		return "", ErrSessionExpired
	}

	return claims.Subject, nil
}
