package api

// RegisterRequest представляет запрос на регистрацию нового пользователя
type RegisterRequest struct {
	Username string `json:"username"` // username пользователя (3-64 символа)
	Password string `json:"password"` // пароль (6-64 символа)
}

// UserResponse представляет публичные данные пользователя
type UserResponse struct {
	ID       string `json:"id"`       // UUID пользователя
	Username string `json:"username"` // уникальный username
}

// LoginRequest представляет запрос на аутентификацию
type LoginRequest struct {
	Username string `json:"username"` // username пользователя
	Password string `json:"password"` // пароль
}

// LoginResponse представляет ответ на успешный login
type LoginResponse struct {
	Message     string `json:"message"`      // сообщение об успешном входе
	AccessToken string `json:"access_token"` // подписанный session token
	TokenType   string `json:"token_type"`   // всегда "bearer"
}

// ErrorDetail содержит машиночитаемый код и сообщение для пользователя
type ErrorDetail struct {
	Code    string `json:"code"`    // машиночитаемый код ошибки
	Message string `json:"message"` // человекочитаемое сообщение
}

// ErrorResponse представляет единый формат ошибки API
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}
