package storage

import "errors"

// ErrSessionNotFound indicates that no session is stored locally
var ErrSessionNotFound = errors.New("session not found, please login")
