package service

import "errors"

// Ошибки бизнес-уровня. Конкретика добавляется через fmt.Errorf("%w"),
// проверять следует через errors.Is.
var (
	ErrValidation  = errors.New("validation failed")
	ErrRateLimited = errors.New("rate limit exceeded")
	ErrNotFound    = errors.New("not found")
	ErrLocked      = errors.New("is locked")
	ErrExpired     = errors.New("has expired")
	// ErrConflict — состояние реакции менялось конкурентно и не стабилизировалось.
	ErrConflict = errors.New("concurrent modification")
)
