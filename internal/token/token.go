// Package token генерирует публичные слаги досок и секретные токены владельцев.
package token

import (
	gonanoid "github.com/matoous/go-nanoid/v2"
)

const (
	SlugLength       = 10
	OwnerTokenLength = 32
)

// Slug возвращает случайный URL-безопасный идентификатор доски.
func Slug() (string, error) {
	return gonanoid.New(SlugLength)
}

// OwnerToken возвращает секрет владельца доски.
func OwnerToken() (string, error) {
	return gonanoid.New(OwnerTokenLength)
}
