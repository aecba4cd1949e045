package service

import "time"

const (
	MinBoardLifetime     = time.Hour
	MaxBoardLifetime     = 14 * 24 * time.Hour
	DefaultBoardLifetime = 12 * time.Hour

	// ConfessionLifetime — верхняя граница жизни сообщения, независимо от доски.
	ConfessionLifetime = 8 * time.Hour

	MaxContentLength = 300

	RateLimitWindow   = time.Hour
	RateLimitMaxPosts = 5
)
