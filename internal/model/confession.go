package model

import "time"

// Confession — анонимное сообщение на доске.
type Confession struct {
	ID      string `gorm:"primaryKey;type:uuid"`
	BoardID string `gorm:"not null;index;type:uuid"`

	Content  string `gorm:"not null"`
	Nickname *string

	// Составной индекс (fingerprint, created_at) обслуживает rate limit.
	Fingerprint string `gorm:"not null;index:idx_confessions_fingerprint_created,priority:1"`
	CreatedAt   int64  `gorm:"not null;autoCreateTime:false;index:idx_confessions_fingerprint_created,priority:2"`
	ExpiresAt   int64  `gorm:"not null;index"`

	Reactions []Reaction `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

// ExpiredAt сообщает, прошёл ли срок жизни сообщения.
func (c *Confession) ExpiredAt(now time.Time) bool {
	return c.ExpiresAt < now.UnixMilli()
}

// VisibleAt — в выдаче остаются только сообщения со сроком строго в будущем.
func (c *Confession) VisibleAt(now time.Time) bool {
	return c.ExpiresAt > now.UnixMilli()
}
