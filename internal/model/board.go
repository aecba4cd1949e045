package model

import "time"

// Theme — цветовая тема доски.
type Theme string

const (
	ThemeIndigo  Theme = "indigo"
	ThemeTeal    Theme = "teal"
	ThemeAmber   Theme = "amber"
	ThemeRed     Theme = "red"
	ThemePurple  Theme = "purple"
	ThemeEmerald Theme = "emerald"
)

// DefaultTheme применяется, если тема при создании не указана.
const DefaultTheme = ThemeIndigo

// Valid сообщает, входит ли тема в список поддерживаемых.
func (t Theme) Valid() bool {
	switch t {
	case ThemeIndigo, ThemeTeal, ThemeAmber, ThemeRed, ThemePurple, ThemeEmerald:
		return true
	}
	return false
}

// Board — серверная модель доски с анонимными сообщениями.
// Все временные метки хранятся в миллисекундах Unix.
type Board struct {
	ID          string  `gorm:"primaryKey;type:uuid"`
	Slug        string  `gorm:"not null;uniqueIndex"`
	Name        string  `gorm:"not null"`
	Description *string

	CreatedAt int64  `gorm:"not null;autoCreateTime:false"`
	ExpiresAt *int64 `gorm:"index"`

	// OwnerToken никогда не отдаётся наружу, см. Public.
	OwnerToken string `gorm:"not null"`
	IsLocked   bool   `gorm:"not null;default:false"`
	Theme      Theme  `gorm:"not null"`

	Confessions []Confession `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

// ExpiredAt — доска считается истёкшей, только если срок задан и уже прошёл.
func (b *Board) ExpiredAt(now time.Time) bool {
	return b.ExpiresAt != nil && *b.ExpiresAt < now.UnixMilli()
}

// PublicBoard — проекция доски без owner token.
type PublicBoard struct {
	ID          string
	Slug        string
	Name        string
	Description *string
	CreatedAt   int64
	ExpiresAt   *int64
	IsLocked    bool
	Theme       Theme
}

// Public возвращает проекцию без секретных полей.
func (b *Board) Public() PublicBoard {
	return PublicBoard{
		ID:          b.ID,
		Slug:        b.Slug,
		Name:        b.Name,
		Description: b.Description,
		CreatedAt:   b.CreatedAt,
		ExpiresAt:   b.ExpiresAt,
		IsLocked:    b.IsLocked,
		Theme:       b.Theme,
	}
}
