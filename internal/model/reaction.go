package model

// ReactionType — один из четырёх видов эмодзи-реакции.
type ReactionType string

const (
	ReactionLove  ReactionType = "love"
	ReactionLaugh ReactionType = "laugh"
	ReactionShock ReactionType = "shock"
	ReactionSad   ReactionType = "sad"
)

// ReactionTypes перечисляет допустимые типы в порядке отображения.
var ReactionTypes = []ReactionType{ReactionLove, ReactionLaugh, ReactionShock, ReactionSad}

// Valid проверяет, что тип реакции известен.
func (t ReactionType) Valid() bool {
	switch t {
	case ReactionLove, ReactionLaugh, ReactionShock, ReactionSad:
		return true
	}
	return false
}

// Reaction — реакция посетителя на сообщение.
// Пара (confession_id, fingerprint) уникальна.
type Reaction struct {
	ID           string       `gorm:"primaryKey;type:uuid"`
	ConfessionID string       `gorm:"not null;type:uuid;index;uniqueIndex:idx_reactions_confession_fingerprint,priority:1"`
	Fingerprint  string       `gorm:"not null;uniqueIndex:idx_reactions_confession_fingerprint,priority:2"`
	Type         ReactionType `gorm:"not null"`

	// CreatedAt обновляется при смене типа реакции.
	CreatedAt int64 `gorm:"not null;autoCreateTime:false"`
}

// ReactionCounts — агрегат реакций по типам.
type ReactionCounts struct {
	Love  int
	Laugh int
	Shock int
	Sad   int
}

// Add увеличивает счётчик для указанного типа; неизвестные типы игнорируются.
func (c *ReactionCounts) Add(t ReactionType) {
	switch t {
	case ReactionLove:
		c.Love++
	case ReactionLaugh:
		c.Laugh++
	case ReactionShock:
		c.Shock++
	case ReactionSad:
		c.Sad++
	}
}
