package models

import "time"

// ShortIdentifierLength длина генерируемого короткого идентификатора.
const ShortIdentifierLength = 8

// ReferrerDirect значение реферера, когда заголовок Referer отсутствует.
const ReferrerDirect = "direct"

// URL структура модели хранения короткой ссылки.
type URL struct {
	ID              uint       `gorm:"primarykey" json:"ID"`
	CreatedAt       time.Time  `json:"createdAt"`
	URL             string     `gorm:"size:2048;not null" json:"url"`
	ShortIdentifier string     `gorm:"size:64;uniqueIndex;not null" json:"shortIdentifier"`
	CustomAlias     *string    `gorm:"size:64;uniqueIndex" json:"customAlias,omitempty"`
	Clicks          uint64     `gorm:"not null;default:0" json:"clicks"`
	ExpiresAt       *time.Time `json:"expiresAt,omitempty"`
}

// IsExpired проверяет истек ли срок жизни ссылки на момент времени now.
// Записи без ExpiresAt живут вечно.
func (u *URL) IsExpired(now time.Time) bool {
	return u.ExpiresAt != nil && now.After(*u.ExpiresAt)
}
