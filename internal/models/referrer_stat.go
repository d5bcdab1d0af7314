package models

// ReferrerStat счетчик переходов по ссылке с конкретного реферера.
// Инвариант: сумма Count по всем реферерам записи равна URL.Clicks —
// оба значения обновляются одной атомарной операцией хранилища.
type ReferrerStat struct {
	ID              uint   `gorm:"primarykey" json:"ID"`
	ShortIdentifier string `gorm:"size:64;uniqueIndex:idx_referrer_stats_short_referrer;not null" json:"shortIdentifier"`
	Referrer        string `gorm:"size:2048;uniqueIndex:idx_referrer_stats_short_referrer;not null" json:"referrer"`
	Count           uint64 `gorm:"not null;default:0" json:"count"`
}
