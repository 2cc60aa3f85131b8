package models

import "time"

// Kartvizit etkileşim olaylarının isimleri.
const (
	EventPageView      = "pageView"
	EventContactClick  = "contactClick"
	EventSocialClick   = "socialClick"
	EventVCardDownload = "vcardDownload"
)

// CardEvent public kartvizit sayfasındaki tek bir etkileşim olayı.
// Best-effort telemetri: yazma hataları isteği etkilemez.
type CardEvent struct {
	ID        string    `gorm:"type:uuid;primarykey"`
	CardID    uint      `gorm:"index;not null"`
	Event     string    `gorm:"type:varchar(30);index;not null"`
	Detail    string    `gorm:"type:varchar(100)"` // örn: kanal adı, platform adı
	CreatedAt time.Time `gorm:"index"`
}
