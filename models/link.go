package models

// LinkKeyLength public link anahtarlarının sabit uzunluğu.
const LinkKeyLength = 20

// Link benzersiz bir public 'Key'i bir kartvizite bağlar ve sahibini tutar.
// Kartvizit public sayfası /:key rotası üzerinden bu kayıtla çözülür.
type Link struct {
	BaseModel
	Key           string `gorm:"type:varchar(20);uniqueIndex;not null"`
	CardID        uint   `gorm:"not null;index:idx_link_card"` // cards.id FK
	CreatorUserID uint   `gorm:"index;not null"`               // users.id FK

	// GORM İlişkileri
	Creator User `gorm:"foreignKey:CreatorUserID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;"`
}
