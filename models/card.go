package models

// Card dijital kartvizitin ana kaydıdır.
type Card struct {
	BaseModel
	CreatorUserID uint `gorm:"index;not null"`
	IsEnabled     bool `gorm:"default:true;index"` // Kartvizit aktif mi?

	// GORM İlişkileri
	Link        Link             `gorm:"foreignKey:CardID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	Detail      CardDetail       `gorm:"foreignKey:CardID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	Sections    []CardSection    `gorm:"foreignKey:CardID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	SocialLinks []CardSocialLink `gorm:"foreignKey:CardID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}
