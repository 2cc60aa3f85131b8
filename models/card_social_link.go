package models

// CardSocialLink kartvizite bağlı tek bir sosyal medya hesabı.
// Value tam URL veya çıplak kullanıcı adı (handle) olabilir;
// çözümleme pkg/cardview tarafında yapılır.
type CardSocialLink struct {
	BaseModel
	CardID   uint   `gorm:"index;not null"` // cards.id FK
	Platform string `gorm:"type:varchar(30);not null" form:"platform"` // instagram, linkedin, github...
	Value    string `gorm:"type:varchar(255);not null" form:"value"`
	Order    int    `gorm:"column:sort_order;default:0"`
}
