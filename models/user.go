package models

// User platform kullanıcı hesabı.
type User struct {
	BaseModel
	Name         string `gorm:"type:varchar(100);not null"`
	Email        string `gorm:"type:varchar(100);uniqueIndex;not null"`
	PasswordHash string `gorm:"type:varchar(255);not null"`
	IsEnabled    bool   `gorm:"default:true;index"` // Hesap aktif mi?
	IsSystem     bool   `gorm:"default:false"`      // Sistem (admin) kullanıcısı mı?
}
