package models

import "kartvizit.link/models/helpers"

// CardDetail dijital kartvizitin detaylarını içerir.
type CardDetail struct {
	BaseModel
	CardID uint `gorm:"uniqueIndex;not null"` // cards.id FK

	// Kişisel Bilgiler
	Prefix    string `gorm:"type:varchar(20)" form:"prefix"`  // Örn: Dr., Av.
	FirstName string `gorm:"type:varchar(100);not null" form:"first_name"`
	LastName  string `gorm:"type:varchar(100);not null" form:"last_name"`
	Suffix    string `gorm:"type:varchar(20)" form:"suffix"`  // Örn: Jr., PhD.
	Title     string `gorm:"type:varchar(100)" form:"title"`  // Ünvan
	Company   string `gorm:"type:varchar(150)" form:"company"`
	Bio       string `gorm:"type:text" form:"bio"`

	// İletişim Bilgileri
	Email       string `gorm:"type:varchar(100);index" form:"email"`
	PhoneNumber string `gorm:"type:varchar(30)" form:"phone_number"`
	WhatsApp    string `gorm:"type:varchar(30)" form:"whatsapp"`
	Website     string `gorm:"type:varchar(255)" form:"website"`
	Address     string `gorm:"type:text" form:"address"`

	// Görsel Öğeler
	// ShowPhoto/ShowBanner nil ise görünür kabul edilir; açık false her zaman gizler.
	ProfilePictureURL string `gorm:"type:varchar(500)" form:"profile_picture_url"`
	BannerURL         string `gorm:"type:varchar(500)" form:"banner_url"`
	ShowPhoto         *bool  `form:"show_photo"`
	ShowBanner        *bool  `form:"show_banner"`

	// Tema
	Layout          string `gorm:"type:varchar(50)" form:"layout"` // classic, banner, wave, minimal, bold, glass
	PrimaryColor    string `gorm:"type:varchar(7)" form:"primary_color"`
	SecondaryColor  string `gorm:"type:varchar(7)" form:"secondary_color"`
	AccentColor     string `gorm:"type:varchar(7)" form:"accent_color"`
	TextColor       string `gorm:"type:varchar(7)" form:"text_color"`
	BackgroundColor string `gorm:"type:varchar(7)" form:"background_color"`
	CardColor       string `gorm:"type:varchar(7)" form:"card_color"`
	FontFamily      string `gorm:"type:varchar(100)" form:"font_family"`

	// Blok sıralaması; boş ise varsayılan sıra kullanılır.
	ContentOrder helpers.StringArray `gorm:"type:jsonb" form:"-"`

	// Ek Ayarlar
	AllowSaveContact bool `gorm:"default:true" form:"allow_save_contact"` // vCard indirme izni
}

// PhotoShown nil bayrağı "göster" kabul eder; form/template tarafında kullanılır.
func (d CardDetail) PhotoShown() bool {
	return d.ShowPhoto == nil || *d.ShowPhoto
}

// BannerShown nil bayrağı "göster" kabul eder.
func (d CardDetail) BannerShown() bool {
	return d.ShowBanner == nil || *d.ShowBanner
}
