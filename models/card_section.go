package models

import "kartvizit.link/models/helpers"

// CardSection kullanıcının kartvizite eklediği serbest içerik bölümü.
// Content alanının şekli Type'a bağlıdır (string, obje veya liste olabilir);
// yorumlama pkg/cardview tarafında yapılır.
type CardSection struct {
	BaseModel
	CardID  uint          `gorm:"index;not null"` // cards.id FK
	Type    string        `gorm:"type:varchar(30);not null"`
	Title   string        `gorm:"type:varchar(150)"`
	Content helpers.JSONB `gorm:"type:jsonb"`
	Visible *bool         // nil ise görünür kabul edilir
	Order   int           `gorm:"column:sort_order;default:0;index"`
}
