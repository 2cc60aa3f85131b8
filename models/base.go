package models

import (
	"time"

	"gorm.io/gorm"
)

// ContextUserIDKey işlemi yapan kullanıcının ID'sini context üzerinden
// BaseModel hook'larına taşımak için kullanılan anahtar.
const ContextUserIDKey = "user_id"

// BaseModel tüm modellere gömülen ortak alanlar ve audit bilgileri.
type BaseModel struct {
	ID        uint           `gorm:"primarykey"`
	CreatedAt time.Time      `gorm:"index"`
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
	CreatedBy uint           `gorm:"index"`
	UpdatedBy uint
	DeletedBy *uint
}

// userIDFromContext hook'lar için context'teki user_id değerini okur.
func userIDFromContext(tx *gorm.DB) (uint, bool) {
	if tx == nil || tx.Statement == nil || tx.Statement.Context == nil {
		return 0, false
	}
	userID, ok := tx.Statement.Context.Value(ContextUserIDKey).(uint)
	return userID, ok
}

// BeforeCreate kaydı oluşturan kullanıcıyı context'ten alır.
func (m *BaseModel) BeforeCreate(tx *gorm.DB) error {
	if userID, ok := userIDFromContext(tx); ok {
		m.CreatedBy = userID
		m.UpdatedBy = userID
	}
	return nil
}

// BeforeUpdate kaydı güncelleyen kullanıcıyı context'ten alır.
func (m *BaseModel) BeforeUpdate(tx *gorm.DB) error {
	if userID, ok := userIDFromContext(tx); ok {
		m.UpdatedBy = userID
	}
	return nil
}
