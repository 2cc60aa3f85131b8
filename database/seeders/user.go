package seeders

import (
	"errors"
	"os"

	"kartvizit.link/configs/configslog"
	"kartvizit.link/models"
	"kartvizit.link/services"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// SeedSystemUser sistem yöneticisi hesabını oluşturur veya şifresini günceller.
// Kimlik bilgileri SYSTEM_USER_EMAIL ve SYSTEM_USER_PASSWORD ortam
// değişkenlerinden okunur.
func SeedSystemUser(db *gorm.DB) error {
	email := os.Getenv("SYSTEM_USER_EMAIL")
	password := os.Getenv("SYSTEM_USER_PASSWORD")
	if email == "" || password == "" {
		configslog.SLog.Warn("SYSTEM_USER_EMAIL/SYSTEM_USER_PASSWORD tanımlı değil, sistem kullanıcısı atlanıyor.")
		return nil
	}

	hash, err := services.HashPassword(password)
	if err != nil {
		configslog.Log.Error("Sistem kullanıcısı şifresi hashlenemedi", zap.Error(err))
		return err
	}

	var user models.User
	err = db.Where("email = ?", email).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		user = models.User{
			Name:         "Sistem",
			Email:        email,
			PasswordHash: hash,
			IsEnabled:    true,
			IsSystem:     true,
		}
		if err := db.Create(&user).Error; err != nil {
			configslog.Log.Error("Sistem kullanıcısı oluşturulamadı", zap.Error(err))
			return err
		}
		configslog.SLog.Infof("Sistem kullanıcısı oluşturuldu: %s", email)
		return nil
	}
	if err != nil {
		return err
	}

	updates := map[string]interface{}{
		"password_hash": hash,
		"is_enabled":    true,
		"is_system":     true,
	}
	if err := db.Model(&user).Updates(updates).Error; err != nil {
		configslog.Log.Error("Sistem kullanıcısı güncellenemedi", zap.Error(err))
		return err
	}
	configslog.SLog.Infof("Sistem kullanıcısı güncellendi: %s", email)
	return nil
}
