package migrations

import (
	"kartvizit.link/configs/configslog"
	"kartvizit.link/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

func MigrateCardsTables(db *gorm.DB) error {
	configslog.SLog.Info("Migrating cards, card_details, card_sections & card_social_links tables...")
	err := db.AutoMigrate(
		&models.Card{},
		&models.CardDetail{},
		&models.CardSection{},
		&models.CardSocialLink{},
	)
	if err != nil {
		configslog.Log.Error("Failed to migrate card tables", zap.Error(err))
		return err
	}
	configslog.SLog.Info("Card tables migrated successfully")
	return nil
}
