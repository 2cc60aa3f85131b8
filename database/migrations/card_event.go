package migrations

import (
	"kartvizit.link/configs/configslog"
	"kartvizit.link/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

func MigrateCardEventsTable(db *gorm.DB) error {
	configslog.SLog.Info("Migrating card_events table...")
	err := db.AutoMigrate(&models.CardEvent{})
	if err != nil {
		configslog.Log.Error("Failed to migrate card_events table", zap.Error(err))
		return err
	}
	configslog.SLog.Info("Card_events table migrated successfully")
	return nil
}
