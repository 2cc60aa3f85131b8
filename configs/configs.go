// configs/configs.go
package configs

import (
	"os"

	"kartvizit.link/configs/configsdatabase"
	"kartvizit.link/configs/configslog"

	"github.com/joho/godotenv"
	"gorm.io/gorm"
)

// LoadEnv .env dosyasını yükler. Dosya yoksa ortam değişkenleri ile devam edilir
// (container ortamlarında .env bulunmayabilir).
func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		configslog.SLog.Info(".env dosyası bulunamadı, mevcut ortam değişkenleri kullanılacak")
	}
}

// GetDB servis katmanı için veritabanı bağlantısını döndürür.
// configsdatabase paketine delege eder.
func GetDB() *gorm.DB {
	return configsdatabase.GetDB()
}

// AppPort uygulamanın dinleyeceği portu döndürür (örn: "3000").
func AppPort() string {
	port := os.Getenv("APP_PORT")
	if port == "" {
		port = "3000"
	}
	return port
}

// AppBaseURL public linklerin inşasında kullanılan taban URL'yi döndürür.
func AppBaseURL() string {
	base := os.Getenv("APP_BASE_URL")
	if base == "" {
		base = "http://localhost:3000"
	}
	return base
}
