// configs/configslog/logger.go
package configslog

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Log yapılandırılmış (structured) loglama için global zap logger.
// SLog ise printf tarzı kullanım için sugared logger.
var (
	Log  *zap.Logger
	SLog *zap.SugaredLogger
)

// InitLogger ortam değişkenine göre logger'ı başlatır.
// APP_ENV=production ise JSON formatlı production config,
// aksi halde renkli development config kullanılır.
func InitLogger() {
	var cfg zap.Config
	if os.Getenv("APP_ENV") == "production" {
		cfg = zap.NewProductionConfig()
	} else {
		cfg = zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	logger, err := cfg.Build(zap.AddCallerSkip(0))
	if err != nil {
		// Logger kurulamazsa uygulama devam edemez.
		panic("zap logger başlatılamadı: " + err.Error())
	}

	Log = logger
	SLog = logger.Sugar()
}

// Sync buffer'daki logları flush eder. main'de defer ile çağrılmalı.
func Sync() {
	if Log != nil {
		_ = Log.Sync()
	}
}

func init() {
	// Testler ve erken import'lar için güvenli varsayılan:
	// InitLogger çağrılmadan da Log/SLog nil olmamalı.
	if Log == nil {
		Log = zap.NewNop()
		SLog = Log.Sugar()
	}
}
