// utils/session.go
package utils

import (
	"errors"

	"kartvizit.link/configs"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
)

// Session anahtarları.
const (
	SessionUserIDKey   = "user_id"
	SessionUserNameKey = "user_name"
	SessionIsSystemKey = "is_system"
)

var ErrSessionValueMissing = errors.New("session değeri bulunamadı")

// SessionStart istek için session'ı başlatır (locals'taki store öncelikli).
func SessionStart(c *fiber.Ctx) (*session.Session, error) {
	store, ok := c.Locals("session_store").(*session.Store)
	if !ok || store == nil {
		store = configs.GetSessionStore()
	}
	return store.Get(c)
}

// GetUserIDFromSession oturumdaki kullanıcı ID'sini okur.
func GetUserIDFromSession(sess *session.Session) (uint, error) {
	userID, ok := sess.Get(SessionUserIDKey).(uint)
	if !ok || userID == 0 {
		return 0, ErrSessionValueMissing
	}
	return userID, nil
}

// GetIsSystemFromSession oturumdaki sistem kullanıcısı bayrağını okur.
func GetIsSystemFromSession(sess *session.Session) (bool, error) {
	isSystem, ok := sess.Get(SessionIsSystemKey).(bool)
	if !ok {
		return false, ErrSessionValueMissing
	}
	return isSystem, nil
}

// SetUserSession giriş sonrası oturum değerlerini yazar.
func SetUserSession(sess *session.Session, userID uint, userName string, isSystem bool) error {
	sess.Set(SessionUserIDKey, userID)
	sess.Set(SessionUserNameKey, userName)
	sess.Set(SessionIsSystemKey, isSystem)
	return sess.Save()
}

// DestroySession oturumu tamamen sonlandırır (çıkış).
func DestroySession(sess *session.Session) error {
	return sess.Destroy()
}
