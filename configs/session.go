// configs/session.go
package configs

import (
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/csrf"
	"github.com/gofiber/fiber/v2/middleware/session"
)

var sessionStore *session.Store

// SetupSession session store'u oluşturur (tek sefer) ve döndürür.
// Varsayılan olarak in-memory storage kullanılır; production'da
// Storage alanına kalıcı bir store verilebilir.
func SetupSession() *session.Store {
	if sessionStore != nil {
		return sessionStore
	}

	cookieSecure := os.Getenv("APP_ENV") == "production"
	sessionStore = session.New(session.Config{
		Expiration:     24 * time.Hour,
		KeyLookup:      "cookie:kartvizit_session",
		CookieSecure:   cookieSecure,
		CookieHTTPOnly: true,
		CookieSameSite: "Lax",
	})
	return sessionStore
}

// GetSessionStore mevcut store'u döndürür; yoksa oluşturur.
func GetSessionStore() *session.Store {
	return SetupSession()
}

// SetupCSRF form gönderimleri için CSRF middleware'ini oluşturur.
// JSON istekleri (panel içi fetch uçları) form token'ı taşımadığından atlanır;
// bu uçlar zaten session + sahiplik kontrolü arkasındadır.
func SetupCSRF() fiber.Handler {
	return csrf.New(csrf.Config{
		Next: func(c *fiber.Ctx) bool {
			return c.Is("json")
		},
		KeyLookup:      "form:csrf_token",
		CookieName:     "kartvizit_csrf",
		CookieSameSite: "Lax",
		Expiration:     1 * time.Hour,
		ContextKey:     "csrf",
	})
}
