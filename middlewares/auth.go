// middlewares/auth.go
package middlewares

import (
	"github.com/gofiber/fiber/v2"
)

// AuthMiddleware giriş yapılmış bir oturum ister; yoksa login'e yönlendirir.
// Oturum değerleri router'daki session middleware'i tarafından locals'a yazılır.
func AuthMiddleware(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok || userID == 0 {
		return c.Redirect("/auth/login", fiber.StatusTemporaryRedirect)
	}
	return c.Next()
}

// GuestMiddleware giriş yapmış kullanıcıları login/register gibi misafir
// sayfalarından kendi ana sayfalarına yönlendirir.
func GuestMiddleware(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok || userID == 0 {
		return c.Next()
	}
	if isSystem, _ := c.Locals("isSystem").(bool); isSystem {
		return c.Redirect("/dashboard/home", fiber.StatusFound)
	}
	return c.Redirect("/panel/home", fiber.StatusFound)
}

// RequireUser yalnızca normal kullanıcıların (IsSystem == false) geçmesine izin verir.
func RequireUser() fiber.Handler {
	return func(c *fiber.Ctx) error {
		isSystem, ok := c.Locals("isSystem").(bool)
		if !ok {
			return c.Redirect("/auth/login", fiber.StatusTemporaryRedirect)
		}
		if isSystem {
			return c.Redirect("/dashboard/home", fiber.StatusFound)
		}
		return c.Next()
	}
}

// RequireSystem yalnızca sistem kullanıcılarının geçmesine izin verir.
func RequireSystem() fiber.Handler {
	return func(c *fiber.Ctx) error {
		isSystem, ok := c.Locals("isSystem").(bool)
		if !ok {
			return c.Redirect("/auth/login", fiber.StatusTemporaryRedirect)
		}
		if !isSystem {
			return c.Redirect("/panel/home", fiber.StatusFound)
		}
		return c.Next()
	}
}
