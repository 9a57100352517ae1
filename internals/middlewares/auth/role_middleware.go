package auth

import (
	"github.com/gofiber/fiber/v2"

	"centerku_backend/internals/constants"
	helper "centerku_backend/internals/helpers"
)

// IsAdmin menolak request yang tokennya bukan role admin.
// Dipasang SETELAH AuthJWT (butuh Locals("role")).
func IsAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if helper.GetRoleFromLocals(c) != constants.RoleAdmin {
			return fiber.NewError(fiber.StatusForbidden, "Hanya admin yang boleh mengakses resource ini")
		}
		return c.Next()
	}
}
