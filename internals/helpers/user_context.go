// file: internals/helpers/user_context.go
package helper

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Nama locals mengikuti yang di-set middleware AuthJWT
const (
	LocUserID    = "user_id"
	LocUserName  = "user_name"
	LocUserEmail = "user_email"
	LocRole      = "role"
)

// GetUserIDFromLocals mengambil user_id (UUID) hasil verifikasi token.
func GetUserIDFromLocals(c *fiber.Ctx) (uuid.UUID, error) {
	v, ok := c.Locals(LocUserID).(string)
	if !ok || strings.TrimSpace(v) == "" {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "User ID tidak ditemukan di token")
	}
	id, err := uuid.Parse(strings.TrimSpace(v))
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "User ID tidak valid")
	}
	return id, nil
}

// GetUserEmailFromLocals mengambil email submitter dari token.
// Email adalah key kepemilikan submission, jadi wajib ada.
func GetUserEmailFromLocals(c *fiber.Ctx) (string, error) {
	v, ok := c.Locals(LocUserEmail).(string)
	if !ok || strings.TrimSpace(v) == "" {
		return "", fiber.NewError(fiber.StatusUnauthorized, "Email tidak ditemukan di token")
	}
	return strings.ToLower(strings.TrimSpace(v)), nil
}

func GetRoleFromLocals(c *fiber.Ctx) string {
	if v, ok := c.Locals(LocRole).(string); ok {
		return strings.TrimSpace(v)
	}
	return ""
}
