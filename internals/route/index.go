// file: internals/route/index.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"centerku_backend/internals/configs"
	"centerku_backend/internals/middlewares/auth"
	"centerku_backend/internals/route/details"
)

// SetupRoutes merakit seluruh route aplikasi:
//   - /api      → publik (auth, listing publik, direktori center)
//   - /api/u    → login user (JWT)
//   - /api/a    → login admin (JWT + role admin)
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	api := app.Group("/api")

	details.PublicRoutes(api, db)

	jwtGuard := auth.AuthJWT(auth.AuthJWTOpts{
		Secret:              configs.JWTSecret,
		AllowCookieFallback: true,
	})

	userGroup := api.Group("/u", jwtGuard)
	details.UserRoutes(userGroup, db)

	adminGroup := api.Group("/a", jwtGuard, auth.IsAdmin())
	details.AdminRoutes(adminGroup, db)
}
