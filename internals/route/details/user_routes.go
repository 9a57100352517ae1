// file: internals/route/details/user_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	mediaController "centerku_backend/internals/features/media/controller"
	submissionController "centerku_backend/internals/features/submissions/controller"
	userController "centerku_backend/internals/features/users/controller"
)

// UserRoutes: endpoint yang butuh login user biasa (group /api/u).
func UserRoutes(r fiber.Router, db *gorm.DB) {
	subCtrl := submissionController.NewUserSubmissionController(db)
	authCtrl := userController.NewAuthController(db)
	userCtrl := userController.NewUserController(db)
	mediaCtrl := mediaController.NewMediaController()

	// 📋 Submission harian
	sub := r.Group("/submissions")
	sub.Post("/", subCtrl.Create)
	sub.Get("/today", subCtrl.Today)
	sub.Get("/mine", subCtrl.Mine)
	sub.Get("/date/:date", subCtrl.ByDate)
	sub.Put("/:id", subCtrl.Update)
	sub.Delete("/:id", subCtrl.Delete)

	// 👤 Akun
	r.Get("/users/me", userCtrl.Me)
	r.Post("/auth/change-password", authCtrl.ChangePassword)

	// 🖼️ Media
	r.Post("/media/upload", mediaCtrl.Upload)
	r.Delete("/media", mediaCtrl.Delete)
}
