// file: internals/route/details/admin_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	adminController "centerku_backend/internals/features/admins/controller"
	centerController "centerku_backend/internals/features/centers/controller"
	dashboardController "centerku_backend/internals/features/dashboard/controller"
	importController "centerku_backend/internals/features/imports/controller"
	submissionController "centerku_backend/internals/features/submissions/controller"
	userController "centerku_backend/internals/features/users/controller"
)

// AdminRoutes: endpoint khusus role admin (group /api/a).
func AdminRoutes(r fiber.Router, db *gorm.DB) {
	adminCtrl := adminController.NewAdminController(db)
	centerCtrl := centerController.NewCenterController(db)
	subCtrl := submissionController.NewUserSubmissionController(db)
	userCtrl := userController.NewUserController(db)
	importCtrl := importController.NewImportController(db)
	dashCtrl := dashboardController.NewDashboardController(db)

	// 📊 Dashboard
	r.Get("/dashboard", dashCtrl.Stats)

	// 📋 Semua submission (lengkap dengan submitter)
	r.Get("/submissions", subCtrl.All)

	// 👥 Users
	r.Get("/users", userCtrl.List)

	// 🛡️ Admins
	admins := r.Group("/admins")
	admins.Get("/", adminCtrl.List)
	admins.Post("/", adminCtrl.Register)
	admins.Get("/me", adminCtrl.Me)
	admins.Put("/me", adminCtrl.UpdateMe)
	admins.Post("/change-password", adminCtrl.ChangePassword)

	// 🏢 Centers (tulis)
	centers := r.Group("/centers")
	centers.Post("/", centerCtrl.Create)
	centers.Post("/bulk", centerCtrl.CreateBulk)

	// 📥 Import CSV
	imports := r.Group("/imports")
	imports.Post("/users", importCtrl.ImportUsers)
	imports.Post("/centers", importCtrl.ImportCenters)
}
