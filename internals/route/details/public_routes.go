// file: internals/route/details/public_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	adminController "centerku_backend/internals/features/admins/controller"
	centerController "centerku_backend/internals/features/centers/controller"
	submissionController "centerku_backend/internals/features/submissions/controller"
	userController "centerku_backend/internals/features/users/controller"
)

// PublicRoutes: endpoint tanpa login.
func PublicRoutes(api fiber.Router, db *gorm.DB) {
	authCtrl := userController.NewAuthController(db)
	adminCtrl := adminController.NewAdminController(db)
	subCtrl := submissionController.NewUserSubmissionController(db)
	centerCtrl := centerController.NewCenterController(db)
	lookupCtrl := centerController.NewLookupController(db)

	// 🔓 Auth
	auth := api.Group("/auth")
	auth.Post("/register", authCtrl.Register)
	auth.Post("/login", authCtrl.Login)
	auth.Post("/login-google", authCtrl.LoginGoogle)
	auth.Post("/admin/login", adminCtrl.Login)

	// 🔓 Listing publik submission (tanpa identitas submitter)
	api.Get("/submissions", subCtrl.Public)

	// 🔓 Direktori center
	centers := api.Group("/centers")
	centers.Get("/", centerCtrl.List)
	centers.Get("/search", centerCtrl.SearchByName) // ?name=
	centers.Get("/search/:name", centerCtrl.SearchByName)
	centers.Get("/code/:code", centerCtrl.GetByCode)
	centers.Get("/state/:state", centerCtrl.GetByState)
	centers.Get("/city/:city", centerCtrl.GetByCity)

	// 🔓 Lookup state & city (diturunkan dari data center)
	lookup := api.Group("/lookup")
	lookup.Get("/states", lookupCtrl.States)
	lookup.Get("/cities", lookupCtrl.Cities)
	lookup.Get("/states/:state/cities", lookupCtrl.CitiesByState)
}
