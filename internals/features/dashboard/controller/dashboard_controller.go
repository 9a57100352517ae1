// file: internals/features/dashboard/controller/dashboard_controller.go
package controller

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	centermodel "centerku_backend/internals/features/centers/model"
	submissionmodel "centerku_backend/internals/features/submissions/model"
	usermodel "centerku_backend/internals/features/users/model"
	helper "centerku_backend/internals/helpers"
	"centerku_backend/internals/helpers/dbtime"
)

type DashboardController struct {
	DB *gorm.DB
}

func NewDashboardController(db *gorm.DB) *DashboardController {
	return &DashboardController{DB: db}
}

type regionCount struct {
	Region string `json:"region"`
	Total  int64  `json:"total"`
}

type dashboardStats struct {
	TotalUsers       int64 `json:"total_users"`
	TotalCenters     int64 `json:"total_centers"`
	TotalSubmissions int64 `json:"total_submissions"`
	SubmissionsToday int64 `json:"submissions_today"`

	SubmissionsByState []regionCount `json:"submissions_by_state"`
	SubmissionsByCity  []regionCount `json:"submissions_by_city"`
}

/* ==============================
   ✅ STATS — GET /api/a/dashboard
============================== */

func (ctrl *DashboardController) Stats(c *fiber.Ctx) error {
	var stats dashboardStats

	if err := ctrl.DB.Model(&usermodel.UserModel{}).Count(&stats.TotalUsers).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung user")
	}
	if err := ctrl.DB.Model(&centermodel.CenterModel{}).Count(&stats.TotalCenters).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung center")
	}
	if err := ctrl.DB.Model(&submissionmodel.UserSubmissionModel{}).Count(&stats.TotalSubmissions).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung submission")
	}

	start, end := dbtime.DayBounds(time.Now())
	if err := ctrl.DB.Model(&submissionmodel.UserSubmissionModel{}).
		Where("user_submission_submitted_at >= ? AND user_submission_submitted_at < ?", start, end).
		Count(&stats.SubmissionsToday).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung submission hari ini")
	}

	// Group per wilayah langsung dari kolom submission (state/city tersalin
	// saat submit, jadi tidak perlu join ke centers).
	if err := ctrl.DB.Model(&submissionmodel.UserSubmissionModel{}).
		Select("user_submission_state AS region, COUNT(*) AS total").
		Group("user_submission_state").
		Order("total DESC").
		Scan(&stats.SubmissionsByState).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung submission per state")
	}
	if err := ctrl.DB.Model(&submissionmodel.UserSubmissionModel{}).
		Select("user_submission_city AS region, COUNT(*) AS total").
		Group("user_submission_city").
		Order("total DESC").
		Scan(&stats.SubmissionsByCity).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung submission per city")
	}

	return helper.JsonOK(c, "OK", stats)
}
