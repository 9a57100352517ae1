// file: internals/features/imports/controller/import_controller.go
package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"centerku_backend/internals/constants"
	centermodel "centerku_backend/internals/features/centers/model"
	"centerku_backend/internals/features/imports/service"
	usermodel "centerku_backend/internals/features/users/model"
	userservice "centerku_backend/internals/features/users/service"
	helper "centerku_backend/internals/helpers"
)

// ImportController: import massal via file CSV (field multipart "file").
type ImportController struct {
	DB *gorm.DB
}

func NewImportController(db *gorm.DB) *ImportController {
	return &ImportController{DB: db}
}

type importReport struct {
	Imported int                `json:"imported"`
	Skipped  int                `json:"skipped"`
	Errors   []service.RowError `json:"errors"`
}

/* ==============================
   ✅ IMPORT USERS — POST /api/a/imports/users
   Upsert by username: user lama di-update email & password-nya.
============================== */

func (ctrl *ImportController) ImportUsers(c *fiber.Ctx) error {
	fh, err := c.FormFile("file")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "File CSV wajib diunggah (field: file)")
	}
	f, err := fh.Open()
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "File CSV tidak terbaca")
	}
	defer f.Close()

	rows, rowErrs, err := service.ParseUsersCSV(f)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	report := importReport{Errors: rowErrs, Skipped: len(rowErrs)}
	for _, row := range rows {
		hashed, err := userservice.HashPassword(row.Password)
		if err != nil {
			report.Errors = append(report.Errors, service.RowError{Line: row.Line, Message: "gagal memproses password"})
			report.Skipped++
			continue
		}
		u := usermodel.UserModel{
			UserName:     row.Username,
			UserEmail:    row.Email,
			UserPassword: hashed,
			UserRole:     constants.RoleUser,
			UserIsActive: true,
		}
		err = ctrl.DB.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_name"}},
			DoUpdates: clause.AssignmentColumns([]string{"user_email", "user_password", "user_updated_at"}),
		}).Create(&u).Error
		if err != nil {
			report.Errors = append(report.Errors, service.RowError{Line: row.Line, Message: err.Error()})
			report.Skipped++
			continue
		}
		report.Imported++
	}

	return helper.JsonOK(c, "Import users selesai", report)
}

/* ==============================
   ✅ IMPORT CENTERS — POST /api/a/imports/centers
   Upsert by center_code.
============================== */

func (ctrl *ImportController) ImportCenters(c *fiber.Ctx) error {
	fh, err := c.FormFile("file")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "File CSV wajib diunggah (field: file)")
	}
	f, err := fh.Open()
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "File CSV tidak terbaca")
	}
	defer f.Close()

	rows, rowErrs, err := service.ParseCentersCSV(f)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	submittedBy, _ := helper.GetUserEmailFromLocals(c)

	report := importReport{Errors: rowErrs, Skipped: len(rowErrs)}
	for _, row := range rows {
		m := centermodel.CenterModel{
			CenterCode:        row.Code,
			CenterName:        row.Name,
			CenterState:       row.State,
			CenterCity:        row.City,
			CenterLatitude:    row.Latitude,
			CenterLongitude:   row.Longitude,
			CenterAddress:     row.Address,
			CenterDeskCount:   row.DeskCount,
			CenterRemark:      row.Remark,
			CenterSubmittedBy: submittedBy,
		}
		err := ctrl.DB.Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "center_code"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"center_name", "center_state", "center_city",
				"center_latitude", "center_longitude", "center_address",
				"center_desk_count", "center_remark", "center_updated_at",
			}),
		}).Create(&m).Error
		if err != nil {
			report.Errors = append(report.Errors, service.RowError{Line: row.Line, Message: err.Error()})
			report.Skipped++
			continue
		}
		report.Imported++
	}

	return helper.JsonOK(c, "Import centers selesai", report)
}
