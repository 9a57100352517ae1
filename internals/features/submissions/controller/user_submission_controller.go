// file: internals/features/submissions/controller/user_submission_controller.go
package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"centerku_backend/internals/features/submissions/dto"
	"centerku_backend/internals/features/submissions/repository"
	"centerku_backend/internals/features/submissions/service"
	helper "centerku_backend/internals/helpers"
	"centerku_backend/internals/helpers/dbtime"
)

type UserSubmissionController struct {
	DB        *gorm.DB
	Validator *validator.Validate
	Service   *service.SubmissionService
}

func NewUserSubmissionController(db *gorm.DB) *UserSubmissionController {
	return &UserSubmissionController{
		DB:        db,
		Validator: validator.New(),
		Service:   service.NewSubmissionService(repository.NewGormStore(db)),
	}
}

/* ==============================
   ✅ CREATE — POST /api/u/submissions
============================== */

func (ctrl *UserSubmissionController) Create(c *fiber.Ctx) error {
	email, err := helper.GetUserEmailFromLocals(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var req dto.CenterDataRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctrl.Validator.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	created, err := ctrl.Service.CreateSubmission(c.Context(), email, req.ToCenterData())
	if err != nil {
		switch {
		case errors.Is(err, service.ErrDuplicateSubmission):
			return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
		case errors.Is(err, service.ErrValidation):
			return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
		default:
			// termasuk gagal sinkronisasi direktori center setelah
			// submission tersimpan (perilaku lama dipertahankan: 400)
			return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
		}
	}

	return helper.JsonCreated(c, "Submission berhasil dibuat", created)
}

/* ==============================
   ✅ UPDATE — PUT /api/u/submissions/:id
============================== */

func (ctrl *UserSubmissionController) Update(c *fiber.Ctx) error {
	email, err := helper.GetUserEmailFromLocals(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID submission tidak valid")
	}

	var req dto.UpdateCenterDataRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctrl.Validator.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	updated, err := ctrl.Service.UpdateSubmission(c.Context(), id, email, req.ToCenterData())
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotFoundOrForbidden):
			// submission orang lain tidak dibedakan dari yang tidak ada
			return helper.JsonError(c, fiber.StatusNotFound, err.Error())
		case errors.Is(err, service.ErrValidation):
			return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
		default:
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui submission")
		}
	}

	return helper.JsonUpdated(c, "Submission berhasil diperbarui", updated)
}

/* ==============================
   ✅ DELETE — DELETE /api/u/submissions/:id
============================== */

func (ctrl *UserSubmissionController) Delete(c *fiber.Ctx) error {
	email, err := helper.GetUserEmailFromLocals(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID submission tidak valid")
	}

	if err := ctrl.Service.DeleteSubmission(c.Context(), id, email); err != nil {
		if errors.Is(err, service.ErrNotFoundOrForbidden) {
			return helper.JsonError(c, fiber.StatusNotFound, err.Error())
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus submission")
	}

	return helper.JsonDeleted(c, "Submission berhasil dihapus", fiber.Map{
		"user_submission_id": id,
	})
}

/* ==============================
   ✅ STATUS HARI INI — GET /api/u/submissions/today
============================== */

func (ctrl *UserSubmissionController) Today(c *fiber.Ctx) error {
	email, err := helper.GetUserEmailFromLocals(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	status, err := ctrl.Service.CheckTodaySubmission(c.Context(), email)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memeriksa submission hari ini")
	}
	return helper.JsonOK(c, "OK", status)
}

/* ==============================
   ✅ PER TANGGAL — GET /api/u/submissions/date/:date (YYYY-MM-DD)
============================== */

func (ctrl *UserSubmissionController) ByDate(c *fiber.Ctx) error {
	email, err := helper.GetUserEmailFromLocals(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	day, err := dbtime.ParseYMD(c.Params("date"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Format tanggal harus YYYY-MM-DD")
	}

	found, err := ctrl.Service.GetSubmissionByDate(c.Context(), email, day)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, err.Error())
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil submission")
	}
	return helper.JsonOK(c, "OK", found)
}

/* ==============================
   ✅ MILIK SENDIRI — GET /api/u/submissions/mine
============================== */

func (ctrl *UserSubmissionController) Mine(c *fiber.Ctx) error {
	email, err := helper.GetUserEmailFromLocals(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	rows, err := ctrl.Service.ListMySubmissions(c.Context(), email)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil submission")
	}
	return helper.JsonOK(c, "OK", rows)
}

/* ==============================
   ✅ LISTING PUBLIK — GET /api/submissions (tanpa login)
============================== */

func (ctrl *UserSubmissionController) Public(c *fiber.Ctx) error {
	rows, err := ctrl.Service.ListPublicSubmissions(c.Context())
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil submission")
	}
	return helper.JsonOK(c, "OK", dto.FromModelPublicList(rows))
}

/* ==============================
   ✅ SEMUA (ADMIN) — GET /api/a/submissions
============================== */

func (ctrl *UserSubmissionController) All(c *fiber.Ctx) error {
	rows, err := ctrl.Service.ListAllSubmissions(c.Context())
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil submission")
	}
	return helper.JsonOK(c, "OK", rows)
}
