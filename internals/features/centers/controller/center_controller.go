// file: internals/features/centers/controller/center_controller.go
package controller

import (
	"errors"
	"fmt"
	"strings"

	validator "github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	dto "centerku_backend/internals/features/centers/dto"
	model "centerku_backend/internals/features/centers/model"
	helper "centerku_backend/internals/helpers"
)

/* ==============================
   Controller
============================== */

type CenterController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewCenterController(db *gorm.DB) *CenterController {
	return &CenterController{
		DB:        db,
		Validator: validator.New(),
	}
}

func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	s := strings.ToLower(err.Error())
	return strings.Contains(s, "sqlstate 23505") ||
		strings.Contains(s, "duplicate key") ||
		strings.Contains(s, "unique constraint")
}

/* ==============================
   Handlers — read
============================== */

// GET /centers — semua center, urut kode
func (ctl *CenterController) List(c *fiber.Ctx) error {
	var rows []model.CenterModel
	if err := ctl.DB.WithContext(c.Context()).
		Order("center_code ASC").
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonList(c, "Daftar center", rows, nil)
}

// GET /centers/state/:state
func (ctl *CenterController) GetByState(c *fiber.Ctx) error {
	state := strings.TrimSpace(c.Params("state"))
	var rows []model.CenterModel
	if err := ctl.DB.WithContext(c.Context()).
		Where("center_state = ?", state).
		Order("center_code ASC").
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonList(c, "Daftar center per state", rows, nil)
}

// GET /centers/city/:city
func (ctl *CenterController) GetByCity(c *fiber.Ctx) error {
	city := strings.TrimSpace(c.Params("city"))
	var rows []model.CenterModel
	if err := ctl.DB.WithContext(c.Context()).
		Where("center_city = ?", city).
		Order("center_code ASC").
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonList(c, "Daftar center per city", rows, nil)
}

// GET /centers/code/:code
func (ctl *CenterController) GetByCode(c *fiber.Ctx) error {
	code := strings.TrimSpace(c.Params("code"))
	var row model.CenterModel
	if err := ctl.DB.WithContext(c.Context()).
		First(&row, "center_code = ?", code).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Center tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "Detail center", row)
}

// GET /centers/search/:name (atau /centers/search?name=) — pencarian
// nama, case-insensitive
func (ctl *CenterController) SearchByName(c *fiber.Ctx) error {
	name := searchTerm(c)
	if name == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Kata kunci pencarian wajib diisi")
	}
	var rows []model.CenterModel
	if err := ctl.DB.WithContext(c.Context()).
		Where("center_name ILIKE ?", "%"+name+"%").
		Order("center_code ASC").
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonList(c, "Hasil pencarian center", rows, nil)
}

/* ==============================
   Handlers — write
============================== */

// POST /centers — Create
func (ctl *CenterController) Create(c *fiber.Ctx) error {
	email, err := helper.GetUserEmailFromLocals(c)
	if err != nil {
		if fe, ok := err.(*fiber.Error); ok {
			return helper.JsonError(c, fe.Code, fe.Message)
		}
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var req dto.CreateCenterRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	m := req.ToModel(email)

	if err := ctl.DB.WithContext(c.Context()).Create(m).Error; err != nil {
		if isUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusBadRequest, "Center code sudah terdaftar")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonCreated(c, "Center dibuat", m)
}

// POST /centers/bulk — validasi semua baris dulu, baru insert
func (ctl *CenterController) CreateBulk(c *fiber.Ctx) error {
	email, err := helper.GetUserEmailFromLocals(c)
	if err != nil {
		if fe, ok := err.(*fiber.Error); ok {
			return helper.JsonError(c, fe.Code, fe.Message)
		}
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var rows []dto.BulkCenterRow
	if err := c.BodyParser(&rows); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid (array center)")
	}
	if len(rows) == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload kosong")
	}

	models := make([]*model.CenterModel, 0, len(rows))
	for i := range rows {
		if err := ctl.Validator.Struct(&rows[i]); err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest,
				fmt.Sprintf("Baris %d tidak lengkap: %v", i+1, err))
		}
		code := strings.TrimSpace(rows[i].CenterCode)
		var cnt int64
		if err := ctl.DB.WithContext(c.Context()).
			Model(&model.CenterModel{}).
			Where("center_code = ?", code).
			Count(&cnt).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
		}
		if cnt > 0 {
			return helper.JsonError(c, fiber.StatusBadRequest,
				fmt.Sprintf("Center code %s sudah terdaftar", code))
		}
		models = append(models, rows[i].ToModel(email))
	}

	if err := ctl.DB.WithContext(c.Context()).Create(&models).Error; err != nil {
		if isUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusBadRequest, "Ada center code duplikat di payload")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonCreated(c, "Center bulk dibuat", models)
}

// searchTerm: kata kunci dari path param, fallback ke ?name= untuk
// kompat client lama.
func searchTerm(c *fiber.Ctx) string {
	if v := strings.TrimSpace(c.Params("name")); v != "" {
		return v
	}
	return strings.TrimSpace(c.Query("name"))
}
