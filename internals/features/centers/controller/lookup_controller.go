// file: internals/features/centers/controller/lookup_controller.go
package controller

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	model "centerku_backend/internals/features/centers/model"
	helper "centerku_backend/internals/helpers"
)

/*
LookupController — direktori state/city.

State & city TIDAK punya tabel sendiri: keduanya murni DERIVED dari
nilai distinct di tabel centers. Satu sumber kebenaran, tidak ada
drift antara direktori dan data center.
*/

type LookupController struct {
	DB *gorm.DB
}

func NewLookupController(db *gorm.DB) *LookupController {
	return &LookupController{DB: db}
}

// GET /states — distinct state, urut abjad
func (ctl *LookupController) States(c *fiber.Ctx) error {
	var states []string
	if err := ctl.DB.WithContext(c.Context()).
		Model(&model.CenterModel{}).
		Distinct("center_state").
		Order("center_state ASC").
		Pluck("center_state", &states).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonList(c, "Daftar state", states, nil)
}

// GET /cities — semua city, atau ?state= untuk filter
func (ctl *LookupController) Cities(c *fiber.Ctx) error {
	q := ctl.DB.WithContext(c.Context()).
		Model(&model.CenterModel{}).
		Distinct("center_city")
	if state := strings.TrimSpace(c.Query("state")); state != "" {
		q = q.Where("center_state = ?", state)
	}

	var cities []string
	if err := q.Order("center_city ASC").
		Pluck("center_city", &cities).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonList(c, "Daftar city", cities, nil)
}

// GET /lookup/states/:state/cities
func (ctl *LookupController) CitiesByState(c *fiber.Ctx) error {
	state := strings.TrimSpace(c.Params("state"))
	var cities []string
	if err := ctl.DB.WithContext(c.Context()).
		Model(&model.CenterModel{}).
		Distinct("center_city").
		Where("center_state = ?", state).
		Order("center_city ASC").
		Pluck("center_city", &cities).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonList(c, "Daftar city per state", cities, nil)
}
