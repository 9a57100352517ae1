// file: internals/features/users/controller/user_controller.go
package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"centerku_backend/internals/features/users/dto"
	"centerku_backend/internals/features/users/model"
	helper "centerku_backend/internals/helpers"
)

type UserController struct {
	DB *gorm.DB
}

func NewUserController(db *gorm.DB) *UserController {
	return &UserController{DB: db}
}

// List (admin): semua user tanpa field password.
func (ctrl *UserController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	var total int64
	if err := ctrl.DB.Model(&model.UserModel{}).Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung user")
	}

	var rows []model.UserModel
	if err := ctrl.DB.
		Order("user_created_at DESC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data user")
	}

	return helper.JsonList(c, "OK", dto.FromUserModelList(rows),
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// Me: profil user yang sedang login.
func (ctrl *UserController) Me(c *fiber.Ctx) error {
	email, err := helper.GetUserEmailFromLocals(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var u model.UserModel
	if err := ctrl.DB.Where("user_email = ?", email).First(&u).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "User tidak ditemukan")
	}
	return helper.JsonOK(c, "OK", dto.FromUserModel(&u))
}
