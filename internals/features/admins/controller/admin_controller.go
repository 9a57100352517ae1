// file: internals/features/admins/controller/admin_controller.go
package controller

import (
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"centerku_backend/internals/configs"
	"centerku_backend/internals/constants"
	"centerku_backend/internals/features/admins/dto"
	"centerku_backend/internals/features/admins/model"
	userservice "centerku_backend/internals/features/users/service"
	helper "centerku_backend/internals/helpers"
)

type AdminController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewAdminController(db *gorm.DB) *AdminController {
	return &AdminController{DB: db, Validator: validator.New()}
}

/* ==============================
   ✅ REGISTER — POST /api/a/admins (oleh admin lain)
============================== */

func (ctrl *AdminController) Register(c *fiber.Ctx) error {
	var req dto.RegisterAdminRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validator.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	username := strings.ToLower(strings.TrimSpace(req.Username))
	email := strings.ToLower(strings.TrimSpace(req.Email))

	var count int64
	if err := ctrl.DB.Model(&model.AdminModel{}).
		Where("admin_username = ? OR admin_email = ?", username, email).
		Count(&count).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memeriksa data admin")
	}
	if count > 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Username atau email admin sudah terdaftar")
	}

	hashed, err := userservice.HashPassword(req.Password)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memproses password")
	}

	admin := model.AdminModel{
		AdminUsername: username,
		AdminEmail:    email,
		AdminPassword: hashed,
		AdminIsActive: true,
	}
	if err := ctrl.DB.Create(&admin).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat admin")
	}

	return helper.JsonCreated(c, "Admin berhasil dibuat", dto.FromAdminModel(&admin))
}

/* ==============================
   ✅ LOGIN — POST /api/auth/admin/login
============================== */

func (ctrl *AdminController) Login(c *fiber.Ctx) error {
	var req dto.LoginAdminRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validator.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	identifier := strings.ToLower(strings.TrimSpace(req.Identifier))

	var admin model.AdminModel
	q := ctrl.DB.Model(&model.AdminModel{})
	if strings.Contains(identifier, "@") {
		q = q.Where("admin_email = ?", identifier)
	} else {
		q = q.Where("admin_username = ?", identifier)
	}
	if err := q.First(&admin).Error; err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Identifier atau password salah")
	}
	if !admin.AdminIsActive {
		return helper.JsonError(c, fiber.StatusForbidden, "Akun admin dinonaktifkan")
	}
	if !userservice.CheckPasswordHash(req.Password, admin.AdminPassword) {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Identifier atau password salah")
	}

	now := time.Now()
	if err := ctrl.DB.Model(&admin).Update("admin_last_login", now).Error; err == nil {
		admin.AdminLastLogin = &now
	}

	token, err := helper.CreateAccessToken(configs.JWTSecret, admin.AdminID, admin.AdminUsername, admin.AdminEmail, constants.RoleAdmin)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat access token")
	}

	return helper.JsonOK(c, "Login berhasil", dto.AdminLoginResponse{
		AccessToken: token,
		Admin:       dto.FromAdminModel(&admin),
	})
}

/* ==============================
   ✅ PROFIL — GET & PUT /api/a/admins/me
============================== */

func (ctrl *AdminController) Me(c *fiber.Ctx) error {
	admin, respErr := ctrl.currentAdmin(c)
	if admin == nil {
		return respErr
	}
	return helper.JsonOK(c, "OK", dto.FromAdminModel(admin))
}

func (ctrl *AdminController) UpdateMe(c *fiber.Ctx) error {
	admin, respErr := ctrl.currentAdmin(c)
	if admin == nil {
		return respErr
	}

	var req dto.UpdateAdminProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validator.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	updates := map[string]any{}
	if req.Username != nil {
		updates["admin_username"] = strings.ToLower(strings.TrimSpace(*req.Username))
	}
	if req.Email != nil {
		updates["admin_email"] = strings.ToLower(strings.TrimSpace(*req.Email))
	}
	if len(updates) == 0 {
		return helper.JsonOK(c, "Tidak ada perubahan", dto.FromAdminModel(admin))
	}

	if err := ctrl.DB.Model(admin).Updates(updates).Error; err != nil {
		if isUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusBadRequest, "Username atau email admin sudah terdaftar")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui profil admin")
	}

	return helper.JsonUpdated(c, "Profil admin diperbarui", dto.FromAdminModel(admin))
}

/* ==============================
   ✅ GANTI PASSWORD — POST /api/a/admins/change-password
============================== */

func (ctrl *AdminController) ChangePassword(c *fiber.Ctx) error {
	admin, respErr := ctrl.currentAdmin(c)
	if admin == nil {
		return respErr
	}

	var req dto.ChangeAdminPasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validator.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	if !userservice.CheckPasswordHash(req.OldPassword, admin.AdminPassword) {
		return helper.JsonError(c, fiber.StatusBadRequest, "Password lama salah")
	}
	hashed, err := userservice.HashPassword(req.NewPassword)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memproses password")
	}
	if err := ctrl.DB.Model(admin).Update("admin_password", hashed).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengganti password")
	}

	return helper.JsonUpdated(c, "Password admin berhasil diganti", nil)
}

/* ==============================
   ✅ LIST — GET /api/a/admins
============================== */

func (ctrl *AdminController) List(c *fiber.Ctx) error {
	var rows []model.AdminModel
	if err := ctrl.DB.Order("admin_created_at DESC").Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data admin")
	}
	return helper.JsonOK(c, "OK", dto.FromAdminModelList(rows))
}

/* ==============================
   internal
============================== */

func (ctrl *AdminController) currentAdmin(c *fiber.Ctx) (*model.AdminModel, error) {
	email, err := helper.GetUserEmailFromLocals(c)
	if err != nil {
		return nil, helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}
	var admin model.AdminModel
	if err := ctrl.DB.Where("admin_email = ?", email).First(&admin).Error; err != nil {
		return nil, helper.JsonError(c, fiber.StatusNotFound, "Admin tidak ditemukan")
	}
	return &admin, nil
}

func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(strings.ToLower(err.Error()), "sqlstate 23505")
}
