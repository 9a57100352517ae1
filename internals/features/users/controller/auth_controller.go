// file: internals/features/users/controller/auth_controller.go
package controller

import (
	"strings"

	googleAuthIDTokenVerifier "github.com/futurenda/google-auth-id-token-verifier"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"centerku_backend/internals/configs"
	"centerku_backend/internals/constants"
	"centerku_backend/internals/features/users/dto"
	"centerku_backend/internals/features/users/model"
	"centerku_backend/internals/features/users/repository"
	"centerku_backend/internals/features/users/service"
	helper "centerku_backend/internals/helpers"
)

type AuthController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db, Validator: validator.New()}
}

/* ==============================
   ✅ REGISTER — POST /api/auth/register
============================== */

func (ctrl *AuthController) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validator.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	req.UserName = strings.TrimSpace(req.UserName)
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))

	taken, err := repository.IsUserTaken(ctrl.DB, req.UserName, req.Email)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memeriksa data user")
	}
	if taken {
		return helper.JsonError(c, fiber.StatusBadRequest, "Username atau email sudah terdaftar")
	}

	hashed, err := service.HashPassword(req.Password)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memproses password")
	}

	user := model.UserModel{
		UserName:     req.UserName,
		UserEmail:    req.Email,
		UserPassword: hashed,
		UserRole:     constants.RoleUser,
		UserIsActive: true,
	}
	if err := ctrl.DB.Create(&user).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat user")
	}

	return helper.JsonCreated(c, "Registrasi berhasil", dto.FromUserModel(&user))
}

/* ==============================
   ✅ LOGIN — POST /api/auth/login
============================== */

func (ctrl *AuthController) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validator.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	user, err := repository.FindUserByIdentifier(ctrl.DB, req.Identifier)
	if err != nil {
		if repository.IsNotFound(err) {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Identifier atau password salah")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memproses login")
	}
	if !user.UserIsActive {
		return helper.JsonError(c, fiber.StatusForbidden, "Akun dinonaktifkan")
	}
	if user.UserPassword == "" || !service.CheckPasswordHash(req.Password, user.UserPassword) {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Identifier atau password salah")
	}

	return ctrl.respondWithToken(c, user)
}

/* ==============================
   ✅ GOOGLE LOGIN — POST /api/auth/login-google
============================== */

func (ctrl *AuthController) LoginGoogle(c *fiber.Ctx) error {
	var req dto.GoogleLoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validator.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	// Verifikasi token Google
	v := googleAuthIDTokenVerifier.Verifier{}
	if err := v.VerifyIDToken(req.IDToken, []string{configs.GoogleClientID}); err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid Google ID Token")
	}
	claimSet, err := googleAuthIDTokenVerifier.Decode(req.IDToken)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to decode ID Token")
	}
	email, name, googleID := strings.ToLower(claimSet.Email), claimSet.Name, claimSet.Sub

	// Cari by google_id, lalu by email (tautkan akun lama), terakhir buat baru
	user, err := repository.FindUserByGoogleID(ctrl.DB, googleID)
	if err != nil && !repository.IsNotFound(err) {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memproses login")
	}
	if user == nil || repository.IsNotFound(err) {
		user, err = repository.FindUserByEmail(ctrl.DB, email)
		switch {
		case err == nil:
			user.UserGoogleID = &googleID
			if err := ctrl.DB.Model(user).Update("user_google_id", googleID).Error; err != nil {
				return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menautkan akun Google")
			}
		case repository.IsNotFound(err):
			userName := deriveUserName(name, email)
			if taken, terr := repository.IsUserTaken(ctrl.DB, userName, email); terr == nil && taken {
				userName = uniqueSuffix(userName)
			}
			user = &model.UserModel{
				UserName:     userName,
				UserEmail:    email,
				UserGoogleID: &googleID,
				UserRole:     constants.RoleUser,
				UserIsActive: true,
			}
			if err := ctrl.DB.Create(user).Error; err != nil {
				return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat user")
			}
		default:
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memproses login")
		}
	}
	if !user.UserIsActive {
		return helper.JsonError(c, fiber.StatusForbidden, "Akun dinonaktifkan")
	}

	return ctrl.respondWithToken(c, user)
}

/* ==============================
   ✅ GANTI PASSWORD — POST /api/u/auth/change-password
============================== */

func (ctrl *AuthController) ChangePassword(c *fiber.Ctx) error {
	email, err := helper.GetUserEmailFromLocals(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var req dto.ChangePasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validator.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	user, err := repository.FindUserByEmail(ctrl.DB, email)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data user")
	}
	if user.UserPassword == "" || !service.CheckPasswordHash(req.OldPassword, user.UserPassword) {
		return helper.JsonError(c, fiber.StatusBadRequest, "Password lama salah")
	}

	hashed, err := service.HashPassword(req.NewPassword)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memproses password")
	}
	if err := ctrl.DB.Model(user).Update("user_password", hashed).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengganti password")
	}

	return helper.JsonUpdated(c, "Password berhasil diganti", nil)
}

/* ==============================
   internal
============================== */

func (ctrl *AuthController) respondWithToken(c *fiber.Ctx, user *model.UserModel) error {
	token, err := helper.CreateAccessToken(configs.JWTSecret, user.UserID, user.UserName, user.UserEmail, user.UserRole)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat access token")
	}
	return helper.JsonOK(c, "Login berhasil", dto.LoginResponse{
		AccessToken: token,
		User:        dto.FromUserModel(user),
	})
}

// deriveUserName membentuk username dari nama Google / bagian lokal email.
func deriveUserName(name, email string) string {
	n := strings.TrimSpace(name)
	if n == "" {
		if i := strings.Index(email, "@"); i > 0 {
			n = email[:i]
		} else {
			n = email
		}
	}
	n = strings.ToLower(strings.ReplaceAll(n, " ", "_"))
	if len(n) > 50 {
		n = n[:50]
	}
	return n
}

func uniqueSuffix(base string) string {
	suffix := "_" + uuid.NewString()[:8]
	if len(base)+len(suffix) > 50 {
		base = base[:50-len(suffix)]
	}
	return base + suffix
}
