// file: internals/features/admins/dto/admin_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	"centerku_backend/internals/features/admins/model"
)

type RegisterAdminRequest struct {
	Username string `json:"username" validate:"required,min=3,max=50"`
	Email    string `json:"email" validate:"required,email,max=255"`
	Password string `json:"password" validate:"required,min=8,max=100"`
}

type LoginAdminRequest struct {
	Identifier string `json:"identifier" validate:"required,max=255"`
	Password   string `json:"password" validate:"required"`
}

type UpdateAdminProfileRequest struct {
	Username *string `json:"username" validate:"omitempty,min=3,max=50"`
	Email    *string `json:"email" validate:"omitempty,email,max=255"`
}

type ChangeAdminPasswordRequest struct {
	OldPassword string `json:"old_password" validate:"required"`
	NewPassword string `json:"new_password" validate:"required,min=8,max=100"`
}

type AdminResponse struct {
	AdminID   uuid.UUID  `json:"admin_id"`
	Username  string     `json:"username"`
	Email     string     `json:"email"`
	IsActive  bool       `json:"is_active"`
	LastLogin *time.Time `json:"last_login,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}

func FromAdminModel(a *model.AdminModel) AdminResponse {
	return AdminResponse{
		AdminID:   a.AdminID,
		Username:  a.AdminUsername,
		Email:     a.AdminEmail,
		IsActive:  a.AdminIsActive,
		LastLogin: a.AdminLastLogin,
		CreatedAt: a.AdminCreatedAt,
	}
}

func FromAdminModelList(rows []model.AdminModel) []AdminResponse {
	out := make([]AdminResponse, 0, len(rows))
	for i := range rows {
		out = append(out, FromAdminModel(&rows[i]))
	}
	return out
}

type AdminLoginResponse struct {
	AccessToken string        `json:"access_token"`
	Admin       AdminResponse `json:"admin"`
}
