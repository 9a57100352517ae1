// file: internals/features/users/model/user_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

type UserModel struct {
	UserID uuid.UUID `gorm:"column:user_id;type:uuid;default:gen_random_uuid();primaryKey" json:"user_id"`

	UserName  string `gorm:"column:user_name;size:50;not null;uniqueIndex" json:"user_name"`
	UserEmail string `gorm:"column:user_email;size:255;not null;uniqueIndex" json:"user_email"`

	// kosong untuk akun yang hanya login via Google
	UserPassword string  `gorm:"column:user_password;size:255" json:"-"`
	UserGoogleID *string `gorm:"column:user_google_id;size:64;index" json:"-"`

	UserRole     string `gorm:"column:user_role;size:20;not null;default:'user'" json:"user_role"`
	UserIsActive bool   `gorm:"column:user_is_active;not null;default:true" json:"user_is_active"`

	UserCreatedAt time.Time `gorm:"column:user_created_at;type:timestamptz;autoCreateTime" json:"user_created_at"`
	UserUpdatedAt time.Time `gorm:"column:user_updated_at;type:timestamptz;autoUpdateTime" json:"user_updated_at"`
}

func (UserModel) TableName() string { return "users" }
