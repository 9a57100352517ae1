// file: internals/features/admins/model/admin_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

type AdminModel struct {
	AdminID uuid.UUID `gorm:"column:admin_id;type:uuid;default:gen_random_uuid();primaryKey" json:"admin_id"`

	// username & email disimpan lowercase supaya uniqueness tidak case-sensitive
	AdminUsername string `gorm:"column:admin_username;size:50;not null;uniqueIndex" json:"admin_username"`
	AdminEmail    string `gorm:"column:admin_email;size:255;not null;uniqueIndex" json:"admin_email"`

	AdminPassword string `gorm:"column:admin_password;size:255;not null" json:"-"`

	AdminIsActive  bool       `gorm:"column:admin_is_active;not null;default:true" json:"admin_is_active"`
	AdminLastLogin *time.Time `gorm:"column:admin_last_login;type:timestamptz" json:"admin_last_login,omitempty"`

	AdminCreatedAt time.Time `gorm:"column:admin_created_at;type:timestamptz;autoCreateTime" json:"admin_created_at"`
	AdminUpdatedAt time.Time `gorm:"column:admin_updated_at;type:timestamptz;autoUpdateTime" json:"admin_updated_at"`
}

func (AdminModel) TableName() string { return "admins" }
