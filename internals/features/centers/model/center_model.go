// file: internals/features/centers/model/center_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

/* =========================================================
   MODEL: centers (direktori lookup, keyed by center_code)
   ========================================================= */

type CenterModel struct {
	CenterID   uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:center_id" json:"center_id"`
	CenterCode string    `gorm:"type:varchar(50);not null;uniqueIndex;column:center_code" json:"center_code"`
	CenterName string    `gorm:"type:varchar(255);not null;column:center_name" json:"center_name"`

	CenterState string `gorm:"type:varchar(100);not null;index;column:center_state" json:"center_state"`
	CenterCity  string `gorm:"type:varchar(100);not null;index;column:center_city" json:"center_city"`

	CenterSubmittedBy string `gorm:"type:varchar(255);not null;column:center_submitted_by" json:"center_submitted_by"`

	// Lokasi & jumlah meja biometrik (opsional, dari CSV/form)
	CenterLatitude  *float64 `gorm:"type:double precision;column:center_latitude" json:"center_latitude,omitempty"`
	CenterLongitude *float64 `gorm:"type:double precision;column:center_longitude" json:"center_longitude,omitempty"`
	CenterAddress   *string  `gorm:"type:text;column:center_address" json:"center_address,omitempty"`
	CenterDeskCount *string  `gorm:"type:varchar(20);column:center_desk_count" json:"center_desk_count,omitempty"`
	CenterRemark    *string  `gorm:"type:text;column:center_remark" json:"center_remark,omitempty"`

	// Media per kategori (JSONB, struktur sama dengan submission)
	CenterMedia datatypes.JSON `gorm:"type:jsonb;column:center_media" json:"center_media,omitempty"`

	CenterCreatedAt time.Time `gorm:"type:timestamptz;not null;default:now();autoCreateTime;column:center_created_at" json:"center_created_at"`
	CenterUpdatedAt time.Time `gorm:"type:timestamptz;not null;default:now();autoUpdateTime;column:center_updated_at" json:"center_updated_at"`
}

func (CenterModel) TableName() string { return "centers" }
