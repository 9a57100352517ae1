// file: internals/features/submissions/model/user_submission_model.go
package model

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

/* =========================================================
   MEDIA (embedded JSON, dimiliki penuh oleh submission)
   ========================================================= */

// MediaItem adalah satu foto/video dalam satu kategori.
type MediaItem struct {
	URL          string     `json:"url"`
	PublicID     string     `json:"public_id"`
	Type         string     `json:"type"` // "image" | "video"
	OriginalName string     `json:"original_name,omitempty"`
	Latitude     *float64   `json:"latitude,omitempty"`
	Longitude    *float64   `json:"longitude,omitempty"`
	Address      string     `json:"address,omitempty"`
	UploadedAt   *time.Time `json:"uploaded_at,omitempty"`
}

// MediaMap: kategori → daftar media (entry, passage, dst).
type MediaMap map[string][]MediaItem

/* =========================================================
   MODEL: user_submissions
   ========================================================= */

type UserSubmissionModel struct {
	// PK & owner
	UserSubmissionID          uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:user_submission_id" json:"user_submission_id"`
	UserSubmissionSubmittedBy string    `gorm:"type:varchar(255);not null;index;uniqueIndex:uq_user_submissions_submitter_day;column:user_submission_submitted_by" json:"user_submission_submitted_by"`

	// Snapshot data center saat submit
	UserSubmissionCenterCode string `gorm:"type:varchar(50);not null;column:user_submission_center_code" json:"user_submission_center_code"`
	UserSubmissionCenterName string `gorm:"type:varchar(255);not null;column:user_submission_center_name" json:"user_submission_center_name"`
	UserSubmissionState      string `gorm:"type:varchar(100);not null;column:user_submission_state" json:"user_submission_state"`
	UserSubmissionCity       string `gorm:"type:varchar(100);not null;column:user_submission_city" json:"user_submission_city"`

	// Lokasi (opsional; bisa diturunkan dari media)
	UserSubmissionLatitude  *float64 `gorm:"type:double precision;column:user_submission_latitude" json:"user_submission_latitude,omitempty"`
	UserSubmissionLongitude *float64 `gorm:"type:double precision;column:user_submission_longitude" json:"user_submission_longitude,omitempty"`
	UserSubmissionAddress   *string  `gorm:"type:text;column:user_submission_address" json:"user_submission_address,omitempty"`

	UserSubmissionDeskCount *string `gorm:"type:varchar(20);column:user_submission_desk_count" json:"user_submission_desk_count,omitempty"`
	UserSubmissionRemark    *string `gorm:"type:text;column:user_submission_remark" json:"user_submission_remark,omitempty"`

	// Media per kategori (JSONB)
	UserSubmissionMedia datatypes.JSON `gorm:"type:jsonb;column:user_submission_media" json:"user_submission_media,omitempty"`

	// Waktu submit + bucket harian.
	// Unique index (submitted_by, day) menutup race check-then-insert:
	// dua request bersamaan di hari yang sama pasti satu yang kalah di DB.
	UserSubmissionSubmittedAt time.Time `gorm:"type:timestamptz;not null;default:now();column:user_submission_submitted_at" json:"user_submission_submitted_at"`
	UserSubmissionDay         time.Time `gorm:"type:date;not null;uniqueIndex:uq_user_submissions_submitter_day;column:user_submission_day" json:"-"`

	// Audit
	UserSubmissionCreatedAt time.Time `gorm:"type:timestamptz;not null;default:now();autoCreateTime;column:user_submission_created_at" json:"user_submission_created_at"`
	UserSubmissionUpdatedAt time.Time `gorm:"type:timestamptz;not null;default:now();autoUpdateTime;column:user_submission_updated_at" json:"user_submission_updated_at"`
}

func (UserSubmissionModel) TableName() string { return "user_submissions" }

// Media men-decode kolom JSONB ke MediaMap. Kolom kosong → map kosong.
func (m *UserSubmissionModel) Media() MediaMap {
	out := MediaMap{}
	if len(m.UserSubmissionMedia) == 0 {
		return out
	}
	_ = json.Unmarshal(m.UserSubmissionMedia, &out)
	return out
}

// SetMedia meng-encode MediaMap ke kolom JSONB. Map kosong → NULL.
func (m *UserSubmissionModel) SetMedia(mm MediaMap) error {
	if len(mm) == 0 {
		m.UserSubmissionMedia = nil
		return nil
	}
	b, err := json.Marshal(mm)
	if err != nil {
		return err
	}
	m.UserSubmissionMedia = datatypes.JSON(b)
	return nil
}
