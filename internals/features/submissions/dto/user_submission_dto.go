// file: internals/features/submissions/dto/user_submission_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"centerku_backend/internals/features/submissions/model"
	"centerku_backend/internals/features/submissions/service"
)

/* ==============================
   REQUEST (POST & PUT memakai payload center yang sama)
============================== */

type MediaLocationPayload struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type MediaItemPayload struct {
	URL string `json:"url"`
	URI string `json:"uri"` // alias lama dari mobile client

	PublicID string `json:"public_id"`
	Type     string `json:"type"` // "image" | "video"; default image

	Name         string `json:"name"`
	OriginalName string `json:"original_name"`

	Location *MediaLocationPayload `json:"location"`
	Address  string                `json:"address"`
}

type CenterDataRequest struct {
	CenterCode string `json:"center_code" validate:"required,max=50"`
	CenterName string `json:"center_name" validate:"required,max=255"`
	State      string `json:"state" validate:"required,max=100"`
	City       string `json:"city" validate:"required,max=100"`

	Latitude  *float64 `json:"latitude" validate:"omitempty,gte=-90,lte=90"`
	Longitude *float64 `json:"longitude" validate:"omitempty,gte=-180,lte=180"`
	Address   *string  `json:"address" validate:"omitempty"`

	BiometricDeskCount *string `json:"biometric_desk_count" validate:"omitempty,max=20"`
	Remark             *string `json:"remark" validate:"omitempty"`

	// kategori → list media. Kategori yang tidak dikirim tidak disentuh
	// saat update; kategori yang dikirim mengganti isi lama seutuhnya.
	Media map[string][]MediaItemPayload `json:"media" validate:"omitempty"`
}

// ToCenterData menormalkan payload jadi input service.
func (r *CenterDataRequest) ToCenterData() service.CenterData {
	return service.CenterData{
		CenterCode: strings.TrimSpace(r.CenterCode),
		CenterName: strings.TrimSpace(r.CenterName),
		State:      strings.TrimSpace(r.State),
		City:       strings.TrimSpace(r.City),
		Latitude:   r.Latitude,
		Longitude:  r.Longitude,
		Address:    trimPtr(r.Address),
		DeskCount:  trimPtr(r.BiometricDeskCount),
		Remark:     trimPtr(r.Remark),
		Media:      toMediaMap(r.Media),
	}
}

// UpdateCenterDataRequest: versi partial untuk PUT. Semua field opsional —
// yang tidak dikirim tidak menyentuh nilai tersimpan (simetris dengan
// aturan media per kategori).
type UpdateCenterDataRequest struct {
	CenterCode string `json:"center_code" validate:"omitempty,max=50"`
	CenterName string `json:"center_name" validate:"omitempty,max=255"`
	State      string `json:"state" validate:"omitempty,max=100"`
	City       string `json:"city" validate:"omitempty,max=100"`

	Latitude  *float64 `json:"latitude" validate:"omitempty,gte=-90,lte=90"`
	Longitude *float64 `json:"longitude" validate:"omitempty,gte=-180,lte=180"`
	Address   *string  `json:"address" validate:"omitempty"`

	BiometricDeskCount *string `json:"biometric_desk_count" validate:"omitempty,max=20"`
	Remark             *string `json:"remark" validate:"omitempty"`

	Media map[string][]MediaItemPayload `json:"media" validate:"omitempty"`
}

func (r *UpdateCenterDataRequest) ToCenterData() service.CenterData {
	return service.CenterData{
		CenterCode: strings.TrimSpace(r.CenterCode),
		CenterName: strings.TrimSpace(r.CenterName),
		State:      strings.TrimSpace(r.State),
		City:       strings.TrimSpace(r.City),
		Latitude:   r.Latitude,
		Longitude:  r.Longitude,
		Address:    trimPtr(r.Address),
		DeskCount:  trimPtr(r.BiometricDeskCount),
		Remark:     trimPtr(r.Remark),
		Media:      toMediaMap(r.Media),
	}
}

func toMediaMap(in map[string][]MediaItemPayload) model.MediaMap {
	if in == nil {
		return nil
	}
	out := make(model.MediaMap, len(in))
	now := time.Now()
	for cat, items := range in {
		if items == nil {
			// null ≠ list kosong: kategori null dibiarkan nil supaya
			// service tahu kategori ini tidak boleh disentuh
			out[cat] = nil
			continue
		}
		converted := make([]model.MediaItem, 0, len(items))
		for _, p := range items {
			converted = append(converted, p.toModel(now))
		}
		out[cat] = converted
	}
	return out
}

func (p MediaItemPayload) toModel(now time.Time) model.MediaItem {
	url := strings.TrimSpace(p.URL)
	if url == "" {
		url = strings.TrimSpace(p.URI)
	}
	typ := strings.TrimSpace(p.Type)
	if typ == "" {
		typ = "image"
	}
	name := strings.TrimSpace(p.OriginalName)
	if name == "" {
		name = strings.TrimSpace(p.Name)
	}
	if name == "" {
		name = "unnamed"
	}

	it := model.MediaItem{
		URL:          url,
		PublicID:     strings.TrimSpace(p.PublicID),
		Type:         typ,
		OriginalName: name,
		Address:      strings.TrimSpace(p.Address),
		UploadedAt:   &now,
	}
	if p.Location != nil {
		lat, lng := p.Location.Latitude, p.Location.Longitude
		it.Latitude = &lat
		it.Longitude = &lng
	}
	return it
}

func trimPtr(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}

/* ==============================
   RESPONSE
============================== */

// PublicSubmissionResponse: listing publik — TANPA field identitas
// submitter sama sekali (bukan sekadar dikosongkan).
type PublicSubmissionResponse struct {
	UserSubmissionID uuid.UUID `json:"user_submission_id"`

	CenterCode string `json:"center_code"`
	CenterName string `json:"center_name"`
	State      string `json:"state"`
	City       string `json:"city"`

	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`
	Address   *string  `json:"address,omitempty"`

	BiometricDeskCount *string `json:"biometric_desk_count,omitempty"`
	Remark             *string `json:"remark,omitempty"`

	Media datatypes.JSON `json:"media,omitempty"`

	SubmittedAt time.Time `json:"submitted_at"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func FromModelPublic(m *model.UserSubmissionModel) PublicSubmissionResponse {
	return PublicSubmissionResponse{
		UserSubmissionID:   m.UserSubmissionID,
		CenterCode:         m.UserSubmissionCenterCode,
		CenterName:         m.UserSubmissionCenterName,
		State:              m.UserSubmissionState,
		City:               m.UserSubmissionCity,
		Latitude:           m.UserSubmissionLatitude,
		Longitude:          m.UserSubmissionLongitude,
		Address:            m.UserSubmissionAddress,
		BiometricDeskCount: m.UserSubmissionDeskCount,
		Remark:             m.UserSubmissionRemark,
		Media:              m.UserSubmissionMedia,
		SubmittedAt:        m.UserSubmissionSubmittedAt,
		CreatedAt:          m.UserSubmissionCreatedAt,
		UpdatedAt:          m.UserSubmissionUpdatedAt,
	}
}

func FromModelPublicList(rows []model.UserSubmissionModel) []PublicSubmissionResponse {
	out := make([]PublicSubmissionResponse, 0, len(rows))
	for i := range rows {
		out = append(out, FromModelPublic(&rows[i]))
	}
	return out
}
