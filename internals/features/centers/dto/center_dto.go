// file: internals/features/centers/dto/center_dto.go
package dto

import (
	"encoding/json"
	"strings"

	"gorm.io/datatypes"

	"centerku_backend/internals/features/centers/model"
)

/* ==============================
   CREATE (POST /centers)
============================== */

type CreateCenterRequest struct {
	CenterCode string `json:"center_code" validate:"required,max=50"`
	CenterName string `json:"center_name" validate:"required,max=255"`
	State      string `json:"state" validate:"required,max=100"`
	City       string `json:"city" validate:"required,max=100"`

	Latitude  *float64 `json:"latitude" validate:"omitempty,gte=-90,lte=90"`
	Longitude *float64 `json:"longitude" validate:"omitempty,gte=-180,lte=180"`
	Address   *string  `json:"address" validate:"omitempty"`

	BiometricDeskCount *string `json:"biometric_desk_count" validate:"omitempty,max=20"`

	// kategori → list media (opsional, struktur bebas mengikuti submission)
	Media json.RawMessage `json:"media" validate:"omitempty"`
}

func (r *CreateCenterRequest) ToModel(submittedBy string) *model.CenterModel {
	m := &model.CenterModel{
		CenterCode:        strings.TrimSpace(r.CenterCode),
		CenterName:        strings.TrimSpace(r.CenterName),
		CenterState:       strings.TrimSpace(r.State),
		CenterCity:        strings.TrimSpace(r.City),
		CenterSubmittedBy: submittedBy,
		CenterLatitude:    r.Latitude,
		CenterLongitude:   r.Longitude,
		CenterAddress:     trimPtr(r.Address),
		CenterDeskCount:   trimPtr(r.BiometricDeskCount),
	}
	if len(r.Media) > 0 && string(r.Media) != "null" {
		m.CenterMedia = datatypes.JSON(r.Media)
	}
	return m
}

/* ==============================
   BULK (POST /centers/bulk) — payload array of rows
============================== */

type BulkCenterRow struct {
	CenterCode string `json:"center_code" validate:"required,max=50"`
	CenterName string `json:"center_name" validate:"required,max=255"`
	State      string `json:"state" validate:"required,max=100"`
	City       string `json:"city" validate:"required,max=100"`

	Latitude           *float64 `json:"latitude" validate:"omitempty"`
	Longitude          *float64 `json:"longitude" validate:"omitempty"`
	Address            *string  `json:"address" validate:"omitempty"`
	BiometricDeskCount *string  `json:"biometric_desk_count" validate:"omitempty,max=20"`
}

func (r *BulkCenterRow) ToModel(submittedBy string) *model.CenterModel {
	return &model.CenterModel{
		CenterCode:        strings.TrimSpace(r.CenterCode),
		CenterName:        strings.TrimSpace(r.CenterName),
		CenterState:       strings.TrimSpace(r.State),
		CenterCity:        strings.TrimSpace(r.City),
		CenterSubmittedBy: submittedBy,
		CenterLatitude:    r.Latitude,
		CenterLongitude:   r.Longitude,
		CenterAddress:     trimPtr(r.Address),
		CenterDeskCount:   trimPtr(r.BiometricDeskCount),
	}
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
