// file: internals/features/submissions/service/submission_service.go
package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"centerku_backend/internals/features/submissions/model"
	"centerku_backend/internals/helpers/dbtime"
)

/* ==============================
   Store contract
============================== */

// ErrDuplicateDay dikembalikan Store.Insert saat unique index
// (submitted_by, day) dilanggar — backstop race check-then-insert.
var ErrDuplicateDay = errors.New("duplicate submitter/day")

type Store interface {
	// FindBySubmitterInRange: submission dengan submitted_at ∈ [from, to);
	// (nil, nil) kalau tidak ada.
	FindBySubmitterInRange(ctx context.Context, email string, from, to time.Time) (*model.UserSubmissionModel, error)
	Insert(ctx context.Context, sub *model.UserSubmissionModel) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.UserSubmissionModel, error)
	Save(ctx context.Context, sub *model.UserSubmissionModel) error
	Delete(ctx context.Context, sub *model.UserSubmissionModel) error
	ListBySubmitter(ctx context.Context, email string) ([]model.UserSubmissionModel, error)
	ListAll(ctx context.Context) ([]model.UserSubmissionModel, error)

	// UpsertCenterLite: side effect direktori center (keyed by code).
	UpsertCenterLite(ctx context.Context, code, name, state, city, submittedBy string) error
}

/* ==============================
   Input payload
============================== */

// CenterData adalah payload center yang dibawa create/update submission.
type CenterData struct {
	CenterCode string
	CenterName string
	State      string
	City       string
	Latitude   *float64
	Longitude  *float64
	Address    *string
	DeskCount  *string
	Remark     *string
	Media      model.MediaMap
}

func (d *CenterData) normalize() {
	d.CenterCode = strings.TrimSpace(d.CenterCode)
	d.CenterName = strings.TrimSpace(d.CenterName)
	d.State = strings.TrimSpace(d.State)
	d.City = strings.TrimSpace(d.City)
}

func (d *CenterData) requiredOK() bool {
	return d.CenterCode != "" && d.CenterName != "" && d.State != "" && d.City != ""
}

/* ==============================
   Service
============================== */

// SubmissionService menegakkan invariant satu-submission-per-hari dan
// aturan merge media; controller hanya glue request/response.
type SubmissionService struct {
	store Store
	now   func() time.Time
}

func NewSubmissionService(store Store) *SubmissionService {
	return &SubmissionService{store: store, now: time.Now}
}

// NewSubmissionServiceWithClock untuk test (jam bisa disuntik).
func NewSubmissionServiceWithClock(store Store, now func() time.Time) *SubmissionService {
	return &SubmissionService{store: store, now: now}
}

// TodayStatus hasil CheckTodaySubmission.
type TodayStatus struct {
	HasSubmitted bool       `json:"has_submitted"`
	SubmissionID *uuid.UUID `json:"submission_id,omitempty"`
}

// CreateSubmission: satu submission per (submitter, hari kalender).
func (s *SubmissionService) CreateSubmission(ctx context.Context, submitterEmail string, data CenterData) (*model.UserSubmissionModel, error) {
	submitterEmail = strings.ToLower(strings.TrimSpace(submitterEmail))
	if submitterEmail == "" {
		return nil, ErrValidation
	}
	data.normalize()
	if !data.requiredOK() {
		return nil, ErrValidation
	}

	now := s.now()
	dayStart, dayEnd := dbtime.DayBounds(now)

	// Cek duluan supaya pesan errornya ramah; unique index tetap jadi
	// penjaga terakhir kalau dua request lolos cek bersamaan.
	existing, err := s.store.FindBySubmitterInRange(ctx, submitterEmail, dayStart, dayEnd)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrDuplicateSubmission
	}

	sub := &model.UserSubmissionModel{
		UserSubmissionSubmittedBy: submitterEmail,
		UserSubmissionCenterCode:  data.CenterCode,
		UserSubmissionCenterName:  data.CenterName,
		UserSubmissionState:       data.State,
		UserSubmissionCity:        data.City,
		UserSubmissionLatitude:    data.Latitude,
		UserSubmissionLongitude:   data.Longitude,
		UserSubmissionAddress:     data.Address,
		UserSubmissionDeskCount:   data.DeskCount,
		UserSubmissionRemark:      data.Remark,
		UserSubmissionSubmittedAt: now,
		UserSubmissionDay:         dbtime.DayOf(now),
	}

	// Fallback lokasi: GPS dari foto boleh menggantikan lokasi form.
	if sub.UserSubmissionLatitude == nil || sub.UserSubmissionLongitude == nil {
		if it := FirstMediaLocation(data.Media); it != nil {
			sub.UserSubmissionLatitude = it.Latitude
			sub.UserSubmissionLongitude = it.Longitude
			if sub.UserSubmissionAddress == nil && strings.TrimSpace(it.Address) != "" {
				addr := it.Address
				sub.UserSubmissionAddress = &addr
			}
		}
	}

	if err := sub.SetMedia(data.Media); err != nil {
		return nil, err
	}

	if err := s.store.Insert(ctx, sub); err != nil {
		if errors.Is(err, ErrDuplicateDay) {
			return nil, ErrDuplicateSubmission
		}
		return nil, err
	}

	// Side effect: direktori center tetap terisi. Dua write ini tidak
	// transaksional; kalau upsert gagal submission sudah tersimpan dan
	// error upsert diteruskan ke caller (perilaku yang disepakati).
	if err := s.store.UpsertCenterLite(ctx, sub.UserSubmissionCenterCode, sub.UserSubmissionCenterName,
		sub.UserSubmissionState, sub.UserSubmissionCity, submitterEmail); err != nil {
		return nil, err
	}

	return sub, nil
}

// UpdateSubmission: hanya owner. Partial update simetris dengan aturan
// media: field yang tidak dikirim (string kosong / pointer nil) tetap
// memakai nilai lama, field yang dikirim menimpa.
func (s *SubmissionService) UpdateSubmission(ctx context.Context, id uuid.UUID, submitterEmail string, data CenterData) (*model.UserSubmissionModel, error) {
	submitterEmail = strings.ToLower(strings.TrimSpace(submitterEmail))
	data.normalize()

	sub, err := s.findOwned(ctx, id, submitterEmail)
	if err != nil {
		return nil, err
	}

	merged := MergeMedia(sub.Media(), data.Media)

	if data.CenterCode != "" {
		sub.UserSubmissionCenterCode = data.CenterCode
	}
	if data.CenterName != "" {
		sub.UserSubmissionCenterName = data.CenterName
	}
	if data.State != "" {
		sub.UserSubmissionState = data.State
	}
	if data.City != "" {
		sub.UserSubmissionCity = data.City
	}
	if data.Latitude != nil {
		sub.UserSubmissionLatitude = data.Latitude
	}
	if data.Longitude != nil {
		sub.UserSubmissionLongitude = data.Longitude
	}
	if data.Address != nil {
		sub.UserSubmissionAddress = data.Address
	}
	if data.DeskCount != nil {
		sub.UserSubmissionDeskCount = data.DeskCount
	}
	if data.Remark != nil {
		sub.UserSubmissionRemark = data.Remark
	}
	sub.UserSubmissionUpdatedAt = s.now()

	if sub.UserSubmissionLatitude == nil || sub.UserSubmissionLongitude == nil {
		if it := FirstMediaLocation(merged); it != nil {
			sub.UserSubmissionLatitude = it.Latitude
			sub.UserSubmissionLongitude = it.Longitude
			if sub.UserSubmissionAddress == nil && strings.TrimSpace(it.Address) != "" {
				addr := it.Address
				sub.UserSubmissionAddress = &addr
			}
		}
	}

	if err := sub.SetMedia(merged); err != nil {
		return nil, err
	}
	if err := s.store.Save(ctx, sub); err != nil {
		return nil, err
	}
	return sub, nil
}

// CheckTodaySubmission: dipakai client menentukan form create vs edit.
func (s *SubmissionService) CheckTodaySubmission(ctx context.Context, submitterEmail string) (*TodayStatus, error) {
	submitterEmail = strings.ToLower(strings.TrimSpace(submitterEmail))
	dayStart, dayEnd := dbtime.DayBounds(s.now())

	existing, err := s.store.FindBySubmitterInRange(ctx, submitterEmail, dayStart, dayEnd)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return &TodayStatus{HasSubmitted: false}, nil
	}
	id := existing.UserSubmissionID
	return &TodayStatus{HasSubmitted: true, SubmissionID: &id}, nil
}

// GetSubmissionByDate: submission milik submitter pada tanggal tsb.
func (s *SubmissionService) GetSubmissionByDate(ctx context.Context, submitterEmail string, date time.Time) (*model.UserSubmissionModel, error) {
	submitterEmail = strings.ToLower(strings.TrimSpace(submitterEmail))
	dayStart, dayEnd := dbtime.DayBounds(date)

	existing, err := s.store.FindBySubmitterInRange(ctx, submitterEmail, dayStart, dayEnd)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, ErrNotFound
	}
	return existing, nil
}

// DeleteSubmission: hard delete, cek kepemilikan yang sama dengan update.
func (s *SubmissionService) DeleteSubmission(ctx context.Context, id uuid.UUID, submitterEmail string) error {
	submitterEmail = strings.ToLower(strings.TrimSpace(submitterEmail))
	sub, err := s.findOwned(ctx, id, submitterEmail)
	if err != nil {
		return err
	}
	return s.store.Delete(ctx, sub)
}

// ListMySubmissions: seluruh submission milik submitter, terbaru dulu.
func (s *SubmissionService) ListMySubmissions(ctx context.Context, submitterEmail string) ([]model.UserSubmissionModel, error) {
	return s.store.ListBySubmitter(ctx, strings.ToLower(strings.TrimSpace(submitterEmail)))
}

// ListAllSubmissions: semua submission (admin), terbaru dulu.
func (s *SubmissionService) ListAllSubmissions(ctx context.Context) ([]model.UserSubmissionModel, error) {
	return s.store.ListAll(ctx)
}

// ListPublicSubmissions: listing publik — identitas submitter DIBUANG
// sebelum keluar dari service.
func (s *SubmissionService) ListPublicSubmissions(ctx context.Context) ([]model.UserSubmissionModel, error) {
	subs, err := s.store.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	for i := range subs {
		subs[i].UserSubmissionSubmittedBy = ""
	}
	return subs, nil
}

// findOwned menyatukan "tidak ada" dan "bukan milikmu" jadi satu error.
func (s *SubmissionService) findOwned(ctx context.Context, id uuid.UUID, submitterEmail string) (*model.UserSubmissionModel, error) {
	sub, err := s.store.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if sub == nil || sub.UserSubmissionSubmittedBy != submitterEmail {
		return nil, ErrNotFoundOrForbidden
	}
	return sub, nil
}
