// file: internals/features/submissions/repository/submission_repository.go
package repository

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	centerModel "centerku_backend/internals/features/centers/model"
	"centerku_backend/internals/features/submissions/model"
	"centerku_backend/internals/features/submissions/service"
)

// GormStore adalah implementasi service.Store di atas Postgres.
type GormStore struct {
	DB *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore { return &GormStore{DB: db} }

var _ service.Store = (*GormStore)(nil)

func (r *GormStore) FindBySubmitterInRange(ctx context.Context, email string, from, to time.Time) (*model.UserSubmissionModel, error) {
	var sub model.UserSubmissionModel
	err := r.DB.WithContext(ctx).
		Where("user_submission_submitted_by = ? AND user_submission_submitted_at >= ? AND user_submission_submitted_at < ?",
			email, from, to).
		First(&sub).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &sub, nil
}

func (r *GormStore) Insert(ctx context.Context, sub *model.UserSubmissionModel) error {
	if err := r.DB.WithContext(ctx).Create(sub).Error; err != nil {
		if isUniqueViolation(err) {
			return service.ErrDuplicateDay
		}
		return err
	}
	return nil
}

func (r *GormStore) FindByID(ctx context.Context, id uuid.UUID) (*model.UserSubmissionModel, error) {
	var sub model.UserSubmissionModel
	err := r.DB.WithContext(ctx).
		First(&sub, "user_submission_id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &sub, nil
}

func (r *GormStore) Save(ctx context.Context, sub *model.UserSubmissionModel) error {
	return r.DB.WithContext(ctx).Save(sub).Error
}

func (r *GormStore) Delete(ctx context.Context, sub *model.UserSubmissionModel) error {
	return r.DB.WithContext(ctx).
		Delete(&model.UserSubmissionModel{}, "user_submission_id = ?", sub.UserSubmissionID).Error
}

func (r *GormStore) ListBySubmitter(ctx context.Context, email string) ([]model.UserSubmissionModel, error) {
	var subs []model.UserSubmissionModel
	err := r.DB.WithContext(ctx).
		Where("user_submission_submitted_by = ?", email).
		Order("user_submission_submitted_at DESC").
		Find(&subs).Error
	return subs, err
}

func (r *GormStore) ListAll(ctx context.Context) ([]model.UserSubmissionModel, error) {
	var subs []model.UserSubmissionModel
	err := r.DB.WithContext(ctx).
		Order("user_submission_submitted_at DESC").
		Find(&subs).Error
	return subs, err
}

// UpsertCenterLite: direktori center ikut terisi tiap ada submission.
// Keyed by center_code; data lama ditimpa snapshot terbaru.
func (r *GormStore) UpsertCenterLite(ctx context.Context, code, name, state, city, submittedBy string) error {
	row := centerModel.CenterModel{
		CenterCode:        code,
		CenterName:        name,
		CenterState:       state,
		CenterCity:        city,
		CenterSubmittedBy: submittedBy,
	}
	return r.DB.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "center_code"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"center_name", "center_state", "center_city", "center_submitted_by", "center_updated_at",
			}),
		}).
		Create(&row).Error
}

func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	s := strings.ToLower(err.Error())
	return strings.Contains(s, "sqlstate 23505") ||
		strings.Contains(s, "duplicate key") ||
		strings.Contains(s, "unique constraint")
}
