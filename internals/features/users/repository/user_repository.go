// file: internals/features/users/repository/user_repository.go
package repository

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"centerku_backend/internals/features/users/model"
)

// FindUserByIdentifier mencari user via email (mengandung '@') atau username.
func FindUserByIdentifier(db *gorm.DB, identifier string) (*model.UserModel, error) {
	identifier = strings.TrimSpace(identifier)
	var u model.UserModel
	q := db.Model(&model.UserModel{})
	if strings.Contains(identifier, "@") {
		q = q.Where("user_email = ?", strings.ToLower(identifier))
	} else {
		q = q.Where("user_name = ?", identifier)
	}
	if err := q.First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func FindUserByEmail(db *gorm.DB, email string) (*model.UserModel, error) {
	var u model.UserModel
	err := db.Where("user_email = ?", strings.ToLower(strings.TrimSpace(email))).First(&u).Error
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func FindUserByGoogleID(db *gorm.DB, googleID string) (*model.UserModel, error) {
	var u model.UserModel
	err := db.Where("user_google_id = ?", googleID).First(&u).Error
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// IsUserTaken memeriksa apakah username atau email sudah terpakai.
func IsUserTaken(db *gorm.DB, userName, email string) (bool, error) {
	var count int64
	err := db.Model(&model.UserModel{}).
		Where("user_name = ? OR user_email = ?", userName, strings.ToLower(email)).
		Count(&count).Error
	return count > 0, err
}

func IsNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
