// file: internals/features/users/service/password_service.go
package service

import "golang.org/x/crypto/bcrypt"

// HashPassword meng-hash password plaintext dengan bcrypt (cost default).
func HashPassword(plain string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// CheckPasswordHash membandingkan plaintext dengan hash tersimpan.
func CheckPasswordHash(plain, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}
