// file: internals/features/submissions/service/errors.go
package service

import "errors"

var (
	// ErrValidation: field wajib (code/name/state/city) kosong.
	ErrValidation = errors.New("data center tidak lengkap")

	// ErrDuplicateSubmission: sudah ada submission di hari kalender yang sama.
	ErrDuplicateSubmission = errors.New("submission untuk hari ini sudah ada, silakan edit submission yang ada")

	// ErrNotFound: tidak ada submission untuk tanggal tsb.
	ErrNotFound = errors.New("submission tidak ditemukan")

	// ErrNotFoundOrForbidden: id tidak ada ATAU bukan milik submitter.
	// Sengaja satu error: caller tidak boleh bisa membedakan keduanya.
	ErrNotFoundOrForbidden = errors.New("submission tidak ditemukan")
)
