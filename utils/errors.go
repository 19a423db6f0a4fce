package utils

import (
	"errors"

	"gorm.io/gorm"
)

// Kode error machine-readable yang dikirim bersama envelope error.
// Satu request satu error terminal; tidak ada retry ataupun partial success.
const (
	CodeValidation  = "validation_error"
	CodeNotFound    = "not_found"
	CodeConflict    = "conflict"
	CodePersistence = "persistence_error"
	CodeAuth        = "auth_error"
)

// Sentinel error untuk layer service.
var (
	ErrNotFound           = errors.New("data tidak ditemukan")
	ErrConflict           = errors.New("data sudah terdaftar")
	ErrInvalidCredentials = errors.New("email atau password salah")
)

// IsNotFound mengecek error record-not-found dari GORM ataupun sentinel service.
func IsNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound) || errors.Is(err, ErrNotFound)
}

// IsConflict mengecek pelanggaran unique constraint.
// Butuh gorm.Config{TranslateError: true} supaya error driver diterjemahkan.
func IsConflict(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey) || errors.Is(err, ErrConflict)
}
