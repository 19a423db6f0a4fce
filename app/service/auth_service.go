package service

import (
	"bukubersama-backend/app/model"
	"bukubersama-backend/app/repository"
	"bukubersama-backend/utils"

	"golang.org/x/crypto/bcrypt"
)

// AuthService mendefinisikan layanan autentikasi mahasiswa.
type AuthService interface {
	Register(user *model.User, password string) error
	Login(email, password string) (*model.User, error)
}

type authService struct {
	userRepo repository.UserRepository
}

// NewAuthService menghubungkan Service dengan Repository.
func NewAuthService(userRepo repository.UserRepository) AuthService {
	return &authService{
		userRepo: userRepo,
	}
}

// Register mendaftarkan mahasiswa baru.
// Email/NIM/username yang sudah terpakai dilaporkan sebagai ErrConflict,
// BUKAN kegagalan persist generik, supaya client bisa menampilkan pesan
// yang benar (dulu keduanya tercampur jadi satu error 500).
func (s *authService) Register(user *model.User, password string) error {
	if _, err := s.userRepo.FindByEmail(user.Email); err == nil {
		return utils.ErrConflict
	}
	if _, err := s.userRepo.FindByNIM(user.NIM); err == nil {
		return utils.ErrConflict
	}
	if user.Username != "" {
		if _, err := s.userRepo.FindByUsername(user.Username); err == nil {
			return utils.ErrConflict
		}
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	user.PasswordHash = string(hashedPassword)

	// Race dengan registrasi paralel tetap mungkin lolos pre-check;
	// unique constraint di database yang jadi penjaga terakhir
	// (diterjemahkan ke conflict juga oleh handler).
	return s.userRepo.Create(user)
}

// Login memeriksa pasangan email + password.
// Email tak dikenal dan password salah sengaja menghasilkan error yang
// sama supaya tidak membocorkan akun mana yang terdaftar.
func (s *authService) Login(email, password string) (*model.User, error) {
	user, err := s.userRepo.FindByEmail(email)
	if err != nil {
		return nil, utils.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, utils.ErrInvalidCredentials
	}

	return user, nil
}
