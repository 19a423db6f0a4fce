package service

import (
	"net/http"

	"bukubersama-backend/app/model"
	"bukubersama-backend/app/repository"
	"bukubersama-backend/utils"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

// RegisterRequest adalah body POST /api/v1/auth/register dan POST /api/v1/users.
type RegisterRequest struct {
	Name         string `json:"name" binding:"required"`
	Username     string `json:"username"`
	Email        string `json:"email" binding:"required,email"`
	NIM          string `json:"nim" binding:"required"`
	Role         string `json:"role" binding:"required"`
	Password     string `json:"password" binding:"required,min=6"`
	Fakultas     string `json:"fakultas"`
	ProgramStudi string `json:"programStudi"`
	Universitas  string `json:"universitas"`
	Angkatan     string `json:"angkatan"`
	Semester     int    `json:"semester"`
}

// LoginRequest adalah body POST /api/v1/auth/login.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// UserService meng-handle registrasi, login, dan CRUD tabel users.
// Field password tidak pernah dikembalikan ke client (json:"-" di model).
type UserService interface {
	Register(ctx *gin.Context)
	Login(ctx *gin.Context)
	GetUsers(ctx *gin.Context)
	UpdateUser(ctx *gin.Context)
	DeleteUser(ctx *gin.Context)
}

type userService struct {
	userRepo repository.UserRepository
	authSvc  AuthService
}

func NewUserService(userRepo repository.UserRepository, authSvc AuthService) UserService {
	return &userService{
		userRepo: userRepo,
		authSvc:  authSvc,
	}
}

// Register mendaftarkan mahasiswa baru lalu langsung mengembalikan token
// supaya client tidak perlu login dua kali.
func (s *userService) Register(ctx *gin.Context) {
	var req RegisterRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest,
			utils.BuildResponseFailed("Request tidak valid: "+err.Error(), utils.CodeValidation))
		return
	}

	// satu-satunya persona sistem adalah mahasiswa
	if req.Role != "mahasiswa" {
		ctx.JSON(http.StatusBadRequest,
			utils.BuildResponseFailed("Role harus mahasiswa", utils.CodeValidation))
		return
	}

	username := req.Username
	if username == "" {
		username = req.NIM
	}
	user := model.User{
		Name:         req.Name,
		Username:     username,
		Email:        req.Email,
		NIM:          req.NIM,
		Role:         "mahasiswa",
		Fakultas:     req.Fakultas,
		ProgramStudi: req.ProgramStudi,
		Universitas:  req.Universitas,
		Angkatan:     req.Angkatan,
		Semester:     req.Semester,
	}

	if err := s.authSvc.Register(&user, req.Password); err != nil {
		if utils.IsConflict(err) {
			ctx.JSON(http.StatusConflict,
				utils.BuildResponseFailed("Email, NIM, atau username sudah terdaftar", utils.CodeConflict))
			return
		}
		ctx.JSON(http.StatusInternalServerError,
			utils.BuildResponseFailed("Gagal mendaftarkan user", utils.CodePersistence))
		return
	}

	token, err := utils.GenerateToken(user.ID, user.NIM, user.Role)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError,
			utils.BuildResponseFailed("Gagal membuat token", utils.CodeAuth))
		return
	}

	ctx.JSON(http.StatusOK, utils.BuildResponseSuccess("Registrasi berhasil", gin.H{
		"user":  user,
		"token": token,
	}))
}

func (s *userService) Login(ctx *gin.Context) {
	var req LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest,
			utils.BuildResponseFailed("Request tidak valid: "+err.Error(), utils.CodeValidation))
		return
	}

	user, err := s.authSvc.Login(req.Email, req.Password)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized,
			utils.BuildResponseFailed("Email atau password salah", utils.CodeAuth))
		return
	}

	token, err := utils.GenerateToken(user.ID, user.NIM, user.Role)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError,
			utils.BuildResponseFailed("Gagal membuat token", utils.CodeAuth))
		return
	}

	ctx.JSON(http.StatusOK, utils.BuildResponseSuccess("Login berhasil", gin.H{
		"user":  user,
		"token": token,
	}))
}

func (s *userService) GetUsers(ctx *gin.Context) {
	if id := ctx.Query("id"); id != "" {
		user, err := s.userRepo.FindByID(id)
		if err != nil {
			ctx.JSON(http.StatusNotFound,
				utils.BuildResponseFailed("User tidak ditemukan", utils.CodeNotFound))
			return
		}
		ctx.JSON(http.StatusOK, utils.BuildResponseSuccess("", user))
		return
	}

	users, err := s.userRepo.FindAll()
	if err != nil {
		ctx.JSON(http.StatusInternalServerError,
			utils.BuildResponseFailed("Gagal mengambil user", utils.CodePersistence))
		return
	}
	ctx.JSON(http.StatusOK, utils.BuildResponseSuccess("", users))
}

// UpdateUser menimpa profil user. Password hanya ikut diganti jika field
// password terisi; kalau kosong hash lama dipertahankan (Save meng-Omit
// kolom password_hash, penggantiannya lewat UpdatePassword terpisah).
func (s *userService) UpdateUser(ctx *gin.Context) {
	id := ctx.Query("id")
	if id == "" {
		ctx.JSON(http.StatusBadRequest,
			utils.BuildResponseFailed("Parameter id wajib diisi", utils.CodeValidation))
		return
	}

	var payload struct {
		model.User
		Password string `json:"password"`
	}
	if err := ctx.ShouldBindJSON(&payload); err != nil {
		ctx.JSON(http.StatusBadRequest,
			utils.BuildResponseFailed("Request tidak valid: "+err.Error(), utils.CodeValidation))
		return
	}

	if err := s.userRepo.Save(id, &payload.User); err != nil {
		if utils.IsNotFound(err) {
			ctx.JSON(http.StatusNotFound,
				utils.BuildResponseFailed("User tidak ditemukan", utils.CodeNotFound))
			return
		}
		if utils.IsConflict(err) {
			ctx.JSON(http.StatusConflict,
				utils.BuildResponseFailed("Email, NIM, atau username sudah terpakai", utils.CodeConflict))
			return
		}
		ctx.JSON(http.StatusInternalServerError,
			utils.BuildResponseFailed("Gagal mengupdate user", utils.CodePersistence))
		return
	}

	if payload.Password != "" {
		hashed, err := bcrypt.GenerateFromPassword([]byte(payload.Password), bcrypt.DefaultCost)
		if err != nil {
			ctx.JSON(http.StatusInternalServerError,
				utils.BuildResponseFailed("Gagal meng-hash password", utils.CodePersistence))
			return
		}
		if err := s.userRepo.UpdatePassword(id, string(hashed)); err != nil {
			ctx.JSON(http.StatusInternalServerError,
				utils.BuildResponseFailed("Gagal mengupdate password", utils.CodePersistence))
			return
		}
	}

	ctx.JSON(http.StatusOK, utils.BuildResponseSuccess("User berhasil diupdate", nil))
}

func (s *userService) DeleteUser(ctx *gin.Context) {
	id := ctx.Query("id")
	if id == "" {
		ctx.JSON(http.StatusBadRequest,
			utils.BuildResponseFailed("Parameter id wajib diisi", utils.CodeValidation))
		return
	}

	if err := s.userRepo.Delete(id); err != nil {
		if utils.IsNotFound(err) {
			ctx.JSON(http.StatusNotFound,
				utils.BuildResponseFailed("User tidak ditemukan", utils.CodeNotFound))
			return
		}
		ctx.JSON(http.StatusInternalServerError,
			utils.BuildResponseFailed("Gagal menghapus user", utils.CodePersistence))
		return
	}
	ctx.JSON(http.StatusOK, utils.BuildResponseSuccess("User berhasil dihapus", nil))
}
