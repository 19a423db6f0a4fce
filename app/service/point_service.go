package service

import (
	"net/http"

	"bukubersama-backend/app/model"
	"bukubersama-backend/app/repository"
	"bukubersama-backend/utils"

	"github.com/gin-gonic/gin"
)

// PointService meng-handle CRUD ledger point_transactions.
// Endpoint tulis di sini adalah jalur admin/perbaikan data; jalur normal
// penambahan poin adalah upload materi, apresiasi, dan konversi wallet
// yang menulis ledger lewat transaksi masing-masing.
type PointService interface {
	GetTransactions(ctx *gin.Context)
	CreateTransaction(ctx *gin.Context)
	UpdateTransaction(ctx *gin.Context)
	DeleteTransaction(ctx *gin.Context)
}

type pointService struct {
	pointRepo repository.PointRepository
	userRepo  repository.UserRepository
}

func NewPointService(pointRepo repository.PointRepository, userRepo repository.UserRepository) PointService {
	return &pointService{
		pointRepo: pointRepo,
		userRepo:  userRepo,
	}
}

func (s *pointService) GetTransactions(ctx *gin.Context) {
	if id := ctx.Query("id"); id != "" {
		t, err := s.pointRepo.FindByID(id)
		if err != nil {
			ctx.JSON(http.StatusNotFound,
				utils.BuildResponseFailed("Transaksi tidak ditemukan", utils.CodeNotFound))
			return
		}
		ctx.JSON(http.StatusOK, utils.BuildResponseSuccess("", t))
		return
	}

	if userID := ctx.Query("userId"); userID != "" {
		transactions, err := s.pointRepo.FindByUserID(userID)
		if err != nil {
			ctx.JSON(http.StatusInternalServerError,
				utils.BuildResponseFailed("Gagal mengambil transaksi", utils.CodePersistence))
			return
		}
		ctx.JSON(http.StatusOK, utils.BuildResponseSuccess("", transactions))
		return
	}

	transactions, err := s.pointRepo.FindAll()
	if err != nil {
		ctx.JSON(http.StatusInternalServerError,
			utils.BuildResponseFailed("Gagal mengambil transaksi", utils.CodePersistence))
		return
	}
	ctx.JSON(http.StatusOK, utils.BuildResponseSuccess("", transactions))
}

func (s *pointService) CreateTransaction(ctx *gin.Context) {
	var t model.PointTransaction
	if err := ctx.ShouldBindJSON(&t); err != nil {
		ctx.JSON(http.StatusBadRequest,
			utils.BuildResponseFailed("Request tidak valid: "+err.Error(), utils.CodeValidation))
		return
	}
	if t.UserID == "" || t.Type == "" || t.Amount == 0 {
		ctx.JSON(http.StatusBadRequest,
			utils.BuildResponseFailed("Field userId, type, dan amount wajib diisi", utils.CodeValidation))
		return
	}
	if t.Type != "earned" && t.Type != "spent" && t.Type != "converted" {
		ctx.JSON(http.StatusBadRequest,
			utils.BuildResponseFailed("Type harus earned, spent, atau converted", utils.CodeValidation))
		return
	}
	if _, err := s.userRepo.FindByID(t.UserID); err != nil {
		ctx.JSON(http.StatusNotFound,
			utils.BuildResponseFailed("User tidak ditemukan", utils.CodeNotFound))
		return
	}

	if err := s.pointRepo.Create(&t); err != nil {
		if utils.IsConflict(err) {
			ctx.JSON(http.StatusConflict,
				utils.BuildResponseFailed("Transaksi dengan id tersebut sudah ada", utils.CodeConflict))
			return
		}
		ctx.JSON(http.StatusInternalServerError,
			utils.BuildResponseFailed("Gagal menyimpan transaksi", utils.CodePersistence))
		return
	}
	ctx.JSON(http.StatusOK, utils.BuildResponseSuccess("Transaksi berhasil dibuat", t))
}

func (s *pointService) UpdateTransaction(ctx *gin.Context) {
	id := ctx.Query("id")
	if id == "" {
		ctx.JSON(http.StatusBadRequest,
			utils.BuildResponseFailed("Parameter id wajib diisi", utils.CodeValidation))
		return
	}

	var t model.PointTransaction
	if err := ctx.ShouldBindJSON(&t); err != nil {
		ctx.JSON(http.StatusBadRequest,
			utils.BuildResponseFailed("Request tidak valid: "+err.Error(), utils.CodeValidation))
		return
	}

	if err := s.pointRepo.Save(id, &t); err != nil {
		if utils.IsNotFound(err) {
			ctx.JSON(http.StatusNotFound,
				utils.BuildResponseFailed("Transaksi tidak ditemukan", utils.CodeNotFound))
			return
		}
		ctx.JSON(http.StatusInternalServerError,
			utils.BuildResponseFailed("Gagal mengupdate transaksi", utils.CodePersistence))
		return
	}
	ctx.JSON(http.StatusOK, utils.BuildResponseSuccess("Transaksi berhasil diupdate", nil))
}

func (s *pointService) DeleteTransaction(ctx *gin.Context) {
	id := ctx.Query("id")
	if id == "" {
		ctx.JSON(http.StatusBadRequest,
			utils.BuildResponseFailed("Parameter id wajib diisi", utils.CodeValidation))
		return
	}

	if err := s.pointRepo.Delete(id); err != nil {
		if utils.IsNotFound(err) {
			ctx.JSON(http.StatusNotFound,
				utils.BuildResponseFailed("Transaksi tidak ditemukan", utils.CodeNotFound))
			return
		}
		ctx.JSON(http.StatusInternalServerError,
			utils.BuildResponseFailed("Gagal menghapus transaksi", utils.CodePersistence))
		return
	}
	ctx.JSON(http.StatusOK, utils.BuildResponseSuccess("Transaksi berhasil dihapus", nil))
}
