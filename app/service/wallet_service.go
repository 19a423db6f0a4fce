package service

import (
	"errors"
	"net/http"

	"bukubersama-backend/app/model"
	"bukubersama-backend/app/repository"
	"bukubersama-backend/metrics"
	"bukubersama-backend/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Kurs konversi: 100 poin = Rp10.000, jadi 1 poin = Rp100.
const (
	RupiahPerPoint    = 100
	MinConvertiblePts = 100
)

// ConvertRequest adalah body POST /api/v1/wallet/convert.
type ConvertRequest struct {
	Points             int    `json:"points" binding:"required"`
	BeneficiaryBank    string `json:"beneficiaryBank"`
	BeneficiaryAccount string `json:"beneficiaryAccount"`
}

// WalletService meng-handle dompet mahasiswa: saldo poin + saldo rupiah
// dan konversi poin menjadi uang. Seluruh endpoint di sini butuh JWT.
type WalletService interface {
	GetWallet(ctx *gin.Context)
	Convert(ctx *gin.Context)
}

type walletService struct {
	pointRepo repository.PointRepository
	userRepo  repository.UserRepository
	gateway   PaymentGateway
	log       *zap.SugaredLogger
}

func NewWalletService(pointRepo repository.PointRepository, userRepo repository.UserRepository, gateway PaymentGateway, log *zap.SugaredLogger) WalletService {
	return &walletService{
		pointRepo: pointRepo,
		userRepo:  userRepo,
		gateway:   gateway,
		log:       log,
	}
}

// GetWallet mengembalikan saldo poin, saldo rupiah, dan riwayat ledger
// milik user yang sedang login.
func (s *walletService) GetWallet(ctx *gin.Context) {
	userID := ctx.GetString("userID")

	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		ctx.JSON(http.StatusNotFound,
			utils.BuildResponseFailed("User tidak ditemukan", utils.CodeNotFound))
		return
	}

	history, err := s.pointRepo.FindByUserID(userID)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError,
			utils.BuildResponseFailed("Gagal mengambil riwayat poin", utils.CodePersistence))
		return
	}

	totalEarned, err := s.pointRepo.SumByUserAndType(userID, "earned")
	if err != nil {
		ctx.JSON(http.StatusInternalServerError,
			utils.BuildResponseFailed("Gagal menghitung total poin", utils.CodePersistence))
		return
	}
	totalConverted, err := s.pointRepo.SumByUserAndType(userID, "converted")
	if err != nil {
		ctx.JSON(http.StatusInternalServerError,
			utils.BuildResponseFailed("Gagal menghitung total konversi", utils.CodePersistence))
		return
	}

	ctx.JSON(http.StatusOK, utils.BuildResponseSuccess("", gin.H{
		"points":         user.Points,
		"walletBalance":  user.WalletBalance,
		"rupiahValue":    user.Points * RupiahPerPoint,
		"totalEarned":    totalEarned,
		"totalConverted": -totalConverted, // entri converted bernilai negatif di ledger
		"transactions":   history,
	}))
}

// Convert menukar poin menjadi rupiah lalu mencairkannya lewat payment
// gateway. Debit poin dan entri ledger dicatat dalam SATU transaksi
// database; pencairan eksternal baru dipanggil setelah commit, supaya
// kegagalan gateway tidak meninggalkan poin yang sudah terpotong tanpa
// jejak (saldonya tetap tercatat di walletBalance dan bisa dicairkan ulang).
func (s *walletService) Convert(ctx *gin.Context) {
	userID := ctx.GetString("userID")

	var req ConvertRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest,
			utils.BuildResponseFailed("Request tidak valid: "+err.Error(), utils.CodeValidation))
		return
	}
	if req.Points < MinConvertiblePts || req.Points%MinConvertiblePts != 0 {
		ctx.JSON(http.StatusBadRequest,
			utils.BuildResponseFailed("Konversi minimal 100 poin dan kelipatan 100", utils.CodeValidation))
		return
	}

	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		ctx.JSON(http.StatusNotFound,
			utils.BuildResponseFailed("User tidak ditemukan", utils.CodeNotFound))
		return
	}

	rupiah := req.Points * RupiahPerPoint
	entry, err := s.pointRepo.Convert(userID, req.Points, rupiah, "Konversi poin ke saldo")
	if err != nil {
		if errors.Is(err, repository.ErrInsufficientPoints) {
			ctx.JSON(http.StatusBadRequest,
				utils.BuildResponseFailed("Poin tidak mencukupi", utils.CodeValidation))
			return
		}
		ctx.JSON(http.StatusInternalServerError,
			utils.BuildResponseFailed("Gagal mengkonversi poin", utils.CodePersistence))
		return
	}

	metrics.PointConversionsTotal.Inc()

	payout := s.disburse(ctx, user, req, rupiah)

	ctx.JSON(http.StatusOK, utils.BuildResponseSuccess("Konversi poin berhasil", gin.H{
		"transaction": entry,
		"rupiah":      rupiah,
		"payout":      payout,
	}))
}

// disburse memanggil payment gateway jika user melampirkan rekening tujuan.
// Kegagalan di sini tidak membatalkan konversi: saldo sudah pindah ke
// walletBalance dan pencairan bisa diulang.
func (s *walletService) disburse(ctx *gin.Context, user *model.User, req ConvertRequest, rupiah int) *Disbursement {
	if s.gateway == nil || req.BeneficiaryBank == "" || req.BeneficiaryAccount == "" {
		return nil
	}

	d, err := s.gateway.Payout(ctx.Request.Context(), PayoutRequest{
		BeneficiaryName:    user.Name,
		BeneficiaryEmail:   user.Email,
		BeneficiaryBank:    req.BeneficiaryBank,
		BeneficiaryAccount: req.BeneficiaryAccount,
		AmountIDR:          rupiah,
		Notes:              "Pencairan poin BukuBersama",
	})
	if err != nil {
		s.log.Errorw("pencairan gagal", "userId", user.ID, "rupiah", rupiah, "error", err)
		return nil
	}
	return d
}
