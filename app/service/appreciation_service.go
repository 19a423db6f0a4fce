package service

import (
	"net/http"

	"bukubersama-backend/app/model"
	"bukubersama-backend/app/repository"
	"bukubersama-backend/utils"

	"github.com/gin-gonic/gin"
)

// AppreciationService meng-handle apresiasi (like/helpful/excellent) ke materi.
// Pembuatan apresiasi sekaligus mengkredit poin author materi: entri ledger,
// kolom users.points, dan materials.appreciation_count berubah dalam SATU
// transaksi lewat CreateWithReward, jadi tidak ada jendela di mana apresiasi
// tercatat tapi poinnya belum.
type AppreciationService interface {
	GetAppreciations(ctx *gin.Context)
	CreateAppreciation(ctx *gin.Context)
	UpdateAppreciation(ctx *gin.Context)
	DeleteAppreciation(ctx *gin.Context)
}

type appreciationService struct {
	appreciationRepo repository.AppreciationRepository
	materialRepo     repository.MaterialRepository
	userRepo         repository.UserRepository
}

func NewAppreciationService(appreciationRepo repository.AppreciationRepository, materialRepo repository.MaterialRepository, userRepo repository.UserRepository) AppreciationService {
	return &appreciationService{
		appreciationRepo: appreciationRepo,
		materialRepo:     materialRepo,
		userRepo:         userRepo,
	}
}

func (s *appreciationService) GetAppreciations(ctx *gin.Context) {
	if id := ctx.Query("id"); id != "" {
		a, err := s.appreciationRepo.FindByID(id)
		if err != nil {
			ctx.JSON(http.StatusNotFound,
				utils.BuildResponseFailed("Apresiasi tidak ditemukan", utils.CodeNotFound))
			return
		}
		ctx.JSON(http.StatusOK, utils.BuildResponseSuccess("", a))
		return
	}

	if resumeID := ctx.Query("resumeId"); resumeID != "" {
		appreciations, err := s.appreciationRepo.FindByResumeID(resumeID)
		if err != nil {
			ctx.JSON(http.StatusInternalServerError,
				utils.BuildResponseFailed("Gagal mengambil apresiasi", utils.CodePersistence))
			return
		}
		ctx.JSON(http.StatusOK, utils.BuildResponseSuccess("", appreciations))
		return
	}

	appreciations, err := s.appreciationRepo.FindAll()
	if err != nil {
		ctx.JSON(http.StatusInternalServerError,
			utils.BuildResponseFailed("Gagal mengambil apresiasi", utils.CodePersistence))
		return
	}
	ctx.JSON(http.StatusOK, utils.BuildResponseSuccess("", appreciations))
}

func (s *appreciationService) CreateAppreciation(ctx *gin.Context) {
	var a model.Appreciation
	if err := ctx.ShouldBindJSON(&a); err != nil {
		ctx.JSON(http.StatusBadRequest,
			utils.BuildResponseFailed("Request tidak valid: "+err.Error(), utils.CodeValidation))
		return
	}
	if a.UserID == "" || a.ResumeID == "" || a.Type == "" {
		ctx.JSON(http.StatusBadRequest,
			utils.BuildResponseFailed("Field userId, resumeId, dan type wajib diisi", utils.CodeValidation))
		return
	}
	rewardAmount, ok := model.AppreciationPoints[a.Type]
	if !ok {
		ctx.JSON(http.StatusBadRequest,
			utils.BuildResponseFailed("Type harus like, helpful, atau excellent", utils.CodeValidation))
		return
	}

	material, err := s.materialRepo.FindByID(a.ResumeID)
	if err != nil {
		ctx.JSON(http.StatusNotFound,
			utils.BuildResponseFailed("Materi tidak ditemukan", utils.CodeNotFound))
		return
	}
	if _, err := s.userRepo.FindByID(a.UserID); err != nil {
		ctx.JSON(http.StatusNotFound,
			utils.BuildResponseFailed("User tidak ditemukan", utils.CodeNotFound))
		return
	}

	// reward jatuh ke AUTHOR materi, bukan pemberi apresiasi
	reward := model.PointTransaction{
		UserID:   material.AuthorID,
		Type:     "earned",
		Amount:   rewardAmount,
		Reason:   "Apresiasi dari pengguna",
		ResumeID: &a.ResumeID,
	}

	if err := s.appreciationRepo.CreateWithReward(&a, &reward); err != nil {
		if utils.IsConflict(err) {
			ctx.JSON(http.StatusConflict,
				utils.BuildResponseFailed("Apresiasi dengan id tersebut sudah ada", utils.CodeConflict))
			return
		}
		ctx.JSON(http.StatusInternalServerError,
			utils.BuildResponseFailed("Gagal menyimpan apresiasi", utils.CodePersistence))
		return
	}
	ctx.JSON(http.StatusOK, utils.BuildResponseSuccess("Apresiasi berhasil dibuat", gin.H{
		"appreciation": a,
		"reward":       reward,
	}))
}

func (s *appreciationService) UpdateAppreciation(ctx *gin.Context) {
	id := ctx.Query("id")
	if id == "" {
		ctx.JSON(http.StatusBadRequest,
			utils.BuildResponseFailed("Parameter id wajib diisi", utils.CodeValidation))
		return
	}

	var a model.Appreciation
	if err := ctx.ShouldBindJSON(&a); err != nil {
		ctx.JSON(http.StatusBadRequest,
			utils.BuildResponseFailed("Request tidak valid: "+err.Error(), utils.CodeValidation))
		return
	}
	if a.Type != "" {
		if _, ok := model.AppreciationPoints[a.Type]; !ok {
			ctx.JSON(http.StatusBadRequest,
				utils.BuildResponseFailed("Type harus like, helpful, atau excellent", utils.CodeValidation))
			return
		}
	}

	if err := s.appreciationRepo.Save(id, &a); err != nil {
		if utils.IsNotFound(err) {
			ctx.JSON(http.StatusNotFound,
				utils.BuildResponseFailed("Apresiasi tidak ditemukan", utils.CodeNotFound))
			return
		}
		ctx.JSON(http.StatusInternalServerError,
			utils.BuildResponseFailed("Gagal mengupdate apresiasi", utils.CodePersistence))
		return
	}
	ctx.JSON(http.StatusOK, utils.BuildResponseSuccess("Apresiasi berhasil diupdate", nil))
}

func (s *appreciationService) DeleteAppreciation(ctx *gin.Context) {
	id := ctx.Query("id")
	if id == "" {
		ctx.JSON(http.StatusBadRequest,
			utils.BuildResponseFailed("Parameter id wajib diisi", utils.CodeValidation))
		return
	}

	if err := s.appreciationRepo.Delete(id); err != nil {
		if utils.IsNotFound(err) {
			ctx.JSON(http.StatusNotFound,
				utils.BuildResponseFailed("Apresiasi tidak ditemukan", utils.CodeNotFound))
			return
		}
		ctx.JSON(http.StatusInternalServerError,
			utils.BuildResponseFailed("Gagal menghapus apresiasi", utils.CodePersistence))
		return
	}
	ctx.JSON(http.StatusOK, utils.BuildResponseSuccess("Apresiasi berhasil dihapus", nil))
}
