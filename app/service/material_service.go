package service

import (
	"net/http"
	"strconv"

	"bukubersama-backend/app/model"
	"bukubersama-backend/app/repository"
	"bukubersama-backend/metrics"
	"bukubersama-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/datatypes"
)

// Reward poin untuk author saat upload materi.
const (
	UploadRewardPoints  = 50
	UploadBonusPoints   = 15
	UploadBonusMinScore = 4.5
)

// UploadMaterialRequest adalah body POST /api/v1/materials.
type UploadMaterialRequest struct {
	Title          string   `json:"title" binding:"required"`
	Description    string   `json:"description" binding:"required"`
	Content        string   `json:"content" binding:"required"`
	MataKuliah     string   `json:"mataKuliah"`
	Semester       int      `json:"semester" binding:"required,min=1,max=8"`
	ProgramStudiID string   `json:"programStudiId" binding:"required"`
	AuthorID       string   `json:"authorId" binding:"required"`
	Tags           []string `json:"tags"`
	IsOpenSource   bool     `json:"isOpenSource"`
	License        string   `json:"license"`
}

// MaterialService meng-handle CRUD materi plus alur upload:
// scoring review -> simpan Mongo+Postgres dua fase -> kredit poin author.
type MaterialService interface {
	GetMaterials(ctx *gin.Context)
	CreateMaterial(ctx *gin.Context)
	UpdateMaterial(ctx *gin.Context)
	DeleteMaterial(ctx *gin.Context)
	GetReview(ctx *gin.Context)
}

type materialService struct {
	materialRepo   repository.MaterialRepository
	userRepo       repository.UserRepository
	universityRepo repository.UniversityRepository
	reviewer       Reviewer
	log            *zap.SugaredLogger
}

func NewMaterialService(materialRepo repository.MaterialRepository, userRepo repository.UserRepository, universityRepo repository.UniversityRepository, reviewer Reviewer, log *zap.SugaredLogger) MaterialService {
	return &materialService{
		materialRepo:   materialRepo,
		userRepo:       userRepo,
		universityRepo: universityRepo,
		reviewer:       reviewer,
		log:            log,
	}
}

func (s *materialService) GetMaterials(ctx *gin.Context) {
	if id := ctx.Query("id"); id != "" {
		m, err := s.materialRepo.FindByID(id)
		if err != nil {
			ctx.JSON(http.StatusNotFound,
				utils.BuildResponseFailed("Materi tidak ditemukan", utils.CodeNotFound))
			return
		}
		ctx.JSON(http.StatusOK, utils.BuildResponseSuccess("", m))
		return
	}

	materials, err := s.materialRepo.FindAll()
	if err != nil {
		ctx.JSON(http.StatusInternalServerError,
			utils.BuildResponseFailed("Gagal mengambil materi", utils.CodePersistence))
		return
	}
	ctx.JSON(http.StatusOK, utils.BuildResponseSuccess("", materials))
}

// CreateMaterial menjalankan alur upload lengkap: materi dinilai reviewer,
// laporannya disimpan ke Mongo, baris materi + ledger reward masuk Postgres
// dalam satu transaksi, lalu author dikredit +50 poin (plus bonus +15 jika
// skor review tinggi).
func (s *materialService) CreateMaterial(ctx *gin.Context) {
	var req UploadMaterialRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest,
			utils.BuildResponseFailed("Request tidak valid: "+err.Error(), utils.CodeValidation))
		return
	}

	if _, err := s.userRepo.FindByID(req.AuthorID); err != nil {
		ctx.JSON(http.StatusNotFound,
			utils.BuildResponseFailed("Author tidak ditemukan", utils.CodeNotFound))
		return
	}
	if _, err := s.universityRepo.FindProgramByID(req.ProgramStudiID); err != nil {
		ctx.JSON(http.StatusNotFound,
			utils.BuildResponseFailed("Program studi tidak ditemukan", utils.CodeNotFound))
		return
	}

	review, err := s.reviewer.Review(ctx.Request.Context(), ReviewInput{
		Title:       req.Title,
		Description: req.Description,
		Content:     req.Content,
		Tags:        req.Tags,
	})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError,
			utils.BuildResponseFailed("Gagal menilai materi", utils.CodePersistence))
		return
	}

	license := req.License
	if license == "" {
		license = "CC-BY"
	}
	switch license {
	case "CC0", "CC-BY", "CC-BY-SA", "MIT":
	default:
		ctx.JSON(http.StatusBadRequest,
			utils.BuildResponseFailed("License harus CC0, CC-BY, CC-BY-SA, atau MIT", utils.CodeValidation))
		return
	}
	material := model.Material{
		ID:                uuid.NewString(),
		Title:             req.Title,
		Description:       req.Description,
		Content:           req.Content,
		MataKuliah:        req.MataKuliah,
		Semester:          req.Semester,
		SemesterID:        "sem-" + strconv.Itoa(req.Semester),
		ProgramStudiID:    req.ProgramStudiID,
		AuthorID:          req.AuthorID,
		Tags:              datatypes.NewJSONSlice(req.Tags),
		Status:            "published",
		AIReviewScore:     &review.Score,
		AIReviewFeedback:  &review.Feedback,
		AIReviewSummary:   &review.Summary,
		Difficulty:        review.Difficulty,
		EstimatedReadTime: review.EstimatedReadTime,
		IsOpenSource:      req.IsOpenSource,
		License:           license,
	}

	rewards := []model.PointTransaction{
		{
			UserID:   req.AuthorID,
			Type:     "earned",
			Amount:   UploadRewardPoints,
			Reason:   "Upload materi baru",
			ResumeID: &material.ID,
		},
	}
	if review.Score >= UploadBonusMinScore {
		rewards = append(rewards, model.PointTransaction{
			UserID:   req.AuthorID,
			Type:     "earned",
			Amount:   UploadBonusPoints,
			Reason:   "Bonus AI Review Score tinggi",
			ResumeID: &material.ID,
		})
	}

	if err := s.materialRepo.CreateWithReview(ctx.Request.Context(), &material, review, rewards); err != nil {
		s.log.Errorw("upload materi gagal", "authorId", req.AuthorID, "error", err)
		ctx.JSON(http.StatusInternalServerError,
			utils.BuildResponseFailed("Gagal menyimpan materi", utils.CodePersistence))
		return
	}
	metrics.MaterialUploadsTotal.Inc()

	ctx.JSON(http.StatusOK, utils.BuildResponseSuccess("Materi berhasil diupload", gin.H{
		"material": material,
		"review":   review,
	}))
}

func (s *materialService) UpdateMaterial(ctx *gin.Context) {
	id := ctx.Query("id")
	if id == "" {
		ctx.JSON(http.StatusBadRequest,
			utils.BuildResponseFailed("Parameter id wajib diisi", utils.CodeValidation))
		return
	}

	var m model.Material
	if err := ctx.ShouldBindJSON(&m); err != nil {
		ctx.JSON(http.StatusBadRequest,
			utils.BuildResponseFailed("Request tidak valid: "+err.Error(), utils.CodeValidation))
		return
	}
	if m.Semester != 0 && (m.Semester < 1 || m.Semester > 8) {
		ctx.JSON(http.StatusBadRequest,
			utils.BuildResponseFailed("Semester harus 1-8", utils.CodeValidation))
		return
	}

	if err := s.materialRepo.Save(id, &m); err != nil {
		if utils.IsNotFound(err) {
			ctx.JSON(http.StatusNotFound,
				utils.BuildResponseFailed("Materi tidak ditemukan", utils.CodeNotFound))
			return
		}
		ctx.JSON(http.StatusInternalServerError,
			utils.BuildResponseFailed("Gagal mengupdate materi", utils.CodePersistence))
		return
	}
	ctx.JSON(http.StatusOK, utils.BuildResponseSuccess("Materi berhasil diupdate", nil))
}

func (s *materialService) DeleteMaterial(ctx *gin.Context) {
	id := ctx.Query("id")
	if id == "" {
		ctx.JSON(http.StatusBadRequest,
			utils.BuildResponseFailed("Parameter id wajib diisi", utils.CodeValidation))
		return
	}

	if err := s.materialRepo.Delete(id); err != nil {
		if utils.IsNotFound(err) {
			ctx.JSON(http.StatusNotFound,
				utils.BuildResponseFailed("Materi tidak ditemukan", utils.CodeNotFound))
			return
		}
		ctx.JSON(http.StatusInternalServerError,
			utils.BuildResponseFailed("Gagal menghapus materi", utils.CodePersistence))
		return
	}
	ctx.JSON(http.StatusOK, utils.BuildResponseSuccess("Materi berhasil dihapus", nil))
}

// GetReview mengembalikan dokumen laporan review lengkap dari MongoDB.
func (s *materialService) GetReview(ctx *gin.Context) {
	materialID := ctx.Query("materialId")
	if materialID == "" {
		ctx.JSON(http.StatusBadRequest,
			utils.BuildResponseFailed("Parameter materialId wajib diisi", utils.CodeValidation))
		return
	}

	review, err := s.materialRepo.FindReviewByMaterialID(ctx.Request.Context(), materialID)
	if err != nil {
		if utils.IsNotFound(err) {
			ctx.JSON(http.StatusNotFound,
				utils.BuildResponseFailed("Review tidak ditemukan", utils.CodeNotFound))
			return
		}
		ctx.JSON(http.StatusInternalServerError,
			utils.BuildResponseFailed("Gagal mengambil review", utils.CodePersistence))
		return
	}
	ctx.JSON(http.StatusOK, utils.BuildResponseSuccess("", review))
}
