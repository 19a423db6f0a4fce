package service

import (
	"net/http"

	"bukubersama-backend/app/model"
	"bukubersama-backend/app/repository"
	"bukubersama-backend/utils"

	"github.com/gin-gonic/gin"
)

// CommentService meng-handle CRUD komentar materi.
// Field resumeId mengikuti nama lama tabel (materi dulu disebut resume).
type CommentService interface {
	GetComments(ctx *gin.Context)
	CreateComment(ctx *gin.Context)
	UpdateComment(ctx *gin.Context)
	DeleteComment(ctx *gin.Context)
}

type commentService struct {
	commentRepo  repository.CommentRepository
	materialRepo repository.MaterialRepository
	userRepo     repository.UserRepository
}

func NewCommentService(commentRepo repository.CommentRepository, materialRepo repository.MaterialRepository, userRepo repository.UserRepository) CommentService {
	return &commentService{
		commentRepo:  commentRepo,
		materialRepo: materialRepo,
		userRepo:     userRepo,
	}
}

// GetComments: ?id= satu komentar, ?resumeId= komentar satu materi,
// tanpa parameter seluruh komentar.
func (s *commentService) GetComments(ctx *gin.Context) {
	if id := ctx.Query("id"); id != "" {
		c, err := s.commentRepo.FindByID(id)
		if err != nil {
			ctx.JSON(http.StatusNotFound,
				utils.BuildResponseFailed("Komentar tidak ditemukan", utils.CodeNotFound))
			return
		}
		ctx.JSON(http.StatusOK, utils.BuildResponseSuccess("", c))
		return
	}

	if resumeID := ctx.Query("resumeId"); resumeID != "" {
		comments, err := s.commentRepo.FindByResumeID(resumeID)
		if err != nil {
			ctx.JSON(http.StatusInternalServerError,
				utils.BuildResponseFailed("Gagal mengambil komentar", utils.CodePersistence))
			return
		}
		ctx.JSON(http.StatusOK, utils.BuildResponseSuccess("", comments))
		return
	}

	comments, err := s.commentRepo.FindAll()
	if err != nil {
		ctx.JSON(http.StatusInternalServerError,
			utils.BuildResponseFailed("Gagal mengambil komentar", utils.CodePersistence))
		return
	}
	ctx.JSON(http.StatusOK, utils.BuildResponseSuccess("", comments))
}

func (s *commentService) CreateComment(ctx *gin.Context) {
	var c model.Comment
	if err := ctx.ShouldBindJSON(&c); err != nil {
		ctx.JSON(http.StatusBadRequest,
			utils.BuildResponseFailed("Request tidak valid: "+err.Error(), utils.CodeValidation))
		return
	}
	if c.Content == "" || c.AuthorID == "" || c.ResumeID == "" {
		ctx.JSON(http.StatusBadRequest,
			utils.BuildResponseFailed("Field content, authorId, dan resumeId wajib diisi", utils.CodeValidation))
		return
	}
	if _, err := s.materialRepo.FindByID(c.ResumeID); err != nil {
		ctx.JSON(http.StatusNotFound,
			utils.BuildResponseFailed("Materi tidak ditemukan", utils.CodeNotFound))
		return
	}
	if _, err := s.userRepo.FindByID(c.AuthorID); err != nil {
		ctx.JSON(http.StatusNotFound,
			utils.BuildResponseFailed("Author tidak ditemukan", utils.CodeNotFound))
		return
	}

	if err := s.commentRepo.Create(&c); err != nil {
		if utils.IsConflict(err) {
			ctx.JSON(http.StatusConflict,
				utils.BuildResponseFailed("Komentar dengan id tersebut sudah ada", utils.CodeConflict))
			return
		}
		ctx.JSON(http.StatusInternalServerError,
			utils.BuildResponseFailed("Gagal menyimpan komentar", utils.CodePersistence))
		return
	}
	ctx.JSON(http.StatusOK, utils.BuildResponseSuccess("Komentar berhasil dibuat", c))
}

func (s *commentService) UpdateComment(ctx *gin.Context) {
	id := ctx.Query("id")
	if id == "" {
		ctx.JSON(http.StatusBadRequest,
			utils.BuildResponseFailed("Parameter id wajib diisi", utils.CodeValidation))
		return
	}

	var c model.Comment
	if err := ctx.ShouldBindJSON(&c); err != nil {
		ctx.JSON(http.StatusBadRequest,
			utils.BuildResponseFailed("Request tidak valid: "+err.Error(), utils.CodeValidation))
		return
	}

	if err := s.commentRepo.Save(id, &c); err != nil {
		if utils.IsNotFound(err) {
			ctx.JSON(http.StatusNotFound,
				utils.BuildResponseFailed("Komentar tidak ditemukan", utils.CodeNotFound))
			return
		}
		ctx.JSON(http.StatusInternalServerError,
			utils.BuildResponseFailed("Gagal mengupdate komentar", utils.CodePersistence))
		return
	}
	ctx.JSON(http.StatusOK, utils.BuildResponseSuccess("Komentar berhasil diupdate", nil))
}

func (s *commentService) DeleteComment(ctx *gin.Context) {
	id := ctx.Query("id")
	if id == "" {
		ctx.JSON(http.StatusBadRequest,
			utils.BuildResponseFailed("Parameter id wajib diisi", utils.CodeValidation))
		return
	}

	if err := s.commentRepo.Delete(id); err != nil {
		if utils.IsNotFound(err) {
			ctx.JSON(http.StatusNotFound,
				utils.BuildResponseFailed("Komentar tidak ditemukan", utils.CodeNotFound))
			return
		}
		ctx.JSON(http.StatusInternalServerError,
			utils.BuildResponseFailed("Gagal menghapus komentar", utils.CodePersistence))
		return
	}
	ctx.JSON(http.StatusOK, utils.BuildResponseSuccess("Komentar berhasil dihapus", nil))
}
