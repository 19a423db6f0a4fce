package service

import (
	"net/http"

	"bukubersama-backend/app/model"
	"bukubersama-backend/app/repository"
	"bukubersama-backend/utils"

	"github.com/gin-gonic/gin"
)

// CategoryService meng-handle CRUD kategori navigasi dan tabel referensi
// semester (baseline dari seeder, tetap bisa dikelola lewat endpoint).
type CategoryService interface {
	GetCategories(ctx *gin.Context)
	CreateCategory(ctx *gin.Context)
	UpdateCategory(ctx *gin.Context)
	DeleteCategory(ctx *gin.Context)
	GetSemesters(ctx *gin.Context)
	CreateSemester(ctx *gin.Context)
	UpdateSemester(ctx *gin.Context)
	DeleteSemester(ctx *gin.Context)
}

type categoryService struct {
	categoryRepo repository.CategoryRepository
}

func NewCategoryService(categoryRepo repository.CategoryRepository) CategoryService {
	return &categoryService{
		categoryRepo: categoryRepo,
	}
}

func (s *categoryService) GetCategories(ctx *gin.Context) {
	if id := ctx.Query("id"); id != "" {
		c, err := s.categoryRepo.FindByID(id)
		if err != nil {
			ctx.JSON(http.StatusNotFound,
				utils.BuildResponseFailed("Kategori tidak ditemukan", utils.CodeNotFound))
			return
		}
		ctx.JSON(http.StatusOK, utils.BuildResponseSuccess("", c))
		return
	}

	categories, err := s.categoryRepo.FindAll()
	if err != nil {
		ctx.JSON(http.StatusInternalServerError,
			utils.BuildResponseFailed("Gagal mengambil kategori", utils.CodePersistence))
		return
	}
	ctx.JSON(http.StatusOK, utils.BuildResponseSuccess("", categories))
}

func (s *categoryService) CreateCategory(ctx *gin.Context) {
	var c model.Category
	if err := ctx.ShouldBindJSON(&c); err != nil {
		ctx.JSON(http.StatusBadRequest,
			utils.BuildResponseFailed("Request tidak valid: "+err.Error(), utils.CodeValidation))
		return
	}
	if c.Name == "" {
		ctx.JSON(http.StatusBadRequest,
			utils.BuildResponseFailed("Field name wajib diisi", utils.CodeValidation))
		return
	}

	if err := s.categoryRepo.Create(&c); err != nil {
		if utils.IsConflict(err) {
			ctx.JSON(http.StatusConflict,
				utils.BuildResponseFailed("Kategori dengan id tersebut sudah ada", utils.CodeConflict))
			return
		}
		ctx.JSON(http.StatusInternalServerError,
			utils.BuildResponseFailed("Gagal menyimpan kategori", utils.CodePersistence))
		return
	}
	ctx.JSON(http.StatusOK, utils.BuildResponseSuccess("Kategori berhasil dibuat", c))
}

func (s *categoryService) UpdateCategory(ctx *gin.Context) {
	id := ctx.Query("id")
	if id == "" {
		ctx.JSON(http.StatusBadRequest,
			utils.BuildResponseFailed("Parameter id wajib diisi", utils.CodeValidation))
		return
	}

	var c model.Category
	if err := ctx.ShouldBindJSON(&c); err != nil {
		ctx.JSON(http.StatusBadRequest,
			utils.BuildResponseFailed("Request tidak valid: "+err.Error(), utils.CodeValidation))
		return
	}

	if err := s.categoryRepo.Save(id, &c); err != nil {
		if utils.IsNotFound(err) {
			ctx.JSON(http.StatusNotFound,
				utils.BuildResponseFailed("Kategori tidak ditemukan", utils.CodeNotFound))
			return
		}
		ctx.JSON(http.StatusInternalServerError,
			utils.BuildResponseFailed("Gagal mengupdate kategori", utils.CodePersistence))
		return
	}
	ctx.JSON(http.StatusOK, utils.BuildResponseSuccess("Kategori berhasil diupdate", nil))
}

func (s *categoryService) DeleteCategory(ctx *gin.Context) {
	id := ctx.Query("id")
	if id == "" {
		ctx.JSON(http.StatusBadRequest,
			utils.BuildResponseFailed("Parameter id wajib diisi", utils.CodeValidation))
		return
	}

	if err := s.categoryRepo.Delete(id); err != nil {
		if utils.IsNotFound(err) {
			ctx.JSON(http.StatusNotFound,
				utils.BuildResponseFailed("Kategori tidak ditemukan", utils.CodeNotFound))
			return
		}
		ctx.JSON(http.StatusInternalServerError,
			utils.BuildResponseFailed("Gagal menghapus kategori", utils.CodePersistence))
		return
	}
	ctx.JSON(http.StatusOK, utils.BuildResponseSuccess("Kategori berhasil dihapus", nil))
}

// GetSemesters mengembalikan tabel referensi semester (baseline 8 baris dari seeder).
func (s *categoryService) GetSemesters(ctx *gin.Context) {
	if id := ctx.Query("id"); id != "" {
		sem, err := s.categoryRepo.FindSemesterByID(id)
		if err != nil {
			ctx.JSON(http.StatusNotFound,
				utils.BuildResponseFailed("Semester tidak ditemukan", utils.CodeNotFound))
			return
		}
		ctx.JSON(http.StatusOK, utils.BuildResponseSuccess("", sem))
		return
	}

	semesters, err := s.categoryRepo.FindAllSemesters()
	if err != nil {
		ctx.JSON(http.StatusInternalServerError,
			utils.BuildResponseFailed("Gagal mengambil semester", utils.CodePersistence))
		return
	}
	ctx.JSON(http.StatusOK, utils.BuildResponseSuccess("", semesters))
}

func (s *categoryService) CreateSemester(ctx *gin.Context) {
	var sem model.Semester
	if err := ctx.ShouldBindJSON(&sem); err != nil {
		ctx.JSON(http.StatusBadRequest,
			utils.BuildResponseFailed("Request tidak valid: "+err.Error(), utils.CodeValidation))
		return
	}
	if sem.Number == 0 || sem.Name == "" {
		ctx.JSON(http.StatusBadRequest,
			utils.BuildResponseFailed("Field number dan name wajib diisi", utils.CodeValidation))
		return
	}
	if sem.Number < 1 || sem.Number > 8 {
		ctx.JSON(http.StatusBadRequest,
			utils.BuildResponseFailed("Number semester harus antara 1 dan 8", utils.CodeValidation))
		return
	}

	if err := s.categoryRepo.CreateSemester(&sem); err != nil {
		if utils.IsConflict(err) {
			ctx.JSON(http.StatusConflict,
				utils.BuildResponseFailed("Semester dengan id tersebut sudah ada", utils.CodeConflict))
			return
		}
		ctx.JSON(http.StatusInternalServerError,
			utils.BuildResponseFailed("Gagal menyimpan semester", utils.CodePersistence))
		return
	}
	ctx.JSON(http.StatusOK, utils.BuildResponseSuccess("Semester berhasil dibuat", sem))
}

func (s *categoryService) UpdateSemester(ctx *gin.Context) {
	id := ctx.Query("id")
	if id == "" {
		ctx.JSON(http.StatusBadRequest,
			utils.BuildResponseFailed("Parameter id wajib diisi", utils.CodeValidation))
		return
	}

	var sem model.Semester
	if err := ctx.ShouldBindJSON(&sem); err != nil {
		ctx.JSON(http.StatusBadRequest,
			utils.BuildResponseFailed("Request tidak valid: "+err.Error(), utils.CodeValidation))
		return
	}
	if sem.Number != 0 && (sem.Number < 1 || sem.Number > 8) {
		ctx.JSON(http.StatusBadRequest,
			utils.BuildResponseFailed("Number semester harus antara 1 dan 8", utils.CodeValidation))
		return
	}

	if err := s.categoryRepo.SaveSemester(id, &sem); err != nil {
		if utils.IsNotFound(err) {
			ctx.JSON(http.StatusNotFound,
				utils.BuildResponseFailed("Semester tidak ditemukan", utils.CodeNotFound))
			return
		}
		ctx.JSON(http.StatusInternalServerError,
			utils.BuildResponseFailed("Gagal mengupdate semester", utils.CodePersistence))
		return
	}
	ctx.JSON(http.StatusOK, utils.BuildResponseSuccess("Semester berhasil diupdate", nil))
}

func (s *categoryService) DeleteSemester(ctx *gin.Context) {
	id := ctx.Query("id")
	if id == "" {
		ctx.JSON(http.StatusBadRequest,
			utils.BuildResponseFailed("Parameter id wajib diisi", utils.CodeValidation))
		return
	}

	if err := s.categoryRepo.DeleteSemester(id); err != nil {
		if utils.IsNotFound(err) {
			ctx.JSON(http.StatusNotFound,
				utils.BuildResponseFailed("Semester tidak ditemukan", utils.CodeNotFound))
			return
		}
		ctx.JSON(http.StatusInternalServerError,
			utils.BuildResponseFailed("Gagal menghapus semester", utils.CodePersistence))
		return
	}
	ctx.JSON(http.StatusOK, utils.BuildResponseSuccess("Semester berhasil dihapus", nil))
}
