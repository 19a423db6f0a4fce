package service

import (
	"net/http"

	"bukubersama-backend/app/model"
	"bukubersama-backend/app/repository"
	"bukubersama-backend/utils"

	"github.com/gin-gonic/gin"
)

// UniversityService meng-handle CRUD tiga tabel hierarki kampus:
// universities, faculties, dan study_programs. Record dialamatkan lewat
// query param ?id= mengikuti kontrak API lama.
type UniversityService interface {
	GetUniversities(ctx *gin.Context)
	CreateUniversity(ctx *gin.Context)
	UpdateUniversity(ctx *gin.Context)
	DeleteUniversity(ctx *gin.Context)

	GetFaculties(ctx *gin.Context)
	CreateFaculty(ctx *gin.Context)
	UpdateFaculty(ctx *gin.Context)
	DeleteFaculty(ctx *gin.Context)

	GetPrograms(ctx *gin.Context)
	CreateProgram(ctx *gin.Context)
	UpdateProgram(ctx *gin.Context)
	DeleteProgram(ctx *gin.Context)
}

type universityService struct {
	universityRepo repository.UniversityRepository
}

func NewUniversityService(universityRepo repository.UniversityRepository) UniversityService {
	return &universityService{
		universityRepo: universityRepo,
	}
}

// ================= UNIVERSITIES =================

// GetUniversities: tanpa ?id= mengembalikan seluruh tree
// (universitas + fakultas + prodi), dengan ?id= satu universitas saja.
func (s *universityService) GetUniversities(ctx *gin.Context) {
	if id := ctx.Query("id"); id != "" {
		u, err := s.universityRepo.FindByID(id)
		if err != nil {
			ctx.JSON(http.StatusNotFound,
				utils.BuildResponseFailed("Universitas tidak ditemukan", utils.CodeNotFound))
			return
		}
		ctx.JSON(http.StatusOK, utils.BuildResponseSuccess("", u))
		return
	}

	universities, err := s.universityRepo.FindAllWithTree()
	if err != nil {
		ctx.JSON(http.StatusInternalServerError,
			utils.BuildResponseFailed("Gagal mengambil universitas", utils.CodePersistence))
		return
	}
	ctx.JSON(http.StatusOK, utils.BuildResponseSuccess("", universities))
}

func (s *universityService) CreateUniversity(ctx *gin.Context) {
	var u model.University
	if err := ctx.ShouldBindJSON(&u); err != nil {
		ctx.JSON(http.StatusBadRequest,
			utils.BuildResponseFailed("Request tidak valid: "+err.Error(), utils.CodeValidation))
		return
	}
	if u.Name == "" || u.Location == "" || u.Type == "" {
		ctx.JSON(http.StatusBadRequest,
			utils.BuildResponseFailed("Field name, location, dan type wajib diisi", utils.CodeValidation))
		return
	}
	if u.Type != "negeri" && u.Type != "swasta" {
		ctx.JSON(http.StatusBadRequest,
			utils.BuildResponseFailed("Type harus negeri atau swasta", utils.CodeValidation))
		return
	}

	if err := s.universityRepo.Create(&u); err != nil {
		if utils.IsConflict(err) {
			ctx.JSON(http.StatusConflict,
				utils.BuildResponseFailed("Universitas dengan id tersebut sudah ada", utils.CodeConflict))
			return
		}
		ctx.JSON(http.StatusInternalServerError,
			utils.BuildResponseFailed("Gagal menyimpan universitas", utils.CodePersistence))
		return
	}
	ctx.JSON(http.StatusOK, utils.BuildResponseSuccess("Universitas berhasil dibuat", u))
}

func (s *universityService) UpdateUniversity(ctx *gin.Context) {
	id := ctx.Query("id")
	if id == "" {
		ctx.JSON(http.StatusBadRequest,
			utils.BuildResponseFailed("Parameter id wajib diisi", utils.CodeValidation))
		return
	}

	var u model.University
	if err := ctx.ShouldBindJSON(&u); err != nil {
		ctx.JSON(http.StatusBadRequest,
			utils.BuildResponseFailed("Request tidak valid: "+err.Error(), utils.CodeValidation))
		return
	}

	if err := s.universityRepo.Save(id, &u); err != nil {
		if utils.IsNotFound(err) {
			ctx.JSON(http.StatusNotFound,
				utils.BuildResponseFailed("Universitas tidak ditemukan", utils.CodeNotFound))
			return
		}
		ctx.JSON(http.StatusInternalServerError,
			utils.BuildResponseFailed("Gagal mengupdate universitas", utils.CodePersistence))
		return
	}
	ctx.JSON(http.StatusOK, utils.BuildResponseSuccess("Universitas berhasil diupdate", nil))
}

func (s *universityService) DeleteUniversity(ctx *gin.Context) {
	id := ctx.Query("id")
	if id == "" {
		ctx.JSON(http.StatusBadRequest,
			utils.BuildResponseFailed("Parameter id wajib diisi", utils.CodeValidation))
		return
	}

	if err := s.universityRepo.Delete(id); err != nil {
		if utils.IsNotFound(err) {
			ctx.JSON(http.StatusNotFound,
				utils.BuildResponseFailed("Universitas tidak ditemukan", utils.CodeNotFound))
			return
		}
		ctx.JSON(http.StatusInternalServerError,
			utils.BuildResponseFailed("Gagal menghapus universitas", utils.CodePersistence))
		return
	}
	ctx.JSON(http.StatusOK, utils.BuildResponseSuccess("Universitas berhasil dihapus", nil))
}

// ================= FACULTIES =================

func (s *universityService) GetFaculties(ctx *gin.Context) {
	if id := ctx.Query("id"); id != "" {
		f, err := s.universityRepo.FindFacultyByID(id)
		if err != nil {
			ctx.JSON(http.StatusNotFound,
				utils.BuildResponseFailed("Fakultas tidak ditemukan", utils.CodeNotFound))
			return
		}
		ctx.JSON(http.StatusOK, utils.BuildResponseSuccess("", f))
		return
	}

	faculties, err := s.universityRepo.FindAllFaculties()
	if err != nil {
		ctx.JSON(http.StatusInternalServerError,
			utils.BuildResponseFailed("Gagal mengambil fakultas", utils.CodePersistence))
		return
	}
	ctx.JSON(http.StatusOK, utils.BuildResponseSuccess("", faculties))
}

func (s *universityService) CreateFaculty(ctx *gin.Context) {
	var f model.Faculty
	if err := ctx.ShouldBindJSON(&f); err != nil {
		ctx.JSON(http.StatusBadRequest,
			utils.BuildResponseFailed("Request tidak valid: "+err.Error(), utils.CodeValidation))
		return
	}
	if f.Name == "" || f.UniversityID == "" {
		ctx.JSON(http.StatusBadRequest,
			utils.BuildResponseFailed("Field name dan universityId wajib diisi", utils.CodeValidation))
		return
	}
	// Induk harus ada dulu; tanpa cek ini fakultas bisa yatim sejak lahir.
	if _, err := s.universityRepo.FindByID(f.UniversityID); err != nil {
		ctx.JSON(http.StatusNotFound,
			utils.BuildResponseFailed("Universitas induk tidak ditemukan", utils.CodeNotFound))
		return
	}

	if err := s.universityRepo.CreateFaculty(&f); err != nil {
		if utils.IsConflict(err) {
			ctx.JSON(http.StatusConflict,
				utils.BuildResponseFailed("Fakultas dengan id tersebut sudah ada", utils.CodeConflict))
			return
		}
		ctx.JSON(http.StatusInternalServerError,
			utils.BuildResponseFailed("Gagal menyimpan fakultas", utils.CodePersistence))
		return
	}
	ctx.JSON(http.StatusOK, utils.BuildResponseSuccess("Fakultas berhasil dibuat", f))
}

func (s *universityService) UpdateFaculty(ctx *gin.Context) {
	id := ctx.Query("id")
	if id == "" {
		ctx.JSON(http.StatusBadRequest,
			utils.BuildResponseFailed("Parameter id wajib diisi", utils.CodeValidation))
		return
	}

	var f model.Faculty
	if err := ctx.ShouldBindJSON(&f); err != nil {
		ctx.JSON(http.StatusBadRequest,
			utils.BuildResponseFailed("Request tidak valid: "+err.Error(), utils.CodeValidation))
		return
	}

	if err := s.universityRepo.SaveFaculty(id, &f); err != nil {
		if utils.IsNotFound(err) {
			ctx.JSON(http.StatusNotFound,
				utils.BuildResponseFailed("Fakultas tidak ditemukan", utils.CodeNotFound))
			return
		}
		ctx.JSON(http.StatusInternalServerError,
			utils.BuildResponseFailed("Gagal mengupdate fakultas", utils.CodePersistence))
		return
	}
	ctx.JSON(http.StatusOK, utils.BuildResponseSuccess("Fakultas berhasil diupdate", nil))
}

func (s *universityService) DeleteFaculty(ctx *gin.Context) {
	id := ctx.Query("id")
	if id == "" {
		ctx.JSON(http.StatusBadRequest,
			utils.BuildResponseFailed("Parameter id wajib diisi", utils.CodeValidation))
		return
	}

	if err := s.universityRepo.DeleteFaculty(id); err != nil {
		if utils.IsNotFound(err) {
			ctx.JSON(http.StatusNotFound,
				utils.BuildResponseFailed("Fakultas tidak ditemukan", utils.CodeNotFound))
			return
		}
		ctx.JSON(http.StatusInternalServerError,
			utils.BuildResponseFailed("Gagal menghapus fakultas", utils.CodePersistence))
		return
	}
	ctx.JSON(http.StatusOK, utils.BuildResponseSuccess("Fakultas berhasil dihapus", nil))
}

// ================= STUDY PROGRAMS =================

func (s *universityService) GetPrograms(ctx *gin.Context) {
	if id := ctx.Query("id"); id != "" {
		p, err := s.universityRepo.FindProgramByID(id)
		if err != nil {
			ctx.JSON(http.StatusNotFound,
				utils.BuildResponseFailed("Program studi tidak ditemukan", utils.CodeNotFound))
			return
		}
		ctx.JSON(http.StatusOK, utils.BuildResponseSuccess("", p))
		return
	}

	programs, err := s.universityRepo.FindAllPrograms()
	if err != nil {
		ctx.JSON(http.StatusInternalServerError,
			utils.BuildResponseFailed("Gagal mengambil program studi", utils.CodePersistence))
		return
	}
	ctx.JSON(http.StatusOK, utils.BuildResponseSuccess("", programs))
}

func (s *universityService) CreateProgram(ctx *gin.Context) {
	var p model.StudyProgram
	if err := ctx.ShouldBindJSON(&p); err != nil {
		ctx.JSON(http.StatusBadRequest,
			utils.BuildResponseFailed("Request tidak valid: "+err.Error(), utils.CodeValidation))
		return
	}
	if p.Name == "" || p.FacultyID == "" || p.Field == "" || p.Degree == "" {
		ctx.JSON(http.StatusBadRequest,
			utils.BuildResponseFailed("Field name, facultyId, field, dan degree wajib diisi", utils.CodeValidation))
		return
	}
	if !model.ValidStudyField(p.Field) {
		ctx.JSON(http.StatusBadRequest,
			utils.BuildResponseFailed("Bidang studi tidak dikenal", utils.CodeValidation))
		return
	}
	switch p.Degree {
	case "D3", "D4", "S1", "S2", "S3":
	default:
		ctx.JSON(http.StatusBadRequest,
			utils.BuildResponseFailed("Degree harus D3, D4, S1, S2, atau S3", utils.CodeValidation))
		return
	}
	if _, err := s.universityRepo.FindFacultyByID(p.FacultyID); err != nil {
		ctx.JSON(http.StatusNotFound,
			utils.BuildResponseFailed("Fakultas induk tidak ditemukan", utils.CodeNotFound))
		return
	}

	if err := s.universityRepo.CreateProgram(&p); err != nil {
		if utils.IsConflict(err) {
			ctx.JSON(http.StatusConflict,
				utils.BuildResponseFailed("Program studi dengan id tersebut sudah ada", utils.CodeConflict))
			return
		}
		ctx.JSON(http.StatusInternalServerError,
			utils.BuildResponseFailed("Gagal menyimpan program studi", utils.CodePersistence))
		return
	}
	ctx.JSON(http.StatusOK, utils.BuildResponseSuccess("Program studi berhasil dibuat", p))
}

func (s *universityService) UpdateProgram(ctx *gin.Context) {
	id := ctx.Query("id")
	if id == "" {
		ctx.JSON(http.StatusBadRequest,
			utils.BuildResponseFailed("Parameter id wajib diisi", utils.CodeValidation))
		return
	}

	var p model.StudyProgram
	if err := ctx.ShouldBindJSON(&p); err != nil {
		ctx.JSON(http.StatusBadRequest,
			utils.BuildResponseFailed("Request tidak valid: "+err.Error(), utils.CodeValidation))
		return
	}
	if p.Field != "" && !model.ValidStudyField(p.Field) {
		ctx.JSON(http.StatusBadRequest,
			utils.BuildResponseFailed("Bidang studi tidak dikenal", utils.CodeValidation))
		return
	}

	if err := s.universityRepo.SaveProgram(id, &p); err != nil {
		if utils.IsNotFound(err) {
			ctx.JSON(http.StatusNotFound,
				utils.BuildResponseFailed("Program studi tidak ditemukan", utils.CodeNotFound))
			return
		}
		ctx.JSON(http.StatusInternalServerError,
			utils.BuildResponseFailed("Gagal mengupdate program studi", utils.CodePersistence))
		return
	}
	ctx.JSON(http.StatusOK, utils.BuildResponseSuccess("Program studi berhasil diupdate", nil))
}

func (s *universityService) DeleteProgram(ctx *gin.Context) {
	id := ctx.Query("id")
	if id == "" {
		ctx.JSON(http.StatusBadRequest,
			utils.BuildResponseFailed("Parameter id wajib diisi", utils.CodeValidation))
		return
	}

	if err := s.universityRepo.DeleteProgram(id); err != nil {
		if utils.IsNotFound(err) {
			ctx.JSON(http.StatusNotFound,
				utils.BuildResponseFailed("Program studi tidak ditemukan", utils.CodeNotFound))
			return
		}
		ctx.JSON(http.StatusInternalServerError,
			utils.BuildResponseFailed("Gagal menghapus program studi", utils.CodePersistence))
		return
	}
	ctx.JSON(http.StatusOK, utils.BuildResponseSuccess("Program studi berhasil dihapus", nil))
}
