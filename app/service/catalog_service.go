package service

import (
	"net/http"
	"sort"
	"strconv"
	"strings"

	"bukubersama-backend/app/model"
	"bukubersama-backend/app/repository"
	"bukubersama-backend/utils"

	"github.com/gin-gonic/gin"
)

// Kunci sort katalog. Selain tiga ini, urutan hasil filter dibiarkan apa adanya.
const (
	SortLatest  = "latest"
	SortPopular = "popular"
	SortRating  = "rating"
)

// MaterialQuery menampung empat sumbu filter + kunci sort katalog.
// Zero value berarti sumbu itu tidak aktif (lolos semua).
type MaterialQuery struct {
	Search         string
	Field          string // nama StudyField; "" atau "All" = semua
	Semester       int    // 1..8; 0 = semua
	AuthorID       string // scope "materi saya"
	ProgramStudiID string // scope halaman prodi
	Sort           string
}

// matchesSearch: substring case-insensitive terhadap judul ATAU deskripsi
// ATAU salah satu tag.
func matchesSearch(m model.Material, term string) bool {
	if strings.Contains(strings.ToLower(m.Title), term) ||
		strings.Contains(strings.ToLower(m.Description), term) {
		return true
	}
	for _, tag := range m.Tags {
		if strings.Contains(strings.ToLower(tag), term) {
			return true
		}
	}
	return false
}

// FilterMaterials menerapkan keempat predikat sebagai AND terhadap seluruh
// koleksi dan mengembalikan slice baru dengan urutan relatif asli.
// fieldByProgram memetakan programStudiId -> StudyField karena field bukan
// kolom materi melainkan milik prodi.
func FilterMaterials(materials []model.Material, fieldByProgram map[string]string, q MaterialQuery) []model.Material {
	term := strings.ToLower(q.Search)
	out := make([]model.Material, 0, len(materials))
	for _, m := range materials {
		if term != "" && !matchesSearch(m, term) {
			continue
		}
		if q.Field != "" && q.Field != "All" && fieldByProgram[m.ProgramStudiID] != q.Field {
			continue
		}
		if q.Semester != 0 && m.Semester != q.Semester {
			continue
		}
		if q.AuthorID != "" && m.AuthorID != q.AuthorID {
			continue
		}
		if q.ProgramStudiID != "" && m.ProgramStudiID != q.ProgramStudiID {
			continue
		}
		out = append(out, m)
	}
	return out
}

// reviewScore memperlakukan materi tanpa skor review sebagai 0.
func reviewScore(m model.Material) float64 {
	if m.AIReviewScore == nil {
		return 0
	}
	return *m.AIReviewScore
}

// SortMaterials mengurutkan SALINAN slice (input tidak pernah dimutasi).
// Sort stabil: tie dipecah oleh urutan relatif asli.
func SortMaterials(materials []model.Material, key string) []model.Material {
	out := make([]model.Material, len(materials))
	copy(out, materials)
	switch key {
	case SortLatest:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		})
	case SortPopular:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].DownloadCount > out[j].DownloadCount
		})
	case SortRating:
		sort.SliceStable(out, func(i, j int) bool {
			return reviewScore(out[i]) > reviewScore(out[j])
		})
	}
	return out
}

// ProgramHit adalah hasil pencarian prodi beserta konteks fakultas/universitasnya.
type ProgramHit struct {
	model.StudyProgram
	FacultyName    string `json:"facultyName"`
	UniversityID   string `json:"universityId"`
	UniversityName string `json:"universityName"`
}

// CatalogSearchResult adalah hasil pencarian landing page.
// Hanya satu tier yang terisi, sesuai field Type.
type CatalogSearchResult struct {
	Type         string             `json:"type"` // universities | programs | materials
	Universities []model.University `json:"universities,omitempty"`
	Programs     []ProgramHit       `json:"programs,omitempty"`
	Materials    []model.Material   `json:"materials,omitempty"`
}

// SearchCatalog adalah pencarian tiga tingkat landing page: nama universitas
// dulu, lalu nama prodi, terakhir fallback ke filter materi. Tier pertama
// yang menghasilkan data itulah yang ditampilkan, bukan gabungan ranking.
func SearchCatalog(q string, universities []model.University, materials []model.Material, fieldByProgram map[string]string) CatalogSearchResult {
	term := strings.ToLower(q)

	var uniHits []model.University
	for _, u := range universities {
		if strings.Contains(strings.ToLower(u.Name), term) {
			uniHits = append(uniHits, u)
		}
	}
	if len(uniHits) > 0 {
		return CatalogSearchResult{Type: "universities", Universities: uniHits}
	}

	var progHits []ProgramHit
	for _, u := range universities {
		for _, f := range u.Faculties {
			for _, p := range f.Programs {
				if strings.Contains(strings.ToLower(p.Name), term) {
					progHits = append(progHits, ProgramHit{
						StudyProgram:   p,
						FacultyName:    f.Name,
						UniversityID:   u.ID,
						UniversityName: u.Name,
					})
				}
			}
		}
	}
	if len(progHits) > 0 {
		return CatalogSearchResult{Type: "programs", Programs: progHits}
	}

	hits := FilterMaterials(materials, fieldByProgram, MaterialQuery{Search: q})
	return CatalogSearchResult{Type: "materials", Materials: hits}
}

// ==================================================================
// HANDLER KATALOG
// ==================================================================

// CatalogService meng-handle endpoint katalog:
// - GET /api/v1/catalog/materials (filter + sort)
// - GET /api/v1/catalog/search    (pencarian tiga tingkat landing page)
// - GET /api/v1/catalog/stats     (statistik turunan)
type CatalogService interface {
	GetMaterials(ctx *gin.Context)
	Search(ctx *gin.Context)
	GetStats(ctx *gin.Context)
}

type catalogService struct {
	materialRepo   repository.MaterialRepository
	universityRepo repository.UniversityRepository
}

func NewCatalogService(materialRepo repository.MaterialRepository, universityRepo repository.UniversityRepository) CatalogService {
	return &catalogService{
		materialRepo:   materialRepo,
		universityRepo: universityRepo,
	}
}

// fieldLookup membangun peta programStudiId -> StudyField dari tabel prodi.
func (s *catalogService) fieldLookup() (map[string]string, error) {
	programs, err := s.universityRepo.FindAllPrograms()
	if err != nil {
		return nil, err
	}
	byID := make(map[string]string, len(programs))
	for _, p := range programs {
		byID[p.ID] = p.Field
	}
	return byID, nil
}

func (s *catalogService) GetMaterials(ctx *gin.Context) {
	q := MaterialQuery{
		Search:         ctx.Query("search"),
		Field:          ctx.Query("field"),
		AuthorID:       ctx.Query("authorId"),
		ProgramStudiID: ctx.Query("programStudiId"),
		Sort:           ctx.DefaultQuery("sort", SortLatest),
	}

	if raw := ctx.Query("semester"); raw != "" && raw != "All" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > 8 {
			ctx.JSON(http.StatusBadRequest,
				utils.BuildResponseFailed("Semester harus 1-8 atau All", utils.CodeValidation))
			return
		}
		q.Semester = n
	}
	if q.Field != "" && q.Field != "All" && !model.ValidStudyField(q.Field) {
		ctx.JSON(http.StatusBadRequest,
			utils.BuildResponseFailed("Bidang studi tidak dikenal", utils.CodeValidation))
		return
	}
	switch q.Sort {
	case SortLatest, SortPopular, SortRating:
	default:
		ctx.JSON(http.StatusBadRequest,
			utils.BuildResponseFailed("Sort harus latest, popular, atau rating", utils.CodeValidation))
		return
	}

	materials, err := s.materialRepo.FindAll()
	if err != nil {
		ctx.JSON(http.StatusInternalServerError,
			utils.BuildResponseFailed("Gagal mengambil materi", utils.CodePersistence))
		return
	}
	fieldByProgram, err := s.fieldLookup()
	if err != nil {
		ctx.JSON(http.StatusInternalServerError,
			utils.BuildResponseFailed("Gagal mengambil prodi", utils.CodePersistence))
		return
	}

	result := SortMaterials(FilterMaterials(materials, fieldByProgram, q), q.Sort)
	ctx.JSON(http.StatusOK, utils.BuildResponseSuccess("", result))
}

func (s *catalogService) Search(ctx *gin.Context) {
	q := ctx.Query("q")
	if q == "" {
		ctx.JSON(http.StatusBadRequest,
			utils.BuildResponseFailed("Parameter q wajib diisi", utils.CodeValidation))
		return
	}

	universities, err := s.universityRepo.FindAllWithTree()
	if err != nil {
		ctx.JSON(http.StatusInternalServerError,
			utils.BuildResponseFailed("Gagal mengambil universitas", utils.CodePersistence))
		return
	}
	materials, err := s.materialRepo.FindAll()
	if err != nil {
		ctx.JSON(http.StatusInternalServerError,
			utils.BuildResponseFailed("Gagal mengambil materi", utils.CodePersistence))
		return
	}
	fieldByProgram, err := s.fieldLookup()
	if err != nil {
		ctx.JSON(http.StatusInternalServerError,
			utils.BuildResponseFailed("Gagal mengambil prodi", utils.CodePersistence))
		return
	}

	ctx.JSON(http.StatusOK,
		utils.BuildResponseSuccess("", SearchCatalog(q, universities, materials, fieldByProgram)))
}

// GetStats menghitung ulang seluruh statistik turunan dari koleksi materi
// pada setiap request; tidak ada cache.
func (s *catalogService) GetStats(ctx *gin.Context) {
	materials, err := s.materialRepo.FindAll()
	if err != nil {
		ctx.JSON(http.StatusInternalServerError,
			utils.BuildResponseFailed("Gagal mengambil materi", utils.CodePersistence))
		return
	}

	ctx.JSON(http.StatusOK, utils.BuildResponseSuccess("", gin.H{
		"totalMaterials":     len(materials),
		"totalDownloads":     TotalDownloads(materials),
		"averageRating":      AverageRating(materials),
		"perSemesterAverage": PerSemesterAverage(materials),
		"ratingDistribution": RatingDistribution(materials),
	}))
}
