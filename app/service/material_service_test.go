package service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"bukubersama-backend/app/model"
	"bukubersama-backend/app/repository"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// fakeUniversityRepo adalah implementasi in-memory UniversityRepository.
type fakeUniversityRepo struct {
	universities map[string]*model.University
	faculties    map[string]*model.Faculty
	programs     map[string]*model.StudyProgram
}

func newFakeUniversityRepo(programs ...*model.StudyProgram) *fakeUniversityRepo {
	r := &fakeUniversityRepo{
		universities: make(map[string]*model.University),
		faculties:    make(map[string]*model.Faculty),
		programs:     make(map[string]*model.StudyProgram),
	}
	for _, p := range programs {
		r.programs[p.ID] = p
	}
	return r
}

func (r *fakeUniversityRepo) FindAll() ([]model.University, error) {
	out := make([]model.University, 0, len(r.universities))
	for _, u := range r.universities {
		out = append(out, *u)
	}
	return out, nil
}

func (r *fakeUniversityRepo) FindAllWithTree() ([]model.University, error) {
	return r.FindAll()
}

func (r *fakeUniversityRepo) FindByID(id string) (*model.University, error) {
	if u, ok := r.universities[id]; ok {
		return u, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeUniversityRepo) Create(u *model.University) error {
	r.universities[u.ID] = u
	return nil
}

func (r *fakeUniversityRepo) Save(id string, u *model.University) error {
	if _, ok := r.universities[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	u.ID = id
	r.universities[id] = u
	return nil
}

func (r *fakeUniversityRepo) Delete(id string) error {
	if _, ok := r.universities[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(r.universities, id)
	return nil
}

func (r *fakeUniversityRepo) FindAllFaculties() ([]model.Faculty, error) {
	out := make([]model.Faculty, 0, len(r.faculties))
	for _, f := range r.faculties {
		out = append(out, *f)
	}
	return out, nil
}

func (r *fakeUniversityRepo) FindFacultyByID(id string) (*model.Faculty, error) {
	if f, ok := r.faculties[id]; ok {
		return f, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeUniversityRepo) CreateFaculty(f *model.Faculty) error {
	r.faculties[f.ID] = f
	return nil
}

func (r *fakeUniversityRepo) SaveFaculty(id string, f *model.Faculty) error {
	if _, ok := r.faculties[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	f.ID = id
	r.faculties[id] = f
	return nil
}

func (r *fakeUniversityRepo) DeleteFaculty(id string) error {
	if _, ok := r.faculties[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(r.faculties, id)
	return nil
}

func (r *fakeUniversityRepo) FindAllPrograms() ([]model.StudyProgram, error) {
	out := make([]model.StudyProgram, 0, len(r.programs))
	for _, p := range r.programs {
		out = append(out, *p)
	}
	return out, nil
}

func (r *fakeUniversityRepo) FindProgramByID(id string) (*model.StudyProgram, error) {
	if p, ok := r.programs[id]; ok {
		return p, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeUniversityRepo) CreateProgram(p *model.StudyProgram) error {
	r.programs[p.ID] = p
	return nil
}

func (r *fakeUniversityRepo) SaveProgram(id string, p *model.StudyProgram) error {
	if _, ok := r.programs[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	p.ID = id
	r.programs[id] = p
	return nil
}

func (r *fakeUniversityRepo) DeleteProgram(id string) error {
	if _, ok := r.programs[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(r.programs, id)
	return nil
}

// recordingMaterialRepo membungkus fakeMaterialRepo dan menyimpan reward
// yang dikirim lewat CreateWithReview.
type recordingMaterialRepo struct {
	*fakeMaterialRepo
	rewards []model.PointTransaction
}

func (r *recordingMaterialRepo) CreateWithReview(ctx context.Context, m *model.Material, review *model.AIReview, rewards []model.PointTransaction) error {
	r.rewards = rewards
	return r.fakeMaterialRepo.CreateWithReview(ctx, m, review, rewards)
}

func materialTestServer(t *testing.T, repo repository.MaterialRepository) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	userRepo := newFakeUserRepo(&model.User{ID: "author-1", Name: "Budi"})
	universityRepo := newFakeUniversityRepo(&model.StudyProgram{ID: "rpl-upi", Name: "RPL", Field: "Teknologi Informasi"})
	svc := NewMaterialService(repo, userRepo, universityRepo, NewHeuristicReviewer(), zap.NewNop().Sugar())

	r := gin.New()
	r.POST("/api/v1/materials", svc.CreateMaterial)
	r.GET("/api/v1/materials/reviews", svc.GetReview)
	return r
}

func TestCreateMaterialUploadFlow(t *testing.T) {
	repo := &recordingMaterialRepo{fakeMaterialRepo: newFakeMaterialRepo()}
	r := materialTestServer(t, repo)

	payload := map[string]interface{}{
		"title":          "Pengantar Algoritma",
		"description":    strings.Repeat("Materi pengantar algoritma dasar. ", 3),
		"content":        strings.Repeat("isi materi ", 300),
		"semester":       1,
		"programStudiId": "rpl-upi",
		"authorId":       "author-1",
		"tags":           []string{"algoritma", "pemrograman", "dasar"},
	}
	body, _ := json.Marshal(payload)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/materials", strings.NewReader(string(body)))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	// materi tersimpan dengan hasil review terdenormalisasi
	require.Len(t, repo.materials, 1)
	var saved *model.Material
	for _, m := range repo.materials {
		saved = m
	}
	assert.Equal(t, "published", saved.Status)
	assert.Equal(t, "CC-BY", saved.License)
	require.NotNil(t, saved.AIReviewScore)
	assert.Greater(t, *saved.AIReviewScore, 0.0)

	// 600 kata + 3 tag + deskripsi panjang -> skor 5.0, reward + bonus
	require.Len(t, repo.rewards, 2)
	assert.Equal(t, UploadRewardPoints, repo.rewards[0].Amount)
	assert.Equal(t, "Upload materi baru", repo.rewards[0].Reason)
	assert.Equal(t, UploadBonusPoints, repo.rewards[1].Amount)
	assert.Equal(t, "Bonus AI Review Score tinggi", repo.rewards[1].Reason)
	for _, reward := range repo.rewards {
		assert.Equal(t, "author-1", reward.UserID)
		assert.Equal(t, "earned", reward.Type)
		require.NotNil(t, reward.ResumeID)
		assert.Equal(t, saved.ID, *reward.ResumeID)
	}

	// dokumen review bisa diambil kembali lewat endpoint reviews
	w2 := httptest.NewRecorder()
	req2 := httptest.NewRequest(http.MethodGet, "/api/v1/materials/reviews?materialId="+saved.ID, nil)
	r.ServeHTTP(w2, req2)
	assert.Equal(t, http.StatusOK, w2.Code)
}

func TestCreateMaterialValidation(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		wantStatus int
	}{
		{name: "field wajib kosong", body: `{"title":"X"}`, wantStatus: http.StatusBadRequest},
		{name: "semester di luar 1-8", body: `{"title":"X","description":"d","content":"c","semester":9,"programStudiId":"rpl-upi","authorId":"author-1"}`, wantStatus: http.StatusBadRequest},
		{name: "author tidak ada", body: `{"title":"X","description":"d","content":"c","semester":1,"programStudiId":"rpl-upi","authorId":"hantu"}`, wantStatus: http.StatusNotFound},
		{name: "prodi tidak ada", body: `{"title":"X","description":"d","content":"c","semester":1,"programStudiId":"hilang","authorId":"author-1"}`, wantStatus: http.StatusNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &recordingMaterialRepo{fakeMaterialRepo: newFakeMaterialRepo()}
			r := materialTestServer(t, repo)

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/api/v1/materials", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Empty(t, repo.materials)
		})
	}
}
