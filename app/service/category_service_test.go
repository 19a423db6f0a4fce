package service

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"bukubersama-backend/app/model"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// fakeCategoryRepo adalah implementasi in-memory CategoryRepository.
type fakeCategoryRepo struct {
	categories map[string]*model.Category
	semesters  map[string]*model.Semester
}

func newFakeCategoryRepo(semesters ...*model.Semester) *fakeCategoryRepo {
	r := &fakeCategoryRepo{
		categories: make(map[string]*model.Category),
		semesters:  make(map[string]*model.Semester),
	}
	for _, s := range semesters {
		r.semesters[s.ID] = s
	}
	return r
}

func (r *fakeCategoryRepo) FindAll() ([]model.Category, error) {
	out := make([]model.Category, 0, len(r.categories))
	for _, c := range r.categories {
		out = append(out, *c)
	}
	return out, nil
}

func (r *fakeCategoryRepo) FindByID(id string) (*model.Category, error) {
	if c, ok := r.categories[id]; ok {
		return c, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeCategoryRepo) Create(c *model.Category) error {
	if c.ID == "" {
		c.ID = "cat-generated"
	}
	if _, ok := r.categories[c.ID]; ok {
		return gorm.ErrDuplicatedKey
	}
	r.categories[c.ID] = c
	return nil
}

func (r *fakeCategoryRepo) Save(id string, c *model.Category) error {
	if _, ok := r.categories[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	c.ID = id
	r.categories[id] = c
	return nil
}

func (r *fakeCategoryRepo) Delete(id string) error {
	if _, ok := r.categories[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(r.categories, id)
	return nil
}

func (r *fakeCategoryRepo) FindAllSemesters() ([]model.Semester, error) {
	out := make([]model.Semester, 0, len(r.semesters))
	for _, s := range r.semesters {
		out = append(out, *s)
	}
	return out, nil
}

func (r *fakeCategoryRepo) FindSemesterByID(id string) (*model.Semester, error) {
	if s, ok := r.semesters[id]; ok {
		return s, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeCategoryRepo) CreateSemester(s *model.Semester) error {
	if s.ID == "" {
		s.ID = "sem-generated"
	}
	if _, ok := r.semesters[s.ID]; ok {
		return gorm.ErrDuplicatedKey
	}
	r.semesters[s.ID] = s
	return nil
}

func (r *fakeCategoryRepo) SaveSemester(id string, s *model.Semester) error {
	if _, ok := r.semesters[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	s.ID = id
	r.semesters[id] = s
	return nil
}

func (r *fakeCategoryRepo) DeleteSemester(id string) error {
	if _, ok := r.semesters[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(r.semesters, id)
	return nil
}

func semesterTestServer(t *testing.T, repo *fakeCategoryRepo) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	svc := NewCategoryService(repo)

	r := gin.New()
	r.GET("/api/v1/semesters", svc.GetSemesters)
	r.POST("/api/v1/semesters", svc.CreateSemester)
	r.PUT("/api/v1/semesters", svc.UpdateSemester)
	r.DELETE("/api/v1/semesters", svc.DeleteSemester)
	return r
}

func TestCreateSemester(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		wantStatus int
	}{
		{name: "sukses", body: `{"id":"sem-3","number":3,"name":"Semester 3"}`, wantStatus: http.StatusOK},
		{name: "number kosong", body: `{"id":"sem-x","name":"Semester X"}`, wantStatus: http.StatusBadRequest},
		{name: "name kosong", body: `{"id":"sem-x","number":3}`, wantStatus: http.StatusBadRequest},
		{name: "number di luar rentang", body: `{"id":"sem-9","number":9,"name":"Semester 9"}`, wantStatus: http.StatusBadRequest},
		{name: "id duplikat", body: `{"id":"sem-1","number":1,"name":"Semester 1"}`, wantStatus: http.StatusConflict},
		{name: "body bukan json", body: `bukan-json`, wantStatus: http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newFakeCategoryRepo(&model.Semester{ID: "sem-1", Number: 1, Name: "Semester 1"})
			r := semesterTestServer(t, repo)

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/api/v1/semesters", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			r.ServeHTTP(w, req)

			require.Equal(t, tt.wantStatus, w.Code)

			if tt.wantStatus != http.StatusOK {
				// baris seeder tidak boleh berubah
				assert.Len(t, repo.semesters, 1)
				return
			}

			require.Len(t, repo.semesters, 2)
			created := repo.semesters["sem-3"]
			require.NotNil(t, created)
			assert.Equal(t, 3, created.Number)
			assert.Equal(t, "Semester 3", created.Name)

			var resp map[string]any
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, "success", resp["status"])
			assert.Equal(t, "Semester berhasil dibuat", resp["message"])
		})
	}
}

func TestUpdateSemester(t *testing.T) {
	tests := []struct {
		name       string
		query      string
		body       string
		wantStatus int
	}{
		{name: "sukses", query: "?id=sem-2", body: `{"number":2,"name":"Semester 2 (Genap)"}`, wantStatus: http.StatusOK},
		{name: "tanpa id", query: "", body: `{"number":2,"name":"Semester 2"}`, wantStatus: http.StatusBadRequest},
		{name: "id tidak ada", query: "?id=hilang", body: `{"number":2,"name":"Semester 2"}`, wantStatus: http.StatusNotFound},
		{name: "number nol dianggap tidak diisi", query: "?id=sem-2", body: `{"number":0,"name":"Semester Genap"}`, wantStatus: http.StatusOK},
		{name: "number terlalu besar", query: "?id=sem-2", body: `{"number":12,"name":"Semester 12"}`, wantStatus: http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newFakeCategoryRepo(&model.Semester{ID: "sem-2", Number: 2, Name: "Semester 2"})
			r := semesterTestServer(t, repo)

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPut, "/api/v1/semesters"+tt.query, strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}

	t.Run("perubahan tersimpan", func(t *testing.T) {
		repo := newFakeCategoryRepo(&model.Semester{ID: "sem-2", Number: 2, Name: "Semester 2"})
		r := semesterTestServer(t, repo)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPut, "/api/v1/semesters?id=sem-2",
			strings.NewReader(`{"number":2,"name":"Semester 2 (Genap)"}`))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "Semester 2 (Genap)", repo.semesters["sem-2"].Name)
	})
}

func TestDeleteSemester(t *testing.T) {
	repo := newFakeCategoryRepo(&model.Semester{ID: "sem-1", Number: 1, Name: "Semester 1"})
	r := semesterTestServer(t, repo)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/v1/semesters?id=sem-1", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, repo.semesters)

	// hapus kedua kali harus 404
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodDelete, "/api/v1/semesters?id=sem-1", nil)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetSemesters(t *testing.T) {
	repo := newFakeCategoryRepo(
		&model.Semester{ID: "sem-1", Number: 1, Name: "Semester 1"},
		&model.Semester{ID: "sem-2", Number: 2, Name: "Semester 2"},
	)
	r := semesterTestServer(t, repo)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/semesters?id=sem-2", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Status string         `json:"status"`
		Data   model.Semester `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "success", resp.Status)
	assert.Equal(t, 2, resp.Data.Number)

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/api/v1/semesters?id=hilang", nil)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
