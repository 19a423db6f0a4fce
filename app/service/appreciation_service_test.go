package service

import (
	"context"
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

// fakeMaterialRepo adalah implementasi in-memory MaterialRepository.
type fakeMaterialRepo struct {
	materials map[string]*model.Material
	reviews   map[string]*model.AIReview
}

func newFakeMaterialRepo(materials ...*model.Material) *fakeMaterialRepo {
	r := &fakeMaterialRepo{
		materials: make(map[string]*model.Material),
		reviews:   make(map[string]*model.AIReview),
	}
	for _, m := range materials {
		r.materials[m.ID] = m
	}
	return r
}

func (r *fakeMaterialRepo) FindAll() ([]model.Material, error) {
	out := make([]model.Material, 0, len(r.materials))
	for _, m := range r.materials {
		out = append(out, *m)
	}
	return out, nil
}

func (r *fakeMaterialRepo) FindByID(id string) (*model.Material, error) {
	if m, ok := r.materials[id]; ok {
		return m, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeMaterialRepo) Create(m *model.Material) error {
	r.materials[m.ID] = m
	return nil
}

func (r *fakeMaterialRepo) CreateWithReview(_ context.Context, m *model.Material, review *model.AIReview, _ []model.PointTransaction) error {
	r.materials[m.ID] = m
	r.reviews[m.ID] = review
	return nil
}

func (r *fakeMaterialRepo) FindReviewByMaterialID(_ context.Context, materialID string) (*model.AIReview, error) {
	if rev, ok := r.reviews[materialID]; ok {
		return rev, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeMaterialRepo) Save(id string, m *model.Material) error {
	if _, ok := r.materials[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	m.ID = id
	r.materials[id] = m
	return nil
}

func (r *fakeMaterialRepo) Delete(id string) error {
	if _, ok := r.materials[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(r.materials, id)
	return nil
}

// fakeAppreciationRepo meniru CreateWithReward: apresiasi + entri ledger
// tercatat bersama-sama.
type fakeAppreciationRepo struct {
	appreciations []model.Appreciation
	rewards       []model.PointTransaction
}

func (r *fakeAppreciationRepo) FindAll() ([]model.Appreciation, error) {
	return r.appreciations, nil
}

func (r *fakeAppreciationRepo) FindByID(id string) (*model.Appreciation, error) {
	for i := range r.appreciations {
		if r.appreciations[i].ID == id {
			return &r.appreciations[i], nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeAppreciationRepo) FindByResumeID(resumeID string) ([]model.Appreciation, error) {
	var out []model.Appreciation
	for _, a := range r.appreciations {
		if a.ResumeID == resumeID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (r *fakeAppreciationRepo) CreateWithReward(a *model.Appreciation, reward *model.PointTransaction) error {
	r.appreciations = append(r.appreciations, *a)
	r.rewards = append(r.rewards, *reward)
	return nil
}

func (r *fakeAppreciationRepo) Save(id string, a *model.Appreciation) error {
	for i := range r.appreciations {
		if r.appreciations[i].ID == id {
			a.ID = id
			r.appreciations[i] = *a
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (r *fakeAppreciationRepo) Delete(id string) error {
	for i := range r.appreciations {
		if r.appreciations[i].ID == id {
			r.appreciations = append(r.appreciations[:i], r.appreciations[i+1:]...)
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func appreciationTestServer(t *testing.T, repo *fakeAppreciationRepo) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	materialRepo := newFakeMaterialRepo(&model.Material{ID: "mat-1", AuthorID: "author-1"})
	userRepo := newFakeUserRepo(
		&model.User{ID: "author-1", Name: "Budi"},
		&model.User{ID: "fan-1", Name: "Sari"},
	)
	svc := NewAppreciationService(repo, materialRepo, userRepo)

	r := gin.New()
	r.POST("/api/v1/appreciations", svc.CreateAppreciation)
	return r
}

func TestCreateAppreciation(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		wantStatus int
		wantReward int
	}{
		{name: "like = 5 poin", body: `{"userId":"fan-1","resumeId":"mat-1","type":"like"}`, wantStatus: http.StatusOK, wantReward: 5},
		{name: "helpful = 10 poin", body: `{"userId":"fan-1","resumeId":"mat-1","type":"helpful"}`, wantStatus: http.StatusOK, wantReward: 10},
		{name: "excellent = 20 poin", body: `{"userId":"fan-1","resumeId":"mat-1","type":"excellent"}`, wantStatus: http.StatusOK, wantReward: 20},
		{name: "type tidak dikenal", body: `{"userId":"fan-1","resumeId":"mat-1","type":"love"}`, wantStatus: http.StatusBadRequest},
		{name: "field wajib kosong", body: `{"userId":"fan-1"}`, wantStatus: http.StatusBadRequest},
		{name: "materi tidak ada", body: `{"userId":"fan-1","resumeId":"hilang","type":"like"}`, wantStatus: http.StatusNotFound},
		{name: "user tidak ada", body: `{"userId":"hantu","resumeId":"mat-1","type":"like"}`, wantStatus: http.StatusNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeAppreciationRepo{}
			r := appreciationTestServer(t, repo)

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/api/v1/appreciations", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			r.ServeHTTP(w, req)

			require.Equal(t, tt.wantStatus, w.Code)

			if tt.wantStatus != http.StatusOK {
				// tidak boleh ada apresiasi maupun reward yang tercatat
				assert.Empty(t, repo.appreciations)
				assert.Empty(t, repo.rewards)
				return
			}

			require.Len(t, repo.appreciations, 1)
			require.Len(t, repo.rewards, 1)

			reward := repo.rewards[0]
			// reward jatuh ke author materi, bukan pemberi apresiasi
			assert.Equal(t, "author-1", reward.UserID)
			assert.Equal(t, "earned", reward.Type)
			assert.Equal(t, tt.wantReward, reward.Amount)
			assert.Equal(t, "Apresiasi dari pengguna", reward.Reason)
			require.NotNil(t, reward.ResumeID)
			assert.Equal(t, "mat-1", *reward.ResumeID)
		})
	}
}
