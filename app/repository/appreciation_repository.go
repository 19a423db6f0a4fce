package repository

import (
	"bukubersama-backend/app/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AppreciationRepository mendefinisikan operasi apresiasi materi.
// CreateWithReward adalah satu unit transaksional: apresiasi, entri ledger
// poin untuk author, proyeksi users.points, dan counter materi diubah
// bersama-sama atau tidak sama sekali.
type AppreciationRepository interface {
	FindAll() ([]model.Appreciation, error)
	FindByID(id string) (*model.Appreciation, error)
	FindByResumeID(resumeID string) ([]model.Appreciation, error)
	CreateWithReward(a *model.Appreciation, reward *model.PointTransaction) error
	Save(id string, a *model.Appreciation) error
	Delete(id string) error
}

type appreciationRepository struct {
	db *gorm.DB
}

func NewAppreciationRepository(db *gorm.DB) AppreciationRepository {
	return &appreciationRepository{db}
}

func (r *appreciationRepository) FindAll() ([]model.Appreciation, error) {
	var items []model.Appreciation
	err := r.db.Find(&items).Error
	return items, err
}

func (r *appreciationRepository) FindByID(id string) (*model.Appreciation, error) {
	var a model.Appreciation
	if err := r.db.Where("id = ?", id).First(&a).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *appreciationRepository) FindByResumeID(resumeID string) ([]model.Appreciation, error) {
	var items []model.Appreciation
	err := r.db.Where("resume_id = ?", resumeID).Order("created_at").Find(&items).Error
	return items, err
}

func (r *appreciationRepository) CreateWithReward(a *model.Appreciation, reward *model.PointTransaction) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(a).Error; err != nil {
			return err
		}
		if reward != nil {
			if reward.ID == "" {
				reward.ID = uuid.NewString()
			}
			if err := tx.Create(reward).Error; err != nil {
				return err
			}
			if err := tx.Model(&model.User{}).Where("id = ?", reward.UserID).
				Update("points", gorm.Expr("points + ?", reward.Amount)).Error; err != nil {
				return err
			}
		}
		return tx.Model(&model.Material{}).Where("id = ?", a.ResumeID).
			Update("appreciation_count", gorm.Expr("appreciation_count + 1")).Error
	})
}

func (r *appreciationRepository) Save(id string, a *model.Appreciation) error {
	if err := r.db.Select("id").Where("id = ?", id).First(&model.Appreciation{}).Error; err != nil {
		return err
	}
	a.ID = id
	return r.db.Model(&model.Appreciation{}).Where("id = ?", id).
		Select("*").Omit("id", "created_at").Updates(a).Error
}

// Delete menghapus apresiasi saja; poin yang sudah dikreditkan ke author
// tetap tercatat di ledger (entri ledger tidak pernah dihapus).
func (r *appreciationRepository) Delete(id string) error {
	res := r.db.Where("id = ?", id).Delete(&model.Appreciation{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
