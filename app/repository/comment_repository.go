package repository

import (
	"bukubersama-backend/app/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CommentRepository mendefinisikan kontrak operasi database untuk komentar materi.
type CommentRepository interface {
	FindAll() ([]model.Comment, error)
	FindByID(id string) (*model.Comment, error)
	FindByResumeID(resumeID string) ([]model.Comment, error)
	Create(c *model.Comment) error
	Save(id string, c *model.Comment) error
	Delete(id string) error
}

type commentRepository struct {
	db *gorm.DB
}

func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &commentRepository{db}
}

func (r *commentRepository) FindAll() ([]model.Comment, error) {
	var items []model.Comment
	err := r.db.Find(&items).Error
	return items, err
}

func (r *commentRepository) FindByID(id string) (*model.Comment, error) {
	var c model.Comment
	if err := r.db.Where("id = ?", id).First(&c).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *commentRepository) FindByResumeID(resumeID string) ([]model.Comment, error) {
	var items []model.Comment
	err := r.db.Where("resume_id = ?", resumeID).Order("created_at").Find(&items).Error
	return items, err
}

func (r *commentRepository) Create(c *model.Comment) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return r.db.Create(c).Error
}

func (r *commentRepository) Save(id string, c *model.Comment) error {
	if err := r.db.Select("id").Where("id = ?", id).First(&model.Comment{}).Error; err != nil {
		return err
	}
	c.ID = id
	return r.db.Model(&model.Comment{}).Where("id = ?", id).
		Select("*").Omit("id", "created_at").Updates(c).Error
}

func (r *commentRepository) Delete(id string) error {
	res := r.db.Where("id = ?", id).Delete(&model.Comment{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
