package repository

import (
	"bukubersama-backend/app/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CategoryRepository mendefinisikan operasi untuk baris rollup Category dan
// tabel referensi Semester. ResumeCount pada Category dikelola manual lewat
// endpoint CRUD, tidak dihitung ulang dari tabel materials.
type CategoryRepository interface {
	FindAll() ([]model.Category, error)
	FindByID(id string) (*model.Category, error)
	Create(c *model.Category) error
	Save(id string, c *model.Category) error
	Delete(id string) error

	FindAllSemesters() ([]model.Semester, error)
	FindSemesterByID(id string) (*model.Semester, error)
	CreateSemester(s *model.Semester) error
	SaveSemester(id string, s *model.Semester) error
	DeleteSemester(id string) error
}

type categoryRepository struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) CategoryRepository {
	return &categoryRepository{db}
}

func (r *categoryRepository) FindAll() ([]model.Category, error) {
	var items []model.Category
	err := r.db.Find(&items).Error
	return items, err
}

func (r *categoryRepository) FindByID(id string) (*model.Category, error) {
	var c model.Category
	if err := r.db.Where("id = ?", id).First(&c).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *categoryRepository) Create(c *model.Category) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return r.db.Create(c).Error
}

func (r *categoryRepository) Save(id string, c *model.Category) error {
	if err := r.db.Select("id").Where("id = ?", id).First(&model.Category{}).Error; err != nil {
		return err
	}
	c.ID = id
	return r.db.Model(&model.Category{}).Where("id = ?", id).
		Select("*").Omit("id").Updates(c).Error
}

func (r *categoryRepository) Delete(id string) error {
	res := r.db.Where("id = ?", id).Delete(&model.Category{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *categoryRepository) FindAllSemesters() ([]model.Semester, error) {
	var items []model.Semester
	err := r.db.Order("number").Find(&items).Error
	return items, err
}

func (r *categoryRepository) FindSemesterByID(id string) (*model.Semester, error) {
	var s model.Semester
	if err := r.db.Where("id = ?", id).First(&s).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *categoryRepository) CreateSemester(s *model.Semester) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return r.db.Create(s).Error
}

func (r *categoryRepository) SaveSemester(id string, s *model.Semester) error {
	if err := r.db.Select("id").Where("id = ?", id).First(&model.Semester{}).Error; err != nil {
		return err
	}
	s.ID = id
	return r.db.Model(&model.Semester{}).Where("id = ?", id).
		Select("*").Omit("id").Updates(s).Error
}

func (r *categoryRepository) DeleteSemester(id string) error {
	res := r.db.Where("id = ?", id).Delete(&model.Semester{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
