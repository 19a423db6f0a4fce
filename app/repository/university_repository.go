package repository

import (
	"bukubersama-backend/app/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UniversityRepository mendefinisikan kontrak operasi database untuk tree
// University -> Faculty -> StudyProgram.
// Delete TIDAK meng-cascade: hapus universitas membiarkan fakultasnya,
// hapus prodi membiarkan materinya (perilaku skema lama yang dipertahankan).
type UniversityRepository interface {
	FindAll() ([]model.University, error)
	FindAllWithTree() ([]model.University, error)
	FindByID(id string) (*model.University, error)
	Create(u *model.University) error
	Save(id string, u *model.University) error
	Delete(id string) error

	FindAllFaculties() ([]model.Faculty, error)
	FindFacultyByID(id string) (*model.Faculty, error)
	CreateFaculty(f *model.Faculty) error
	SaveFaculty(id string, f *model.Faculty) error
	DeleteFaculty(id string) error

	FindAllPrograms() ([]model.StudyProgram, error)
	FindProgramByID(id string) (*model.StudyProgram, error)
	CreateProgram(p *model.StudyProgram) error
	SaveProgram(id string, p *model.StudyProgram) error
	DeleteProgram(id string) error
}

type universityRepository struct {
	db *gorm.DB
}

func NewUniversityRepository(db *gorm.DB) UniversityRepository {
	return &universityRepository{db}
}

// ---------- University ----------

func (r *universityRepository) FindAll() ([]model.University, error) {
	var items []model.University
	err := r.db.Find(&items).Error
	return items, err
}

// FindAllWithTree memuat universitas lengkap dengan fakultas dan prodinya,
// dipakai search landing page dan frontend navigasi.
func (r *universityRepository) FindAllWithTree() ([]model.University, error) {
	var items []model.University
	err := r.db.Preload("Faculties.Programs").Find(&items).Error
	return items, err
}

func (r *universityRepository) FindByID(id string) (*model.University, error) {
	var u model.University
	if err := r.db.Preload("Faculties.Programs").Where("id = ?", id).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *universityRepository) Create(u *model.University) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return r.db.Create(u).Error
}

// Save melakukan overwrite seluruh kolom baris yang ada (bukan partial update).
func (r *universityRepository) Save(id string, u *model.University) error {
	if err := r.db.Select("id").Where("id = ?", id).First(&model.University{}).Error; err != nil {
		return err
	}
	u.ID = id
	return r.db.Model(&model.University{}).Where("id = ?", id).
		Select("*").Omit("id", "created_at").Updates(u).Error
}

func (r *universityRepository) Delete(id string) error {
	res := r.db.Where("id = ?", id).Delete(&model.University{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// ---------- Faculty ----------

func (r *universityRepository) FindAllFaculties() ([]model.Faculty, error) {
	var items []model.Faculty
	err := r.db.Find(&items).Error
	return items, err
}

func (r *universityRepository) FindFacultyByID(id string) (*model.Faculty, error) {
	var f model.Faculty
	if err := r.db.Preload("Programs").Where("id = ?", id).First(&f).Error; err != nil {
		return nil, err
	}
	return &f, nil
}

func (r *universityRepository) CreateFaculty(f *model.Faculty) error {
	if f.ID == "" {
		f.ID = uuid.NewString()
	}
	return r.db.Create(f).Error
}

func (r *universityRepository) SaveFaculty(id string, f *model.Faculty) error {
	if err := r.db.Select("id").Where("id = ?", id).First(&model.Faculty{}).Error; err != nil {
		return err
	}
	f.ID = id
	return r.db.Model(&model.Faculty{}).Where("id = ?", id).
		Select("*").Omit("id", "created_at").Updates(f).Error
}

func (r *universityRepository) DeleteFaculty(id string) error {
	res := r.db.Where("id = ?", id).Delete(&model.Faculty{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// ---------- StudyProgram ----------

func (r *universityRepository) FindAllPrograms() ([]model.StudyProgram, error) {
	var items []model.StudyProgram
	err := r.db.Find(&items).Error
	return items, err
}

func (r *universityRepository) FindProgramByID(id string) (*model.StudyProgram, error) {
	var p model.StudyProgram
	if err := r.db.Where("id = ?", id).First(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *universityRepository) CreateProgram(p *model.StudyProgram) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return r.db.Create(p).Error
}

func (r *universityRepository) SaveProgram(id string, p *model.StudyProgram) error {
	if err := r.db.Select("id").Where("id = ?", id).First(&model.StudyProgram{}).Error; err != nil {
		return err
	}
	p.ID = id
	return r.db.Model(&model.StudyProgram{}).Where("id = ?", id).
		Select("*").Omit("id", "created_at").Updates(p).Error
}

func (r *universityRepository) DeleteProgram(id string) error {
	res := r.db.Where("id = ?", id).Delete(&model.StudyProgram{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
