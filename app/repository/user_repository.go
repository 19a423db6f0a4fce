package repository

import (
	"bukubersama-backend/app/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserRepository mendefinisikan kontrak operasi database untuk entity User.
type UserRepository interface {
	FindAll() ([]model.User, error)
	FindByID(id string) (*model.User, error)
	FindByEmail(email string) (*model.User, error)
	FindByNIM(nim string) (*model.User, error)
	FindByUsername(username string) (*model.User, error)
	Create(user *model.User) error
	Save(id string, user *model.User) error
	UpdatePassword(id, passwordHash string) error
	Delete(id string) error
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db}
}

func (r *userRepository) FindAll() ([]model.User, error) {
	var users []model.User
	err := r.db.Find(&users).Error
	return users, err
}

func (r *userRepository) FindByID(id string) (*model.User, error) {
	var user model.User
	if err := r.db.Where("id = ?", id).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// FindByEmail mencari user berdasarkan email (dipakai saat login).
func (r *userRepository) FindByEmail(email string) (*model.User, error) {
	var user model.User
	if err := r.db.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// FindByNIM mencari user berdasarkan nomor induk mahasiswa
// (dipakai pre-check konflik saat registrasi).
func (r *userRepository) FindByNIM(nim string) (*model.User, error) {
	var user model.User
	if err := r.db.Where("nim = ?", nim).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindByUsername(username string) (*model.User, error) {
	var user model.User
	if err := r.db.Where("username = ?", username).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) Create(user *model.User) error {
	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	return r.db.Create(user).Error
}

// Save melakukan overwrite seluruh kolom user kecuali password hash dan
// field yang dikelola server (id, created_at).
func (r *userRepository) Save(id string, user *model.User) error {
	if err := r.db.Select("id").Where("id = ?", id).First(&model.User{}).Error; err != nil {
		return err
	}
	user.ID = id
	return r.db.Model(&model.User{}).Where("id = ?", id).
		Select("*").Omit("id", "password_hash", "created_at").Updates(user).Error
}

// UpdatePassword mengganti hash password; satu-satunya jalur tulis ke
// kolom password_hash di luar Create.
func (r *userRepository) UpdatePassword(id, passwordHash string) error {
	res := r.db.Model(&model.User{}).Where("id = ?", id).
		Update("password_hash", passwordHash)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *userRepository) Delete(id string) error {
	res := r.db.Where("id = ?", id).Delete(&model.User{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
