package repository

import (
	"context"
	"fmt"

	"bukubersama-backend/app/model"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"gorm.io/gorm"
)

// MaterialRepository mendefinisikan operasi untuk materi:
// baris metadata di Postgres + dokumen laporan AI review di MongoDB.
type MaterialRepository interface {
	FindAll() ([]model.Material, error)
	FindByID(id string) (*model.Material, error)
	Create(m *model.Material) error

	// CreateWithReview menyimpan hasil upload dalam dua langkah:
	// - insert dokumen laporan review ke MongoDB (collection: ai_reviews)
	// - insert baris materi + entri ledger poin + update counter author
	//   ke PostgreSQL dalam satu transaksi.
	// Jika insert Postgres gagal, dokumen Mongo dihapus lagi (kompensasi).
	CreateWithReview(ctx context.Context, m *model.Material, review *model.AIReview, rewards []model.PointTransaction) error

	// FindReviewByMaterialID mengambil dokumen laporan AI review dari MongoDB.
	FindReviewByMaterialID(ctx context.Context, materialID string) (*model.AIReview, error)

	Save(id string, m *model.Material) error
	Delete(id string) error
}

type materialRepository struct {
	pgDB    *gorm.DB
	mongoDB *mongo.Database
}

func NewMaterialRepository(pgDB *gorm.DB, mongoDB *mongo.Database) MaterialRepository {
	return &materialRepository{pgDB: pgDB, mongoDB: mongoDB}
}

func (r *materialRepository) FindAll() ([]model.Material, error) {
	var items []model.Material
	err := r.pgDB.Order("created_at").Find(&items).Error
	return items, err
}

func (r *materialRepository) FindByID(id string) (*model.Material, error) {
	var m model.Material
	if err := r.pgDB.Where("id = ?", id).First(&m).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

// Create menyimpan baris materi saja (endpoint CRUD generik, tanpa review).
func (r *materialRepository) Create(m *model.Material) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	return r.pgDB.Create(m).Error
}

func (r *materialRepository) CreateWithReview(ctx context.Context, m *model.Material, review *model.AIReview, rewards []model.PointTransaction) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	review.MaterialID = m.ID

	// Step 1: insert laporan review ke MongoDB terlebih dahulu.
	insertRes, err := r.mongoDB.Collection("ai_reviews").InsertOne(ctx, review)
	if err != nil {
		return fmt.Errorf("mongo insert error: %w", err)
	}

	// Step 2: materi + ledger + counter author dalam satu transaksi Postgres.
	// Ledger adalah sumber kebenaran poin; kolom users.points ikut diupdate
	// di transaksi yang sama supaya proyeksinya tidak pernah drift.
	err = r.pgDB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(m).Error; err != nil {
			return err
		}
		for i := range rewards {
			if rewards[i].ID == "" {
				rewards[i].ID = uuid.NewString()
			}
			if err := tx.Create(&rewards[i]).Error; err != nil {
				return err
			}
			if err := tx.Model(&model.User{}).Where("id = ?", rewards[i].UserID).
				Update("points", gorm.Expr("points + ?", rewards[i].Amount)).Error; err != nil {
				return err
			}
		}
		return tx.Model(&model.User{}).Where("id = ?", m.AuthorID).
			Update("total_uploads", gorm.Expr("total_uploads + 1")).Error
	})
	if err != nil {
		// kompensasi: buang dokumen review yang sudah terlanjur masuk Mongo
		_, _ = r.mongoDB.Collection("ai_reviews").DeleteOne(ctx, bson.M{"_id": insertRes.InsertedID})
		return fmt.Errorf("postgres insert error: %w", err)
	}
	return nil
}

func (r *materialRepository) FindReviewByMaterialID(ctx context.Context, materialID string) (*model.AIReview, error) {
	var review model.AIReview
	err := r.mongoDB.Collection("ai_reviews").
		FindOne(ctx, bson.M{"materialId": materialID}).
		Decode(&review)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, gorm.ErrRecordNotFound
		}
		return nil, err
	}
	return &review, nil
}

// Save melakukan overwrite seluruh kolom baris materi (bukan partial update);
// field yang tidak dikirim client akan menjadi zero value.
func (r *materialRepository) Save(id string, m *model.Material) error {
	if err := r.pgDB.Select("id").Where("id = ?", id).First(&model.Material{}).Error; err != nil {
		return err
	}
	m.ID = id
	return r.pgDB.Model(&model.Material{}).Where("id = ?", id).
		Select("*").Omit("id", "created_at").Updates(m).Error
}

// Delete menghapus baris materi saja. Komentar, apresiasi, dan dokumen
// review yang menunjuk ke materi ini sengaja dibiarkan (tidak ada cascade).
func (r *materialRepository) Delete(id string) error {
	res := r.pgDB.Where("id = ?", id).Delete(&model.Material{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
