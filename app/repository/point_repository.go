package repository

import (
	"errors"

	"bukubersama-backend/app/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ErrInsufficientPoints dikembalikan Convert saat saldo poin user kurang.
var ErrInsufficientPoints = errors.New("poin tidak mencukupi")

func lockForUpdate() clause.Locking {
	return clause.Locking{Strength: "UPDATE"}
}

// PointRepository mendefinisikan operasi ledger poin dan konversi wallet.
type PointRepository interface {
	FindAll() ([]model.PointTransaction, error)
	FindByID(id string) (*model.PointTransaction, error)
	FindByUserID(userID string) ([]model.PointTransaction, error)
	SumByUserAndType(userID, txType string) (int, error)
	Create(t *model.PointTransaction) error
	Save(id string, t *model.PointTransaction) error
	Delete(id string) error

	// Convert menukar poin user menjadi saldo wallet (rupiah) dalam satu
	// transaksi: entri ledger `converted` (amount negatif), debit
	// users.points, kredit users.wallet_balance.
	Convert(userID string, points int, rupiah int, reason string) (*model.PointTransaction, error)
}

type pointRepository struct {
	db *gorm.DB
}

func NewPointRepository(db *gorm.DB) PointRepository {
	return &pointRepository{db}
}

func (r *pointRepository) FindAll() ([]model.PointTransaction, error) {
	var items []model.PointTransaction
	err := r.db.Find(&items).Error
	return items, err
}

func (r *pointRepository) FindByID(id string) (*model.PointTransaction, error) {
	var t model.PointTransaction
	if err := r.db.Where("id = ?", id).First(&t).Error; err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *pointRepository) FindByUserID(userID string) ([]model.PointTransaction, error) {
	var items []model.PointTransaction
	err := r.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&items).Error
	return items, err
}

// SumByUserAndType menjumlahkan amount ledger user untuk satu tipe transaksi.
func (r *pointRepository) SumByUserAndType(userID, txType string) (int, error) {
	var total int64
	err := r.db.Model(&model.PointTransaction{}).
		Where("user_id = ? AND type = ?", userID, txType).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&total).Error
	return int(total), err
}

func (r *pointRepository) Create(t *model.PointTransaction) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	return r.db.Create(t).Error
}

func (r *pointRepository) Save(id string, t *model.PointTransaction) error {
	if err := r.db.Select("id").Where("id = ?", id).First(&model.PointTransaction{}).Error; err != nil {
		return err
	}
	t.ID = id
	return r.db.Model(&model.PointTransaction{}).Where("id = ?", id).
		Select("*").Omit("id", "created_at").Updates(t).Error
}

func (r *pointRepository) Delete(id string) error {
	res := r.db.Where("id = ?", id).Delete(&model.PointTransaction{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *pointRepository) Convert(userID string, points int, rupiah int, reason string) (*model.PointTransaction, error) {
	entry := &model.PointTransaction{
		ID:     uuid.NewString(),
		UserID: userID,
		Type:   "converted",
		Amount: -points,
		Reason: reason,
	}
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var user model.User
		// lock baris user supaya dua konversi bersamaan tidak double-spend
		if err := tx.Clauses(lockForUpdate()).Where("id = ?", userID).First(&user).Error; err != nil {
			return err
		}
		if user.Points < points {
			return ErrInsufficientPoints
		}
		if err := tx.Create(entry).Error; err != nil {
			return err
		}
		return tx.Model(&model.User{}).Where("id = ?", userID).
			Updates(map[string]interface{}{
				"points":         gorm.Expr("points - ?", points),
				"wallet_balance": gorm.Expr("wallet_balance + ?", rupiah),
			}).Error
	})
	if err != nil {
		return nil, err
	}
	return entry, nil
}
