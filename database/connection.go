package database

import (
	"context"
	"fmt"
	"os"
	"time"

	"bukubersama-backend/app/model"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type Database struct {
	Postgres *gorm.DB
	Mongo    *mongo.Database
}

func InitDB() (*Database, error) {
	// 1. Setup PostgreSQL
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable TimeZone=Asia/Jakarta",
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
	)

	// DisableForeignKeyConstraintWhenMigrating: penghapusan parent TIDAK
	// meng-cascade ke child (hapus StudyProgram membiarkan materials yatim).
	// TranslateError dibutuhkan supaya pelanggaran unique constraint bisa
	// dibedakan dari kegagalan persist generik (lihat utils.IsConflict).
	pgDB, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		DisableForeignKeyConstraintWhenMigrating: true,
		TranslateError:                           true,
	})
	if err != nil {
		return nil, fmt.Errorf("gagal koneksi ke postgres: %v", err)
	}

	err = pgDB.AutoMigrate(
		&model.University{},
		&model.Faculty{},
		&model.StudyProgram{},
		&model.Semester{},
		&model.User{},
		&model.Material{},
		&model.Comment{},
		&model.Appreciation{},
		&model.PointTransaction{},
		&model.Category{},
	)
	if err != nil {
		return nil, fmt.Errorf("gagal migrasi database: %v", err)
	}

	// 2. Setup MongoDB (dokumen laporan AI review)
	mongoURI := os.Getenv("MONGO_URI")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	clientOptions := options.Client().ApplyURI(mongoURI)
	mongoClient, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, fmt.Errorf("gagal koneksi ke mongo: %v", err)
	}

	if err := mongoClient.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("gagal ping mongo: %v", err)
	}

	mongoDatabase := mongoClient.Database(os.Getenv("MONGO_DB_NAME"))

	return &Database{
		Postgres: pgDB,
		Mongo:    mongoDatabase,
	}, nil
}
