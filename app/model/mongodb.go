package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AIReview merepresentasikan 1 dokumen laporan review materi di MongoDB
// (collection: ai_reviews). Skor/feedback/summary juga didenormalisasi ke
// baris materials di Postgres saat upload; dokumen ini menyimpan laporan
// lengkapnya (strengths, improvements, saran tag).
type AIReview struct {
	ID                primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	MaterialID        string             `bson:"materialId" json:"resumeId"` // nama field JSON lama: resumeId
	Score             float64            `bson:"score" json:"score"`
	Feedback          string             `bson:"feedback" json:"feedback"`
	Summary           string             `bson:"summary" json:"summary"`
	Strengths         []string           `bson:"strengths" json:"strengths"`
	Improvements      []string           `bson:"improvements" json:"improvements"`
	Tags              []string           `bson:"tags" json:"tags"`
	Difficulty        string             `bson:"difficulty" json:"difficulty"`
	EstimatedReadTime int                `bson:"estimatedReadTime" json:"estimatedReadTime"`
	CreatedAt         time.Time          `bson:"createdAt" json:"createdAt"`
}
