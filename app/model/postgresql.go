package model

import (
	"time"

	"gorm.io/datatypes"
)

// University merepresentasikan satu universitas beserta fakultas di dalamnya.
// Hierarki University -> Faculty -> StudyProgram adalah tree ketat:
// setiap Faculty menunjuk tepat satu University, setiap StudyProgram tepat satu Faculty.
type University struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"not null" json:"name"`
	Location  string    `json:"location"`
	Type      string    `gorm:"type:varchar(10);not null;check:type IN ('negeri','swasta')" json:"type"`
	Faculties []Faculty `gorm:"foreignKey:UniversityID" json:"faculties,omitempty"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
}

// Faculty merepresentasikan fakultas dalam satu universitas.
type Faculty struct {
	ID           string         `gorm:"primaryKey" json:"id"`
	Name         string         `gorm:"not null" json:"name"`
	UniversityID string         `gorm:"not null;index" json:"universityId"`
	Programs     []StudyProgram `gorm:"foreignKey:FacultyID" json:"programs,omitempty"`
	CreatedAt    time.Time      `gorm:"autoCreateTime" json:"createdAt"`
}

// StudyProgram merepresentasikan program studi (leaf dari tree universitas).
type StudyProgram struct {
	ID          string    `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"not null" json:"name"`
	FacultyID   string    `gorm:"not null;index" json:"facultyId"`
	Field       string    `gorm:"type:varchar(30);not null" json:"field"`
	Degree      string    `gorm:"type:varchar(5);not null;check:degree IN ('D3','D4','S1','S2','S3')" json:"degree"`
	Description string    `json:"description"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"createdAt"`
}

// StudyFields adalah enumerasi tertutup bidang studi untuk filter katalog.
var StudyFields = []string{
	"Teknik",
	"Bisnis",
	"Kesehatan",
	"Pendidikan",
	"Sains",
	"Sosial",
	"Seni",
	"Hukum",
	"Pertanian",
	"Teknologi Informasi",
}

// ValidStudyField mengecek apakah s termasuk enumerasi StudyFields.
func ValidStudyField(s string) bool {
	for _, f := range StudyFields {
		if f == s {
			return true
		}
	}
	return false
}

// User merepresentasikan mahasiswa pengguna sistem.
// Kolom fakultas/programStudi/universitas adalah string display (bukan FK),
// mengikuti format data lama; hanya dipakai untuk tampilan profil.
// Points adalah proyeksi cache dari ledger point_transactions dan selalu
// diupdate dalam transaksi yang sama dengan penambahan entri ledger.
type User struct {
	ID             string    `gorm:"primaryKey" json:"id"`
	Name           string    `gorm:"not null" json:"name"`
	Username       string    `gorm:"unique;not null" json:"username"`
	Email          string    `gorm:"unique;not null" json:"email"`
	NIM            string    `gorm:"column:nim;unique;not null" json:"nim"`
	Role           string    `gorm:"type:varchar(20);not null" json:"role"`
	PasswordHash   string    `gorm:"not null" json:"-"`
	Fakultas       string    `json:"fakultas"`
	ProgramStudi   string    `json:"programStudi"`
	Universitas    string    `json:"universitas"`
	Angkatan       string    `gorm:"type:varchar(10)" json:"angkatan"`
	Semester       int       `gorm:"check:semester >= 1 AND semester <= 8" json:"semester"`
	Points         int       `gorm:"default:0;check:points >= 0" json:"points"`
	WalletBalance  int       `gorm:"default:0;check:wallet_balance >= 0" json:"walletBalance"`
	IsVerified     bool      `gorm:"default:false" json:"isVerified"`
	TotalUploads   int       `gorm:"default:0" json:"totalUploads"`
	TotalDownloads int       `gorm:"default:0" json:"totalDownloads"`
	Reputation     float64   `gorm:"default:0" json:"reputation"`
	CreatedAt      time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt      time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

// Material merepresentasikan satu materi/resume kuliah yang diupload mahasiswa.
// Author TIDAK disimpan sebagai objek denormalisasi; client me-resolve
// lewat authorId supaya tidak ada dua salinan data user yang bisa beda.
type Material struct {
	ID                string                      `gorm:"primaryKey" json:"id"`
	Title             string                      `gorm:"not null" json:"title"`
	Description       string                      `gorm:"not null" json:"description"`
	Content           string                      `gorm:"type:text;not null" json:"content"`
	MataKuliah        string                      `gorm:"column:mata_kuliah" json:"mataKuliah"`
	SemesterID        string                      `json:"semesterId"`
	Semester          int                         `gorm:"check:semester >= 1 AND semester <= 8" json:"semester"`
	ProgramStudiID    string                      `gorm:"index" json:"programStudiId"`
	AuthorID          string                      `gorm:"index" json:"authorId"`
	Tags              datatypes.JSONSlice[string] `json:"tags"`
	DownloadCount     int                         `gorm:"default:0;check:download_count >= 0" json:"downloadCount"`
	AppreciationCount int                         `gorm:"default:0;check:appreciation_count >= 0" json:"appreciationCount"`
	ViewCount         int                         `gorm:"default:0;check:view_count >= 0" json:"viewCount"`
	FileURL           *string                     `json:"fileUrl,omitempty"`
	PdfURL            *string                     `json:"pdfUrl,omitempty"`
	ThumbnailURL      *string                     `json:"thumbnailUrl,omitempty"`
	Status            string                      `gorm:"type:varchar(20);not null;default:'draft';check:status IN ('draft','published','under_review')" json:"status"`
	AIReviewScore     *float64                    `gorm:"column:ai_review_score" json:"aiReviewScore,omitempty"`
	AIReviewFeedback  *string                     `gorm:"column:ai_review_feedback" json:"aiReviewFeedback,omitempty"`
	AIReviewSummary   *string                     `gorm:"column:ai_review_summary" json:"aiReviewSummary,omitempty"`
	Difficulty        string                      `gorm:"type:varchar(15);not null;default:'beginner';check:difficulty IN ('beginner','intermediate','advanced')" json:"difficulty"`
	EstimatedReadTime int                         `json:"estimatedReadTime"`
	IsOpenSource      bool                        `gorm:"default:false" json:"isOpenSource"`
	License           string                      `gorm:"type:varchar(10);not null;default:'CC-BY';check:license IN ('CC0','CC-BY','CC-BY-SA','MIT')" json:"license"`
	CreatedAt         time.Time                   `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt         time.Time                   `gorm:"autoUpdateTime" json:"updatedAt"`
}

// Comment merepresentasikan komentar pada satu materi.
// Nama kolom resume_id dipertahankan dari skema lama (dulu materi disebut
// resume) supaya kontrak JSON ke frontend tidak berubah.
type Comment struct {
	ID            string    `gorm:"primaryKey" json:"id"`
	Content       string    `gorm:"not null" json:"content"`
	AuthorID      string    `gorm:"not null" json:"authorId"`
	ResumeID      string    `gorm:"column:resume_id;not null;index" json:"resumeId"`
	ParentID      *string   `json:"parentId,omitempty"`
	IsHighlighted bool      `gorm:"default:false" json:"isHighlighted"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"createdAt"`
}

// Tipe apresiasi yang diperbolehkan.
const (
	AppreciationLike      = "like"
	AppreciationHelpful   = "helpful"
	AppreciationExcellent = "excellent"
)

// AppreciationPoints memetakan tipe apresiasi ke reward poin untuk author materi.
var AppreciationPoints = map[string]int{
	AppreciationLike:      5,
	AppreciationHelpful:   10,
	AppreciationExcellent: 20,
}

// Appreciation merepresentasikan reaksi (like/helpful/excellent) user ke materi.
type Appreciation struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	UserID    string    `gorm:"not null;index" json:"userId"`
	ResumeID  string    `gorm:"column:resume_id;not null;index" json:"resumeId"`
	Type      string    `gorm:"type:varchar(10);not null;check:type IN ('like','helpful','excellent')" json:"type"`
	Message   *string   `json:"message,omitempty"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
}

// PointTransaction adalah entri ledger perubahan poin user.
// Ledger ini adalah sumber kebenaran saldo poin; User.Points hanyalah proyeksi.
type PointTransaction struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	UserID    string    `gorm:"not null;index" json:"userId"`
	Type      string    `gorm:"type:varchar(10);not null;check:type IN ('earned','spent','converted')" json:"type"`
	Amount    int       `gorm:"not null" json:"amount"`
	Reason    string    `gorm:"not null" json:"reason"`
	ResumeID  *string   `gorm:"column:resume_id" json:"resumeId,omitempty"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
}

// Category adalah baris rollup denormalisasi untuk navigasi kategori.
// ResumeCount diisi manual lewat endpoint CRUD, tidak disinkronkan
// otomatis dengan tabel materials.
type Category struct {
	ID           string `gorm:"primaryKey" json:"id"`
	Name         string `gorm:"not null" json:"name"`
	Universitas  string `json:"universitas"`
	Fakultas     string `json:"fakultas"`
	ProgramStudi string `json:"programStudi"`
	Angkatan     string `json:"angkatan"`
	Semester     int    `json:"semester"`
	ResumeCount  int    `gorm:"default:0" json:"resumeCount"`
}

// Semester adalah tabel referensi 8 semester perkuliahan.
type Semester struct {
	ID     string `gorm:"primaryKey" json:"id"`
	Number int    `gorm:"not null;check:number >= 1 AND number <= 8" json:"number"`
	Name   string `gorm:"not null" json:"name"`
}
