package database

import (
	"time"

	"bukubersama-backend/app/model"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// RunSeeders menjalankan seluruh seeder yang dibutuhkan.
// Panggil ini sekali di main.go setelah InitDB berhasil.
// Semua seeder idempotent: skip kalau tabelnya sudah terisi.
func RunSeeders(db *gorm.DB, log *zap.SugaredLogger) {
	SeedUniversities(db, log)
	SeedSemesters(db, log)
	SeedUsers(db, log)
	SeedMaterials(db, log)
}

// ===============================
//  SEED UNIVERSITIES (tree lengkap: universitas -> fakultas -> prodi)
// ===============================

func SeedUniversities(db *gorm.DB, log *zap.SugaredLogger) {
	var count int64
	db.Model(&model.University{}).Count(&count)
	if count > 0 {
		log.Info("[SEEDER] Universitas sudah ada, skip seeding universities.")
		return
	}

	universities := []model.University{
		{ID: "upi", Name: "Universitas Pendidikan Indonesia", Location: "Bandung, Jawa Barat", Type: "negeri"},
		{ID: "itb", Name: "Institut Teknologi Bandung", Location: "Bandung, Jawa Barat", Type: "negeri"},
		{ID: "ugm", Name: "Universitas Gadjah Mada", Location: "Yogyakarta", Type: "negeri"},
	}
	if err := db.Create(&universities).Error; err != nil {
		log.Fatalf("[SEEDER] Gagal seed universities: %v", err)
	}

	faculties := []model.Faculty{
		{ID: "fptk-upi", Name: "Fakultas Pendidikan Teknologi dan Kejuruan", UniversityID: "upi"},
		{ID: "stei-itb", Name: "Sekolah Teknik Elektro dan Informatika", UniversityID: "itb"},
		{ID: "fmipa-ugm", Name: "Fakultas MIPA", UniversityID: "ugm"},
	}
	if err := db.Create(&faculties).Error; err != nil {
		log.Fatalf("[SEEDER] Gagal seed faculties: %v", err)
	}

	programs := []model.StudyProgram{
		{ID: "rpl-upi", Name: "Rekayasa Perangkat Lunak", FacultyID: "fptk-upi", Field: "Teknologi Informasi", Degree: "S1",
			Description: "Program studi yang mempelajari rekayasa perangkat lunak dan pengembangan aplikasi."},
		{ID: "informatika-itb", Name: "Teknik Informatika", FacultyID: "stei-itb", Field: "Teknologi Informasi", Degree: "S1",
			Description: "Program studi informatika di ITB."},
		{ID: "elektro-itb", Name: "Teknik Elektro", FacultyID: "stei-itb", Field: "Teknik", Degree: "S1",
			Description: "Program studi elektro di ITB."},
		{ID: "matematika-ugm", Name: "Matematika", FacultyID: "fmipa-ugm", Field: "Sains", Degree: "S1",
			Description: "Program studi matematika di UGM."},
		{ID: "kimia-ugm", Name: "Kimia", FacultyID: "fmipa-ugm", Field: "Sains", Degree: "S1",
			Description: "Program studi kimia di UGM."},
	}
	if err := db.Create(&programs).Error; err != nil {
		log.Fatalf("[SEEDER] Gagal seed study programs: %v", err)
	}

	log.Info("[SEEDER] Berhasil seed 3 universitas, 3 fakultas, 5 prodi")
}

// ===============================
//  SEED SEMESTERS (tabel referensi semester 1-8)
// ===============================

func SeedSemesters(db *gorm.DB, log *zap.SugaredLogger) {
	var count int64
	db.Model(&model.Semester{}).Count(&count)
	if count > 0 {
		log.Info("[SEEDER] Semester sudah ada, skip seeding semesters.")
		return
	}

	names := []string{"Satu", "Dua", "Tiga", "Empat", "Lima", "Enam", "Tujuh", "Delapan"}
	semesters := make([]model.Semester, 0, 8)
	for i, n := range names {
		semesters = append(semesters, model.Semester{
			ID:     "sem-" + string(rune('1'+i)),
			Number: i + 1,
			Name:   "Semester " + n,
		})
	}
	if err := db.Create(&semesters).Error; err != nil {
		log.Fatalf("[SEEDER] Gagal seed semesters: %v", err)
	}

	log.Info("[SEEDER] Berhasil seed 8 semester")
}

// ===============================
//  SEED USERS (4 mahasiswa awal)
// ===============================

func SeedUsers(db *gorm.DB, log *zap.SugaredLogger) {
	var count int64
	db.Model(&model.User{}).Count(&count)
	if count > 0 {
		log.Info("[SEEDER] User sudah ada, skip seeding users.")
		return
	}

	hash, _ := bcrypt.GenerateFromPassword([]byte("123123"), bcrypt.DefaultCost)
	joined := time.Date(2021, 8, 15, 0, 0, 0, 0, time.Local)

	users := []model.User{
		{
			ID: "1", Name: "Ahmad Rizki Pratama", Username: "ahmadrizki", Email: "ahmad.rizki@ui.ac.id",
			NIM: "2106123456", Role: "mahasiswa", PasswordHash: string(hash),
			Fakultas: "Fakultas Pendidikan Teknologi dan Kejuruan", ProgramStudi: "Rekayasa Perangkat Lunak",
			Universitas: "Universitas Pendidikan Indonesia", Angkatan: "2021", Semester: 6,
			Points: 250, WalletBalance: 50000, IsVerified: true,
			TotalUploads: 15, TotalDownloads: 1250, Reputation: 4.5, CreatedAt: joined,
		},
		{
			ID: "2", Name: "Sari Dewi Lestari", Username: "saridewi", Email: "sari.dewi@ui.ac.id",
			NIM: "2106123457", Role: "mahasiswa", PasswordHash: string(hash),
			Fakultas: "Fakultas Pendidikan Teknologi dan Kejuruan", ProgramStudi: "Rekayasa Perangkat Lunak",
			Universitas: "Universitas Pendidikan Indonesia", Angkatan: "2021", Semester: 6,
			Points: 180, WalletBalance: 25000, IsVerified: true,
			TotalUploads: 8, TotalDownloads: 890, Reputation: 4.2, CreatedAt: joined,
		},
		{
			ID: "3", Name: "Budi Santoso", Username: "budiugm", Email: "budi.santoso@ugm.ac.id",
			NIM: "2106123458", Role: "mahasiswa", PasswordHash: string(hash),
			Fakultas: "Fakultas MIPA", ProgramStudi: "Matematika",
			Universitas: "Universitas Gadjah Mada", Angkatan: "2021", Semester: 4,
			Points: 120, WalletBalance: 20000, IsVerified: true,
			TotalUploads: 5, TotalDownloads: 300, Reputation: 4.0, CreatedAt: joined,
		},
		{
			ID: "4", Name: "Sinta Dewi", Username: "sintaitb", Email: "sinta.dewi@itb.ac.id",
			NIM: "2106123459", Role: "mahasiswa", PasswordHash: string(hash),
			Fakultas: "Sekolah Teknik Elektro dan Informatika", ProgramStudi: "Teknik Informatika",
			Universitas: "Institut Teknologi Bandung", Angkatan: "2021", Semester: 4,
			Points: 110, WalletBalance: 15000, IsVerified: true,
			TotalUploads: 3, TotalDownloads: 200, Reputation: 4.1, CreatedAt: joined,
		},
	}

	if err := db.Create(&users).Error; err != nil {
		log.Fatalf("[SEEDER] Gagal seed users: %v", err)
	}

	log.Info("[SEEDER] Berhasil seed 4 user mahasiswa, password: 123123")
}

// ===============================
//  SEED MATERIALS
// ===============================

// seedMaterial membungkus pembuatan materi published supaya daftar seed
// di bawah tidak mengulang field yang sama terus-menerus.
// authorId diisi langsung sesuai prodi; tidak ada koreksi author belakangan.
func seedMaterial(id, title, desc, content, mataKuliah string, semester int, prodiID, authorID string,
	tags []string, downloads, appreciations, views int, pdfURL string, score float64, summary string,
	difficulty string, readTime int, license string, created string) model.Material {

	createdAt, _ := time.Parse("2006-01-02", created)
	s := score
	sum := summary
	pdf := pdfURL
	return model.Material{
		ID: id, Title: title, Description: desc, Content: content, MataKuliah: mataKuliah,
		SemesterID: "sem-" + string(rune('0'+semester)), Semester: semester,
		ProgramStudiID: prodiID, AuthorID: authorID, Tags: datatypes.NewJSONSlice(tags),
		DownloadCount: downloads, AppreciationCount: appreciations, ViewCount: views,
		PdfURL: &pdf, Status: "published", AIReviewScore: &s, AIReviewSummary: &sum,
		Difficulty: difficulty, EstimatedReadTime: readTime, IsOpenSource: true, License: license,
		CreatedAt: createdAt, UpdatedAt: createdAt,
	}
}

func SeedMaterials(db *gorm.DB, log *zap.SugaredLogger) {
	var count int64
	db.Model(&model.Material{}).Count(&count)
	if count > 0 {
		log.Info("[SEEDER] Materi sudah ada, skip seeding materials.")
		return
	}

	materials := []model.Material{
		// Semester 1 (Rekayasa Perangkat Lunak UPI)
		seedMaterial("mat-1-1", "Pengantar Teknologi Informasi", "Konsep dasar teknologi informasi dan komputer",
			"Materi lengkap tentang pengantar TI...", "Pengantar Teknologi Informasi", 1, "rpl-upi", "1",
			[]string{"teknologi-informasi", "dasar", "komputer"}, 450, 89, 1200, "/mock-pdf-url",
			4.3, "Materi pengantar yang komprehensif", "beginner", 20, "CC-BY", "2024-01-15"),
		seedMaterial("mat-1-2", "Matematika Diskrit", "Logika matematika dan teori himpunan",
			"Materi matematika diskrit...", "Matematika Diskrit", 1, "rpl-upi", "1",
			[]string{"matematika", "logika", "himpunan"}, 380, 67, 980, "/mock-pdf-url-2",
			4.1, "Penjelasan logika yang sistematis", "intermediate", 35, "CC-BY", "2024-01-10"),
		seedMaterial("mat-1-3", "Algoritma dan Pemrograman Dasar", "Konsep algoritma dan pemrograman dengan Python",
			"Materi algoritma dasar...", "Algoritma dan Pemrograman Dasar", 1, "rpl-upi", "2",
			[]string{"algoritma", "python", "programming"}, 620, 124, 1560, "/mock-pdf-url-3",
			4.6, "Tutorial programming yang sangat baik", "beginner", 40, "MIT", "2024-01-20"),
		seedMaterial("mat-1-4", "Sistem Digital", "Konsep sistem digital dan logika Boolean",
			"Materi sistem digital...", "Sistem Digital", 1, "rpl-upi", "1",
			[]string{"digital", "boolean", "logika"}, 290, 45, 720, "/mock-pdf-url-4",
			4.0, "Penjelasan sistem digital yang jelas", "intermediate", 30, "CC-BY", "2024-01-12"),
		seedMaterial("mat-1-5", "Bahasa Inggris Teknik", "Bahasa Inggris untuk bidang teknik informatika",
			"Materi bahasa Inggris teknik...", "Bahasa Inggris Teknik", 1, "rpl-upi", "2",
			[]string{"english", "technical", "communication"}, 340, 56, 890, "/mock-pdf-url-5",
			3.9, "Materi bahasa Inggris yang praktis", "beginner", 25, "CC-BY", "2024-01-08"),

		// Semester 2
		seedMaterial("mat-2-1", "Struktur Data", "Array, linked list, stack, queue, dan tree",
			"Materi struktur data...", "Struktur Data", 2, "rpl-upi", "1",
			[]string{"struktur-data", "array", "tree"}, 580, 98, 1450, "/mock-pdf-url-6",
			4.5, "Penjelasan struktur data yang komprehensif", "intermediate", 45, "CC-BY", "2024-02-15"),
		seedMaterial("mat-2-2", "Pemrograman Berorientasi Objek", "Konsep OOP dengan Java",
			"Materi OOP...", "Pemrograman Berorientasi Objek", 2, "rpl-upi", "2",
			[]string{"oop", "java", "object-oriented"}, 720, 134, 1890, "/mock-pdf-url-7",
			4.7, "Tutorial OOP yang sangat detail", "intermediate", 50, "MIT", "2024-02-20"),
		seedMaterial("mat-2-3", "Basis Data", "Konsep database dan SQL",
			"Materi basis data...", "Basis Data", 2, "rpl-upi", "1",
			[]string{"database", "sql", "relational"}, 650, 112, 1670, "/mock-pdf-url-8",
			4.4, "Materi database yang praktis", "intermediate", 40, "CC-BY", "2024-02-10"),
		seedMaterial("mat-2-4", "Statistika dan Probabilitas", "Konsep statistika untuk informatika",
			"Materi statistika...", "Statistika dan Probabilitas", 2, "rpl-upi", "2",
			[]string{"statistika", "probabilitas", "data"}, 420, 78, 1120, "/mock-pdf-url-9",
			4.2, "Penjelasan statistika yang mudah dipahami", "intermediate", 35, "CC-BY", "2024-02-05"),
		seedMaterial("mat-2-5", "Sistem Operasi", "Konsep dasar sistem operasi",
			"Materi sistem operasi...", "Sistem Operasi", 2, "rpl-upi", "1",
			[]string{"os", "operating-system", "kernel"}, 510, 89, 1340, "/mock-pdf-url-10",
			4.3, "Materi sistem operasi yang lengkap", "intermediate", 42, "CC-BY", "2024-02-25"),

		// Semester 3
		seedMaterial("mat-3-1", "Algoritma dan Kompleksitas", "Analisis algoritma dan kompleksitas waktu",
			"Materi algoritma lanjut...", "Algoritma dan Kompleksitas", 3, "rpl-upi", "1",
			[]string{"algoritma", "kompleksitas", "big-o"}, 680, 145, 1780, "/mock-pdf-url-11",
			4.8, "Analisis algoritma yang sangat mendalam", "advanced", 55, "MIT", "2024-03-15"),

		// Prodi lain (ITB dan UGM)
		seedMaterial("mat-itb-1", "Dasar Pemrograman ITB", "Materi dasar pemrograman dan algoritma untuk mahasiswa ITB",
			"Resume materi dasar pemrograman di ITB...", "Dasar Pemrograman", 1, "informatika-itb", "4",
			[]string{"pemrograman", "itb", "algoritma"}, 100, 10, 200, "/mock-pdf-itb-1",
			4.0, "Materi dasar yang baik untuk pemula", "beginner", 30, "CC-BY", "2024-03-01"),
		seedMaterial("mat-ugm-1", "Aljabar Linear", "Materi aljabar linear untuk mahasiswa UGM",
			"Resume materi aljabar linear di UGM...", "Aljabar Linear", 2, "matematika-ugm", "3",
			[]string{"aljabar", "ugm", "matematika"}, 80, 8, 150, "/mock-pdf-ugm-1",
			4.2, "Materi aljabar linear yang jelas", "intermediate", 40, "CC-BY", "2024-03-02"),
	}

	if err := db.Create(&materials).Error; err != nil {
		log.Fatalf("[SEEDER] Gagal seed materials: %v", err)
	}

	log.Infof("[SEEDER] Berhasil seed %d materi", len(materials))
}
