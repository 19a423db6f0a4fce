package service

import (
	"math"

	"bukubersama-backend/app/model"
)

// Statistik turunan: fungsi murni atas koleksi materi, dihitung ulang pada
// setiap pemanggilan. Materi tanpa skor review dihitung 0 di rata-rata
// keseluruhan, sama seperti perhitungan lama di client.

func round1(x float64) float64 {
	return math.Round(x*10) / 10
}

// TotalDownloads menjumlahkan downloadCount seluruh materi.
func TotalDownloads(materials []model.Material) int {
	total := 0
	for _, m := range materials {
		total += m.DownloadCount
	}
	return total
}

// AverageRating menghitung rata-rata skor review (skor absen = 0),
// dibulatkan 1 desimal. Koleksi kosong menghasilkan 0, bukan NaN.
func AverageRating(materials []model.Material) float64 {
	if len(materials) == 0 {
		return 0
	}
	sum := 0.0
	for _, m := range materials {
		sum += reviewScore(m)
	}
	return round1(sum / float64(len(materials)))
}

// PerSemesterAverage menghitung rata-rata skor review per semester.
// Hanya semester yang punya minimal satu materi yang muncul di hasil;
// bucket kosong tidak pernah menyebabkan pembagian nol.
func PerSemesterAverage(materials []model.Material) map[int]float64 {
	sums := make(map[int]float64)
	counts := make(map[int]int)
	for _, m := range materials {
		sums[m.Semester] += reviewScore(m)
		counts[m.Semester]++
	}
	out := make(map[int]float64, len(counts))
	for sem, n := range counts {
		out[sem] = round1(sums[sem] / float64(n))
	}
	return out
}

// RatingDistribution menghitung sebaran skor review yang dibulatkan ke
// bintang 1-5. Kelima key selalu ada walaupun hitungannya nol; materi tanpa
// skor atau dengan skor di luar 1-5 tidak masuk sebaran.
func RatingDistribution(materials []model.Material) map[int]int {
	dist := map[int]int{1: 0, 2: 0, 3: 0, 4: 0, 5: 0}
	for _, m := range materials {
		if m.AIReviewScore == nil {
			continue
		}
		star := int(math.Round(*m.AIReviewScore))
		if _, ok := dist[star]; ok {
			dist[star]++
		}
	}
	return dist
}
