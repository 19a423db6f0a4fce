package service

import (
	"testing"

	"bukubersama-backend/app/model"

	"github.com/stretchr/testify/assert"
)

func TestTotalDownloads(t *testing.T) {
	materials := []model.Material{
		{DownloadCount: 120},
		{DownloadCount: 300},
		{DownloadCount: 0},
	}
	assert.Equal(t, 420, TotalDownloads(materials))
	assert.Equal(t, 0, TotalDownloads(nil))
}

func TestAverageRating(t *testing.T) {
	tests := []struct {
		name      string
		materials []model.Material
		want      float64
	}{
		{name: "koleksi kosong", materials: nil, want: 0},
		{
			name: "rata-rata dibulatkan 1 desimal",
			materials: []model.Material{
				{AIReviewScore: ptrFloat(4.5)},
				{AIReviewScore: ptrFloat(4.4)},
			},
			want: 4.5, // (4.5+4.4)/2 = 4.45 -> 4.5
		},
		{
			name: "skor absen dihitung 0",
			materials: []model.Material{
				{AIReviewScore: ptrFloat(4.0)},
				{},
			},
			want: 2.0,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, AverageRating(tt.materials), 1e-9)
		})
	}
}

func TestPerSemesterAverage(t *testing.T) {
	materials := []model.Material{
		{Semester: 1, AIReviewScore: ptrFloat(4.0)},
		{Semester: 1, AIReviewScore: ptrFloat(3.0)},
		{Semester: 3, AIReviewScore: ptrFloat(5.0)},
		{Semester: 5}, // tanpa skor: dihitung 0
	}

	got := PerSemesterAverage(materials)

	assert.InDelta(t, 3.5, got[1], 1e-9)
	assert.InDelta(t, 5.0, got[3], 1e-9)
	assert.InDelta(t, 0.0, got[5], 1e-9)

	// semester tanpa materi tidak muncul sama sekali
	_, ok := got[2]
	assert.False(t, ok)
	assert.Len(t, got, 3)
}

func TestPerSemesterAverageEmpty(t *testing.T) {
	assert.Empty(t, PerSemesterAverage(nil))
}

func TestRatingDistribution(t *testing.T) {
	materials := []model.Material{
		{AIReviewScore: ptrFloat(4.6)}, // -> 5
		{AIReviewScore: ptrFloat(4.8)}, // -> 5
		{AIReviewScore: ptrFloat(3.2)}, // -> 3
		{},                             // tanpa skor: tidak masuk sebaran
	}

	got := RatingDistribution(materials)

	assert.Equal(t, map[int]int{1: 0, 2: 0, 3: 1, 4: 0, 5: 2}, got)
}

func TestRatingDistributionAlwaysFiveKeys(t *testing.T) {
	got := RatingDistribution(nil)
	assert.Equal(t, map[int]int{1: 0, 2: 0, 3: 0, 4: 0, 5: 0}, got)
}
