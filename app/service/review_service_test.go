package service

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHeuristicReviewer(t *testing.T) {
	reviewer := NewHeuristicReviewer()

	shortContent := "Materi singkat tentang limit."
	longContent := strings.Repeat("kata ", 600)
	veryLongContent := strings.Repeat("kata ", 1200)

	tests := []struct {
		name           string
		input          ReviewInput
		wantScore      float64
		wantDifficulty string
		wantReadTime   int
	}{
		{
			name:           "konten pendek tanpa tag",
			input:          ReviewInput{Title: "Limit", Content: shortContent},
			wantScore:      3.5,
			wantDifficulty: "beginner",
			wantReadTime:   5,
		},
		{
			name: "konten panjang dengan tag dan deskripsi lengkap",
			input: ReviewInput{
				Title:       "Algoritma",
				Description: strings.Repeat("deskripsi panjang ", 5),
				Content:     longContent,
				Tags:        []string{"algoritma", "sorting", "kompleksitas"},
			},
			wantScore:      5, // 3.5+0.5+0.5+0.3+0.2 di-cap ke 5
			wantDifficulty: "intermediate",
			wantReadTime:   5, // 600 kata tapi konten 600/200=3 -> minimum 5
		},
		{
			name:           "konten sangat panjang",
			input:          ReviewInput{Title: "Graph", Content: veryLongContent},
			wantScore:      4.5,
			wantDifficulty: "advanced",
			wantReadTime:   6, // 1200 kata / 200 kata per menit
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := reviewer.Review(context.Background(), tt.input)
			require.NoError(t, err)

			assert.InDelta(t, tt.wantScore, got.Score, 1e-9)
			assert.Equal(t, tt.wantDifficulty, got.Difficulty)
			assert.Equal(t, tt.wantReadTime, got.EstimatedReadTime)
			assert.NotEmpty(t, got.Strengths)
			assert.NotEmpty(t, got.Improvements)
			assert.Contains(t, got.Summary, tt.input.Title)
		})
	}
}

func TestHeuristicReviewerDeterministic(t *testing.T) {
	reviewer := NewHeuristicReviewer()
	input := ReviewInput{
		Title:       "Struktur Data",
		Description: "Pengantar struktur data untuk semester dua",
		Content:     strings.Repeat("materi ", 200),
		Tags:        []string{"struktur-data", "array", "linked-list"},
	}

	first, err := reviewer.Review(context.Background(), input)
	require.NoError(t, err)
	second, err := reviewer.Review(context.Background(), input)
	require.NoError(t, err)

	assert.Equal(t, first.Score, second.Score)
	assert.Equal(t, first.Difficulty, second.Difficulty)
	assert.Equal(t, first.Strengths, second.Strengths)
	assert.Equal(t, first.Improvements, second.Improvements)
}

func TestHeuristicReviewerTagFeedback(t *testing.T) {
	reviewer := NewHeuristicReviewer()

	sparse, err := reviewer.Review(context.Background(), ReviewInput{Title: "X", Content: "isi"})
	require.NoError(t, err)
	assert.Contains(t, sparse.Improvements, "Lengkapi tag supaya materi mudah ditemukan")

	tagged, err := reviewer.Review(context.Background(), ReviewInput{
		Title:   "X",
		Content: "isi",
		Tags:    []string{"a", "b", "c"},
	})
	require.NoError(t, err)
	assert.Contains(t, tagged.Strengths, "Penandaan topik yang lengkap")
}
