// Package metrics mengekspos counter dan histogram Prometheus untuk
// memantau trafik API. Di-scrape lewat endpoint /metrics.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// HTTPRequestsTotal menghitung request per method+path+status.
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bukubersama_http_requests_total",
			Help: "Jumlah total request HTTP",
		},
		[]string{"method", "path", "status"},
	)

	// HTTPRequestDuration mengukur durasi request per method+path.
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "bukubersama_http_request_duration_seconds",
			Help:    "Durasi request HTTP dalam detik",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	// MaterialUploadsTotal menghitung materi yang berhasil diupload.
	MaterialUploadsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "bukubersama_material_uploads_total",
			Help: "Jumlah materi yang berhasil diupload",
		},
	)

	// PointConversionsTotal menghitung konversi poin yang berhasil.
	PointConversionsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "bukubersama_point_conversions_total",
			Help: "Jumlah konversi poin ke saldo yang berhasil",
		},
	)
)

// Handler mengembalikan handler HTTP untuk endpoint /metrics.
func Handler() http.Handler {
	return promhttp.Handler()
}
