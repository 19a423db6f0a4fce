package routes

import (
	"bukubersama-backend/app/service"

	"github.com/gin-gonic/gin"
)

// CatalogRoutes mendaftarkan endpoint katalog publik:
// filter+sort materi, pencarian tiga tingkat, dan statistik turunan.
func CatalogRoutes(r *gin.Engine, catalogService service.CatalogService) {
	catalogGroup := r.Group("/api/v1/catalog")
	{
		catalogGroup.GET("/materials", catalogService.GetMaterials)
		catalogGroup.GET("/search", catalogService.Search)
		catalogGroup.GET("/stats", catalogService.GetStats)
	}
}
