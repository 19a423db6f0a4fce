package routes

import (
	"bukubersama-backend/app/service"
	"bukubersama-backend/middleware"

	"github.com/gin-gonic/gin"
)

// WalletRoutes mendaftarkan endpoint dompet. Seluruh grup di belakang
// AuthMiddleware: identitas user diambil dari klaim JWT, bukan dari body.
func WalletRoutes(r *gin.Engine, walletService service.WalletService) {
	walletGroup := r.Group("/api/v1/wallet")
	walletGroup.Use(middleware.AuthMiddleware())
	{
		walletGroup.GET("", walletService.GetWallet)
		walletGroup.POST("/convert", walletService.Convert)
	}
}
