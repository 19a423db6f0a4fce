package routes

import (
	"bukubersama-backend/app/service"

	"github.com/gin-gonic/gin"
)

// AuthRoutes mendaftarkan endpoint autentikasi.
func AuthRoutes(r *gin.Engine, userService service.UserService) {
	authGroup := r.Group("/api/v1/auth")
	{
		authGroup.POST("/register", userService.Register)
		authGroup.POST("/login", userService.Login)
	}
}
