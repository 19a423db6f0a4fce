package middleware

import (
	"net/http"
	"strings"

	"bukubersama-backend/utils"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware memvalidasi JWT dari header Authorization (Bearer token)
// dan menyimpan informasi user (userID, nim, role) ke dalam context.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		auth := c.GetHeader("Authorization")
		if auth == "" || !strings.HasPrefix(auth, "Bearer ") {
			c.JSON(http.StatusUnauthorized,
				utils.BuildResponseFailed("Token autentikasi wajib disertakan", utils.CodeAuth))
			c.Abort()
			return
		}

		tokenString := strings.TrimSpace(strings.TrimPrefix(auth, "Bearer "))
		if tokenString == "" {
			c.JSON(http.StatusUnauthorized,
				utils.BuildResponseFailed("Token autentikasi wajib disertakan", utils.CodeAuth))
			c.Abort()
			return
		}

		claims, err := utils.ValidateToken(tokenString)
		if err != nil {
			c.JSON(http.StatusUnauthorized,
				utils.BuildResponseFailed("Token tidak valid atau kedaluwarsa", utils.CodeAuth))
			c.Abort()
			return
		}

		// Inject klaim ke context untuk dipakai di handler
		c.Set("userID", claims.UserID)
		c.Set("nim", claims.NIM)
		c.Set("role", claims.Role)

		c.Next()
	}
}
