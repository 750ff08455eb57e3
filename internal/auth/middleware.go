package auth

import (
	"net/http"

	"gpu_queue/internal/response"

	"github.com/gin-gonic/gin"
)

// AdminOnly пропускает запрос дальше только с заголовком X-User-Role: admin.
// Роль приходит от фронтенда после авторизации, как того требует контракт
// админ-панели.
func AdminOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetHeader("X-User-Role") != "admin" {
			c.JSON(http.StatusForbidden, response.ErrorResponse{Error: "Admin access required"})
			c.Abort()
			return
		}
		c.Next()
	}
}
