package attendance

import (
	"hradmin/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, rdb *redis.Client) {
	attendances := r.Group("/attendance")
	attendances.Use(middleware.AuthMiddleware())
	{
		attendances.GET("", h.GetAll)
		attendances.POST("/upload-excel",
			middleware.RoleMiddleware("admin", "hr"),
			middleware.Idempotency(rdb),
			h.UploadExcel,
		)
		attendances.POST("/upload", middleware.RoleMiddleware("admin", "hr"), h.Upload)
		attendances.PUT("/:id/verify", middleware.RoleMiddleware("admin", "hr"), h.Verify)
	}
}
