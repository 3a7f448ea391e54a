package leave

import (
	"hradmin/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler) {
	leaves := r.Group("/leaves")
	leaves.Use(middleware.AuthMiddleware())
	{
		leaves.POST("", h.Create)
		leaves.GET("", h.GetAll)
		leaves.PUT("/:id/review", middleware.RoleMiddleware("admin", "hr"), h.Review)
	}
}
