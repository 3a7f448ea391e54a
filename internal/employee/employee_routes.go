package employee

import (
	"hradmin/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler) {
	employees := r.Group("/employees")
	employees.Use(middleware.AuthMiddleware())
	{
		employees.GET("", h.GetAll)
		employees.GET("/options", h.GetOptions)
		employees.GET("/:id", h.GetByID)
		employees.POST("", middleware.RoleMiddleware("admin", "hr"), h.Create)
		employees.PUT("/:id", middleware.RoleMiddleware("admin", "hr"), h.Update)
		employees.DELETE("/:id", middleware.RoleMiddleware("admin"), h.Delete)
	}
}
