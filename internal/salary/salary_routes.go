package salary

import (
	"hradmin/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, rdb *redis.Client) {
	salaries := r.Group("/salaries")
	salaries.Use(middleware.AuthMiddleware())
	{
		salaries.GET("", h.GetAll)
		salaries.GET("/:id/slip", h.GetSlip)
		salaries.POST("/calculate",
			middleware.RoleMiddleware("admin", "hr"),
			middleware.Idempotency(rdb),
			h.Calculate,
		)
		salaries.PUT("/:id/approve", middleware.RoleMiddleware("admin"), h.Approve)
	}
}
