package audit

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"hradmin/internal/middleware"
	"hradmin/internal/shared/response"

	"github.com/gin-gonic/gin"
)

type LogResponse struct {
	ID         string `json:"id"`
	UserID     string `json:"user_id,omitempty"`
	Action     string `json:"action"`
	Resource   string `json:"resource"`
	ResourceID string `json:"resource_id,omitempty"`
	Details    any    `json:"details,omitempty"`
	CreatedAt  string `json:"created_at"`
}

type Handler struct {
	repo Repository
}

func NewHandler(repo Repository) *Handler {
	return &Handler{repo: repo}
}

func (h *Handler) GetAll(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "100"))

	rows, err := h.repo.FindAll(c.Request.Context(), c.Query("action"), limit)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "An unexpected error occurred", nil)
		return
	}

	res := make([]LogResponse, len(rows))
	for i, row := range rows {
		entry := LogResponse{
			ID:         row.ID.String(),
			Action:     row.Action,
			Resource:   row.Resource,
			ResourceID: row.ResourceID,
			CreatedAt:  row.CreatedAt.Format(time.RFC3339),
		}
		if row.UserID != nil {
			entry.UserID = row.UserID.String()
		}
		if len(row.Details) > 0 {
			var details any
			if json.Unmarshal(row.Details, &details) == nil {
				entry.Details = details
			}
		}
		res[i] = entry
	}

	response.Success(c, http.StatusOK, res, nil)
}

func RegisterRoutes(r *gin.RouterGroup, h *Handler) {
	auditGroup := r.Group("/audit")
	auditGroup.Use(middleware.AuthMiddleware(), middleware.RoleMiddleware("admin"))
	{
		auditGroup.GET("", h.GetAll)
	}
}
