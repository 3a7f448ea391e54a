package salary

import (
	"net/http"

	"hradmin/internal/shared/apperror"
	"hradmin/internal/shared/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) Calculate(c *gin.Context) {
	var req CalculateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	result, err := h.service.Calculate(c.Request.Context(), c.GetString("user_id"), req.MonthYear)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, result, nil)
}

func (h *Handler) GetAll(c *gin.Context) {
	q := Query{
		MonthYear:      c.Query("month_year"),
		EmployeeNumber: c.Query("employee_number"),
		Status:         c.Query("status"),
	}

	// employees hanya boleh melihat data miliknya sendiri
	if c.GetString("role") == "employee" {
		q.EmployeeID = c.GetString("employee_id")
	}

	resp, err := h.service.GetAll(c.Request.Context(), q)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Approve(c *gin.Context) {
	resp, err := h.service.Approve(c.Request.Context(), c.Param("id"), c.GetString("user_id"))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) GetSlip(c *gin.Context) {
	var scope string
	if c.GetString("role") == "employee" {
		scope = c.GetString("employee_id")
	}

	resp, err := h.service.GetSlip(c.Request.Context(), c.Param("id"), scope)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}
