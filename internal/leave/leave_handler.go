package leave

import (
	"net/http"

	leaveerrors "hradmin/internal/leave/errors"
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

// Create files a leave request. Employees always file for themselves, HR and
// admins may file on behalf of an employee via employee_id in the body.
func (h *Handler) Create(c *gin.Context) {
	var req CreateLeaveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	employeeID := req.EmployeeID
	if c.GetString("role") == "employee" || employeeID == "" {
		employeeID = c.GetString("employee_id")
	}
	if employeeID == "" {
		writeServiceError(c, leaveerrors.ErrInvalidEmployeeID)
		return
	}

	resp, err := h.service.Create(c.Request.Context(), employeeID, req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, resp, nil)
}

func (h *Handler) GetAll(c *gin.Context) {
	q := Query{
		Status:    c.Query("status"),
		LeaveType: c.Query("leave_type"),
	}

	// employees hanya boleh melihat data miliknya sendiri
	if c.GetString("role") == "employee" {
		q.EmployeeID = c.GetString("employee_id")
	} else {
		q.EmployeeID = c.Query("employee_id")
	}

	resp, err := h.service.GetAll(c.Request.Context(), q)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Review(c *gin.Context) {
	var req ReviewLeaveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	resp, err := h.service.Review(c.Request.Context(), c.Param("id"), c.GetString("user_id"), req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}
