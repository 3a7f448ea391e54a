package attendance

import (
	"net/http"

	attendanceerrors "hradmin/internal/attendance/errors"
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

// UploadExcel receives the raw time clock export as multipart form data with
// a month_year field naming the period.
func (h *Handler) UploadExcel(c *gin.Context) {
	monthYear := c.PostForm("month_year")
	if monthYear == "" {
		writeServiceError(c, attendanceerrors.ErrMonthYearRequired)
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		writeServiceError(c, attendanceerrors.ErrFileRequired)
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		writeServiceError(c, attendanceerrors.ErrUnreadableWorkbook)
		return
	}
	defer file.Close()

	result, err := h.service.ImportWorkbook(c.Request.Context(), monthYear, file)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, result, nil)
}

func (h *Handler) Upload(c *gin.Context) {
	var req UploadRecordsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Input tidak valid", err.Error())
		return
	}

	result, err := h.service.ImportRecords(c.Request.Context(), req.MonthYear, req.Records)
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
		VerifiedStatus: c.Query("status"),
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

func (h *Handler) Verify(c *gin.Context) {
	resp, err := h.service.Verify(c.Request.Context(), c.Param("id"), c.GetString("user_id"))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}
