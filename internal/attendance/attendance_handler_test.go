package attendance_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"hradmin/internal/attendance"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type apiError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type apiEnvelope struct {
	Ok    bool            `json:"ok"`
	Data  json.RawMessage `json:"data"`
	Error *apiError       `json:"error"`
}

func decodeEnvelope(t *testing.T, body []byte) apiEnvelope {
	t.Helper()
	var env apiEnvelope
	err := json.Unmarshal(body, &env)
	assert.NoError(t, err)
	return env
}

type fakeService struct {
	importWorkbookFn func(ctx context.Context, monthYear string, workbook io.Reader) (attendance.ImportResult, error)
	importRecordsFn  func(ctx context.Context, monthYear string, records []attendance.UploadRecordRequest) (attendance.ImportResult, error)
	getAllFn         func(ctx context.Context, q attendance.Query) ([]attendance.AttendanceResponse, error)
	verifyFn         func(ctx context.Context, id, verifierID string) (attendance.AttendanceResponse, error)
}

func (f *fakeService) ImportWorkbook(ctx context.Context, monthYear string, workbook io.Reader) (attendance.ImportResult, error) {
	return f.importWorkbookFn(ctx, monthYear, workbook)
}
func (f *fakeService) ImportRecords(ctx context.Context, monthYear string, records []attendance.UploadRecordRequest) (attendance.ImportResult, error) {
	return f.importRecordsFn(ctx, monthYear, records)
}
func (f *fakeService) GetAll(ctx context.Context, q attendance.Query) ([]attendance.AttendanceResponse, error) {
	return f.getAllFn(ctx, q)
}
func (f *fakeService) Verify(ctx context.Context, id, verifierID string) (attendance.AttendanceResponse, error) {
	return f.verifyFn(ctx, id, verifierID)
}

func multipartUpload(t *testing.T, monthYear string, withFile bool) (*bytes.Buffer, string) {
	t.Helper()
	buf := &bytes.Buffer{}
	mw := multipart.NewWriter(buf)
	if monthYear != "" {
		assert.NoError(t, mw.WriteField("month_year", monthYear))
	}
	if withFile {
		fw, err := mw.CreateFormFile("file", "attendance.xlsx")
		assert.NoError(t, err)
		_, err = fw.Write([]byte("workbook bytes"))
		assert.NoError(t, err)
	}
	assert.NoError(t, mw.Close())
	return buf, mw.FormDataContentType()
}

func TestHandler_UploadExcel(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		svc := &fakeService{
			importWorkbookFn: func(ctx context.Context, monthYear string, workbook io.Reader) (attendance.ImportResult, error) {
				assert.Equal(t, "August 2026", monthYear)
				data, err := io.ReadAll(workbook)
				assert.NoError(t, err)
				assert.Equal(t, "workbook bytes", string(data))
				return attendance.ImportResult{MonthYear: monthYear, TotalProcessed: 2, Successful: 2}, nil
			},
		}

		h := attendance.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		body, contentType := multipartUpload(t, "August 2026", true)
		c.Request = httptest.NewRequest(http.MethodPost, "/attendance/upload-excel", body)
		c.Request.Header.Set("Content-Type", contentType)

		h.UploadExcel(c)

		assert.Equal(t, http.StatusOK, w.Code)
		env := decodeEnvelope(t, w.Body.Bytes())
		assert.True(t, env.Ok)

		var got attendance.ImportResult
		assert.NoError(t, json.Unmarshal(env.Data, &got))
		assert.Equal(t, 2, got.Successful)
	})

	t.Run("negative missing month_year", func(t *testing.T) {
		h := attendance.NewHandler(&fakeService{})
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		body, contentType := multipartUpload(t, "", true)
		c.Request = httptest.NewRequest(http.MethodPost, "/attendance/upload-excel", body)
		c.Request.Header.Set("Content-Type", contentType)

		h.UploadExcel(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		env := decodeEnvelope(t, w.Body.Bytes())
		assert.False(t, env.Ok)
		assert.Equal(t, "Month/Year is required", env.Error.Message)
	})

	t.Run("negative missing file", func(t *testing.T) {
		h := attendance.NewHandler(&fakeService{})
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		body, contentType := multipartUpload(t, "August 2026", false)
		c.Request = httptest.NewRequest(http.MethodPost, "/attendance/upload-excel", body)
		c.Request.Header.Set("Content-Type", contentType)

		h.UploadExcel(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		env := decodeEnvelope(t, w.Body.Bytes())
		assert.Equal(t, "No file uploaded", env.Error.Message)
	})
}

func TestHandler_Upload(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		svc := &fakeService{
			importRecordsFn: func(ctx context.Context, monthYear string, records []attendance.UploadRecordRequest) (attendance.ImportResult, error) {
				assert.Equal(t, "August 2026", monthYear)
				assert.Len(t, records, 1)
				return attendance.ImportResult{MonthYear: monthYear, TotalProcessed: 1, Successful: 1}, nil
			},
		}

		h := attendance.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		body := `{"month_year":"August 2026","records":[{"employee_number":"EMP-0001","days_present":20}]}`
		c.Request = httptest.NewRequest(http.MethodPost, "/attendance/upload", strings.NewReader(body))
		c.Request.Header.Set("Content-Type", "application/json")

		h.Upload(c)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("negative empty records", func(t *testing.T) {
		h := attendance.NewHandler(&fakeService{})
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodPost, "/attendance/upload", strings.NewReader(`{"month_year":"August 2026","records":[]}`))
		c.Request.Header.Set("Content-Type", "application/json")

		h.Upload(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		env := decodeEnvelope(t, w.Body.Bytes())
		assert.False(t, env.Ok)
	})
}

func TestHandler_GetAll(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("employee scoped to own rows", func(t *testing.T) {
		employeeID := uuid.New().String()
		svc := &fakeService{
			getAllFn: func(ctx context.Context, q attendance.Query) ([]attendance.AttendanceResponse, error) {
				assert.Equal(t, employeeID, q.EmployeeID)
				return []attendance.AttendanceResponse{{ID: uuid.NewString()}}, nil
			},
		}

		h := attendance.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/attendance?month_year=August+2026", nil)
		c.Set("role", "employee")
		c.Set("employee_id", employeeID)

		h.GetAll(c)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("hr sees requested filters", func(t *testing.T) {
		svc := &fakeService{
			getAllFn: func(ctx context.Context, q attendance.Query) ([]attendance.AttendanceResponse, error) {
				assert.Empty(t, q.EmployeeID)
				assert.Equal(t, "EMP-0001", q.EmployeeNumber)
				return nil, nil
			},
		}

		h := attendance.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/attendance?employee_number=EMP-0001", nil)
		c.Set("role", "hr")

		h.GetAll(c)

		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestHandler_Verify(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		userID := uuid.New().String()
		rowID := uuid.New().String()
		svc := &fakeService{
			verifyFn: func(ctx context.Context, id, verifierID string) (attendance.AttendanceResponse, error) {
				assert.Equal(t, rowID, id)
				assert.Equal(t, userID, verifierID)
				return attendance.AttendanceResponse{ID: id, VerifiedStatus: attendance.VerifiedStatusVerified}, nil
			},
		}

		h := attendance.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodPut, "/attendance/"+rowID+"/verify", nil)
		c.Params = gin.Params{{Key: "id", Value: rowID}}
		c.Set("user_id", userID)

		h.Verify(c)

		assert.Equal(t, http.StatusOK, w.Code)
	})
}
