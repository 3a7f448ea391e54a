package attendanceerrors

import (
	"net/http"

	"hradmin/internal/shared/apperror"
)

var (
	ErrMonthYearRequired = apperror.New(
		apperror.CodeInvalidInput,
		"Month/Year is required",
		http.StatusBadRequest,
	)

	ErrFileRequired = apperror.New(
		apperror.CodeInvalidInput,
		"No file uploaded",
		http.StatusBadRequest,
	)

	ErrUnreadableWorkbook = apperror.New(
		apperror.CodeInvalidInput,
		"Uploaded file is not a readable workbook",
		http.StatusBadRequest,
	)

	ErrHeaderNotFound = apperror.New(
		apperror.CodeInvalidInput,
		"Attendance sheet not recognized: date header row not found",
		http.StatusBadRequest,
	)

	ErrAttendanceNotFound = apperror.New(
		apperror.CodeNotFound,
		"Attendance not found",
		http.StatusNotFound,
	)
)
