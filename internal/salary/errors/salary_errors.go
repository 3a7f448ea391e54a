package salaryerrors

import (
	"net/http"

	"hradmin/internal/shared/apperror"
)

var (
	ErrSalaryNotFound = apperror.New(
		apperror.CodeNotFound,
		"Salary not found",
		http.StatusNotFound,
	)

	ErrAlreadyCompleted = apperror.New(
		apperror.CodeInvalidState,
		"Salary has already been completed",
		http.StatusConflict,
	)
)
