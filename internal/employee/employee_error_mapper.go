package employee

import (
	"errors"
	"strings"

	employeeerrors "hradmin/internal/employee/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return employeeerrors.ErrEmployeeNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		switch {
		case strings.Contains(pgErr.ConstraintName, "employee_number"):
			return employeeerrors.ErrEmployeeNumberAlreadyExists
		case strings.Contains(pgErr.ConstraintName, "email"):
			return employeeerrors.ErrEmailAlreadyExists
		}
	}

	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "duplicate key value") {
		if strings.Contains(errMsg, "employee_number") {
			return employeeerrors.ErrEmployeeNumberAlreadyExists
		}
		if strings.Contains(errMsg, "email") {
			return employeeerrors.ErrEmailAlreadyExists
		}
	}

	return err
}
