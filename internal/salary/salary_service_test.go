package salary_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"hradmin/internal/attendance"
	"hradmin/internal/salary"
	salaryerrors "hradmin/internal/salary/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

type fakeSalaryRepository struct {
	upsertFn   func(ctx context.Context, s *salary.Salary) error
	findAllFn  func(ctx context.Context, q salary.Query) ([]salary.Salary, error)
	findByIDFn func(ctx context.Context, id string) (*salary.Salary, error)
	updateFn   func(ctx context.Context, s *salary.Salary) error
}

func (f *fakeSalaryRepository) WithTx(tx *sql.Tx) salary.Repository { return f }

func (f *fakeSalaryRepository) Upsert(ctx context.Context, s *salary.Salary) error {
	if f.upsertFn != nil {
		return f.upsertFn(ctx, s)
	}
	return nil
}

func (f *fakeSalaryRepository) FindAll(ctx context.Context, q salary.Query) ([]salary.Salary, error) {
	if f.findAllFn != nil {
		return f.findAllFn(ctx, q)
	}
	return nil, nil
}

func (f *fakeSalaryRepository) FindByID(ctx context.Context, id string) (*salary.Salary, error) {
	if f.findByIDFn != nil {
		return f.findByIDFn(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeSalaryRepository) Update(ctx context.Context, s *salary.Salary) error {
	if f.updateFn != nil {
		return f.updateFn(ctx, s)
	}
	return nil
}

type fakeAttendanceRepository struct {
	findByMonthFn func(ctx context.Context, monthYear string) ([]attendance.MonthlyAttendance, error)
}

func (f *fakeAttendanceRepository) WithTx(tx *sql.Tx) attendance.Repository { return f }
func (f *fakeAttendanceRepository) Upsert(ctx context.Context, a *attendance.MonthlyAttendance) error {
	return nil
}
func (f *fakeAttendanceRepository) FindAll(ctx context.Context, q attendance.Query) ([]attendance.MonthlyAttendance, error) {
	return nil, nil
}
func (f *fakeAttendanceRepository) FindByMonth(ctx context.Context, monthYear string) ([]attendance.MonthlyAttendance, error) {
	if f.findByMonthFn != nil {
		return f.findByMonthFn(ctx, monthYear)
	}
	return nil, nil
}
func (f *fakeAttendanceRepository) FindByID(ctx context.Context, id string) (*attendance.MonthlyAttendance, error) {
	return nil, gorm.ErrRecordNotFound
}
func (f *fakeAttendanceRepository) Update(ctx context.Context, a *attendance.MonthlyAttendance) error {
	return nil
}

func monthlySummary(number string, base, present, leave, half int) attendance.MonthlyAttendance {
	id := uuid.New()
	return attendance.MonthlyAttendance{
		ID:             uuid.New(),
		EmployeeID:     id,
		MonthYear:      "August 2026",
		EmployeeNumber: number,
		DaysPresent:    present,
		DaysLeave:      leave,
		HalfDays:       half,
		Employee: &attendance.EmployeeRef{
			ID:         id,
			FullName:   "Pegawai " + number,
			BaseSalary: base,
		},
	}
}

func TestSalaryService_Calculate(t *testing.T) {
	ctx := context.Background()
	actorID := uuid.New().String()

	t.Run("deductions for half days and chargeable leaves", func(t *testing.T) {
		salaryRepo := &fakeSalaryRepository{}
		attRepo := &fakeAttendanceRepository{
			findByMonthFn: func(ctx context.Context, monthYear string) ([]attendance.MonthlyAttendance, error) {
				assert.Equal(t, "August 2026", monthYear)
				return []attendance.MonthlyAttendance{
					monthlySummary("EMP-0001", 30000, 20, 5, 2),
				}, nil
			},
		}

		var saved *salary.Salary
		salaryRepo.upsertFn = func(ctx context.Context, s *salary.Salary) error {
			saved = s
			return nil
		}

		svc := salary.NewService(salaryRepo, attRepo, nil, nil)
		result, err := svc.Calculate(ctx, actorID, "August 2026")

		assert.NoError(t, err)
		assert.Equal(t, 1, result.TotalProcessed)
		assert.Equal(t, 1, result.Successful)
		assert.Equal(t, 0, result.Failed)

		// per day 1000, half days 2*500, chargeable leaves 3*1000
		rec := result.Results[0]
		assert.Equal(t, salary.RecordStatusSuccess, rec.Status)
		assert.Equal(t, 3, rec.Salary.ChargeableLeaves)
		assert.Equal(t, 4000, rec.Salary.TotalDeductions)
		assert.Equal(t, 26000, rec.Salary.NetSalary)

		assert.NotNil(t, saved)
		assert.Equal(t, 1000, saved.PerDaySalary)
		assert.Equal(t, 4000, saved.Deductions)
		assert.Equal(t, 26000, saved.NetSalary)
		assert.Equal(t, salary.StatusPending, saved.Status)
	})

	t.Run("leaves within free allowance deduct nothing", func(t *testing.T) {
		salaryRepo := &fakeSalaryRepository{}
		attRepo := &fakeAttendanceRepository{
			findByMonthFn: func(ctx context.Context, monthYear string) ([]attendance.MonthlyAttendance, error) {
				return []attendance.MonthlyAttendance{
					monthlySummary("EMP-0002", 30000, 25, 1, 0),
				}, nil
			},
		}

		svc := salary.NewService(salaryRepo, attRepo, nil, nil)
		result, err := svc.Calculate(ctx, actorID, "August 2026")

		assert.NoError(t, err)
		rec := result.Results[0]
		assert.Equal(t, 0, rec.Salary.ChargeableLeaves)
		assert.Equal(t, 0, rec.Salary.TotalDeductions)
		assert.Equal(t, 30000, rec.Salary.NetSalary)
	})

	t.Run("fractional deductions rounded once at the end", func(t *testing.T) {
		salaryRepo := &fakeSalaryRepository{}
		attRepo := &fakeAttendanceRepository{
			findByMonthFn: func(ctx context.Context, monthYear string) ([]attendance.MonthlyAttendance, error) {
				return []attendance.MonthlyAttendance{
					monthlySummary("EMP-0003", 10000, 20, 0, 1),
				}, nil
			},
		}

		svc := salary.NewService(salaryRepo, attRepo, nil, nil)
		result, err := svc.Calculate(ctx, actorID, "August 2026")

		assert.NoError(t, err)
		// per day 333.33..., half day deduction 166.66... rounds to 167
		rec := result.Results[0]
		assert.Equal(t, 167, rec.Salary.TotalDeductions)
		assert.Equal(t, 9833, rec.Salary.NetSalary)
	})

	t.Run("recalculation replaces the period row", func(t *testing.T) {
		// satu baris per (employee_id, month_year), seperti upsert di DB
		store := map[string]*salary.Salary{}
		salaryRepo := &fakeSalaryRepository{
			upsertFn: func(ctx context.Context, s *salary.Salary) error {
				store[s.EmployeeID.String()+"|"+s.MonthYear] = s
				return nil
			},
		}
		summary := monthlySummary("EMP-0001", 30000, 20, 5, 2)
		attRepo := &fakeAttendanceRepository{
			findByMonthFn: func(ctx context.Context, monthYear string) ([]attendance.MonthlyAttendance, error) {
				return []attendance.MonthlyAttendance{summary}, nil
			},
		}

		svc := salary.NewService(salaryRepo, attRepo, nil, nil)

		_, err := svc.Calculate(ctx, actorID, "August 2026")
		assert.NoError(t, err)
		_, err = svc.Calculate(ctx, actorID, "August 2026")
		assert.NoError(t, err)

		assert.Len(t, store, 1)
		for _, row := range store {
			assert.Equal(t, 1000, row.PerDaySalary)
			assert.Equal(t, 4000, row.Deductions)
			assert.Equal(t, 26000, row.NetSalary)
		}
	})

	t.Run("summary without employee fails that record only", func(t *testing.T) {
		orphan := monthlySummary("EMP-9999", 0, 10, 0, 0)
		orphan.Employee = nil

		salaryRepo := &fakeSalaryRepository{}
		attRepo := &fakeAttendanceRepository{
			findByMonthFn: func(ctx context.Context, monthYear string) ([]attendance.MonthlyAttendance, error) {
				return []attendance.MonthlyAttendance{
					monthlySummary("EMP-0001", 30000, 20, 0, 0),
					orphan,
				}, nil
			},
		}

		svc := salary.NewService(salaryRepo, attRepo, nil, nil)
		result, err := svc.Calculate(ctx, actorID, "August 2026")

		assert.NoError(t, err)
		assert.Equal(t, 2, result.TotalProcessed)
		assert.Equal(t, 1, result.Successful)
		assert.Equal(t, 1, result.Failed)
		assert.Equal(t, "Employee not found", result.Results[1].Reason)
		assert.Nil(t, result.Results[1].Salary)
	})

	t.Run("negative upsert error fails record and continues", func(t *testing.T) {
		salaryRepo := &fakeSalaryRepository{
			upsertFn: func(ctx context.Context, s *salary.Salary) error {
				if s.EmployeeNumber == "EMP-0001" {
					return errors.New("db error")
				}
				return nil
			},
		}
		attRepo := &fakeAttendanceRepository{
			findByMonthFn: func(ctx context.Context, monthYear string) ([]attendance.MonthlyAttendance, error) {
				return []attendance.MonthlyAttendance{
					monthlySummary("EMP-0001", 30000, 20, 0, 0),
					monthlySummary("EMP-0002", 30000, 20, 0, 0),
				}, nil
			},
		}

		svc := salary.NewService(salaryRepo, attRepo, nil, nil)
		result, err := svc.Calculate(ctx, actorID, "August 2026")

		assert.NoError(t, err)
		assert.Equal(t, 1, result.Failed)
		assert.Equal(t, 1, result.Successful)
		assert.Equal(t, salary.RecordStatusFailed, result.Results[0].Status)
		assert.Equal(t, salary.RecordStatusSuccess, result.Results[1].Status)
	})

	t.Run("negative attendance load error aborts", func(t *testing.T) {
		attRepo := &fakeAttendanceRepository{
			findByMonthFn: func(ctx context.Context, monthYear string) ([]attendance.MonthlyAttendance, error) {
				return nil, errors.New("db error")
			},
		}

		svc := salary.NewService(&fakeSalaryRepository{}, attRepo, nil, nil)
		_, err := svc.Calculate(ctx, actorID, "August 2026")

		assert.Error(t, err)
	})
}

func TestSalaryService_Approve(t *testing.T) {
	ctx := context.Background()
	approverID := uuid.New().String()

	t.Run("success", func(t *testing.T) {
		id := uuid.New()
		repo := &fakeSalaryRepository{
			findByIDFn: func(ctx context.Context, lookupID string) (*salary.Salary, error) {
				assert.Equal(t, id.String(), lookupID)
				return &salary.Salary{
					ID:         id,
					EmployeeID: uuid.New(),
					MonthYear:  "August 2026",
					Status:     salary.StatusPending,
				}, nil
			},
		}

		var updated *salary.Salary
		repo.updateFn = func(ctx context.Context, s *salary.Salary) error {
			updated = s
			return nil
		}

		svc := salary.NewService(repo, &fakeAttendanceRepository{}, nil, nil)
		resp, err := svc.Approve(ctx, id.String(), approverID)

		assert.NoError(t, err)
		assert.Equal(t, salary.StatusCompleted, resp.Status)
		assert.NotNil(t, resp.ApprovedBy)
		assert.Equal(t, approverID, *resp.ApprovedBy)
		assert.NotNil(t, updated.CompletedAt)
	})

	t.Run("negative already completed", func(t *testing.T) {
		now := time.Now().UTC()
		repo := &fakeSalaryRepository{
			findByIDFn: func(ctx context.Context, id string) (*salary.Salary, error) {
				return &salary.Salary{
					ID:          uuid.New(),
					Status:      salary.StatusCompleted,
					CompletedAt: &now,
				}, nil
			},
		}

		svc := salary.NewService(repo, &fakeAttendanceRepository{}, nil, nil)
		_, err := svc.Approve(ctx, uuid.NewString(), approverID)

		assert.ErrorIs(t, err, salaryerrors.ErrAlreadyCompleted)
	})

	t.Run("negative not found", func(t *testing.T) {
		svc := salary.NewService(&fakeSalaryRepository{}, &fakeAttendanceRepository{}, nil, nil)
		_, err := svc.Approve(ctx, uuid.NewString(), approverID)

		assert.ErrorIs(t, err, salaryerrors.ErrSalaryNotFound)
	})
}

func TestSalaryService_GetSlip(t *testing.T) {
	ctx := context.Background()

	t.Run("employee scope blocks other rows", func(t *testing.T) {
		rowEmployee := uuid.New()
		repo := &fakeSalaryRepository{
			findByIDFn: func(ctx context.Context, id string) (*salary.Salary, error) {
				return &salary.Salary{
					ID:         uuid.New(),
					EmployeeID: rowEmployee,
					Status:     salary.StatusPending,
				}, nil
			},
		}

		svc := salary.NewService(repo, &fakeAttendanceRepository{}, nil, nil)

		_, err := svc.GetSlip(ctx, uuid.NewString(), uuid.NewString())
		assert.ErrorIs(t, err, salaryerrors.ErrSalaryNotFound)

		resp, err := svc.GetSlip(ctx, uuid.NewString(), rowEmployee.String())
		assert.NoError(t, err)
		assert.Equal(t, rowEmployee.String(), resp.EmployeeID)
	})
}
