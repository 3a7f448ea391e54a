package salary

import (
	"context"
	"encoding/json"
	"errors"
	"math"
	"time"

	"hradmin/internal/attendance"
	"hradmin/internal/audit"
	"hradmin/internal/events"
	"hradmin/internal/messaging/kafka"
	salaryerrors "hradmin/internal/salary/errors"
	"hradmin/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	// fixed payroll divisor, independent of the calendar month length
	salaryDayDivisor = 30
	// leave days per period that carry no deduction
	freeLeaveDays = 2
)

//go:generate mockgen -source=salary_service.go -destination=mock/salary_service_mock.go -package=mock
type Service interface {
	Calculate(ctx context.Context, actorID, monthYear string) (CalculationResult, error)
	GetAll(ctx context.Context, q Query) ([]SalaryResponse, error)
	Approve(ctx context.Context, id, approverID string) (SalaryResponse, error)
	GetSlip(ctx context.Context, id, scopeEmployeeID string) (SalaryResponse, error)
}

type service struct {
	repo        Repository
	attendances attendance.Repository
	outbox      kafka.OutboxRepository
	recorder    audit.Recorder
	logger      *zap.Logger
}

func NewService(
	repo Repository,
	attendances attendance.Repository,
	outboxRepo kafka.OutboxRepository,
	recorder audit.Recorder,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("salary.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("salary.service")
	}
	return &service{
		repo:        repo,
		attendances: attendances,
		outbox:      outboxRepo,
		recorder:    recorder,
		logger:      l,
	}
}

// Calculate derives a salary row from each attendance summary of the period.
// Half days cost half a day's pay, leave days beyond the first two cost a
// full day's pay. Components are summed unrounded, then rounded to the
// nearest integer before persisting.
func (s *service) Calculate(ctx context.Context, actorID, monthYear string) (CalculationResult, error) {
	rid := contextutil.GetRequestID(ctx)

	summaries, err := s.attendances.FindByMonth(ctx, monthYear)
	if err != nil {
		s.logger.Error("calculate salaries load attendance failed",
			zap.String("month_year", monthYear),
			zap.Error(err),
		)
		return CalculationResult{}, err
	}

	result := CalculationResult{
		MonthYear: monthYear,
		Results:   make([]CalculationRecordResult, 0, len(summaries)),
	}

	for _, att := range summaries {
		if att.Employee == nil {
			result.Failed++
			result.Results = append(result.Results, CalculationRecordResult{
				EmployeeNumber: att.EmployeeNumber,
				Status:         RecordStatusFailed,
				Reason:         "Employee not found",
			})
			continue
		}

		breakdown, row := computeSalary(att)

		if err := s.repo.Upsert(ctx, row); err != nil {
			s.logger.Error("salary upsert failed",
				zap.String("employee_number", att.EmployeeNumber),
				zap.String("month_year", monthYear),
				zap.Error(err),
			)
			result.Failed++
			result.Results = append(result.Results, CalculationRecordResult{
				EmployeeNumber: att.EmployeeNumber,
				Status:         RecordStatusFailed,
				Reason:         err.Error(),
			})
			continue
		}

		result.Successful++
		result.Results = append(result.Results, CalculationRecordResult{
			EmployeeNumber: att.EmployeeNumber,
			EmployeeName:   att.Employee.FullName,
			Status:         RecordStatusSuccess,
			Salary:         &breakdown,
		})
	}

	result.TotalProcessed = len(result.Results)

	if s.recorder != nil {
		s.recorder.Record(ctx, actorID, "CALCULATE_SALARIES", "Salary", monthYear, map[string]any{
			"month_year": monthYear,
			"count":      result.TotalProcessed,
		})
	}

	s.queueCalculatedEvent(ctx, rid, result)

	s.logger.Info("calculate salaries finished",
		zap.String("request_id", rid),
		zap.String("month_year", monthYear),
		zap.Int("successful", result.Successful),
		zap.Int("failed", result.Failed),
	)

	return result, nil
}

// computeSalary holds the deduction arithmetic in one place so the test for
// the worked examples reads off a single function.
func computeSalary(att attendance.MonthlyAttendance) (SalaryBreakdown, *Salary) {
	baseSalary := att.Employee.BaseSalary
	perDay := float64(baseSalary) / salaryDayDivisor

	halfDayDeduction := float64(att.HalfDays) * perDay * 0.5

	chargeableLeaves := att.DaysLeave - freeLeaveDays
	if chargeableLeaves < 0 {
		chargeableLeaves = 0
	}
	leaveDeduction := float64(chargeableLeaves) * perDay

	totalDeductions := halfDayDeduction + leaveDeduction
	netSalary := float64(baseSalary) - totalDeductions

	breakdown := SalaryBreakdown{
		BaseSalary:       baseSalary,
		HalfDays:         att.HalfDays,
		ChargeableLeaves: chargeableLeaves,
		TotalDeductions:  int(math.Round(totalDeductions)),
		NetSalary:        int(math.Round(netSalary)),
	}

	row := &Salary{
		ID:             uuid.New(),
		EmployeeID:     att.EmployeeID,
		MonthYear:      att.MonthYear,
		EmployeeNumber: att.EmployeeNumber,
		BaseSalary:     baseSalary,
		DaysPresent:    att.DaysPresent,
		DaysLeave:      att.DaysLeave,
		HalfDays:       att.HalfDays,
		PerDaySalary:   int(math.Round(perDay)),
		Deductions:     breakdown.TotalDeductions,
		NetSalary:      breakdown.NetSalary,
		Status:         StatusPending,
	}

	return breakdown, row
}

func (s *service) queueCalculatedEvent(ctx context.Context, rid string, result CalculationResult) {
	if s.outbox == nil || result.Successful == 0 {
		return
	}

	event := events.SalaryCalculatedEvent{
		EventType:  "salary_calculated",
		RequestID:  rid,
		MonthYear:  result.MonthYear,
		Successful: result.Successful,
		Failed:     result.Failed,
		OccurredAt: time.Now().UTC(),
	}
	payload, err := json.Marshal(event)
	if err != nil {
		s.logger.Error("marshal salary calculated event failed", zap.Error(err))
		return
	}

	if err := s.outbox.Create(ctx, kafka.OutboxEvent{
		ID:            uuid.NewString(),
		RequestID:     rid,
		AggregateType: "salary",
		AggregateID:   result.MonthYear,
		EventType:     event.EventType,
		Topic:         events.SalaryCalculatedTopic,
		Payload:       payload,
		Status:        kafka.OutboxStatusPending,
	}); err != nil {
		s.logger.Error("queue salary calculated event failed", zap.Error(err))
	}
}

func (s *service) GetAll(ctx context.Context, q Query) ([]SalaryResponse, error) {
	rows, err := s.repo.FindAll(ctx, q)
	if err != nil {
		return nil, err
	}

	res := make([]SalaryResponse, len(rows))
	for i, row := range rows {
		res[i] = mapToResponse(row)
	}
	return res, nil
}

func (s *service) Approve(ctx context.Context, id, approverID string) (SalaryResponse, error) {
	approver, err := uuid.Parse(approverID)
	if err != nil {
		return SalaryResponse{}, errors.New("invalid approver id")
	}

	row, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return SalaryResponse{}, salaryerrors.ErrSalaryNotFound
		}
		return SalaryResponse{}, err
	}

	if row.Status == StatusCompleted {
		return SalaryResponse{}, salaryerrors.ErrAlreadyCompleted
	}

	now := time.Now().UTC()
	row.Status = StatusCompleted
	row.ApprovedBy = &approver
	row.CompletedAt = &now

	if err := s.repo.Update(ctx, row); err != nil {
		return SalaryResponse{}, err
	}

	if s.recorder != nil {
		s.recorder.Record(ctx, approverID, "APPROVE_SALARY", "Salary", id, nil)
	}

	return mapToResponse(*row), nil
}

// GetSlip returns a single computed salary. A non-empty scopeEmployeeID
// restricts the lookup to that employee's own rows.
func (s *service) GetSlip(ctx context.Context, id, scopeEmployeeID string) (SalaryResponse, error) {
	row, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return SalaryResponse{}, salaryerrors.ErrSalaryNotFound
		}
		return SalaryResponse{}, err
	}
	if scopeEmployeeID != "" && row.EmployeeID.String() != scopeEmployeeID {
		return SalaryResponse{}, salaryerrors.ErrSalaryNotFound
	}
	return mapToResponse(*row), nil
}

func mapToResponse(row Salary) SalaryResponse {
	resp := SalaryResponse{
		ID:             row.ID.String(),
		EmployeeID:     row.EmployeeID.String(),
		EmployeeNumber: row.EmployeeNumber,
		MonthYear:      row.MonthYear,
		BaseSalary:     row.BaseSalary,
		DaysPresent:    row.DaysPresent,
		DaysLeave:      row.DaysLeave,
		HalfDays:       row.HalfDays,
		PerDaySalary:   row.PerDaySalary,
		Deductions:     row.Deductions,
		NetSalary:      row.NetSalary,
		Status:         row.Status,
	}
	if row.Employee != nil {
		resp.EmployeeName = row.Employee.FullName
	}
	if row.ApprovedBy != nil {
		v := row.ApprovedBy.String()
		resp.ApprovedBy = &v
	}
	if row.CompletedAt != nil {
		v := row.CompletedAt.Format(time.RFC3339)
		resp.CompletedAt = &v
	}
	return resp
}
