package attendance

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"time"

	attendanceerrors "hradmin/internal/attendance/errors"
	"hradmin/internal/employee"
	"hradmin/internal/events"
	"hradmin/internal/messaging/kafka"
	"hradmin/internal/shared/contextutil"
	"hradmin/internal/timesheet"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const reasonEmployeeNotFound = "Employee not found"

//go:generate mockgen -source=attendance_service.go -destination=mock/attendance_service_mock.go -package=mock
type Service interface {
	ImportWorkbook(ctx context.Context, monthYear string, workbook io.Reader) (ImportResult, error)
	ImportRecords(ctx context.Context, monthYear string, records []UploadRecordRequest) (ImportResult, error)
	GetAll(ctx context.Context, q Query) ([]AttendanceResponse, error)
	Verify(ctx context.Context, id, verifierID string) (AttendanceResponse, error)
}

type service struct {
	repo      Repository
	employees employee.Repository
	outbox    kafka.OutboxRepository
	parser    *timesheet.Parser
	logger    *zap.Logger
}

func NewService(repo Repository, employees employee.Repository, logger ...*zap.Logger) Service {
	return NewServiceWithOutbox(repo, employees, nil, logger...)
}

func NewServiceWithOutbox(
	repo Repository,
	employees employee.Repository,
	outboxRepo kafka.OutboxRepository,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("attendance.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("attendance.service")
	}
	return &service{
		repo:      repo,
		employees: employees,
		outbox:    outboxRepo,
		parser:    timesheet.NewParser(l),
		logger:    l,
	}
}

// ImportWorkbook parses a time clock export and upserts one summary per
// employee block. A missing date header aborts the whole import; anything
// after that is per-record: an unknown employee code or a failed upsert is
// reported in the batch result and never stops sibling records.
func (s *service) ImportWorkbook(ctx context.Context, monthYear string, workbook io.Reader) (ImportResult, error) {
	rid := contextutil.GetRequestID(ctx)

	rows, err := timesheet.ReadGrid(workbook)
	if err != nil {
		s.logger.Warn("import workbook unreadable",
			zap.String("request_id", rid),
			zap.String("month_year", monthYear),
			zap.Error(err),
		)
		return ImportResult{}, attendanceerrors.ErrUnreadableWorkbook
	}

	sheets, err := s.parser.Parse(rows)
	if err != nil {
		if errors.Is(err, timesheet.ErrHeaderNotFound) {
			return ImportResult{}, attendanceerrors.ErrHeaderNotFound
		}
		return ImportResult{}, err
	}

	result := s.reconcile(ctx, monthYear, sheets)

	s.queueImportedEvent(ctx, rid, result)

	s.logger.Info("import workbook finished",
		zap.String("request_id", rid),
		zap.String("month_year", monthYear),
		zap.Int("successful", result.Successful),
		zap.Int("failed", result.Failed),
	)

	return result, nil
}

// ImportRecords mirrors the upsert loop for clients that send pre-parsed
// summaries as JSON.
func (s *service) ImportRecords(ctx context.Context, monthYear string, records []UploadRecordRequest) (ImportResult, error) {
	sheets := make([]timesheet.EmployeeTimesheet, len(records))
	for i, rec := range records {
		sheets[i] = timesheet.EmployeeTimesheet{
			EmployeeNumber:   rec.EmployeeNumber,
			EmployeeName:     rec.EmployeeNumber,
			DaysPresent:      rec.DaysPresent,
			DaysLeave:        rec.DaysLeave,
			HalfDays:         rec.HalfDays,
			TotalWorkingDays: rec.TotalWorkingDays,
		}
	}

	result := s.reconcile(ctx, monthYear, sheets)
	s.queueImportedEvent(ctx, contextutil.GetRequestID(ctx), result)
	return result, nil
}

// reconcile matches each parsed timesheet to a registered employee and
// upserts the summary. Outcomes are collected per record; no record's
// success depends on another's.
func (s *service) reconcile(ctx context.Context, monthYear string, sheets []timesheet.EmployeeTimesheet) ImportResult {
	result := ImportResult{
		MonthYear: monthYear,
		Results:   make([]ImportRecordResult, 0, len(sheets)),
	}

	for _, ts := range sheets {
		empl, err := s.employees.FindByNumber(ctx, ts.EmployeeNumber)
		if err != nil {
			reason := reasonEmployeeNotFound
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				reason = err.Error()
			}
			result.Failed++
			result.Results = append(result.Results, ImportRecordResult{
				EmployeeNumber: ts.EmployeeNumber,
				Status:         RecordStatusFailed,
				Reason:         reason,
			})
			continue
		}

		dailyRecords, err := json.Marshal(ts.Days)
		if err != nil {
			result.Failed++
			result.Results = append(result.Results, ImportRecordResult{
				EmployeeNumber: ts.EmployeeNumber,
				Status:         RecordStatusFailed,
				Reason:         err.Error(),
			})
			continue
		}

		row := &MonthlyAttendance{
			ID:               uuid.New(),
			EmployeeID:       empl.ID,
			MonthYear:        monthYear,
			EmployeeNumber:   ts.EmployeeNumber,
			DaysPresent:      ts.DaysPresent,
			DaysLeave:        ts.DaysLeave,
			HalfDays:         ts.HalfDays,
			TotalWorkingDays: ts.TotalWorkingDays,
			DailyRecords:     dailyRecords,
			VerifiedStatus:   VerifiedStatusPending,
		}

		if err := s.repo.Upsert(ctx, row); err != nil {
			s.logger.Error("attendance upsert failed",
				zap.String("employee_number", ts.EmployeeNumber),
				zap.String("month_year", monthYear),
				zap.Error(err),
			)
			result.Failed++
			result.Results = append(result.Results, ImportRecordResult{
				EmployeeNumber: ts.EmployeeNumber,
				Status:         RecordStatusFailed,
				Reason:         err.Error(),
			})
			continue
		}

		daysPresent, daysLeave, halfDays := ts.DaysPresent, ts.DaysLeave, ts.HalfDays
		result.Successful++
		result.Results = append(result.Results, ImportRecordResult{
			EmployeeNumber: ts.EmployeeNumber,
			EmployeeName:   ts.EmployeeName,
			Status:         RecordStatusSuccess,
			DaysPresent:    &daysPresent,
			DaysLeave:      &daysLeave,
			HalfDays:       &halfDays,
		})
	}

	result.TotalProcessed = len(result.Results)
	return result
}

func (s *service) queueImportedEvent(ctx context.Context, rid string, result ImportResult) {
	if s.outbox == nil || result.Successful == 0 {
		return
	}

	event := events.AttendanceImportedEvent{
		EventType:  "attendance_imported",
		RequestID:  rid,
		MonthYear:  result.MonthYear,
		Successful: result.Successful,
		Failed:     result.Failed,
		OccurredAt: time.Now().UTC(),
	}
	payload, err := json.Marshal(event)
	if err != nil {
		s.logger.Error("marshal attendance imported event failed", zap.Error(err))
		return
	}

	if err := s.outbox.Create(ctx, kafka.OutboxEvent{
		ID:            uuid.NewString(),
		RequestID:     rid,
		AggregateType: "attendance",
		AggregateID:   result.MonthYear,
		EventType:     event.EventType,
		Topic:         events.AttendanceImportedTopic,
		Payload:       payload,
		Status:        kafka.OutboxStatusPending,
	}); err != nil {
		s.logger.Error("queue attendance imported event failed", zap.Error(err))
	}
}

func (s *service) GetAll(ctx context.Context, q Query) ([]AttendanceResponse, error) {
	rows, err := s.repo.FindAll(ctx, q)
	if err != nil {
		return nil, err
	}

	res := make([]AttendanceResponse, len(rows))
	for i, r := range rows {
		res[i] = mapToResponse(r)
	}
	return res, nil
}

func (s *service) Verify(ctx context.Context, id, verifierID string) (AttendanceResponse, error) {
	verifier, err := uuid.Parse(verifierID)
	if err != nil {
		return AttendanceResponse{}, errors.New("invalid verifier id")
	}

	row, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return AttendanceResponse{}, attendanceerrors.ErrAttendanceNotFound
		}
		return AttendanceResponse{}, err
	}

	row.VerifiedStatus = VerifiedStatusVerified
	row.VerifiedBy = &verifier

	if err := s.repo.Update(ctx, row); err != nil {
		return AttendanceResponse{}, err
	}
	return mapToResponse(*row), nil
}

func mapToResponse(a MonthlyAttendance) AttendanceResponse {
	resp := AttendanceResponse{
		ID:               a.ID.String(),
		EmployeeID:       a.EmployeeID.String(),
		EmployeeNumber:   a.EmployeeNumber,
		MonthYear:        a.MonthYear,
		DaysPresent:      a.DaysPresent,
		DaysLeave:        a.DaysLeave,
		HalfDays:         a.HalfDays,
		TotalWorkingDays: a.TotalWorkingDays,
		VerifiedStatus:   a.VerifiedStatus,
	}
	if a.Employee != nil {
		resp.EmployeeName = a.Employee.FullName
	}
	if a.VerifiedBy != nil {
		v := a.VerifiedBy.String()
		resp.VerifiedBy = &v
	}
	if len(a.DailyRecords) > 0 {
		var days []timesheet.DayRecord
		if json.Unmarshal(a.DailyRecords, &days) == nil {
			resp.DailyRecords = days
		}
	}
	return resp
}
