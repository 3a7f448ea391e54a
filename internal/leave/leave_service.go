package leave

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"hradmin/internal/audit"
	leaveerrors "hradmin/internal/leave/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

//go:generate mockgen -source=leave_service.go -destination=mock/leave_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, employeeID string, req CreateLeaveRequest) (LeaveResponse, error)
	GetAll(ctx context.Context, q Query) ([]LeaveResponse, error)
	Review(ctx context.Context, id, reviewerID string, req ReviewLeaveRequest) (LeaveResponse, error)
}

type service struct {
	db       *sql.DB
	repo     Repository
	recorder audit.Recorder
	logger   *zap.Logger
}

func NewService(db *sql.DB, repo Repository, recorder audit.Recorder, logger ...*zap.Logger) Service {
	l := zap.L().Named("leave.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("leave.service")
	}
	return &service{db: db, repo: repo, recorder: recorder, logger: l}
}

// Create files a pending leave request. The day count is inclusive of both
// endpoints, a single-day request counts as 1.
func (s *service) Create(ctx context.Context, employeeID string, req CreateLeaveRequest) (LeaveResponse, error) {
	s.logger.Debug("create leave requested",
		zap.String("employee_id", employeeID),
		zap.String("start_date", req.StartDate),
		zap.String("end_date", req.EndDate),
	)

	employeeUUID, err := uuid.Parse(employeeID)
	if err != nil {
		return LeaveResponse{}, leaveerrors.ErrInvalidEmployeeID
	}
	startDate, err := parseDate(req.StartDate)
	if err != nil {
		return LeaveResponse{}, err
	}
	endDate, err := parseDate(req.EndDate)
	if err != nil {
		return LeaveResponse{}, err
	}
	if startDate.After(endDate) {
		return LeaveResponse{}, leaveerrors.ErrInvalidDateRange
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("create leave begin tx failed", zap.Error(err))
		return LeaveResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	overlap, err := qtx.HasOverlappingPeriod(ctx, employeeID, startDate, endDate, nil)
	if err != nil {
		s.logger.Error("create leave overlap check failed", zap.Error(err))
		return LeaveResponse{}, err
	}
	if overlap {
		s.logger.Warn("create leave overlap detected",
			zap.String("employee_id", employeeID),
			zap.String("start_date", req.StartDate),
			zap.String("end_date", req.EndDate),
		)
		return LeaveResponse{}, leaveerrors.ErrLeaveOverlap
	}

	numberOfDays := int(endDate.Sub(startDate).Hours()/24) + 1
	l := &Leave{
		ID:           uuid.New(),
		EmployeeID:   employeeUUID,
		LeaveType:    req.LeaveType,
		StartDate:    startDate,
		EndDate:      endDate,
		NumberOfDays: numberOfDays,
		Reason:       req.Reason,
		Status:       StatusPending,
	}

	if err := qtx.Create(ctx, l); err != nil {
		s.logger.Error("create leave persist failed", zap.Error(err))
		return LeaveResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("create leave commit failed", zap.Error(err))
		return LeaveResponse{}, err
	}

	if s.recorder != nil {
		s.recorder.Record(ctx, employeeID, "CREATE_LEAVE", "Leave", l.ID.String(), map[string]any{
			"leave_type":     req.LeaveType,
			"start_date":     req.StartDate,
			"end_date":       req.EndDate,
			"number_of_days": numberOfDays,
		})
	}

	s.logger.Info("create leave success",
		zap.String("leave_id", l.ID.String()),
		zap.String("employee_id", employeeID),
	)

	return mapToResponse(*l), nil
}

func (s *service) GetAll(ctx context.Context, q Query) ([]LeaveResponse, error) {
	leaves, err := s.repo.FindAll(ctx, q)
	if err != nil {
		return nil, err
	}

	resp := make([]LeaveResponse, len(leaves))
	for i, l := range leaves {
		resp[i] = mapToResponse(l)
	}
	return resp, nil
}

// Review settles a pending request as approved or rejected. Reviewed
// requests are final.
func (s *service) Review(ctx context.Context, id, reviewerID string, req ReviewLeaveRequest) (LeaveResponse, error) {
	reviewerUUID, err := uuid.Parse(reviewerID)
	if err != nil {
		return LeaveResponse{}, leaveerrors.ErrInvalidActorID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("review leave begin tx failed", zap.Error(err))
		return LeaveResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	l, err := qtx.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return LeaveResponse{}, leaveerrors.ErrLeaveNotFound
		}
		return LeaveResponse{}, err
	}
	if l.Status != StatusPending {
		s.logger.Warn("review leave already settled",
			zap.String("leave_id", id),
			zap.String("status", l.Status),
		)
		return LeaveResponse{}, leaveerrors.ErrAlreadyReviewed
	}

	now := time.Now().UTC()
	l.Status = req.Status
	l.ReviewedBy = &reviewerUUID
	l.ReviewedAt = &now
	if req.ReviewComments != "" {
		l.ReviewComments = &req.ReviewComments
	}

	if err := qtx.Update(ctx, l); err != nil {
		s.logger.Error("review leave persist failed",
			zap.String("leave_id", id),
			zap.Error(err),
		)
		return LeaveResponse{}, err
	}
	if err := tx.Commit(); err != nil {
		s.logger.Error("review leave commit failed",
			zap.String("leave_id", id),
			zap.Error(err),
		)
		return LeaveResponse{}, err
	}

	if s.recorder != nil {
		s.recorder.Record(ctx, reviewerID, "REVIEW_LEAVE", "Leave", id, map[string]any{
			"status":          req.Status,
			"review_comments": req.ReviewComments,
		})
	}

	s.logger.Info("review leave success",
		zap.String("leave_id", id),
		zap.String("status", req.Status),
	)

	return mapToResponse(*l), nil
}

func parseDate(v string) (time.Time, error) {
	t, err := time.Parse("2006-01-02", v)
	if err != nil {
		return time.Time{}, leaveerrors.ErrInvalidDateFormat
	}
	return t, nil
}

func mapToResponse(l Leave) LeaveResponse {
	resp := LeaveResponse{
		ID:           l.ID.String(),
		EmployeeID:   l.EmployeeID.String(),
		LeaveType:    l.LeaveType,
		StartDate:    l.StartDate.Format("2006-01-02"),
		EndDate:      l.EndDate.Format("2006-01-02"),
		NumberOfDays: l.NumberOfDays,
		Reason:       l.Reason,
		Status:       l.Status,
	}
	if l.Employee != nil {
		resp.EmployeeNumber = l.Employee.EmployeeNumber
		resp.EmployeeName = l.Employee.FullName
	}
	resp.ReviewComments = l.ReviewComments
	if l.ReviewedBy != nil {
		v := l.ReviewedBy.String()
		resp.ReviewedBy = &v
	}
	if l.ReviewedAt != nil {
		v := l.ReviewedAt.Format(time.RFC3339)
		resp.ReviewedAt = &v
	}
	return resp
}
