package attendance

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:generate mockgen -source=attendance_repo.go -destination=mock/attendance_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Upsert(ctx context.Context, a *MonthlyAttendance) error
	FindAll(ctx context.Context, q Query) ([]MonthlyAttendance, error)
	FindByMonth(ctx context.Context, monthYear string) ([]MonthlyAttendance, error)
	FindByID(ctx context.Context, id string) (*MonthlyAttendance, error)
	Update(ctx context.Context, a *MonthlyAttendance) error
}

type repository struct {
	db *gorm.DB
	tx *sql.Tx
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{db: r.db, tx: tx}
}

// Upsert replaces any existing summary for (employee_id, month_year), so a
// re-imported sheet never accumulates counters.
func (r *repository) Upsert(ctx context.Context, a *MonthlyAttendance) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "employee_id"}, {Name: "month_year"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"employee_number",
				"days_present",
				"days_leave",
				"half_days",
				"total_working_days",
				"daily_records",
				"verified_status",
				"updated_at",
			}),
		}).
		Create(a).Error
}

func (r *repository) FindAll(ctx context.Context, q Query) ([]MonthlyAttendance, error) {
	tx := r.db.WithContext(ctx).Preload("Employee")
	if q.MonthYear != "" {
		tx = tx.Where("month_year = ?", q.MonthYear)
	}
	if q.EmployeeID != "" {
		tx = tx.Where("employee_id = ?", q.EmployeeID)
	}
	if q.EmployeeNumber != "" {
		tx = tx.Where("employee_number = ?", q.EmployeeNumber)
	}
	if q.VerifiedStatus != "" {
		tx = tx.Where("verified_status = ?", q.VerifiedStatus)
	}

	var rows []MonthlyAttendance
	err := tx.Order("updated_at DESC").Find(&rows).Error
	return rows, err
}

func (r *repository) FindByMonth(ctx context.Context, monthYear string) ([]MonthlyAttendance, error) {
	var rows []MonthlyAttendance
	err := r.db.WithContext(ctx).
		Preload("Employee").
		Where("month_year = ?", monthYear).
		Order("employee_number ASC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*MonthlyAttendance, error) {
	var a MonthlyAttendance
	err := r.db.WithContext(ctx).
		Preload("Employee").
		First(&a, "id = ?", id).Error
	return &a, err
}

func (r *repository) Update(ctx context.Context, a *MonthlyAttendance) error {
	return r.db.WithContext(ctx).Save(a).Error
}
