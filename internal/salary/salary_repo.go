package salary

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:generate mockgen -source=salary_repo.go -destination=mock/salary_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Upsert(ctx context.Context, s *Salary) error
	FindAll(ctx context.Context, q Query) ([]Salary, error)
	FindByID(ctx context.Context, id string) (*Salary, error)
	Update(ctx context.Context, s *Salary) error
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

// Upsert replaces any prior computation for (employee_id, month_year),
// recalculation is idempotent.
func (r *repository) Upsert(ctx context.Context, s *Salary) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "employee_id"}, {Name: "month_year"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"employee_number",
				"base_salary",
				"days_present",
				"days_leave",
				"half_days",
				"per_day_salary",
				"deductions",
				"net_salary",
				"status",
				"updated_at",
			}),
		}).
		Create(s).Error
}

func (r *repository) FindAll(ctx context.Context, q Query) ([]Salary, error) {
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
	if q.Status != "" {
		tx = tx.Where("status = ?", q.Status)
	}

	var rows []Salary
	err := tx.Order("created_at DESC").Find(&rows).Error
	return rows, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*Salary, error) {
	var s Salary
	err := r.db.WithContext(ctx).
		Preload("Employee").
		First(&s, "id = ?", id).Error
	return &s, err
}

func (r *repository) Update(ctx context.Context, s *Salary) error {
	return r.db.WithContext(ctx).Save(s).Error
}
