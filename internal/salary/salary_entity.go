package salary

import (
	"time"

	"github.com/google/uuid"
)

const (
	StatusPending   = "pending"
	StatusCompleted = "completed"
)

// Salary is one employee's computed payout for one period, derived entirely
// from that period's attendance summary and the employee's base salary.
type Salary struct {
	ID             uuid.UUID  `gorm:"type:uuid;primaryKey"`
	EmployeeID     uuid.UUID  `gorm:"column:employee_id;type:uuid;not null;uniqueIndex:uq_salary_employee_period"`
	MonthYear      string     `gorm:"column:month_year;type:varchar(20);not null;uniqueIndex:uq_salary_employee_period"`
	EmployeeNumber string     `gorm:"column:employee_number;type:varchar(30);not null;index"`
	BaseSalary     int        `gorm:"not null"`
	DaysPresent    int        `gorm:"not null"`
	DaysLeave      int        `gorm:"not null"`
	HalfDays       int        `gorm:"not null;default:0"`
	PerDaySalary   int        `gorm:"column:per_day_salary;not null"`
	Deductions     int        `gorm:"not null;default:0"`
	NetSalary      int        `gorm:"column:net_salary;not null"`
	Status         string     `gorm:"type:varchar(20);not null;default:pending"`
	ApprovedBy     *uuid.UUID `gorm:"column:approved_by;type:uuid"`
	CompletedAt    *time.Time `gorm:"column:completed_at"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
	Employee       *EmployeeRef `gorm:"foreignKey:EmployeeID;references:ID"`
}

func (Salary) TableName() string {
	return "salaries"
}

type EmployeeRef struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	FullName string    `gorm:"column:full_name"`
}

func (EmployeeRef) TableName() string {
	return "employees"
}
