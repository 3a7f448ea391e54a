package attendance

import (
	"time"

	"github.com/google/uuid"
)

const (
	VerifiedStatusPending  = "pending"
	VerifiedStatusVerified = "verified"
)

// MonthlyAttendance is one employee's attendance summary for one period.
// (employee_id, month_year) is unique, re-imports replace the row.
type MonthlyAttendance struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey"`
	EmployeeID       uuid.UUID `gorm:"column:employee_id;type:uuid;not null;uniqueIndex:uq_attendance_employee_period"`
	MonthYear        string    `gorm:"column:month_year;type:varchar(20);not null;uniqueIndex:uq_attendance_employee_period"`
	EmployeeNumber   string    `gorm:"column:employee_number;type:varchar(30);not null;index"`
	DaysPresent      int       `gorm:"not null"`
	DaysLeave        int       `gorm:"not null"`
	HalfDays         int       `gorm:"not null;default:0"`
	TotalWorkingDays int       `gorm:"column:total_working_days;not null"`
	DailyRecords     []byte    `gorm:"column:daily_records;type:jsonb"`
	VerifiedStatus   string    `gorm:"column:verified_status;type:varchar(20);not null;default:pending"`
	VerifiedBy       *uuid.UUID `gorm:"column:verified_by;type:uuid"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
	Employee         *EmployeeRef `gorm:"foreignKey:EmployeeID;references:ID"`
}

func (MonthlyAttendance) TableName() string {
	return "monthly_attendances"
}

// EmployeeRef is a narrow read model of the employees table, enough for
// listing and salary calculation.
type EmployeeRef struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	FullName   string    `gorm:"column:full_name"`
	BaseSalary int       `gorm:"column:base_salary"`
}

func (EmployeeRef) TableName() string {
	return "employees"
}
