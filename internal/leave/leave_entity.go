package leave

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Leave struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	EmployeeID uuid.UUID `gorm:"column:employee_id;type:uuid;not null;index:idx_leaves_employee_dates"`

	LeaveType    string    `gorm:"type:varchar(30);not null;default:'annual'"`
	StartDate    time.Time `gorm:"type:date;not null;index:idx_leaves_employee_dates"`
	EndDate      time.Time `gorm:"type:date;not null;index:idx_leaves_employee_dates"`
	NumberOfDays int       `gorm:"column:number_of_days;type:int;not null;default:1"`
	Reason       string    `gorm:"type:text"`

	Status         string     `gorm:"type:varchar(20);not null;default:'pending';index"`
	ReviewComments *string    `gorm:"column:review_comments;type:text"`
	ReviewedBy     *uuid.UUID `gorm:"column:reviewed_by;type:uuid"`
	ReviewedAt     *time.Time `gorm:"column:reviewed_at"`

	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`

	Employee *EmployeeRef `gorm:"foreignKey:EmployeeID;references:ID"`
}

func (Leave) TableName() string {
	return "leaves"
}

type EmployeeRef struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	EmployeeNumber string    `gorm:"column:employee_number"`
	FullName       string    `gorm:"column:full_name"`
}

func (EmployeeRef) TableName() string {
	return "employees"
}
