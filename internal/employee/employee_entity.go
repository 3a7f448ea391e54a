package employee

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	StatusActive   = "active"
	StatusInactive = "inactive"
)

type Employee struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	EmployeeNumber string    `gorm:"column:employee_number;type:varchar(30);uniqueIndex"`
	FullName       string    `gorm:"column:full_name"`
	Email          string    `gorm:"uniqueIndex"`
	Phone          string
	Department     string
	Position       string
	BaseSalary     int
	HireDate       time.Time      `gorm:"type:date"`
	Status         string         `gorm:"type:varchar(20);default:active"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
	DeletedAt      gorm.DeletedAt `gorm:"index"`
}

func (Employee) TableName() string {
	return "employees"
}
