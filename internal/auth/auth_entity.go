package auth

import (
	"time"

	"github.com/google/uuid"
)

const (
	RoleAdmin    = "admin"
	RoleHR       = "hr"
	RoleEmployee = "employee"
)

type User struct {
	ID         uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Name       string
	Email      string     `gorm:"uniqueIndex"`
	Password   string     // bcrypt hash
	Role       string     `gorm:"type:varchar(20);default:hr"`
	EmployeeID *uuid.UUID `gorm:"type:uuid"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (User) TableName() string {
	return "users"
}
