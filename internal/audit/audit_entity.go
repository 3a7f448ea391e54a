package audit

import (
	"time"

	"github.com/google/uuid"
)

type AuditLog struct {
	ID         uuid.UUID  `gorm:"type:uuid;primaryKey"`
	UserID     *uuid.UUID `gorm:"column:user_id;type:uuid;index"`
	Action     string     `gorm:"type:varchar(50);not null;index"`
	Resource   string     `gorm:"type:varchar(50);not null"`
	ResourceID string     `gorm:"column:resource_id;type:varchar(100)"`
	Details    []byte     `gorm:"type:jsonb"`
	CreatedAt  time.Time
}

func (AuditLog) TableName() string {
	return "audit_logs"
}
