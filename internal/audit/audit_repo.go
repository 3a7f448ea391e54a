package audit

import (
	"context"

	"gorm.io/gorm"
)

//go:generate mockgen -source=audit_repo.go -destination=mock/audit_repo_mock.go -package=mock
type Repository interface {
	Create(ctx context.Context, entry *AuditLog) error
	FindAll(ctx context.Context, action string, limit int) ([]AuditLog, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, entry *AuditLog) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

func (r *repository) FindAll(ctx context.Context, action string, limit int) ([]AuditLog, error) {
	tx := r.db.WithContext(ctx)
	if action != "" {
		tx = tx.Where("action = ?", action)
	}
	if limit <= 0 || limit > 500 {
		limit = 100
	}

	var rows []AuditLog
	err := tx.Order("created_at DESC").Limit(limit).Find(&rows).Error
	return rows, err
}
