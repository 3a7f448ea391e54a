package counter

import (
	"context"

	"gorm.io/gorm"
)

//go:generate mockgen -destination=mock/counter_repo_mock.go -package=mock . Repository
type Repository interface {
	GetNextValue(ctx context.Context, counterType string) (int64, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) GetNextValue(ctx context.Context, counterType string) (int64, error) {
	var next int64
	err := r.db.WithContext(ctx).Raw(`
		INSERT INTO counters (counter_type, current_value)
		VALUES (?, 1)
		ON CONFLICT (counter_type)
		DO UPDATE SET current_value = counters.current_value + 1
		RETURNING current_value
	`, counterType).Scan(&next).Error
	return next, err
}
