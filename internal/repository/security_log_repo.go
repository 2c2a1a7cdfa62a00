package repository

import (
	"context"

	"bozor/internal/entity"

	"gorm.io/gorm"
)

// SecurityLogRepository is append-only. Entries record authentication and
// account lifecycle events and are never read back on the request path.
type SecurityLogRepository interface {
	Log(ctx context.Context, log *entity.SecurityLog) error
}

type securityLogRepository struct {
	db *gorm.DB
}

func NewSecurityLogRepository(db *gorm.DB) SecurityLogRepository {
	return &securityLogRepository{db: db}
}

func (r *securityLogRepository) Log(ctx context.Context, log *entity.SecurityLog) error {
	return r.db.WithContext(ctx).Create(log).Error
}
