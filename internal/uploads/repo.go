package uploads

import (
	"context"

	"gorm.io/gorm"

	"github.com/werealtor/aixx/pkg/db/models"
)

// Repository persists upload metadata rows.
type Repository interface {
	Create(ctx context.Context, upload *models.CustomUpload) error
}

type repository struct {
	db *gorm.DB
}

// NewRepository builds an uploads repository bound to the provided DB.
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, upload *models.CustomUpload) error {
	return r.db.WithContext(ctx).Create(upload).Error
}
