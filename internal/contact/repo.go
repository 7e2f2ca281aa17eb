package contact

import (
	"context"

	"gorm.io/gorm"

	"github.com/werealtor/aixx/pkg/db/models"
)

// Repository persists contact messages.
type Repository interface {
	Create(ctx context.Context, msg *models.ContactMessage) error
}

type repository struct {
	db *gorm.DB
}

// NewRepository builds a contact repository bound to the provided DB.
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, msg *models.ContactMessage) error {
	return r.db.WithContext(ctx).Create(msg).Error
}
