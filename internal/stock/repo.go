package stock

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/werealtor/aixx/pkg/db/models"
)

// Repository reads stock levels. The stock table is written by an
// external fulfilment process, never by this service.
type Repository interface {
	GetQuantity(ctx context.Context, productID string, variant int) (int, error)
}

type repository struct {
	db *gorm.DB
}

// NewRepository builds a stock repository bound to the provided DB.
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// GetQuantity returns the available quantity for a product/variant
// pair. Unknown pairs read as zero rather than an error.
func (r *repository) GetQuantity(ctx context.Context, productID string, variant int) (int, error) {
	var item models.StockItem
	err := r.db.WithContext(ctx).
		Where("product_id = ? AND variant = ?", productID, variant).
		First(&item).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return item.Quantity, nil
}
