package models

import "time"

// Order is one cart line recorded at checkout. Lines are inserted
// independently; a cart of N items produces N rows with no surrounding
// transaction.
type Order struct {
	ID        int64     `gorm:"column:id;primaryKey;autoIncrement"`
	UserID    string    `gorm:"column:user_id;size:100;not null"`
	ProductID string    `gorm:"column:product_id;size:50;not null"`
	Variant   int       `gorm:"column:variant;not null;default:0"`
	Quantity  int       `gorm:"column:quantity;not null;default:1"`
	Price     float64   `gorm:"column:price;not null;default:0"`
	Total     float64   `gorm:"column:total;not null;default:0"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
}

func (Order) TableName() string {
	return "orders"
}
