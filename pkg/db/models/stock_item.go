package models

// StockItem tracks the available quantity per product/variant pair.
// The table is externally managed; this service only reads it.
type StockItem struct {
	ProductID string `gorm:"column:product_id;size:50;primaryKey"`
	Variant   int    `gorm:"column:variant;primaryKey"`
	Quantity  int    `gorm:"column:quantity;not null;default:0"`
}

func (StockItem) TableName() string {
	return "stock"
}
