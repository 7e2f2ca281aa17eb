package models

import "time"

// CustomUpload records metadata for an object already written to the
// uploads bucket. If the metadata insert fails after the object write the
// object is orphaned; there is no compensating delete.
type CustomUpload struct {
	ID          int64     `gorm:"column:id;primaryKey;autoIncrement"`
	UserID      string    `gorm:"column:user_id;size:100;not null;default:'anonymous'"`
	FileURL     string    `gorm:"column:file_url;not null"`
	DeviceModel string    `gorm:"column:device_model;size:100;not null"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime"`
}

func (CustomUpload) TableName() string {
	return "custom_uploads"
}
