package models

import "time"

// ContactMessage is a persisted contact-form submission. Rows are written
// once and never read back by the API.
type ContactMessage struct {
	ID        int64     `gorm:"column:id;primaryKey;autoIncrement"`
	Name      string    `gorm:"column:name;size:100;not null"`
	Email     string    `gorm:"column:email;not null"`
	Message   string    `gorm:"column:message;size:2000;not null"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
}

func (ContactMessage) TableName() string {
	return "contacts"
}
