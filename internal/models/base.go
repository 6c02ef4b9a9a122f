package models

import "time"

// BaseModel is embedded by all persisted records. Rows are created once and
// never updated or deleted, so there is no updated_at or soft-delete column.
type BaseModel struct {
	ID        uint      `gorm:"primarykey"`
	CreatedAt time.Time `gorm:"not null"`
}
