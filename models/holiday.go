package models

import (
	"time"
)

type Holiday struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	CreatedAt   time.Time `json:"created_at"`
	Date        time.Time `gorm:"uniqueIndex;not null;type:date" json:"date"`
	Description string    `gorm:"size:200" json:"description"`
}
