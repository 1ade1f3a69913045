package models

import (
	"time"

	"gorm.io/gorm"
)

type OvertimeRecord struct {
	ID         uint           `gorm:"primaryKey" json:"id"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`
	EmployeeID uint           `gorm:"not null;index" json:"employee_id"`
	Employee   Employee       `gorm:"foreignKey:EmployeeID" json:"employee,omitempty"`
	WorkDate   time.Time      `gorm:"not null;type:date" json:"work_date"`
	Hours      float64        `gorm:"not null" json:"hours"`
	IsHoliday  bool           `gorm:"default:false" json:"is_holiday"`
	Notes      string         `gorm:"size:500" json:"notes"`
	CreatedBy  *uint          `gorm:"index" json:"created_by"`
	Creator    *User          `gorm:"foreignKey:CreatedBy" json:"creator,omitempty"`
}

type OvertimeFilter struct {
	EmployeeID uint
	Month      int
	Year       int
}
