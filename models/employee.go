package models

import (
	"time"

	"gorm.io/gorm"
)

type Department string

const (
	DepartmentFinance     Department = "finance"
	DepartmentAccounting  Department = "accounting"
	DepartmentSales       Department = "sales"
	DepartmentHR          Department = "hr"
	DepartmentMaintenance Department = "maintenance"
	DepartmentSafety      Department = "safety"
	DepartmentWarehouse   Department = "warehouse"
	DepartmentCleaning    Department = "cleaning"
)

var departmentLabels = map[Department]string{
	DepartmentFinance:     "Finance",
	DepartmentAccounting:  "Accounting",
	DepartmentSales:       "Sales",
	DepartmentHR:          "Human Resources",
	DepartmentMaintenance: "Maintenance",
	DepartmentSafety:      "Public Safety",
	DepartmentWarehouse:   "Warehouse",
	DepartmentCleaning:    "Cleaning",
}

// Departments lists the fixed department set in display order.
func Departments() []Department {
	return []Department{
		DepartmentFinance, DepartmentAccounting, DepartmentSales,
		DepartmentHR, DepartmentMaintenance, DepartmentSafety,
		DepartmentWarehouse, DepartmentCleaning,
	}
}

func (d Department) Label() string {
	if label, ok := departmentLabels[d]; ok {
		return label
	}
	return string(d)
}

func (d Department) Valid() bool {
	_, ok := departmentLabels[d]
	return ok
}

type Employee struct {
	ID             uint           `gorm:"primaryKey" json:"id"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"-"`
	UserID         *uint          `gorm:"index" json:"user_id"`
	User           *User          `gorm:"foreignKey:UserID" json:"user,omitempty"`
	EmployeeNumber string         `gorm:"uniqueIndex;not null;size:50" json:"employee_number"`
	FullName       string         `gorm:"not null;size:200" json:"full_name"`
	Department     Department     `gorm:"not null;size:30" json:"department"`
	BaseSalary     float64        `gorm:"not null" json:"base_salary"`
	IsActive       bool           `gorm:"default:true" json:"is_active"`
}
