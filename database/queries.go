package database

import (
	"time"

	"otrack/models"
)

// ActiveEmployees returns the employees eligible for overtime entry, ordered
// by name.
func ActiveEmployees() ([]models.Employee, error) {
	var employees []models.Employee
	err := DB.Where("is_active = ?", true).Order("full_name").Find(&employees).Error
	return employees, err
}

// OvertimeRecordsInRange returns records whose work date falls in
// [start, end], inclusive of both endpoints, with the owning employee
// preloaded.
func OvertimeRecordsInRange(start, end time.Time) ([]models.OvertimeRecord, error) {
	var records []models.OvertimeRecord
	err := DB.Preload("Employee").
		Where("work_date >= ? AND work_date <= ?", start, end).
		Order("work_date").
		Find(&records).Error
	return records, err
}

// RecentRecords lists the newest records for the dashboard, optionally
// scoped to one employee and one month.
func RecentRecords(filter models.OvertimeFilter, limit int) ([]models.OvertimeRecord, error) {
	query := DB.Preload("Employee").Preload("Creator")

	if filter.EmployeeID > 0 {
		query = query.Where("employee_id = ?", filter.EmployeeID)
	}
	if filter.Month >= 1 && filter.Month <= 12 && filter.Year > 0 {
		start := time.Date(filter.Year, time.Month(filter.Month), 1, 0, 0, 0, 0, time.UTC)
		query = query.Where("work_date >= ? AND work_date < ?", start, start.AddDate(0, 1, 0))
	}

	var records []models.OvertimeRecord
	err := query.Order("work_date desc").Limit(limit).Find(&records).Error
	return records, err
}

// IsHoliday reports whether the date is on the holiday calendar.
func IsHoliday(date time.Time) (bool, error) {
	var count int64
	err := DB.Model(&models.Holiday{}).Where("date = ?", date).Count(&count).Error
	return count > 0, err
}

// CreateOvertimeRecord persists a single record.
func CreateOvertimeRecord(record *models.OvertimeRecord) error {
	return DB.Create(record).Error
}

// UpdateOvertimeRecord saves changes to an existing record.
func UpdateOvertimeRecord(record *models.OvertimeRecord) error {
	return DB.Save(record).Error
}

// Counts returns the dashboard headline numbers.
func Counts() (employees, records int64, err error) {
	if err = DB.Model(&models.Employee{}).Count(&employees).Error; err != nil {
		return 0, 0, err
	}
	if err = DB.Model(&models.OvertimeRecord{}).Count(&records).Error; err != nil {
		return 0, 0, err
	}
	return employees, records, nil
}
