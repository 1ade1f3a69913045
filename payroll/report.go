package payroll

import (
	"time"

	"otrack/models"
)

// ReportRow is one employee's overtime for a month. Rows are built fresh on
// every report request and never persisted.
type ReportRow struct {
	EmployeeID     uint
	EmployeeNumber string
	FullName       string
	Department     models.Department
	BaseSalary     float64
	RegularHours   float64
	HolidayHours   float64
	TotalHours     float64
	RegularAmount  float64
	HolidayAmount  float64
	TotalAmount    float64
}

// DepartmentSummary rolls report rows up per department.
type DepartmentSummary struct {
	Department    models.Department
	EmployeeCount int
	TotalHours    float64
	TotalAmount   float64
}

// BuildMonthlyReport groups a month's records by employee, in order of first
// appearance. The caller supplies records already scoped to the month with
// the owning employee joined in; records whose employee did not resolve are
// skipped. Inputs are never mutated.
func BuildMonthlyReport(records []models.OvertimeRecord) []ReportRow {
	index := make(map[uint]int, len(records))
	rows := make([]ReportRow, 0, len(records))

	for _, rec := range records {
		emp := rec.Employee
		if emp.ID == 0 {
			continue
		}

		i, seen := index[emp.ID]
		if !seen {
			i = len(rows)
			index[emp.ID] = i
			rows = append(rows, ReportRow{
				EmployeeID:     emp.ID,
				EmployeeNumber: emp.EmployeeNumber,
				FullName:       emp.FullName,
				Department:     emp.Department,
				BaseSalary:     emp.BaseSalary,
			})
		}

		row := &rows[i]
		hourly := emp.BaseSalary / 30 / 8
		if rec.IsHoliday {
			row.HolidayHours += rec.Hours
			row.HolidayAmount += rec.Hours * hourly * HolidayMultiplier
		} else {
			row.RegularHours += rec.Hours
			row.RegularAmount += rec.Hours * hourly * RegularMultiplier
		}

		// Totals are recomputed rather than incremented so the invariant
		// total = regular + holiday holds after every record.
		row.TotalHours = row.RegularHours + row.HolidayHours
		row.TotalAmount = row.RegularAmount + row.HolidayAmount
	}

	return rows
}

// BuildDepartmentSummary aggregates report rows by department, in order of
// first appearance. It works strictly from the report output, never from raw
// records, so the two views cannot disagree.
func BuildDepartmentSummary(rows []ReportRow) []DepartmentSummary {
	index := make(map[models.Department]int, len(rows))
	out := make([]DepartmentSummary, 0, len(rows))

	for _, row := range rows {
		i, seen := index[row.Department]
		if !seen {
			i = len(out)
			index[row.Department] = i
			out = append(out, DepartmentSummary{Department: row.Department})
		}

		s := &out[i]
		s.EmployeeCount++
		s.TotalHours += row.TotalHours
		s.TotalAmount += row.TotalAmount
	}

	return out
}

// MonthRange returns the first and last calendar day of a month. The end is
// the last day itself, not the first of the next month, so range queries can
// be inclusive on both ends.
func MonthRange(year int, month time.Month) (start, end time.Time) {
	start = time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	end = start.AddDate(0, 1, -1)
	return start, end
}
