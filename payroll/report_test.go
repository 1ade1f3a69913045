package payroll

import (
	"math"
	"reflect"
	"testing"
	"time"

	"otrack/models"
)

func day(d int) time.Time {
	return time.Date(2025, time.March, d, 0, 0, 0, 0, time.UTC)
}

func record(emp models.Employee, d int, hours float64, holiday bool) models.OvertimeRecord {
	return models.OvertimeRecord{
		EmployeeID: emp.ID,
		Employee:   emp,
		WorkDate:   day(d),
		Hours:      hours,
		IsHoliday:  holiday,
	}
}

var (
	empA = models.Employee{ID: 1, EmployeeNumber: "E-001", FullName: "Ahmad Saleh", Department: models.DepartmentFinance, BaseSalary: 2400}
	empB = models.Employee{ID: 2, EmployeeNumber: "E-002", FullName: "Lina Haddad", Department: models.DepartmentWarehouse, BaseSalary: 1800}
	empC = models.Employee{ID: 3, EmployeeNumber: "E-003", FullName: "Omar Qasem", Department: models.DepartmentFinance, BaseSalary: 3000}
)

func TestBuildMonthlyReportSingleEmployee(t *testing.T) {
	records := []models.OvertimeRecord{
		record(empA, 3, 3, false),
		record(empA, 7, 2, true),
	}

	rows := BuildMonthlyReport(records)
	if len(rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(rows))
	}

	row := rows[0]
	if row.EmployeeNumber != "E-001" || row.FullName != "Ahmad Saleh" ||
		row.Department != models.DepartmentFinance || row.BaseSalary != 2400 {
		t.Errorf("row seeded incorrectly: %+v", row)
	}
	if row.RegularHours != 3 || row.HolidayHours != 2 || row.TotalHours != 5 {
		t.Errorf("hours = %v/%v/%v, want 3/2/5", row.RegularHours, row.HolidayHours, row.TotalHours)
	}
	// 2400/30/8 = 10 per hour: 10*1.25*3 = 37.5 regular, 10*1.5*2 = 30 holiday.
	if row.RegularAmount != 37.5 || row.HolidayAmount != 30 || row.TotalAmount != 67.5 {
		t.Errorf("amounts = %v/%v/%v, want 37.5/30/67.5", row.RegularAmount, row.HolidayAmount, row.TotalAmount)
	}
}

func TestBuildMonthlyReportOrderAndSkips(t *testing.T) {
	records := []models.OvertimeRecord{
		record(empB, 1, 1.5, false),
		record(empA, 2, 2, false),
		{EmployeeID: 99, WorkDate: day(3), Hours: 4}, // employee never resolved
		record(empB, 4, 1, true),
	}

	rows := BuildMonthlyReport(records)
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	// Insertion order of first appearance, not sorted.
	if rows[0].EmployeeID != empB.ID || rows[1].EmployeeID != empA.ID {
		t.Errorf("row order = [%d, %d], want [%d, %d]",
			rows[0].EmployeeID, rows[1].EmployeeID, empB.ID, empA.ID)
	}
	for _, row := range rows {
		if row.TotalHours != row.RegularHours+row.HolidayHours {
			t.Errorf("employee %d: total hours %v != %v + %v",
				row.EmployeeID, row.TotalHours, row.RegularHours, row.HolidayHours)
		}
		if row.TotalAmount != row.RegularAmount+row.HolidayAmount {
			t.Errorf("employee %d: total amount %v != %v + %v",
				row.EmployeeID, row.TotalAmount, row.RegularAmount, row.HolidayAmount)
		}
	}
}

func TestBuildMonthlyReportIdempotent(t *testing.T) {
	records := []models.OvertimeRecord{
		record(empA, 1, 2, false),
		record(empC, 2, 3.25, true),
		record(empA, 3, 1.75, true),
		record(empB, 4, 0.5, false),
	}

	first := BuildMonthlyReport(records)
	second := BuildMonthlyReport(records)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("repeated runs differ:\n%+v\n%+v", first, second)
	}
}

func TestBuildDepartmentSummary(t *testing.T) {
	records := []models.OvertimeRecord{
		record(empA, 1, 2, false),
		record(empB, 2, 3, false),
		record(empC, 3, 1, true),
		record(empA, 4, 4, true),
	}

	rows := BuildMonthlyReport(records)
	depts := BuildDepartmentSummary(rows)

	if len(depts) != 2 {
		t.Fatalf("expected 2 departments, got %d", len(depts))
	}
	if depts[0].Department != models.DepartmentFinance || depts[1].Department != models.DepartmentWarehouse {
		t.Errorf("department order = [%s, %s]", depts[0].Department, depts[1].Department)
	}
	if depts[0].EmployeeCount != 2 || depts[1].EmployeeCount != 1 {
		t.Errorf("employee counts = %d/%d, want 2/1", depts[0].EmployeeCount, depts[1].EmployeeCount)
	}

	// Each summary must equal the sum over its rows.
	for _, dept := range depts {
		var hours, amount float64
		for _, row := range rows {
			if row.Department == dept.Department {
				hours += row.TotalHours
				amount += row.TotalAmount
			}
		}
		if !closeTo(dept.TotalHours, hours) || !closeTo(dept.TotalAmount, amount) {
			t.Errorf("%s: summary %v h / %v != rows %v h / %v",
				dept.Department, dept.TotalHours, dept.TotalAmount, hours, amount)
		}
	}
}

func TestBuildDepartmentSummaryEmpty(t *testing.T) {
	if depts := BuildDepartmentSummary(nil); len(depts) != 0 {
		t.Errorf("expected no summaries, got %+v", depts)
	}
}

func TestMonthRange(t *testing.T) {
	cases := []struct {
		year    int
		month   time.Month
		lastDay int
	}{
		{2024, time.February, 29}, // leap year
		{2025, time.February, 28},
		{2025, time.April, 30},
		{2025, time.December, 31},
		{2000, time.February, 29}, // divisible-by-400 leap year
		{1900, time.February, 28}, // centurial non-leap year
	}
	for _, tc := range cases {
		start, end := MonthRange(tc.year, tc.month)
		if start.Year() != tc.year || start.Month() != tc.month || start.Day() != 1 {
			t.Errorf("MonthRange(%d, %s) start = %v", tc.year, tc.month, start)
		}
		if end.Year() != tc.year || end.Month() != tc.month || end.Day() != tc.lastDay {
			t.Errorf("MonthRange(%d, %s) end = %v, want day %d", tc.year, tc.month, end, tc.lastDay)
		}
	}
}

func closeTo(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}
