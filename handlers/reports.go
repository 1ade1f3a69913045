package handlers

import (
	"encoding/csv"
	"fmt"
	"html/template"
	"net/http"
	"strconv"
	"time"

	"otrack/config"
	"otrack/database"
	"otrack/middleware"
	"otrack/payroll"
)

type ReportHandler struct {
	config    *config.Config
	templates map[string]*template.Template
}

func NewReportHandler(cfg *config.Config, templates map[string]*template.Template) *ReportHandler {
	return &ReportHandler{
		config:    cfg,
		templates: templates,
	}
}

func reportPeriod(r *http.Request) (int, time.Month) {
	now := time.Now().UTC()
	year := now.Year()
	month := now.Month()

	if y, err := strconv.Atoi(r.URL.Query().Get("year")); err == nil && y >= 2000 && y <= 2100 {
		year = y
	}
	if m, err := strconv.Atoi(r.URL.Query().Get("month")); err == nil && m >= 1 && m <= 12 {
		month = time.Month(m)
	}
	return year, month
}

func (h *ReportHandler) ReportsPage(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUserFromContext(r.Context())

	year, month := reportPeriod(r)
	start, end := payroll.MonthRange(year, month)

	records, err := database.OvertimeRecordsInRange(start, end)
	if err != nil {
		http.Error(w, "Failed to load records", http.StatusInternalServerError)
		return
	}

	rows := payroll.BuildMonthlyReport(records)
	departments := payroll.BuildDepartmentSummary(rows)

	var totalHours, totalAmount float64
	for _, row := range rows {
		totalHours += row.TotalHours
		totalAmount += row.TotalAmount
	}

	currentYear := time.Now().Year()
	years := make([]int, 5)
	for i := 0; i < 5; i++ {
		years[i] = currentYear - i
	}

	data := map[string]interface{}{
		"User":          user,
		"Rows":          rows,
		"Departments":   departments,
		"TotalHours":    totalHours,
		"TotalAmount":   totalAmount,
		"SelectedYear":  year,
		"SelectedMonth": int(month),
		"Years":         years,
	}
	h.templates["reports"].ExecuteTemplate(w, "base", data)
}

// ExportCSV writes the monthly report as UTF-8 CSV. The byte-order mark up
// front keeps spreadsheet programs from garbling non-Latin names.
func (h *ReportHandler) ExportCSV(w http.ResponseWriter, r *http.Request) {
	year, month := reportPeriod(r)
	start, end := payroll.MonthRange(year, month)

	records, err := database.OvertimeRecordsInRange(start, end)
	if err != nil {
		http.Error(w, "Failed to load records", http.StatusInternalServerError)
		return
	}
	rows := payroll.BuildMonthlyReport(records)

	filename := fmt.Sprintf("overtime_report_%d_%02d.csv", year, int(month))
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))

	w.Write([]byte("\xEF\xBB\xBF"))

	writer := csv.NewWriter(w)
	defer writer.Flush()

	writer.Write([]string{
		"Employee Number", "Name", "Department", "Base Salary",
		"Regular Hours", "Holiday Hours", "Total Hours",
		"Regular Amount", "Holiday Amount", "Total Amount",
	})

	for _, row := range rows {
		writer.Write([]string{
			row.EmployeeNumber,
			row.FullName,
			row.Department.Label(),
			fmt.Sprintf("%.2f", row.BaseSalary),
			fmt.Sprintf("%.2f", row.RegularHours),
			fmt.Sprintf("%.2f", row.HolidayHours),
			fmt.Sprintf("%.2f", row.TotalHours),
			fmt.Sprintf("%.2f", row.RegularAmount),
			fmt.Sprintf("%.2f", row.HolidayAmount),
			fmt.Sprintf("%.2f", row.TotalAmount),
		})
	}
}
