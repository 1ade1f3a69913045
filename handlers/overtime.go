package handlers

import (
	"fmt"
	"html/template"
	"net/http"
	"strconv"
	"time"

	"otrack/config"
	"otrack/database"
	"otrack/middleware"
	"otrack/models"
	"otrack/payroll"
)

type OvertimeHandler struct {
	config    *config.Config
	templates map[string]*template.Template
}

func NewOvertimeHandler(cfg *config.Config, templates map[string]*template.Template) *OvertimeHandler {
	return &OvertimeHandler{
		config:    cfg,
		templates: templates,
	}
}

func (h *OvertimeHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUserFromContext(r.Context())
	if user == nil {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	// Filter parameters
	var filter models.OvertimeFilter
	if eid, err := strconv.ParseUint(r.URL.Query().Get("employee_id"), 10, 32); err == nil && eid > 0 {
		filter.EmployeeID = uint(eid)
	}
	if m, err := strconv.Atoi(r.URL.Query().Get("month")); err == nil && m >= 1 && m <= 12 {
		filter.Month = m
	}
	if y, err := strconv.Atoi(r.URL.Query().Get("year")); err == nil && y >= 2000 && y <= 2100 {
		filter.Year = y
	}

	entries, err := database.RecentRecords(filter, 100)
	if err != nil {
		http.Error(w, "Failed to load records", http.StatusInternalServerError)
		return
	}

	var totalHours float64
	for _, entry := range entries {
		totalHours += entry.Hours
	}

	// Headline numbers: counts plus the current month's report totals.
	employeeCount, recordCount, _ := database.Counts()

	now := time.Now().UTC()
	start, end := payroll.MonthRange(now.Year(), now.Month())
	monthRecords, _ := database.OvertimeRecordsInRange(start, end)
	var monthHours, monthAmount float64
	for _, row := range payroll.BuildMonthlyReport(monthRecords) {
		monthHours += row.TotalHours
		monthAmount += row.TotalAmount
	}

	employees, _ := database.ActiveEmployees()

	currentYear := now.Year()
	years := make([]int, 5)
	for i := 0; i < 5; i++ {
		years[i] = currentYear - i
	}

	data := map[string]interface{}{
		"User":               user,
		"Entries":            entries,
		"TotalHours":         totalHours,
		"EmployeeCount":      employeeCount,
		"RecordCount":        recordCount,
		"MonthHours":         monthHours,
		"MonthAmount":        monthAmount,
		"Employees":          employees,
		"SelectedEmployeeID": filter.EmployeeID,
		"SelectedMonth":      filter.Month,
		"SelectedYear":       filter.Year,
		"CurrentMonth":       int(now.Month()),
		"CurrentYear":        currentYear,
		"Years":              years,
		"Error":              r.URL.Query().Get("error"),
		"Success":            r.URL.Query().Get("success"),
	}
	h.templates["dashboard"].ExecuteTemplate(w, "base", data)
}

func (h *OvertimeHandler) NewEntryPage(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUserFromContext(r.Context())

	employees, _ := database.ActiveEmployees()

	data := map[string]interface{}{
		"User":      user,
		"Employees": employees,
		"Error":     r.URL.Query().Get("error"),
		"Today":     time.Now().Format("2006-01-02"),
	}
	h.templates["overtime-form"].ExecuteTemplate(w, "base", data)
}

func (h *OvertimeHandler) CreateEntry(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUserFromContext(r.Context())
	if user == nil {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	if err := r.ParseForm(); err != nil {
		http.Redirect(w, r, "/overtime/new?error=Invalid+form+data", http.StatusSeeOther)
		return
	}

	employeeID, err := strconv.ParseUint(r.FormValue("employee_id"), 10, 32)
	if err != nil || employeeID == 0 {
		http.Redirect(w, r, "/overtime/new?error=Select+an+employee", http.StatusSeeOther)
		return
	}

	var employee models.Employee
	if err := database.GetDB().First(&employee, employeeID).Error; err != nil {
		http.Redirect(w, r, "/overtime/new?error=Employee+not+found", http.StatusSeeOther)
		return
	}

	date, err := time.Parse("2006-01-02", r.FormValue("work_date"))
	if err != nil {
		http.Redirect(w, r, "/overtime/new?error=Invalid+date+format", http.StatusSeeOther)
		return
	}

	holiday := r.FormValue("is_holiday") == "on"
	if !holiday {
		// The holiday calendar fills in days the user forgot to mark.
		if onCalendar, err := database.IsHoliday(date); err == nil && onCalendar {
			holiday = true
		}
	}

	hours := payroll.ComputeHours(r.FormValue("end_time"), holiday)
	if hours <= 0 {
		http.Redirect(w, r, "/overtime/new?error=No+overtime+for+that+clock-out+time", http.StatusSeeOther)
		return
	}

	creator := user.ID
	record := models.OvertimeRecord{
		EmployeeID: employee.ID,
		WorkDate:   date,
		Hours:      hours,
		IsHoliday:  holiday,
		Notes:      r.FormValue("notes"),
		CreatedBy:  &creator,
	}

	if err := database.CreateOvertimeRecord(&record); err != nil {
		http.Redirect(w, r, "/overtime/new?error=Failed+to+create+entry", http.StatusSeeOther)
		return
	}

	http.Redirect(w, r, "/dashboard?success=Overtime+entry+created", http.StatusSeeOther)
}

func (h *OvertimeHandler) EditEntryPage(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUserFromContext(r.Context())

	id, err := strconv.ParseUint(r.URL.Query().Get("id"), 10, 32)
	if err != nil {
		http.Redirect(w, r, "/dashboard?error=Invalid+entry+ID", http.StatusSeeOther)
		return
	}

	var entry models.OvertimeRecord
	if err := database.GetDB().Preload("Employee").First(&entry, id).Error; err != nil {
		http.Redirect(w, r, "/dashboard?error=Entry+not+found", http.StatusSeeOther)
		return
	}

	data := map[string]interface{}{
		"User":  user,
		"Entry": &entry,
		"Error": r.URL.Query().Get("error"),
	}
	h.templates["overtime-edit"].ExecuteTemplate(w, "base", data)
}

func (h *OvertimeHandler) UpdateEntry(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Redirect(w, r, "/dashboard?error=Invalid+form+data", http.StatusSeeOther)
		return
	}

	id, err := strconv.ParseUint(r.FormValue("id"), 10, 32)
	if err != nil {
		http.Redirect(w, r, "/dashboard?error=Invalid+entry+ID", http.StatusSeeOther)
		return
	}

	var entry models.OvertimeRecord
	if err := database.GetDB().First(&entry, id).Error; err != nil {
		http.Redirect(w, r, "/dashboard?error=Entry+not+found", http.StatusSeeOther)
		return
	}

	date, err := time.Parse("2006-01-02", r.FormValue("work_date"))
	if err != nil {
		http.Redirect(w, r, fmt.Sprintf("/overtime/edit?id=%d&error=Invalid+date+format", id), http.StatusSeeOther)
		return
	}

	hours, err := strconv.ParseFloat(r.FormValue("hours"), 64)
	if err != nil || hours <= 0 || hours > 24 {
		http.Redirect(w, r, fmt.Sprintf("/overtime/edit?id=%d&error=Invalid+hours+(must+be+between+0+and+24)", id), http.StatusSeeOther)
		return
	}

	entry.WorkDate = date
	entry.Hours = hours
	entry.IsHoliday = r.FormValue("is_holiday") == "on"
	entry.Notes = r.FormValue("notes")

	if err := database.UpdateOvertimeRecord(&entry); err != nil {
		http.Redirect(w, r, fmt.Sprintf("/overtime/edit?id=%d&error=Failed+to+update+entry", id), http.StatusSeeOther)
		return
	}

	http.Redirect(w, r, "/dashboard?success=Overtime+entry+updated", http.StatusSeeOther)
}

func (h *OvertimeHandler) DeleteEntry(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Redirect(w, r, "/dashboard?error=Invalid+form+data", http.StatusSeeOther)
		return
	}

	id, err := strconv.ParseUint(r.FormValue("id"), 10, 32)
	if err != nil {
		http.Redirect(w, r, "/dashboard?error=Invalid+entry+ID", http.StatusSeeOther)
		return
	}

	var entry models.OvertimeRecord
	if err := database.GetDB().First(&entry, id).Error; err != nil {
		http.Redirect(w, r, "/dashboard?error=Entry+not+found", http.StatusSeeOther)
		return
	}

	if err := database.GetDB().Delete(&entry).Error; err != nil {
		http.Redirect(w, r, "/dashboard?error=Failed+to+delete+entry", http.StatusSeeOther)
		return
	}

	http.Redirect(w, r, "/dashboard?success=Overtime+entry+deleted", http.StatusSeeOther)
}
