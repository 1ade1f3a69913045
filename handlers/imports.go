package handlers

import (
	"fmt"
	"html/template"
	"net/http"
	"strconv"
	"time"

	"otrack/config"
	"otrack/database"
	"otrack/ingest"
	"otrack/middleware"
	"otrack/models"
	"otrack/payroll"
)

type ImportHandler struct {
	config    *config.Config
	templates map[string]*template.Template
}

func NewImportHandler(cfg *config.Config, templates map[string]*template.Template) *ImportHandler {
	return &ImportHandler{
		config:    cfg,
		templates: templates,
	}
}

// importResult is one committed row for the result page.
type importResult struct {
	EndTime  string
	Hours    float64
	Holiday  bool
	Employee string
	Err      string
}

func (h *ImportHandler) ImportPage(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUserFromContext(r.Context())

	data := map[string]interface{}{
		"User":  user,
		"Today": time.Now().Format("2006-01-02"),
		"Error": r.URL.Query().Get("error"),
	}
	h.templates["import"].ExecuteTemplate(w, "base", data)
}

// DownloadTemplate streams the sample workbook.
func (h *ImportHandler) DownloadTemplate(w http.ResponseWriter, r *http.Request) {
	f, err := ingest.TemplateWorkbook()
	if err != nil {
		http.Error(w, "Failed to build template", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", "attachment; filename=overtime_template.xlsx")
	if err := f.Write(w); err != nil {
		http.Error(w, "Failed to write template", http.StatusInternalServerError)
		return
	}
}

// Preview parses the uploaded file and shows the computed rows. Hours are
// computed for a regular day here; flagging a row as a holiday on the preview
// makes the commit step recompute it against the 08:00 threshold.
func (h *ImportHandler) Preview(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUserFromContext(r.Context())

	if err := r.ParseMultipartForm(10 << 20); err != nil {
		http.Redirect(w, r, "/import?error=Invalid+upload", http.StatusSeeOther)
		return
	}

	workDate := r.FormValue("work_date")
	if _, err := time.Parse("2006-01-02", workDate); err != nil {
		http.Redirect(w, r, "/import?error=Invalid+work+date", http.StatusSeeOther)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		http.Redirect(w, r, "/import?error=Choose+a+file+to+upload", http.StatusSeeOther)
		return
	}
	defer file.Close()

	result, err := ingest.ReadFile(file, header.Filename)
	if err != nil {
		http.Redirect(w, r, "/import?error=Could+not+read+the+file", http.StatusSeeOther)
		return
	}
	if len(result.Rows) == 0 {
		http.Redirect(w, r, "/import?error=No+overtime+hours+in+the+file", http.StatusSeeOther)
		return
	}

	employees, err := database.ActiveEmployees()
	if err != nil {
		http.Error(w, "Failed to load employees", http.StatusInternalServerError)
		return
	}

	data := map[string]interface{}{
		"User":      user,
		"Rows":      result.Rows,
		"Skipped":   result.Skipped,
		"WorkDate":  workDate,
		"Employees": employees,
	}
	h.templates["import-preview"].ExecuteTemplate(w, "base", data)
}

// Commit creates one record per previewed row. Rows are processed one at a
// time; a failing row is reported and does not roll back earlier rows.
func (h *ImportHandler) Commit(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUserFromContext(r.Context())
	if user == nil {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	if err := r.ParseForm(); err != nil {
		http.Redirect(w, r, "/import?error=Invalid+form+data", http.StatusSeeOther)
		return
	}

	workDate, err := time.Parse("2006-01-02", r.FormValue("work_date"))
	if err != nil {
		http.Redirect(w, r, "/import?error=Invalid+work+date", http.StatusSeeOther)
		return
	}

	count, err := strconv.Atoi(r.FormValue("count"))
	if err != nil || count <= 0 {
		http.Redirect(w, r, "/import?error=Nothing+to+import", http.StatusSeeOther)
		return
	}

	results := make([]importResult, 0, count)
	var successCount, errorCount int

	for i := 0; i < count; i++ {
		endTime := r.FormValue(fmt.Sprintf("end_time_%d", i))
		holiday := r.FormValue(fmt.Sprintf("holiday_%d", i)) == "on"

		// Recompute with the submitted day type: marking a row as a holiday
		// changes the threshold, not just the pay multiplier.
		hours := payroll.ComputeHours(endTime, holiday)

		res := importResult{EndTime: endTime, Hours: hours, Holiday: holiday}

		employeeID, err := strconv.ParseUint(r.FormValue(fmt.Sprintf("employee_id_%d", i)), 10, 32)
		if err != nil || employeeID == 0 {
			res.Err = "no employee selected"
			errorCount++
			results = append(results, res)
			continue
		}

		var employee models.Employee
		if err := database.GetDB().First(&employee, employeeID).Error; err != nil {
			res.Err = "employee not found"
			errorCount++
			results = append(results, res)
			continue
		}
		res.Employee = employee.FullName

		if hours <= 0 {
			res.Err = "hours must be greater than zero"
			errorCount++
			results = append(results, res)
			continue
		}

		creator := user.ID
		record := models.OvertimeRecord{
			EmployeeID: employee.ID,
			WorkDate:   workDate,
			Hours:      hours,
			IsHoliday:  holiday,
			CreatedBy:  &creator,
		}
		if err := database.CreateOvertimeRecord(&record); err != nil {
			res.Err = "failed to save record"
			errorCount++
			results = append(results, res)
			continue
		}

		successCount++
		results = append(results, res)
	}

	data := map[string]interface{}{
		"User":         user,
		"Results":      results,
		"SuccessCount": successCount,
		"ErrorCount":   errorCount,
		"WorkDate":     workDate.Format("2006-01-02"),
	}
	h.templates["import-result"].ExecuteTemplate(w, "base", data)
}
