package handlers

import (
	"fmt"
	"html/template"
	"net/http"
	"strconv"

	"otrack/config"
	"otrack/database"
	"otrack/middleware"
	"otrack/models"
)

type EmployeeHandler struct {
	config    *config.Config
	templates map[string]*template.Template
}

func NewEmployeeHandler(cfg *config.Config, templates map[string]*template.Template) *EmployeeHandler {
	return &EmployeeHandler{
		config:    cfg,
		templates: templates,
	}
}

func (h *EmployeeHandler) EmployeesPage(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUserFromContext(r.Context())

	var employees []models.Employee
	database.GetDB().Preload("User").Order("created_at desc").Find(&employees)

	data := map[string]interface{}{
		"User":      user,
		"Employees": employees,
		"Error":     r.URL.Query().Get("error"),
		"Success":   r.URL.Query().Get("success"),
	}
	h.templates["employees"].ExecuteTemplate(w, "base", data)
}

func (h *EmployeeHandler) NewEmployeePage(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUserFromContext(r.Context())

	var users []models.User
	database.GetDB().Find(&users)

	data := map[string]interface{}{
		"User":        user,
		"Users":       users,
		"Departments": models.Departments(),
		"Error":       r.URL.Query().Get("error"),
	}
	h.templates["employee-form"].ExecuteTemplate(w, "base", data)
}

func (h *EmployeeHandler) CreateEmployee(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Redirect(w, r, "/employees/new?error=Invalid+form+data", http.StatusSeeOther)
		return
	}

	number := r.FormValue("employee_number")
	fullName := r.FormValue("full_name")
	department := models.Department(r.FormValue("department"))
	salaryStr := r.FormValue("base_salary")
	userIDStr := r.FormValue("user_id")

	if number == "" || fullName == "" {
		http.Redirect(w, r, "/employees/new?error=Employee+number+and+name+are+required", http.StatusSeeOther)
		return
	}
	if !department.Valid() {
		http.Redirect(w, r, "/employees/new?error=Invalid+department", http.StatusSeeOther)
		return
	}

	salary, err := strconv.ParseFloat(salaryStr, 64)
	if err != nil || salary <= 0 {
		http.Redirect(w, r, "/employees/new?error=Base+salary+must+be+greater+than+zero", http.StatusSeeOther)
		return
	}

	employee := models.Employee{
		EmployeeNumber: number,
		FullName:       fullName,
		Department:     department,
		BaseSalary:     salary,
		IsActive:       true,
	}
	if userIDStr != "" {
		if uid, err := strconv.ParseUint(userIDStr, 10, 32); err == nil && uid > 0 {
			id := uint(uid)
			employee.UserID = &id
		}
	}

	if err := database.GetDB().Create(&employee).Error; err != nil {
		http.Redirect(w, r, "/employees/new?error=Failed+to+create+employee", http.StatusSeeOther)
		return
	}

	http.Redirect(w, r, "/employees?success=Employee+created", http.StatusSeeOther)
}

func (h *EmployeeHandler) EditEmployeePage(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUserFromContext(r.Context())

	id, err := strconv.ParseUint(r.URL.Query().Get("id"), 10, 32)
	if err != nil {
		http.Redirect(w, r, "/employees?error=Invalid+employee+ID", http.StatusSeeOther)
		return
	}

	var employee models.Employee
	if err := database.GetDB().First(&employee, id).Error; err != nil {
		http.Redirect(w, r, "/employees?error=Employee+not+found", http.StatusSeeOther)
		return
	}

	var users []models.User
	database.GetDB().Find(&users)

	data := map[string]interface{}{
		"User":        user,
		"Employee":    &employee,
		"Users":       users,
		"Departments": models.Departments(),
		"Error":       r.URL.Query().Get("error"),
	}
	h.templates["employee-form"].ExecuteTemplate(w, "base", data)
}

func (h *EmployeeHandler) UpdateEmployee(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Redirect(w, r, "/employees?error=Invalid+form+data", http.StatusSeeOther)
		return
	}

	id, err := strconv.ParseUint(r.FormValue("id"), 10, 32)
	if err != nil {
		http.Redirect(w, r, "/employees?error=Invalid+employee+ID", http.StatusSeeOther)
		return
	}

	var employee models.Employee
	if err := database.GetDB().First(&employee, id).Error; err != nil {
		http.Redirect(w, r, "/employees?error=Employee+not+found", http.StatusSeeOther)
		return
	}

	number := r.FormValue("employee_number")
	fullName := r.FormValue("full_name")
	department := models.Department(r.FormValue("department"))
	salaryStr := r.FormValue("base_salary")
	userIDStr := r.FormValue("user_id")

	if number == "" || fullName == "" || !department.Valid() {
		http.Redirect(w, r, fmt.Sprintf("/employees/edit?id=%d&error=Invalid+employee+data", id), http.StatusSeeOther)
		return
	}

	salary, err := strconv.ParseFloat(salaryStr, 64)
	if err != nil || salary <= 0 {
		http.Redirect(w, r, fmt.Sprintf("/employees/edit?id=%d&error=Base+salary+must+be+greater+than+zero", id), http.StatusSeeOther)
		return
	}

	employee.EmployeeNumber = number
	employee.FullName = fullName
	employee.Department = department
	employee.BaseSalary = salary
	employee.UserID = nil
	if userIDStr != "" {
		if uid, err := strconv.ParseUint(userIDStr, 10, 32); err == nil && uid > 0 {
			linked := uint(uid)
			employee.UserID = &linked
		}
	}

	if err := database.GetDB().Save(&employee).Error; err != nil {
		http.Redirect(w, r, fmt.Sprintf("/employees/edit?id=%d&error=Failed+to+update+employee", id), http.StatusSeeOther)
		return
	}

	http.Redirect(w, r, "/employees?success=Employee+updated", http.StatusSeeOther)
}

// ToggleEmployee flips the active flag. Inactive employees keep their history
// but stop appearing in entry and import dropdowns.
func (h *EmployeeHandler) ToggleEmployee(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Redirect(w, r, "/employees?error=Invalid+form+data", http.StatusSeeOther)
		return
	}

	id, err := strconv.ParseUint(r.FormValue("id"), 10, 32)
	if err != nil {
		http.Redirect(w, r, "/employees?error=Invalid+employee+ID", http.StatusSeeOther)
		return
	}

	var employee models.Employee
	if err := database.GetDB().First(&employee, id).Error; err != nil {
		http.Redirect(w, r, "/employees?error=Employee+not+found", http.StatusSeeOther)
		return
	}

	employee.IsActive = !employee.IsActive
	if err := database.GetDB().Save(&employee).Error; err != nil {
		http.Redirect(w, r, "/employees?error=Failed+to+update+employee", http.StatusSeeOther)
		return
	}

	http.Redirect(w, r, "/employees?success=Employee+status+updated", http.StatusSeeOther)
}

func (h *EmployeeHandler) DeleteEmployee(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Redirect(w, r, "/employees?error=Invalid+form+data", http.StatusSeeOther)
		return
	}

	id, err := strconv.ParseUint(r.FormValue("id"), 10, 32)
	if err != nil {
		http.Redirect(w, r, "/employees?error=Invalid+employee+ID", http.StatusSeeOther)
		return
	}

	var employee models.Employee
	if err := database.GetDB().First(&employee, id).Error; err != nil {
		http.Redirect(w, r, "/employees?error=Employee+not+found", http.StatusSeeOther)
		return
	}

	if err := database.GetDB().Delete(&employee).Error; err != nil {
		http.Redirect(w, r, "/employees?error=Failed+to+delete+employee", http.StatusSeeOther)
		return
	}

	http.Redirect(w, r, "/employees?success=Employee+deleted", http.StatusSeeOther)
}
