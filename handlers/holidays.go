package handlers

import (
	"html/template"
	"net/http"
	"strconv"
	"time"

	"otrack/config"
	"otrack/database"
	"otrack/middleware"
	"otrack/models"
)

type HolidayHandler struct {
	config    *config.Config
	templates map[string]*template.Template
}

func NewHolidayHandler(cfg *config.Config, templates map[string]*template.Template) *HolidayHandler {
	return &HolidayHandler{
		config:    cfg,
		templates: templates,
	}
}

func (h *HolidayHandler) HolidaysPage(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUserFromContext(r.Context())

	var holidays []models.Holiday
	database.GetDB().Order("date desc").Find(&holidays)

	data := map[string]interface{}{
		"User":     user,
		"Holidays": holidays,
		"Today":    time.Now().Format("2006-01-02"),
		"Error":    r.URL.Query().Get("error"),
		"Success":  r.URL.Query().Get("success"),
	}
	h.templates["holidays"].ExecuteTemplate(w, "base", data)
}

func (h *HolidayHandler) CreateHoliday(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Redirect(w, r, "/holidays?error=Invalid+form+data", http.StatusSeeOther)
		return
	}

	date, err := time.Parse("2006-01-02", r.FormValue("date"))
	if err != nil {
		http.Redirect(w, r, "/holidays?error=Invalid+date+format", http.StatusSeeOther)
		return
	}

	holiday := models.Holiday{
		Date:        date,
		Description: r.FormValue("description"),
	}

	if err := database.GetDB().Create(&holiday).Error; err != nil {
		http.Redirect(w, r, "/holidays?error=Failed+to+add+holiday+(date+may+already+exist)", http.StatusSeeOther)
		return
	}

	http.Redirect(w, r, "/holidays?success=Holiday+added", http.StatusSeeOther)
}

func (h *HolidayHandler) DeleteHoliday(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Redirect(w, r, "/holidays?error=Invalid+form+data", http.StatusSeeOther)
		return
	}

	id, err := strconv.ParseUint(r.FormValue("id"), 10, 32)
	if err != nil {
		http.Redirect(w, r, "/holidays?error=Invalid+holiday+ID", http.StatusSeeOther)
		return
	}

	if err := database.GetDB().Delete(&models.Holiday{}, id).Error; err != nil {
		http.Redirect(w, r, "/holidays?error=Failed+to+delete+holiday", http.StatusSeeOther)
		return
	}

	http.Redirect(w, r, "/holidays?success=Holiday+deleted", http.StatusSeeOther)
}
