package handlers

import (
	"html/template"
	"net/http"
	"strconv"

	"otrack/config"
	"otrack/database"
	"otrack/middleware"
	"otrack/models"
)

type UserHandler struct {
	config    *config.Config
	templates map[string]*template.Template
}

func NewUserHandler(cfg *config.Config, templates map[string]*template.Template) *UserHandler {
	return &UserHandler{
		config:    cfg,
		templates: templates,
	}
}

func (h *UserHandler) UsersPage(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUserFromContext(r.Context())

	var users []models.User
	database.GetDB().Order("created_at desc").Find(&users)

	data := map[string]interface{}{
		"User":    user,
		"Users":   users,
		"Error":   r.URL.Query().Get("error"),
		"Success": r.URL.Query().Get("success"),
	}
	h.templates["users"].ExecuteTemplate(w, "base", data)
}

// UpdateUserRole switches an account between the user and admin roles.
func (h *UserHandler) UpdateUserRole(w http.ResponseWriter, r *http.Request) {
	current := middleware.GetUserFromContext(r.Context())

	if err := r.ParseForm(); err != nil {
		http.Redirect(w, r, "/users?error=Invalid+form+data", http.StatusSeeOther)
		return
	}

	id, err := strconv.ParseUint(r.FormValue("id"), 10, 32)
	if err != nil {
		http.Redirect(w, r, "/users?error=Invalid+user+ID", http.StatusSeeOther)
		return
	}

	role := models.Role(r.FormValue("role"))
	if role != models.RoleAdmin && role != models.RoleUser {
		http.Redirect(w, r, "/users?error=Invalid+role", http.StatusSeeOther)
		return
	}

	if current != nil && current.ID == uint(id) {
		http.Redirect(w, r, "/users?error=You+cannot+change+your+own+role", http.StatusSeeOther)
		return
	}

	var target models.User
	if err := database.GetDB().First(&target, id).Error; err != nil {
		http.Redirect(w, r, "/users?error=User+not+found", http.StatusSeeOther)
		return
	}

	target.Role = role
	if err := database.GetDB().Save(&target).Error; err != nil {
		http.Redirect(w, r, "/users?error=Failed+to+update+user", http.StatusSeeOther)
		return
	}

	http.Redirect(w, r, "/users?success=Role+updated", http.StatusSeeOther)
}

func (h *UserHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	current := middleware.GetUserFromContext(r.Context())

	if err := r.ParseForm(); err != nil {
		http.Redirect(w, r, "/users?error=Invalid+form+data", http.StatusSeeOther)
		return
	}

	id, err := strconv.ParseUint(r.FormValue("id"), 10, 32)
	if err != nil {
		http.Redirect(w, r, "/users?error=Invalid+user+ID", http.StatusSeeOther)
		return
	}

	if current != nil && current.ID == uint(id) {
		http.Redirect(w, r, "/users?error=You+cannot+delete+your+own+account", http.StatusSeeOther)
		return
	}

	var target models.User
	if err := database.GetDB().First(&target, id).Error; err != nil {
		http.Redirect(w, r, "/users?error=User+not+found", http.StatusSeeOther)
		return
	}

	if err := database.GetDB().Delete(&target).Error; err != nil {
		http.Redirect(w, r, "/users?error=Failed+to+delete+user", http.StatusSeeOther)
		return
	}

	http.Redirect(w, r, "/users?success=User+deleted", http.StatusSeeOther)
}
