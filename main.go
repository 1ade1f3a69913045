package main

import (
	"html/template"
	"log"
	"net/http"

	"otrack/config"
	"otrack/database"
	"otrack/handlers"
	"otrack/middleware"
	"otrack/models"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize JWT secret
	middleware.SetJWTSecret(cfg.JWTSecret)

	// Initialize database
	if err := database.Init(cfg.DatabaseURL); err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}

	// Define template functions
	funcMap := template.FuncMap{
		"deref": func(p *uint) uint {
			if p == nil {
				return 0
			}
			return *p
		},
	}

	// Parse templates - each page template paired with base
	templates := make(map[string]*template.Template)
	pages := []string{
		"login", "register", "change-password", "dashboard",
		"overtime-form", "overtime-edit",
		"import", "import-preview", "import-result",
		"reports", "employees", "employee-form", "holidays", "users",
	}
	for _, page := range pages {
		templates[page] = template.Must(template.New("").Funcs(funcMap).ParseFiles(
			"templates/base.html",
			"templates/"+page+".html",
		))
	}

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(cfg, templates)
	overtimeHandler := handlers.NewOvertimeHandler(cfg, templates)
	importHandler := handlers.NewImportHandler(cfg, templates)
	reportHandler := handlers.NewReportHandler(cfg, templates)
	employeeHandler := handlers.NewEmployeeHandler(cfg, templates)
	holidayHandler := handlers.NewHolidayHandler(cfg, templates)
	userHandler := handlers.NewUserHandler(cfg, templates)

	// Setup router
	router := chi.NewRouter()
	router.Use(chimiddleware.Logger)
	router.Use(chimiddleware.Recoverer)

	// Public routes
	router.Get("/", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
	})
	router.Get("/login", authHandler.LoginPage)
	router.Post("/login", authHandler.Login)
	router.Get("/register", authHandler.RegisterPage)
	router.Post("/register", authHandler.Register)

	// Protected routes
	router.Group(func(r chi.Router) {
		r.Use(middleware.AuthMiddleware)

		// Logout (doesn't need password change check)
		r.Get("/logout", authHandler.Logout)

		// Password change routes (accessible even when password change required)
		r.Get("/change-password", authHandler.ChangePasswordPage)
		r.Post("/change-password", authHandler.ChangePassword)

		// Routes that require password to be changed first
		r.Group(func(r chi.Router) {
			r.Use(middleware.RequirePasswordChange)

			// Dashboard
			r.Get("/dashboard", overtimeHandler.Dashboard)

			// Overtime entries
			r.Get("/overtime/new", overtimeHandler.NewEntryPage)
			r.Post("/overtime/new", overtimeHandler.CreateEntry)
			r.Get("/overtime/edit", overtimeHandler.EditEntryPage)
			r.Post("/overtime/edit", overtimeHandler.UpdateEntry)
			r.Post("/overtime/delete", overtimeHandler.DeleteEntry)

			// Spreadsheet import
			r.Get("/import", importHandler.ImportPage)
			r.Get("/import/template", importHandler.DownloadTemplate)
			r.Post("/import/preview", importHandler.Preview)
			r.Post("/import/commit", importHandler.Commit)

			// Monthly reports
			r.Get("/reports", reportHandler.ReportsPage)
			r.Get("/reports/csv", reportHandler.ExportCSV)

			// Admin only routes
			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireRole(models.RoleAdmin))
				r.Get("/employees", employeeHandler.EmployeesPage)
				r.Get("/employees/new", employeeHandler.NewEmployeePage)
				r.Post("/employees/new", employeeHandler.CreateEmployee)
				r.Get("/employees/edit", employeeHandler.EditEmployeePage)
				r.Post("/employees/edit", employeeHandler.UpdateEmployee)
				r.Post("/employees/toggle", employeeHandler.ToggleEmployee)
				r.Post("/employees/delete", employeeHandler.DeleteEmployee)
				r.Get("/holidays", holidayHandler.HolidaysPage)
				r.Post("/holidays", holidayHandler.CreateHoliday)
				r.Post("/holidays/delete", holidayHandler.DeleteHoliday)
				r.Get("/users", userHandler.UsersPage)
				r.Post("/users/role", userHandler.UpdateUserRole)
				r.Post("/users/delete", userHandler.DeleteUser)
			})
		})
	})

	log.Printf("Server starting on port %s", cfg.ServerPort)
	log.Printf("Default admin credentials: admin / admin")
	log.Fatal(http.ListenAndServe(":"+cfg.ServerPort, router))
}
