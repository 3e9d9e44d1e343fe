package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"edudesk/internal/config"
	"edudesk/internal/handlers"
	"edudesk/internal/middleware"
	"edudesk/internal/models"
	"edudesk/internal/repository/postgres"
	"edudesk/internal/service"
)

func New(log zerolog.Logger, db *pgxpool.Pool, cfg config.Config) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestLogger(log))
	r.Use(middleware.Recoverer(log))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.Origin},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
	}))
	r.Use(httprate.LimitByIP(200, time.Minute))

	// Health
	r.Get("/healthz", handlers.Health())

	// Repos
	userRepo := postgres.NewUserRepo(db)
	studentRepo := postgres.NewStudentProfileRepo(db)
	employeeRepo := postgres.NewEmployeeProfileRepo(db)
	ticketRepo := postgres.NewTicketRepo(db)
	commentRepo := postgres.NewCommentRepo(db)

	// Services + handlers
	authSvc := service.NewAuthService(userRepo, cfg.SessionSecret)
	profileSvc := service.NewProfileService(userRepo, studentRepo, employeeRepo)
	ticketSvc := service.NewTicketService(ticketRepo, commentRepo)

	ah := handlers.NewAuthHTTP(authSvc, userRepo, log)
	ph := handlers.NewProfileHTTP(profileSvc, log)
	th := handlers.NewTicketHTTP(ticketSvc, log)
	uh := handlers.NewUserHTTP(userRepo, log)

	r.Route("/api", func(r chi.Router) {
		r.Use(middleware.WithAuth(log, cfg))

		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", ah.Register())
			r.Post("/login", ah.Login())
			r.With(middleware.RequireAuth).Post("/logout", ah.Logout())
			r.With(middleware.RequireAuth).Get("/me", ah.Me())
		})

		r.Route("/students", func(r chi.Router) {
			r.Use(middleware.RequireAuth, middleware.RequireRoles(models.RoleStudent))
			r.Get("/profile", ph.StudentGet())
			r.Put("/profile", ph.StudentPut())
			r.Get("/tickets", th.StudentTickets())
		})

		r.Route("/employees", func(r chi.Router) {
			r.Use(middleware.RequireAuth, middleware.RequireRoles(models.RoleEmployee, models.RoleAdmin))
			r.Get("/profile", ph.EmployeeGet())
			r.Put("/profile", ph.EmployeePut())
			r.Get("/tickets", th.EmployeeTickets())
		})

		r.Route("/tickets", func(r chi.Router) {
			r.Use(middleware.RequireAuth)
			r.With(middleware.RequireRoles(models.RoleStudent)).Post("/", th.Create())
			r.With(middleware.RequireRoles(models.RoleEmployee)).Get("/", th.List())
			r.Route("/{id}", func(r chi.Router) {
				r.With(middleware.RequireRoles(models.RoleEmployee)).Put("/status", th.UpdateStatus())
				r.With(middleware.RequireRoles(models.RoleEmployee, models.RoleAdmin)).Put("/assign", th.Assign())

				anyRole := middleware.RequireRoles(models.RoleStudent, models.RoleEmployee, models.RoleAdmin)
				r.With(anyRole).Post("/comments", th.AddComment())
				r.With(anyRole).Get("/comments", th.Comments())
			})
		})

		r.Route("/users", func(r chi.Router) {
			r.Use(middleware.RequireAuth, middleware.RequireRoles(models.RoleAdmin))
			r.Get("/", uh.List())
			r.Patch("/{id}/active", uh.SetActive())
		})
	})

	return r
}
