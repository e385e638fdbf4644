package rest

import (
	"database/sql"
	"log/slog"
	"net/http"

	"github.com/dkravets/unit-roster/internal/analytics"
	"github.com/dkravets/unit-roster/internal/auth"
	"github.com/dkravets/unit-roster/internal/dutytype"
	"github.com/dkravets/unit-roster/internal/equipment"
	"github.com/dkravets/unit-roster/internal/personnel"
	"github.com/dkravets/unit-roster/internal/plan"
	"github.com/dkravets/unit-roster/internal/schedule"
	"github.com/dkravets/unit-roster/internal/transport/middleware"
	"github.com/dkravets/unit-roster/internal/transport/swagger"
	"github.com/dkravets/unit-roster/internal/vacation"
	"github.com/go-chi/chi"
)

type Handlers struct {
	Auth      *auth.Handler
	Personnel *personnel.Handler
	DutyType  *dutytype.Handler
	Equipment *equipment.Handler
	Schedule  *schedule.Handler
	Plan      *plan.Handler
	Vacation  *vacation.Handler
	Analytics *analytics.Handler
}

// RegisterAllRoutes wires the full API. Reads are open to any authenticated
// identity; mutations are gated per the role matrix: duty-type mutations and
// personnel/equipment deletes are admin-only, every other write takes admin
// or planner.
func RegisterAllRoutes(router *chi.Mux, db *sql.DB, h Handlers, allowedOrigins string, logger *slog.Logger) {
	healthHandler := NewHealthHandler(db)

	router.Use(middleware.CORS(allowedOrigins))
	router.Use(middleware.RequestID)
	router.Use(middleware.LoggingMiddleware(logger))
	router.Use(middleware.RecoveryMiddleware(logger))

	router.Get("/openapi.yml", func(w http.ResponseWriter, r *http.Request) {
		http.ServeFile(w, r, "./api/openapi.yml")
	})
	router.Handle("/swagger/*", swagger.Handler())

	router.Route("/api", func(r chi.Router) {
		r.Get("/ping", healthHandler.pingHandler)
		r.Get("/health", healthHandler.healthCheckHandler)

		r.Post("/auth/login", h.Auth.Login)
		r.Get("/auth/me", h.Auth.Me)

		r.Group(func(ar chi.Router) {
			ar.Use(h.Auth.Middleware)

			ar.Post("/auth/logout", h.Auth.Logout)

			ar.Get("/dashboard", h.Analytics.Dashboard)
			ar.Get("/analytics/summary", h.Analytics.Summary)
			ar.Get("/personnel", h.Personnel.List)
			ar.Get("/duty-types", h.DutyType.List)
			ar.Get("/equipment", h.Equipment.List)
			ar.Get("/schedule", h.Schedule.List)
			ar.Get("/plan", h.Plan.List)
			ar.Get("/vacations", h.Vacation.List)

			ar.Group(func(wr chi.Router) {
				wr.Use(h.Auth.RequireRoles(auth.RoleAdmin, auth.RolePlanner))

				wr.Post("/personnel", h.Personnel.Create)
				wr.Put("/personnel/{id}", h.Personnel.Update)
				wr.Post("/equipment", h.Equipment.Create)
				wr.Put("/equipment/{id}", h.Equipment.Update)
				wr.Post("/schedule", h.Schedule.Upsert)
				wr.Delete("/schedule/{id}", h.Schedule.Delete)
				wr.Post("/plan", h.Plan.Create)
				wr.Put("/plan/{id}", h.Plan.Update)
				wr.Delete("/plan/{id}", h.Plan.Delete)
				wr.Post("/vacations", h.Vacation.Create)
				wr.Put("/vacations/{id}", h.Vacation.Update)
				wr.Delete("/vacations/{id}", h.Vacation.Delete)
			})

			ar.Group(func(adm chi.Router) {
				adm.Use(h.Auth.RequireRoles(auth.RoleAdmin))

				adm.Post("/duty-types", h.DutyType.Create)
				adm.Put("/duty-types/{id}", h.DutyType.Update)
				adm.Delete("/duty-types/{id}", h.DutyType.Delete)
				adm.Delete("/personnel/{id}", h.Personnel.Delete)
				adm.Delete("/equipment/{id}", h.Equipment.Delete)
			})
		})
	})
}
