package http

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/cmlabs-hris/attendance-dashboard-go/internal/handler/http/middleware"
	"github.com/cmlabs-hris/attendance-dashboard-go/internal/handler/http/response"
	"github.com/cmlabs-hris/attendance-dashboard-go/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

// Pinger reports whether a backing store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

type RouterOptions struct {
	Logger         *slog.Logger
	AllowedOrigins []string
	AuthRequired   bool
	Readiness      Pinger
}

type Handlers struct {
	Auth     AuthHandler
	Employee EmployeeHandler
	Leave    LeaveHandler
	Report   ReportHandler
}

func NewRouter(opts RouterOptions, JWTService jwt.Service, h Handlers) *chi.Mux {
	r := chi.NewRouter()

	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   opts.AllowedOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Content-Disposition"},
		MaxAge:           300,
	}))

	r.Use(chiMiddleware.RequestID)
	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelInfo,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Get("/readyz", readyz(opts.Readiness))

	r.Route("/api", func(r chi.Router) {
		r.Post("/login", h.Auth.Login)

		r.Group(func(r chi.Router) {
			if opts.AuthRequired {
				r.Use(jwtauth.Verifier(JWTService.JWTAuth()))
				r.Use(middleware.AuthRequired(JWTService))
			}

			r.Get("/employees", h.Employee.List)
			r.Get("/leave-types", h.Leave.ListTypes)

			r.Route("/leaves", func(r chi.Router) {
				r.Post("/batch", h.Leave.BatchSave)
				r.Get("/by-date", h.Leave.GetByDate)
				r.Get("/by-date/export", h.Leave.ExportByDate)
				r.Get("/summary", h.Leave.Summary)
			})

			r.Get("/daily-attendance", h.Report.DailyAttendance)
			r.Get("/leave-balances", h.Report.LeaveBalances)
		})
	})
	return r
}

func readyz(p Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if p != nil {
			ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
			defer cancel()
			if err := p.Ping(ctx); err != nil {
				slog.Error("Readiness check failed", "error", err)
				response.ServiceUnavailable(w, "Database unavailable")
				return
			}
		}
		response.Success(w, map[string]string{"status": "ready"})
	}
}
