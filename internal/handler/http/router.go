package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
	"github.com/soomspa/spa-backend-go/internal/handler/http/middleware"
	"github.com/soomspa/spa-backend-go/internal/pkg/jwt"
)

type Handlers struct {
	Auth         AuthHandler
	Employee     EmployeeHandler
	Course       CourseHandler
	Sale         SaleHandler
	Attendance   AttendanceHandler
	ExtraPayment ExtraPaymentHandler
	Expense      ExpenseHandler
	Settlement   SettlementHandler
	Dashboard    DashboardHandler
}

func NewRouter(jwtService jwt.Service, h Handlers) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "spa-backend"),
		slog.String("version", "v1.0.0"),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Use(middleware.RateLimit("10-M"))
			r.Post("/register", h.Auth.Register)
			r.Post("/login", h.Auth.Login)
			r.Post("/refresh", h.Auth.RefreshToken)
			r.Post("/logout", h.Auth.Logout)
			r.Route("/oauth", func(r chi.Router) {
				r.Get("/google", h.Auth.GoogleRedirect)
				r.Get("/callback/google", h.Auth.GoogleCallback)
			})
		})

		// Requires authentication. Every resource is manager-level; the
		// destructive and money-moving routes are owner-only.
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))
			r.Use(middleware.RequireManager)

			r.Route("/employees", func(r chi.Router) {
				r.Get("/", h.Employee.List)
				r.Post("/", h.Employee.Create)
				r.Get("/{id}", h.Employee.Get)
				r.Put("/{id}", h.Employee.Update)
				r.Post("/{id}/resign", h.Employee.Resign)

				r.With(middleware.RequireOwner).Delete("/{id}", h.Employee.Delete)
			})

			r.Route("/courses", func(r chi.Router) {
				r.Get("/", h.Course.List)
				r.Post("/", h.Course.Create)
				r.Get("/{id}", h.Course.Get)
				r.Put("/{id}", h.Course.Update)
				r.Delete("/{id}", h.Course.Delete)
			})

			r.Route("/sales", func(r chi.Router) {
				r.Get("/", h.Sale.List)
				r.Post("/", h.Sale.Create)
				r.Get("/{id}", h.Sale.Get)
				r.Put("/{id}", h.Sale.Update)
				r.Delete("/{id}", h.Sale.Delete)
			})

			r.Route("/attendances", func(r chi.Router) {
				r.Get("/", h.Attendance.List)
				r.Post("/clock-in", h.Attendance.ClockIn)
				r.Post("/clock-out", h.Attendance.ClockOut)
				r.Get("/{id}", h.Attendance.Get)
				r.Put("/{id}", h.Attendance.Update)
				r.Delete("/{id}", h.Attendance.Delete)
			})

			r.Route("/extra-payments", func(r chi.Router) {
				r.Get("/", h.ExtraPayment.List)
				r.Post("/", h.ExtraPayment.Create)
				r.Get("/{id}", h.ExtraPayment.Get)
				r.Delete("/{id}", h.ExtraPayment.Delete)
			})

			r.Route("/expenses", func(r chi.Router) {
				r.Get("/", h.Expense.List)
				r.Post("/", h.Expense.Create)
				r.Get("/{id}", h.Expense.Get)
				r.Put("/{id}", h.Expense.Update)
				r.Delete("/{id}", h.Expense.Delete)
			})

			r.Route("/settlements", func(r chi.Router) {
				r.Get("/", h.Settlement.List)
				r.Post("/preview", h.Settlement.Preview)
				r.Get("/weekly-preview", h.Settlement.WeeklyPreview)
				r.Get("/{id}", h.Settlement.Get)

				// Confirming and reversing a payout moves money.
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireOwner)
					r.Post("/", h.Settlement.Create)
					r.Delete("/{id}", h.Settlement.Delete)
				})
			})

			r.Get("/dashboard/summary", h.Dashboard.Summary)
		})
	})
	return r
}
