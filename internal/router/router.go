package router

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"rent-a-shelf/internal/config"
	"rent-a-shelf/internal/handler"
	"rent-a-shelf/internal/middleware"
)

type Handlers struct {
	Auth     *handler.AuthHandler
	Status   *handler.StatusHandler
	Branch   *handler.BranchHandler
	Employee *handler.EmployeeHandler
	Shelf    *handler.ShelfHandler
	Client   *handler.ClientHandler
	Payment  *handler.PaymentHandler

	// HealthCheck pings the backing store; nil means process liveness only.
	HealthCheck func(ctx context.Context) error
}

func New(cfg *config.Config, authMiddleware *middleware.AuthMiddleware, h Handlers) http.Handler {
	r := chi.NewRouter()
	rateLimitMiddleware := middleware.NewRateLimitMiddleware(cfg.RateLimitRPM, cfg.AuthRateLimitRPM)

	r.Use(middleware.Recovery)
	r.Use(middleware.Logging)
	r.Use(middleware.CORS(cfg.CORSOrigins))
	r.Use(middleware.SecurityHeaders)
	r.Use(rateLimitMiddleware.Handler)

	r.Get("/health", func(w http.ResponseWriter, req *http.Request) {
		if h.HealthCheck != nil {
			if err := h.HealthCheck(req.Context()); err != nil {
				w.WriteHeader(http.StatusServiceUnavailable)
				_, _ = w.Write([]byte("degraded"))
				return
			}
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Route("/api/v1", func(api chi.Router) {
		api.Use(middleware.Timeout(cfg.RequestTimeout))

		api.Route("/auth", func(auth chi.Router) {
			auth.Post("/login", h.Auth.Login)
			auth.Post("/password-reset-request", h.Auth.RequestReset)
			auth.Post("/password-reset", h.Auth.ResetPassword)
			auth.With(authMiddleware.RequireAuth).Get("/me", h.Auth.Me)
		})

		api.With(authMiddleware.RequireAuth).Post("/statuses", h.Status.Create)
		api.With(authMiddleware.RequireAuth).Get("/statuses", h.Status.List)
		api.With(authMiddleware.RequireAuth).Delete("/statuses/{status_id}", h.Status.Delete)
		api.With(authMiddleware.RequireAuth).Post("/branches", h.Branch.Create)
		api.With(authMiddleware.RequireAuth).Get("/branches", h.Branch.List)
		api.With(authMiddleware.RequireAuth).Post("/employees", h.Employee.Register)
		api.With(authMiddleware.RequireAuth).Get("/employees", h.Employee.List)
		api.With(authMiddleware.RequireAuth).Get("/employees/{employee_id}", h.Employee.Get)
		api.With(authMiddleware.RequireAuth).Put("/employees/{employee_id}", h.Employee.Update)
		api.With(authMiddleware.RequireAuth).Post("/shelves", h.Shelf.Create)
		api.With(authMiddleware.RequireAuth).Get("/shelves", h.Shelf.List)
		api.With(authMiddleware.RequireAuth).Post("/shelf-types", h.Shelf.CreateType)
		api.With(authMiddleware.RequireAuth).Get("/shelf-types", h.Shelf.ListTypes)
		api.With(authMiddleware.RequireAuth).Post("/clients", h.Client.Create)
		api.With(authMiddleware.RequireAuth).Get("/clients", h.Client.List)
		api.With(authMiddleware.RequireAuth).Post("/payment-methods", h.Payment.CreateMethod)
		api.With(authMiddleware.RequireAuth).Get("/payment-methods", h.Payment.ListMethods)
		api.With(authMiddleware.RequireAuth).Post("/payments", h.Payment.RecordPayment)
		api.With(authMiddleware.RequireAuth).Get("/payments", h.Payment.ListPayments)
	})

	return r
}
