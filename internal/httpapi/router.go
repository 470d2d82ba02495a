// Package httpapi is the REST adapter: it decodes requests, delegates to the
// services and renders their results. It never makes authorization decisions
// itself.
package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/divvyhq/divvy/internal/auth"
	"github.com/divvyhq/divvy/internal/middleware"
	"github.com/divvyhq/divvy/internal/service"
)

// Services bundles the service dependencies of the router.
type Services struct {
	Auth     *service.AuthService
	Groups   *service.GroupService
	Expenses *service.ExpenseService
}

// NewRouter constructs the API HTTP router.
//
// Auth routes are open; everything else under /api requires a bearer token.
// The auth middleware establishes the caller identity; handlers pass it
// explicitly into every service call.
func NewRouter(svcs Services, jwtManager *auth.JWTManager) http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.Metrics(routePattern))
	r.Use(middleware.Logging)

	// Health endpoint for infra checks.
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Handle("/metrics", promhttp.Handler())

	authHandler := NewAuthHandler(svcs.Auth)
	groupHandler := NewGroupHandler(svcs.Groups)
	expenseHandler := NewExpenseHandler(svcs.Expenses)

	r.Route("/api", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", authHandler.Register)
			r.Post("/login", authHandler.Login)
		})

		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireAuth(jwtManager))

			r.Route("/groups", func(r chi.Router) {
				r.Post("/", groupHandler.Create)
				r.Get("/", groupHandler.List)
				r.Get("/{groupID}", groupHandler.Get)
			})

			r.Route("/expenses", func(r chi.Router) {
				r.Post("/add", expenseHandler.Add)
				r.Get("/group/{groupID}", expenseHandler.ListByGroup)
			})
		})
	})

	return r
}

// routePattern returns the matched chi route pattern for metrics labels.
func routePattern(r *http.Request) string {
	if rctx := chi.RouteContext(r.Context()); rctx != nil {
		if pattern := rctx.RoutePattern(); pattern != "" {
			return pattern
		}
	}
	return "unmatched"
}
