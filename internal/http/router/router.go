package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"zapshift/internal/domain"
	appmw "zapshift/internal/http/middleware"
	"zapshift/internal/http/middleware/ratelimit"
	"zapshift/internal/logx"

	"zapshift/internal/http/handlers"
)

// Handlers groups every HTTP handler the router mounts.
type Handlers struct {
	Base      *handlers.Handlers
	Parcels   *handlers.ParcelHandler
	Lifecycle *handlers.LifecycleHandler
	Payments  *handlers.PaymentHandler
	Riders    *handlers.RiderHandler
	Tracking  *handlers.TrackingHandler
}

// New constructs a chi-based http.Handler with base middleware and routes.
func New(logger logx.Logger, h Handlers, auth *appmw.Auth, rl *ratelimit.Middleware) http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Use(appmw.Observability(logger))
	if rl != nil {
		r.Use(rl.Handler())
	}

	r.Get("/ping", h.Base.Ping)
	r.Method(http.MethodHead, "/healthcheck", http.HandlerFunc(h.Base.HealthcheckHead))
	r.Handle("/metrics", promhttp.Handler())
	r.NotFound(http.HandlerFunc(h.Base.NotFound))

	// public tracking timeline, no credential required
	r.Get("/tracking/{trackingId}", h.Tracking.Log)

	r.Group(func(r chi.Router) {
		r.Use(auth.Authenticate)

		r.Route("/parcels", func(r chi.Router) {
			r.Post("/", h.Parcels.Create)
			r.Get("/", h.Parcels.List)
			r.Get("/{id}", h.Parcels.GetByID)

			r.With(auth.Require(domain.RoleAdmin)).Delete("/{id}", h.Parcels.Delete)
			r.With(auth.Require(domain.RoleAdmin)).Get("/stats", h.Parcels.Stats)
			r.With(auth.Require(domain.RoleAdmin)).Post("/{id}/assign", h.Lifecycle.Assign)
			r.With(auth.Require(domain.RoleRider, domain.RoleAdmin)).Post("/{id}/deliver", h.Lifecycle.Deliver)
			r.With(auth.Require(domain.RoleAdmin)).Patch("/{id}/status", h.Lifecycle.UpdateStatus)
		})

		r.Route("/payments", func(r chi.Router) {
			r.Post("/checkout-session", h.Payments.CreateSession)
			r.Post("/reconcile", h.Payments.Reconcile)
			r.Get("/", h.Payments.List)
		})

		r.Route("/riders", func(r chi.Router) {
			r.Post("/", h.Riders.Create)
			r.Get("/{id}", h.Riders.GetByID)
			r.Patch("/", h.Riders.Update)

			r.With(auth.Require(domain.RoleAdmin)).Get("/", h.Riders.List)
			r.With(auth.Require(domain.RoleAdmin)).Post("/{id}/approve", h.Riders.Approve)
		})
	})

	return r
}
