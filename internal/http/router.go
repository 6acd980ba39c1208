package http

import (
	"net/http"
	"strings"
	"time"

	"smarthire/internal/domain/audit"
	"smarthire/internal/domain/user"
	"smarthire/internal/http/handlers"
	"smarthire/internal/http/metrics"
	httpmw "smarthire/internal/http/middleware"
	"smarthire/internal/observability"
)

type RouterDependencies struct {
	AuthHandler         *handlers.AuthHandler
	CompanyHandler      *handlers.CompanyHandler
	JobHandler          *handlers.JobHandler
	ApplicationHandler  *handlers.ApplicationHandler
	SubscriptionHandler *handlers.SubscriptionHandler
	PaymentHandler      *handlers.PaymentHandler
	AuthMiddleware      *httpmw.AuthMiddleware
	Metrics             *metrics.Collector
	MetricsHandler      *metrics.Handler
	AuditRepo           audit.Repository
	Logger              observability.Logger
	RequestTimeout      time.Duration
}

type Router struct {
	deps RouterDependencies
}

const maxBodyBytes = 1 << 20

func NewRouter(deps RouterDependencies) http.Handler {
	return &Router{deps: deps}
}

func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	handler := httpmw.Chain(r.baseHandler(),
		httpmw.RequestID,
		httpmw.Logging(r.deps.Logger),
		httpmw.BodyLimit(maxBodyBytes),
		httpmw.Recover,
		httpmw.Metrics(r.deps.Metrics),
		httpmw.Timeout(r.deps.RequestTimeout),
		httpmw.Audit(r.deps.AuditRepo, r.deps.Logger),
	)
	handler.ServeHTTP(w, req)
}

func (r *Router) baseHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		path := strings.TrimSuffix(req.URL.Path, "/")
		if path == "" {
			path = "/"
		}

		switch {
		case req.Method == http.MethodGet && path == "/health":
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte("ok"))
			return
		case req.Method == http.MethodGet && path == "/metrics":
			r.deps.MetricsHandler.ServeHTTP(w, req)
			return
		case req.Method == http.MethodPost && path == "/auth/register":
			r.deps.AuthHandler.Register(w, req)
			return
		case req.Method == http.MethodPost && path == "/auth/login":
			r.deps.AuthHandler.Login(w, req)
			return
		case req.Method == http.MethodPost && path == "/auth/refresh":
			r.deps.AuthHandler.Refresh(w, req)
			return
		case req.Method == http.MethodGet && path == "/subscriptions/plans":
			r.deps.SubscriptionHandler.Plans(w, req)
			return
		case req.Method == http.MethodGet && strings.HasPrefix(path, "/subscriptions/plans/"):
			r.deps.SubscriptionHandler.Plan(w, req)
			return
		}

		if protectedPrefix(path) {
			protected := r.deps.AuthMiddleware.Authenticate(httpmw.RequireUser(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
				r.handleProtected(w, req)
			})))
			protected.ServeHTTP(w, req)
			return
		}

		http.NotFound(w, req)
	})
}

func protectedPrefix(path string) bool {
	for _, prefix := range []string{"/auth/logout", "/companies", "/jobs", "/applications", "/subscriptions", "/ai/match/", "/payments/"} {
		if path == strings.TrimSuffix(prefix, "/") || strings.HasPrefix(path, prefix) {
			return true
		}
	}
	return false
}

func (r *Router) handleProtected(w http.ResponseWriter, req *http.Request) {
	path := strings.TrimSuffix(req.URL.Path, "/")

	switch {
	case req.Method == http.MethodPost && path == "/auth/logout":
		r.deps.AuthHandler.Logout(w, req)
		return
	case req.Method == http.MethodGet && path == "/companies":
		r.deps.CompanyHandler.List(w, req)
		return
	case req.Method == http.MethodPost && path == "/companies":
		httpmw.RequireRole(user.RoleAdmin, user.RoleRecruiter)(http.HandlerFunc(r.deps.CompanyHandler.Create)).ServeHTTP(w, req)
		return
	case req.Method == http.MethodGet && strings.HasPrefix(path, "/companies/"):
		r.deps.CompanyHandler.Get(w, req)
		return
	case (req.Method == http.MethodPut || req.Method == http.MethodPatch) && strings.HasPrefix(path, "/companies/"):
		httpmw.RequireRole(user.RoleAdmin, user.RoleRecruiter)(http.HandlerFunc(r.deps.CompanyHandler.Update)).ServeHTTP(w, req)
		return
	case req.Method == http.MethodDelete && strings.HasPrefix(path, "/companies/"):
		httpmw.RequireRole(user.RoleAdmin, user.RoleRecruiter)(http.HandlerFunc(r.deps.CompanyHandler.Delete)).ServeHTTP(w, req)
		return
	case req.Method == http.MethodGet && path == "/jobs":
		r.deps.JobHandler.List(w, req)
		return
	case req.Method == http.MethodPost && path == "/jobs":
		httpmw.RequireRole(user.RoleAdmin, user.RoleRecruiter)(http.HandlerFunc(r.deps.JobHandler.Create)).ServeHTTP(w, req)
		return
	case req.Method == http.MethodGet && strings.HasPrefix(path, "/jobs/"):
		r.deps.JobHandler.Get(w, req)
		return
	case (req.Method == http.MethodPut || req.Method == http.MethodPatch) && strings.HasPrefix(path, "/jobs/"):
		httpmw.RequireRole(user.RoleAdmin, user.RoleRecruiter)(http.HandlerFunc(r.deps.JobHandler.Update)).ServeHTTP(w, req)
		return
	case req.Method == http.MethodDelete && strings.HasPrefix(path, "/jobs/"):
		httpmw.RequireRole(user.RoleAdmin, user.RoleRecruiter)(http.HandlerFunc(r.deps.JobHandler.Delete)).ServeHTTP(w, req)
		return
	case req.Method == http.MethodPost && path == "/applications":
		httpmw.RequireRole(user.RoleCandidate)(http.HandlerFunc(r.deps.ApplicationHandler.Apply)).ServeHTTP(w, req)
		return
	case req.Method == http.MethodGet && path == "/applications":
		r.deps.ApplicationHandler.List(w, req)
		return
	case req.Method == http.MethodPatch && strings.HasPrefix(path, "/applications/") && strings.HasSuffix(path, "/status"):
		httpmw.RequireRole(user.RoleAdmin, user.RoleRecruiter)(http.HandlerFunc(r.deps.ApplicationHandler.UpdateStatus)).ServeHTTP(w, req)
		return
	case req.Method == http.MethodGet && strings.HasPrefix(path, "/applications/"):
		r.deps.ApplicationHandler.Get(w, req)
		return
	case req.Method == http.MethodGet && strings.HasPrefix(path, "/ai/match/"):
		r.deps.ApplicationHandler.Match(w, req)
		return
	case req.Method == http.MethodGet && path == "/subscriptions/company":
		httpmw.RequireRole(user.RoleAdmin, user.RoleRecruiter)(http.HandlerFunc(r.deps.SubscriptionHandler.Company)).ServeHTTP(w, req)
		return
	case req.Method == http.MethodPost && path == "/subscriptions/subscribe":
		httpmw.RequireRole(user.RoleAdmin, user.RoleRecruiter)(http.HandlerFunc(r.deps.SubscriptionHandler.Subscribe)).ServeHTTP(w, req)
		return
	case req.Method == http.MethodPost && path == "/payments/stripe":
		r.deps.PaymentHandler.Stripe(w, req)
		return
	case req.Method == http.MethodPost && path == "/payments/khalti":
		r.deps.PaymentHandler.Khalti(w, req)
		return
	}

	http.NotFound(w, req)
}
