package http

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/gorilla/csrf"
)

// Init wires the full middleware chain and every API route.
//
// Middleware order matters: tracing and logging wrap everything, the
// recoverer catches panics from all later stages, CORS and the global rate
// limit reject before any body is read, the sanitizer rewrites the body
// before the CSRF guard and the handlers see it.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()

	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(h.recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   h.cfg.Server.CORSAllowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-CSRF-Token", traceIDHeader},
		AllowCredentials: true,
	}))
	router.Use(h.globalRateLimit())
	router.Use(h.sanitizeBody)
	router.Use(csrf.Protect(
		[]byte(h.cfg.App.CSRFAuthKey),
		csrf.Secure(h.cfg.Server.IsProduction()),
		csrf.Path("/"),
		csrf.ErrorHandler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			respondFailureStatus(w, r, "Invalid CSRF token", http.StatusForbidden)
		})),
	))

	router.Get("/api/csrf-token", h.csrfToken)

	router.Route("/api/user", func(r chi.Router) {
		r.Post("/register", h.register)
		r.Post("/logout", h.logout)

		// Login routes share one limiter so attempts against either
		// endpoint count toward the same budget.
		r.Group(func(r chi.Router) {
			r.Use(h.loginRateLimit())
			r.Post("/login", h.login)
			r.Post("/admin", h.adminLogin)
		})
	})

	router.Route("/api/product", func(r chi.Router) {
		r.Get("/list", h.listProducts)
		r.Post("/single", h.singleProduct)

		r.Group(func(r chi.Router) {
			r.Use(h.auth, h.requireAdmin)
			r.Post("/add", h.addProduct)
			r.Post("/remove", h.removeProduct)
		})
	})

	router.Route("/api/cart", func(r chi.Router) {
		r.Use(h.auth)
		r.Post("/get", h.getCart)
		r.Post("/add", h.addToCart)
		r.Post("/update", h.updateCart)
	})

	router.Route("/api/order", func(r chi.Router) {
		r.Use(h.auth)
		r.Post("/place", h.placeOrder)
		r.Post("/userorders", h.userOrders)

		r.Group(func(r chi.Router) {
			r.Use(h.requireAdmin)
			r.Post("/list", h.listOrders)
			r.Post("/status", h.updateOrderStatus)
		})
	})

	router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		respondFailureStatus(w, r, fmt.Sprintf("Route not found → %s", r.URL.Path), http.StatusNotFound)
	})

	return router
}
