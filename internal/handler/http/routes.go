package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	if h.server.FrontendOrigin != "" {
		router.Use(cors.Handler(cors.Options{
			AllowedOrigins:   []string{h.server.FrontendOrigin},
			AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
			AllowCredentials: true,
		}))
	}

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/auth/register", h.register)
		r.Post("/api/auth/login", h.login)
		r.Post("/api/auth/logout", h.logout)
		r.Post("/api/auth/send-reset-otp", h.sendResetOtp)
		r.Post("/api/auth/reset-password", h.resetPassword)
	})

	// routes behind the session guard
	router.Group(func(r chi.Router) {
		r.Use(h.auth)
		r.Post("/api/auth/send-verify-otp", h.sendVerifyOtp)
		r.Post("/api/auth/verify-account", h.verifyAccount)
		r.Get("/api/auth/is-auth", h.isAuthenticated)
		r.Get("/api/user/data", h.accountData)
	})

	return router
}
