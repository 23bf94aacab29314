package api

import (
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/dmarques/postline-be/internal/api/handlers"
	"github.com/dmarques/postline-be/internal/auth"
	"github.com/dmarques/postline-be/internal/services"
)

// NewRouter creates and configures a new Chi router.
func NewRouter(issuer *auth.TokenIssuer, accountService services.AccountServiceProvider, postService services.PostServiceProvider) *chi.Mux {
	r := chi.NewRouter()

	// Basic middleware stack
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))

	// CORS configuration for development
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"}, // Adjust for your frontend URL
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Initialize handlers
	accountHandler := handlers.NewAccountHandler(accountService)
	postHandler := handlers.NewPostHandler(postService)

	// Public endpoints
	r.Post("/register", accountHandler.Register)
	r.Post("/login", accountHandler.Login)

	// Endpoints gated by a bearer token
	r.Group(func(r chi.Router) {
		r.Use(auth.Middleware(issuer))

		r.Get("/user/me", accountHandler.GetMe)
		r.Post("/post/create", postHandler.Create)
		r.Get("/posts", postHandler.List)
	})

	return r
}
