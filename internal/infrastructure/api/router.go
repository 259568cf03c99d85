package api

import (
	"encoding/json"
	"net/http"

	"inventify-hub/internal/application"
	securitymiddleware "inventify-hub/internal/infrastructure/middleware"
	"inventify-hub/internal/ports"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog"
	httpSwagger "github.com/swaggo/http-swagger"
)

// RouterConfig carries everything the HTTP surface depends on
type RouterConfig struct {
	Tokens         ports.TokenService
	Users          *application.UserService
	Shops          *application.ShopService
	Products       *application.ProductService
	Metrics        *securitymiddleware.Metrics
	AllowedOrigins []string
	SwaggerFile    string
	Logger         zerolog.Logger
}

// NewRouter builds the chi router with every route and its auth gate
func NewRouter(cfg RouterConfig) http.Handler {
	logger := cfg.Logger

	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	if cfg.Metrics != nil {
		r.Use(cfg.Metrics.Middleware)
	}
	r.Use(securitymiddleware.SecurityHeadersMiddleware())
	r.Use(securitymiddleware.AuditLoggingMiddleware(logger))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.AllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
	}))

	verifyToken := securitymiddleware.VerifyToken(cfg.Tokens, logger)
	verifyAdmin := securitymiddleware.VerifyAdmin(cfg.Users, logger)

	authHandler := NewAuthHandler(cfg.Tokens, logger)
	userHandler := NewUserHandler(cfg.Users, logger)
	shopHandler := NewShopHandler(cfg.Shops, logger)
	productHandler := NewProductHandler(cfg.Products, logger)

	// Public routes
	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.Write([]byte("Inventify-hub is running"))
	})
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	})
	if cfg.Metrics != nil {
		r.Handle("/metrics", cfg.Metrics.Handler())
	}
	if cfg.SwaggerFile != "" {
		r.Get("/swagger/*", httpSwagger.Handler(
			httpSwagger.URL("/swagger/doc.json"),
		))
		r.Get("/swagger/doc.json", func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			http.ServeFile(w, r, cfg.SwaggerFile)
		})
	}

	r.Post("/jwt", authHandler.IssueToken)

	// Users
	r.Post("/users", userHandler.Create)
	r.With(verifyToken, verifyAdmin).Get("/users", userHandler.List)
	r.With(verifyToken).Get("/users/admin/{email}", userHandler.CheckAdmin)
	r.With(verifyToken, verifyAdmin).Patch("/users/admin/{id}", userHandler.Promote)

	// Shops: listing is public, filtering by owner requires a token
	r.With(verifyToken).Post("/shops", shopHandler.Create)
	r.With(securitymiddleware.VerifyTokenWhen(
		securitymiddleware.HasQueryParam("email"), cfg.Tokens, logger,
	)).Get("/shops", shopHandler.List)

	// Products
	r.Group(func(r chi.Router) {
		r.Use(verifyToken)
		r.Post("/products", productHandler.Create)
		r.Get("/products", productHandler.List)
		r.Get("/products/{id}", productHandler.Get)
		r.Patch("/products/{id}", productHandler.Update)
		r.Delete("/products/{id}", productHandler.Delete)
	})

	return r
}
