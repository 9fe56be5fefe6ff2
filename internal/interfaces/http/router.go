package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/jwtauth/v5"
	"github.com/ipede/user-directory-service/internal/application"
	"github.com/ipede/user-directory-service/internal/domain"
	"github.com/ipede/user-directory-service/internal/infrastructure/config"
	"github.com/ipede/user-directory-service/internal/infrastructure/database"
	"github.com/ipede/user-directory-service/internal/infrastructure/jwt"
	"github.com/ipede/user-directory-service/internal/infrastructure/repository"
	"github.com/ipede/user-directory-service/internal/interfaces/http/handlers"
	"github.com/ipede/user-directory-service/internal/interfaces/http/middleware/auth"
	"github.com/ipede/user-directory-service/internal/interfaces/http/middleware/ratelimit"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

const visitorTTL = 3 * time.Minute

// Pinger reports whether the store is reachable
type Pinger interface {
	Ping() error
}

type Router struct {
	router  *chi.Mux
	limiter *ratelimit.RateLimiter
}

type dependencies struct {
	users    domain.UserService
	issuer   domain.TokenIssuer
	verifier *jwtauth.JWTAuth
	limiter  *ratelimit.RateLimiter
	store    Pinger
}

func NewRouter(
	db *database.Postgres,
	cfg *config.Config,
	logger *zap.Logger,
) *Router {
	userRepo := repository.NewUserRepository(db, logger)
	roleRepo := repository.NewRoleRepository(db, logger)
	userService := application.NewUserService(userRepo, roleRepo, logger)

	tokenCfg := cfg.TokenConfig()

	return newRouter(dependencies{
		users:    userService,
		issuer:   jwt.NewIssuer(tokenCfg, logger),
		verifier: jwt.NewVerifier(tokenCfg),
		limiter:  ratelimit.NewRateLimiter(rate.Limit(cfg.RateLimitRPS), cfg.RateLimitBurst, visitorTTL, logger),
		store:    db,
	}, logger)
}

func newRouter(deps dependencies, logger *zap.Logger) *Router {
	authMiddleware := auth.NewAuthMiddleware(deps.verifier, logger)

	// Initialize handlers
	userHandler := handlers.NewUserHandler(deps.users, logger)
	tokenHandler := handlers.NewTokenHandler(deps.issuer, logger)

	// Create router with middleware
	router := createRouter()

	// Health check endpoints
	router.Group(func(r chi.Router) {
		r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
			w.Write([]byte("OK"))
		})

		r.Get("/health/ready", func(w http.ResponseWriter, r *http.Request) {
			if err := deps.store.Ping(); err != nil {
				logger.Error("Database health check failed", zap.Error(err))
				w.WriteHeader(http.StatusServiceUnavailable)
				w.Write([]byte("Database connection failed"))
				return
			}
			w.WriteHeader(http.StatusOK)
			w.Write([]byte("Ready"))
		})

		r.Get("/health/live", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
			w.Write([]byte("Alive"))
		})
	})

	// Swagger UI configuration
	router.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
		httpSwagger.DocExpansion("list"),
		httpSwagger.DomID("swagger-ui"),
		httpSwagger.DeepLinking(true),
		httpSwagger.PersistAuthorization(true),
	))

	router.Get("/swagger/doc.json", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		http.ServeFile(w, r, "docs/swagger.json")
	})

	router.Route("/api", func(r chi.Router) {
		// Public routes
		r.Group(func(r chi.Router) {
			r.Use(deps.limiter.Middleware)
			r.Get("/token", tokenHandler.IssueTokenHandler)
		})

		// Protected routes
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.Verifier, authMiddleware.Authenticator)
			r.Get("/users", userHandler.ListUsersHandler)
			r.Post("/users", userHandler.CreateUserHandler)
			r.Get("/users/{id}", userHandler.GetUserHandler)
			r.Put("/users/{id}", userHandler.UpdateUserHandler)
			r.Delete("/users/{id}", userHandler.DeleteUserHandler)
			r.Put("/users/{id}/{roleId}", userHandler.AddRoleHandler)
		})
	})

	return &Router{router: router, limiter: deps.limiter}
}

func createRouter() *chi.Mux {
	router := chi.NewRouter()

	// Add middleware
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(middleware.Timeout(60 * time.Second))

	return router
}

func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.router.ServeHTTP(w, req)
}

// Close releases background resources held by the router
func (r *Router) Close() {
	r.limiter.Close()
}
