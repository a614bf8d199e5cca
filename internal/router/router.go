package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"go-task-api/internal/config"
	"go-task-api/internal/handler"
	"go-task-api/internal/middleware"
)

func New(
	cfg *config.Config,
	authMiddleware *middleware.AuthMiddleware,
	authHandler *handler.AuthHandler,
	taskHandler *handler.TaskHandler,
) http.Handler {
	r := chi.NewRouter()
	rateLimitMiddleware := middleware.NewRateLimitMiddleware(cfg.RateLimitRPM, cfg.AuthRateLimitRPM)

	r.Use(middleware.Recovery)
	r.Use(middleware.Logging)
	r.Use(middleware.CORS(cfg.CORSOrigins))
	r.Use(rateLimitMiddleware.Handler)

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Route("/api", func(api chi.Router) {
		api.Use(middleware.Timeout(cfg.RequestTimeout))

		api.Post("/register", authHandler.Register)
		api.Post("/login", authHandler.Login)
		api.With(authMiddleware.RequireAuth).Get("/userinfo", authHandler.UserInfo)

		api.Route("/tasks", func(tasks chi.Router) {
			tasks.Use(authMiddleware.RequireAuth)
			tasks.Post("/", taskHandler.Create)
			tasks.Get("/", taskHandler.List)
			tasks.Put("/{id}", taskHandler.Update)
			tasks.Delete("/{id}", taskHandler.Delete)
		})
	})

	return r
}
