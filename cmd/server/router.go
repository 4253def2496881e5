package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/taskmaster/api/internal/api"
	apiMiddleware "github.com/taskmaster/api/internal/api/middleware"
)

// setupRouter creates and configures the application router with all
// routes and middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.Trace)

	authHandler := api.NewAuthHandler(app.userStore, app.jwtService, app.passwordVerifier)
	taskHandler := api.NewTaskHandler(app.taskService, app.commentStore, app.userStore)
	commentHandler := api.NewCommentHandler(app.commentStore)
	notificationHandler := api.NewNotificationHandler(app.notificationService)
	authMiddleware := apiMiddleware.NewAuthMiddleware(app.jwtService)

	// Authentication endpoints. Logout sits behind the auth middleware so
	// only a valid, unrevoked token can be revoked.
	r.Route("/auth", func(r chi.Router) {
		r.Post("/signup", authHandler.Signup)
		r.Post("/login", authHandler.Login)

		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.Authenticate)
			r.Post("/logout", authHandler.Logout)
		})
	})

	// Protected resource endpoints.
	r.Route("/routes", func(r chi.Router) {
		r.Use(authMiddleware.Authenticate)

		r.Get("/tasks", taskHandler.List)
		r.Post("/tasks", taskHandler.Create)
		r.Get("/tasks/{task_id}", taskHandler.Get)
		r.Put("/tasks/{task_id}", taskHandler.Update)
		r.Delete("/tasks/{task_id}", taskHandler.Delete)

		r.Get("/tasks/{task_id}/comments", commentHandler.List)
		r.Post("/tasks/{task_id}/comments", commentHandler.Create)
		r.Put("/comments/{comment_id}", commentHandler.Update)
		r.Delete("/comments/{comment_id}", commentHandler.Delete)

		r.Get("/notifications", notificationHandler.List)
	})

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("Failed to write health check response", "error", err)
		}
	})

	return r
}
