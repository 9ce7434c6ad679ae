package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/storefront/storefront-api/internal/api"
	apimiddleware "github.com/storefront/storefront-api/internal/api/middleware"
	"github.com/storefront/storefront-api/internal/container"
)

// setupRouter resolves the services through the container's accessors and
// registers every route. Resolution is where the object graph below the
// handlers is first realized.
func (app *application) setupRouter() (http.Handler, error) {
	userService, err := container.UserService(app.container)
	if err != nil {
		return nil, err
	}
	orderService, err := container.OrderService(app.container)
	if err != nil {
		return nil, err
	}
	notificationService, err := container.NotificationService(app.container)
	if err != nil {
		return nil, err
	}
	adminService, err := container.AdminService(app.container)
	if err != nil {
		return nil, err
	}

	userHandler := api.NewUserHandler(userService)
	orderHandler := api.NewOrderHandler(orderService)
	notificationHandler := api.NewNotificationHandler(notificationService)
	adminHandler := api.NewAdminHandler(adminService, userService)

	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(apimiddleware.Trace)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	r.Route("/users", func(r chi.Router) {
		r.Post("/", userHandler.CreateUser)
		r.Get("/", userHandler.ListUsers)
		r.Get("/{id}", userHandler.GetUser)
		r.Delete("/{id}", userHandler.DeleteUser)
	})

	r.Route("/orders", func(r chi.Router) {
		r.Post("/", orderHandler.CreateOrder)
		r.Get("/{id}", orderHandler.GetOrder)
		r.Get("/user/{userID}", orderHandler.ListUserOrders)
	})

	r.Route("/notifications", func(r chi.Router) {
		r.Post("/", notificationHandler.CreateNotification)
		r.Get("/{id}", notificationHandler.GetNotification)
		r.Get("/user/{userID}", notificationHandler.ListUserNotifications)
		r.Put("/{id}/read", notificationHandler.MarkAsRead)
		r.Post("/{id}/resend", notificationHandler.ResendNotification)
	})

	r.Route("/admin", func(r chi.Router) {
		r.Get("/users", adminHandler.ListUsers)
		r.Get("/stats", adminHandler.GetStats)
	})

	r.Get("/health", func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("failed to write health check response", "error", err)
		}
	})

	return r, nil
}
