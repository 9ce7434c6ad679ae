package container

import (
	"database/sql"

	"github.com/storefront/storefront-api/internal/messaging"
	"github.com/storefront/storefront-api/internal/service"
)

// Named accessors: each resolves exactly one resource from the given
// container, typed to its capability contract. The HTTP layer consumes
// these instead of touching resource names directly.

// Database resolves the shared database pool, opening it on first use.
func Database(c *Container) (*sql.DB, error) {
	return Resolve[*sql.DB](c, ResourceDatabase)
}

// UserService resolves the user service singleton.
func UserService(c *Container) (service.UserService, error) {
	return Resolve[service.UserService](c, ResourceUserService)
}

// OrderService resolves the order service singleton.
func OrderService(c *Container) (service.OrderService, error) {
	return Resolve[service.OrderService](c, ResourceOrderService)
}

// NotificationService resolves the notification service singleton.
func NotificationService(c *Container) (service.NotificationService, error) {
	return Resolve[service.NotificationService](c, ResourceNotificationService)
}

// AdminService resolves the admin service singleton.
func AdminService(c *Container) (service.AdminService, error) {
	return Resolve[service.AdminService](c, ResourceAdminService)
}

// MessagingProvider resolves the delivery strategy selected at wiring time.
func MessagingProvider(c *Container) (messaging.Provider, error) {
	return Resolve[messaging.Provider](c, ResourceMessagingProvider)
}
