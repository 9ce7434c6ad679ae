package container

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib" // database/sql driver

	"github.com/storefront/storefront-api/internal/config"
	"github.com/storefront/storefront-api/internal/messaging"
	"github.com/storefront/storefront-api/internal/platform/postgres"
	"github.com/storefront/storefront-api/internal/service"
	"github.com/storefront/storefront-api/internal/store"
)

// Resource names for the application graph. The transport layer resolves
// services through these; everything below a service is an internal edge.
const (
	ResourceDatabase            = "database"
	ResourceTxManager           = "tx_manager"
	ResourceUserStore           = "user_store"
	ResourceOrderStore          = "order_store"
	ResourceNotificationStore   = "notification_store"
	ResourceMessagingProvider   = "messaging_provider"
	ResourceUserService         = "user_service"
	ResourceOrderService        = "order_service"
	ResourceNotificationService = "notification_service"
	ResourceAdminService        = "admin_service"
)

const dbPingTimeout = 5 * time.Second

// Wire builds the application container: database, transaction manager,
// stores, messaging provider, and services, all registered lazily. Nothing
// is constructed here; the database connection is opened on the first
// resolution that needs it (or explicitly at startup via Database).
func Wire(cfg *config.Config, logger *slog.Logger) (*Container, error) {
	if cfg == nil {
		return nil, NewConfigurationError(ResourceDatabase, "config cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	c := New(logger)

	if err := c.Register(ResourceDatabase, nil, func([]any) (any, error) {
		db, err := sql.Open("pgx", cfg.Database.URL)
		if err != nil {
			return nil, fmt.Errorf("opening database: %w", err)
		}

		ctx, cancel := context.WithTimeout(context.Background(), dbPingTimeout)
		defer cancel()
		if err := db.PingContext(ctx); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("pinging database: %w", err)
		}
		return db, nil
	}); err != nil {
		return nil, err
	}

	if err := c.Register(ResourceTxManager, []string{ResourceDatabase}, func(deps []any) (any, error) {
		return store.NewTxManager(deps[0].(*sql.DB)), nil
	}); err != nil {
		return nil, err
	}

	if err := c.Register(ResourceUserStore, []string{ResourceDatabase}, func(deps []any) (any, error) {
		return postgres.NewPostgresUserStore(deps[0].(*sql.DB), logger), nil
	}); err != nil {
		return nil, err
	}

	if err := c.Register(ResourceOrderStore, []string{ResourceDatabase}, func(deps []any) (any, error) {
		return postgres.NewPostgresOrderStore(deps[0].(*sql.DB), logger), nil
	}); err != nil {
		return nil, err
	}

	if err := c.Register(ResourceNotificationStore, []string{ResourceDatabase}, func(deps []any) (any, error) {
		return postgres.NewPostgresNotificationStore(deps[0].(*sql.DB), logger), nil
	}); err != nil {
		return nil, err
	}

	// The default delivery strategy is fixed at wiring time from config;
	// services only ever see the messaging.Provider contract.
	if err := c.Register(ResourceMessagingProvider, nil, func([]any) (any, error) {
		return messaging.NewProvider(cfg.Messaging)
	}); err != nil {
		return nil, err
	}

	if err := c.Register(ResourceUserService,
		[]string{ResourceUserStore, ResourceTxManager},
		func(deps []any) (any, error) {
			return service.NewUserService(
				deps[0].(store.UserStore),
				deps[1].(store.TxRunner),
				logger,
			), nil
		}); err != nil {
		return nil, err
	}

	if err := c.Register(ResourceOrderService,
		[]string{ResourceOrderStore, ResourceUserStore, ResourceTxManager},
		func(deps []any) (any, error) {
			return service.NewOrderService(
				deps[0].(store.OrderStore),
				deps[1].(store.UserStore),
				deps[2].(store.TxRunner),
				logger,
			), nil
		}); err != nil {
		return nil, err
	}

	if err := c.Register(ResourceNotificationService,
		[]string{ResourceNotificationStore, ResourceUserStore, ResourceMessagingProvider, ResourceTxManager},
		func(deps []any) (any, error) {
			return service.NewNotificationService(
				deps[0].(store.NotificationStore),
				deps[1].(store.UserStore),
				deps[2].(messaging.Provider),
				deps[3].(store.TxRunner),
				logger,
			), nil
		}); err != nil {
		return nil, err
	}

	if err := c.Register(ResourceAdminService,
		[]string{ResourceUserStore, ResourceOrderStore},
		func(deps []any) (any, error) {
			return service.NewAdminService(
				deps[0].(store.UserStore),
				deps[1].(store.OrderStore),
				logger,
			), nil
		}); err != nil {
		return nil, err
	}

	return c, nil
}
