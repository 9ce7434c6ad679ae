package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server    ServerConfig    `mapstructure:"server" validate:"required"`
	Database  DatabaseConfig  `mapstructure:"database" validate:"required"`
	Messaging MessagingConfig `mapstructure:"messaging" validate:"required"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port" validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
}

// DatabaseConfig contains all database-related configuration settings.
// URL is the datastore locator handed to the container at construction.
type DatabaseConfig struct {
	URL string `mapstructure:"url" validate:"required,url"`
}

// MessagingConfig selects and configures the outbound message provider.
type MessagingConfig struct {
	// Provider names the default delivery strategy wired into the
	// container: "email", "sms" or "console".
	Provider string `mapstructure:"provider" validate:"required,oneof=email sms console"`

	// SenderAddress is the from-address used by the email provider.
	SenderAddress string `mapstructure:"sender_address" validate:"omitempty,email"`

	// SenderNumber is the from-number used by the sms provider.
	SenderNumber string `mapstructure:"sender_number"`
}
