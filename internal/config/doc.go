// Package config loads and validates the application configuration.
//
// Configuration is read from environment variables with the STOREFRONT_
// prefix and, optionally, from a config.yaml file in the working directory.
// Environment variables take precedence over file values. The loaded
// configuration is validated before use; the process refuses to start with
// an invalid configuration.
package config
