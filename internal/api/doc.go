// Package api implements the HTTP surface of the storefront: request
// models, handlers for users, orders, notifications and admin reporting,
// and the mapping from internal errors to status codes and sanitized
// messages. Handlers hold service contracts only; wiring happens in the
// server entry point through the container's accessors.
package api
