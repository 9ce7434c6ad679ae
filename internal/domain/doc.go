// Package domain defines the core business entities of the storefront
// application (users, orders, notifications) along with their validation
// rules and the common domain errors.
//
// Entities are plain structs with UUID identifiers and UTC timestamps.
// Each entity has a New* constructor that validates the input and a
// Validate method that can be called independently (for example by a
// store implementation before writing).
package domain
