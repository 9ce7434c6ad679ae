// Package service provides the application-level services for users,
// orders and notifications. Services sit between the HTTP handlers and the
// store layer: they own cross-entity business rules (a referenced user
// must exist before an order or notification is persisted) and decide how
// store-level outcomes surface to callers.
//
// Error handling conventions:
//   - A business-rule violation is a *ValidationError, propagated
//     unmodified to the transport boundary (mapped to 400 there).
//   - A lookup that matches nothing is an absent result: (nil, nil).
//     Handlers decide the user-visible meaning (404).
//   - Store and session failures propagate wrapped with operation context;
//     they are never converted into validation or not-found outcomes.
package service
