// Package service contains the application-specific use cases and business
// logic. It orchestrates interactions between domain objects and stores
// (defined in internal/store) to fulfill application features.
//
// Key components:
//
// 1. Service Interfaces:
//   - UserService covers account creation and lookup for the auth endpoints.
//   - GiftService covers recipient profiles, suggestion generation and saved gifts.
//
// 2. Transactions:
//   - Services receive a store.TxRunner and use the stores' WithTx methods
//     when an operation writes more than one row.
//
// 3. Error Handling:
//   - Store and generation sentinels are wrapped with %w so the API layer can
//     map them to status codes with errors.Is.
//
// The service layer depends on domain entities and store interfaces, but never
// on specific infrastructure implementations.
package service
