// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
// These must be provided for the application to function:
//
//   - TokenSource: valid-token provision with transparent refresh
//   - Authenticator: identity-provider exchanges (login, MFA, refresh)
//   - TokenStore: token set persistence
//   - ProfileStore: named profile loading with builtin fallback
//   - HeatingGateway: schedule submission to the vendor API
//   - SettingsStore: application configuration
//
// # Optional Interfaces
//
// These can be nil - the application degrades gracefully:
//
//   - HistoryStore: submission audit records. Without it, pushes are
//     logged but not recorded.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter package
package driven
