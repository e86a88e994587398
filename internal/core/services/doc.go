// Package services implements the driving port interfaces.
// Services contain the core business logic and orchestrate
// calls to driven ports (adapters).
//
// The schedule service owns the submit flow, including the single
// refresh-and-retry recovery after a vendor auth rejection.
package services
