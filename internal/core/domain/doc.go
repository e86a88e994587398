// Package domain defines the core business entities for the Hive schedule
// manager.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - ScheduleEntry / DaySchedule: a day's heating set-points
//   - Profile / ProfileSet: named, reusable day schedules
//   - TokenSet: the id/access/refresh token triple kept alive against Hive
//   - WireSchedule: the vendor's on-wire schedule representation
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
