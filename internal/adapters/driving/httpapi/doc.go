// Package httpapi exposes the schedule manager over HTTP for home
// automation bridges. It is a thin layer over the same driving ports the
// CLI uses: requests map onto service calls, domain errors map onto
// status codes, nothing else lives here.
//
// Routes:
//
//	GET  /health                - liveness probe, no auth
//	POST /api/v1/schedule/day   - push a day schedule to a node
//	POST /api/v1/token/refresh  - force a token refresh
//	GET  /api/v1/token          - stored token status
//	GET  /api/v1/profiles       - named profile table
//	GET  /api/v1/history        - recent submission records
//
// When api.token is set in the settings file, the /api/v1 group requires
// callers to present it as "Authorization: Bearer <token>".
package httpapi
