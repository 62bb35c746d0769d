// Package middleware groups the Fiber middleware mounted in front of the
// inventory routes.
//
//   - auth checks the X-API-Key header (or a Bearer token) against
//     server.api_key. An empty key leaves the API open, which is the
//     development default.
//   - rayid tags every request with an X-Ray-ID, reusing the caller's value
//     when present, and stores it in the context for logger.WithRayID.
//
// Both are registered once in the start command, rayid first so that
// rejected requests are still traceable.
package middleware
