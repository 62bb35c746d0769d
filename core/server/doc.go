// Package server holds the HTTP server settings: listen port, API key,
// deployment environment and how long product and supplier snapshots are
// cached between requests.
package server
