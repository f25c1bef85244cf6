// Package http implements the REST transport of the inspection backend.
//
// It wires chi routes for inspections, bulk reconciliation, the color and
// post catalogs and the health probe. CORS, request tracing, access logging,
// gzip, bearer authentication and body integrity checks run as middleware
// before requests reach the service layer. Error bodies are
// {"error": "<message>"} with the Spanish messages from package app.
package http
