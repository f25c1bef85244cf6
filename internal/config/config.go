// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container shared by the
// inspection backend and the field client. It is populated by merging values
// from environment variables, command-line flags, and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as token parameters, the
	// integrity hash key, the application version and the identity of the
	// field user.
	App App `envPrefix:"APP_"`

	// Storage holds configuration for the relational database and the photo
	// blob directory.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds network address and timeout settings for the HTTP and
	// gRPC servers of the backend.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds the backend address the field client talks to and the
	// address of the client's local proxy.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Workers holds the intervals of the client background jobs.
	Workers Workers `envPrefix:"WORKERS_"`

	// Gateway holds the caching gateway settings of the field client.
	Gateway Gateway `envPrefix:"GATEWAY_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Storage groups the configuration for all storage backends.
type Storage struct {
	// DB holds the relational database connection settings.
	DB DB `envPrefix:"DB_"`

	// Files holds the file-system storage settings for photo blobs.
	Files Files `envPrefix:"FILES_"`
}

// App holds application-level configuration values.
type App struct {
	// TokenSignKey is the secret key used to verify JWT bearer tokens. When
	// empty the backend does not require authentication.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the expected "iss" claim of bearer tokens.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration specifies how long an issued token remains valid.
	// Env: APP_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`

	// Token is the bearer token the field client attaches to every backend
	// call.
	// Env: APP_TOKEN
	Token string `env:"TOKEN"`

	// HashKey is the HMAC key used for request integrity checking
	// (the HashSHA256 header). Empty disables the check.
	// Env: APP_HASH_KEY
	HashKey string `env:"HASH_KEY"`

	// Version is the semantic version string reported by the health endpoint.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// TechnicianID is the technician the field client works for. It scopes
	// the refresh of the local inspection list.
	// Env: APP_TECHNICIAN_ID
	TechnicianID int64 `env:"TECHNICIAN_ID"`

	// CompanyID is the company whose posts the field client keeps locally.
	// Env: APP_COMPANY_ID
	CompanyID int64 `env:"COMPANY_ID"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "0.0.0.0:4000").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// GRPCAddress is the TCP address on which the gRPC server listens.
	// Env: SERVER_GRPC_ADDRESS
	GRPCAddress string `env:"GRPC_ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before the server cancels it.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// AllowedOrigins lists the browser origins permitted by CORS.
	// Env: SERVER_ALLOWED_ORIGINS (comma separated)
	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envSeparator:","`
}

// DB holds connection settings for the relational database backend.
type DB struct {
	// DSN is the PostgreSQL connection string on the backend or the SQLite
	// file path on the field client.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Files holds file-system settings for photo blobs.
type Files struct {
	// PhotoDir is the directory where the field client keeps photo blobs
	// referenced by inspections.
	// Env: STORAGE_FILES_PHOTO_DIR
	PhotoDir string `env:"PHOTO_DIR"`
}

// Adapter holds settings of the field client's outbound transport.
type Adapter struct {
	// HTTPAddress is the backend address (e.g. "http://localhost:4000").
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the timeout for a single outbound request.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// ProxyAddress is the local "host:port" on which the client exposes the
	// caching gateway to the PWA shell. Empty disables the proxy.
	// Env: ADAPTER_PROXY_ADDRESS
	ProxyAddress string `env:"PROXY_ADDRESS"`
}

// Workers holds configuration for the client background jobs.
type Workers struct {
	// SyncInterval is how often the background trigger probes connectivity.
	// Env: WORKERS_SYNC_INTERVAL
	SyncInterval time.Duration `env:"SYNC_INTERVAL"`

	// RefreshInterval is how often reference data and the technician's
	// inspection list are refreshed from the backend. Zero disables it.
	// Env: WORKERS_REFRESH_INTERVAL
	RefreshInterval time.Duration `env:"REFRESH_INTERVAL"`
}

// Gateway holds caching gateway settings.
type Gateway struct {
	// Version is the deployment version embedded into cache partition names.
	// Changing it evicts every partition of the previous version on
	// activation.
	// Env: GATEWAY_VERSION
	Version string `env:"VERSION"`

	// Origin is the address the application shell is served from.
	// Env: GATEWAY_ORIGIN
	Origin string `env:"ORIGIN"`

	// APIPrefixes are request path prefixes treated as API calls in addition
	// to every request addressed to the backend host.
	// Env: GATEWAY_API_PREFIXES (comma separated)
	APIPrefixes []string `env:"API_PREFIXES" envSeparator:","`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (last source wins for non-zero fields):
//  1. Environment variables (a .env file in the working directory is
//     loaded first, without overriding variables already set)
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withDotEnv(defaultDotEnvPath).
		withEnv().
		withFlags().
		withJSON().
		build()
}
