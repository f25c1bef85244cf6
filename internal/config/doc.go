// Package config provides configuration loading, merging, and validation
// facilities for the inspection backend and the field client.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. Environment variables (optionally preloaded from a .env file)
//  2. Command-line flags
//  3. JSON config file
//
// The main entry points are [GetStructuredConfig] for the backend and
// [GetClientConfig] for the field client.
package config
