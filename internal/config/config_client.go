package config

import (
	"fmt"
	"time"
)

// ClientApp holds client-side application settings derived from the shared
// structured config.
type ClientApp struct {
	// Token is the bearer token attached to backend calls.
	Token string
	// HashKey is the HMAC key used by the client for payload integrity checks.
	HashKey string
	// TechnicianID is the technician the client works for.
	TechnicianID int64
	// CompanyID is the company whose posts are kept locally.
	CompanyID int64
}

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// HTTPAddress is the backend HTTP endpoint address.
	HTTPAddress string
	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration
	// ProxyAddress is the local address of the gateway proxy; empty disables it.
	ProxyAddress string
}

// ClientDB contains local database connection settings for the client.
type ClientDB struct {
	// DSN is the SQLite file path of the local record store.
	DSN string
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	// DB holds local database settings.
	DB ClientDB
	// PhotoDir is the photo blob directory.
	PhotoDir string
}

// ClientWorkers contains client background worker settings.
type ClientWorkers struct {
	// SyncInterval defines how often the background trigger probes the
	// backend.
	SyncInterval time.Duration
	// RefreshInterval defines how often reference data is refreshed.
	RefreshInterval time.Duration
}

// ClientGateway contains caching gateway settings.
type ClientGateway struct {
	// Version is embedded into cache partition names.
	Version string
	// Origin is the address the application shell is served from.
	Origin string
	// APIPrefixes are request path prefixes treated as API calls.
	APIPrefixes []string
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// App contains application-level client settings.
	App ClientApp
	// Adapter contains client transport addresses and timeouts.
	Adapter ClientAdapter
	// Storage contains client storage settings.
	Storage ClientStorage
	// Workers contains background job settings.
	Workers ClientWorkers
	// Gateway contains caching gateway settings.
	Gateway ClientGateway
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration.
//
// It loads the base config via [GetStructuredConfig], maps only the fields
// relevant to the client runtime, and validates the resulting [ClientConfig].
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := newClientConfig(cfg)

	return clientCfg, clientCfg.validate()
}

func newClientConfig(cfg *StructuredConfig) *ClientConfig {
	gatewayOrigin := cfg.Gateway.Origin
	if gatewayOrigin == "" {
		gatewayOrigin = cfg.Adapter.HTTPAddress
	}

	return &ClientConfig{
		App: ClientApp{
			Token:        cfg.App.Token,
			HashKey:      cfg.App.HashKey,
			TechnicianID: cfg.App.TechnicianID,
			CompanyID:    cfg.App.CompanyID,
		},
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
			ProxyAddress:   cfg.Adapter.ProxyAddress,
		},
		Storage: ClientStorage{
			DB: ClientDB{
				DSN: cfg.Storage.DB.DSN,
			},
			PhotoDir: cfg.Storage.Files.PhotoDir,
		},
		Workers: ClientWorkers{
			SyncInterval:    cfg.Workers.SyncInterval,
			RefreshInterval: cfg.Workers.RefreshInterval,
		},
		Gateway: ClientGateway{
			Version:     cfg.Gateway.Version,
			Origin:      gatewayOrigin,
			APIPrefixes: cfg.Gateway.APIPrefixes,
		},
	}
}
