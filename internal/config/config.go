// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// go-file-keeper server. It aggregates all sub-configurations and is
// populated by merging values from environment variables, command-line flags,
// an optional JSON file and compiled-in defaults.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env      : direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as the master key used to
	// seal stored passphrases and the scratch directory for bundles.
	App App `envPrefix:"APP_"`

	// Storage holds the keystore database settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds network address and timeout settings for the HTTP server.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds the settings of the two external collaborators: the
	// content store RPC API and the remote pinning service.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Workers holds the timing of background jobs: import garbage
	// collection, pin-state refreshes and the pinning-service rate limiter.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// MasterKey seals passphrases remembered in the keystore.
	// Must be kept confidential.
	// Env: APP_MASTER_KEY
	MasterKey string `env:"MASTER_KEY"`

	// KeystoreWorkFactor is the scrypt work factor (log2 N) used when sealing
	// keystore records.
	// Env: APP_KEYSTORE_WORK_FACTOR
	KeystoreWorkFactor int `env:"KEYSTORE_WORK_FACTOR"`

	// TempDir is the root under which scoped workspaces are created.
	// Env: APP_TEMP_DIR
	TempDir string `env:"TEMP_DIR"`

	// Version is exposed via the /api/version endpoint.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Storage groups the configuration for the keystore database.
type Storage struct {
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the keystore database. A postgres://
// or postgresql:// URL selects PostgreSQL, anything else is treated as a
// SQLite file path.
type DB struct {
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address in "host:port" format.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds short requests (listing, pin status, mkdir).
	// Uploads and bundle downloads are not bound by it.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Adapter holds configuration for external integrations.
type Adapter struct {
	IPFS    IPFS    `envPrefix:"IPFS_"`
	Pinning Pinning `envPrefix:"PINNING_"`
}

// IPFS holds the content store RPC settings.
type IPFS struct {
	// APIAddress is the base address of the RPC API (e.g. "127.0.0.1:5001").
	// Env: ADAPTER_IPFS_API_ADDRESS
	APIAddress string `env:"API_ADDRESS"`

	// RequestTimeout bounds metadata calls (stat, ls, cp, mv, rm).
	// Streaming reads are bound only by their context.
	// Env: ADAPTER_IPFS_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Pinning holds the remote pinning service settings.
type Pinning struct {
	// Env: ADAPTER_PINNING_BASE_URL
	BaseURL string `env:"BASE_URL"`
	// Env: ADAPTER_PINNING_API_KEY
	APIKey string `env:"API_KEY"`
	// Env: ADAPTER_PINNING_SECRET_KEY
	SecretKey string `env:"SECRET_KEY"`
	// Env: ADAPTER_PINNING_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
	// PageLimit is the page size of bulk pin listings.
	// Env: ADAPTER_PINNING_PAGE_LIMIT
	PageLimit int `env:"PAGE_LIMIT"`
}

// Workers holds configuration for background worker processes.
type Workers struct {
	// ImportGCInterval is the tick of the import garbage collector.
	// Env: WORKERS_IMPORT_GC_INTERVAL
	ImportGCInterval time.Duration `env:"IMPORT_GC_INTERVAL"`
	// ImportGracePeriod is how long a finished import stays listed.
	// Env: WORKERS_IMPORT_GRACE_PERIOD
	ImportGracePeriod time.Duration `env:"IMPORT_GRACE_PERIOD"`
	// ImportProbeTimeout bounds the search phase of an import.
	// Env: WORKERS_IMPORT_PROBE_TIMEOUT
	ImportProbeTimeout time.Duration `env:"IMPORT_PROBE_TIMEOUT"`

	// PinRefreshInterval is the tick of the bulk pin-state refresh.
	// Env: WORKERS_PIN_REFRESH_INTERVAL
	PinRefreshInterval time.Duration `env:"PIN_REFRESH_INTERVAL"`
	// PinQueuedTTL is the lifetime of a cached "queued" answer.
	// Env: WORKERS_PIN_QUEUED_TTL
	PinQueuedTTL time.Duration `env:"PIN_QUEUED_TTL"`
	// PinSettledTTL is the lifetime of a cached "pinned"/"unpinned" answer.
	// Env: WORKERS_PIN_SETTLED_TTL
	PinSettledTTL time.Duration `env:"PIN_SETTLED_TTL"`

	RateLimit RateLimit `envPrefix:"RATE_LIMIT_"`
}

// RateLimit configures the limiter in front of the pinning service.
type RateLimit struct {
	// Env: WORKERS_RATE_LIMIT_MAX_CONCURRENT
	MaxConcurrent int `env:"MAX_CONCURRENT"`
	// Env: WORKERS_RATE_LIMIT_MIN_SPACING
	MinSpacing time.Duration `env:"MIN_SPACING"`
	// Env: WORKERS_RATE_LIMIT_QUOTA
	Quota int `env:"QUOTA"`
	// Env: WORKERS_RATE_LIMIT_WINDOW
	Window time.Duration `env:"WINDOW"`
	// MaxQueued is the ceiling of waiting calls; beyond it calls are rejected.
	// Env: WORKERS_RATE_LIMIT_MAX_QUEUED
	MaxQueued int `env:"MAX_QUEUED"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources. For every field the first
// non-zero value wins in the following order:
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Defaults
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(args).
		withJSON().
		withDefaults().
		build()
}
