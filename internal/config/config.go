// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"net"
	"net/url"
	"strconv"
	"time"
)

// Supported database drivers. The value is the database/sql driver name.
const (
	DriverPostgres = "pgx"
	DriverSQLite   = "sqlite3"
)

// Defaults applied by the builder to fields left empty by every source.
const (
	defaultDriver          = DriverPostgres
	defaultSSLMode         = "disable"
	defaultTokenIssuer     = "go-event-keeper"
	defaultTokenDuration   = time.Hour
	defaultRequestTimeout  = 30 * time.Second
	defaultShutdownTimeout = 10 * time.Second
	defaultRateRequests    = 5
	defaultRateWindow      = time.Minute
	defaultRateBurst       = 5
	defaultAdapterTimeout  = 10 * time.Second
)

// StructuredConfig is the top-level configuration container for the
// go-event-keeper application. It is populated by merging values from
// environment variables, command-line flags, and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env      : direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds the deployment stage and token settings.
	App App

	// Storage holds the relational database settings.
	Storage Storage

	// Server holds listen addresses and timeouts of the HTTP and gRPC servers.
	Server Server `envPrefix:"SERVER_"`

	// RateLimit holds the limits applied to the signup and signin endpoints.
	RateLimit RateLimit `envPrefix:"RATELIMIT_"`

	// Adapter holds the settings used by the command-line client.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`

	// Args holds the positional arguments left after flag parsing. The
	// command-line client reads its subcommand from here.
	Args []string `json:"-"`
}

// App holds application-level configuration values.
type App struct {
	// Stage identifies the deployment stage (e.g. "dev", "prod").
	// It selects the stage config file and the log level.
	// Env: STAGE
	Stage string `env:"STAGE"`

	// TokenSignKey is the shared secret used to sign and verify access tokens.
	// Env: JWT_SECRET
	TokenSignKey string `env:"JWT_SECRET"`

	// TokenIssuer is the "iss" claim embedded in every issued token.
	// Env: JWT_ISSUER
	TokenIssuer string `env:"JWT_ISSUER"`

	// TokenDuration is the validity window of an issued token.
	// Env: JWT_DURATION
	TokenDuration time.Duration `env:"JWT_DURATION"`
}

// Storage groups the configuration for the storage backend.
type Storage struct {
	// DB holds the relational database connection settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the relational database backend.
type DB struct {
	// Driver is the database/sql driver name: "pgx" or "sqlite3".
	// Env: DB_DRIVER
	Driver string `env:"DRIVER"`

	// Host is the PostgreSQL server host. Env: DB_HOST
	Host string `env:"HOST"`

	// Port is the PostgreSQL server port. Env: DB_PORT
	Port int `env:"PORT"`

	// Username is the PostgreSQL role. Env: DB_USERNAME
	Username string `env:"USERNAME"`

	// Password is the PostgreSQL role password. Env: DB_PASSWORD
	Password string `env:"PASSWORD"`

	// Database is the PostgreSQL database name, or the file path for sqlite3
	// (":memory:" for an in-memory database). Env: DB_DATABASE
	Database string `env:"DATABASE"`

	// SSLMode is the PostgreSQL sslmode parameter. Env: DB_SSLMODE
	SSLMode string `env:"SSLMODE"`
}

// DSN returns the connection string for the configured driver.
func (db DB) DSN() string {
	if db.Driver == DriverSQLite {
		return db.Database
	}

	dsn := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(db.Username, db.Password),
		Host:   net.JoinHostPort(db.Host, strconv.Itoa(db.Port)),
		Path:   "/" + db.Database,
	}
	if db.SSLMode != "" {
		dsn.RawQuery = url.Values{"sslmode": []string{db.SSLMode}}.Encode()
	}

	return dsn.String()
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address of the HTTP server ("host:port").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// GRPCAddress is the optional TCP address of the gRPC health server.
	// Env: SERVER_GRPC_ADDRESS
	GRPCAddress string `env:"GRPC_ADDRESS"`

	// RequestTimeout bounds the handling time of a single HTTP request.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// ShutdownTimeout bounds graceful shutdown of the servers.
	// Env: SERVER_SHUTDOWN_TIMEOUT
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT"`
}

// RateLimit holds per-client limits for the credential endpoints.
type RateLimit struct {
	// Requests is the number of requests allowed per Window.
	// Env: RATELIMIT_REQUESTS
	Requests int `env:"REQUESTS"`

	// Window is the period over which Requests are counted.
	// Env: RATELIMIT_WINDOW
	Window time.Duration `env:"WINDOW"`

	// Burst is the number of requests that may be served at once.
	// Env: RATELIMIT_BURST
	Burst int `env:"BURST"`
}

// Adapter holds the settings of the command-line API client.
type Adapter struct {
	// HTTPAddress is the base address of the event server.
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds every outbound request.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// Token is the bearer token used for owner-scoped calls.
	// Env: ADAPTER_TOKEN
	Token string `env:"TOKEN"`
}

// GetStructuredConfig loads, merges, and validates the server configuration
// from all available sources in the following priority order (later sources
// override non-zero fields of earlier ones):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (explicit path, or the stage file config.stage.<STAGE>.json)
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	cfg, err := newConfigBuilder().
		withEnv().
		withFlags(args).
		withJSON().
		build()
	if err != nil {
		return nil, err
	}

	return cfg, cfg.validate()
}

// GetClientConfig loads the configuration of the command-line client.
// Only the adapter settings are validated.
func GetClientConfig(args []string) (*StructuredConfig, error) {
	cfg, err := newConfigBuilder().
		withEnv().
		withFlags(args).
		withJSON().
		build()
	if err != nil {
		return nil, err
	}

	return cfg, cfg.validateClient()
}

func (cfg *StructuredConfig) applyDefaults() {
	if cfg.Storage.DB.Driver == "" {
		cfg.Storage.DB.Driver = defaultDriver
	}
	if cfg.Storage.DB.SSLMode == "" && cfg.Storage.DB.Driver == DriverPostgres {
		cfg.Storage.DB.SSLMode = defaultSSLMode
	}
	if cfg.App.TokenIssuer == "" {
		cfg.App.TokenIssuer = defaultTokenIssuer
	}
	if cfg.App.TokenDuration == 0 {
		cfg.App.TokenDuration = defaultTokenDuration
	}
	if cfg.Server.RequestTimeout == 0 {
		cfg.Server.RequestTimeout = defaultRequestTimeout
	}
	if cfg.Server.ShutdownTimeout == 0 {
		cfg.Server.ShutdownTimeout = defaultShutdownTimeout
	}
	if cfg.RateLimit.Requests == 0 {
		cfg.RateLimit.Requests = defaultRateRequests
	}
	if cfg.RateLimit.Window == 0 {
		cfg.RateLimit.Window = defaultRateWindow
	}
	if cfg.RateLimit.Burst == 0 {
		cfg.RateLimit.Burst = defaultRateBurst
	}
	if cfg.Adapter.RequestTimeout == 0 {
		cfg.Adapter.RequestTimeout = defaultAdapterTimeout
	}
}
