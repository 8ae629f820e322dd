// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container shared by the
// sync client and the reference server. It is populated by merging values
// from environment variables, command-line flags, an optional JSON file and
// built-in defaults.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as the settings namespace
	// and the application version.
	App App `envPrefix:"APP_"`

	// Storage holds configuration for the local SQLite database.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds settings for the reference sync server.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds settings of the client transport to the sync server.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Workers holds the timer cadences of the sync scheduler.
	Workers Workers `envPrefix:"WORKERS_"`

	// Log holds log output settings.
	Log Log `envPrefix:"LOG_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`

	// Args holds the positional command-line arguments left after flag
	// parsing (the client sub-command and its operands).
	Args []string
}

// App holds application-level configuration values.
type App struct {
	// Namespace prefixes every persisted sync setting (device identity,
	// linked flag, last remote version) so that several profiles can share
	// one database.
	// Env: APP_NAMESPACE
	Namespace string `env:"NAMESPACE"`

	// Version is the semantic version string of the running application.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Storage groups the configuration for the storage backends.
type Storage struct {
	// DB holds the local database settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the SQLite database.
type DB struct {
	// DSN is the SQLite file path or DSN (e.g. "notes.db").
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Server holds settings of the reference sync server.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "0.0.0.0:8080").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before the server cancels it (e.g. "30s", "1m").
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// BcryptCost is the bcrypt work factor used to hash device secrets.
	// Env: SERVER_BCRYPT_COST
	BcryptCost int `env:"BCRYPT_COST"`

	// PairRateLimit is the number of pairing requests per second allowed
	// from a single client address.
	// Env: SERVER_PAIR_RATE_LIMIT
	PairRateLimit float64 `env:"PAIR_RATE_LIMIT"`

	// PairRateBurst is the burst size of the pairing rate limiter.
	// Env: SERVER_PAIR_RATE_BURST
	PairRateBurst int `env:"PAIR_RATE_BURST"`
}

// Adapter holds settings of the client transport.
type Adapter struct {
	// HTTPAddress is the base address of the sync server
	// (e.g. "localhost:8080" or "https://sync.example.com").
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds every outbound request.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Workers holds the sync scheduler cadences.
type Workers struct {
	// PairingPollInterval is the pairing-status poll period.
	// Env: WORKERS_PAIRING_POLL_INTERVAL
	PairingPollInterval time.Duration `env:"PAIRING_POLL_INTERVAL"`

	// PushDebounce is the quiescence window of the push flush.
	// Env: WORKERS_PUSH_DEBOUNCE
	PushDebounce time.Duration `env:"PUSH_DEBOUNCE"`

	// PullInterval is the pull poll period once linked.
	// Env: WORKERS_PULL_INTERVAL
	PullInterval time.Duration `env:"PULL_INTERVAL"`

	// PushConcurrency bounds the per-record requests issued by one flush.
	// Env: WORKERS_PUSH_CONCURRENCY
	PushConcurrency int `env:"PUSH_CONCURRENCY"`

	// ClipboardPollInterval is how often the system clipboard is sampled.
	// Zero disables clipboard capture.
	// Env: WORKERS_CLIPBOARD_POLL_INTERVAL
	ClipboardPollInterval time.Duration `env:"CLIPBOARD_POLL_INTERVAL"`
}

// Log holds log output settings.
type Log struct {
	// File is the client log file path. Empty puts "logs/client.log" next
	// to the executable.
	// Env: LOG_FILE
	File string `env:"FILE"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources. Earlier sources take precedence
// over later ones for every non-zero field:
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Built-in defaults
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		withDefaults().
		build()
}
