// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv_AllFields(t *testing.T) {
	// Arrange
	envVars := map[string]string{
		"CONFIG": "/path/to/config.json",

		"APP_NAMESPACE": "work",
		"APP_VERSION":   "1.0.0",

		"STORAGE_DB_DATABASE_URI": "/tmp/notes.db",

		"SERVER_ADDRESS":         "localhost:8080",
		"SERVER_REQUEST_TIMEOUT": "30s",
		"SERVER_BCRYPT_COST":     "11",
		"SERVER_PAIR_RATE_LIMIT": "2.5",
		"SERVER_PAIR_RATE_BURST": "7",

		"ADAPTER_ADDRESS":         "https://sync.example.com",
		"ADAPTER_REQUEST_TIMEOUT": "5s",

		"WORKERS_PAIRING_POLL_INTERVAL":   "3s",
		"WORKERS_PUSH_DEBOUNCE":           "1s",
		"WORKERS_PULL_INTERVAL":           "45s",
		"WORKERS_PUSH_CONCURRENCY":        "2",
		"WORKERS_CLIPBOARD_POLL_INTERVAL": "750ms",

		"LOG_FILE": "/tmp/client.log",
	}
	setEnvVars(t, envVars)

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)

	assert.Equal(t, "/path/to/config.json", cfg.JSONFilePath)
	assert.Equal(t, "work", cfg.App.Namespace)
	assert.Equal(t, "1.0.0", cfg.App.Version)
	assert.Equal(t, "/tmp/notes.db", cfg.Storage.DB.DSN)

	assert.Equal(t, "localhost:8080", cfg.Server.HTTPAddress)
	assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, 11, cfg.Server.BcryptCost)
	assert.InDelta(t, 2.5, cfg.Server.PairRateLimit, 1e-9)
	assert.Equal(t, 7, cfg.Server.PairRateBurst)

	assert.Equal(t, "https://sync.example.com", cfg.Adapter.HTTPAddress)
	assert.Equal(t, 5*time.Second, cfg.Adapter.RequestTimeout)

	assert.Equal(t, 3*time.Second, cfg.Workers.PairingPollInterval)
	assert.Equal(t, time.Second, cfg.Workers.PushDebounce)
	assert.Equal(t, 45*time.Second, cfg.Workers.PullInterval)
	assert.Equal(t, 2, cfg.Workers.PushConcurrency)
	assert.Equal(t, 750*time.Millisecond, cfg.Workers.ClipboardPollInterval)

	assert.Equal(t, "/tmp/client.log", cfg.Log.File)
}

func TestParseEnv_PartialFields(t *testing.T) {
	setEnvVars(t, map[string]string{
		"APP_NAMESPACE":  "work",
		"SERVER_ADDRESS": "localhost:8080",
	})

	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	require.NoError(t, err)
	assert.Equal(t, "work", cfg.App.Namespace)
	assert.Empty(t, cfg.App.Version)
	assert.Equal(t, "localhost:8080", cfg.Server.HTTPAddress)
	assert.Zero(t, cfg.Server.RequestTimeout)
	assert.Equal(t, Workers{}, cfg.Workers)
	assert.Empty(t, cfg.JSONFilePath)
}

func TestParseEnv_EmptyEnv(t *testing.T) {
	clearEnvVars(t)

	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	require.NoError(t, err)
	assert.Equal(t, StructuredConfig{}, *cfg)
}

func TestParseEnv_InvalidInt(t *testing.T) {
	setEnvVars(t, map[string]string{"WORKERS_PUSH_CONCURRENCY": "many"})

	err := parseEnv(&StructuredConfig{})
	assert.Error(t, err)
}

func setEnvVars(t *testing.T, vars map[string]string) {
	t.Helper()
	clearEnvVars(t)
	for k, v := range vars {
		t.Setenv(k, v)
	}
}

func clearEnvVars(t *testing.T) {
	t.Helper()
	keys := []string{
		"CONFIG",
		"APP_NAMESPACE", "APP_VERSION",
		"STORAGE_DB_DATABASE_URI",
		"SERVER_ADDRESS", "SERVER_REQUEST_TIMEOUT", "SERVER_BCRYPT_COST",
		"SERVER_PAIR_RATE_LIMIT", "SERVER_PAIR_RATE_BURST",
		"ADAPTER_ADDRESS", "ADAPTER_REQUEST_TIMEOUT",
		"WORKERS_PAIRING_POLL_INTERVAL", "WORKERS_PUSH_DEBOUNCE", "WORKERS_PULL_INTERVAL",
		"WORKERS_PUSH_CONCURRENCY", "WORKERS_CLIPBOARD_POLL_INTERVAL",
		"LOG_FILE",
	}
	for _, k := range keys {
		if v, ok := os.LookupEnv(k); ok {
			t.Setenv(k, v)
			require.NoError(t, os.Unsetenv(k))
		}
	}
}
