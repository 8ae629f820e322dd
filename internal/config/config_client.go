package config

import (
	"fmt"
	"time"
)

// ClientApp holds client-side application settings derived from the shared
// structured config.
type ClientApp struct {
	// Namespace prefixes every persisted sync setting.
	Namespace string
	// Version is the client build version reported in logs.
	Version string
}

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// HTTPAddress is the sync server address used by the client.
	HTTPAddress string
	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration
}

// ClientDB contains local database connection settings for the client.
type ClientDB struct {
	// DSN is the SQLite connection string used by the client.
	DSN string
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	// DB holds local database settings.
	DB ClientDB
}

// ClientWorkers contains the sync scheduler cadences.
type ClientWorkers struct {
	PairingPollInterval   time.Duration
	PushDebounce          time.Duration
	PullInterval          time.Duration
	PushConcurrency       int
	ClipboardPollInterval time.Duration
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// App contains application-level client settings.
	App ClientApp
	// Adapter contains client transport address and timeout.
	Adapter ClientAdapter
	// Storage contains client storage settings.
	Storage ClientStorage
	// Workers contains sync scheduler settings.
	Workers ClientWorkers
	// LogFile is the rotating client log path.
	LogFile string
	// Command is the sub-command to run ("run" when none was given).
	Command string
	// CommandArgs are the operands following Command.
	CommandArgs []string
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
	command := "run"
	var commandArgs []string
	if len(cfg.Args) > 0 {
		command = cfg.Args[0]
		commandArgs = cfg.Args[1:]
	}

	return &ClientConfig{
		App: ClientApp{
			Namespace: cfg.App.Namespace,
			Version:   cfg.App.Version,
		},
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Storage: ClientStorage{
			DB: ClientDB{
				DSN: cfg.Storage.DB.DSN,
			},
		},
		Workers: ClientWorkers{
			PairingPollInterval:   cfg.Workers.PairingPollInterval,
			PushDebounce:          cfg.Workers.PushDebounce,
			PullInterval:          cfg.Workers.PullInterval,
			PushConcurrency:       cfg.Workers.PushConcurrency,
			ClipboardPollInterval: cfg.Workers.ClipboardPollInterval,
		},
		LogFile:     cfg.Log.File,
		Command:     command,
		CommandArgs: commandArgs,
	}
}
