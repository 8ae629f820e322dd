package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] for JSON config files.
// Durations accept both Go duration strings ("2s") and nanosecond numbers.
type StructuredJSONConfig struct {
	App struct {
		Namespace string `json:"namespace"`
		Version   string `json:"version"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
		BcryptCost     int      `json:"bcrypt_cost"`
		PairRateLimit  float64  `json:"pair_rate_limit"`
		PairRateBurst  int      `json:"pair_rate_burst"`
	} `json:"server,omitempty"`

	Adapter struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"adapter,omitempty"`

	Workers struct {
		PairingPollInterval   Duration `json:"pairing_poll_interval"`
		PushDebounce          Duration `json:"push_debounce"`
		PullInterval          Duration `json:"pull_interval"`
		PushConcurrency       int      `json:"push_concurrency"`
		ClipboardPollInterval Duration `json:"clipboard_poll_interval"`
	} `json:"workers,omitempty"`

	Log struct {
		File string `json:"file"`
	} `json:"log,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			Namespace: jsonCfg.App.Namespace,
			Version:   jsonCfg.App.Version,
		},
		Storage: Storage{
			DB: DB{
				DSN: jsonCfg.Storage.DB.DSN,
			},
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
			BcryptCost:     jsonCfg.Server.BcryptCost,
			PairRateLimit:  jsonCfg.Server.PairRateLimit,
			PairRateBurst:  jsonCfg.Server.PairRateBurst,
		},
		Adapter: Adapter{
			HTTPAddress:    jsonCfg.Adapter.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Adapter.RequestTimeout),
		},
		Workers: Workers{
			PairingPollInterval:   time.Duration(jsonCfg.Workers.PairingPollInterval),
			PushDebounce:          time.Duration(jsonCfg.Workers.PushDebounce),
			PullInterval:          time.Duration(jsonCfg.Workers.PullInterval),
			PushConcurrency:       jsonCfg.Workers.PushConcurrency,
			ClipboardPollInterval: time.Duration(jsonCfg.Workers.ClipboardPollInterval),
		},
		Log: Log{File: jsonCfg.Log.File},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
