package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] for the JSON file source.
// Durations are accepted both as strings ("5s") and as nanosecond numbers.
type StructuredJSONConfig struct {
	App struct {
		MasterKey          string `json:"master_key"`
		KeystoreWorkFactor int    `json:"keystore_work_factor"`
		TempDir            string `json:"temp_dir"`
		Version            string `json:"version"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server,omitempty"`

	Adapter struct {
		IPFS struct {
			APIAddress     string   `json:"api_address"`
			RequestTimeout Duration `json:"request_timeout"`
		} `json:"ipfs,omitempty"`
		Pinning struct {
			BaseURL        string   `json:"base_url"`
			APIKey         string   `json:"api_key"`
			SecretKey      string   `json:"secret_key"`
			RequestTimeout Duration `json:"request_timeout"`
			PageLimit      int      `json:"page_limit"`
		} `json:"pinning,omitempty"`
	} `json:"adapter,omitempty"`

	Workers struct {
		ImportGCInterval   Duration `json:"import_gc_interval"`
		ImportGracePeriod  Duration `json:"import_grace_period"`
		ImportProbeTimeout Duration `json:"import_probe_timeout"`
		PinRefreshInterval Duration `json:"pin_refresh_interval"`
		PinQueuedTTL       Duration `json:"pin_queued_ttl"`
		PinSettledTTL      Duration `json:"pin_settled_ttl"`
		RateLimit          struct {
			MaxConcurrent int      `json:"max_concurrent"`
			MinSpacing    Duration `json:"min_spacing"`
			Quota         int      `json:"quota"`
			Window        Duration `json:"window"`
			MaxQueued     int      `json:"max_queued"`
		} `json:"rate_limit,omitempty"`
	} `json:"workers,omitempty"`
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

	w := jsonCfg.Workers
	cfg := &StructuredConfig{
		App: App{
			MasterKey:          jsonCfg.App.MasterKey,
			KeystoreWorkFactor: jsonCfg.App.KeystoreWorkFactor,
			TempDir:            jsonCfg.App.TempDir,
			Version:            jsonCfg.App.Version,
		},
		Storage: Storage{
			DB: DB{DSN: jsonCfg.Storage.DB.DSN},
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
		},
		Adapter: Adapter{
			IPFS: IPFS{
				APIAddress:     jsonCfg.Adapter.IPFS.APIAddress,
				RequestTimeout: time.Duration(jsonCfg.Adapter.IPFS.RequestTimeout),
			},
			Pinning: Pinning{
				BaseURL:        jsonCfg.Adapter.Pinning.BaseURL,
				APIKey:         jsonCfg.Adapter.Pinning.APIKey,
				SecretKey:      jsonCfg.Adapter.Pinning.SecretKey,
				RequestTimeout: time.Duration(jsonCfg.Adapter.Pinning.RequestTimeout),
				PageLimit:      jsonCfg.Adapter.Pinning.PageLimit,
			},
		},
		Workers: Workers{
			ImportGCInterval:   time.Duration(w.ImportGCInterval),
			ImportGracePeriod:  time.Duration(w.ImportGracePeriod),
			ImportProbeTimeout: time.Duration(w.ImportProbeTimeout),
			PinRefreshInterval: time.Duration(w.PinRefreshInterval),
			PinQueuedTTL:       time.Duration(w.PinQueuedTTL),
			PinSettledTTL:      time.Duration(w.PinSettledTTL),
			RateLimit: RateLimit{
				MaxConcurrent: w.RateLimit.MaxConcurrent,
				MinSpacing:    time.Duration(w.RateLimit.MinSpacing),
				Quota:         w.RateLimit.Quota,
				Window:        time.Duration(w.RateLimit.Window),
				MaxQueued:     w.RateLimit.MaxQueued,
			},
		},
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
		return fmt.Errorf("invalid duration: %s", string(b))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
