package config

import (
	"os"
	"path/filepath"
	"time"
)

// defaultConfig returns the values used for every field no other source set.
// The pinning limiter defaults stay below the public pinning API quota of
// 180 requests per minute.
func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			KeystoreWorkFactor: 15,
			TempDir:            filepath.Join(os.TempDir(), "file-keeper"),
			Version:            "dev",
		},
		Storage: Storage{
			DB: DB{DSN: "file-keeper.db"},
		},
		Server: Server{
			HTTPAddress:    "localhost:3000",
			RequestTimeout: 30 * time.Second,
		},
		Adapter: Adapter{
			IPFS: IPFS{
				APIAddress:     "127.0.0.1:5001",
				RequestTimeout: time.Minute,
			},
			Pinning: Pinning{
				BaseURL:        "https://api.pinata.cloud",
				RequestTimeout: 30 * time.Second,
				PageLimit:      1000,
			},
		},
		Workers: Workers{
			ImportGCInterval:   time.Minute,
			ImportGracePeriod:  5 * time.Minute,
			ImportProbeTimeout: time.Minute,
			PinRefreshInterval: 5 * time.Second,
			PinQueuedTTL:       10 * time.Second,
			PinSettledTTL:      5 * time.Minute,
			RateLimit: RateLimit{
				MaxConcurrent: 1,
				MinSpacing:    667 * time.Millisecond,
				Quota:         180,
				Window:        time.Minute,
				MaxQueued:     180,
			},
		},
	}
}
