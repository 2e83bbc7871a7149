package config

import (
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeTempJSONConfig(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	f, err := os.CreateTemp(t.TempDir(), "config-*.json")
	require.NoError(t, err)
	_, err = f.Write(data)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return f.Name()
}

// requiredSecrets carries the values without defaults.
func requiredSecrets() *StructuredConfig {
	return &StructuredConfig{
		App: App{MasterKey: "master"},
		Adapter: Adapter{
			Pinning: Pinning{APIKey: "key", SecretKey: "secret"},
		},
	}
}

// ── newConfigBuilder ──────────────────────────────────────────────────────────

func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

// ── build ─────────────────────────────────────────────────────────────────────

// TestBuild_EmptyBuilder verifies that an empty config fails validation.
func TestBuild_EmptyBuilder(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, ErrInvalidAppConfigs)
}

func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_FirstSourceWins verifies that an earlier config takes precedence
// over later ones and that defaults fill the remaining gaps.
func TestBuild_FirstSourceWins(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		requiredSecrets(),
		&StructuredConfig{Server: Server{HTTPAddress: "localhost:9000"}},
		&StructuredConfig{Server: Server{HTTPAddress: "localhost:9999", RequestTimeout: time.Second}},
	)
	b.withDefaults()

	cfg, err := b.build()
	require.NoError(t, err)

	assert.Equal(t, "localhost:9000", cfg.Server.HTTPAddress)
	assert.Equal(t, time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, "master", cfg.App.MasterKey)
	assert.Equal(t, defaultConfig().Workers, cfg.Workers)
	assert.Equal(t, defaultConfig().Adapter.IPFS, cfg.Adapter.IPFS)
}

// ── validate ──────────────────────────────────────────────────────────────────

func TestValidate(t *testing.T) {
	valid := func() *StructuredConfig {
		cfg := defaultConfig()
		cfg.App.MasterKey = "master"
		cfg.Adapter.Pinning.APIKey = "key"
		cfg.Adapter.Pinning.SecretKey = "secret"
		return cfg
	}

	tests := []struct {
		name    string
		mutate  func(cfg *StructuredConfig)
		wantErr error
	}{
		{name: "valid", mutate: func(*StructuredConfig) {}},
		{name: "no master key", mutate: func(c *StructuredConfig) { c.App.MasterKey = "" }, wantErr: ErrInvalidAppConfigs},
		{name: "no dsn", mutate: func(c *StructuredConfig) { c.Storage.DB.DSN = "" }, wantErr: ErrInvalidStorageConfigs},
		{name: "no address", mutate: func(c *StructuredConfig) { c.Server.HTTPAddress = "" }, wantErr: ErrInvalidServerConfigs},
		{name: "no ipfs", mutate: func(c *StructuredConfig) { c.Adapter.IPFS.APIAddress = "" }, wantErr: ErrInvalidAdapterConfigs},
		{name: "no secret", mutate: func(c *StructuredConfig) { c.Adapter.Pinning.SecretKey = "" }, wantErr: ErrInvalidAdapterConfigs},
		{name: "zero ttl", mutate: func(c *StructuredConfig) { c.Workers.PinQueuedTTL = 0 }, wantErr: ErrInvalidWorkerConfigs},
		{name: "zero quota", mutate: func(c *StructuredConfig) { c.Workers.RateLimit.Quota = 0 }, wantErr: ErrInvalidWorkerConfigs},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			err := cfg.validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

// ── withJSON ──────────────────────────────────────────────────────────────────

func TestWithJSON_NoPath(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{})
	b.withJSON()

	assert.NoError(t, b.err)
	assert.Len(t, b.configs, 1)
}

func TestWithJSON_LoadsFile(t *testing.T) {
	path := writeTempJSONConfig(t, map[string]any{
		"app":    map[string]any{"master_key": "from-json"},
		"server": map[string]any{"http_address": "localhost:4000"},
	})

	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: path})
	b.withJSON()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 2)
	assert.Equal(t, "from-json", b.configs[1].App.MasterKey)
	assert.Equal(t, "localhost:4000", b.configs[1].Server.HTTPAddress)
}

func TestWithJSON_BadPathRecordsError(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: "/definitely/not/here.json"})
	b.withJSON()

	assert.Error(t, b.err)
}

// ── GetStructuredConfig ───────────────────────────────────────────────────────

func TestGetStructuredConfig_EnvOverridesFlagsAndJSON(t *testing.T) {
	path := writeTempJSONConfig(t, map[string]any{
		"adapter": map[string]any{
			"pinning": map[string]any{"api_key": "json-key", "secret_key": "json-secret"},
		},
		"server": map[string]any{"http_address": "localhost:5000"},
	})
	setEnvVars(t, map[string]string{
		"APP_MASTER_KEY": "env-master",
		"SERVER_ADDRESS": "localhost:6000",
	})

	cfg, err := GetStructuredConfig([]string{"-c", path, "-a", "localhost:7000", "-pinning-key", "flag-key"})
	require.NoError(t, err)

	assert.Equal(t, "env-master", cfg.App.MasterKey)
	assert.Equal(t, "localhost:6000", cfg.Server.HTTPAddress)
	assert.Equal(t, "flag-key", cfg.Adapter.Pinning.APIKey)
	assert.Equal(t, "json-secret", cfg.Adapter.Pinning.SecretKey)
	assert.Equal(t, defaultConfig().Workers.RateLimit, cfg.Workers.RateLimit)
}

func TestGetStructuredConfig_MissingSecrets(t *testing.T) {
	clearEnvVars(t)

	cfg, err := GetStructuredConfig(nil)
	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, ErrInvalidAppConfigs)
}
