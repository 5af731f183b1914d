package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"pubsub": map[string]any{
			"topicId": "",
		},
		"search": map[string]any{
			"defaultLimit": 20,
		},
		"storage": map[string]any{
			"autoMigrate": true,
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "PUBSUB_TOPICID", want: "pubsub.topicId"},
		{envKey: "SEARCH_DEFAULTLIMIT", want: "search.defaultLimit"},
		{envKey: "STORAGE_AUTOMIGRATE", want: "storage.autoMigrate"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}

func TestConfig_ApplyDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.Storage.Driver = " Memory "

	cfg.applyDefaults()

	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
	assert.Equal(t, StorageDriverMemory, cfg.Storage.Driver)
	assert.Equal(t, 20, cfg.Search.DefaultLimit)
	assert.Equal(t, 100, cfg.Search.MaxLimit)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
	assert.Equal(t, "insurance", cfg.Metrics.Namespace)
	assert.NotNil(t, cfg.Payment)
	require.NoError(t, cfg.validate())
}

func TestConfig_Validate(t *testing.T) {
	t.Run("postgres driver without postgres section", func(t *testing.T) {
		cfg := &Config{}
		cfg.applyDefaults()

		assert.Error(t, cfg.validate())
	})

	t.Run("unknown driver", func(t *testing.T) {
		cfg := &Config{}
		cfg.Storage.Driver = "sqlite"
		cfg.applyDefaults()

		assert.ErrorContains(t, cfg.validate(), "unknown storage driver")
	})

	t.Run("default limit above max", func(t *testing.T) {
		cfg := &Config{Search: &SearchConfig{DefaultLimit: 50, MaxLimit: 10}}
		cfg.Storage.Driver = StorageDriverMemory
		cfg.applyDefaults()

		assert.ErrorContains(t, cfg.validate(), "exceeds")
	})
}
