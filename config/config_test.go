package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig_ApplyDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.applyDefaults()

	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
	require.NotNil(t, cfg.Store)
	assert.Equal(t, "sqlite", cfg.Store.Driver)
	assert.Equal(t, 5*time.Second, cfg.Store.LivePollInterval)
	require.NotNil(t, cfg.Worker)
	assert.Equal(t, 8081, cfg.Worker.Port)
	assert.Equal(t, "/events", cfg.Worker.PushPath)
	assert.Equal(t, "admins", cfg.Worker.AdminTopic)
	assert.NoError(t, cfg.Validate())
}

func TestConfig_ApplyDefaultsKeepsExplicitValues(t *testing.T) {
	cfg := &Config{
		Store:  &StoreConfig{Driver: "postgres", LivePollInterval: time.Minute},
		Worker: &WorkerConfig{Port: 9000, PushPath: "/push", AdminTopic: "ops"},
	}
	cfg.applyDefaults()

	assert.Equal(t, "postgres", cfg.Store.Driver)
	assert.Equal(t, time.Minute, cfg.Store.LivePollInterval)
	assert.Equal(t, 9000, cfg.Worker.Port)
	assert.Equal(t, "/push", cfg.Worker.PushPath)
	assert.Equal(t, "ops", cfg.Worker.AdminTopic)
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{name: "unknown store driver", mutate: func(c *Config) { c.Store.Driver = "mongo" }},
		{name: "push path without slash", mutate: func(c *Config) { c.Worker.PushPath = "events" }},
		{name: "worker port out of range", mutate: func(c *Config) { c.Worker.Port = 70000 }},
		{name: "unknown pubsub provider", mutate: func(c *Config) { c.PubSub = &PubSubConfig{Provider: "kafka"} }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{}
			cfg.applyDefaults()
			tt.mutate(cfg)

			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), "invalid config")
		})
	}
}

func TestConfig_ValidateAcceptsEmptyPubSubProvider(t *testing.T) {
	cfg := &Config{PubSub: &PubSubConfig{}}
	cfg.applyDefaults()

	assert.NoError(t, cfg.Validate())
}

func TestReplicasFromEnv(t *testing.T) {
	vars := map[string]string{
		"POSTGRES_REPLICAS_0_HOST":     "replica-a",
		"POSTGRES_REPLICAS_0_PORT":     "5432",
		"POSTGRES_REPLICAS_0_USERNAME": "reader",
		"POSTGRES_REPLICAS_0_PASSWORD": "secret",
		"POSTGRES_REPLICAS_1_HOST":     "replica-b",
		"POSTGRES_REPLICAS_1_PORT":     "5433",
		// index 2 has no port, so scanning stops before index 3
		"POSTGRES_REPLICAS_2_HOST":     "replica-c",
		"POSTGRES_REPLICAS_3_HOST":     "replica-d",
		"POSTGRES_REPLICAS_3_PORT":     "5434",
	}
	getenv := func(key string) string { return vars[key] }

	replicas := replicasFromEnv(getenv)

	require.Len(t, replicas, 2)
	assert.Equal(t, "replica-a", replicas[0].Host)
	assert.Equal(t, "reader", replicas[0].UserName)
	assert.Equal(t, "secret", replicas[0].Password)
	assert.Equal(t, "replica-b", replicas[1].Host)
	assert.Equal(t, "5433", replicas[1].Port)
	assert.Empty(t, replicas[1].UserName)
}

func TestReplicasFromEnv_None(t *testing.T) {
	assert.Nil(t, replicasFromEnv(func(string) string { return "" }))
}

func TestFindConfigFile_Missing(t *testing.T) {
	_, err := findConfigFile("does-not-exist.yaml", []string{"nowhere"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "does-not-exist.yaml not found")
}
