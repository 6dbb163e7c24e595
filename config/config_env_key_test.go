package config

import (
	"testing"
	"time"
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
		"secretKey": map[string]any{
			"access": "",
		},
		"store": map[string]any{
			"livePollInterval": "5s",
		},
		"firebase": map[string]any{
			"verifyIdTokens": false,
		},
		"alerts": map[string]any{
			"sweepInterval": "24h",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "PUBSUB_TOPICID", want: "pubsub.topicId"},
		{envKey: "SECRETKEY_ACCESS", want: "secretKey.access"},
		{envKey: "STORE_LIVEPOLLINTERVAL", want: "store.livePollInterval"},
		{envKey: "FIREBASE_VERIFYIDTOKENS", want: "firebase.verifyIdTokens"},
		{envKey: "ALERTS_SWEEPINTERVAL", want: "alerts.sweepInterval"},
		{envKey: "SQLITE_PATH", want: "sqlite.path"},
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

func TestLoadWithEnv_OverridesFromEnvironment(t *testing.T) {
	t.Setenv("STORE_DRIVER", "postgres")
	t.Setenv("ALERTS_SWEEPINTERVAL", "90m")
	t.Setenv("HTTP_PORT", "9090")

	cfg, err := LoadWithEnv[Config]("config")
	if err != nil {
		t.Fatalf("LoadWithEnv() error = %v", err)
	}

	if cfg.Store == nil || cfg.Store.Driver != "postgres" {
		t.Fatalf("store driver = %+v, want postgres", cfg.Store)
	}

	if cfg.Alerts == nil || cfg.Alerts.SweepInterval != 90*time.Minute {
		t.Fatalf("alerts sweep interval = %+v, want 90m", cfg.Alerts)
	}

	if cfg.HTTP.Port != 9090 {
		t.Fatalf("http port = %d, want 9090", cfg.HTTP.Port)
	}

	if cfg.Store.LivePollInterval != 5*time.Second {
		t.Fatalf("live poll interval = %s, want 5s", cfg.Store.LivePollInterval)
	}
}
