// Package config loads the market configuration from config.yaml, .env and the process environment.
package config

import (
	"time"

	"github.com/slighter12/go-lib/database/postgres"
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port               int    `json:"port" yaml:"port" validate:"gte=0,lt=65536"`
		MaxRequestBodySize string `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		Timeouts           struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	// Store selects which repository backend is live
	Store *StoreConfig `json:"store" yaml:"store"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	SQLite *SQLiteConfig `json:"sqlite" yaml:"sqlite"`

	SecretKey struct {
		Access  string `json:"access" yaml:"access"`
		Refresh string `json:"refresh" yaml:"refresh"`
	} `json:"secretKey" yaml:"secretKey"`

	Auth *AuthConfig `json:"auth" yaml:"auth"`

	// Firebase configuration for Firestore, ID token verification and push notifications
	Firebase *FirebaseConfig `json:"firebase" yaml:"firebase"`

	// QRCode configuration for offer labels
	QRCode *QRCodeConfig `json:"qrcode" yaml:"qrcode"`

	// PubSub configuration for event publishing
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`

	// Alerts configuration for the certificate expiry sweep
	Alerts *AlertsConfig `json:"alerts" yaml:"alerts"`

	// Producers configuration for location search
	Producers *ProducersConfig `json:"producers" yaml:"producers"`

	// Worker configuration for the event worker process
	Worker *WorkerConfig `json:"worker" yaml:"worker"`
}

// StoreConfig selects the repository backend
type StoreConfig struct {
	// Driver is one of "firestore", "postgres" or "sqlite"
	Driver string `json:"driver" yaml:"driver" validate:"oneof=firestore postgres sqlite"`

	// LivePollInterval is the refresh period of live collections on relational drivers
	LivePollInterval time.Duration `json:"livePollInterval" yaml:"livePollInterval"`

	// SlowQueryThreshold is the duration above which relational queries are logged as slow
	SlowQueryThreshold time.Duration `json:"slowQueryThreshold" yaml:"slowQueryThreshold"`
}

// SQLiteConfig defines the file database used by the sqlite driver
type SQLiteConfig struct {
	Path string `json:"path" yaml:"path"`
}

// AuthConfig defines authentication-related configuration
type AuthConfig struct {
	BcryptCost int `json:"bcryptCost" yaml:"bcryptCost"`
	// AccessTTL and RefreshTTL default to 15 minutes and 7 days
	AccessTTL  time.Duration `json:"accessTtl" yaml:"accessTtl"`
	RefreshTTL time.Duration `json:"refreshTtl" yaml:"refreshTtl"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// FirebaseConfig defines Firebase configuration
type FirebaseConfig struct {
	ProjectID       string `json:"projectId" yaml:"projectId"`
	CredentialsPath string `json:"credentialsPath" yaml:"credentialsPath"`
	// VerifyIDTokens accepts Firebase ID tokens alongside local access tokens
	VerifyIDTokens bool `json:"verifyIdTokens" yaml:"verifyIdTokens"`
	// NotifyTopic receives operation notices as push messages; empty disables push notices
	NotifyTopic string `json:"notifyTopic" yaml:"notifyTopic"`
}

// QRCodeConfig defines QR code generation configuration
type QRCodeConfig struct {
	Size                 int    `json:"size" yaml:"size"`
	ErrorCorrectionLevel string `json:"errorCorrectionLevel" yaml:"errorCorrectionLevel"`
	BaseURL              string `json:"baseUrl" yaml:"baseUrl"`
}

// PubSubConfig defines Pub/Sub configuration for event publishing
type PubSubConfig struct {
	// Provider type: "local" for local HTTP or "google" for Google Pub/Sub
	Provider string `json:"provider" yaml:"provider" validate:"omitempty,oneof=local google"`

	// Google Cloud project ID (for google provider)
	ProjectID string `json:"projectId" yaml:"projectId"`

	// Pub/Sub topic ID (for google provider)
	TopicID string `json:"topicId" yaml:"topicId"`

	// Local HTTP endpoint for development (for local provider)
	LocalEndpoint string `json:"localEndpoint" yaml:"localEndpoint"`
}

// AlertsConfig defines the background certificate sweep
type AlertsConfig struct {
	// SweepInterval of zero disables the background sweep
	SweepInterval time.Duration `json:"sweepInterval" yaml:"sweepInterval"`
}

// ProducersConfig defines nearby producer search limits
type ProducersConfig struct {
	DefaultRadius float64 `json:"defaultRadius" yaml:"defaultRadius"` // meters
	MaxRadius     float64 `json:"maxRadius" yaml:"maxRadius"`         // meters
}

// WorkerConfig defines the event worker: the Pub/Sub push endpoint and the certificate sweep
type WorkerConfig struct {
	Port     int    `json:"port" yaml:"port" validate:"gt=0,lt=65536"`
	PushPath string `json:"pushPath" yaml:"pushPath" validate:"startswith=/"`
	// AdminTopic is the FCM topic that receives new offer submissions
	AdminTopic string `json:"adminTopic" yaml:"adminTopic"`
	// PushServiceAccount is the account push subscriptions sign their tokens with; empty accepts any
	PushServiceAccount string `json:"pushServiceAccount" yaml:"pushServiceAccount"`
}

