// Package constants holds configuration values shared across layers.
package constants

// Environments
const (
	EnvLocal = "local"
)

// Pub/Sub providers
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Store drivers select the live repository backend.
const (
	StoreDriverFirestore = "firestore"
	StoreDriverPostgres  = "postgres"
	StoreDriverSQLite    = "sqlite"
)

// Store names label activity metrics and log lines.
const (
	StoreOffers         = "offers"
	StoreUsers          = "users"
	StoreProducts       = "products"
	StoreAuthorizations = "authorizations"
	StoreAlerts         = "alerts"
	StoreNews           = "news"
)
