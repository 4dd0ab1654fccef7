// Package constants holds values shared across layers.
package constants

const (
	// Environments
	EnvDevelop    = "develop"
	EnvStaging    = "staging"
	EnvProduction = "production"

	// Pub/Sub providers
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"

	// Storage drivers
	StorageDriverPostgres = "postgres"
	StorageDriverBolt     = "bolt"

	// Queue drivers
	QueueDriverMemory = "memory"
	QueueDriverRedis  = "redis"

	// Queue full policies
	QueueFullReject = "reject"
	QueueFullBlock  = "block"

	// RoleOperator is the JWT role required by the operator endpoints.
	RoleOperator = "operator"
)
