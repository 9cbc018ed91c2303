// Package constants holds string values shared between configuration and wiring.
package constants

// Environments.
const (
	EnvDevelop    = "develop"
	EnvProduction = "production"
)

// Event publisher providers.
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
	PubSubProviderKafka  = "kafka"
)

// Conflict detection strategies for price writes.
const (
	ConflictDetectionNone       = "none"
	ConflictDetectionOptimistic = "optimistic"
)
