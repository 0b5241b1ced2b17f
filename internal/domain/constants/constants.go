// Package constants holds values shared by configuration and wiring.
package constants

// Deployment environments.
const (
	EnvDevelop    = "develop"
	EnvStaging    = "staging"
	EnvProduction = "production"
)

// Pub/Sub providers selectable in configuration.
const (
	PubSubProviderGoogle = "google"
	PubSubProviderLocal  = "local"
	PubSubProviderNoop   = "noop"
)

// Attribute keys set on published broadcast events.
const (
	AttrBroadcastID   = "broadcast_id"
	AttrEmergencyType = "emergency_type"
	AttrRequestID     = "request_id"
)
