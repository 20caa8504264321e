// Package constants holds shared domain-level constants.
package constants

const (
	// EnvDevelop marks the local development environment.
	EnvDevelop = "develop"
	// EnvProduction marks the production environment.
	EnvProduction = "production"

	// PubSubProviderLocal publishes events over plain HTTP for development.
	PubSubProviderLocal = "local"
	// PubSubProviderGoogle publishes events through Google Cloud Pub/Sub.
	PubSubProviderGoogle = "google"
)
