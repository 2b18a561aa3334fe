// Package constants holds string constants shared between layers.
package constants

const (
	EnvDevelop    = "develop"
	EnvLocal      = "local"
	EnvProduction = "production"
)

const (
	PubSubProviderGoogle = "google"
	PubSubProviderLocal  = "local"
	PubSubProviderNoop   = "noop"
)

// Echo context keys set by the auth middlewares.
const (
	ContextKeyUserID  = "userID"
	ContextKeyAdminID = "adminID"
	ContextKeyRoles   = "roles"
)

// Photo storage keys are plants/<plantID>/<photoID><ext>.
const PhotoKeyPrefix = "plants"
