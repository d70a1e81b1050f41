// Package constants defines shared configuration constants.
package constants

// Runtime environments.
const (
	EnvDevelop    = "develop"
	EnvProduction = "production"
)

// Pub/Sub provider types.
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Firestore collection names. The flat names are shared with the alert
// producer and the PWA; changing them is a breaking change.
const (
	CollectionOpportunities = "sendteBets"
	CollectionResults       = "betResults"
	CollectionUsers         = "users"
	CollectionTokens        = "tokens"
	CollectionMyBets        = "myBets"
	CollectionAdmins        = "admins"
)
