// Package common contains constants shared by the skillfit client packages.
package common

const (
	// CredentialKey names the metadata entry that persists the bearer
	// credential between runs.
	CredentialKey = "token"

	// AuthorizationHeader carries "Bearer <token>" on authorized requests.
	AuthorizationHeader = "Authorization"
	BearerPrefix        = "Bearer "
)
