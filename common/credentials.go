package common

import "os"

const (
	EnvAPIKey  = "POLYGON_API_KEY"
	EnvBaseURL = "POLYGON_BASE_URL"
)

type APIKey struct {
	ID string
}

// Credentials returns the user's Polygon API key
// for use through the SDK.
func Credentials() *APIKey {
	return &APIKey{
		ID: os.Getenv(EnvAPIKey),
	}
}

// BaseURL returns the API host override, or "" when none is set.
func BaseURL() string {
	return os.Getenv(EnvBaseURL)
}
