package config

import "time"

// APIBaseURL is the root of the remote scheduling API.
func APIBaseURL() string {
	return GetEnv("API_BASE_URL", "http://localhost:3333")
}

// APITimeout bounds a single call to the remote API.
func APITimeout() time.Duration {
	return MustParseDuration("API_TIMEOUT", "10s")
}
