package config

import "time"

func SessionSecret() string {
	return MustGetEnv("SESSION_SECRET")
}

func SessionIssuer() string {
	return GetEnv("SESSION_ISSUER", "barber-web")
}

func SessionTTL() time.Duration {
	return MustParseDuration("SESSION_TTL", "24h")
}

// ToastTTL is how long a pending notification waits for the next page view.
func ToastTTL() time.Duration {
	return MustParseDuration("TOAST_TTL", "30s")
}

// APITokenSecret signs bearer tokens handed out by the development API.
func APITokenSecret() string {
	return MustGetEnv("API_TOKEN_SECRET")
}

func APITokenTTL() time.Duration {
	return MustParseDuration("API_TOKEN_TTL", "24h")
}
