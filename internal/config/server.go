package config

import (
	"time"
)

// Port is the listen port of the web front.
func Port() string {
	return GetEnv("PORT", "8080")
}

// LogFile is where JSON logs are appended.
func LogFile() string {
	return GetEnv("LOG_FILE", "barber.log")
}

// ServerReadTimeout returns the maximum duration for reading the entire request, including the body.
func ServerReadTimeout() time.Duration {
	return MustParseDuration("SERVER_READ_TIMEOUT", "10s")
}

// ServerReadHeaderTimeout returns the amount of time allowed to read request headers.
func ServerReadHeaderTimeout() time.Duration {
	return MustParseDuration("SERVER_READ_HEADER_TIMEOUT", "5s")
}

// ServerWriteTimeout returns the maximum duration before timing out writes of the response.
// It must exceed API_TIMEOUT so a slow upstream still gets a rendered answer.
func ServerWriteTimeout() time.Duration {
	return MustParseDuration("SERVER_WRITE_TIMEOUT", "15s")
}

// ServerIdleTimeout returns the maximum amount of time to wait for the next request when keep-alives are enabled.
func ServerIdleTimeout() time.Duration {
	return MustParseDuration("SERVER_IDLE_TIMEOUT", "60s")
}

// ShutdownTimeout bounds graceful shutdown.
func ShutdownTimeout() time.Duration {
	return MustParseDuration("SHUTDOWN_TIMEOUT", "10s")
}

// MaxRequestBodyBytes returns the maximum allowed size of incoming request bodies.
// Supports raw integers (bytes) or human-friendly values like "2MB", "512KB".
func MaxRequestBodyBytes() int64 {
	val := GetEnv("MAX_REQUEST_BODY_BYTES", "64KB")
	n, err := parseBytes(val)
	if err != nil || n <= 0 {
		return 64 << 10
	}
	return n
}

// CookieSecure marks session, flash and CSRF cookies Secure.
func CookieSecure() bool {
	return GetBool("COOKIE_SECURE", false)
}

// SubmitRatePerMinute is the sustained number of form submissions allowed per client.
func SubmitRatePerMinute() int {
	return parseIntEnv("SUBMIT_RATE_PER_MIN", 20)
}

// SubmitBurst is the burst size of the submission limiter.
func SubmitBurst() int {
	return parseIntEnv("SUBMIT_BURST", 5)
}

// APIPort is the listen port of the development API backend.
func APIPort() string {
	return GetEnv("API_PORT", "3333")
}

// APILogFile is the development API's log file.
func APILogFile() string {
	return GetEnv("API_LOG_FILE", "barber-api.log")
}

// DBPath is the SQLite file used by the development API backend.
func DBPath() string {
	return GetEnv("DB_PATH", "barber.db")
}

// CORSAllowedOrigins lists origins the development API accepts.
func CORSAllowedOrigins() []string {
	return GetList("CORS_ALLOWED_ORIGINS", []string{"http://localhost:8080"})
}

// DBWorkerCount controls the number of DB workers.
func DBWorkerCount() int {
	return parseIntEnv("DB_WORKER_COUNT", 4)
}

// CryptoWorkerCount controls the number of password hashing workers.
func CryptoWorkerCount() int {
	return parseIntEnv("CRYPTO_WORKER_COUNT", 4)
}

// WorkerQueueSize controls the queue size for each worker pool.
func WorkerQueueSize() int {
	return parseIntEnv("WORKER_QUEUE_SIZE", 1024)
}
