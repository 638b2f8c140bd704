// Package config provides application configuration through environment variables.
package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/allisson/go-env"
	"github.com/joho/godotenv"

	authDomain "github.com/infiniteloop/camaraclient/internal/auth/domain"
)

// Config holds all application configuration.
type Config struct {
	// LogLevel is the logging level (e.g., "debug", "info", "warn", "error").
	LogLevel string

	// OperatorTokenURL is the operator OAuth2 token endpoint. Must be https.
	OperatorTokenURL string
	// OperatorServiceURL is the base URL of the operator API the token is used against.
	OperatorServiceURL string
	// OperatorClientID is the OAuth2 client identifier.
	OperatorClientID string
	// OperatorClientSecret is the OAuth2 client secret.
	OperatorClientSecret string
	// OperatorSPName is sent as X-SI-SP.
	OperatorSPName string
	// OperatorESPID is sent as X-SI-ESP.
	OperatorESPID string
	// OperatorOpCo is sent as X-SI-OPCO.
	OperatorOpCo string

	// TokenConnectTimeout bounds the dial and TLS handshake to the token endpoint.
	TokenConnectTimeout time.Duration
	// TokenRequestTimeout bounds a whole token exchange.
	TokenRequestTimeout time.Duration
	// TokenCAFile is an optional PEM bundle trusted in addition to the system roots.
	TokenCAFile string

	// CipherKey is the shared symmetric key. When CipherKeyKMSURI is set it holds
	// the base64 KMS ciphertext of the key instead.
	CipherKey string
	// CipherKeyKMSURI is the gocloud.dev secrets URI used to unwrap CipherKey.
	CipherKeyKMSURI string

	// ServerHost is the host address the server will bind to.
	ServerHost string
	// ServerPort is the port number the server will listen on.
	ServerPort int
	// ServerShutdownTimeout bounds the graceful shutdown of the servers.
	ServerShutdownTimeout time.Duration

	// RateLimitEnabled indicates whether per-IP rate limiting of the crypto endpoints is enabled.
	RateLimitEnabled bool
	// RateLimitRequestsPerSec is the number of requests allowed per second per client IP.
	RateLimitRequestsPerSec float64
	// RateLimitBurst is the burst size per client IP.
	RateLimitBurst int

	// CORSEnabled indicates whether CORS is enabled.
	CORSEnabled bool
	// CORSAllowOrigins is a comma-separated list of allowed origins for CORS.
	CORSAllowOrigins string

	// MetricsEnabled indicates whether metrics collection is enabled.
	MetricsEnabled bool
	// MetricsNamespace is the namespace for the application metrics.
	MetricsNamespace string
	// MetricsPort is the port number for the metrics server.
	MetricsPort int
}

// Load loads configuration from environment variables and .env file.
func Load() *Config {
	// Try to load .env file recursively
	loadDotEnv()

	return &Config{
		// Logging
		LogLevel: env.GetString("LOG_LEVEL", "info"),

		// Operator
		OperatorTokenURL:     env.GetString("OPERATOR_TOKEN_URL", ""),
		OperatorServiceURL:   env.GetString("OPERATOR_SERVICE_URL", ""),
		OperatorClientID:     env.GetString("OPERATOR_CLIENT_ID", ""),
		OperatorClientSecret: env.GetString("OPERATOR_CLIENT_SECRET", ""),
		OperatorSPName:       env.GetString("OPERATOR_SP_NAME", ""),
		OperatorESPID:        env.GetString("OPERATOR_ESP_ID", ""),
		OperatorOpCo:         env.GetString("OPERATOR_OPCO", ""),

		// Token endpoint transport
		TokenConnectTimeout: env.GetDuration("TOKEN_CONNECT_TIMEOUT_SECONDS", 10, time.Second),
		TokenRequestTimeout: env.GetDuration("TOKEN_REQUEST_TIMEOUT_SECONDS", 30, time.Second),
		TokenCAFile:         env.GetString("TOKEN_CA_FILE", ""),

		// Cipher key
		CipherKey:       env.GetString("CIPHER_KEY", ""),
		CipherKeyKMSURI: env.GetString("CIPHER_KEY_KMS_URI", ""),

		// Server configuration
		ServerHost:            env.GetString("SERVER_HOST", "0.0.0.0"),
		ServerPort:            env.GetInt("SERVER_PORT", 8080),
		ServerShutdownTimeout: env.GetDuration("SERVER_SHUTDOWN_TIMEOUT_SECONDS", 10, time.Second),

		// Rate Limiting
		RateLimitEnabled:        env.GetBool("RATE_LIMIT_ENABLED", true),
		RateLimitRequestsPerSec: env.GetFloat64("RATE_LIMIT_REQUESTS_PER_SEC", 10.0),
		RateLimitBurst:          env.GetInt("RATE_LIMIT_BURST", 20),

		// CORS
		CORSEnabled:      env.GetBool("CORS_ENABLED", false),
		CORSAllowOrigins: env.GetString("CORS_ALLOW_ORIGINS", ""),

		// Metrics
		MetricsEnabled:   env.GetBool("METRICS_ENABLED", true),
		MetricsNamespace: env.GetString("METRICS_NAMESPACE", "camara"),
		MetricsPort:      env.GetInt("METRICS_PORT", 8081),
	}
}

// OperatorSettings returns the token provider settings held by the configuration.
// The result is not validated here; the provider validates it on construction.
func (c *Config) OperatorSettings() authDomain.Settings {
	return authDomain.Settings{
		TokenURL:     c.OperatorTokenURL,
		ServiceURL:   c.OperatorServiceURL,
		ClientID:     c.OperatorClientID,
		ClientSecret: c.OperatorClientSecret,
		SPName:       c.OperatorSPName,
		ESPID:        c.OperatorESPID,
		OpCo:         c.OperatorOpCo,
	}
}

// GetGinMode returns the appropriate Gin mode based on log level.
func (c *Config) GetGinMode() string {
	switch c.LogLevel {
	case "debug":
		return "debug"
	default:
		return "release"
	}
}

// loadDotEnv searches for a .env file recursively from the current directory
// up to the root directory and loads it if found.
func loadDotEnv() {
	cwd, err := os.Getwd()
	if err != nil {
		return
	}

	dir := cwd
	for {
		envPath := filepath.Join(dir, ".env")
		if _, err := os.Stat(envPath); err == nil {
			_ = godotenv.Load(envPath)
			return
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
}
