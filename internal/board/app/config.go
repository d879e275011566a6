package app

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	Env       string // Environment (dev, staging, prod) (default: dev)
	LogLevel  string // Log level (debug, info, warn, error) (default: info)
	LogFormat string // Log format (json, text) (default: json)
	Port      int    // HTTP server port (default: 4000)

	DatabaseFile string // Optional: path to SQLite database file (default: ./board.db)
	PepperFile   string // Optional: path to file containing pepper for password hashing (default: ./pepper)

	RedisAddr     string // Optional: redis host:port; empty selects the in-process cache
	RedisPassword string // Optional: redis auth password

	CookieName     string        // Session cookie name (default: qid)
	CookieHashKey  string        // Key authenticating session cookies; generated when empty (sessions then die on restart)
	CookieBlockKey string        // Optional: key encrypting session cookies
	CookieSecure   bool          // Send the session cookie over HTTPS only (default: false)
	SessionMaxAge  time.Duration // Session lifetime (default: 30 days)

	ResetTokenTTL time.Duration // Password reset token lifetime (default: 3 days)

	SMTPHost string // Optional: SMTP host; empty logs mail instead of sending
	SMTPPort int    // SMTP port (default: 465)
	SMTPUser string // SMTP username
	SMTPPass string // SMTP password
	MailFrom string // From address for outbound mail

	ServerURL  string // Externally reachable base URL embedded in reset links (default: http://localhost:3000)
	CORSOrigin string // Optional: browser origin allowed to call the API with credentials

	ShutdownGracePeriod time.Duration // Graceful shutdown timeout (default: 10s)
}

func LoadConfig() Config {
	return Config{
		Env:       getEnvOrDefault("ENV", "dev"),
		LogLevel:  getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat: getEnvOrDefault("LOG_FORMAT", "json"),
		Port:      getEnvIntOrDefault("PORT", 4000),

		DatabaseFile: getEnvOrDefault("DATABASE_FILE", "board.db"),
		PepperFile:   getEnvOrDefault("PEPPER_FILE", "pepper"),

		RedisAddr:     os.Getenv("REDIS_ADDR"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),

		CookieName:     getEnvOrDefault("COOKIE_NAME", "qid"),
		CookieHashKey:  os.Getenv("COOKIE_HASH_KEY"),
		CookieBlockKey: os.Getenv("COOKIE_BLOCK_KEY"),
		CookieSecure:   getEnvBoolOrDefault("COOKIE_SECURE", false),
		SessionMaxAge:  getEnvDurationOrDefault("SESSION_MAX_AGE", 30*24*time.Hour),

		ResetTokenTTL: getEnvDurationOrDefault("RESET_TOKEN_TTL", 3*24*time.Hour),

		SMTPHost: os.Getenv("SMTP_HOST"),
		SMTPPort: getEnvIntOrDefault("SMTP_PORT", 465),
		SMTPUser: os.Getenv("SMTP_USER"),
		SMTPPass: os.Getenv("SMTP_PASS"),
		MailFrom: getEnvOrDefault("MAIL_FROM", "Drift Board <noreply@localhost>"),

		ServerURL:  getEnvOrDefault("SERVER_URL", "http://localhost:3000"),
		CORSOrigin: os.Getenv("CORS_ORIGIN"),

		ShutdownGracePeriod: getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if intValue, err := strconv.Atoi(value); err == nil {
		return intValue
	}

	return defaultValue
}

func getEnvBoolOrDefault(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if boolValue, err := strconv.ParseBool(value); err == nil {
		return boolValue
	}

	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	// Try parsing as duration (e.g., "72h", "30m", "90s")
	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}

	// Try parsing as integer minutes
	if minutes, err := strconv.Atoi(value); err == nil {
		return time.Duration(minutes) * time.Minute
	}

	return defaultValue
}
