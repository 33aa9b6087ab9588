package config

import (
	"os"
	"strconv"
	"time"
)

// Environment variables read by ApplyEnv.
const (
	EnvAPIID       = "CLOUDSHARE_API_ID"
	EnvAPIKey      = "CLOUDSHARE_API_KEY"
	EnvHTTPTimeout = "CYBERLAB_HTTP_TIMEOUT"
	EnvConcurrency = "CYBERLAB_INVITE_CONCURRENCY"
	EnvS3AccessKey = "CYBERLAB_S3_ACCESS_KEY"
	EnvS3SecretKey = "CYBERLAB_S3_SECRET_KEY"
)

// ApplyEnv overlays environment variables on the configuration.
// If a numeric variable is not set or invalid, the current value is kept.
//
// Environment Variables:
//   - CLOUDSHARE_API_ID, CLOUDSHARE_API_KEY (credentials)
//   - CYBERLAB_HTTP_TIMEOUT (default: 0, no timeout)
//   - CYBERLAB_INVITE_CONCURRENCY (default: 1)
//   - CYBERLAB_S3_ACCESS_KEY, CYBERLAB_S3_SECRET_KEY (report archive)
func (c *Config) ApplyEnv() {
	c.Credentials = LoadCredentials()
	c.API.Timeout = parseDuration(EnvHTTPTimeout, c.API.Timeout)
	c.Invitations.Concurrency = parseInt(EnvConcurrency, c.Invitations.Concurrency)
	c.Report.Archive.AccessKey = os.Getenv(EnvS3AccessKey)
	c.Report.Archive.SecretKey = os.Getenv(EnvS3SecretKey)
}

// LoadCredentials reads the API credentials from the environment.
func LoadCredentials() Credentials {
	return Credentials{
		APIID:  os.Getenv(EnvAPIID),
		APIKey: os.Getenv(EnvAPIKey),
	}
}

// parseDuration parses a duration from an environment variable.
// If the variable is not set or parsing fails, the default value is returned.
func parseDuration(envVar string, defaultVal time.Duration) time.Duration {
	val := os.Getenv(envVar)
	if val == "" {
		return defaultVal
	}

	d, err := time.ParseDuration(val)
	if err != nil {
		return defaultVal
	}

	return d
}

// parseInt parses an integer from an environment variable.
// If the variable is not set or parsing fails, the default value is returned.
func parseInt(envVar string, defaultVal int) int {
	val := os.Getenv(envVar)
	if val == "" {
		return defaultVal
	}

	i, err := strconv.Atoi(val)
	if err != nil {
		return defaultVal
	}

	return i
}
