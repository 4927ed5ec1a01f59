// Package config handles configuration for the catalog server, including
// defaults, an optional JSON overlay, environment variables for secrets, and
// command-line flags.
package config

import "time"

// Config holds runtime settings for the catalog server.
//
// Fields:
//   - EndpointAddr: bind address for the HTTP API.
//   - DataDir: directory holding the JSON collection documents.
//   - S3RootUser / S3RootPassword: credentials for the S3-compatible backend
//     holding artwork images.
//   - S3Bucket / S3Region / S3BaseEndpoint: image storage settings.
//   - PresignExpiry: lifetime of presigned image upload/download URLs.
type Config struct {
	EndpointAddr   string
	DataDir        string
	S3RootUser     string
	S3RootPassword string
	S3Bucket       string
	S3Region       string
	S3BaseEndpoint string
	PresignExpiry  time.Duration
}

// LoadDefaults populates Config with development defaults.
// NOTE: the S3 values are insecure for production and should be overridden.
func (c *Config) LoadDefaults() {
	c.EndpointAddr = ":8080"
	c.DataDir = "data"
	c.S3RootUser = "admin"
	c.S3RootPassword = "secretpassword"
	c.S3Bucket = "artwork-images"
	c.S3Region = "us-east-1"
	c.S3BaseEndpoint = "http://127.0.0.1:9000/"
	c.PresignExpiry = 15 * time.Minute
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from an optional JSON file, the environment, and command-line flags, in
// that order.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJSON(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
