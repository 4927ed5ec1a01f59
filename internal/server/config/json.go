package config

import (
	"encoding/json"
	"os"

	"artcatalog/internal/flagx"
	"artcatalog/internal/timex"
)

// jsonConfig mirrors Config for JSON unmarshalling. Durations use
// timex.Duration so the file can say "15m" instead of nanoseconds.
type jsonConfig struct {
	EndpointAddr   string         `json:"endpoint_addr"`
	DataDir        string         `json:"data_dir"`
	S3RootUser     string         `json:"s3_root_user"`
	S3RootPassword string         `json:"s3_root_password"`
	S3Bucket       string         `json:"s3_bucket"`
	S3Region       string         `json:"s3_region"`
	S3BaseEndpoint string         `json:"s3_base_endpoint"`
	PresignExpiry  timex.Duration `json:"presign_expiry"`
}

// parseJSON overlays values from the JSON file named by the -c/-config
// flags onto cfg. Without the flag nothing is loaded. An unreadable or
// malformed file is a startup error and panics.
func parseJSON(cfg *Config) {
	path := flagx.JSONConfigFlags()
	if path == "" {
		return
	}

	file, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	c := &jsonConfig{}
	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	if c.EndpointAddr != "" {
		cfg.EndpointAddr = c.EndpointAddr
	}
	if c.DataDir != "" {
		cfg.DataDir = c.DataDir
	}
	if c.S3RootUser != "" {
		cfg.S3RootUser = c.S3RootUser
	}
	if c.S3RootPassword != "" {
		cfg.S3RootPassword = c.S3RootPassword
	}
	if c.S3Bucket != "" {
		cfg.S3Bucket = c.S3Bucket
	}
	if c.S3Region != "" {
		cfg.S3Region = c.S3Region
	}
	if c.S3BaseEndpoint != "" {
		cfg.S3BaseEndpoint = c.S3BaseEndpoint
	}
	if c.PresignExpiry.Duration != 0 {
		cfg.PresignExpiry = c.PresignExpiry.Duration
	}
}
