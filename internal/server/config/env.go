package config

import "os"

// parseEnv overlays secrets and deployment settings from the environment.
// cmd mains load a .env file first (godotenv), so these also work from a
// local dotenv during development.
func parseEnv(cfg *Config) {
	env := map[string]*string{
		"CATALOG_ADDR":     &cfg.EndpointAddr,
		"CATALOG_DATA_DIR": &cfg.DataDir,
		"S3_ROOT_USER":     &cfg.S3RootUser,
		"S3_ROOT_PASSWORD": &cfg.S3RootPassword,
		"S3_BUCKET":        &cfg.S3Bucket,
		"S3_REGION":        &cfg.S3Region,
		"S3_BASE_ENDPOINT": &cfg.S3BaseEndpoint,
	}
	for name, target := range env {
		if v, ok := os.LookupEnv(name); ok && v != "" {
			*target = v
		}
	}
}
