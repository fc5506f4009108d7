package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	API      APIConfig
	Download DownloadConfig
	Bulk     BulkConfig
	Output   OutputConfig
}

// APIConfig holds the invoicing backend connection settings.
type APIConfig struct {
	BaseURL string        `mapstructure:"base_url"`
	Timeout time.Duration `mapstructure:"timeout"`
	UserID  string        `mapstructure:"user_id"`
}

// DownloadConfig holds PDF download settings.
type DownloadConfig struct {
	Dir string `mapstructure:"dir"`
}

// BulkConfig holds bulk CSV upload settings.
type BulkConfig struct {
	MaxFileSizeMB int64 `mapstructure:"max_file_size_mb"`
}

// OutputConfig holds terminal output settings.
type OutputConfig struct {
	NoColor bool `mapstructure:"no_color"`
}

// Load reads configuration from environment variables with the INVOICEGEN_
// prefix.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("INVOICEGEN")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// API defaults
	v.SetDefault("api.base_url", "http://localhost:8000/api")
	v.SetDefault("api.timeout", "30s")
	v.SetDefault("api.user_id", "demo-user-123")

	// Download defaults
	v.SetDefault("download.dir", ".")

	// Bulk defaults (mirrors the backend's upload cap)
	v.SetDefault("bulk.max_file_size_mb", 5)

	// Output defaults
	v.SetDefault("output.no_color", false)

	// Bind environment variables explicitly for nested keys
	envBindings := map[string]string{
		"api.base_url":          "INVOICEGEN_API_BASE_URL",
		"api.timeout":           "INVOICEGEN_API_TIMEOUT",
		"api.user_id":           "INVOICEGEN_API_USER_ID",
		"download.dir":          "INVOICEGEN_DOWNLOAD_DIR",
		"bulk.max_file_size_mb": "INVOICEGEN_BULK_MAX_FILE_SIZE_MB",
		"output.no_color":       "INVOICEGEN_OUTPUT_NO_COLOR",
	}
	for key, env := range envBindings {
		_ = v.BindEnv(key, env)
	}

	cfg := &Config{}
	cfg.API = APIConfig{
		BaseURL: strings.TrimRight(v.GetString("api.base_url"), "/"),
		Timeout: v.GetDuration("api.timeout"),
		UserID:  v.GetString("api.user_id"),
	}
	cfg.Download = DownloadConfig{
		Dir: v.GetString("download.dir"),
	}
	cfg.Bulk = BulkConfig{
		MaxFileSizeMB: v.GetInt64("bulk.max_file_size_mb"),
	}
	cfg.Output = OutputConfig{
		NoColor: v.GetBool("output.no_color"),
	}

	return cfg, nil
}
