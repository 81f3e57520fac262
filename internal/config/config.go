package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server   ServerConfig
	Log      LogConfig
	CORS     CORSConfig
	Planner  PlannerConfig
	Recorder RecorderConfig
	Alert    AlertConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         string        `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	Environment  string        `mapstructure:"environment"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string `mapstructure:"level"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// PlannerConfig holds allocation planner settings. Provider "pattern" is the
// deterministic default; "gemini" enables the generative planner and requires
// an API key.
type PlannerConfig struct {
	Provider     string `mapstructure:"provider"`
	APIKey       string `mapstructure:"api_key"`
	DefaultModel string `mapstructure:"default_model"`
	TimeoutSecs  int    `mapstructure:"timeout_secs"`
}

// RecorderConfig holds plan record store settings.
type RecorderConfig struct {
	Driver string `mapstructure:"driver"`
	Path   string `mapstructure:"path"`
}

// AlertConfig holds alert delivery settings.
type AlertConfig struct {
	Provider    string `mapstructure:"provider"`
	Region      string `mapstructure:"region"`
	FromAddress string `mapstructure:"from_address"`
	ToAddress   string `mapstructure:"to_address"`
}

// Load reads configuration from environment variables with the HUNGERGUARD_
// prefix and fails fast on invalid planner settings.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("HUNGERGUARD")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Server defaults
	v.SetDefault("server.port", ":8080")
	v.SetDefault("server.read_timeout", "15s")
	v.SetDefault("server.write_timeout", "15s")
	v.SetDefault("server.environment", "development")

	// Log defaults
	v.SetDefault("log.level", "debug")

	// CORS defaults (localhost origins for development)
	v.SetDefault("cors.allowed_origins", "http://localhost:3000,http://127.0.0.1:3000")

	// Planner defaults
	v.SetDefault("planner.provider", "pattern")
	v.SetDefault("planner.api_key", "")
	v.SetDefault("planner.default_model", "gemini-2.0-flash")
	v.SetDefault("planner.timeout_secs", 60)

	// Recorder defaults
	v.SetDefault("recorder.driver", "sqlite")
	v.SetDefault("recorder.path", "hungerguard.db")

	// Alert defaults
	v.SetDefault("alert.provider", "noop")
	v.SetDefault("alert.region", "ap-south-1")
	v.SetDefault("alert.from_address", "alerts@hungerguard.org")
	v.SetDefault("alert.to_address", "dispatch@hungerguard.org")

	// Bind environment variables explicitly for nested keys
	envBindings := map[string]string{
		"server.port":           "HUNGERGUARD_SERVER_PORT",
		"server.read_timeout":   "HUNGERGUARD_SERVER_READ_TIMEOUT",
		"server.write_timeout":  "HUNGERGUARD_SERVER_WRITE_TIMEOUT",
		"server.environment":    "HUNGERGUARD_SERVER_ENVIRONMENT",
		"log.level":             "HUNGERGUARD_LOG_LEVEL",
		"cors.allowed_origins":  "HUNGERGUARD_CORS_ALLOWED_ORIGINS",
		"planner.provider":      "HUNGERGUARD_PLANNER_PROVIDER",
		"planner.api_key":       "HUNGERGUARD_PLANNER_API_KEY",
		"planner.default_model": "HUNGERGUARD_PLANNER_DEFAULT_MODEL",
		"planner.timeout_secs":  "HUNGERGUARD_PLANNER_TIMEOUT_SECS",
		"recorder.driver":       "HUNGERGUARD_RECORDER_DRIVER",
		"recorder.path":         "HUNGERGUARD_RECORDER_PATH",
		"alert.provider":        "HUNGERGUARD_ALERT_PROVIDER",
		"alert.region":          "HUNGERGUARD_ALERT_REGION",
		"alert.from_address":    "HUNGERGUARD_ALERT_FROM_ADDRESS",
		"alert.to_address":      "HUNGERGUARD_ALERT_TO_ADDRESS",
	}
	for key, env := range envBindings {
		_ = v.BindEnv(key, env)
	}

	cfg := &Config{}

	// Railway/Heroku/Render set a PORT env var. Use it if HUNGERGUARD_SERVER_PORT
	// is not explicitly set.
	serverPort := v.GetString("server.port")
	if port := os.Getenv("PORT"); port != "" && os.Getenv("HUNGERGUARD_SERVER_PORT") == "" {
		serverPort = ":" + port
	}

	cfg.Server = ServerConfig{
		Port:         serverPort,
		ReadTimeout:  v.GetDuration("server.read_timeout"),
		WriteTimeout: v.GetDuration("server.write_timeout"),
		Environment:  v.GetString("server.environment"),
	}
	cfg.Log = LogConfig{
		Level: v.GetString("log.level"),
	}

	// Parse CORS allowed origins from comma-separated string
	var corsOrigins []string
	for _, o := range strings.Split(v.GetString("cors.allowed_origins"), ",") {
		o = strings.TrimSpace(o)
		if o != "" {
			corsOrigins = append(corsOrigins, o)
		}
	}
	cfg.CORS = CORSConfig{
		AllowedOrigins: corsOrigins,
	}

	cfg.Planner = PlannerConfig{
		Provider:     v.GetString("planner.provider"),
		APIKey:       v.GetString("planner.api_key"),
		DefaultModel: v.GetString("planner.default_model"),
		TimeoutSecs:  v.GetInt("planner.timeout_secs"),
	}
	cfg.Recorder = RecorderConfig{
		Driver: v.GetString("recorder.driver"),
		Path:   v.GetString("recorder.path"),
	}
	cfg.Alert = AlertConfig{
		Provider:    v.GetString("alert.provider"),
		Region:      v.GetString("alert.region"),
		FromAddress: v.GetString("alert.from_address"),
		ToAddress:   v.GetString("alert.to_address"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks settings that must stop the process at startup. The
// generative planner cannot run without an API key.
func (c *Config) Validate() error {
	if c.Planner.Provider == "gemini" && c.Planner.APIKey == "" {
		return fmt.Errorf("planner provider %q requires HUNGERGUARD_PLANNER_API_KEY to be set", c.Planner.Provider)
	}
	return nil
}
