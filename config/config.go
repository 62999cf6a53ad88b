package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Assistant widget specifics
	Firestore FirestoreConfig
	Google    GoogleConfig
	LLM       LLMConfig
	Calendar  CalendarConfig
	Chat      ChatConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// FirestoreConfig identifies the backing document store.
type FirestoreConfig struct {
	ProjectID string
	Database  string
}

// GoogleConfig is the application's OAuth client registration; organizer
// refresh tokens are stored per user, not here.
type GoogleConfig struct {
	ClientID     string
	ClientSecret string
	RedirectURI  string
}

// LLMConfig tunes the per-user Gemini calls. API keys come from each
// owning user's profile, never from configuration.
type LLMConfig struct {
	Model   string
	Timeout time.Duration
}

type CalendarConfig struct {
	Timezone string
}

// ChatConfig bounds the public chat surface.
type ChatConfig struct {
	CORSOrigins     []string
	RateLimitPerMin int
}

// Load loads configuration using Viper.
// Config file name: config.yaml — searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Firestore
	cfg.Firestore.ProjectID = viper.GetString("firestore.project_id")
	cfg.Firestore.Database = viper.GetString("firestore.database")
	if projectID := viper.GetString("firestore_project_id"); projectID != "" {
		cfg.Firestore.ProjectID = projectID
	}
	if cfg.Firestore.ProjectID == "" {
		return nil, fmt.Errorf("firestore.project_id is required")
	}

	// Google OAuth client
	cfg.Google.ClientID = viper.GetString("google.client_id")
	cfg.Google.ClientSecret = viper.GetString("google.client_secret")
	cfg.Google.RedirectURI = viper.GetString("google.redirect_uri")
	if clientSecret := viper.GetString("google_client_secret"); clientSecret != "" {
		cfg.Google.ClientSecret = clientSecret
	}

	// LLM
	cfg.LLM.Model = viper.GetString("llm.model")
	cfg.LLM.Timeout = viper.GetDuration("llm.timeout")

	// Calendar
	cfg.Calendar.Timezone = viper.GetString("calendar.timezone")

	// Chat surface
	cfg.Chat.RateLimitPerMin = viper.GetInt("chat.rate_limit_per_min")
	var origins []string
	if rawOrigins := viper.GetString("chat.cors_origins"); rawOrigins != "" {
		for _, origin := range strings.Split(rawOrigins, ",") {
			origin = strings.TrimSpace(origin)
			if origin != "" {
				origins = append(origins, origin)
			}
		}
	}
	cfg.Chat.CORSOrigins = origins

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)
	viper.SetDefault("firestore.database", "(default)")
	viper.SetDefault("llm.model", "gemini-1.5-flash")
	viper.SetDefault("llm.timeout", "30s")
	viper.SetDefault("calendar.timezone", "Asia/Kolkata")
	viper.SetDefault("chat.rate_limit_per_min", 60)
}
