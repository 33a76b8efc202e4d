// Package config binds environment variables into a typed Env struct.
package config

import (
	"log"
	"strings"

	"github.com/spf13/viper"
)

// Env holds every runtime setting. The generative and metadata API keys
// are the only values without workable defaults; features degrade
// gracefully when they are missing rather than failing startup.
type Env struct {
	AppEnv         string `mapstructure:"APP_ENV"`
	Port           string `mapstructure:"PORT"`
	AllowedOrigins string `mapstructure:"ALLOWED_ORIGINS"`

	GeminiAPIKey string `mapstructure:"GEMINI_API_KEY"`
	GeminiModel  string `mapstructure:"GEMINI_MODEL"`
	OMDBAPIKey   string `mapstructure:"OMDB_API_KEY"`
	TMDBAPIKey   string `mapstructure:"TMDB_API_KEY"`

	MongoURI      string `mapstructure:"MONGO_URI"`
	MongoDatabase string `mapstructure:"MONGO_DATABASE"`

	CompletionTimeoutSec int `mapstructure:"COMPLETION_TIMEOUT_SEC"`
	MetadataTimeoutSec   int `mapstructure:"METADATA_TIMEOUT_SEC"`

	RateLimitPerSecond float64 `mapstructure:"RATE_LIMIT_PER_SECOND"`
	RateLimitBurst     int     `mapstructure:"RATE_LIMIT_BURST"`
	DailyQuota         int64   `mapstructure:"DAILY_QUOTA"`
}

// NewEnv loads settings from the environment, with an optional .env file
// picked up by godotenv in main before this runs.
func NewEnv() *Env {
	v := viper.New()

	v.SetDefault("APP_ENV", "development")
	v.SetDefault("PORT", "5001")
	v.SetDefault("ALLOWED_ORIGINS", "")
	v.SetDefault("GEMINI_API_KEY", "")
	v.SetDefault("GEMINI_MODEL", "")
	v.SetDefault("OMDB_API_KEY", "")
	v.SetDefault("TMDB_API_KEY", "")
	v.SetDefault("MONGO_URI", "")
	v.SetDefault("MONGO_DATABASE", "movierec")
	v.SetDefault("COMPLETION_TIMEOUT_SEC", 30)
	v.SetDefault("METADATA_TIMEOUT_SEC", 10)
	v.SetDefault("RATE_LIMIT_PER_SECOND", 1.0)
	v.SetDefault("RATE_LIMIT_BURST", 3)
	v.SetDefault("DAILY_QUOTA", 500)

	v.AutomaticEnv()

	env := Env{}
	if err := v.Unmarshal(&env); err != nil {
		log.Fatalf("[FATAL] Failed to load environment: %v", err)
	}

	if env.AppEnv == "development" {
		log.Println("[INFO] Running in development mode")
	}

	return &env
}

// Origins splits the configured allowed origins into a slice.
func (e *Env) Origins() []string {
	if strings.TrimSpace(e.AllowedOrigins) == "" {
		return nil
	}
	parts := strings.Split(e.AllowedOrigins, ",")
	origins := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	return origins
}
