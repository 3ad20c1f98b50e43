package config

import (
	"log"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	Env               string `mapstructure:"ENV"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// Upstream service base URLs.
	AuthServiceURL      string `mapstructure:"AUTH_SERVICE_URL"`
	UserServiceURL      string `mapstructure:"USER_SERVICE_URL"`
	TherapistServiceURL string `mapstructure:"THERAPIST_SERVICE_URL"`
	BookingServiceURL   string `mapstructure:"BOOKING_SERVICE_URL"`

	// Upstream request timeout in seconds.
	UpstreamTimeoutSec int `mapstructure:"UPSTREAM_TIMEOUT_SEC"`

	// Redis configuration.
	RedisAddr      string `mapstructure:"REDIS_ADDR"`
	RedisPassword  string `mapstructure:"REDIS_PASSWORD"`
	RedisSessionDB int    `mapstructure:"REDIS_SESSION_DB"`
	RedisWizardDB  int    `mapstructure:"REDIS_WIZARD_DB"`

	// Browser session settings.
	SessionSecret       string `mapstructure:"SESSION_SECRET"`
	SessionCookieName   string `mapstructure:"SESSION_COOKIE_NAME"`
	SessionCookieMaxAge int    `mapstructure:"SESSION_COOKIE_MAX_AGE"`
	SessionTTLHours     int    `mapstructure:"SESSION_TTL_HOURS"`
	WizardTTLMin        int    `mapstructure:"WIZARD_TTL_MIN"`
}

var AppConfig Config

func LoadConfig() {
	// Look for a config file named "config.yaml" in the current and "config" directory.
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	// Automatically use environment variables where available.
	viper.AutomaticEnv()

	// Set default values.
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("MAX_REQUESTS_PER_MIN", 100)
	viper.SetDefault("AUTH_SERVICE_URL", "http://localhost:8081")
	viper.SetDefault("USER_SERVICE_URL", "http://localhost:8082")
	viper.SetDefault("THERAPIST_SERVICE_URL", "http://localhost:8083")
	viper.SetDefault("BOOKING_SERVICE_URL", "http://localhost:8084")
	viper.SetDefault("UPSTREAM_TIMEOUT_SEC", 10)
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_SESSION_DB", 0)
	viper.SetDefault("REDIS_WIZARD_DB", 1)
	viper.SetDefault("SESSION_SECRET", "")
	viper.SetDefault("SESSION_COOKIE_NAME", "mindnest_session")
	viper.SetDefault("SESSION_COOKIE_MAX_AGE", 7*24*60*60)
	viper.SetDefault("SESSION_TTL_HOURS", 168)
	viper.SetDefault("WIZARD_TTL_MIN", 30)

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}

// UpstreamTimeout returns the HTTP timeout applied to upstream service calls.
func UpstreamTimeout() time.Duration {
	return time.Duration(AppConfig.UpstreamTimeoutSec) * time.Second
}

// SessionTTL returns how long a browser session lives in Redis.
func SessionTTL() time.Duration {
	return time.Duration(AppConfig.SessionTTLHours) * time.Hour
}

// WizardTTL returns how long an in-progress booking wizard lives in Redis.
func WizardTTL() time.Duration {
	return time.Duration(AppConfig.WizardTTLMin) * time.Minute
}
