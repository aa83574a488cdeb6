package config

import (
	"log"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	Env               string `mapstructure:"ENV"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// Redis configuration.
	RedisAddr     string `mapstructure:"REDIS_ADDR"`
	RedisPassword string `mapstructure:"REDIS_PASSWORD"`
	RedisAuthDB   int    `mapstructure:"REDIS_AUTH_DB"`
	RedisCacheDB  int    `mapstructure:"REDIS_CACHE_DB"`

	// Meevo upstream configuration.
	MeevoAuthURL      string `mapstructure:"MEEVO_AUTH_URL"`
	MeevoAPIURL       string `mapstructure:"MEEVO_API_URL"`
	MeevoAPIURLV2     string `mapstructure:"MEEVO_API_URL_V2"`
	MeevoClientID     string `mapstructure:"MEEVO_CLIENT_ID"`
	MeevoClientSecret string `mapstructure:"MEEVO_CLIENT_SECRET"`
	MeevoTenantID     string `mapstructure:"MEEVO_TENANT_ID"`
	MeevoLocationID   string `mapstructure:"MEEVO_LOCATION_ID"`

	// Upstream call tuning. Timestamps from Meevo are venue-local wall-clock
	// values and are never timezone-converted on this side.
	UpstreamTimeoutSeconds  int `mapstructure:"UPSTREAM_TIMEOUT_SECONDS"`
	TokenSafetyMarginSecs   int `mapstructure:"TOKEN_SAFETY_MARGIN_SECONDS"`
	EmployeeCacheTTLMinutes int `mapstructure:"EMPLOYEE_CACHE_TTL_MINUTES"`

	// Pairing and response shaping.
	MaxGapMinutes int `mapstructure:"MAX_GAP_MINUTES"`
	PreviewCap    int `mapstructure:"PREVIEW_CAP"`

	// Service alias table: spoken name -> upstream service id.
	ServiceAliases map[string]string `mapstructure:"SERVICE_ALIASES"`
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
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_AUTH_DB", 1)
	viper.SetDefault("REDIS_CACHE_DB", 0)
	viper.SetDefault("MEEVO_AUTH_URL", "https://marketplace.meevo.com/oauth2/token")
	viper.SetDefault("MEEVO_API_URL", "https://na1pub.meevo.com/publicapi/v1")
	viper.SetDefault("MEEVO_API_URL_V2", "https://na1pub.meevo.com/publicapi/v2")
	viper.SetDefault("MEEVO_CLIENT_ID", "")
	viper.SetDefault("MEEVO_CLIENT_SECRET", "")
	viper.SetDefault("MEEVO_TENANT_ID", "")
	viper.SetDefault("MEEVO_LOCATION_ID", "")
	viper.SetDefault("UPSTREAM_TIMEOUT_SECONDS", 10)
	viper.SetDefault("TOKEN_SAFETY_MARGIN_SECONDS", 300)
	viper.SetDefault("EMPLOYEE_CACHE_TTL_MINUTES", 60)
	viper.SetDefault("MAX_GAP_MINUTES", 10)
	viper.SetDefault("PREVIEW_CAP", 10)
	viper.SetDefault("SERVICE_ALIASES", map[string]string{})

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
