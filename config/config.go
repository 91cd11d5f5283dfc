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

	// Redis configuration (optional; the rate limiter falls back to an
	// in-process limiter when REDIS_ADDR is empty).
	RedisAddr     string `mapstructure:"REDIS_ADDR"`
	RedisPassword string `mapstructure:"REDIS_PASSWORD"`
	RedisDB       int    `mapstructure:"REDIS_DB"`

	// Completion gateway used by the deprecated draft endpoint.
	AIGatewayURL  string  `mapstructure:"AI_GATEWAY_URL"`
	AIGatewayKey  string  `mapstructure:"AI_GATEWAY_KEY"`
	AIModel       string  `mapstructure:"AI_MODEL"`
	AITemperature float64 `mapstructure:"AI_TEMPERATURE"`
	AIMaxTokens   int     `mapstructure:"AI_MAX_TOKENS"`

	// Default hospital name shown in the document header when the
	// render request does not carry one.
	HospitalName string `mapstructure:"HOSPITAL_NAME"`
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
	viper.SetDefault("REDIS_ADDR", "")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_DB", 0)
	viper.SetDefault("AI_GATEWAY_URL", "")
	viper.SetDefault("AI_GATEWAY_KEY", "")
	viper.SetDefault("AI_MODEL", "gpt-4o-mini")
	viper.SetDefault("AI_TEMPERATURE", 0.4)
	viper.SetDefault("AI_MAX_TOKENS", 2048)
	viper.SetDefault("HOSPITAL_NAME", "")

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
