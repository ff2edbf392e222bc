package config

import (
	"strings"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
type Config struct {
	Database Database `mapstructure:"database"`
	Logger   Logger   `mapstructure:"logger"`
	Server   Server   `mapstructure:"server"`
	Pricing  Pricing  `mapstructure:"pricing"`
	Invoice  Invoice  `mapstructure:"invoice"`
}

// Database holds the configuration for the embedded database.
type Database struct {
	DSN string `mapstructure:"dsn"`
}

// Logger holds the configuration for the logger.
type Logger struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Server holds the configuration for the local dashboard server.
type Server struct {
	Port int `mapstructure:"port"`
}

// Pricing holds the delivery and fee constants used by the profit engine.
// Amounts are in DZD.
type Pricing struct {
	PerKgRate float64 `mapstructure:"per_kg_rate"`
	FixedFee  float64 `mapstructure:"fixed_fee"`
}

// Invoice holds invoice numbering settings.
type Invoice struct {
	Prefix string `mapstructure:"prefix"`
}

// LoadConfig reads configuration from file or environment variables.
func LoadConfig(path string) (config Config, err error) {
	viper.AddConfigPath(path)
	viper.SetConfigName("config") // name of config file (without extension)
	viper.SetConfigType("yml")    // or yaml, json

	// Allow environment variables to override config file
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Set default values
	viper.SetDefault("database.dsn", "dzair.db")
	viper.SetDefault("logger.level", "info")
	viper.SetDefault("logger.format", "console")
	viper.SetDefault("server.port", 8090)
	viper.SetDefault("pricing.per_kg_rate", 50)
	viper.SetDefault("pricing.fixed_fee", 500)
	viper.SetDefault("invoice.prefix", "DZAIR")

	err = viper.ReadInConfig()
	if err != nil {
		return
	}

	err = viper.Unmarshal(&config)
	return
}
