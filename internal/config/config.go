package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/spf13/viper"
)

// ListenPort is the fixed HTTP port of the API.
const ListenPort = 3000

type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	Log      LogConfig      `mapstructure:"log"`
	Metrics  MetricsConfig  `mapstructure:"metrics"`
}

type ServerConfig struct {
	Port int `mapstructure:"-"`
}

// DatabaseConfig describes the connection target. Credentials come from the
// DB_* environment variables; the rest from the config file or HOSPITAL_*.
type DatabaseConfig struct {
	Host     string `mapstructure:"-" envconfig:"DB_HOST"`
	User     string `mapstructure:"-" envconfig:"DB_USERNAME"`
	Password string `mapstructure:"-" envconfig:"DB_PASSWORD"`
	Name     string `mapstructure:"-" envconfig:"DB_NAME"`

	Driver   string `mapstructure:"driver" ignored:"true"`
	Port     int    `mapstructure:"port" ignored:"true"`
	SSLMode  string `mapstructure:"sslmode" ignored:"true"`
	FailFast bool   `mapstructure:"fail_fast" ignored:"true"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

type MetricsConfig struct {
	Prefix string `mapstructure:"prefix"`
}

// LoadConfig reads .env, the optional config.yaml and the environment.
func LoadConfig() (*Config, error) {
	return load(viper.New(), ".env")
}

func load(v *viper.Viper, envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to load %s: %w", envFile, err)
		}
	}

	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")

	v.SetEnvPrefix("HOSPITAL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := envconfig.Process("", &cfg.Database); err != nil {
		return nil, fmt.Errorf("failed to read database environment: %w", err)
	}

	cfg.Server.Port = ListenPort

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("database.driver", "postgres")
	v.SetDefault("database.port", 0)
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.fail_fast", false)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
	v.SetDefault("metrics.prefix", "hospital_api")
}
