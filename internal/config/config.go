package config

import (
	"strings"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
// The values are read by Viper from a config file or environment variables.
type Config struct {
	Server  ServerConfig  `mapstructure:"server"`
	Storage StorageConfig `mapstructure:"storage"`
	Lookup  LookupConfig  `mapstructure:"lookup"`
}

type ServerConfig struct {
	Address string `mapstructure:"address"`
}

// StorageConfig selects and configures the document-store backend.
// Backend is one of "file", "sqlite" or "s3".
type StorageConfig struct {
	Backend    string   `mapstructure:"backend"`
	DataDir    string   `mapstructure:"data_dir"`
	SQLitePath string   `mapstructure:"sqlite_path"`
	S3         S3Config `mapstructure:"s3"`
}

type S3Config struct {
	Endpoint        string `mapstructure:"endpoint"`
	Region          string `mapstructure:"region"`
	AccessKeyID     string `mapstructure:"access_key_id"`
	SecretAccessKey string `mapstructure:"secret_access_key"`
	BucketName      string `mapstructure:"bucket_name"`
	Prefix          string `mapstructure:"prefix"`
}

// LookupConfig configures the optional external food lookup provider.
// Disabled by default; the server runs fine without it.
type LookupConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	BaseURL string `mapstructure:"base_url"`
}

// LoadConfig reads configuration from file or environment variables.
func LoadConfig(path string) (config Config, err error) {
	viper.AddConfigPath(path)
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	// Nested keys map to env vars with underscores,
	// e.g. storage.data_dir -> STORAGE_DATA_DIR.
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(`.`, `_`))

	viper.SetDefault("server.address", ":8080")
	viper.SetDefault("storage.backend", "file")
	viper.SetDefault("storage.data_dir", "./data")
	viper.SetDefault("storage.sqlite_path", "./data/lifetrack.db")
	viper.SetDefault("lookup.enabled", false)
	// Every key needs a default so AutomaticEnv can resolve it.
	viper.SetDefault("lookup.base_url", "")

	err = viper.ReadInConfig()
	// A missing config file is fine; defaults and env vars carry it.
	if _, ok := err.(viper.ConfigFileNotFoundError); ok {
		err = nil
	} else if err != nil {
		return
	}

	err = viper.Unmarshal(&config)
	if err != nil {
		return
	}

	return config, nil
}
