package configs

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds all configuration for the application
type Config struct {
	Server struct {
		Port string `yaml:"port"`
	} `yaml:"server"`

	Storage struct {
		Type         string `yaml:"type"` // "memory", "badger" or "redis"
		DataDir      string `yaml:"data_dir"`
		SnapshotFile string `yaml:"snapshot_file"`
	} `yaml:"storage"`

	Redis struct {
		Addr        string        `yaml:"addr"`
		DialTimeout time.Duration `yaml:"dial_timeout"`
		QueueSize   int           `yaml:"queue_size"`
	} `yaml:"redis"`

	Cache struct {
		Enabled  bool   `yaml:"enabled"`
		Policy   string `yaml:"policy"`
		MaxItems int    `yaml:"max_items"`
	} `yaml:"cache"`

	Dataset struct {
		File string `yaml:"file"`
	} `yaml:"dataset"`

	Tracing struct {
		Enabled     bool   `yaml:"enabled"`
		Endpoint    string `yaml:"endpoint"`
		ServiceName string `yaml:"service_name"`
	} `yaml:"tracing"`

	Log struct {
		Level string `yaml:"level"`
	} `yaml:"log"`
}

// DefaultConfig returns a configuration with sensible defaults
func DefaultConfig() *Config {
	config := &Config{}

	// Server defaults
	config.Server.Port = ":8080"

	// Storage defaults
	config.Storage.Type = "memory"
	config.Storage.DataDir = "data"
	config.Storage.SnapshotFile = "data/snapshot.json"

	// Redis defaults
	config.Redis.Addr = "127.0.0.1:6379"
	config.Redis.DialTimeout = 5 * time.Second
	config.Redis.QueueSize = 100

	// Cache defaults
	config.Cache.Enabled = true
	config.Cache.Policy = "lru"
	config.Cache.MaxItems = 4

	// Dataset defaults
	config.Dataset.File = "Popular_Baby_Names.csv"

	// Tracing defaults
	config.Tracing.Enabled = false
	config.Tracing.Endpoint = "http://localhost:14268/api/traces"
	config.Tracing.ServiceName = "schoolkv"

	// Log defaults
	config.Log.Level = "info"

	return config
}

// LoadConfig loads configuration from a YAML file. Environment
// variables override values from the file.
func LoadConfig(filename string) (*Config, error) {
	config := DefaultConfig()

	if filename == "" {
		applyEnvOverrides(config)
		return config, nil
	}

	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open config file %s: %w", filename, err)
	}
	defer func() {
		_ = file.Close()
	}()

	decoder := yaml.NewDecoder(file)
	if err := decoder.Decode(config); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", filename, err)
	}

	applyEnvOverrides(config)
	return config, nil
}

func applyEnvOverrides(config *Config) {
	if v := os.Getenv("SCHOOLKV_PORT"); v != "" {
		config.Server.Port = v
	}
	if v := os.Getenv("SCHOOLKV_REDIS_ADDR"); v != "" {
		config.Redis.Addr = v
	}
	if v := os.Getenv("SCHOOLKV_LOG_LEVEL"); v != "" {
		config.Log.Level = v
	}
}
