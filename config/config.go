package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

type ServerConfig struct {
	Addr   string `yaml:"addr"`
	NodeID int64  `yaml:"node_id"`
}

type AuthConfig struct {
	JWTSecret string `yaml:"jwt_secret"`
}

type MongoConfig struct {
	URI      string `yaml:"uri"`
	Database string `yaml:"database"`
}

type StorageConfig struct {
	// Driver selects the message store: "mongo" or "memory".
	Driver string      `yaml:"driver"`
	Mongo  MongoConfig `yaml:"mongo"`
}

type RedisConfig struct {
	// Empty Addr disables presence tracking.
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

type NatsConfig struct {
	// Empty URL disables event publishing.
	URL string `yaml:"url"`
}

type AppConfig struct {
	Server  ServerConfig  `yaml:"server"`
	Auth    AuthConfig    `yaml:"auth"`
	Storage StorageConfig `yaml:"storage"`
	Redis   RedisConfig   `yaml:"redis"`
	Nats    NatsConfig    `yaml:"nats"`
}

func defaults() AppConfig {
	return AppConfig{
		Server:  ServerConfig{Addr: ":8080", NodeID: 1},
		Auth:    AuthConfig{JWTSecret: "dev-secret-change-me"},
		Storage: StorageConfig{Driver: "mongo", Mongo: MongoConfig{URI: "mongodb://localhost:27017", Database: "conectify"}},
	}
}

// Load reads the YAML config at path (missing file is fine, defaults apply)
// and then applies environment overrides.
func Load(path string) (AppConfig, error) {
	cfg := defaults()

	if path != "" {
		raw, err := os.ReadFile(path)
		if err == nil {
			if err := yaml.Unmarshal(raw, &cfg); err != nil {
				return cfg, err
			}
		} else if !os.IsNotExist(err) {
			return cfg, err
		}
	}

	if v := os.Getenv("CONECTIFY_ADDR"); v != "" {
		cfg.Server.Addr = v
	}
	if v := os.Getenv("CONECTIFY_JWT_SECRET"); v != "" {
		cfg.Auth.JWTSecret = v
	}
	if v := os.Getenv("CONECTIFY_STORAGE_DRIVER"); v != "" {
		cfg.Storage.Driver = v
	}
	if v := os.Getenv("CONECTIFY_MONGO_URI"); v != "" {
		cfg.Storage.Mongo.URI = v
	}
	if v := os.Getenv("CONECTIFY_MONGO_DB"); v != "" {
		cfg.Storage.Mongo.Database = v
	}
	if v := os.Getenv("CONECTIFY_REDIS_ADDR"); v != "" {
		cfg.Redis.Addr = v
	}
	if v := os.Getenv("CONECTIFY_NATS_URL"); v != "" {
		cfg.Nats.URL = v
	}
	return cfg, nil
}
