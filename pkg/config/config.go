package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/pelletier/go-toml/v2"
)

type Config struct {
	// Auth0 tenant used for login and signup
	Auth0 struct {
		Domain       string `toml:"domain"`
		ClientID     string `toml:"client_id"`
		ClientSecret string `toml:"client_secret"`
		Audience     string `toml:"audience"`
		Connection   string `toml:"connection"`
	} `toml:"auth0"`

	// Hasura GraphQL endpoint holding users and links
	Hasura struct {
		URL         string `toml:"url"`
		AdminSecret string `toml:"admin_secret"`
	} `toml:"hasura"`

	// Cloudinary image hosting
	Cloudinary struct {
		CloudName    string `toml:"cloud_name"`
		UploadPreset string `toml:"upload_preset"`
	} `toml:"cloudinary"`

	// Public profile server
	Server struct {
		Host string `toml:"host"`
		Port int    `toml:"port"`
	} `toml:"server"`

	// CLI
	CLI struct {
		BaseLink string `toml:"base_link"` // prefix of shareable profile URLs
	} `toml:"cli"`
}

// DefaultConfig returns a config with default values.
func DefaultConfig() *Config {
	cfg := &Config{}
	cfg.Auth0.Connection = "Username-Password-Authentication"
	cfg.Server.Host = "0.0.0.0"
	cfg.Server.Port = 8080
	cfg.CLI.BaseLink = "http://localhost:8080/u/"
	cfg.Cloudinary.UploadPreset = "ml_default"
	return cfg
}

// ConfigPath returns the path to the config file.
func ConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(homeDir, ".config", "devlinks", "config.toml"), nil
}

// TokenPath returns the path of the persisted access token.
func TokenPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(homeDir, ".config", "devlinks", "token"), nil
}

// Load reads configuration from ~/.config/devlinks/config.toml, creating
// the file with defaults if it doesn't exist, then applies env overrides.
func Load() (*Config, error) {
	configPath, err := ConfigPath()
	if err != nil {
		return nil, err
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		cfg := DefaultConfig()
		applyEnv(cfg)
		if err := Save(cfg); err != nil {
			return nil, fmt.Errorf("failed to create default config: %w", err)
		}
		return cfg, nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	// Merge with defaults for any missing values.
	defaultCfg := DefaultConfig()
	if cfg.Auth0.Connection == "" {
		cfg.Auth0.Connection = defaultCfg.Auth0.Connection
	}
	if cfg.Server.Host == "" {
		cfg.Server.Host = defaultCfg.Server.Host
	}
	if cfg.Server.Port == 0 {
		cfg.Server.Port = defaultCfg.Server.Port
	}
	if cfg.CLI.BaseLink == "" {
		cfg.CLI.BaseLink = defaultCfg.CLI.BaseLink
	}
	if cfg.Cloudinary.UploadPreset == "" {
		cfg.Cloudinary.UploadPreset = defaultCfg.Cloudinary.UploadPreset
	}

	applyEnv(&cfg)
	return &cfg, nil
}

// applyEnv overrides config values from the environment (useful for Docker
// and for keeping secrets out of the config file).
func applyEnv(cfg *Config) {
	if v := os.Getenv("AUTH0_DOMAIN"); v != "" {
		cfg.Auth0.Domain = v
	}
	if v := os.Getenv("AUTH0_CLIENT_ID"); v != "" {
		cfg.Auth0.ClientID = v
	}
	if v := os.Getenv("AUTH0_CLIENT_SECRET"); v != "" {
		cfg.Auth0.ClientSecret = v
	}
	if v := os.Getenv("AUTH0_AUDIENCE"); v != "" {
		cfg.Auth0.Audience = v
	}
	if v := os.Getenv("HASURA_GRAPHQL_URL"); v != "" {
		cfg.Hasura.URL = v
	}
	if v := os.Getenv("HASURA_ADMIN_SECRET"); v != "" {
		cfg.Hasura.AdminSecret = v
	}
	if v := os.Getenv("CLOUDINARY_CLOUD_NAME"); v != "" {
		cfg.Cloudinary.CloudName = v
	}
	if v := os.Getenv("CLOUDINARY_UPLOAD_PRESET"); v != "" {
		cfg.Cloudinary.UploadPreset = v
	}
	if v := os.Getenv("SERVER_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Server.Port = port
		}
	}
}

// Save writes the configuration to the config file.
func Save(cfg *Config) error {
	configPath, err := ConfigPath()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}
