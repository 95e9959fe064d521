package app

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/shrimpsizemoose/trekker/logger"
)

type Config struct {
	Server struct {
		Port       string `toml:"port"`
		EnableAuth bool   `toml:"enable_auth"`
	} `toml:"server"`

	Auth struct {
		RedisURL           string `toml:"redis_url"`
		TokenHeader        string `toml:"token_header"`
		SessionKeyTemplate string `toml:"session_key_template"`
		SessionTTLHours    int    `toml:"session_ttl_hours"`
	} `toml:"auth"`

	Database struct {
		DSN           string `toml:"dsn"`
		MigrationsDir string `toml:"migrations_dir"`
	} `toml:"database"`

	Push struct {
		Enabled  bool   `toml:"enabled"`
		Endpoint string `toml:"endpoint"`
	} `toml:"push"`

	Reminder struct {
		Cron      string `toml:"cron"`
		LeadHours int    `toml:"lead_hours"`
	} `toml:"reminder"`

	Export struct {
		Cron    string   `toml:"cron"`
		Dir     string   `toml:"dir"`
		Formats []string `toml:"formats"`
	} `toml:"export"`
}

func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	var config Config
	if err := toml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf(
			"error reading config file %s\n> Error: %w\n> Content:\n%s",
			path,
			err,
			string(data),
		)
	}

	if config.Server.Port == "" {
		return nil, fmt.Errorf("Server port is not specified in config, use a value like :9999")
	}
	if config.Auth.TokenHeader == "" {
		config.Auth.TokenHeader = "Authorization"
	}
	if config.Auth.SessionKeyTemplate == "" {
		config.Auth.SessionKeyTemplate = "session:{token}"
	}
	if config.Auth.SessionTTLHours <= 0 {
		config.Auth.SessionTTLHours = 24
	}
	if config.Reminder.LeadHours <= 0 {
		config.Reminder.LeadHours = 24
	}

	logger.Debug.Printf("Loaded config for server %s", config.Server.Port)

	return &config, nil
}
