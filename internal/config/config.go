package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Env             string
	Port            string
	DefaultLanguage string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	ShutdownTimeout time.Duration
}

// Load reads the optional .env file and then the process environment. Values
// already present in the environment win over .env.
func Load(envFiles ...string) (*Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, file := range envFiles {
		if err := godotenv.Load(file); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("load %s: %w", file, err)
		}
	}

	v := viper.New()
	v.SetDefault("ENV", "development")
	v.SetDefault("PORT", "8080")
	v.SetDefault("DEFAULT_LANGUAGE", "en")
	v.SetDefault("READ_TIMEOUT", 10*time.Second)
	v.SetDefault("WRITE_TIMEOUT", 10*time.Second)
	v.SetDefault("IDLE_TIMEOUT", 60*time.Second)
	v.SetDefault("SHUTDOWN_TIMEOUT", 10*time.Second)
	v.AutomaticEnv()

	cfg := &Config{
		Env:             v.GetString("ENV"),
		Port:            v.GetString("PORT"),
		DefaultLanguage: v.GetString("DEFAULT_LANGUAGE"),
		ReadTimeout:     v.GetDuration("READ_TIMEOUT"),
		WriteTimeout:    v.GetDuration("WRITE_TIMEOUT"),
		IdleTimeout:     v.GetDuration("IDLE_TIMEOUT"),
		ShutdownTimeout: v.GetDuration("SHUTDOWN_TIMEOUT"),
	}
	if cfg.Port == "" {
		return nil, errors.New("PORT must not be empty")
	}
	return cfg, nil
}

func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

func (c *Config) Addr() string {
	return ":" + c.Port
}
