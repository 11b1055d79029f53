package config

import (
	"errors"
	"fmt"
	"net"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// DefaultTargetURL es el callback de la app principal al que se reenvían los parámetros OAuth.
const DefaultTargetURL = "http://localhost:3001/auth/callback"

type Config struct {
	App struct {
		// dev | prod
		Env     string `yaml:"env" env:"APP_ENV"`
		Name    string `yaml:"name" env:"SERVICE_NAME"`
		Version string `yaml:"version" env:"SERVICE_VERSION"`
	} `yaml:"app"`

	Server struct {
		Host         string        `yaml:"host" env:"HOST"`
		Port         int           `yaml:"port" env:"PORT"`
		ReadTimeout  time.Duration `yaml:"read_timeout" env:"SERVER_READ_TIMEOUT"`
		WriteTimeout time.Duration `yaml:"write_timeout" env:"SERVER_WRITE_TIMEOUT"`
		IdleTimeout  time.Duration `yaml:"idle_timeout" env:"SERVER_IDLE_TIMEOUT"`
		// ShutdownTimeout acota el graceful shutdown tras SIGINT/SIGTERM.
		ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT"`
	} `yaml:"server"`

	Relay struct {
		// TargetURL es la URL del callback de la app principal.
		TargetURL string `yaml:"target_url" env:"RELAY_TARGET_URL"`
	} `yaml:"relay"`

	Log struct {
		Level string `yaml:"level" env:"LOG_LEVEL"`
	} `yaml:"log"`

	Metrics struct {
		Enabled bool   `yaml:"enabled" env:"METRICS_ENABLED"`
		Addr    string `yaml:"addr" env:"METRICS_ADDR"`
	} `yaml:"metrics"`
}

// Default devuelve la configuración base, equivalente a correr sin YAML ni env.
func Default() *Config {
	var c Config
	c.App.Env = "dev"
	c.App.Name = "qbrelay"
	c.App.Version = "1.0.0"
	c.Server.Port = 3001
	c.Server.ReadTimeout = 10 * time.Second
	c.Server.WriteTimeout = 30 * time.Second
	c.Server.IdleTimeout = 60 * time.Second
	c.Server.ShutdownTimeout = 15 * time.Second
	c.Relay.TargetURL = DefaultTargetURL
	c.Log.Level = "info"
	c.Metrics.Addr = ":9090"
	return &c
}

// Load arma la configuración en tres capas: defaults, YAML opcional y overrides por env.
// Si path está vacío se usa CONFIG_PATH; si tampoco hay, sólo defaults + env.
func Load(path string) (*Config, error) {
	c := Default()

	if strings.TrimSpace(path) == "" {
		path = strings.TrimSpace(os.Getenv("CONFIG_PATH"))
	}
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
		if err := yaml.Unmarshal(b, c); err != nil {
			return nil, fmt.Errorf("config: parse %s: %w", path, err)
		}
	}

	// Overrides por env (sólo pisa las variables presentes)
	if err := env.Parse(c); err != nil {
		return nil, fmt.Errorf("config: env: %w", err)
	}

	c.Relay.TargetURL = strings.TrimSpace(c.Relay.TargetURL)
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Validate verifica port y target URL.
func (c *Config) Validate() error {
	var errs []error
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		errs = append(errs, fmt.Errorf("server.port must be in 1..65535, got %d", c.Server.Port))
	}
	if err := validateTargetURL(c.Relay.TargetURL); err != nil {
		errs = append(errs, err)
	}
	if c.Metrics.Enabled && strings.TrimSpace(c.Metrics.Addr) == "" {
		errs = append(errs, errors.New("metrics.addr is required when metrics are enabled"))
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("config: invalid: %w", err)
	}
	return nil
}

func validateTargetURL(raw string) error {
	if raw == "" {
		return errors.New("relay.target_url is required")
	}
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("relay.target_url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("relay.target_url must be http(s), got %q", raw)
	}
	if u.Host == "" {
		return fmt.Errorf("relay.target_url must be absolute, got %q", raw)
	}
	return nil
}

// Addr devuelve host:port para http.Server.
func (c *Config) Addr() string {
	return net.JoinHostPort(c.Server.Host, strconv.Itoa(c.Server.Port))
}

// IsProd indica si corremos con APP_ENV=prod.
func (c *Config) IsProd() bool {
	return strings.EqualFold(c.App.Env, "prod")
}
