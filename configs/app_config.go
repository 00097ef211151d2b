package configs

import (
	"fmt"
	"net"
	"strconv"
	"strings"

	"communion.invite/configs/configslog"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// AppConfig holds the runtime settings of the web process.
type AppConfig struct {
	Env         string `env:"APP_ENV" envDefault:"development"`
	Host        string `env:"APP_HOST" envDefault:"0.0.0.0"`
	Port        int    `env:"APP_PORT" envDefault:"3000"`
	StaticDir   string `env:"STATIC_DIR" envDefault:"./public"`
	ViewsReload bool   `env:"VIEWS_RELOAD" envDefault:"false"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`
}

// LoadConfig reads the optional .env file(s) and parses the environment into an AppConfig.
// A missing .env file is not an error.
func LoadConfig(files ...string) (*AppConfig, error) {
	if err := godotenv.Load(files...); err != nil {
		configslog.SLog.Debugf(".env not loaded, using process environment: %v", err)
	}

	cfg := &AppConfig{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}
	if cfg.Port <= 0 || cfg.Port > 65535 {
		return nil, fmt.Errorf("invalid APP_PORT: %d", cfg.Port)
	}
	return cfg, nil
}

// Addr returns the host:port pair to listen on.
func (c *AppConfig) Addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}

// IsProduction reports whether the process runs with APP_ENV=production.
func (c *AppConfig) IsProduction() bool {
	return strings.EqualFold(c.Env, "production")
}
