package configs

import (
	"fmt"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

type Config struct {
	App struct {
		Name     string `koanf:"name"`
		Env      string `koanf:"env"` // dev | prod
		HTTPAddr string `koanf:"http_addr"`
		LogLevel string `koanf:"log_level"`
	} `koanf:"app"`

	HTTP struct {
		ReadTimeout  time.Duration `koanf:"read_timeout"`
		WriteTimeout time.Duration `koanf:"write_timeout"`
		IdleTimeout  time.Duration `koanf:"idle_timeout"`
	} `koanf:"http"`

	Frontend struct {
		BaseURL string `koanf:"base_url"`
	} `koanf:"frontend"`

	Stripe struct {
		TestKey string `koanf:"test_key"`
		LiveKey string `koanf:"live_key"`
	} `koanf:"stripe"`

	SendGrid struct {
		APIKey     string `koanf:"api_key"`
		FromEmail  string `koanf:"from_email"`
		AdminEmail string `koanf:"admin_email"`
	} `koanf:"sendgrid"`

	// MySQL is optional: empty DSN selects the in-memory order store.
	MySQL struct {
		DSN             string        `koanf:"dsn"`
		MaxOpenConns    int           `koanf:"max_open_conns"`
		MaxIdleConns    int           `koanf:"max_idle_conns"`
		ConnMaxLifetime time.Duration `koanf:"conn_max_lifetime"`
	} `koanf:"mysql"`

	// Redis is optional: empty addr selects the in-process confirm guard.
	Redis struct {
		Addr     string `koanf:"addr"`
		Password string `koanf:"password"`
	} `koanf:"redis"`

	Confirm struct {
		GuardTTL time.Duration `koanf:"guard_ttl"`
	} `koanf:"confirm"`

	Label struct {
		LogoPath string `koanf:"logo_path"`
	} `koanf:"label"`
}

func Load(pathDir, envName string) (Config, error) {
	k := koanf.New(".")
	// 1) base
	if err := k.Load(file.Provider(fmt.Sprintf("%s/base.yaml", pathDir)), yaml.Parser()); err != nil {
		return Config{}, fmt.Errorf("load base: %w", err)
	}

	// 2) env overlay (dev/prod). Optional: allow missing for local runs.
	if err := k.Load(file.Provider(fmt.Sprintf("%s/%s.yaml", pathDir, envName)), yaml.Parser()); err != nil {
		if !strings.Contains(err.Error(), "no such file") {
			return Config{}, fmt.Errorf("load %s overlay: %w", envName, err)
		}
	}

	// 3) environment variables override (prefix CHECKOUT_, nested with __)
	// e.g. CHECKOUT_STRIPE__LIVE_KEY, CHECKOUT_SENDGRID__API_KEY
	if err := k.Load(env.Provider("CHECKOUT_", ".", func(s string) string {
		s = strings.TrimPrefix(s, "CHECKOUT_")
		s = strings.ReplaceAll(s, "__", ".")
		return strings.ToLower(s)
	}), nil); err != nil {
		return Config{}, fmt.Errorf("env overlay: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshal: %w", err)
	}
	cfg.App.Env = envName
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.App.HTTPAddr == "" {
		return fmt.Errorf("app.http_addr required")
	}
	if c.Frontend.BaseURL == "" {
		return fmt.Errorf("frontend.base_url required")
	}
	if c.StripeKey() == "" {
		return fmt.Errorf("stripe key required for env %q", c.App.Env)
	}
	if c.SendGrid.APIKey == "" || c.SendGrid.FromEmail == "" || c.SendGrid.AdminEmail == "" {
		return fmt.Errorf("sendgrid.api_key, from_email and admin_email required")
	}
	return nil
}

// StripeKey picks the credential set for the active environment.
func (c Config) StripeKey() string {
	if c.App.Env == "prod" {
		return c.Stripe.LiveKey
	}
	return c.Stripe.TestKey
}
