package config

import (
	"os"
	"strconv"
	"time"

	"github.com/yanun0323/errors"
	"gopkg.in/yaml.v3"
)

// Config represents the application configuration
type Config struct {
	Server  ServerConfig  `yaml:"server"`
	Seed    SeedConfig    `yaml:"seed"`
	Quotes  QuotesConfig  `yaml:"quotes"`
	Search  SearchConfig  `yaml:"search"`
	Session SessionConfig `yaml:"session"`
}

type ServerConfig struct {
	Addr         string        `yaml:"addr"`
	ReadTimeout  time.Duration `yaml:"read_timeout"`
	WriteTimeout time.Duration `yaml:"write_timeout"`
}

type SeedConfig struct {
	Path string `yaml:"path"`
}

type QuotesConfig struct {
	Provider string        `yaml:"provider"` // yahoo, financego, static
	Timeout  time.Duration `yaml:"timeout"`
}

type SearchConfig struct {
	Engine string `yaml:"engine"` // memory, bleve
}

type SessionConfig struct {
	Store     string        `yaml:"store"` // memory, redis
	TTL       time.Duration `yaml:"ttl"`
	RedisAddr string        `yaml:"redis_addr"`
	RedisDB   int           `yaml:"redis_db"`
}

var ErrInvalid = errors.New("config: invalid")

func Default() Config {
	return Config{
		Server: ServerConfig{
			Addr:         ":8080",
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 30 * time.Second,
		},
		Seed: SeedConfig{Path: "data/fortune100.json"},
		Quotes: QuotesConfig{
			Provider: "yahoo",
			Timeout:  10 * time.Second,
		},
		Search: SearchConfig{Engine: "memory"},
		Session: SessionConfig{
			Store:     "memory",
			TTL:       30 * time.Minute,
			RedisAddr: "localhost:6379",
		},
	}
}

// Load reads path over the defaults, then applies environment overrides.
// A missing file is not an error.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		b, err := os.ReadFile(path)
		switch {
		case os.IsNotExist(err):
		case err != nil:
			return cfg, errors.Wrap(err, "read config")
		default:
			if err := yaml.Unmarshal(b, &cfg); err != nil {
				return cfg, errors.Wrap(err, "parse config")
			}
		}
	}

	applyEnv(&cfg)

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func applyEnv(cfg *Config) {
	setString(&cfg.Server.Addr, "DASHBOARD_ADDR")
	setString(&cfg.Seed.Path, "DASHBOARD_SEED_PATH")
	setString(&cfg.Quotes.Provider, "DASHBOARD_QUOTES_PROVIDER")
	setString(&cfg.Search.Engine, "DASHBOARD_SEARCH_ENGINE")
	setString(&cfg.Session.Store, "DASHBOARD_SESSION_STORE")
	setString(&cfg.Session.RedisAddr, "REDIS_ADDR")

	if v := os.Getenv("REDIS_DB"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Session.RedisDB = n
		}
	}
	if v := os.Getenv("DASHBOARD_QUOTES_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.Quotes.Timeout = d
		}
	}
}

func setString(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

func (c Config) Validate() error {
	switch {
	case c.Server.Addr == "":
		return errors.Wrap(ErrInvalid, "server.addr is empty")
	case c.Seed.Path == "":
		return errors.Wrap(ErrInvalid, "seed.path is empty")
	case c.Session.TTL <= 0:
		return errors.Wrap(ErrInvalid, "session.ttl must be positive")
	}

	switch c.Session.Store {
	case "memory":
	case "redis":
		if c.Session.RedisAddr == "" {
			return errors.Wrap(ErrInvalid, "session.redis_addr is empty")
		}
	default:
		return errors.Wrap(ErrInvalid, "session.store "+c.Session.Store)
	}
	return nil
}
