package config

import (
	"encoding/base64"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	ListenAddr     string
	APIBaseURL     string
	CookieHashKey  []byte
	CookieBlockKey []byte
	SessionTTL     time.Duration

	LogLevel string
	Env      string
}

func (c Config) IsProduction() bool { return c.Env == "production" }

type raw struct {
	ListenAddr        string `mapstructure:"LISTEN_ADDR"`
	APIBaseURL        string `mapstructure:"API_BASE_URL"`
	CookieHashKey     string `mapstructure:"COOKIE_HASH_KEY"`
	CookieBlockKey    string `mapstructure:"COOKIE_BLOCK_KEY"`
	SessionTTLMinutes int    `mapstructure:"SESSION_TTL_MINUTES"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	Env               string `mapstructure:"ENV"`
}

// FromEnv reads .env (if any), then oceanview.yaml from . or ./config (if any),
// then the process environment, which wins over both.
func FromEnv() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}

	v := viper.New()
	v.SetConfigName("oceanview")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AutomaticEnv()

	v.SetDefault("LISTEN_ADDR", ":3000")
	v.SetDefault("API_BASE_URL", "http://localhost:8080/api")
	v.SetDefault("COOKIE_HASH_KEY", "")
	v.SetDefault("COOKIE_BLOCK_KEY", "")
	v.SetDefault("SESSION_TTL_MINUTES", 120)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("ENV", "development")

	if err := v.ReadInConfig(); err != nil {
		var nf viper.ConfigFileNotFoundError
		if !errors.As(err, &nf) {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
	}

	var r raw
	if err := v.Unmarshal(&r); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	return r.config()
}

// ClientOnly loads the settings the CLI needs to talk to the backend. Cookie
// keys are not required.
func ClientOnly() (Config, error) {
	cfg, err := FromEnv()
	if errors.Is(err, errMissingKeys) {
		return cfg, nil
	}
	return cfg, err
}

var errMissingKeys = errors.New("COOKIE_HASH_KEY and COOKIE_BLOCK_KEY are required (32 and 16/24/32 bytes base64)")

func (r raw) config() (Config, error) {
	cfg := Config{
		ListenAddr: strings.TrimSpace(r.ListenAddr),
		APIBaseURL: strings.TrimRight(strings.TrimSpace(r.APIBaseURL), "/"),
		LogLevel:   strings.ToLower(strings.TrimSpace(r.LogLevel)),
		Env:        strings.ToLower(strings.TrimSpace(r.Env)),
	}
	if cfg.APIBaseURL == "" {
		return Config{}, fmt.Errorf("API_BASE_URL is empty")
	}
	if r.SessionTTLMinutes < 1 {
		return Config{}, fmt.Errorf("invalid SESSION_TTL_MINUTES %d", r.SessionTTLMinutes)
	}
	cfg.SessionTTL = time.Duration(r.SessionTTLMinutes) * time.Minute

	if strings.TrimSpace(r.CookieHashKey) == "" || strings.TrimSpace(r.CookieBlockKey) == "" {
		return cfg, errMissingKeys
	}
	var err error
	cfg.CookieHashKey, err = decodeB64(r.CookieHashKey)
	if err != nil {
		return Config{}, fmt.Errorf("COOKIE_HASH_KEY: %w", err)
	}
	cfg.CookieBlockKey, err = decodeB64(r.CookieBlockKey)
	if err != nil {
		return Config{}, fmt.Errorf("COOKIE_BLOCK_KEY: %w", err)
	}
	switch len(cfg.CookieBlockKey) {
	case 16, 24, 32:
	default:
		return Config{}, fmt.Errorf("COOKIE_BLOCK_KEY must decode to 16, 24 or 32 bytes (got %d)", len(cfg.CookieBlockKey))
	}
	return cfg, nil
}

func decodeB64(s string) ([]byte, error) {
	s = strings.TrimSpace(s)
	if b, err := os.ReadFile(s); err == nil {
		// allow pointing to file path for k8s secret mounts
		s = strings.TrimSpace(string(b))
	}
	if b, err := base64.StdEncoding.DecodeString(s); err == nil {
		return b, nil
	}
	return base64.RawStdEncoding.DecodeString(s)
}
