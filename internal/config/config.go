package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
)

type Server struct {
	Port              string `json:"port"`
	RequestTimeoutSec int    `json:"request_timeout_sec"`
}

type Request struct {
	ContentType string `json:"content_type"`
	UserAgent   string `json:"user_agent"`
	InsecureTLS bool   `json:"insecure_tls"`
	KeepAlive   bool   `json:"keep_alive"`
}

type Config struct {
	Server  Server  `json:"server"`
	Request Request `json:"request"`
}

func Default() Config {
	return Config{
		Server: Server{Port: "8080", RequestTimeoutSec: 15},
		Request: Request{
			ContentType: "application/json",
			UserAgent:   "tickerprovider/1.0",
			KeepAlive:   true,
		},
	}
}

// Load reads JSON config from path. If path is empty or the file does
// not exist, it returns defaults. Environment variables override select
// fields.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		if _, err := os.Stat("config.json"); err == nil {
			path = "config.json"
		}
	}
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			return cfg, fmt.Errorf("read config: %w", err)
		}
		if err == nil {
			if err := json.Unmarshal(b, &cfg); err != nil {
				return cfg, fmt.Errorf("parse config: %w", err)
			}
		}
	}
	applyEnv(&cfg)
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("PORT"); v != "" {
		cfg.Server.Port = v
	}
	if v := os.Getenv("REQUEST_TIMEOUT_SEC"); v != "" {
		var x int
		fmt.Sscanf(v, "%d", &x)
		if x > 0 {
			cfg.Server.RequestTimeoutSec = x
		}
	}
	if v := os.Getenv("TICKER_CONTENT_TYPE"); v != "" {
		cfg.Request.ContentType = v
	}
	if v := os.Getenv("TICKER_USER_AGENT"); v != "" {
		cfg.Request.UserAgent = v
	}
	if v := os.Getenv("TICKER_INSECURE_TLS"); v != "" {
		if b, ok := parseBool(v); ok {
			cfg.Request.InsecureTLS = b
		}
	}
	if v := os.Getenv("TICKER_KEEP_ALIVE"); v != "" {
		if b, ok := parseBool(v); ok {
			cfg.Request.KeepAlive = b
		}
	}
}

func parseBool(v string) (bool, bool) {
	switch strings.ToLower(v) {
	case "1", "true", "yes", "y":
		return true, true
	case "0", "false", "no", "n":
		return false, true
	}
	return false, false
}
