// internal/config/load.go
package config

import (
	"fmt"
	"os"
	"reflect"

	envldr "github.com/SENERGY-Platform/go-env-loader"
	"gopkg.in/yaml.v3"
)

// Env is everything taken from the process environment.
type Env struct {
	ConfigPath   string `env_var:"CONFIG_PATH"`
	LinkSSID     string `env_var:"LINK_SSID"`
	LinkPassword Secret `env_var:"LINK_PASSWORD"`
	LogLevel     string `env_var:"LOG_LEVEL"`
	LogHandler   string `env_var:"LOG_HANDLER"`
}

// LoadEnv reads Env from the process environment.
// Unset variables leave the field empty.
func LoadEnv() (Env, error) {
	var env Env
	if err := envldr.LoadEnvUserParser(&env, nil, typeParsers(), nil); err != nil {
		return Env{}, fmt.Errorf("config env: %w", err)
	}
	return env, nil
}

func typeParsers() map[reflect.Type]envldr.Parser {
	return map[reflect.Type]envldr.Parser{
		reflect.TypeFor[Secret](): secretParser,
	}
}

func secretParser(_ reflect.Type, val string, _ []string, _ map[string]string) (interface{}, error) {
	return Secret(val), nil
}

// Load builds the startup configuration: defaults, then the YAML file
// named by env.ConfigPath (if any), then the environment overlay.
// It does not validate.
func Load(env Env) (*Config, error) {
	cfg := Default()

	if env.ConfigPath != "" {
		raw, err := os.ReadFile(env.ConfigPath)
		if err != nil {
			return nil, fmt.Errorf("config read %s: %w", env.ConfigPath, err)
		}
		if err := yaml.Unmarshal(raw, cfg); err != nil {
			return nil, fmt.Errorf("config parse %s: %w", env.ConfigPath, err)
		}
	}

	ApplyEnv(cfg, env)
	return cfg, nil
}

// ApplyEnv overlays non-empty environment values onto cfg.
func ApplyEnv(cfg *Config, env Env) {
	if cfg == nil {
		return
	}
	cfg.Credentials = Credentials{
		SSID:     env.LinkSSID,
		Password: env.LinkPassword,
	}
	if env.LogLevel != "" {
		cfg.Log.Level = env.LogLevel
	}
	if env.LogHandler != "" {
		cfg.Log.Handler = env.LogHandler
	}
}
