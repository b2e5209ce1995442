package config

import (
	"os"
	"path/filepath"
)

const (
	defaultAddr     = ":8000"
	defaultEnv      = "dev"
	defaultLogLevel = "info"
)

type Config struct {
	Global  GlobalConfig  `toml:"global" envconfig:"GLOBAL"`
	Log     LogConfig     `toml:"log" envconfig:"LOG"`
	Sentry  SentryConfig  `toml:"sentry" envconfig:"SENTRY"`
	Servers ServersConfig `toml:"servers" envconfig:"SERVERS"`
}

type GlobalConfig struct {
	Env string `toml:"env" envconfig:"ENV" validate:"required,oneof=dev stage prod"`
}

func (c GlobalConfig) IsProduction() bool {
	return c.Env == "prod"
}

type LogConfig struct {
	Level string `toml:"level" envconfig:"LEVEL" validate:"required,oneof=debug info warn error"`
}

type SentryConfig struct {
	Dsn string `toml:"dsn" envconfig:"DSN" validate:"omitempty,url"`
}

type ServersConfig struct {
	Static StaticServerConfig `toml:"static" envconfig:"STATIC"`
	Debug  DebugServerConfig  `toml:"debug" envconfig:"DEBUG"`
}

type StaticServerConfig struct {
	Addr             string `toml:"addr" envconfig:"ADDR" validate:"required,hostname_port"`
	Root             string `toml:"root" envconfig:"ROOT" validate:"required"`
	DirectoryListing bool   `toml:"directory_listing" envconfig:"DIRECTORY_LISTING"`
	OpenBrowser      bool   `toml:"open_browser" envconfig:"OPEN_BROWSER"`
}

// DebugServerConfig is disabled while Addr is empty.
type DebugServerConfig struct {
	Addr string `toml:"addr" envconfig:"ADDR" validate:"omitempty,hostname_port"`
}

func (c DebugServerConfig) Enabled() bool {
	return c.Addr != ""
}

// Default serves the directory holding the executable on port 8000 of all interfaces.
func Default() Config {
	return Config{
		Global: GlobalConfig{Env: defaultEnv},
		Log:    LogConfig{Level: defaultLogLevel},
		Servers: ServersConfig{
			Static: StaticServerConfig{
				Addr:             defaultAddr,
				Root:             programDir(),
				DirectoryListing: true,
				OpenBrowser:      true,
			},
		},
	}
}

func programDir() string {
	exe, err := os.Executable()
	if err != nil {
		return "."
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return filepath.Dir(exe)
}
