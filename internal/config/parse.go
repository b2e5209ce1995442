package config

import (
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/kelseyhightower/envconfig"

	"github.com/zestagio/static-server/internal/validator"
)

const envPrefix = "STATIC_SERVER"

// Load applies the optional TOML file and then STATIC_SERVER_* environment
// variables on top of Default.
func Load(filename string) (Config, error) {
	conf := Default()

	if filename != "" {
		if _, err := toml.DecodeFile(filename, &conf); err != nil {
			return conf, fmt.Errorf("decode %q: %v", filename, err)
		}
	}

	if err := envconfig.Process(envPrefix, &conf); err != nil {
		return conf, fmt.Errorf("process env: %v", err)
	}

	if err := validator.Validator.Struct(conf); err != nil {
		return conf, err
	}

	return conf, nil
}
