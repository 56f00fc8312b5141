package config

import (
	"time"
)

// SetupConfig builds the configuration from defaults, the YAML file at path
// (when not empty), the environment and finally override, then validates it.
func SetupConfig(path string, now time.Time, override func(*Config)) (*Config, error) {
	conf := Default(now)

	if path != "" {
		if err := LoadFile(path, &conf); err != nil {
			return nil, err
		}
	}
	readEnv(&conf)
	if override != nil {
		override(&conf)
	}

	if err := conf.Validate(); err != nil {
		return nil, err
	}
	return &conf, nil
}
