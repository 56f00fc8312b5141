package config

import (
	"os"
	"strings"
)

// Environment variables read by readEnv.
const (
	EnvLogLevel = "UHRSIM_LOG_LEVEL"
	EnvEngine   = "UHRSIM_ENGINE"
	EnvWorkDir  = "UHRSIM_WORKDIR"
)

func readEnv(conf *Config) {
	if level := os.Getenv(EnvLogLevel); level != "" {
		conf.LogLevel = strings.ToLower(level)
	}
	if engine := os.Getenv(EnvEngine); engine != "" {
		conf.Engine.Command = engine
	}
	if workDir := os.Getenv(EnvWorkDir); workDir != "" {
		conf.WorkDir = workDir
	}
}
