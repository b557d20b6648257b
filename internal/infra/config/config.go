package config

import (
	"github.com/Builder-Lawyers/text-corrector/pkg/env"
)

type ServerConfig struct {
	Port     string
	LogLevel string
}

func NewServerConfig() *ServerConfig {
	return &ServerConfig{
		Port:     env.GetEnv("PORT", "5000"),
		LogLevel: env.GetEnv("LOG_LEVEL", "info"),
	}
}

func (c ServerConfig) Addr() string {
	return ":" + c.Port
}
