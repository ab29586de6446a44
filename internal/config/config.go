package config

import "time"

const (
	EnvDev   = "dev"
	EnvProd  = "prod"
	EnvLocal = "local"
)

var globalConfig *Config

func Global() *Config {
	return globalConfig
}

func SetGlobal(cfg *Config) {
	globalConfig = cfg
}

type Config struct {
	Env  string     `yaml:"env" env:"ENV" env-required:"true"`
	HTTP HTTPConfig `yaml:"http"`
}

type HTTPConfig struct {
	Host            string        `yaml:"host" env:"HTTP_HOST"`
	Port            string        `yaml:"port" env:"HTTP_PORT" env-default:"5161"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"HTTP_SHUTDOWN_TIMEOUT" env-default:"5s"`
	// Origins the browser frontend is served from.
	CORSAllowedOrigins []string `yaml:"cors_allowed_origins" env:"HTTP_CORS_ALLOWED_ORIGINS" env-separator:"," env-default:"http://localhost:5173"`
}

// ClientConfig configures taskctl, the command line client of the tasks API.
type ClientConfig struct {
	BaseURL string        `yaml:"base_url" env:"TASKS_API_URL" env-default:"http://localhost:5161/api/tasks"`
	Timeout time.Duration `yaml:"timeout" env:"TASKS_API_TIMEOUT" env-default:"10s"`
}
