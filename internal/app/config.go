package app

import (
	"os"

	_ "github.com/joho/godotenv/autoload"

	"github.com/adanyl0v/go-task-manager/internal/config"
)

const configPathEnv = "CONFIG_PATH"

func MustReadEnv() {
	configPath := os.Getenv(configPathEnv)
	cfg, err := config.NewReader(configPath).Read()
	if err != nil {
		globalLogger.Error().
			Err(err).
			Str("config_path", configPath).
			Msg("failed to read env")
		panic(err)
	}
	globalLogger.Info().
		Str("env", cfg.Env).
		Msg("read env")

	config.SetGlobal(cfg)
}
