package config

import (
	"fmt"
	"path/filepath"

	"github.com/joho/godotenv"
)

// DefaultEnv is used when GO_ENV is unset.
const DefaultEnv = "dev"

// LoadEnvFile loads dir/envs/.env.<env> into the process environment, falling
// back to dir/envs/.env. Variables already set are not overridden. It returns
// the path of the file that was loaded.
func LoadEnvFile(dir, env string) (string, error) {
	if env == "" {
		env = DefaultEnv
	}

	envFile := filepath.Join(dir, "envs", ".env."+env)
	if err := godotenv.Load(envFile); err == nil {
		return envFile, nil
	}

	defaultEnvFile := filepath.Join(dir, "envs", ".env")
	if err := godotenv.Load(defaultEnvFile); err != nil {
		return "", fmt.Errorf("no environment file found for %q: %w", env, err)
	}
	return defaultEnvFile, nil
}
