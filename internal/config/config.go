package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// DefaultPopularTitles is the fixed list the home page is built from.
var DefaultPopularTitles = []string{
	"Inception", "The Shawshank Redemption", "The Dark Knight",
	"Pulp Fiction", "Fight Club", "Forrest Gump", "The Matrix",
	"Goodfellas", "The Lord of the Rings", "Interstellar", "Parasite", "Oppenheimer",
}

type Config struct {
	Server  ServerConfig
	OMDb    OMDbConfig
	Catalog CatalogConfig
}

type ServerConfig struct {
	Port         string        `validate:"required,numeric"`
	ReadTimeout  time.Duration `validate:"gt=0"`
	WriteTimeout time.Duration `validate:"gt=0"`
}

type OMDbConfig struct {
	APIKey          string        `validate:"required"`
	BaseURL         string        `validate:"required,url"`
	HTTPTimeout     time.Duration `validate:"gt=0"`
	MaxConcurrency  int           `validate:"gte=1,lte=32"`
	BreakerFailures int           `validate:"gte=1"`
	BreakerTimeout  time.Duration `validate:"gt=0"`
}

type CatalogConfig struct {
	PopularTitles []string `validate:"required,min=1,dive,required"`
}

func Load() *Config {
	return &Config{
		Server: ServerConfig{
			Port:         getEnvOrDefault("SERVER_PORT", "8010"),
			ReadTimeout:  getDurationOrDefault("SERVER_READ_TIMEOUT", 30*time.Second),
			WriteTimeout: getDurationOrDefault("SERVER_WRITE_TIMEOUT", 30*time.Second),
		},
		OMDb: OMDbConfig{
			APIKey:          os.Getenv("OMDB_API_KEY"),
			BaseURL:         getEnvOrDefault("OMDB_BASE_URL", "http://www.omdbapi.com/"),
			HTTPTimeout:     getDurationOrDefault("OMDB_HTTP_TIMEOUT", 10*time.Second),
			MaxConcurrency:  getIntOrDefault("OMDB_MAX_CONCURRENCY", 4),
			BreakerFailures: getIntOrDefault("OMDB_BREAKER_FAILURES", 5),
			BreakerTimeout:  getDurationOrDefault("OMDB_BREAKER_TIMEOUT", 30*time.Second),
		},
		Catalog: CatalogConfig{
			PopularTitles: getListOrDefault("POPULAR_TITLES", DefaultPopularTitles),
		},
	}
}

var validate = validator.New()

// Validate checks every field against its struct tag and reports all failures at once.
func (c *Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	msgs := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		msgs = append(msgs, fmt.Sprintf("%s %s", envName(fe.Namespace()), friendlyMessage(fe)))
	}
	return fmt.Errorf("invalid configuration: %s", strings.Join(msgs, "; "))
}

var envNames = map[string]string{
	"Config.Server.Port":           "SERVER_PORT",
	"Config.Server.ReadTimeout":    "SERVER_READ_TIMEOUT",
	"Config.Server.WriteTimeout":   "SERVER_WRITE_TIMEOUT",
	"Config.OMDb.APIKey":           "OMDB_API_KEY",
	"Config.OMDb.BaseURL":          "OMDB_BASE_URL",
	"Config.OMDb.HTTPTimeout":      "OMDB_HTTP_TIMEOUT",
	"Config.OMDb.MaxConcurrency":   "OMDB_MAX_CONCURRENCY",
	"Config.OMDb.BreakerFailures":  "OMDB_BREAKER_FAILURES",
	"Config.OMDb.BreakerTimeout":   "OMDB_BREAKER_TIMEOUT",
	"Config.Catalog.PopularTitles": "POPULAR_TITLES",
}

func envName(namespace string) string {
	if name, ok := envNames[namespace]; ok {
		return name
	}
	// dive errors carry an index suffix, e.g. Config.Catalog.PopularTitles[2]
	if i := strings.Index(namespace, "["); i != -1 {
		if name, ok := envNames[namespace[:i]]; ok {
			return name
		}
	}
	return namespace
}

func friendlyMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "url":
		return "must be a valid URL"
	case "numeric":
		return "must be numeric"
	case "gt":
		return "must be greater than " + fe.Param()
	case "gte":
		return "must be greater than or equal to " + fe.Param()
	case "lte":
		return "must be less than or equal to " + fe.Param()
	case "min":
		return "must have at least " + fe.Param() + " entries"
	default:
		return "is invalid"
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// getListOrDefault splits a comma-separated variable, dropping blank entries.
func getListOrDefault(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return append([]string(nil), defaultValue...)
	}

	var items []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	if len(items) == 0 {
		return append([]string(nil), defaultValue...)
	}
	return items
}
