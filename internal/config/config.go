package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

const (
	StoreDriverMongo  = "mongo"
	StoreDriverMemory = "memory"
)

type Config struct {
	DBUrl       string
	DBName      string
	DBTimeout   time.Duration
	StoreDriver string

	ServerPort  string
	Env         string
	LogLevel    string
	CORSOrigins []string
}

// Load reads the process environment, optionally seeded from a .env file.
// Missing database settings are not an error: the API starts anyway and the
// store-backed routes report the problem at call time.
func Load() *Config {
	loadDotEnv(".env")

	return &Config{
		DBUrl:       os.Getenv("DATABASE_URL"),
		DBName:      os.Getenv("DATABASE_NAME"),
		DBTimeout:   getDuration("DB_TIMEOUT", 5*time.Second),
		StoreDriver: strings.ToLower(getEnv("STORE_DRIVER", StoreDriverMongo)),
		ServerPort:  getEnv("PORT", "8000"),
		Env:         getEnv("APP_ENV", "development"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		CORSOrigins: splitList(getEnv("CORS_ALLOW_ORIGINS", "*")),
	}
}

func loadDotEnv(path string) {
	if _, err := os.Stat(path); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			log.Warn().Err(err).Str("path", path).Msg("could not stat env file")
		}
		return
	}

	if err := godotenv.Load(path); err != nil {
		log.Warn().Err(err).Str("path", path).Msg("could not load env file")
		return
	}
	log.Debug().Str("path", path).Msg("env file loaded")
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getDuration(key string, def time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		log.Warn().Str("key", key).Str("value", v).Msg("invalid duration, using default")
		return def
	}
	return d
}

func splitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func (c *Config) Addr() string {
	return fmt.Sprintf(":%s", c.ServerPort)
}

// DatabaseConfigured reports whether both MongoDB settings are present.
func (c *Config) DatabaseConfigured() bool {
	return c.DBUrl != "" && c.DBName != ""
}

func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}
