package config

import (
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

type Config struct {
	Port        string `validate:"required,numeric"`
	DatabaseURL string `validate:"required"`
	AppEnv      string `validate:"oneof=local development staging production test"`

	// Allowed CORS origins.
	AllowedOrigins []string

	PostsTable       string `validate:"identifier"`
	VisitorsTable    string `validate:"identifier"`
	BackgroundsTable string `validate:"identifier"`
	StoriesTable     string `validate:"identifier"`

	SocrataAppToken string
	ShotSpotterURL  string `validate:"required,url"`
	ViolenceURL     string `validate:"required,url"`
	GeolocationURL  string `validate:"required,url"`

	UpstreamTimeout   time.Duration `validate:"gt=0"`
	VisitTimeout      time.Duration `validate:"gt=0"`
	TrustProxyHeaders bool

	RateLimitRequests int           `validate:"gte=0"`
	RateLimitWindow   time.Duration `validate:"gt=0"`

	RedisURL        string
	ChicagoCacheTTL time.Duration `validate:"gte=0"`

	AdminJWTSecret string

	LogLevel      string `validate:"oneof=trace debug info warn error"`
	LogFormat     string `validate:"oneof=json console"`
	LogFile       string
	LogMaxSizeMB  int `validate:"gte=0"`
	LogMaxBackups int `validate:"gte=0"`
	LogMaxAgeDays int `validate:"gte=0"`
}

var validate = newValidator()

var identifierPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]{0,62}$`)

func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("identifier", func(fl validator.FieldLevel) bool {
		return identifierPattern.MatchString(fl.Field().String())
	})
	return v
}

// Load reads .env (if present) and the process environment.
func Load() (*Config, error) {
	_ = godotenv.Load() // Ignore error if .env not found (e.g. prod)

	cfg := &Config{
		Port:           getEnv("PORT", "8000"),
		DatabaseURL:    getEnv("DATABASE_URL", "file:stacc.sqlite"),
		AppEnv:         getEnv("APP_ENV", "local"),
		AllowedOrigins: splitList(getEnv("STACC_DOMAIN", "http://localhost:8080")),

		PostsTable:       getEnv("STACC_POSTS_TABLE", "posts"),
		VisitorsTable:    getEnv("STACC_VISITORS_TABLE", "visitors"),
		BackgroundsTable: getEnv("STACC_BACKGROUNDS_TABLE", "backgrounds"),
		StoriesTable:     getEnv("STACC_STORIES_TABLE", "stories"),

		SocrataAppToken: getEnv("SOCRATA_APP_TOKEN", ""),
		ShotSpotterURL:  getEnv("SHOTSPOTTER_URL", "https://data.cityofchicago.org/resource/3h7q-7mdb.json"),
		ViolenceURL:     getEnv("VIOLENCE_URL", "https://data.cityofchicago.org/resource/gumc-mgzr.json"),
		GeolocationURL:  getEnv("GEOLOCATION_URL", "http://ip-api.com/json/"),

		RedisURL:       getEnv("REDIS_URL", ""),
		AdminJWTSecret: getEnv("ADMIN_JWT_SECRET", ""),

		LogLevel:  strings.ToLower(getEnv("LOG_LEVEL", "info")),
		LogFormat: strings.ToLower(getEnv("LOG_FORMAT", "json")),
		LogFile:   getEnv("LOG_FILE", ""),
	}

	var err error
	if cfg.UpstreamTimeout, err = getEnvDuration("UPSTREAM_TIMEOUT", 10*time.Second); err != nil {
		return nil, err
	}
	if cfg.VisitTimeout, err = getEnvDuration("VISIT_TIMEOUT", 5*time.Second); err != nil {
		return nil, err
	}
	if cfg.TrustProxyHeaders, err = getEnvBool("TRUST_PROXY_HEADERS", false); err != nil {
		return nil, err
	}
	if cfg.RateLimitRequests, err = getEnvInt("RATE_LIMIT_REQUESTS", 100); err != nil {
		return nil, err
	}
	if cfg.RateLimitWindow, err = getEnvDuration("RATE_LIMIT_WINDOW", time.Minute); err != nil {
		return nil, err
	}
	if cfg.ChicagoCacheTTL, err = getEnvDuration("CHICAGO_CACHE_TTL", 10*time.Minute); err != nil {
		return nil, err
	}
	if cfg.LogMaxSizeMB, err = getEnvInt("LOG_MAX_SIZE_MB", 100); err != nil {
		return nil, err
	}
	if cfg.LogMaxBackups, err = getEnvInt("LOG_MAX_BACKUPS", 3); err != nil {
		return nil, err
	}
	if cfg.LogMaxAgeDays, err = getEnvInt("LOG_MAX_AGE_DAYS", 28); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}

func (c *Config) AdminEnabled() bool {
	return c.AdminJWTSecret != ""
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) (int, error) {
	value, exists := os.LookupEnv(key)
	if !exists || value == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return n, nil
}

func getEnvBool(key string, fallback bool) (bool, error) {
	value, exists := os.LookupEnv(key)
	if !exists || value == "" {
		return fallback, nil
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return false, fmt.Errorf("%s: %w", key, err)
	}
	return b, nil
}

func getEnvDuration(key string, fallback time.Duration) (time.Duration, error) {
	value, exists := os.LookupEnv(key)
	if !exists || value == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return d, nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
