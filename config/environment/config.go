package environment

import (
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config stores all configuration of the application.
// Values come from the environment, optionally seeded from a .env file.
type Config struct {
	Environment         string        `mapstructure:"ENVIRONMENT"`
	LogLevel            string        `mapstructure:"LOG_LEVEL"`
	HTTPServerAddress   string        `mapstructure:"HTTP_SERVER_ADDRESS"`
	Port                string        `mapstructure:"PORT"`
	AllowedOrigins      []string      `mapstructure:"ALLOWED_ORIGINS"`
	GoogleAPIKey        string        `mapstructure:"GOOGLE_API_KEY"`
	PlacesBaseURL       string        `mapstructure:"PLACES_BASE_URL"`
	PlacesHTTPTimeout   time.Duration `mapstructure:"PLACES_HTTP_TIMEOUT"`
	DefaultSearchRadius int           `mapstructure:"DEFAULT_SEARCH_RADIUS"`
	KeywordSearchRadius int           `mapstructure:"KEYWORD_SEARCH_RADIUS"`
	RedisAddress        string        `mapstructure:"REDIS_ADDRESS"`
	RedisPassword       string        `mapstructure:"REDIS_PASSWORD"`
	PlacesCacheTTL      time.Duration `mapstructure:"PLACES_CACHE_TTL"`
	SessionTTL          time.Duration `mapstructure:"SESSION_TTL"`
	RateLimitRPS        float64       `mapstructure:"RATE_LIMIT_RPS"`
	RateLimitBurst      int           `mapstructure:"RATE_LIMIT_BURST"`
	RequestTimeout      time.Duration `mapstructure:"REQUEST_TIMEOUT"`
}

var defaults = map[string]any{
	"ENVIRONMENT":           "development",
	"LOG_LEVEL":             "info",
	"HTTP_SERVER_ADDRESS":   "",
	"PORT":                  "8080",
	"ALLOWED_ORIGINS":       "*",
	"GOOGLE_API_KEY":        "",
	"PLACES_BASE_URL":       "https://maps.googleapis.com/maps/api/place",
	"PLACES_HTTP_TIMEOUT":   "10s",
	"DEFAULT_SEARCH_RADIUS": 1500,
	"KEYWORD_SEARCH_RADIUS": 5000,
	"REDIS_ADDRESS":         "",
	"REDIS_PASSWORD":        "",
	"PLACES_CACHE_TTL":      "5m",
	"SESSION_TTL":           "2h",
	"RATE_LIMIT_RPS":        10,
	"RATE_LIMIT_BURST":      20,
	"REQUEST_TIMEOUT":       "30s",
}

// LoadConfig reads an optional .env file from path and then the process environment.
func LoadConfig(path string) (config Config, err error) {
	// a missing .env file is fine, the environment alone is enough
	_ = godotenv.Load(strings.TrimSuffix(path, "/") + "/.env")

	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	v.AutomaticEnv()

	err = v.Unmarshal(&config)
	if err != nil {
		return
	}

	config.AllowedOrigins = splitOrigins(v.GetString("ALLOWED_ORIGINS"))
	if config.HTTPServerAddress == "" {
		config.HTTPServerAddress = ":" + config.Port
	}
	return
}

// IsDevelopment reports whether the service runs in development mode.
func (c Config) IsDevelopment() bool {
	return c.Environment == "development"
}

func splitOrigins(raw string) []string {
	var origins []string
	for _, o := range strings.Split(raw, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}
