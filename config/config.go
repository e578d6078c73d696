package config

import "github.com/caarlos0/env/v6"

type Config struct {
	// HTTP listen port
	Port string `env:"PORT" envDefault:"5250"`

	// data.go.kr service key for the transaction feeds. Empty means the
	// ranking endpoint serves synthesized fallback data only.
	ServiceKey string `env:"DATA_GO_KR_SERVICE_KEY"`

	// Per-request timeout for a single period fetch (seconds)
	FetchTimeoutSeconds int `env:"FETCH_TIMEOUT_SECONDS" envDefault:"10"`

	// Number of full months before the current one to aggregate over
	LookbackMonths int `env:"LOOKBACK_MONTHS" envDefault:"3"`

	// Default entry count per ranking category
	DefaultRankingLimit int `env:"DEFAULT_RANKING_LIMIT" envDefault:"10"`

	// Path of the sqlite period cache; empty disables caching
	CacheDBPath string `env:"CACHE_DB_PATH"`

	// Cache entry lifetime (hours)
	CacheTTLHours int `env:"CACHE_TTL_HOURS" envDefault:"24"`

	// Directory with JSON registry overrides (schools.json,
	// subway_stations.json, bus_stops.json); empty keeps the builtins
	RegistryDir string `env:"REGISTRY_DIR"`

	// CORS allowed origins
	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envSeparator:"," envDefault:"*"`
}

func LoadConfig() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
