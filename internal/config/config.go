package config

import (
	"os"
	"strconv"
	"time"

	"github.com/spf13/viper"
)

// Config holds the configuration settings for the nearby service.
//
// Fields:
// - Env: The current environment (e.g., local, development, production).
// - HTTPPort: The port for the public API.
// - MonitoringPort: The port for the health and metrics server.
// - Nearby: Defaults and limits for proximity queries.
// - Geocoder: Settings for the address-to-coordinate provider.
// - LocationTTL: How long a current location sample is kept in Redis.
// - Database: Configuration settings for the PostgreSQL database.
// - Redis: Configuration settings for the Redis location store.
type Config struct {
	Env            string         // Env is the current environment: local, dev, prod.
	HTTPPort       int            // HTTPPort is the public API port.
	MonitoringPort int            // MonitoringPort serves /healthz and /metrics.
	Nearby         NearbyConfig   // Nearby holds proximity query settings.
	Geocoder       GeocoderConfig // Geocoder holds provider settings.
	LocationTTL    time.Duration  // LocationTTL bounds the life of a location sample.
	Database       PostgresConfig // Database holds the postgres database configuration.
	Redis          RedisConfig    // Redis holds the redis configuration.
}

// NearbyConfig holds defaults applied to nearby queries.
type NearbyConfig struct {
	DefaultRadiusMeters float64 // Radius used when the caller does not send one.
	MaxRadiusMeters     float64 // Upper bound for caller-supplied radii.
	DefaultSort         string  // Sort key used when the caller does not send one.
	DefaultLimit        int     // Maximum number of candidates returned by default.
}

// GeocoderConfig holds the geocoding provider settings.
type GeocoderConfig struct {
	ProviderType string // ProviderType specifies which geocoding provider to use.
	APIKey       string // APIKey is required for Google.
	RateLimit    int    // RateLimit is the number of requests per second allowed.
}

// PostgresConfig struct holds the configuration details for connecting to a PostgreSQL database.
type PostgresConfig struct {
	Host     string // Host is the database server address.
	Port     string // Port is the database server port.
	User     string // User is the database user.
	Password string // Password is the database user's password.
	Name     string // Name is the name of the database.
}

// RedisConfig holds the connection details for Redis.
type RedisConfig struct {
	Addr     string // Addr is host:port of the Redis server.
	Password string // Password is optional.
	DB       int    // DB is the logical database index.
}

// MustLoad reads the configuration from environment variables and, when
// OPENANTS_CONFIG names a YAML file, from that file. Environment variables win.
// It panics if a value cannot be parsed.
func MustLoad() *Config {
	v := viper.New()
	setDefaults(v)
	v.AutomaticEnv()

	if path := os.Getenv("OPENANTS_CONFIG"); path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			panic("failed to read configuration file")
		}
	}

	locationTTL, err := time.ParseDuration(v.GetString("openants_location_ttl"))
	if err != nil {
		panic("failed to parse location ttl from configuration")
	}

	httpPort, err := strconv.Atoi(v.GetString("openants_http_port"))
	if err != nil {
		panic("failed to parse port for api server from configuration")
	}

	monitoringPort, err := strconv.Atoi(v.GetString("openants_monitoring_port"))
	if err != nil {
		panic("failed to parse port for monitoring server from configuration")
	}

	defaultRadius, err := strconv.ParseFloat(v.GetString("openants_default_radius"), 64)
	if err != nil {
		panic("failed to parse default radius from configuration, must be a number of meters")
	}

	maxRadius, err := strconv.ParseFloat(v.GetString("openants_max_radius"), 64)
	if err != nil {
		panic("failed to parse max radius from configuration, must be a number of meters")
	}

	limit, err := strconv.Atoi(v.GetString("openants_default_limit"))
	if err != nil {
		panic("failed to parse default limit from configuration, must be an integer types")
	}

	rateLimit, err := strconv.Atoi(v.GetString("openants_geocoder_rate_limit"))
	if err != nil {
		panic("failed to parse geocoder rate limit from configuration, must be an integer types")
	}

	redisDB, err := strconv.Atoi(v.GetString("redis_db"))
	if err != nil {
		panic("failed to parse redis db from configuration, must be an integer types")
	}

	return &Config{
		Env:            v.GetString("openants_env"),
		HTTPPort:       httpPort,
		MonitoringPort: monitoringPort,
		Nearby: NearbyConfig{
			DefaultRadiusMeters: defaultRadius,
			MaxRadiusMeters:     maxRadius,
			DefaultSort:         v.GetString("openants_default_sort"),
			DefaultLimit:        limit,
		},
		Geocoder: GeocoderConfig{
			ProviderType: v.GetString("openants_geocoder_type"),
			APIKey:       v.GetString("openants_geocoder_key"),
			RateLimit:    rateLimit,
		},
		LocationTTL: locationTTL,
		Database: PostgresConfig{
			Host:     v.GetString("db_host"),
			Port:     v.GetString("db_port"),
			User:     v.GetString("db_username"),
			Password: v.GetString("db_password"),
			Name:     v.GetString("db_name"),
		},
		Redis: RedisConfig{
			Addr:     v.GetString("redis_addr"),
			Password: v.GetString("redis_password"),
			DB:       redisDB,
		},
	}
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("openants_env", "production")
	v.SetDefault("openants_http_port", "8080")
	v.SetDefault("openants_monitoring_port", "9090")
	v.SetDefault("openants_default_radius", "5000")
	v.SetDefault("openants_max_radius", "50000")
	v.SetDefault("openants_default_sort", "match")
	v.SetDefault("openants_default_limit", "50")
	v.SetDefault("openants_geocoder_type", "nominatim")
	v.SetDefault("openants_geocoder_key", "")
	v.SetDefault("openants_geocoder_rate_limit", "1")
	v.SetDefault("openants_location_ttl", "24h")
	v.SetDefault("db_host", "")
	v.SetDefault("db_port", "5432")
	v.SetDefault("db_username", "")
	v.SetDefault("db_password", "")
	v.SetDefault("db_name", "")
	v.SetDefault("redis_addr", "localhost:6379")
	v.SetDefault("redis_password", "")
	v.SetDefault("redis_db", "0")
}
