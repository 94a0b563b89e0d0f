package config_test

import (
	"testing"
	"time"

	"github.com/Flaque/filet"
	"github.com/UnknownOlympus/openants/internal/config"
	"github.com/stretchr/testify/assert"
)

func Test_MustLoadFromEnv(t *testing.T) {
	t.Setenv("OPENANTS_ENV", "local")
	t.Setenv("OPENANTS_LOCATION_TTL", "10m")
	t.Setenv("OPENANTS_DEFAULT_RADIUS", "2500")
	t.Setenv("OPENANTS_DEFAULT_SORT", "distance")
	t.Setenv("OPENANTS_GEOCODER_TYPE", "google")
	t.Setenv("OPENANTS_GEOCODER_KEY", "testAPIKey")
	t.Setenv("DB_HOST", "testHost")
	t.Setenv("DB_PORT", "12345")
	t.Setenv("DB_USERNAME", "admin")
	t.Setenv("DB_PASSWORD", "adminpass")
	t.Setenv("DB_NAME", "testName")
	t.Setenv("REDIS_ADDR", "redis:6379")
	t.Setenv("REDIS_DB", "2")

	cfg := config.MustLoad()

	assert.Equal(t, "local", cfg.Env)
	assert.Equal(t, "testHost", cfg.Database.Host)
	assert.Equal(t, "12345", cfg.Database.Port)
	assert.Equal(t, "admin", cfg.Database.User)
	assert.Equal(t, "adminpass", cfg.Database.Password)
	assert.Equal(t, "testName", cfg.Database.Name)
	assert.Equal(t, "redis:6379", cfg.Redis.Addr)
	assert.Equal(t, 2, cfg.Redis.DB)
	assert.Equal(t, 10*time.Minute, cfg.LocationTTL)
	assert.Equal(t, 8080, cfg.HTTPPort)
	assert.Equal(t, 9090, cfg.MonitoringPort)
	assert.InDelta(t, 2500.0, cfg.Nearby.DefaultRadiusMeters, 0.001)
	assert.InDelta(t, 50000.0, cfg.Nearby.MaxRadiusMeters, 0.001)
	assert.Equal(t, "distance", cfg.Nearby.DefaultSort)
	assert.Equal(t, 50, cfg.Nearby.DefaultLimit)
	assert.Equal(t, "google", cfg.Geocoder.ProviderType)
	assert.Equal(t, "testAPIKey", cfg.Geocoder.APIKey)
	assert.Equal(t, 1, cfg.Geocoder.RateLimit)
}

func Test_MustLoadFromFile(t *testing.T) {
	defer filet.CleanUp(t)

	file := filet.TmpFile(t, "", `
openants_env: development
openants_http_port: 8181
openants_max_radius: 20000
db_host: fileHost
`)
	t.Setenv("OPENANTS_CONFIG", file.Name())
	t.Setenv("DB_HOST", "envHost")

	cfg := config.MustLoad()

	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, 8181, cfg.HTTPPort)
	assert.InDelta(t, 20000.0, cfg.Nearby.MaxRadiusMeters, 0.001)
	assert.Equal(t, "envHost", cfg.Database.Host, "environment must win over the file")
	assert.Equal(t, "5432", cfg.Database.Port)
}

func TestMustLoad_MissingFile(t *testing.T) {
	t.Setenv("OPENANTS_CONFIG", "/nonexistent/openants.yaml")

	assert.PanicsWithValue(t, "failed to read configuration file", func() {
		config.MustLoad()
	})
}

func TestMustLoad_LocationTTLError(t *testing.T) {
	t.Setenv("OPENANTS_LOCATION_TTL", "error_value")

	assert.PanicsWithValue(t, "failed to parse location ttl from configuration", func() {
		config.MustLoad()
	})
}

func TestMustLoad_PortError(t *testing.T) {
	t.Setenv("OPENANTS_MONITORING_PORT", "error_value")

	assert.PanicsWithValue(t, "failed to parse port for monitoring server from configuration", func() {
		config.MustLoad()
	})
}

func TestMustLoad_RadiusError(t *testing.T) {
	t.Setenv("OPENANTS_DEFAULT_RADIUS", "far")

	assert.PanicsWithValue(t, "failed to parse default radius from configuration, must be a number of meters", func() {
		config.MustLoad()
	})
}

func TestMustLoad_LimitError(t *testing.T) {
	t.Setenv("OPENANTS_DEFAULT_LIMIT", "error_value")

	assert.PanicsWithValue(t, "failed to parse default limit from configuration, must be an integer types", func() {
		config.MustLoad()
	})
}
