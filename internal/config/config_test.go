package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAppliesDefaults(t *testing.T) {
	cfg, err := Parse("")
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.HTTPPort)
	assert.Equal(t, StorageDriverMemory, cfg.Storage.Driver)
	assert.Equal(t, "userBookings", cfg.Storage.BookingsKey)
	assert.Equal(t, "urbanServices_user", cfg.Storage.SessionKey)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
	assert.Equal(t, "urban:", cfg.Redis.KeyPrefix)
}

func TestParseFullFile(t *testing.T) {
	cfg, err := Parse(`
[server]
http_port = 9090

[logs]
level = "debug"

[storage]
driver = "postgres"
seed_demo_bookings = true

[database]
host = "db"
port = 5433
user = "urban"
password = "secret"
dbname = "urban"

[metrics]
enabled = true
`)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.HTTPPort)
	assert.Equal(t, "debug", cfg.Logs.Level)
	assert.True(t, cfg.Storage.SeedDemoBookings)
	assert.True(t, cfg.Metrics.Enabled)
	assert.Equal(t, "host=db port=5433 user=urban password=secret dbname=urban sslmode=disable", cfg.Database.DSN())
}

func TestParseRejectsInvalidConfig(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"unknown driver", "[storage]\ndriver = \"sqlite\""},
		{"postgres without host", "[storage]\ndriver = \"postgres\""},
		{"same keys", "[storage]\nbookings_key = \"k\"\nsession_key = \"k\""},
		{"port out of range", "[server]\nhttp_port = 70000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.data)
			assert.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}

func TestParseRejectsMalformedTOML(t *testing.T) {
	_, err := Parse("[server\nhttp_port = ")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalidConfig)
}

func TestLoadExpandsEnvironment(t *testing.T) {
	t.Setenv("URBAN_REDIS_PASSWORD", "from-env")
	chdir(t, t.TempDir())

	path := filepath.Join(".", "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[storage]\ndriver = \"redis\"\n\n[redis]\npassword = \"${URBAN_REDIS_PASSWORD}\"\n"), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, StorageDriverRedis, cfg.Storage.Driver)
	assert.Equal(t, "from-env", cfg.Redis.Password)
}

func TestLoadReadsDotEnv(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("URBAN_DB_HOST", "")
	os.Unsetenv("URBAN_DB_HOST")

	require.NoError(t, os.WriteFile(".env", []byte("URBAN_DB_HOST=pg.internal\n"), 0o600))
	require.NoError(t, os.WriteFile("config.toml", []byte("[storage]\ndriver = \"postgres\"\n\n[database]\nhost = \"${URBAN_DB_HOST}\"\ndbname = \"urban\"\n"), 0o600))

	cfg, err := Load("config.toml")
	require.NoError(t, err)
	assert.Equal(t, "pg.internal", cfg.Database.Host)
}

func TestLoadMissingFile(t *testing.T) {
	chdir(t, t.TempDir())
	_, err := Load("absent.toml")
	assert.Error(t, err)
}

// chdir mirrors testing.T.Chdir (Go 1.24+) for older toolchains.
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(prev) })
}
