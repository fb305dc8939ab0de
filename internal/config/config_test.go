package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "s3cret")
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.ServerAddress)
	assert.Equal(t, 30*time.Second, cfg.ContextTimeout)
	assert.Equal(t, 10, cfg.DBMaxRetry)
	assert.Equal(t, uint64(10000000), cfg.BloomFilterSize)
	assert.Equal(t, time.Minute, cfg.BloomRefreshInterval)
	assert.True(t, cfg.EmptyGraphNotFound)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("STORE_DRIVER", "Memory")
	t.Setenv("EMPTY_GRAPH_NOT_FOUND", "false")
	t.Setenv("CORS_ORIGINS", "http://a.test,http://b.test")
	t.Setenv("STORE_FIXTURES", "testdata/fixtures.json")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, DriverMemory, cfg.StoreDriver)
	assert.False(t, cfg.EmptyGraphNotFound)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.CORSOrigins)
	assert.Equal(t, "testdata/fixtures.json", cfg.StoreFixtures)
}

func TestLoadRejectsUnknownDriver(t *testing.T) {
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("STORE_DRIVER", "postgres")
	_, err := Load()
	assert.Error(t, err)
}

func TestLoadRequiresJWTSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "restored after the test")
	require.NoError(t, os.Unsetenv("JWT_SECRET"))
	_, err := Load()
	assert.Error(t, err, "unset")

	t.Setenv("JWT_SECRET", "")
	_, err = Load()
	assert.ErrorContains(t, err, "JWT_SECRET")

	t.Setenv("JWT_SECRET", "   ")
	_, err = Load()
	assert.ErrorContains(t, err, "JWT_SECRET")
}

func TestDSN(t *testing.T) {
	cfg := Config{DBUser: "u", DBPass: "p", DBHost: "db", DBPort: "3306", DBName: "tube", DBLocation: "UTC"}
	assert.Equal(t, "u:p@tcp(db:3306)/tube?loc=UTC&parseTime=1", cfg.DSN())
}
