package configs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func missingEnvFile(t *testing.T) string {
	return filepath.Join(t.TempDir(), "missing.env")
}

func TestLoadConfig_Defaults(t *testing.T) {
	for _, key := range []string{"APP_ENV", "APP_HOST", "APP_PORT", "STATIC_DIR", "VIEWS_RELOAD", "LOG_LEVEL"} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}

	cfg, err := LoadConfig(missingEnvFile(t))
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, "0.0.0.0", cfg.Host)
	assert.Equal(t, 3000, cfg.Port)
	assert.Equal(t, "./public", cfg.StaticDir)
	assert.False(t, cfg.ViewsReload)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "0.0.0.0:3000", cfg.Addr())
	assert.False(t, cfg.IsProduction())
}

func TestLoadConfig_FromEnvironment(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("APP_HOST", "127.0.0.1")
	t.Setenv("APP_PORT", "8080")
	t.Setenv("STATIC_DIR", "/srv/static")
	t.Setenv("VIEWS_RELOAD", "true")

	cfg, err := LoadConfig(missingEnvFile(t))
	require.NoError(t, err)

	assert.True(t, cfg.IsProduction())
	assert.Equal(t, "127.0.0.1:8080", cfg.Addr())
	assert.Equal(t, "/srv/static", cfg.StaticDir)
	assert.True(t, cfg.ViewsReload)
}

func TestLoadConfig_FromDotEnvFile(t *testing.T) {
	t.Setenv("APP_PORT", "")
	require.NoError(t, os.Unsetenv("APP_PORT"))

	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("APP_PORT=4321\n"), 0o600))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 4321, cfg.Port)
}

func TestLoadConfig_InvalidPort(t *testing.T) {
	t.Setenv("APP_PORT", "70000")
	_, err := LoadConfig(missingEnvFile(t))
	assert.Error(t, err)

	t.Setenv("APP_PORT", "abc")
	_, err = LoadConfig(missingEnvFile(t))
	assert.Error(t, err)
}
