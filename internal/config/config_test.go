package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var allEnvVars = []string{
	EnvClientURL, EnvCaseID, EnvBasePath, EnvPort, EnvLogLevel, EnvLogFormat,
	EnvEnvironment, EnvServiceName, EnvVersion, EnvDiscardStale, EnvCORSAllowedOrigins,
}

// clearEnvVars unsets every config variable for the duration of the test
func clearEnvVars(t *testing.T) {
	t.Helper()
	for _, key := range allEnvVars {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
}

func TestFromEnv(t *testing.T) {
	t.Run("applies defaults", func(t *testing.T) {
		clearEnvVars(t)
		t.Setenv(EnvClientURL, "https://api.example.com/inventory")

		cfg, err := FromEnv()

		require.NoError(t, err)
		assert.Equal(t, "https://api.example.com/inventory", cfg.ClientURL)
		assert.Equal(t, "", cfg.CaseID)
		assert.Equal(t, "/", cfg.BasePath)
		assert.Equal(t, 8080, cfg.Port)
		assert.Equal(t, "info", cfg.LogLevel)
		assert.Equal(t, "text", cfg.LogFormat)
		assert.Equal(t, "dev", cfg.Environment)
		assert.Equal(t, "inventory-viewer", cfg.ServiceName)
		assert.Equal(t, "dev", cfg.Version)
		assert.False(t, cfg.DiscardStale)
		assert.Equal(t, []string{"*"}, cfg.CORSAllowedOrigins)
		assert.True(t, cfg.IsDevelopment())
		assert.Equal(t, ":8080", cfg.Address())
	})

	t.Run("reads environment variables", func(t *testing.T) {
		clearEnvVars(t)
		t.Setenv(EnvClientURL, "http://localhost:9000/api/inventory")
		t.Setenv(EnvCaseID, "case-7")
		t.Setenv(EnvBasePath, "/viewer/")
		t.Setenv(EnvPort, "3000")
		t.Setenv(EnvLogLevel, "DEBUG")
		t.Setenv(EnvLogFormat, "Json")
		t.Setenv(EnvEnvironment, "prod")
		t.Setenv(EnvServiceName, "viewer")
		t.Setenv(EnvVersion, "1.2.3")
		t.Setenv(EnvDiscardStale, "true")
		t.Setenv(EnvCORSAllowedOrigins, "https://a.example.com, https://b.example.com,")

		cfg, err := FromEnv()

		require.NoError(t, err)
		assert.Equal(t, "case-7", cfg.CaseID)
		assert.Equal(t, "/viewer", cfg.BasePath)
		assert.Equal(t, 3000, cfg.Port)
		assert.Equal(t, "debug", cfg.LogLevel)
		assert.Equal(t, "json", cfg.LogFormat)
		assert.Equal(t, "prod", cfg.Environment)
		assert.Equal(t, "viewer", cfg.ServiceName)
		assert.Equal(t, "1.2.3", cfg.Version)
		assert.True(t, cfg.DiscardStale)
		assert.Equal(t, []string{"https://a.example.com", "https://b.example.com"}, cfg.CORSAllowedOrigins)
		assert.False(t, cfg.IsDevelopment())
	})

	t.Run("CLIENT_URL is required", func(t *testing.T) {
		clearEnvVars(t)

		cfg, err := FromEnv()

		require.Error(t, err)
		assert.Nil(t, cfg)
		assert.Contains(t, err.Error(), "CLIENT_URL: must be set")
	})

	t.Run("unparseable PORT", func(t *testing.T) {
		clearEnvVars(t)
		t.Setenv(EnvClientURL, "https://api.example.com")
		t.Setenv(EnvPort, "not-a-number")

		cfg, err := FromEnv()

		require.Error(t, err)
		assert.Nil(t, cfg)
		assert.Contains(t, err.Error(), MsgLoadFailed)
	})
}

func TestFromEnv_NormalizesBasePath(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"viewer/", "/viewer"},
		{"viewer", "/viewer"},
		{"/a//b/", "/a/b"},
		{"  ", "/"},
		{"/", "/"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			clearEnvVars(t)
			t.Setenv(EnvClientURL, "https://api.example.com/inventory")
			t.Setenv(EnvBasePath, tt.in)

			cfg, err := FromEnv()

			require.NoError(t, err)
			assert.Equal(t, tt.want, cfg.BasePath)
		})
	}
}

func TestFromEnv_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		key     string
		value   string
		wantMsg string
	}{
		{"relative client url", EnvClientURL, "/inventory", "CLIENT_URL: " + MsgInvalidURL},
		{"non-http client url", EnvClientURL, "ftp://example.com/inv", "CLIENT_URL: " + MsgInvalidURL},
		{"port zero", EnvPort, "0", "PORT: must be at least 1"},
		{"negative port", EnvPort, "-1", "PORT: must be at least 1"},
		{"port too large", EnvPort, "70000", "PORT: must be at most 65535"},
		{"unknown log level", EnvLogLevel, "verbose", "LOG_LEVEL: must be one of"},
		{"unknown log format", EnvLogFormat, "xml", "LOG_FORMAT: must be one of: text, json"},
		{"unknown environment", EnvEnvironment, "qa", "ENVIRONMENT: must be one of"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnvVars(t)
			t.Setenv(EnvClientURL, "https://api.example.com/inventory")
			t.Setenv(tt.key, tt.value)

			cfg, err := FromEnv()

			require.Error(t, err)
			assert.Nil(t, cfg)
			assert.Contains(t, err.Error(), MsgInvalidConf)
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

func TestLoad_EnvFile(t *testing.T) {
	t.Run("reads values from the file", func(t *testing.T) {
		clearEnvVars(t)
		path := filepath.Join(t.TempDir(), ".env")
		require.NoError(t, os.WriteFile(path, []byte("CLIENT_URL=https://file.example.com/inv\nCASE_ID=from-file\n"), 0o600))
		t.Cleanup(func() {
			_ = os.Unsetenv(EnvClientURL)
			_ = os.Unsetenv(EnvCaseID)
		})

		cfg, err := Load(path)

		require.NoError(t, err)
		assert.Equal(t, "https://file.example.com/inv", cfg.ClientURL)
		assert.Equal(t, "from-file", cfg.CaseID)
	})

	t.Run("environment wins over the file", func(t *testing.T) {
		clearEnvVars(t)
		t.Setenv(EnvClientURL, "https://env.example.com/inv")
		path := filepath.Join(t.TempDir(), ".env")
		require.NoError(t, os.WriteFile(path, []byte("CLIENT_URL=https://file.example.com/inv\n"), 0o600))

		cfg, err := Load(path)

		require.NoError(t, err)
		assert.Equal(t, "https://env.example.com/inv", cfg.ClientURL)
	})

	t.Run("missing file is ignored", func(t *testing.T) {
		clearEnvVars(t)
		t.Setenv(EnvClientURL, "https://env.example.com/inv")

		cfg, err := Load(filepath.Join(t.TempDir(), "does-not-exist.env"))

		require.NoError(t, err)
		assert.Equal(t, "https://env.example.com/inv", cfg.ClientURL)
	})
}
