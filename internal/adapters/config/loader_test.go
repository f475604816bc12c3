package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/dpms/internal/adapters/config"
	"go.trai.ch/dpms/internal/core/domain"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, domain.ConfigFileName)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoader_Load(t *testing.T) {
	t.Run("missing file yields defaults", func(t *testing.T) {
		cfg, err := config.NewLoader().Load(filepath.Join(t.TempDir(), domain.ConfigFileName))
		require.NoError(t, err)
		assert.Equal(t, domain.DefaultConfig(), cfg)
	})

	t.Run("relative mirror resolved against config dir", func(t *testing.T) {
		path := writeConfig(t, "mirror: ./mirror\nlog:\n  format: json\n")

		cfg, err := config.NewLoader().Load(path)
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(filepath.Dir(path), "mirror"), cfg.MirrorPath)
		assert.Equal(t, domain.LogFormatJSON, cfg.LogFormat)
	})

	t.Run("absolute mirror kept", func(t *testing.T) {
		path := writeConfig(t, "mirror: /srv/dpms/mirror/\n")

		cfg, err := config.NewLoader().Load(path)
		require.NoError(t, err)
		assert.Equal(t, "/srv/dpms/mirror", cfg.MirrorPath)
		assert.Equal(t, domain.LogFormatPretty, cfg.LogFormat)
	})

	t.Run("empty file yields defaults", func(t *testing.T) {
		cfg, err := config.NewLoader().Load(writeConfig(t, ""))
		require.NoError(t, err)
		assert.Equal(t, domain.DefaultConfig(), cfg)
	})

	t.Run("invalid yaml", func(t *testing.T) {
		_, err := config.NewLoader().Load(writeConfig(t, "mirror: [unterminated\n"))
		require.ErrorIs(t, err, domain.ErrConfigParseFailed)
		assert.ErrorContains(t, err, "failed to parse config file")
	})

	t.Run("invalid log format", func(t *testing.T) {
		_, err := config.NewLoader().Load(writeConfig(t, "log:\n  format: xml\n"))
		require.ErrorIs(t, err, domain.ErrInvalidLogFormat)
		assert.ErrorContains(t, err, `unknown log format "xml"`)
	})

	t.Run("unreadable path", func(t *testing.T) {
		_, err := config.NewLoader().Load(t.TempDir())
		require.ErrorIs(t, err, domain.ErrConfigReadFailed)
		assert.ErrorContains(t, err, "failed to read config file")
	})
}
