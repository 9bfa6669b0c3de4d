package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mouse-blink/cstyle/internal/domain/detectors"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	require.NoError(t, cfg.Validate())
	assert.Equal(t, "ctags", cfg.Ctags)
	assert.Equal(t, 0, cfg.Jobs)
	assert.Equal(t, detectors.DefaultThresholds(), cfg.DetectorThresholds())
}

func TestDecode(t *testing.T) {
	t.Run("partial file keeps defaults", func(t *testing.T) {
		cfg, err := Decode([]byte("thresholds:\n  long_line: 120\njobs: 2\n"))
		require.NoError(t, err)

		assert.Equal(t, 120, cfg.Thresholds.LongLine)
		assert.Equal(t, 50, cfg.Thresholds.MaxFunctionLength)
		assert.Equal(t, 35, cfg.Thresholds.MaxMainLength)
		assert.Equal(t, 2, cfg.Jobs)
		assert.Equal(t, "ctags", cfg.Ctags)
	})

	t.Run("empty document", func(t *testing.T) {
		cfg, err := Decode(nil)
		require.NoError(t, err)
		assert.Equal(t, Default(), cfg)
	})

	t.Run("unknown keys are rejected", func(t *testing.T) {
		_, err := Decode([]byte("thresholds:\n  line_length: 80\n"))
		assert.ErrorContains(t, err, "decode config")
	})

	t.Run("non positive thresholds are rejected", func(t *testing.T) {
		_, err := Decode([]byte("thresholds:\n  comment_gap: 0\n"))
		assert.ErrorContains(t, err, "comment_gap must be positive, got 0")
	})

	t.Run("negative jobs are rejected", func(t *testing.T) {
		_, err := Decode([]byte("jobs: -1\n"))
		assert.ErrorContains(t, err, "jobs must not be negative")
	})

	t.Run("empty ctags is rejected", func(t *testing.T) {
		_, err := Decode([]byte("ctags: \"\"\n"))
		assert.ErrorContains(t, err, "ctags must not be empty")
	})
}

func TestLoad(t *testing.T) {
	t.Run("empty path returns defaults", func(t *testing.T) {
		cfg, err := Load("")
		require.NoError(t, err)
		assert.Equal(t, Default(), cfg)
	})

	t.Run("reads file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "cstyle.yaml")
		require.NoError(t, os.WriteFile(path, []byte("ctags: /opt/bin/uctags\nthresholds:\n  max_arguments: 4\n"), 0o600))

		cfg, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, "/opt/bin/uctags", cfg.Ctags)
		assert.Equal(t, 4, cfg.DetectorThresholds().MaxArguments)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
		assert.ErrorContains(t, err, "read config file")
	})

	t.Run("invalid file names the path", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bad.yaml")
		require.NoError(t, os.WriteFile(path, []byte("jobs: -3\n"), 0o600))

		_, err := Load(path)
		assert.ErrorContains(t, err, path)
	})
}
