package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gen.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
output:
  dir: out
date_format: iso
parallelism: 2
logging:
  level: debug
`), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "out", cfg.Output.Dir)
	assert.Equal(t, "iso", cfg.DateFormat)
	assert.Equal(t, 2, cfg.Parallelism)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestLoad_Env(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("DATAMODEL_GEN_OUTPUT_DIR", "/tmp/models")
	t.Setenv("DATAMODEL_GEN_PARALLELISM", "8")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "/tmp/models", cfg.Output.Dir)
	assert.Equal(t, 8, cfg.Parallelism)
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorIs(t, err, ErrConfigNotFound)

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("parallelism: 0\n"), 0o600))

	_, err = Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parallelism")

	require.NoError(t, os.WriteFile(path, []byte("date_format: rfc\n"), 0o600))

	_, err = Load(path)
	require.Error(t, err)
}
