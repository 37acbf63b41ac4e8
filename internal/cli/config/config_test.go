package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	ResetConfig()

	cfg, err := LoadConfig("", nil)
	require.NoError(t, err)

	assert.Equal(t, DefaultOutDir, cfg.OutDir)
	assert.Equal(t, DefaultSeed, cfg.Seed)
	assert.Equal(t, DefaultOutput, cfg.OutputFormat)
	assert.False(t, cfg.Verbose)
	assert.Empty(t, GetConfigFileUsed())
}

func TestLoadConfig_File(t *testing.T) {
	ResetConfig()

	path := filepath.Join(t.TempDir(), "touriq.yaml")
	require.NoError(t, os.WriteFile(path, []byte("out_dir: custom_out\nseed: 7\nverbose: true\n"), 0o644))

	cfg, err := LoadConfig(path, nil)
	require.NoError(t, err)

	assert.Equal(t, "custom_out", cfg.OutDir)
	assert.Equal(t, int64(7), cfg.Seed)
	assert.True(t, cfg.Verbose)
	assert.Equal(t, path, GetConfigFileUsed())
	assert.Equal(t, cfg, GetCurrentConfig())
}

func TestLoadConfig_EnvOverridesFile(t *testing.T) {
	ResetConfig()

	path := filepath.Join(t.TempDir(), "touriq.yaml")
	require.NoError(t, os.WriteFile(path, []byte("out_dir: from_file\nseed: 7\n"), 0o644))

	t.Setenv("TOURIQ_OUT_DIR", "from_env")

	cfg, err := LoadConfig(path, nil)
	require.NoError(t, err)

	assert.Equal(t, "from_env", cfg.OutDir)
	assert.Equal(t, int64(7), cfg.Seed)
}

func TestLoadConfig_FlagsOverrideEnv(t *testing.T) {
	ResetConfig()

	t.Setenv("TOURIQ_SEED", "7")
	t.Setenv("TOURIQ_OUTPUT", "markdown")

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.Int64("seed", DefaultSeed, "")
	flags.String("out-dir", DefaultOutDir, "")
	require.NoError(t, flags.Parse([]string{"--seed", "99"}))

	cfg, err := LoadConfig("", flags)
	require.NoError(t, err)

	assert.Equal(t, int64(99), cfg.Seed)
	// Env value survives because the flag was not explicitly set.
	assert.Equal(t, "markdown", cfg.OutputFormat)
	assert.Equal(t, DefaultOutDir, cfg.OutDir)
}

func TestLoadConfig_KebabCaseFlagMapsToSnakeCaseKey(t *testing.T) {
	ResetConfig()

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("out-dir", DefaultOutDir, "")
	require.NoError(t, flags.Parse([]string{"--out-dir", "flag_out"}))

	cfg, err := LoadConfig("", flags)
	require.NoError(t, err)
	assert.Equal(t, "flag_out", cfg.OutDir)
}

func TestLoadConfig_BadFile(t *testing.T) {
	ResetConfig()

	path := filepath.Join(t.TempDir(), "touriq.yaml")
	require.NoError(t, os.WriteFile(path, []byte("out_dir: [unclosed\n"), 0o644))

	_, err := LoadConfig(path, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error reading config file")
}
