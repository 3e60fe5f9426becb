package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	ResetConfig()
	t.Cleanup(ResetConfig)

	cfg, err := LoadConfig("", nil)
	require.NoError(t, err)

	assert.Equal(t, DefaultManifest, cfg.Manifest)
	assert.Equal(t, DefaultDialect, cfg.Dialect)
	assert.Equal(t, DefaultOutput, cfg.Output)
	assert.False(t, cfg.Strict)
	assert.False(t, cfg.NoKinds)
	assert.False(t, cfg.Verbose)
}

func TestLoadConfig_File(t *testing.T) {
	ResetConfig()
	t.Cleanup(ResetConfig)

	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "dagbridge.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("manifest: custom.yaml\nstrict: true\n"), 0o600))

	cfg, err := LoadConfig(cfgPath, nil)
	require.NoError(t, err)

	assert.Equal(t, "custom.yaml", cfg.Manifest)
	assert.True(t, cfg.Strict)
	assert.Equal(t, cfgPath, GetConfigFileUsed())
}

func TestLoadConfig_EnvOverridesFile(t *testing.T) {
	ResetConfig()
	t.Cleanup(ResetConfig)

	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "dagbridge.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("dialect: duckdb\n"), 0o600))

	t.Setenv("DAGBRIDGE_DIALECT", "postgres")

	cfg, err := LoadConfig(cfgPath, nil)
	require.NoError(t, err)
	assert.Equal(t, "postgres", cfg.Dialect)
}

func TestLoadConfig_FlagsOverrideEnv(t *testing.T) {
	ResetConfig()
	t.Cleanup(ResetConfig)

	t.Setenv("DAGBRIDGE_OUTPUT", "markdown")

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("output", "", "")
	flags.Bool("no-kinds", false, "")
	require.NoError(t, flags.Parse([]string{"--output=json", "--no-kinds"}))

	cfg, err := LoadConfig("", flags)
	require.NoError(t, err)

	assert.Equal(t, "json", cfg.Output)
	// Kebab-case flags map onto snake_case config keys.
	assert.True(t, cfg.NoKinds)
}

func TestGetLogger_Fallback(t *testing.T) {
	logger := GetLogger(context.Background())
	require.NotNil(t, logger)
}
