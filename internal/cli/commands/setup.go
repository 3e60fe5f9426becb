// Package commands implements the dagbridge CLI commands.
package commands

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/leapstack-labs/dagbridge/internal/cli/config"
	"github.com/leapstack-labs/dagbridge/internal/cli/output"
	"github.com/leapstack-labs/dagbridge/internal/loader"
	"github.com/leapstack-labs/dagbridge/pkg/asset"
	"github.com/leapstack-labs/dagbridge/pkg/sqlmesh"
	"github.com/leapstack-labs/dagbridge/pkg/translator"
)

// CommandContext holds common dependencies for CLI commands.
type CommandContext struct {
	Cfg        *config.Config
	Logger     *slog.Logger
	Renderer   *output.Renderer
	Translator translator.Translator
	Caps       asset.Capabilities
}

// NewCommandContext creates a CommandContext from the command's
// configuration and context.
func NewCommandContext(cmd *cobra.Command) *CommandContext {
	cfg := getConfig()
	logger := config.GetLogger(cmd.Context())

	mode := output.Mode(cfg.Output)
	r := output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), mode)

	caps := asset.DefaultCapabilities()
	if cfg.NoKinds {
		caps.SupportsKinds = false
	}

	return &CommandContext{
		Cfg:        cfg,
		Logger:     logger,
		Renderer:   r,
		Translator: translator.New(),
		Caps:       caps,
	}
}

// getConfig returns the current configuration, falling back to defaults
// when no config has been loaded (e.g. in tests).
func getConfig() *config.Config {
	if cfg := config.GetCurrentConfig(); cfg != nil {
		return cfg
	}
	return &config.Config{
		Manifest: config.DefaultManifest,
		Dialect:  config.DefaultDialect,
		Output:   config.DefaultOutput,
	}
}

// loadManifest reads the configured manifest and returns the model
// records plus the engine context derived from the manifest dialect.
func (c *CommandContext) loadManifest() ([]*sqlmesh.Model, sqlmesh.Context, error) {
	manifest, err := loader.ReadManifest(c.Cfg.Manifest)
	if err != nil {
		return nil, nil, err
	}

	dialect := manifest.Dialect
	if c.Cfg.Dialect != "" {
		dialect = c.Cfg.Dialect
	}

	return manifest.ModelRecords(), sqlmesh.StaticContext{SQLDialect: dialect}, nil
}

// newLoader builds a Loader from the command's configuration.
func (c *CommandContext) newLoader() *loader.Loader {
	return loader.New(c.Translator, loader.Options{
		Strict: c.Cfg.Strict,
		Logger: c.Logger,
	})
}
