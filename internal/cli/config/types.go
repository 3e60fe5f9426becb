// Package config provides configuration management for the dagbridge CLI.
// Configuration is layered: defaults, then a dagbridge.yaml project file,
// then DAGBRIDGE_ environment variables, then CLI flags.
package config

// Config holds all CLI configuration options.
type Config struct {
	// Manifest is the path to the model manifest file.
	Manifest string `koanf:"manifest"`
	// Dialect overrides the manifest's engine dialect.
	Dialect string `koanf:"dialect"`
	// Output selects the output format (auto|text|markdown|json).
	Output string `koanf:"output"`
	// Strict aborts loads on malformed FQNs or dependency cycles.
	Strict bool `koanf:"strict"`
	// NoKinds drops kind labels for platform versions without support.
	NoKinds bool `koanf:"no_kinds"`
	// Verbose enables debug logging.
	Verbose bool `koanf:"verbose"`
}

// Default configuration values.
const (
	DefaultManifest = "dagbridge_manifest.yaml"
	DefaultDialect  = "duckdb"
	DefaultOutput   = "auto" // Auto-detect: TTY=text, non-TTY=markdown
)
