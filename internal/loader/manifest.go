// Package loader performs the bulk translation step: it reads a model
// manifest, feeds each model through a translator, and assembles the
// deferred multi-asset descriptors the orchestration platform registers.
package loader

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/leapstack-labs/dagbridge/pkg/sqlmesh"
	"github.com/leapstack-labs/dagbridge/pkg/tableref"
)

// Manifest is the on-disk description of a SQLMesh project's models as
// exported for the bridge.
type Manifest struct {
	// Dialect is the engine adapter's SQL dialect.
	Dialect string `yaml:"dialect"`
	// Models lists every model in the project.
	Models []ManifestModel `yaml:"models"`
}

// ManifestModel is one model entry in the manifest.
type ManifestModel struct {
	FQN         string   `yaml:"fqn"`
	Description string   `yaml:"description,omitempty"`
	Tags        []string `yaml:"tags,omitempty"`
	Kinds       []string `yaml:"kinds,omitempty"`
	DependsOn   []string `yaml:"depends_on,omitempty"`
}

// ParseManifest decodes manifest YAML.
func ParseManifest(data []byte) (*Manifest, error) {
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to parse manifest: %w", err)
	}
	return &m, nil
}

// ReadManifest loads and decodes a manifest file.
func ReadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest: %w", err)
	}
	m, err := ParseManifest(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}

// ModelRecords converts manifest entries into engine model records.
func (m *Manifest) ModelRecords() []*sqlmesh.Model {
	return manifestModels(m.Models)
}

func manifestModels(entries []ManifestModel) []*sqlmesh.Model {
	models := make([]*sqlmesh.Model, 0, len(entries))
	for _, entry := range entries {
		models = append(models, &sqlmesh.Model{
			FQN:         entry.FQN,
			Name:        tableref.Parse(entry.FQN).Name,
			Description: entry.Description,
			Tags:        entry.Tags,
			Kinds:       entry.Kinds,
			DependsOn:   entry.DependsOn,
		})
	}
	return models
}
