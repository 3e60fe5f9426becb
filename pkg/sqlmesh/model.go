// Package sqlmesh defines the shapes this bridge consumes from a SQLMesh
// project: model metadata records, the engine context, and fully qualified
// name parsing. The types here are plain values with no behavior beyond
// identifier decomposition; the engine itself is an external collaborator.
package sqlmesh

// Model is the metadata record for a single SQL model as supplied by the
// transformation engine. Fields are populated by the caller (typically a
// manifest loader); the bridge never mutates a Model after construction.
type Model struct {
	// FQN is the fully qualified name, e.g. "catalog.schema.table".
	FQN string
	// Name is the unqualified model name (last FQN component).
	Name string
	// Description is a human-readable description of the model.
	Description string
	// Tags are metadata labels attached to the model.
	Tags []string
	// Kinds are storage/compute kind labels (e.g. "duckdb", "view").
	Kinds []string
	// DependsOn lists the FQNs of upstream models and sources.
	DependsOn []string
}

// Context exposes the subset of the SQLMesh context the bridge reads.
type Context interface {
	// Dialect returns the SQL dialect configured on the engine adapter,
	// e.g. "duckdb" or "postgres".
	Dialect() string
}

// StaticContext is a Context with a fixed dialect. It stands in for a live
// engine context when translating from recorded metadata.
type StaticContext struct {
	SQLDialect string
}

// Dialect returns the configured dialect name.
func (c StaticContext) Dialect() string {
	return c.SQLDialect
}

// ModelDep is a reference to an upstream model. The resolved Model is
// optional; dependency edges only need the FQN.
type ModelDep struct {
	FQN   string
	Model *Model
}

// ParseFQN decomposes the dependency's FQN into its structured form.
func (d ModelDep) ParseFQN() (ParsedFQN, error) {
	return ParseFQN(d.FQN)
}
