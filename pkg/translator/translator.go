// Package translator converts SQLMesh model metadata into the
// orchestration platform's asset-graph shapes: hierarchical asset keys,
// group names, tags, and deferred output/dependency descriptors.
//
// The Default translator implements the standard naming policy. Individual
// rules are overridable through options, so a project can change, say, the
// grouping rule without touching key generation. Every method is a pure
// function of its inputs; translators hold no mutable state and are safe
// for concurrent use.
package translator

import (
	"strings"

	"github.com/leapstack-labs/dagbridge/pkg/asset"
	"github.com/leapstack-labs/dagbridge/pkg/sqlmesh"
	"github.com/leapstack-labs/dagbridge/pkg/tableref"
)

// InternalKeyPrefix prefixes every internal asset key string. Internal
// keys wire outputs to dependencies within a batch and never appear in
// user-facing asset keys.
const InternalKeyPrefix = "sqlmesh__"

// Translator maps SQLMesh concepts onto platform concepts. Implementations
// must be pure: no I/O and no mutation of receiver state.
type Translator interface {
	// AssetKeyName decomposes an FQN into ordered asset key components
	// [catalog, schema, name].
	AssetKeyName(fqn string) []string

	// AssetKey returns the hierarchical asset key for a model FQN.
	AssetKey(ctx sqlmesh.Context, fqn string) asset.Key

	// GroupName returns the asset group for a model. The default policy
	// groups by the schema component of the asset key.
	GroupName(ctx sqlmesh.Context, model *sqlmesh.Model) string

	// ContextDialect returns the SQL dialect configured on the context.
	ContextDialect(ctx sqlmesh.Context) string

	// Tags maps model tags onto platform asset tags.
	Tags(ctx sqlmesh.Context, model *sqlmesh.Model) map[string]string

	// AssetKeyString returns the flat internal identifier for an FQN.
	AssetKeyString(fqn string) string

	// CreateAssetDep builds a deferred external dependency descriptor.
	CreateAssetDep(key string) ConvertibleToAssetKey

	// CreateAssetOut builds a deferred output descriptor.
	CreateAssetOut(modelKey, assetKey string, opts ...OutOption) ConvertibleToAssetOut
}

// Default is the standard translation policy. The zero value is usable;
// New applies rule overrides.
type Default struct {
	keyNameFunc   func(fqn string) []string
	groupNameFunc func(ctx sqlmesh.Context, model *sqlmesh.Model) string
	tagsFunc      func(ctx sqlmesh.Context, model *sqlmesh.Model) map[string]string
}

// Option overrides one rule of the Default translator.
type Option func(*Default)

// WithKeyName replaces the FQN-to-key-components rule. The override also
// feeds the default grouping rule and asset key construction.
func WithKeyName(fn func(fqn string) []string) Option {
	return func(d *Default) { d.keyNameFunc = fn }
}

// WithGroupName replaces the grouping rule.
func WithGroupName(fn func(ctx sqlmesh.Context, model *sqlmesh.Model) string) Option {
	return func(d *Default) { d.groupNameFunc = fn }
}

// WithTags replaces the tag mapping rule.
func WithTags(fn func(ctx sqlmesh.Context, model *sqlmesh.Model) map[string]string) Option {
	return func(d *Default) { d.tagsFunc = fn }
}

// New creates a Default translator with the given rule overrides.
func New(opts ...Option) *Default {
	d := &Default{}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// AssetKeyName parses the FQN as a table reference and returns
// [catalog, schema, name].
func (d *Default) AssetKeyName(fqn string) []string {
	if d.keyNameFunc != nil {
		return d.keyNameFunc(fqn)
	}
	table := tableref.Parse(fqn)
	return []string{table.Catalog, table.DB, table.Name}
}

// AssetKey wraps AssetKeyName into the platform key type.
func (d *Default) AssetKey(_ sqlmesh.Context, fqn string) asset.Key {
	return asset.NewKey(d.AssetKeyName(fqn)...)
}

// GroupName returns the second-to-last asset key component, i.e. the
// schema the model lives in.
func (d *Default) GroupName(ctx sqlmesh.Context, model *sqlmesh.Model) string {
	if d.groupNameFunc != nil {
		return d.groupNameFunc(ctx, model)
	}
	path := d.AssetKeyName(model.FQN)
	return path[len(path)-2]
}

// ContextDialect returns the dialect configured on the engine context.
func (d *Default) ContextDialect(ctx sqlmesh.Context) string {
	return ctx.Dialect()
}

// Tags maps every model tag to an empty string value. The platform UI
// renders empty-valued tags as plain labels instead of key:value pairs;
// source tag values are intentionally discarded.
func (d *Default) Tags(ctx sqlmesh.Context, model *sqlmesh.Model) map[string]string {
	if d.tagsFunc != nil {
		return d.tagsFunc(ctx, model)
	}
	tags := make(map[string]string, len(model.Tags))
	for _, tag := range model.Tags {
		tags[tag] = ""
	}
	return tags
}

// AssetKeyString builds the flat internal identifier
// "sqlmesh__<catalog>_<schema>_<name>". The result contains only
// alphanumeric characters and underscores, so it is safe to use as a
// mapping key or generated symbol. It must stay stable across calls for
// the same FQN: outputs and dependencies declared separately match up
// through this string.
func (d *Default) AssetKeyString(fqn string) string {
	name := strings.Join(d.AssetKeyName(fqn), "_")
	return InternalKeyPrefix + sanitizeIdentifier(name)
}

// CreateAssetDep returns a deferred dependency descriptor for the key.
func (d *Default) CreateAssetDep(key string) ConvertibleToAssetKey {
	return &IntermediateAssetDep{Key: key}
}

// CreateAssetOut returns a deferred output descriptor. Unlike
// NewIntermediateAssetOut, outputs created through this factory default
// to IsRequired=false unless WithOutRequired overrides it. Both defaults
// are long-standing observed behavior; do not unify them.
func (d *Default) CreateAssetOut(modelKey, assetKey string, opts ...OutOption) ConvertibleToAssetOut {
	out := &IntermediateAssetOut{
		ModelKey:   modelKey,
		AssetKey:   assetKey,
		IsRequired: false,
	}
	for _, opt := range opts {
		opt(out)
	}
	return out
}

// sanitizeIdentifier replaces every character outside [A-Za-z0-9_] with
// an underscore.
func sanitizeIdentifier(s string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_':
			return r
		default:
			return '_'
		}
	}, s)
}
