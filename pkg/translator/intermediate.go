package translator

import (
	"sort"

	"github.com/leapstack-labs/dagbridge/pkg/asset"
)

// ConvertibleToAssetOut is a deferred output descriptor that resolves to
// a platform asset output on demand.
type ConvertibleToAssetOut interface {
	ToAssetOut(caps asset.Capabilities) asset.Out
}

// ConvertibleToAssetKey is a deferred dependency descriptor that resolves
// to a platform asset key on demand.
type ConvertibleToAssetKey interface {
	ToAssetKey() asset.Key
}

// IntermediateAssetOut captures everything needed to build a platform
// asset output without constructing it yet. Bulk loaders create many of
// these cheaply and cache them; resolution happens once, at registration
// time. Never mutated after construction.
type IntermediateAssetOut struct {
	// ModelKey is the internal key of the model producing this output.
	ModelKey string
	// AssetKey is the user string form of the output's asset key.
	AssetKey string
	// Tags are the asset tags, nil when the model has none.
	Tags map[string]string
	// IsRequired marks whether the output must be yielded on every run.
	IsRequired bool
	// GroupName is the asset group, empty for the platform default.
	GroupName string
	// Kinds are the kind labels shown on the asset node.
	Kinds []string
	// Extra carries additional platform parameters untouched.
	Extra map[string]any
}

// NewIntermediateAssetOut builds a descriptor with IsRequired=true.
// Note the translator factory CreateAssetOut defaults to false instead;
// both defaults are preserved as observed.
func NewIntermediateAssetOut(modelKey, assetKey string) *IntermediateAssetOut {
	return &IntermediateAssetOut{
		ModelKey:   modelKey,
		AssetKey:   assetKey,
		IsRequired: true,
	}
}

// OutOption sets an optional field on an IntermediateAssetOut at
// construction time.
type OutOption func(*IntermediateAssetOut)

// WithOutTags sets the asset tags.
func WithOutTags(tags map[string]string) OutOption {
	return func(o *IntermediateAssetOut) { o.Tags = tags }
}

// WithOutGroupName sets the asset group.
func WithOutGroupName(group string) OutOption {
	return func(o *IntermediateAssetOut) { o.GroupName = group }
}

// WithOutKinds sets the kind labels.
func WithOutKinds(kinds []string) OutOption {
	return func(o *IntermediateAssetOut) { o.Kinds = kinds }
}

// WithOutRequired sets the required flag.
func WithOutRequired(required bool) OutOption {
	return func(o *IntermediateAssetOut) { o.IsRequired = required }
}

// WithOutExtra sets additional platform parameters passed through
// untouched at resolution time.
func WithOutExtra(extra map[string]any) OutOption {
	return func(o *IntermediateAssetOut) { o.Extra = extra }
}

// ToAssetOut resolves the descriptor into a platform asset output. When
// the target platform version does not support kind labels, Kinds is
// omitted rather than passed; this is a compatibility fallback, not an
// error path.
func (o *IntermediateAssetOut) ToAssetOut(caps asset.Capabilities) asset.Out {
	kinds := o.Kinds
	if !caps.SupportsKinds {
		kinds = nil
	}

	return asset.Out{
		Key:        asset.FromUserString(o.AssetKey),
		Tags:       o.Tags,
		IsRequired: o.IsRequired,
		GroupName:  o.GroupName,
		Kinds:      kinds,
		Extra:      o.Extra,
	}
}

// IntermediateAssetDep defers construction of an external dependency's
// asset key.
type IntermediateAssetDep struct {
	Key string
}

// ToAssetKey resolves the stored user string into a platform asset key.
func (d *IntermediateAssetDep) ToAssetKey() asset.Key {
	return asset.FromUserString(d.Key)
}

// StringSet is a set of strings keyed for membership tests.
type StringSet map[string]struct{}

// NewStringSet builds a set from the given values.
func NewStringSet(values ...string) StringSet {
	s := make(StringSet, len(values))
	for _, v := range values {
		s[v] = struct{}{}
	}
	return s
}

// Add inserts a value into the set.
func (s StringSet) Add(value string) {
	s[value] = struct{}{}
}

// Contains reports membership.
func (s StringSet) Contains(value string) bool {
	_, ok := s[value]
	return ok
}

// Sorted returns the set's values in ascending order.
func (s StringSet) Sorted() []string {
	values := make([]string, 0, len(s))
	for v := range s {
		values = append(values, v)
	}
	sort.Strings(values)
	return values
}

// MultiAssetOptions describes one multi-asset unit: its output
// descriptors keyed by internal key, its external dependency edges in
// declaration order, and the intra-batch dependency edges between
// outputs. Descriptors are cached by callers; resolution methods build
// the final platform shapes at registration time.
type MultiAssetOptions struct {
	Outs              map[string]ConvertibleToAssetOut
	Deps              []ConvertibleToAssetKey
	InternalAssetDeps map[string]StringSet
}

// NewMultiAssetOptions creates an empty options aggregate.
func NewMultiAssetOptions() *MultiAssetOptions {
	return &MultiAssetOptions{
		Outs:              make(map[string]ConvertibleToAssetOut),
		InternalAssetDeps: make(map[string]StringSet),
	}
}

// ToAssetOuts resolves every output descriptor, preserving mapping keys.
func (m *MultiAssetOptions) ToAssetOuts(caps asset.Capabilities) map[string]asset.Out {
	outs := make(map[string]asset.Out, len(m.Outs))
	for key, out := range m.Outs {
		outs[key] = out.ToAssetOut(caps)
	}
	return outs
}

// ToAssetDeps resolves the external dependency descriptors in order.
func (m *MultiAssetOptions) ToAssetDeps() []asset.Key {
	keys := make([]asset.Key, 0, len(m.Deps))
	for _, dep := range m.Deps {
		keys = append(keys, dep.ToAssetKey())
	}
	return keys
}

// ToInternalAssetDeps resolves each output's dependency strings into
// asset keys. Keys within an output are sorted for determinism.
func (m *MultiAssetOptions) ToInternalAssetDeps() map[string][]asset.Key {
	deps := make(map[string][]asset.Key, len(m.InternalAssetDeps))
	for key, set := range m.InternalAssetDeps {
		keys := make([]asset.Key, 0, len(set))
		for _, dep := range set.Sorted() {
			keys = append(keys, asset.FromUserString(dep))
		}
		deps[key] = keys
	}
	return deps
}
