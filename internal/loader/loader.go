package loader

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/leapstack-labs/dagbridge/internal/dag"
	"github.com/leapstack-labs/dagbridge/pkg/asset"
	"github.com/leapstack-labs/dagbridge/pkg/sqlmesh"
	"github.com/leapstack-labs/dagbridge/pkg/translator"
)

// Options configures a Loader.
type Options struct {
	// Strict aborts the load on malformed FQNs or dependency cycles.
	// When false, offending models are skipped with a warning.
	Strict bool
	// Logger receives per-load progress records. Nil discards.
	Logger *slog.Logger
}

// Loader runs the batch translation of a model list into a single
// multi-asset declaration. It owns the descriptors it builds; callers
// cache the result and resolve it at registration time.
type Loader struct {
	translator translator.Translator
	strict     bool
	logger     *slog.Logger
}

// New creates a Loader around the given translator.
func New(tr translator.Translator, opts Options) *Loader {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Loader{
		translator: tr,
		strict:     opts.Strict,
		logger:     logger,
	}
}

// Load translates models into one MultiAssetOptions: an output descriptor
// per model, internal dependency edges for upstreams inside the batch,
// and deferred asset keys for external upstreams. Also returns the
// dependency graph built over the batch's internal keys.
func (l *Loader) Load(ctx sqlmesh.Context, models []*sqlmesh.Model) (*translator.MultiAssetOptions, *dag.Graph, error) {
	loadID := uuid.New().String()
	l.logger.Info("loading models", "load_id", loadID, "count", len(models))

	// First pass: index the batch by FQN so dependency edges can be
	// classified as internal (another model in the batch) or external.
	internalKeys := make(map[string]string, len(models))
	kept := make([]*sqlmesh.Model, 0, len(models))
	for _, model := range models {
		if _, err := sqlmesh.ParseFQN(model.FQN); err != nil {
			if l.strict {
				return nil, nil, fmt.Errorf("load %s: %w", loadID, err)
			}
			l.logger.Warn("skipping model with malformed fqn",
				"load_id", loadID, "fqn", model.FQN)
			continue
		}
		internalKeys[normalizeFQN(model.FQN)] = l.translator.AssetKeyString(model.FQN)
		kept = append(kept, model)
	}

	opts := translator.NewMultiAssetOptions()
	graph := dag.New()
	externalSeen := translator.NewStringSet()

	for _, model := range kept {
		modelKey := l.translator.AssetKeyString(model.FQN)
		assetKey := l.translator.AssetKey(ctx, model.FQN)

		opts.Outs[modelKey] = l.translator.CreateAssetOut(
			modelKey,
			assetKey.String(),
			translator.WithOutTags(l.translator.Tags(ctx, model)),
			translator.WithOutGroupName(l.translator.GroupName(ctx, model)),
			translator.WithOutKinds(model.Kinds),
		)
		graph.AddNode(modelKey, assetKey)
	}

	for _, model := range kept {
		modelKey := l.translator.AssetKeyString(model.FQN)

		for _, depFQN := range model.DependsOn {
			depKey := l.translator.AssetKey(ctx, depFQN).String()

			if upstreamKey, ok := internalKeys[normalizeFQN(depFQN)]; ok {
				if _, exists := opts.InternalAssetDeps[modelKey]; !exists {
					opts.InternalAssetDeps[modelKey] = translator.NewStringSet()
				}
				opts.InternalAssetDeps[modelKey].Add(depKey)

				if err := graph.AddEdge(upstreamKey, modelKey); err != nil {
					return nil, nil, fmt.Errorf("load %s: %w", loadID, err)
				}
				continue
			}

			// External upstream: declared once per batch, order preserved.
			if !externalSeen.Contains(depKey) {
				externalSeen.Add(depKey)
				opts.Deps = append(opts.Deps, l.translator.CreateAssetDep(depKey))
			}
		}
	}

	if l.strict {
		if hasCycle, cyclePath := graph.HasCycle(); hasCycle {
			return nil, nil, fmt.Errorf("load %s: dependency cycle detected: %v", loadID, cyclePath)
		}
	}

	l.logger.Info("load complete",
		"load_id", loadID,
		"outputs", len(opts.Outs),
		"external_deps", len(opts.Deps))

	return opts, graph, nil
}

// Resolved is the fully constructed registration payload for one load.
type Resolved struct {
	Outs         map[string]asset.Out
	Deps         []asset.Key
	InternalDeps map[string][]asset.Key
}

// Resolve materializes the deferred descriptors into platform shapes.
func Resolve(opts *translator.MultiAssetOptions, caps asset.Capabilities) *Resolved {
	return &Resolved{
		Outs:         opts.ToAssetOuts(caps),
		Deps:         opts.ToAssetDeps(),
		InternalDeps: opts.ToInternalAssetDeps(),
	}
}

// normalizeFQN strips quoting so dependency references match model FQNs
// regardless of quoting style.
func normalizeFQN(fqn string) string {
	parts := strings.Split(fqn, ".")
	for i, part := range parts {
		parts[i] = strings.Trim(part, "`'\"")
	}
	return strings.Join(parts, ".")
}
