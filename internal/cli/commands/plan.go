package commands

import (
	"fmt"
	"sort"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/leapstack-labs/dagbridge/internal/cli/output"
	"github.com/leapstack-labs/dagbridge/internal/loader"
)

// NewPlanCommand creates the plan command.
func NewPlanCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Translate the manifest into asset declarations",
		Long: `Load the model manifest, translate every model into its asset
declaration, and print the resulting multi-asset plan: outputs, external
dependencies, and internal dependency edges.

Output adapts to environment:
  - Terminal: Styled output with colors
  - Piped/Scripted: Markdown format (agent-friendly)`,
		Example: `  # Show the asset plan
  dagbridge plan

  # Output as JSON for the registration pipeline
  dagbridge plan --output json

  # Target an older platform version without kind labels
  dagbridge plan --no-kinds`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runPlan(cmd)
		},
	}
	return cmd
}

func runPlan(cmd *cobra.Command) error {
	cmdCtx := NewCommandContext(cmd)

	models, engCtx, err := cmdCtx.loadManifest()
	if err != nil {
		return err
	}

	opts, _, err := cmdCtx.newLoader().Load(engCtx, models)
	if err != nil {
		return fmt.Errorf("failed to load models: %w", err)
	}

	resolved := loader.Resolve(opts, cmdCtx.Caps)

	r := cmdCtx.Renderer
	switch r.EffectiveMode() {
	case output.ModeJSON:
		return planJSON(r, resolved)
	case output.ModeMarkdown:
		return planMarkdown(r, resolved)
	default:
		return planText(r, resolved)
	}
}

// planOut is the JSON shape for one resolved output.
type planOut struct {
	AssetKey     string            `json:"asset_key"`
	GroupName    string            `json:"group_name,omitempty"`
	IsRequired   bool              `json:"is_required"`
	Kinds        []string          `json:"kinds,omitempty"`
	Tags         map[string]string `json:"tags,omitempty"`
	InternalDeps []string          `json:"internal_deps,omitempty"`
}

type planPayload struct {
	Outs map[string]planOut `json:"outs"`
	Deps []string           `json:"deps"`
}

func buildPayload(resolved *loader.Resolved) planPayload {
	payload := planPayload{
		Outs: make(map[string]planOut, len(resolved.Outs)),
		Deps: make([]string, 0, len(resolved.Deps)),
	}

	for key, out := range resolved.Outs {
		po := planOut{
			AssetKey:   out.Key.String(),
			GroupName:  out.GroupName,
			IsRequired: out.IsRequired,
			Kinds:      out.Kinds,
			Tags:       out.Tags,
		}
		for _, dep := range resolved.InternalDeps[key] {
			po.InternalDeps = append(po.InternalDeps, dep.String())
		}
		payload.Outs[key] = po
	}
	for _, dep := range resolved.Deps {
		payload.Deps = append(payload.Deps, dep.String())
	}
	return payload
}

func planJSON(r *output.Renderer, resolved *loader.Resolved) error {
	return r.JSON(buildPayload(resolved))
}

func planText(r *output.Renderer, resolved *loader.Resolved) error {
	styles := r.Styles()

	r.Header(1, "Asset Plan")

	t := table.NewWriter()
	t.SetOutputMirror(r.Out())
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Model Key", "Asset Key", "Group", "Required", "Kinds", "Tags"})

	for _, key := range sortedOutKeys(resolved) {
		out := resolved.Outs[key]
		t.AppendRow(table.Row{
			key,
			styles.AssetKey.Render(out.Key.String()),
			out.GroupName,
			out.IsRequired,
			strings.Join(out.Kinds, ", "),
			strings.Join(tagNames(out.Tags), ", "),
		})
	}
	t.Render()

	if len(resolved.Deps) > 0 {
		r.Println()
		r.Header(2, "External Dependencies")
		for _, dep := range resolved.Deps {
			r.Printf("  %s\n", styles.ModelPath.Render(dep.String()))
		}
	}
	return nil
}

func planMarkdown(r *output.Renderer, resolved *loader.Resolved) error {
	r.Header(1, "Asset Plan")

	r.Println("| Model Key | Asset Key | Group | Required | Kinds |")
	r.Println("|---|---|---|---|---|")
	for _, key := range sortedOutKeys(resolved) {
		out := resolved.Outs[key]
		r.Printf("| %s | %s | %s | %t | %s |\n",
			key, out.Key.String(), out.GroupName, out.IsRequired,
			strings.Join(out.Kinds, ", "))
	}

	if len(resolved.Deps) > 0 {
		r.Println()
		r.Header(2, "External Dependencies")
		for _, dep := range resolved.Deps {
			r.Printf("- %s\n", dep.String())
		}
	}
	return nil
}

func sortedOutKeys(resolved *loader.Resolved) []string {
	keys := make([]string, 0, len(resolved.Outs))
	for key := range resolved.Outs {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

func tagNames(tags map[string]string) []string {
	names := make([]string, 0, len(tags))
	for name := range tags {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
