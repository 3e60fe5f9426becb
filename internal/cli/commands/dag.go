package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/leapstack-labs/dagbridge/internal/cli/output"
	"github.com/leapstack-labs/dagbridge/internal/dag"
)

// NewDAGCommand creates the dag command.
func NewDAGCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dag",
		Short: "Show the translated asset dependency graph",
		Long: `Display the dependency graph of translated assets, grouped by
execution level. Level 0 holds assets with no upstream dependencies.`,
		Example: `  # Show the DAG
  dagbridge dag

  # Output as JSON
  dagbridge dag --output json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runDAG(cmd)
		},
	}
	return cmd
}

func runDAG(cmd *cobra.Command) error {
	cmdCtx := NewCommandContext(cmd)

	models, engCtx, err := cmdCtx.loadManifest()
	if err != nil {
		return err
	}

	_, graph, err := cmdCtx.newLoader().Load(engCtx, models)
	if err != nil {
		return fmt.Errorf("failed to load models: %w", err)
	}

	levels, err := graph.ExecutionLevels()
	if err != nil {
		return fmt.Errorf("failed to get execution levels: %w", err)
	}

	r := cmdCtx.Renderer
	if r.EffectiveMode() == output.ModeJSON {
		return r.JSON(map[string]any{
			"levels": levels,
			"nodes":  graph.NodeCount(),
			"edges":  graph.EdgeCount(),
		})
	}
	return dagText(r, graph, levels)
}

func dagText(r *output.Renderer, graph *dag.Graph, levels [][]string) error {
	styles := r.Styles()

	r.Header(1, "Asset Dependency Graph")

	for i, level := range levels {
		r.Println(styles.Header2.Render(fmt.Sprintf("Level %d:", i)))
		for _, id := range level {
			r.Printf("  %s\n", styles.ModelPath.Render(id))

			if deps := graph.Parents(id); len(deps) > 0 {
				r.Printf("    depends on: %s\n", styles.Muted.Render(strings.Join(deps, ", ")))
			}
			if children := graph.Children(id); len(children) > 0 {
				r.Printf("    used by: %s\n", styles.Muted.Render(strings.Join(children, ", ")))
			}
		}
		r.Println()
	}

	r.Printf("Total: %d assets, %d dependencies\n", graph.NodeCount(), graph.EdgeCount())
	return nil
}
