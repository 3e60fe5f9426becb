package commands

import (
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/leapstack-labs/dagbridge/internal/cli/output"
)

// NewKeysCommand creates the keys command.
func NewKeysCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "keys",
		Short: "Show the key translation for every model",
		Long: `For each model in the manifest, print the hierarchical asset key,
the asset group, and the internal key string used for intra-batch wiring.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runKeys(cmd)
		},
	}
	return cmd
}

// keyRow is the JSON shape for one model's key translation.
type keyRow struct {
	FQN         string `json:"fqn"`
	AssetKey    string `json:"asset_key"`
	GroupName   string `json:"group_name"`
	InternalKey string `json:"internal_key"`
	Dialect     string `json:"dialect"`
}

func runKeys(cmd *cobra.Command) error {
	cmdCtx := NewCommandContext(cmd)

	models, engCtx, err := cmdCtx.loadManifest()
	if err != nil {
		return err
	}

	tr := cmdCtx.Translator
	rows := make([]keyRow, 0, len(models))
	for _, model := range models {
		rows = append(rows, keyRow{
			FQN:         model.FQN,
			AssetKey:    tr.AssetKey(engCtx, model.FQN).String(),
			GroupName:   tr.GroupName(engCtx, model),
			InternalKey: tr.AssetKeyString(model.FQN),
			Dialect:     tr.ContextDialect(engCtx),
		})
	}

	r := cmdCtx.Renderer
	if r.EffectiveMode() == output.ModeJSON {
		return r.JSON(rows)
	}

	r.Header(1, "Key Translation")

	t := table.NewWriter()
	t.SetOutputMirror(r.Out())
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"FQN", "Asset Key", "Group", "Internal Key"})
	for _, row := range rows {
		t.AppendRow(table.Row{row.FQN, row.AssetKey, row.GroupName, row.InternalKey})
	}
	t.Render()
	return nil
}
