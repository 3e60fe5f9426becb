package translator

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/dagbridge/pkg/asset"
	"github.com/leapstack-labs/dagbridge/pkg/sqlmesh"
)

func TestDefault_AssetKeyName(t *testing.T) {
	tr := New()

	tests := []struct {
		name string
		fqn  string
		want []string
	}{
		{"three part", "warehouse.staging.customers", []string{"warehouse", "staging", "customers"}},
		{"quoted", `"warehouse"."staging"."customers"`, []string{"warehouse", "staging", "customers"}},
		{"two part has empty catalog", "staging.customers", []string{"", "staging", "customers"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tr.AssetKeyName(tt.fqn))
		})
	}
}

func TestDefault_AssetKey(t *testing.T) {
	tr := New()
	ctx := sqlmesh.StaticContext{SQLDialect: "duckdb"}

	key := tr.AssetKey(ctx, "warehouse.staging.customers")
	assert.True(t, key.Equal(asset.NewKey("warehouse", "staging", "customers")))
}

func TestDefault_GroupName(t *testing.T) {
	tr := New()
	ctx := sqlmesh.StaticContext{SQLDialect: "duckdb"}
	model := &sqlmesh.Model{FQN: "warehouse.staging.customers"}

	// Default policy: assets group by schema.
	assert.Equal(t, "staging", tr.GroupName(ctx, model))

	// The group name is exactly the second-to-last key component.
	path := tr.AssetKeyName(model.FQN)
	assert.Equal(t, path[len(path)-2], tr.GroupName(ctx, model))
}

func TestDefault_GroupName_Override(t *testing.T) {
	tr := New(WithGroupName(func(_ sqlmesh.Context, model *sqlmesh.Model) string {
		return "custom_" + model.Name
	}))
	ctx := sqlmesh.StaticContext{}
	model := &sqlmesh.Model{FQN: "a.b.c", Name: "c"}

	assert.Equal(t, "custom_c", tr.GroupName(ctx, model))
	// Other rules are untouched by the override.
	assert.Equal(t, []string{"a", "b", "c"}, tr.AssetKeyName(model.FQN))
}

func TestDefault_KeyNameOverride_FeedsGrouping(t *testing.T) {
	// A key naming override must propagate into the default grouping rule.
	tr := New(WithKeyName(func(string) []string {
		return []string{"env", "analytics", "orders"}
	}))
	ctx := sqlmesh.StaticContext{}
	model := &sqlmesh.Model{FQN: "whatever.schema.orders"}

	assert.Equal(t, "analytics", tr.GroupName(ctx, model))
	assert.Equal(t, "sqlmesh__env_analytics_orders", tr.AssetKeyString(model.FQN))
}

func TestDefault_ContextDialect(t *testing.T) {
	tr := New()
	assert.Equal(t, "postgres", tr.ContextDialect(sqlmesh.StaticContext{SQLDialect: "postgres"}))
}

func TestDefault_Tags(t *testing.T) {
	tr := New()
	ctx := sqlmesh.StaticContext{}

	tags := tr.Tags(ctx, &sqlmesh.Model{Tags: []string{"a", "b"}})
	assert.Equal(t, map[string]string{"a": "", "b": ""}, tags)

	// Tag values are always empty, never carried from the source.
	for _, v := range tags {
		assert.Empty(t, v)
	}

	assert.Empty(t, tr.Tags(ctx, &sqlmesh.Model{}))
}

var identPattern = regexp.MustCompile(`^sqlmesh__[A-Za-z0-9_]+$`)

func TestDefault_AssetKeyString(t *testing.T) {
	tr := New()

	tests := []struct {
		name string
		fqn  string
		want string
	}{
		{"plain", "warehouse.staging.customers", "sqlmesh__warehouse_staging_customers"},
		{"quoted", `"warehouse"."staging"."customers"`, "sqlmesh__warehouse_staging_customers"},
		{"dash sanitized", "ware-house.staging.customers", "sqlmesh__ware_house_staging_customers"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tr.AssetKeyString(tt.fqn)
			assert.Equal(t, tt.want, got)
			assert.Regexp(t, identPattern, got)
		})
	}
}

func TestDefault_AssetKeyString_Deterministic(t *testing.T) {
	tr := New()
	first := tr.AssetKeyString("a.b.c")
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, tr.AssetKeyString("a.b.c"))
	}
}

func TestDefault_AssetKeyString_Injective(t *testing.T) {
	tr := New()
	fqns := []string{
		"a.b.c", "a.b.d", "a.c.c", "b.b.c",
		"catalog.schema.table", "catalog.schema.table2",
	}

	seen := make(map[string]string)
	for _, fqn := range fqns {
		key := tr.AssetKeyString(fqn)
		prev, dup := seen[key]
		require.False(t, dup, "collision: %q and %q both map to %q", prev, fqn, key)
		seen[key] = fqn
	}
}

func TestDefault_CreateAssetOut_Defaults(t *testing.T) {
	tr := New()

	out := tr.CreateAssetOut("m", "k").(*IntermediateAssetOut)
	// The factory defaults IsRequired to false, unlike the descriptor's
	// own constructor.
	assert.False(t, out.IsRequired)
	assert.Equal(t, "m", out.ModelKey)
	assert.Equal(t, "k", out.AssetKey)
	assert.Nil(t, out.Tags)
	assert.Nil(t, out.Kinds)
	assert.Empty(t, out.GroupName)
}

func TestDefault_CreateAssetOut_Options(t *testing.T) {
	tr := New()

	out := tr.CreateAssetOut("m", "a/b/c",
		WithOutTags(map[string]string{"daily": ""}),
		WithOutGroupName("staging"),
		WithOutKinds([]string{"duckdb"}),
		WithOutRequired(true),
	).(*IntermediateAssetOut)

	assert.True(t, out.IsRequired)
	assert.Equal(t, "staging", out.GroupName)
	assert.Equal(t, []string{"duckdb"}, out.Kinds)
	assert.Equal(t, map[string]string{"daily": ""}, out.Tags)
}

func TestDefault_CreateAssetDep_RoundTrip(t *testing.T) {
	tr := New()

	dep := tr.CreateAssetDep("x/y")
	assert.True(t, dep.ToAssetKey().Equal(asset.FromUserString("x/y")))
}
