package sqlmesh

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFQN(t *testing.T) {
	tests := []struct {
		name string
		fqn  string
		want ParsedFQN
	}{
		{
			name: "plain",
			fqn:  "warehouse.staging.customers",
			want: ParsedFQN{Catalog: "warehouse", Schema: "staging", ViewName: "customers"},
		},
		{
			name: "double quoted",
			fqn:  `"warehouse"."staging"."customers"`,
			want: ParsedFQN{Catalog: "warehouse", Schema: "staging", ViewName: "customers"},
		},
		{
			name: "mixed quoting",
			fqn:  `'warehouse'."staging".customers`,
			want: ParsedFQN{Catalog: "warehouse", Schema: "staging", ViewName: "customers"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseFQN(tt.fqn)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseFQN_Malformed(t *testing.T) {
	for _, fqn := range []string{"only.two", "four.part.name.here", "bare", ""} {
		t.Run(fqn, func(t *testing.T) {
			_, err := ParseFQN(fqn)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrMalformedFQN)
		})
	}
}

func TestModelDep_ParseFQN(t *testing.T) {
	dep := ModelDep{FQN: "db.schema.orders"}
	parsed, err := dep.ParseFQN()
	require.NoError(t, err)
	assert.Equal(t, "db", parsed.Catalog)
	assert.Equal(t, "schema", parsed.Schema)
	assert.Equal(t, "orders", parsed.ViewName)
}

func TestParsedFQN_String(t *testing.T) {
	parsed, err := ParseFQN(`"a".'b'.c`)
	require.NoError(t, err)
	assert.Equal(t, "a.b.c", parsed.String())
}
