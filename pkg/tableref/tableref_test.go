package tableref

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		ref  string
		want Table
	}{
		{
			name: "three part",
			ref:  "warehouse.staging.customers",
			want: Table{Catalog: "warehouse", DB: "staging", Name: "customers"},
		},
		{
			name: "two part",
			ref:  "staging.customers",
			want: Table{DB: "staging", Name: "customers"},
		},
		{
			name: "one part",
			ref:  "customers",
			want: Table{Name: "customers"},
		},
		{
			name: "double quoted parts",
			ref:  `"warehouse"."staging"."customers"`,
			want: Table{Catalog: "warehouse", DB: "staging", Name: "customers"},
		},
		{
			name: "backtick quoted",
			ref:  "`warehouse`.`staging`.`customers`",
			want: Table{Catalog: "warehouse", DB: "staging", Name: "customers"},
		},
		{
			name: "quoted part containing dot",
			ref:  `warehouse."staging.v2".customers`,
			want: Table{Catalog: "warehouse", DB: "staging.v2", Name: "customers"},
		},
		{
			name: "doubled quote escape",
			ref:  `"ware""house".staging.customers`,
			want: Table{Catalog: `ware"house`, DB: "staging", Name: "customers"},
		},
		{
			name: "four part folds into catalog",
			ref:  "a.b.c.d",
			want: Table{Catalog: "a.b", DB: "c", Name: "d"},
		},
		{
			name: "empty",
			ref:  "",
			want: Table{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Parse(tt.ref))
		})
	}
}

func TestTable_String(t *testing.T) {
	tests := []struct {
		table Table
		want  string
	}{
		{Table{Catalog: "a", DB: "b", Name: "c"}, "a.b.c"},
		{Table{DB: "b", Name: "c"}, "b.c"},
		{Table{Name: "c"}, "c"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.table.String())
		})
	}
}
