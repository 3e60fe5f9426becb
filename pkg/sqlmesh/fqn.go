package sqlmesh

import (
	"errors"
	"fmt"
	"strings"
)

// ErrMalformedFQN is returned when a fully qualified name does not have
// exactly three dot-separated segments.
var ErrMalformedFQN = errors.New("malformed fully qualified name, expected catalog.schema.table")

// ParsedFQN is a fully qualified name split into its three components.
type ParsedFQN struct {
	Catalog  string
	Schema   string
	ViewName string
}

// ParseFQN splits a fully qualified name on "." and strips surrounding
// single and double quotes from each segment. The input must contain
// exactly three segments; anything else fails with ErrMalformedFQN.
func ParseFQN(fqn string) (ParsedFQN, error) {
	parts := strings.Split(fqn, ".")
	if len(parts) != 3 {
		return ParsedFQN{}, fmt.Errorf("%w: %q", ErrMalformedFQN, fqn)
	}

	for i, part := range parts {
		parts[i] = strings.Trim(part, `'"`)
	}

	return ParsedFQN{
		Catalog:  parts[0],
		Schema:   parts[1],
		ViewName: parts[2],
	}, nil
}

// String reassembles the parsed name into dotted form without quoting.
func (p ParsedFQN) String() string {
	return p.Catalog + "." + p.Schema + "." + p.ViewName
}
