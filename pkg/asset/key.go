// Package asset defines the orchestration platform's asset-graph shapes
// this bridge produces: hierarchical asset keys, output descriptors, and
// the platform capability flags that gate optional descriptor fields.
package asset

import "strings"

// UserStringSeparator separates path components in the user-facing string
// form of an asset key.
const UserStringSeparator = "/"

// Key is a hierarchical asset identifier, ordered from the outermost
// grouping component to the asset name.
type Key []string

// NewKey builds a key from its path components.
func NewKey(parts ...string) Key {
	return Key(parts)
}

// FromUserString parses a user-supplied key string, splitting on "/".
func FromUserString(s string) Key {
	return Key(strings.Split(s, UserStringSeparator))
}

// String returns the user string form of the key.
func (k Key) String() string {
	return strings.Join(k, UserStringSeparator)
}

// Equal reports whether two keys have identical paths.
func (k Key) Equal(other Key) bool {
	if len(k) != len(other) {
		return false
	}
	for i := range k {
		if k[i] != other[i] {
			return false
		}
	}
	return true
}
