// Package tableref parses SQL table references into their catalog,
// database, and table components. It accepts one-, two-, and three-part
// references with ANSI double-quoted, single-quoted, or backtick-quoted
// segments, assigning components from the right the way SQL resolvers do:
// "a.b" is database "a", table "b", with an empty catalog.
package tableref

import "strings"

// Table is a decomposed table reference. Missing leading components are
// empty strings.
type Table struct {
	Catalog string
	DB      string
	Name    string
}

// Parse splits a table reference into its components. Quoted segments may
// contain dots; quote characters are not part of the result. References
// with more than three parts fold the extra leading parts into Catalog.
func Parse(ref string) Table {
	parts := splitParts(ref)

	var t Table
	switch len(parts) {
	case 0:
		return t
	case 1:
		t.Name = parts[0]
	case 2:
		t.DB = parts[0]
		t.Name = parts[1]
	default:
		t.Catalog = strings.Join(parts[:len(parts)-2], ".")
		t.DB = parts[len(parts)-2]
		t.Name = parts[len(parts)-1]
	}
	return t
}

// String returns the dotted form, omitting empty leading components.
func (t Table) String() string {
	parts := make([]string, 0, 3)
	if t.Catalog != "" {
		parts = append(parts, t.Catalog)
	}
	if t.DB != "" {
		parts = append(parts, t.DB)
	}
	parts = append(parts, t.Name)
	return strings.Join(parts, ".")
}

// splitParts scans the reference, splitting on dots that are outside
// quoted segments and stripping the quotes themselves.
func splitParts(ref string) []string {
	var parts []string
	var sb strings.Builder

	pos := 0
	for pos < len(ref) {
		ch := ref[pos]
		switch ch {
		case '"', '\'', '`':
			// Quoted segment: consume until the matching close quote.
			// A doubled quote inside the segment is an escaped quote.
			quote := ch
			pos++
			for pos < len(ref) {
				if ref[pos] == quote {
					if pos+1 < len(ref) && ref[pos+1] == quote {
						sb.WriteByte(quote)
						pos += 2
						continue
					}
					pos++
					break
				}
				sb.WriteByte(ref[pos])
				pos++
			}
		case '.':
			parts = append(parts, sb.String())
			sb.Reset()
			pos++
		default:
			sb.WriteByte(ch)
			pos++
		}
	}
	parts = append(parts, sb.String())

	// A bare empty input yields no parts at all.
	if len(parts) == 1 && parts[0] == "" {
		return nil
	}
	return parts
}
