package asset

// Out is the platform's output descriptor for a single asset produced by
// a multi-asset unit.
type Out struct {
	Key        Key
	Tags       map[string]string
	IsRequired bool
	GroupName  string
	Kinds      []string
	// Extra carries additional platform parameters passed through
	// untouched, e.g. metadata or descriptions.
	Extra map[string]any
}

// Capabilities describes which optional descriptor fields the target
// platform version accepts. Older platform versions reject the Kinds
// field on outputs; resolution drops it silently when unsupported.
type Capabilities struct {
	SupportsKinds bool
}

// DefaultCapabilities assumes a current platform version.
func DefaultCapabilities() Capabilities {
	return Capabilities{SupportsKinds: true}
}
