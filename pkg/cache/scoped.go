package cache

// ScopedKeyer wraps a Keyer with a prefix so that entries written under
// different scopes never collide.
//
// Example usage:
//
//	// Entries from one release are not read by the next
//	keyer := NewScopedKeyer(NewDefaultKeyer(), "v0.3.0:")
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer creates a keyer with a prefix.
// The prefix is prepended to all generated keys.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{
		inner:  inner,
		prefix: prefix,
	}
}

// CompileKey generates a prefixed key for an optimised circuit.
func (k *ScopedKeyer) CompileKey(source []byte, opts CompileKeyOpts) string {
	return k.prefix + k.inner.CompileKey(source, opts)
}

// GraphKey generates a prefixed key for a rendered graph.
func (k *ScopedKeyer) GraphKey(source []byte, opts GraphKeyOpts) string {
	return k.prefix + k.inner.GraphKey(source, opts)
}
