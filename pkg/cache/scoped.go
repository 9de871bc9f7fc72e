package cache

// ScopedKeyer wraps a Keyer with a prefix so that several deployments or
// style profiles can share one Redis instance without colliding:
//
//	keyer := NewScopedKeyer(NewDefaultKeyer(), "profile:dark:")
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

// SymbolKey generates a prefixed key for modifier artifacts.
func (k *ScopedKeyer) SymbolKey(opts SymbolKeyOpts) string {
	return k.prefix + k.inner.SymbolKey(opts)
}
