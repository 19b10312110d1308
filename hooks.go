package tether

// Hooks customizes a Proxy. Every field is optional; the zero value gives a
// plain pass-through proxy whose arranged content is the content itself.
//
// The Arrange hook is how transformed views are built: it derives the
// collection the proxy exposes from the raw content. A proxy with a
// transforming Arrange hook rejects direct Replace calls unless a
// ReplaceContent hook routes view indices back to content indices.
type Hooks[T any] struct {
	// ObjectAtContent retrieves the element the proxy exposes at index i.
	// The default reads index i of the arranged content. It is only invoked
	// while content is non-nil.
	ObjectAtContent func(p *Proxy[T], i int) (T, bool)

	// ReplaceContent performs the proxy's splice primitive. The default
	// splices content directly. It is only invoked while content is non-nil.
	ReplaceContent func(p *Proxy[T], start, remove int, insert []T) error

	// Arrange derives the arranged content from the content. The default
	// returns the content unchanged, so reference-identity comparison
	// between the two stays meaningful. Arrange must not return the proxy
	// itself.
	Arrange func(content Mutable[T]) Observable[T]

	// OnArrangedWillChange runs extra bookkeeping for a range-change of the
	// arranged content, before the will-change is forwarded to the proxy's
	// observers.
	OnArrangedWillChange func(p *Proxy[T], start, removed, added int)

	// OnArrangedDidChange runs extra bookkeeping for a range-change of the
	// arranged content, after the did-change is forwarded to the proxy's
	// observers.
	OnArrangedDidChange func(p *Proxy[T], start, removed, added int)
}
