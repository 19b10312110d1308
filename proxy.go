package tether

// Proxy presents itself as an ordered collection while delegating reads and
// writes to a swappable underlying collection, the content. Observers of the
// proxy see the content's mutations re-broadcast as the proxy's own, and see
// a content swap as a single full-range replace.
//
// The proxy exposes the arranged content: a view derived from the content by
// the Arrange hook, by default the content itself. The proxy keeps exactly
// one change subscription, always against the current arranged content, and
// rewires it whenever the arranged reference changes.
type Proxy[T any] struct {
	content  Mutable[T]
	arranged Observable[T]
	hooks    Hooks[T]

	observers observerSet[T]
	fwd       *proxyForwarder[T]

	// busy counts in-flight swap brackets and forwarded will/did pairs;
	// SetContent fails while it is nonzero rather than interleave
	// notifications. A forwarded pair holds the guard from the start of the
	// will-forward (bookkeeping hook included) to the end of the did-forward,
	// so the bracket cannot be broken between its halves.
	busy      int
	destroyed bool
}

// A proxy is itself a Mutable, so proxies can be chained as content.
var _ Mutable[int] = (*Proxy[int])(nil)

// NewProxy creates a proxy over content, which may be nil, and binds the
// change subscription to the derived arranged content. At most one Hooks
// value is used; omit it for a plain pass-through proxy.
func NewProxy[T any](content Mutable[T], hooks ...Hooks[T]) (*Proxy[T], error) {
	p := &Proxy[T]{}
	if len(hooks) > 0 {
		p.hooks = hooks[0]
	}
	p.fwd = &proxyForwarder[T]{p: p}

	arranged := p.arrange(content)
	if err := p.validateArranged(arranged); err != nil {
		return nil, err
	}
	p.content = content
	p.arranged = arranged
	AddArrayObserver(arranged, p.fwd)
	return p, nil
}

// Content returns the underlying collection, or nil.
func (p *Proxy[T]) Content() Mutable[T] {
	return p.content
}

// ArrangedContent returns the view the proxy exposes, or nil.
func (p *Proxy[T]) ArrangedContent() Observable[T] {
	return p.arranged
}

// Destroyed reports whether Destroy has been called.
func (p *Proxy[T]) Destroyed() bool {
	return p.destroyed
}

// Len returns the arranged content's length, or 0 when it is nil. The value
// is read from the live view on every call, never cached.
func (p *Proxy[T]) Len() int {
	return seqLen[T](p.arranged)
}

// ObjectAt returns the element the proxy exposes at index i. It reports
// false when content is nil or i is out of range.
func (p *Proxy[T]) ObjectAt(i int) (T, bool) {
	if p.content == nil {
		var zero T
		return zero, false
	}
	if p.hooks.ObjectAtContent != nil {
		return p.hooks.ObjectAtContent(p, i)
	}
	return ObjectAt[T](p.arranged, i)
}

// Replace splices remove elements starting at start out of the content and
// inserts insert in their place.
//
// Without a ReplaceContent hook this is only permitted while the arranged
// content is the content itself: under a transforming view the indices refer
// to the view's coordinate space and cannot be applied to raw storage, so
// Replace fails with ErrArrangedDiverged.
func (p *Proxy[T]) Replace(start, remove int, insert []T) error {
	if p.content == nil {
		return ErrNilContent
	}
	if p.hooks.ReplaceContent != nil {
		return p.hooks.ReplaceContent(p, start, remove, insert)
	}
	if p.arranged != Observable[T](p.content) {
		return ErrArrangedDiverged
	}
	return p.content.Replace(start, remove, insert)
}

// AddArrayObserver registers o for the proxy's own range-change
// notifications. It is a no-op on a destroyed proxy.
func (p *Proxy[T]) AddArrayObserver(o RangeObserver[T]) {
	if p.destroyed {
		return
	}
	p.observers.add(o)
}

// RemoveArrayObserver unregisters o.
func (p *Proxy[T]) RemoveArrayObserver(o RangeObserver[T]) {
	p.observers.remove(o)
}

// SetContent swaps the underlying collection. It is the only mutation path
// for the content reference.
//
// When the derived arranged reference changes, the swap is bracketed so the
// proxy's observers see it as a full-range replace: a synthetic
// will-change(0, oldLen, Unknown) fires and the old subscription is
// detached, the references change, then the new subscription is attached and
// a synthetic did-change(0, Unknown, newLen) fires. The bracket is not
// interruptible; a reentrant SetContent fails with ErrReentrantSwap.
func (p *Proxy[T]) SetContent(content Mutable[T]) error {
	if p.destroyed {
		return ErrDestroyed
	}
	if p.busy != 0 {
		return ErrReentrantSwap
	}

	arranged := p.arrange(content)
	if err := p.validateArranged(arranged); err != nil {
		return err
	}
	if arranged == p.arranged {
		// Same view, nothing to rewire or announce.
		p.content = content
		return nil
	}

	p.busy++
	defer func() { p.busy-- }()

	old := p.arranged
	p.observers.notifyWill(p, 0, seqLen[T](old), Unknown)
	RemoveArrayObserver(old, p.fwd)

	p.content = content
	p.arranged = arranged

	AddArrayObserver(arranged, p.fwd)
	p.observers.notifyDid(p, 0, Unknown, seqLen[T](arranged))
	return nil
}

// Destroy detaches the change subscription and renders the proxy inert:
// reads degrade as with nil content and observer registration becomes a
// no-op. Destroy is idempotent.
func (p *Proxy[T]) Destroy() {
	if p.destroyed {
		return
	}
	RemoveArrayObserver(p.arranged, p.fwd)
	p.content = nil
	p.arranged = nil
	p.observers.clear()
	p.destroyed = true
}

// arrange derives the arranged content for the given content.
func (p *Proxy[T]) arrange(content Mutable[T]) Observable[T] {
	if p.hooks.Arrange != nil {
		return p.hooks.Arrange(content)
	}
	return Observable[T](content)
}

// validateArranged rejects an arranged content the proxy must not subscribe
// to. A destroyed *Proxy is tolerated: its registry is inert, and failing
// here would turn cascading destruction of chained proxies into an error.
func (p *Proxy[T]) validateArranged(arranged Observable[T]) error {
	if other, ok := arranged.(*Proxy[T]); ok && other == p {
		return ErrSelfReference
	}
	return nil
}

// arrangedWillChange receives a will-change from the arranged content and
// re-emits the identical triple as the proxy's own, reporting the proxy as
// source. It takes the reentrancy guard before anything else runs and holds
// it until the matching did-change has been forwarded.
func (p *Proxy[T]) arrangedWillChange(start, removed, added int) {
	p.busy++
	if p.hooks.OnArrangedWillChange != nil {
		p.hooks.OnArrangedWillChange(p, start, removed, added)
	}
	p.observers.notifyWill(p, start, removed, added)
}

// arrangedDidChange receives a did-change from the arranged content and
// re-emits the identical triple as the proxy's own, then releases the guard
// taken by the matching will-change.
func (p *Proxy[T]) arrangedDidChange(start, removed, added int) {
	defer func() { p.busy-- }()
	p.observers.notifyDid(p, start, removed, added)
	if p.hooks.OnArrangedDidChange != nil {
		p.hooks.OnArrangedDidChange(p, start, removed, added)
	}
}

// proxyForwarder is the proxy's subscription against its arranged content.
// A separate type keeps the RangeObserver methods off the proxy's public
// surface; the triple is forwarded unmodified and the original source is
// discarded.
type proxyForwarder[T any] struct {
	p *Proxy[T]
}

func (f *proxyForwarder[T]) ArrayWillChange(_ Sequence[T], start, removed, added int) {
	f.p.arrangedWillChange(start, removed, added)
}

func (f *proxyForwarder[T]) ArrayDidChange(_ Sequence[T], start, removed, added int) {
	f.p.arrangedDidChange(start, removed, added)
}
