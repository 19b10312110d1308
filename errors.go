// Package tether provides an observable array proxy: a collection value that
// presents itself as an ordered collection while delegating reads and writes
// to a swappable underlying collection (the content), and that re-broadcasts
// the content's range-change events as its own.
//
// All dispatch is synchronous and single-threaded. Values in this package are
// not safe for concurrent use; callers that share a proxy across goroutines
// must provide their own coordination.
package tether

import "errors"

// Precondition errors. These indicate caller bugs and are never recovered
// internally.
var (
	// ErrSelfReference indicates that a proxy's arranged content was set to
	// the proxy itself.
	ErrSelfReference = errors.New("arranged content cannot be the proxy itself")

	// ErrArrangedDiverged indicates a direct mutation through the proxy while
	// a transformed view is interposed between content and arranged content.
	// Mutation indices are only meaningful when the two are the same
	// collection; supply a ReplaceContent hook to route mutations yourself.
	ErrArrangedDiverged = errors.New("arranged content diverges from content")

	// ErrNilContent indicates a mutation through the proxy while no content
	// is set.
	ErrNilContent = errors.New("content is not set")

	// ErrReentrantSwap indicates a content swap issued from inside an
	// in-flight change notification. The swap bracket is not interruptible.
	ErrReentrantSwap = errors.New("reentrant content swap during change notification")

	// ErrDestroyed indicates a content swap on a proxy that has already been
	// destroyed.
	ErrDestroyed = errors.New("proxy has been destroyed")
)

// Collection errors
var (
	// ErrInvalidRange indicates that a splice range is out of bounds.
	ErrInvalidRange = errors.New("splice range out of bounds")
)
