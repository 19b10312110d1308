package tether

// Sequence is a read-only, index-addressable ordered collection.
type Sequence[T any] interface {
	// ObjectAt returns the element at index i. The second return value is
	// false when i is out of range.
	ObjectAt(i int) (T, bool)

	// Len returns the number of elements.
	Len() int
}

// Observable is a Sequence whose splice-style mutations can be observed.
// Implementations must deliver, for every mutation, exactly one will-change
// notification before the mutation and exactly one matching did-change
// notification after it, both before the mutating call returns.
type Observable[T any] interface {
	Sequence[T]

	// AddArrayObserver registers o for range-change notifications. Adding an
	// observer that is already registered is a no-op.
	AddArrayObserver(o RangeObserver[T])

	// RemoveArrayObserver unregisters o. Removing an observer that is not
	// registered is a no-op.
	RemoveArrayObserver(o RangeObserver[T])
}

// Mutable is an Observable that supports bounded splice mutation.
type Mutable[T any] interface {
	Observable[T]

	// Replace splices remove elements starting at start out of the
	// collection and inserts insert in their place.
	Replace(start, remove int, insert []T) error
}
