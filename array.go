package tether

import "slices"

// Array is a slice-backed mutable ordered collection with observable
// mutations. It is the usual content for a Proxy, but any Mutable works.
//
// Every mutation goes through Replace, so observers always see exactly one
// will-change before the splice and one matching did-change after it.
type Array[T any] struct {
	elems     []T
	observers observerSet[T]
}

var _ Mutable[int] = (*Array[int])(nil)

// NewArray creates an Array holding the given elements.
func NewArray[T any](elems ...T) *Array[T] {
	return &Array[T]{elems: elems}
}

// Len returns the number of elements.
func (a *Array[T]) Len() int {
	return len(a.elems)
}

// ObjectAt returns the element at index i, or false when i is out of range.
func (a *Array[T]) ObjectAt(i int) (T, bool) {
	if i < 0 || i >= len(a.elems) {
		var zero T
		return zero, false
	}
	return a.elems[i], true
}

// Objects returns a copy of the elements.
func (a *Array[T]) Objects() []T {
	return slices.Clone(a.elems)
}

// AddArrayObserver registers o for range-change notifications.
func (a *Array[T]) AddArrayObserver(o RangeObserver[T]) {
	a.observers.add(o)
}

// RemoveArrayObserver unregisters o. Removing an unregistered observer is a
// no-op.
func (a *Array[T]) RemoveArrayObserver(o RangeObserver[T]) {
	a.observers.remove(o)
}

// Replace splices remove elements starting at start out of the collection
// and inserts insert in their place. The whole range [start, start+remove)
// must lie within the collection, otherwise ErrInvalidRange is returned and
// nothing is notified.
func (a *Array[T]) Replace(start, remove int, insert []T) error {
	if start < 0 || remove < 0 || start > len(a.elems) || start+remove > len(a.elems) {
		return ErrInvalidRange
	}
	a.observers.notifyWill(a, start, remove, len(insert))
	a.elems = slices.Replace(a.elems, start, start+remove, insert...)
	a.observers.notifyDid(a, start, remove, len(insert))
	return nil
}

// Append adds elems to the end of the collection.
func (a *Array[T]) Append(elems ...T) {
	// Appending is always in range.
	_ = a.Replace(len(a.elems), 0, elems)
}

// Insert places elem at index i, shifting later elements right.
func (a *Array[T]) Insert(i int, elem T) error {
	return a.Replace(i, 0, []T{elem})
}

// RemoveAt removes and returns the element at index i.
func (a *Array[T]) RemoveAt(i int) (T, error) {
	elem, ok := a.ObjectAt(i)
	if !ok {
		var zero T
		return zero, ErrInvalidRange
	}
	return elem, a.Replace(i, 1, nil)
}

// Set replaces the element at index i.
func (a *Array[T]) Set(i int, elem T) error {
	if i < 0 || i >= len(a.elems) {
		return ErrInvalidRange
	}
	return a.Replace(i, 1, []T{elem})
}
