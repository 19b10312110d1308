package tether

import "slices"

// Unknown marks a count that a synthetic full-range notification does not
// supply: a content swap reports will(0, oldLen, Unknown) followed by
// did(0, Unknown, newLen), signalling "treat this as a total replace".
const Unknown = -1

// RangeObserver receives range-change notifications from an Observable.
// A range-change event describes a bulk splice-style mutation: removed
// elements are replaced by added elements starting at start.
type RangeObserver[T any] interface {
	// ArrayWillChange is invoked before the described mutation is applied.
	ArrayWillChange(source Sequence[T], start, removed, added int)

	// ArrayDidChange is invoked after the described mutation is applied,
	// with the same (start, removed, added) triple as the will-change.
	ArrayDidChange(source Sequence[T], start, removed, added int)
}

// AddArrayObserver registers o with target. It is a no-op when target or o
// is nil.
func AddArrayObserver[T any](target Observable[T], o RangeObserver[T]) {
	if target == nil || o == nil {
		return
	}
	target.AddArrayObserver(o)
}

// RemoveArrayObserver unregisters o from target. It is a no-op when target
// or o is nil, and idempotent on an already-unregistered pair.
func RemoveArrayObserver[T any](target Observable[T], o RangeObserver[T]) {
	if target == nil || o == nil {
		return
	}
	target.RemoveArrayObserver(o)
}

// ObjectAt reads index i of s. It reports false when s is nil or i is out
// of range.
func ObjectAt[T any](s Sequence[T], i int) (T, bool) {
	if s == nil {
		var zero T
		return zero, false
	}
	return s.ObjectAt(i)
}

// seqLen returns the length of s, or 0 when s is nil.
func seqLen[T any](s Sequence[T]) int {
	if s == nil {
		return 0
	}
	return s.Len()
}

// observerSet is the per-collection observer registry. Observers are kept in
// registration order and identified by interface identity.
type observerSet[T any] struct {
	observers []RangeObserver[T]
}

func (s *observerSet[T]) add(o RangeObserver[T]) {
	if o == nil || s.contains(o) {
		return
	}
	s.observers = append(s.observers, o)
}

func (s *observerSet[T]) remove(o RangeObserver[T]) {
	for i, existing := range s.observers {
		if existing == o {
			s.observers = slices.Delete(s.observers, i, i+1)
			return
		}
	}
}

func (s *observerSet[T]) contains(o RangeObserver[T]) bool {
	for _, existing := range s.observers {
		if existing == o {
			return true
		}
	}
	return false
}

func (s *observerSet[T]) clear() {
	s.observers = nil
}

// notifyWill dispatches a will-change to every observer, in registration
// order. Dispatch iterates a snapshot so an observer may unsubscribe itself
// (or others) mid-notification.
func (s *observerSet[T]) notifyWill(source Sequence[T], start, removed, added int) {
	for _, o := range slices.Clone(s.observers) {
		o.ArrayWillChange(source, start, removed, added)
	}
}

// notifyDid dispatches a did-change to every observer, in registration order.
func (s *observerSet[T]) notifyDid(source Sequence[T], start, removed, added int) {
	for _, o := range slices.Clone(s.observers) {
		o.ArrayDidChange(source, start, removed, added)
	}
}
