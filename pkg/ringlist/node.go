package ringlist

// node is a live ring member. It is never handed to callers directly,
// they only ever see Node snapshots of it.
type node[T any] struct {
	value T
	next  *node[T]
	prev  *node[T]
}

// Node is a point-in-time value copy of a ring node: the value plus the
// identities of both neighbors at the moment the snapshot was taken.
// The zero value is a detached snapshot with no neighbors.
type Node[T any] struct {
	// Value copied from the live node. Changing it only changes this copy.
	Value T

	next  *node[T]
	prev  *node[T]
	clone func(T) T
}

func (n Node[T]) copyValue(v T) T {
	if n.clone != nil {
		return n.clone(v)
	}
	return v
}

func (n Node[T]) snapshot(live *node[T]) Node[T] {
	return Node[T]{
		Value: n.copyValue(live.value),
		next:  live.next,
		prev:  live.prev,
		clone: n.clone,
	}
}

// Next returns a fresh snapshot of the node following this one.
func (n Node[T]) Next() (Node[T], error) {
	if n.next == nil {
		return Node[T]{}, ErrNoNext
	}
	return n.snapshot(n.next), nil
}

// Prev returns a fresh snapshot of the node preceding this one.
func (n Node[T]) Prev() (Node[T], error) {
	if n.prev == nil {
		return Node[T]{}, ErrNoPrev
	}
	return n.snapshot(n.prev), nil
}

// Mutate writes value into the live node this snapshot was taken from.
// The snapshot holds no live handle, so the node is resolved by identity:
// the recorded next neighbor's prev link points back at the original node
// by ring closure. The snapshot itself keeps its old Value, other
// snapshots stay stale, a re-fetch observes the new value.
func (n Node[T]) Mutate(value T) error {
	if n.next == nil {
		return ErrNoNext
	}
	n.next.prev.value = value
	return nil
}

// resolve returns the live node identity of this snapshot, via next.prev.
func (n Node[T]) resolve() (*node[T], error) {
	if n.next == nil {
		return nil, ErrNoNext
	}
	return n.next.prev, nil
}
