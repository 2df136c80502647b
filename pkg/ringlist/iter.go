package ringlist

import "iter"

// Iter is a double ended cursor over the ring. origin is the head identity
// at creation time and serves as the wraparound sentinel, cur is the next
// node to visit, nil once the cursor is exhausted. A cursor makes exactly
// one full revolution in either direction and is not restartable, take a
// new one from Iter(). Cursors are independent of each other and never
// modify the ring.
type Iter[T any] struct {
	origin *node[T]
	cur    *node[T]
	clone  func(T) T
}

// Iter returns a cursor anchored at the current head. On an empty list the
// cursor is born exhausted.
func (l *List[T]) Iter() *Iter[T] {
	return &Iter[T]{origin: l.head, cur: l.head, clone: l.clone}
}

func (it *Iter[T]) snapshot(live *node[T]) Node[T] {
	n := Node[T]{clone: it.clone}
	return n.snapshot(live)
}

// Next yields a snapshot of the current node and steps forward, false once
// one full revolution is done. The snapshot is taken before stepping, so a
// value mutated mid traversal is seen only if its node has not been
// yielded yet.
func (it *Iter[T]) Next() (Node[T], bool) {
	if it.cur == nil {
		return Node[T]{}, false
	}

	n := it.snapshot(it.cur)
	if it.cur.next == it.origin {
		it.cur = nil
	} else {
		it.cur = it.cur.next
	}
	return n, true
}

// NextBack steps backward and yields a snapshot of the node stepped to,
// false once the revolution is done. Starting from the head, the first
// yield is the tail and the last is the head.
func (it *Iter[T]) NextBack() (Node[T], bool) {
	if it.cur == nil {
		return Node[T]{}, false
	}

	back := it.cur.prev
	if back == it.origin {
		it.cur = nil
	} else {
		it.cur = back
	}
	return it.snapshot(back), true
}

// All ranges forward over the ring, head to tail, one snapshot per node.
func (l *List[T]) All() iter.Seq[Node[T]] {
	return func(yield func(Node[T]) bool) {
		it := l.Iter()
		for n, ok := it.Next(); ok; n, ok = it.Next() {
			if !yield(n) {
				break
			}
		}
	}
}

// Backward ranges backward over the ring, tail to head.
func (l *List[T]) Backward() iter.Seq[Node[T]] {
	return func(yield func(Node[T]) bool) {
		it := l.Iter()
		for n, ok := it.NextBack(); ok; n, ok = it.NextBack() {
			if !yield(n) {
				break
			}
		}
	}
}
