// Package ringlist is a circular doubly linked list. The ring is always
// closed: the tail links forward to the head and the head links backward
// to the tail, a single element links to itself. Callers never hold live
// node handles, every access returns a detached Node snapshot and writes
// go through neighbor identity resolution (see Node.Mutate).
//
// It is not thread safe.
package ringlist

import "errors"

var (
	ErrEmptyList = errors.New("ringlist: list is not built")
	ErrNoNext    = errors.New("ringlist: node has no next neighbor")
	ErrNoPrev    = errors.New("ringlist: node has no prev neighbor")
)

type List[T any] struct {
	head  *node[T]
	tail  *node[T]
	clone func(T) T
	len   int
}

type Option[T any] func(*List[T])

// WithClone installs a value duplication hook applied whenever a snapshot
// copies a value out of the ring. Without it snapshots copy by plain
// assignment, which is enough for value types but shares state for
// pointer-ish element types.
func WithClone[T any](fn func(T) T) Option[T] {
	return func(l *List[T]) {
		l.clone = fn
	}
}

// New create new empty List
func New[T any](opts ...Option[T]) *List[T] {
	l := &List[T]{}
	for _, o := range opts {
		o(l)
	}
	return l
}

func (l *List[T]) Len() int { return l.len }

// Add appends value at the tail of the ring. The first node becomes both
// head and tail, self-linked in both directions. Later nodes are linked in
// between the old tail and the head, head stays unchanged.
func (l *List[T]) Add(value T) {
	n := &node[T]{value: value}

	if l.head == nil {
		n.next = n
		n.prev = n
		l.head = n
		l.tail = n
	} else {
		n.prev = l.tail
		n.next = l.head
		l.head.prev = n
		l.tail.next = n
		l.tail = n
	}

	l.len++
}

func (l *List[T]) snapshot(live *node[T]) Node[T] {
	n := Node[T]{clone: l.clone}
	return n.snapshot(live)
}

// Head returns a snapshot of the head node.
func (l *List[T]) Head() (Node[T], error) {
	if l.head == nil {
		return Node[T]{}, ErrEmptyList
	}
	return l.snapshot(l.head), nil
}

// Tail returns a snapshot of the tail node.
func (l *List[T]) Tail() (Node[T], error) {
	if l.tail == nil {
		return Node[T]{}, ErrEmptyList
	}
	return l.snapshot(l.tail), nil
}

// IsHead reports whether n was taken from the current head node. The
// snapshot carries no direct reference to its node, so the identity is
// resolved the same way Mutate does, through the next neighbor's prev link.
func (l *List[T]) IsHead(n Node[T]) (bool, error) {
	if l.head == nil {
		return false, ErrEmptyList
	}
	live, err := n.resolve()
	if err != nil {
		return false, err
	}
	return live == l.head, nil
}

// IsTail reports whether n was taken from the current tail node.
func (l *List[T]) IsTail(n Node[T]) (bool, error) {
	if l.tail == nil {
		return false, ErrEmptyList
	}
	live, err := n.resolve()
	if err != nil {
		return false, err
	}
	return live == l.tail, nil
}
