package ringlist

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func build(n int) *List[int] {
	l := New[int]()
	for i := 1; i <= n; i++ {
		l.Add(i)
	}
	return l
}

func TestAddKeepsRingClosed(t *testing.T) {
	l := New[int]()

	for i := 1; i <= 9; i++ {
		l.Add(i)
		require.Equal(t, i, l.Len())
		assert.Same(t, l.tail, l.head.prev)
		assert.Same(t, l.head, l.tail.next)
	}

	count := 1
	for p := l.head.next; p != l.head; p = p.next {
		assert.Same(t, p, p.next.prev)
		assert.Same(t, p, p.prev.next)
		count++
	}
	assert.Equal(t, 9, count)
}

func TestSingleElement(t *testing.T) {
	l := New[string]()
	l.Add("only")

	require.Same(t, l.head, l.tail)
	assert.Same(t, l.head, l.head.next)
	assert.Same(t, l.head, l.head.prev)

	h, err := l.Head()
	require.NoError(t, err)
	assert.Equal(t, "only", h.Value)

	isHead, err := l.IsHead(h)
	require.NoError(t, err)
	assert.True(t, isHead)
	isTail, err := l.IsTail(h)
	require.NoError(t, err)
	assert.True(t, isTail)
}

func TestHeadTail(t *testing.T) {
	l := build(9)

	h, err := l.Head()
	require.NoError(t, err)
	assert.Equal(t, 1, h.Value)

	tl, err := l.Tail()
	require.NoError(t, err)
	assert.Equal(t, 9, tl.Value)
}

func TestChainNextPrev(t *testing.T) {
	l := build(9)

	n, err := l.Head()
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		n, err = n.Next()
		require.NoError(t, err)
	}
	assert.Equal(t, 4, n.Value)

	for i := 0; i < 3; i++ {
		n, err = n.Prev()
		require.NoError(t, err)
	}
	assert.Equal(t, 1, n.Value)
}

func TestIsHeadIsTail(t *testing.T) {
	l := build(5)

	var i int
	for n := range l.All() {
		i++

		isHead, err := l.IsHead(n)
		require.NoError(t, err)
		assert.Equal(t, i == 1, isHead)

		isTail, err := l.IsTail(n)
		require.NoError(t, err)
		assert.Equal(t, i == 5, isTail)
	}
}

func TestMutate(t *testing.T) {
	l := build(3)

	h, err := l.Head()
	require.NoError(t, err)
	stale, err := l.Head()
	require.NoError(t, err)

	require.NoError(t, h.Mutate(100))

	// snapshots are point in time copies
	assert.Equal(t, 1, h.Value)
	assert.Equal(t, 1, stale.Value)

	h, err = l.Head()
	require.NoError(t, err)
	assert.Equal(t, 100, h.Value)

	// neighbors are untouched
	n, err := h.Next()
	require.NoError(t, err)
	assert.Equal(t, 2, n.Value)
}

func TestMutateDuringTraversal(t *testing.T) {
	l := build(9)

	for n := range l.All() {
		require.NoError(t, n.Mutate(4*n.Value))
		// the yielded snapshot keeps the value it was taken with
		assert.LessOrEqual(t, n.Value, 9)
	}

	want := []int{4, 8, 12, 16, 20, 24, 28, 32, 36}
	got := make([]int, 0, 9)
	for n := range l.All() {
		got = append(got, n.Value)
	}
	assert.Equal(t, want, got)
}

func TestSnapshotValueIsACopy(t *testing.T) {
	l := build(2)

	h, err := l.Head()
	require.NoError(t, err)
	h.Value = 42

	h2, err := l.Head()
	require.NoError(t, err)
	assert.Equal(t, 1, h2.Value)
}

func TestEmptyList(t *testing.T) {
	l := New[int]()

	assert.Equal(t, 0, l.Len())

	_, err := l.Head()
	assert.ErrorIs(t, err, ErrEmptyList)
	_, err = l.Tail()
	assert.ErrorIs(t, err, ErrEmptyList)

	_, err = l.IsHead(Node[int]{})
	assert.ErrorIs(t, err, ErrEmptyList)
	_, err = l.IsTail(Node[int]{})
	assert.ErrorIs(t, err, ErrEmptyList)

	_, ok := l.Iter().Next()
	assert.False(t, ok)
	_, ok = l.Iter().NextBack()
	assert.False(t, ok)
}

func TestDetachedSnapshot(t *testing.T) {
	var n Node[int]

	_, err := n.Next()
	assert.ErrorIs(t, err, ErrNoNext)
	_, err = n.Prev()
	assert.ErrorIs(t, err, ErrNoPrev)
	assert.ErrorIs(t, n.Mutate(1), ErrNoNext)

	l := build(3)
	_, err = l.IsHead(n)
	assert.ErrorIs(t, err, ErrNoNext)
	_, err = l.IsTail(n)
	assert.ErrorIs(t, err, ErrNoNext)
}

func TestWithClone(t *testing.T) {
	l := New(WithClone(func(v []int) []int {
		c := make([]int, len(v))
		copy(c, v)
		return c
	}))
	l.Add([]int{1, 2, 3})

	h, err := l.Head()
	require.NoError(t, err)
	h.Value[0] = 99

	h2, err := l.Head()
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, h2.Value)
}

func BenchmarkAdd(b *testing.B) {
	l := New[int]()
	for i := 0; i < b.N; i++ {
		l.Add(i)
	}
}

func BenchmarkHead(b *testing.B) {
	l := build(16)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = l.Head()
	}
}
