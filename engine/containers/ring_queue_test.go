package containers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRingQueueFIFO(t *testing.T) {
	q := NewRingQueue[int](3)
	require.NoError(t, q.Enqueue(1))
	require.NoError(t, q.Enqueue(2))
	require.NoError(t, q.Enqueue(3))
	assert.ErrorIs(t, q.Enqueue(4), ErrQueueFull)

	v, err := q.Dequeue()
	require.NoError(t, err)
	assert.Equal(t, 1, v)

	assert.Equal(t, 2, q.Len())
	v, err = q.Dequeue()
	require.NoError(t, err)
	assert.Equal(t, 2, v)
}

func TestRingQueuePopIsLIFO(t *testing.T) {
	q := NewRingQueue[string](2)
	q.Push("a")
	q.Push("b")

	back, err := q.Back()
	require.NoError(t, err)
	assert.Equal(t, "b", back)

	v, err := q.Pop()
	require.NoError(t, err)
	assert.Equal(t, "b", v)
	v, err = q.Pop()
	require.NoError(t, err)
	assert.Equal(t, "a", v)

	_, err = q.Pop()
	assert.ErrorIs(t, err, ErrQueueEmpty)
}

func TestRingQueuePushEvictsOldest(t *testing.T) {
	q := NewRingQueue[int](2)
	_, evicted := q.Push(1)
	assert.False(t, evicted)
	q.Push(2)

	dropped, evicted := q.Push(3)
	assert.True(t, evicted)
	assert.Equal(t, 1, dropped)

	front, err := q.Dequeue()
	require.NoError(t, err)
	assert.Equal(t, 2, front)
	back, err := q.Back()
	require.NoError(t, err)
	assert.Equal(t, 3, back)
}
