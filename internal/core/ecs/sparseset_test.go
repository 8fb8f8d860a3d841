package ecs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func id(index uint32) EntityID {
	return NewEntityID(index, 0)
}

func TestSparseSetAddGet(t *testing.T) {
	s := NewSparseSet[string]()

	require.True(t, s.Add(id(1), "a"))
	require.True(t, s.Add(id(2), "b"))
	require.True(t, s.Add(id(3), "c"))

	assert.Equal(t, 3, s.Len())
	assert.True(t, s.Contains(id(1)))
	assert.True(t, s.Contains(id(2)))
	assert.True(t, s.Contains(id(3)))
	assert.False(t, s.Contains(id(0)))
	assert.False(t, s.Contains(id(4)))

	assert.Equal(t, "a", *s.Get(id(1)))
	assert.Equal(t, "b", *s.Get(id(2)))
	assert.Equal(t, "c", *s.Get(id(3)))
}

func TestSparseSetDuplicateAddKeepsFirstValue(t *testing.T) {
	s := NewSparseSet[string]()

	require.True(t, s.Add(id(5), "x"))
	assert.False(t, s.Add(id(5), "y"))

	assert.Equal(t, 1, s.Len())
	assert.Equal(t, "x", *s.Get(id(5)))
}

func TestSparseSetSwapRemove(t *testing.T) {
	s := NewSparseSet[string]()
	require.True(t, s.Add(id(1), "a"))
	require.True(t, s.Add(id(2), "b"))
	require.True(t, s.Add(id(3), "c"))

	require.True(t, s.Remove(id(2)))

	// The last element moves into the removed slot.
	assert.Equal(t, []string{"a", "c"}, s.Values())
	assert.Equal(t, []EntityID{id(1), id(3)}, s.IDs())
	assert.False(t, s.Contains(id(2)))
	assert.Equal(t, "a", *s.Get(id(1)))
	assert.Equal(t, "c", *s.Get(id(3)))
}

func TestSparseSetRemoveLast(t *testing.T) {
	s := NewSparseSet[int]()
	require.True(t, s.Add(id(1), 10))
	require.True(t, s.Add(id(2), 20))

	require.True(t, s.Remove(id(2)))

	assert.Equal(t, []int{10}, s.Values())
	assert.Equal(t, []EntityID{id(1)}, s.IDs())
}

func TestSparseSetRemoveAbsent(t *testing.T) {
	s := NewSparseSet[int]()
	assert.False(t, s.Remove(id(7)))

	require.True(t, s.Add(id(1), 1))
	assert.False(t, s.Remove(id(2)))
	assert.Equal(t, 1, s.Len())
}

func TestSparseSetRoundTrip(t *testing.T) {
	s := NewSparseSet[int]()
	present := make(map[uint32]bool)

	ops := []struct {
		add   bool
		index uint32
	}{
		{true, 4}, {true, 9}, {true, 1}, {false, 9},
		{true, 9}, {true, 12}, {false, 4}, {false, 1},
		{true, 0}, {false, 12}, {false, 0}, {false, 9},
	}
	for _, op := range ops {
		if op.add {
			assert.Equal(t, !present[op.index], s.Add(id(op.index), int(op.index)))
			present[op.index] = true
		} else {
			assert.Equal(t, present[op.index], s.Remove(id(op.index)))
			present[op.index] = false
		}

		count := 0
		for idx, p := range present {
			assert.Equal(t, p, s.Contains(id(idx)), "index %d", idx)
			if p {
				count++
			}
		}
		assert.Equal(t, count, s.Len())
	}
}

func TestSparseSetGenerationAware(t *testing.T) {
	s := NewSparseSet[string]()
	stale := NewEntityID(3, 0)
	fresh := NewEntityID(3, 1)

	require.True(t, s.Add(stale, "old"))
	assert.False(t, s.Contains(fresh))

	// A fresh generation on the same index evicts the stale entry.
	require.True(t, s.Add(fresh, "new"))
	assert.False(t, s.Contains(stale))
	assert.True(t, s.Contains(fresh))
	assert.Equal(t, 1, s.Len())
	assert.Equal(t, "new", *s.Get(fresh))
}

func TestSparseSetEach(t *testing.T) {
	s := NewSparseSet[int]()
	require.True(t, s.Add(id(1), 1))
	require.True(t, s.Add(id(2), 2))
	require.True(t, s.Add(id(3), 3))

	sum := 0
	s.Each(func(_ EntityID, v *int) {
		sum += *v
		*v *= 10
	})
	assert.Equal(t, 6, sum)
	assert.Equal(t, 20, *s.Get(id(2)))
}

func TestSparseSetClear(t *testing.T) {
	s := NewSparseSet[int]()
	require.True(t, s.Add(id(1), 1))
	require.True(t, s.Add(id(2), 2))

	s.Clear()
	assert.Equal(t, 0, s.Len())
	assert.False(t, s.Contains(id(1)))
	assert.True(t, s.Add(id(1), 1))
}
