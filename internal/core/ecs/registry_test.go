package ecs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type position struct{ X, Y float64 }
type health struct{ HP int }

func TestRegistryTypedAccess(t *testing.T) {
	r := NewRegistry()
	e := id(1)

	require.True(t, Add(r, e, position{X: 1, Y: 2}))
	require.True(t, Add(r, e, health{HP: 10}))

	assert.True(t, Has[position](r, e))
	assert.True(t, Has[health](r, e))
	assert.Equal(t, position{X: 1, Y: 2}, *Get[position](r, e))
	assert.Equal(t, 10, Get[health](r, e).HP)

	// One value per (entity, type) pair.
	assert.False(t, Add(r, e, position{X: 9}))
	assert.Equal(t, position{X: 1, Y: 2}, *Get[position](r, e))
}

func TestRegistryRemove(t *testing.T) {
	r := NewRegistry()
	e := id(1)

	require.True(t, Add(r, e, position{}))
	assert.True(t, Remove[position](r, e))
	assert.False(t, Has[position](r, e))
	assert.False(t, Remove[position](r, e))
}

func TestRegistryRemoveAll(t *testing.T) {
	r := NewRegistry()
	a, b := id(1), id(2)

	require.True(t, Add(r, a, position{X: 1}))
	require.True(t, Add(r, a, health{HP: 5}))
	require.True(t, Add(r, b, position{X: 2}))

	r.RemoveAll(a)
	assert.False(t, Has[position](r, a))
	assert.False(t, Has[health](r, a))
	assert.True(t, Has[position](r, b))
}

func TestRegistryClear(t *testing.T) {
	r := NewRegistry()
	e := id(1)
	require.True(t, Add(r, e, position{}))

	r.Clear()
	assert.False(t, Has[position](r, e))
	assert.Equal(t, 0, StoreFor[position](r).Len())
}

func TestStoreForIsStable(t *testing.T) {
	r := NewRegistry()
	s1 := StoreFor[position](r)
	s2 := StoreFor[position](r)
	assert.Same(t, s1, s2)
}

func TestEach2(t *testing.T) {
	r := NewRegistry()
	both, posOnly, hpOnly := id(1), id(2), id(3)

	require.True(t, Add(r, both, position{X: 1}))
	require.True(t, Add(r, both, health{HP: 2}))
	require.True(t, Add(r, posOnly, position{X: 3}))
	require.True(t, Add(r, hpOnly, health{HP: 4}))

	var seen []EntityID
	Each2(StoreFor[position](r), StoreFor[health](r), func(e EntityID, p *position, h *health) {
		seen = append(seen, e)
		assert.Equal(t, 1.0, p.X)
		assert.Equal(t, 2, h.HP)
	})
	assert.Equal(t, []EntityID{both}, seen)
}

func TestEach3(t *testing.T) {
	type velocity struct{ DX float64 }

	r := NewRegistry()
	all, partial := id(1), id(2)

	require.True(t, Add(r, all, position{}))
	require.True(t, Add(r, all, health{}))
	require.True(t, Add(r, all, velocity{}))
	require.True(t, Add(r, partial, position{}))
	require.True(t, Add(r, partial, velocity{}))

	count := 0
	Each3(StoreFor[position](r), StoreFor[health](r), StoreFor[velocity](r),
		func(e EntityID, _ *position, _ *health, _ *velocity) {
			assert.Equal(t, all, e)
			count++
		})
	assert.Equal(t, 1, count)
}
