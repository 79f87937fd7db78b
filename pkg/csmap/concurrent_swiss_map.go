package csmap

import (
	csmap "github.com/mhmtszr/concurrent-swiss-map"
)

type ConcurrentSwissMap[K comparable, V any] struct {
	m *csmap.CsMap[K, V]
}

func Create[K comparable, V any](size uint64) *ConcurrentSwissMap[K, V] {
	return &ConcurrentSwissMap[K, V]{
		m: csmap.Create[K, V](csmap.WithSize[K, V](size)),
	}
}

func (c *ConcurrentSwissMap[K, V]) Store(key K, value V) {
	c.m.Store(key, value)
}

func (c *ConcurrentSwissMap[K, V]) Load(key K) (V, bool) {
	return c.m.Load(key)
}
