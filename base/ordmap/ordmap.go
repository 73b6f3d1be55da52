// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ordmap implements an ordered map that retains the order
// in which keys were first added while also providing fast key-based
// lookup. The enum generator uses it for the tables of string forms,
// which must be emitted in declaration order.
package ordmap

import "iter"

// KeyValue represents a key-value pair.
type KeyValue[K comparable, V any] struct {
	Key   K
	Value V
}

// Map is a generic ordered map that combines the order of a slice
// and the fast key lookup of a map. The map stores an index
// into the slice that has the key and value.
type Map[K comparable, V any] struct {

	// Order is the list of keys and values in the order added.
	Order []KeyValue[K, V]

	// Map is the key to index mapping.
	Map map[K]int
}

// New returns a new ordered map.
func New[K comparable, V any]() *Map[K, V] {
	return &Map[K, V]{Map: make(map[K]int)}
}

// AddNew adds the given key and value only if the key does not exist yet.
// It returns the value already stored for the key and false if it does.
func (om *Map[K, V]) AddNew(key K, val V) (V, bool) {
	if om.Map == nil {
		om.Map = make(map[K]int)
	}
	if idx, has := om.Map[key]; has {
		return om.Order[idx].Value, false
	}
	om.Map[key] = len(om.Order)
	om.Order = append(om.Order, KeyValue[K, V]{Key: key, Value: val})
	return val, true
}

// Len returns the number of items in the map.
func (om *Map[K, V]) Len() int {
	if om == nil {
		return 0
	}
	return len(om.Order)
}

// Keys returns a slice of the keys in order.
func (om *Map[K, V]) Keys() []K {
	kl := make([]K, om.Len())
	for i, kv := range om.Order {
		kl[i] = kv.Key
	}
	return kl
}

// Values returns a slice of the values in order.
func (om *Map[K, V]) Values() []V {
	vl := make([]V, om.Len())
	for i, kv := range om.Order {
		vl[i] = kv.Value
	}
	return vl
}

// All returns an iterator over the keys and values in order.
func (om *Map[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, kv := range om.Order {
			if !yield(kv.Key, kv.Value) {
				return
			}
		}
	}
}
