package types

// DefaultMap is a generic map wrapper that materializes entries for missing
// keys on first access, using a caller-supplied default function. It avoids
// key existence checks at every call site:
//
//	m := NewDefaultMap[string](func() int64 { return 0 })
//	balance := m.Get("tb1qaddr") // 0 if not yet present
type DefaultMap[K comparable, V any] struct {
	data        map[K]V  // underlying key-value store
	defaultFunc func() V // produces the value stored for missing keys
}

// NewDefaultMap creates a DefaultMap whose missing entries are initialized
// with the value returned by defaultFunc.
func NewDefaultMap[K comparable, V any](defaultFunc func() V) DefaultMap[K, V] {
	return DefaultMap[K, V]{
		data:        make(map[K]V),
		defaultFunc: defaultFunc,
	}
}

// Get returns the value for key. If the key is absent, the default function
// is invoked, its result stored under the key, and that value returned.
func (d *DefaultMap[K, V]) Get(key K) V {
	val, ok := d.data[key]
	if ok {
		return val
	}

	val = d.defaultFunc()
	d.data[key] = val
	return val
}

// Set assigns val to key, overwriting any existing entry.
func (d *DefaultMap[K, V]) Set(key K, val V) {
	d.data[key] = val
}

// Len returns the number of materialized entries.
func (d *DefaultMap[K, V]) Len() int {
	return len(d.data)
}

// ToMap exposes the underlying map for iteration or bulk reads. The returned
// map is the live internal store, not a copy.
func (d *DefaultMap[K, V]) ToMap() map[K]V {
	return d.data
}
