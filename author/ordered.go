package author

// orderedMap pairs a key slice with a lookup table so iteration follows
// insertion order while membership checks stay O(1).
type orderedMap[K comparable, V any] struct {
	keys   []K
	values map[K]V
}

func newOrderedMap[K comparable, V any]() *orderedMap[K, V] {
	return &orderedMap[K, V]{values: make(map[K]V)}
}

func (m *orderedMap[K, V]) Get(k K) (V, bool) {
	v, ok := m.values[k]
	return v, ok
}

func (m *orderedMap[K, V]) Has(k K) bool {
	_, ok := m.values[k]
	return ok
}

// Set stores v under k. A new key is appended to the iteration order; an
// existing key keeps its position.
func (m *orderedMap[K, V]) Set(k K, v V) {
	if _, ok := m.values[k]; !ok {
		m.keys = append(m.keys, k)
	}
	m.values[k] = v
}

func (m *orderedMap[K, V]) Len() int {
	return len(m.keys)
}

// Keys returns the keys in insertion order. The slice must not be modified.
func (m *orderedMap[K, V]) Keys() []K {
	return m.keys
}
