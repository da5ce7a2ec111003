package cheatsheet

import (
	"bytes"
	"encoding/json"
)

// OrderedMap is a string-keyed map that remembers insertion order. The
// cheatsheet's render order (JSON keys, HTML sections) follows insertion
// order deliberately, so plain Go maps are not enough here.
type OrderedMap[V any] struct {
	keys []string
	vals map[string]V
}

// Set inserts or replaces a value. A key's position is fixed at first insert.
func (m *OrderedMap[V]) Set(key string, v V) {
	if m.vals == nil {
		m.vals = make(map[string]V)
	}
	if _, ok := m.vals[key]; !ok {
		m.keys = append(m.keys, key)
	}
	m.vals[key] = v
}

func (m *OrderedMap[V]) Get(key string) (V, bool) {
	v, ok := m.vals[key]
	return v, ok
}

// Keys returns the keys in insertion order.
func (m *OrderedMap[V]) Keys() []string {
	return m.keys
}

func (m *OrderedMap[V]) Len() int {
	return len(m.keys)
}

// MarshalJSON emits an object whose keys appear in insertion order.
func (m *OrderedMap[V]) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range m.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		kb, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		buf.Write(kb)
		buf.WriteByte(':')
		vb, err := json.Marshal(m.vals[k])
		if err != nil {
			return nil, err
		}
		buf.Write(vb)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
