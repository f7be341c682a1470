package attrib

// Map is a string-keyed attribute mapping that remembers insertion order.
// The zero value is not usable; call New.
type Map struct {
	keys   []string
	values map[string]any
}

// New returns an empty attribute map.
func New() *Map {
	return &Map{values: make(map[string]any)}
}

// Set stores a value under key. New keys append to the iteration order;
// existing keys keep their position.
func (m *Map) Set(key string, value any) {
	if _, ok := m.values[key]; !ok {
		m.keys = append(m.keys, key)
	}
	m.values[key] = value
}

// Get returns the value stored under key, or nil when absent.
func (m *Map) Get(key string) any {
	return m.values[key]
}

// GetDefault returns the value stored under key, or def when absent.
func (m *Map) GetDefault(key string, def any) any {
	if value, ok := m.values[key]; ok {
		return value
	}
	return def
}

// GetString returns the value stored under key when it is a string, and
// whether it was present as one.
func (m *Map) GetString(key string) (string, bool) {
	s, ok := m.values[key].(string)
	return s, ok
}

// Has reports whether key is present.
func (m *Map) Has(key string) bool {
	_, ok := m.values[key]
	return ok
}

// Delete removes key and its iteration-order slot. Absent keys are a no-op.
func (m *Map) Delete(key string) {
	if _, ok := m.values[key]; !ok {
		return
	}
	delete(m.values, key)
	for i, k := range m.keys {
		if k == key {
			m.keys = append(m.keys[:i], m.keys[i+1:]...)
			break
		}
	}
}

// Rename moves the value under from to the key to, appending to at the end
// of the iteration order. It reports whether from was present.
func (m *Map) Rename(from, to string) bool {
	value, ok := m.values[from]
	if !ok {
		return false
	}
	m.Set(to, value)
	m.Delete(from)
	return true
}

// Clone returns a fresh map with the same keys, order, and values. Values are
// copied by reference; callers mutate the mapping, not the values.
func (m *Map) Clone() *Map {
	clone := &Map{
		keys:   make([]string, len(m.keys)),
		values: make(map[string]any, len(m.values)),
	}
	copy(clone.keys, m.keys)
	for k, v := range m.values {
		clone.values[k] = v
	}
	return clone
}

// Keys returns the keys in insertion order. The slice is a copy.
func (m *Map) Keys() []string {
	keys := make([]string, len(m.keys))
	copy(keys, m.keys)
	return keys
}

// Len returns the number of stored keys.
func (m *Map) Len() int {
	return len(m.values)
}
