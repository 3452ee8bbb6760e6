package index

// ComponentMap maps component keys to page titles, remembering insertion order.
type ComponentMap struct {
	keys   []string
	titles map[string]string
}

// NewComponentMap returns an empty map.
func NewComponentMap() *ComponentMap {
	return &ComponentMap{titles: make(map[string]string)}
}

// Add records key -> title. Re-adding a key updates the title in place.
func (m *ComponentMap) Add(key, title string) {
	if _, ok := m.titles[key]; !ok {
		m.keys = append(m.keys, key)
	}
	m.titles[key] = title
}

// Title looks up the title recorded for key.
func (m *ComponentMap) Title(key string) (string, bool) {
	t, ok := m.titles[key]
	return t, ok
}

// Keys returns keys in insertion order.
func (m *ComponentMap) Keys() []string {
	out := make([]string, len(m.keys))
	copy(out, m.keys)
	return out
}

// Len reports the number of recorded components.
func (m *ComponentMap) Len() int { return len(m.keys) }
