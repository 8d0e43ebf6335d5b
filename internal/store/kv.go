package store

import "sort"

// KV is the flat string-keyed storage substrate underneath the
// repository. It promises nothing beyond per-key durability: no
// transactions, no atomicity across keys, single writer. Set is the only
// operation that can fail (quota, IO); reads of missing keys simply
// report absence.
type KV interface {
	Get(key string) (string, bool)
	Set(key, value string) error
	Remove(key string)
	Clear()

	// Keys returns every stored key. Used for prefix-scoped cleanup
	// (advice eviction) and diagnostics.
	Keys() []string
}

// MemKV is an in-memory KV used by tests and as a scratch store.
// SetErr, when non-nil, makes every Set fail, simulating quota pressure.
type MemKV struct {
	data   map[string]string
	SetErr error
}

// NewMemKV creates an empty in-memory store.
func NewMemKV() *MemKV {
	return &MemKV{data: map[string]string{}}
}

func (m *MemKV) Get(key string) (string, bool) {
	v, ok := m.data[key]
	return v, ok
}

func (m *MemKV) Set(key, value string) error {
	if m.SetErr != nil {
		return m.SetErr
	}
	m.data[key] = value
	return nil
}

func (m *MemKV) Remove(key string) {
	delete(m.data, key)
}

func (m *MemKV) Clear() {
	m.data = map[string]string{}
}

func (m *MemKV) Keys() []string {
	keys := make([]string, 0, len(m.data))
	for k := range m.data {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
