// Package history keeps the bounded, most-recent-first list of searched
// words and persists it through a small string key-value store.
package history

// KV is a durable string key-value store. The file-backed implementation is
// the default; tests inject MemKV.
type KV interface {
	Get(key string) (value string, ok bool, err error)
	Set(key, value string) error
}

// MemKV is an in-memory KV for tests.
type MemKV struct {
	values map[string]string
}

func NewMemKV() *MemKV {
	return &MemKV{values: map[string]string{}}
}

func (kv *MemKV) Get(key string) (string, bool, error) {
	value, ok := kv.values[key]
	return value, ok, nil
}

func (kv *MemKV) Set(key, value string) error {
	kv.values[key] = value
	return nil
}
