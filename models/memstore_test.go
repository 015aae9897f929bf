package models

import (
	"context"
	"strconv"
	"sync"
	"time"
)

// memStore is an in-memory cache.Store standing in for the external
// store during tests.
type memStore struct {
	mu     sync.Mutex
	values map[string]*memEntry
	lists  map[string][][]byte
}

type memEntry struct {
	value   []byte
	expires time.Time // zero means no expiry
}

func newMemStore() *memStore {
	return &memStore{
		values: map[string]*memEntry{},
		lists:  map[string][][]byte{},
	}
}

func (m *memStore) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	entry := &memEntry{value: append([]byte(nil), value...)}
	if ttl > 0 {
		entry.expires = time.Now().Add(ttl)
	}
	m.values[key] = entry

	return nil
}

func (m *memStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	entry, ok := m.values[key]
	if !ok {
		return nil, false, nil
	}
	if !entry.expires.IsZero() && time.Now().After(entry.expires) {
		delete(m.values, key)
		return nil, false, nil
	}

	return append([]byte(nil), entry.value...), true, nil
}

func (m *memStore) Delete(ctx context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.values, key)
	return nil
}

func (m *memStore) Increment(ctx context.Context, key string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var n int64
	if entry, ok := m.values[key]; ok {
		i, err := strconv.ParseInt(string(entry.value), 10, 64)
		if err != nil {
			return 0, err
		}
		n = i
	}
	n++
	m.values[key] = &memEntry{value: []byte(strconv.FormatInt(n, 10))}

	return n, nil
}

func (m *memStore) PushList(ctx context.Context, key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.lists[key] = append(m.lists[key], append([]byte(nil), value...))
	return nil
}

func (m *memStore) ListRange(ctx context.Context, key string, start, stop int64) ([][]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	list := m.lists[key]
	n := int64(len(list))

	if start < 0 {
		start += n
	}
	if stop < 0 {
		stop += n
	}
	if start < 0 {
		start = 0
	}
	if stop >= n {
		stop = n - 1
	}
	if start > stop || n == 0 {
		return nil, nil
	}

	out := make([][]byte, 0, stop-start+1)
	for _, v := range list[start : stop+1] {
		out = append(out, append([]byte(nil), v...))
	}
	return out, nil
}

func (m *memStore) Flush(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.values = map[string]*memEntry{}
	m.lists = map[string][][]byte{}
	return nil
}

// expire backdates the entry held at key so the next Get misses.
func (m *memStore) expire(key string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if entry, ok := m.values[key]; ok {
		entry.expires = time.Now().Add(-time.Second)
	}
}
