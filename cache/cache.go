package cache

import (
	"bytes"
	"context"
	"encoding/gob"
	"fmt"
	"time"

	"github.com/golang/glog"
)

// Store is the key-value capability the rest of the code consumes. The
// production implementation is a pass-through to the external store's
// official client; nothing here implements storage of its own. A miss
// is reported via the bool, never as an error.
type Store interface {
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Delete(ctx context.Context, key string) error
	Increment(ctx context.Context, key string) (int64, error)
	PushList(ctx context.Context, key string, value []byte) error
	ListRange(ctx context.Context, key string, start, stop int64) ([][]byte, error)
	Flush(ctx context.Context) error
}

var (
	store   Store
	enabled bool
)

// InitCache creates the store client and enables the cache functions
// within this package. It is the responsibility of whatever has the values for
// this function (usually main.go shortly after reading the config file) to call
// this.
func InitCache(host string, port int64, db int64) {
	store = NewRedisStore(fmt.Sprintf("%s:%d", host, port), db)
	enabled = true
}

// InitStore installs an explicit backend instead of dialling one from
// config. Passing nil disables the package-level functions.
func InitStore(s Store) {
	store = s
	enabled = s != nil
}

// Default returns the installed backend, or nil if the cache has not
// been initialised.
func Default() Store {
	if !enabled {
		return nil
	}
	return store
}

// Set puts the given value into the cache. A ttl of 0 means the value does
// not expire on our account; the external store still owns eviction.
func Set(ctx context.Context, key string, value []byte, ttl time.Duration) {
	if !enabled {
		return
	}

	if err := store.Set(ctx, key, value, ttl); err != nil {
		glog.Errorf("store.Set(%s) %+v", key, err)
	}
}

// Get gets the value for the given key, if the value is in the cache
func Get(ctx context.Context, key string) ([]byte, bool) {
	if !enabled {
		return nil, false
	}

	value, found, err := store.Get(ctx, key)
	if err != nil {
		// Cache misses are expected, but other errors are logged.
		glog.Warningf("store.Get(%s) %+v", key, err)
		return nil, false
	}

	return value, found
}

// Delete removes the value for the given key from the cache, if it is in
// the cache
func Delete(ctx context.Context, key string) {
	if !enabled {
		return
	}

	if err := store.Delete(ctx, key); err != nil {
		glog.Warningf("store.Delete(%s) %+v", key, err)
	}
}

// Increment adds one to the counter held at key and returns the new
// value. Counters share the keyspace with plain values, as the store
// holds integers as their decimal string form.
func Increment(ctx context.Context, key string) int64 {
	if !enabled {
		return 0
	}

	n, err := store.Increment(ctx, key)
	if err != nil {
		glog.Warningf("store.Increment(%s) %+v", key, err)
		return 0
	}

	return n
}

// SetGob encodes the given interface and puts it into the cache
func SetGob(ctx context.Context, key string, data interface{}, ttl time.Duration) {
	if !enabled {
		return
	}

	// Encode the data for serialisation in the store
	var buf bytes.Buffer
	enc := gob.NewEncoder(&buf)
	err := enc.Encode(&data)
	if err != nil {
		glog.Errorf("enc.Encode(&data) %+v", err)
		return
	}

	Set(ctx, key, buf.Bytes(), ttl)
}

// GetGob gets and decodes the value for the given key, if the value is in
// the cache
func GetGob(ctx context.Context, key string, dst interface{}) (interface{}, bool) {
	if !enabled {
		return nil, false
	}

	value, found := Get(ctx, key)
	if !found {
		return nil, false
	}

	var buf bytes.Buffer
	buf.Write(value)
	dec := gob.NewDecoder(&buf)
	err := dec.Decode(&dst)
	if err != nil {
		glog.Errorf("dec.Decode(&dst) %+v", err)
		return nil, false
	}

	return dst, true
}
