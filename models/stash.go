package models

import (
	"context"
	"fmt"
	"strconv"

	"github.com/golang/glog"
	"github.com/google/uuid"

	"github.com/microcosm-cc/stash/cache"
)

// Instrumented methods. These are the only values accepted by
// CallCount and Replay.
const (
	MethodStore    = "store"
	MethodRetrieve = "retrieve"
)

// Key namespaces for instrumentation. Value keys themselves are bare
// UUIDs so that a returned key can be handed straight back to the
// store.
const (
	callCountPrefix   = "calls:"
	callInputsFormat  = "history:%s:inputs"
	callOutputsFormat = "history:%s:outputs"
)

// Stash stores opaque values in the external store under randomly
// generated keys. It adds no storage logic of its own: values pass
// through unchanged and every error from the store's client surfaces
// verbatim.
type Stash struct {
	store cache.Store
}

// NewStash wraps the given store. The store is not flushed; call Reset
// if a clean database is wanted.
func NewStash(store cache.Store) *Stash {
	return &Stash{store: store}
}

// DefaultStash returns a Stash over the backend installed by
// cache.InitCache, or nil if the cache has not been initialised.
func DefaultStash() *Stash {
	s := cache.Default()
	if s == nil {
		return nil
	}
	return NewStash(s)
}

// Store puts value into the store under a fresh random key and returns
// the key. No validation and no retries; a failure from the client is
// returned as-is.
func (s *Stash) Store(ctx context.Context, value []byte) (string, error) {
	key := uuid.New().String()

	if err := s.store.Set(ctx, key, value, 0); err != nil {
		return "", err
	}

	s.recordCall(ctx, MethodStore, value, []byte(key))

	return key, nil
}

// Retrieve returns the value held under key. An unknown key reports
// found = false, never an error.
func (s *Stash) Retrieve(ctx context.Context, key string) ([]byte, bool, error) {
	value, found, err := s.store.Get(ctx, key)
	if err != nil {
		return nil, false, err
	}

	s.recordCall(ctx, MethodRetrieve, []byte(key), value)

	return value, found, nil
}

// RetrieveString returns the value held under key as a string.
func (s *Stash) RetrieveString(ctx context.Context, key string) (string, bool, error) {
	value, found, err := s.Retrieve(ctx, key)
	if err != nil || !found {
		return "", found, err
	}
	return string(value), true, nil
}

// RetrieveInt64 returns the value held under key parsed as a base 10
// integer.
func (s *Stash) RetrieveInt64(ctx context.Context, key string) (int64, bool, error) {
	value, found, err := s.Retrieve(ctx, key)
	if err != nil || !found {
		return 0, found, err
	}

	i, err := strconv.ParseInt(string(value), 10, 64)
	if err != nil {
		return 0, true, err
	}
	return i, true, nil
}

// RetrieveFloat64 returns the value held under key parsed as a float.
func (s *Stash) RetrieveFloat64(ctx context.Context, key string) (float64, bool, error) {
	value, found, err := s.Retrieve(ctx, key)
	if err != nil || !found {
		return 0, found, err
	}

	f, err := strconv.ParseFloat(string(value), 64)
	if err != nil {
		return 0, true, err
	}
	return f, true, nil
}

// Reset flushes the backing database. Destructive, so it is never
// called implicitly.
func (s *Stash) Reset(ctx context.Context) error {
	return s.store.Flush(ctx)
}

// CallCount returns how many times the given method has been called
// against the backing store.
func (s *Stash) CallCount(ctx context.Context, method string) (int64, error) {
	value, found, err := s.store.Get(ctx, callCountPrefix+method)
	if err != nil {
		return 0, err
	}
	if !found {
		return 0, nil
	}

	return strconv.ParseInt(string(value), 10, 64)
}

// Replay returns one line per recorded call of the given method, in
// call order, formatted as method(input) -> output.
func (s *Stash) Replay(ctx context.Context, method string) ([]string, error) {
	inputs, err := s.store.ListRange(ctx, fmt.Sprintf(callInputsFormat, method), 0, -1)
	if err != nil {
		return nil, err
	}

	outputs, err := s.store.ListRange(ctx, fmt.Sprintf(callOutputsFormat, method), 0, -1)
	if err != nil {
		return nil, err
	}

	lines := make([]string, 0, len(inputs))
	for i, input := range inputs {
		var output []byte
		if i < len(outputs) {
			output = outputs[i]
		}
		lines = append(lines, fmt.Sprintf("%s(%q) -> %q", method, input, output))
	}

	return lines, nil
}

// recordCall bumps the per-method counter and appends the input/output
// pair to the history lists. Instrumentation must never fail the call
// being recorded, so errors are only logged.
func (s *Stash) recordCall(ctx context.Context, method string, input []byte, output []byte) {
	if _, err := s.store.Increment(ctx, callCountPrefix+method); err != nil {
		glog.Warningf("store.Increment(%s) %+v", callCountPrefix+method, err)
	}

	if err := s.store.PushList(ctx, fmt.Sprintf(callInputsFormat, method), input); err != nil {
		glog.Warningf("store.PushList(%s inputs) %+v", method, err)
	}

	if err := s.store.PushList(ctx, fmt.Sprintf(callOutputsFormat, method), output); err != nil {
		glog.Warningf("store.PushList(%s outputs) %+v", method, err)
	}
}
