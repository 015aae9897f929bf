package models

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
)

func TestGetPageCachesBody(t *testing.T) {
	ctx := context.Background()

	var hits int64
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt64(&hits, 1)
		w.Write([]byte("<html>hello</html>"))
	}))
	defer upstream.Close()

	pages := NewPageCache(newMemStore())

	body, err := pages.GetPage(ctx, upstream.URL)
	if err != nil {
		t.Fatalf("GetPage() = %v", err)
	}
	if body != "<html>hello</html>" {
		t.Errorf("GetPage() = %q", body)
	}

	// Second fetch within the TTL must come from cache.
	body, err = pages.GetPage(ctx, upstream.URL)
	if err != nil {
		t.Fatalf("GetPage() = %v", err)
	}
	if body != "<html>hello</html>" {
		t.Errorf("GetPage() = %q", body)
	}

	if n := atomic.LoadInt64(&hits); n != 1 {
		t.Errorf("upstream was hit %d times, should be 1", n)
	}

	count, err := pages.AccessCount(ctx, upstream.URL)
	if err != nil {
		t.Fatal(err)
	}
	if count != 2 {
		t.Errorf("AccessCount() = %d should be 2", count)
	}
}

func TestGetPageRefetchesAfterExpiry(t *testing.T) {
	ctx := context.Background()

	var hits int64
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt64(&hits, 1)
		w.Write([]byte("body"))
	}))
	defer upstream.Close()

	store := newMemStore()
	pages := NewPageCache(store)

	if _, err := pages.GetPage(ctx, upstream.URL); err != nil {
		t.Fatal(err)
	}

	store.expire(pageCachePrefix + upstream.URL)

	if _, err := pages.GetPage(ctx, upstream.URL); err != nil {
		t.Fatal(err)
	}

	if n := atomic.LoadInt64(&hits); n != 2 {
		t.Errorf("upstream was hit %d times, should be 2 after expiry", n)
	}
}

func TestGetPageUpstreamError(t *testing.T) {
	ctx := context.Background()

	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer upstream.Close()

	store := newMemStore()
	pages := NewPageCache(store)

	if _, err := pages.GetPage(ctx, upstream.URL); err == nil {
		t.Fatal("GetPage() should error on a 500 upstream")
	}

	// Failed fetches are not cached.
	if _, found, _ := store.Get(ctx, pageCachePrefix+upstream.URL); found {
		t.Error("a failed fetch was cached")
	}

	// But the access was still counted.
	count, err := pages.AccessCount(ctx, upstream.URL)
	if err != nil {
		t.Fatal(err)
	}
	if count != 1 {
		t.Errorf("AccessCount() = %d should be 1", count)
	}
}
