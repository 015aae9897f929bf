package models

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/golang/glog"

	"github.com/microcosm-cc/stash/cache"
)

// Fetched pages are cached briefly; the point is to absorb bursts of
// requests for the same URL, not to be an offline copy.
const pageTTL = 10 * time.Second

const (
	pageCountPrefix = "count:"
	pageCachePrefix = "cache:"
)

var pageClient = &http.Client{
	Timeout: 10 * time.Second,
}

// PageCache fetches web pages through the external store: every access
// is counted, and bodies are served from cache while their entry
// lives.
type PageCache struct {
	store  cache.Store
	client *http.Client
}

// NewPageCache wraps the given store.
func NewPageCache(store cache.Store) *PageCache {
	return &PageCache{
		store:  store,
		client: pageClient,
	}
}

// DefaultPageCache returns a PageCache over the backend installed by
// cache.InitCache, or nil if the cache has not been initialised.
func DefaultPageCache() *PageCache {
	s := cache.Default()
	if s == nil {
		return nil
	}
	return NewPageCache(s)
}

// GetPage returns the body of the page at pageURL, serving it from
// cache when a fetch within the TTL already stored it. Every call
// increments the access counter for the URL, cached or not.
func (p *PageCache) GetPage(ctx context.Context, pageURL string) (string, error) {
	if _, err := p.store.Increment(ctx, pageCountPrefix+pageURL); err != nil {
		// Losing a count is not worth failing the fetch over.
		glog.Warningf("store.Increment(%s) %+v", pageCountPrefix+pageURL, err)
	}

	body, found, err := p.store.Get(ctx, pageCachePrefix+pageURL)
	if err != nil {
		glog.Warningf("store.Get(%s) %+v", pageCachePrefix+pageURL, err)
	}
	if found {
		return string(body), nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return "", err
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return "", fmt.Errorf("fetch %s: %s", pageURL, resp.Status)
	}

	body, err = io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	if err := p.store.Set(ctx, pageCachePrefix+pageURL, body, pageTTL); err != nil {
		// The page was fetched fine, a failed cache write only costs
		// the next caller a fetch.
		glog.Errorf("store.Set(%s) %+v", pageCachePrefix+pageURL, err)
	}

	return string(body), nil
}

// AccessCount returns how many times GetPage has been called for the
// given URL.
func (p *PageCache) AccessCount(ctx context.Context, pageURL string) (int64, error) {
	value, found, err := p.store.Get(ctx, pageCountPrefix+pageURL)
	if err != nil {
		return 0, err
	}
	if !found {
		return 0, nil
	}

	return strconv.ParseInt(string(value), 10, 64)
}
