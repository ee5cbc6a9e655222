package service

import (
	"github.com/MKhiriev/rexora-cms/internal/config"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Cache keys of the public reads.
const (
	cacheKeySettings = "site_settings"
	cacheKeyProjects = "projects"
	cacheKeyReviews  = "reviews"
)

var (
	cacheHitsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "rexora_cache_hits_total",
		Help: "Number of public reads served from the cache.",
	}, []string{"key"})
	cacheMissesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "rexora_cache_misses_total",
		Help: "Number of public reads that went to the database.",
	}, []string{"key"})
)

// ContentCache keeps the public reads (settings, project list, reviews) for
// a short TTL. Every write through a service invalidates the affected key.
// A nil *ContentCache is valid and caches nothing.
type ContentCache struct {
	lru *expirable.LRU[string, any]
}

// NewContentCache returns nil when cfg.Size or cfg.TTL is not positive.
func NewContentCache(cfg config.Cache) *ContentCache {
	if cfg.Size <= 0 || cfg.TTL <= 0 {
		return nil
	}
	return &ContentCache{lru: expirable.NewLRU[string, any](cfg.Size, nil, cfg.TTL)}
}

func (c *ContentCache) get(key string) (any, bool) {
	if c == nil {
		return nil, false
	}
	v, ok := c.lru.Get(key)
	if ok {
		cacheHitsTotal.WithLabelValues(key).Inc()
		return v, true
	}
	cacheMissesTotal.WithLabelValues(key).Inc()
	return nil, false
}

func (c *ContentCache) set(key string, v any) {
	if c == nil {
		return
	}
	c.lru.Add(key, v)
}

// Invalidate drops keys, or everything when no key is given.
func (c *ContentCache) Invalidate(keys ...string) {
	if c == nil {
		return
	}
	if len(keys) == 0 {
		c.lru.Purge()
		return
	}
	for _, key := range keys {
		c.lru.Remove(key)
	}
}

// cachedList serves a slice from c, loading it on a miss. Callers always get
// their own copy.
func cachedList[T any](c *ContentCache, key string, load func() ([]T, error)) ([]T, error) {
	if v, ok := c.get(key); ok {
		if list, ok := v.([]T); ok {
			return append([]T(nil), list...), nil
		}
	}

	list, err := load()
	if err != nil {
		return nil, err
	}

	c.set(key, append([]T(nil), list...))
	return list, nil
}
