package providers

import (
	"strings"

	"focustimer/internal/structures"
)

// MetricsCacheProvider counts stats cache lookups per view. Keys start with
// the view name followed by ':'.
type MetricsCacheProvider struct {
	inner   CacheProviderInterface
	metrics MetricsProviderInterface
}

func cacheKeyView(key string) string {
	view, _, found := strings.Cut(key, ":")
	if !found || view == "" {
		return "other"
	}
	return view
}

func (c *MetricsCacheProvider) Get(key string) ([]byte, bool) {
	val, ok := c.inner.Get(key)
	view := cacheKeyView(key)
	if !ok {
		c.metrics.IncCacheMisses(view)
		return nil, false
	}
	c.metrics.IncCacheHits(view)
	return val, true
}

func (c *MetricsCacheProvider) Set(key string, value []byte) {
	c.inner.Set(key, value)
}

// NewInstrumentedCacheProvider returns the plain cache when caching is off, so
// a disabled cache never shows up as a stream of misses.
func NewInstrumentedCacheProvider(conf *structures.Config, logger Logger, metrics MetricsProviderInterface) CacheProviderInterface {
	cache := NewCacheProvider(conf, logger)
	if _, disabled := cache.(*noopCache); disabled {
		return cache
	}
	return &MetricsCacheProvider{inner: cache, metrics: metrics}
}
