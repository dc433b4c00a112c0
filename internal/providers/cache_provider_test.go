package providers

import (
	"testing"
	"time"

	"focustimer/internal/structures"

	"github.com/stretchr/testify/assert"
)

// local mock logger to avoid import cycle with testutil
type cacheTestLogger struct{}

func (m *cacheTestLogger) Errorf(_ TypeEnum, _ string, _ ...interface{}) {}
func (m *cacheTestLogger) Warnf(_ TypeEnum, _ string, _ ...interface{})  {}
func (m *cacheTestLogger) Debugf(_ TypeEnum, _ string, _ ...interface{}) {}
func (m *cacheTestLogger) Infof(_ TypeEnum, _ string, _ ...interface{})  {}
func (m *cacheTestLogger) Fatalf(_ TypeEnum, _ string, _ ...interface{}) {}
func (m *cacheTestLogger) Close()                                        {}

func cacheConfig(enabled bool, size int, ttl time.Duration) *structures.Config {
	return &structures.Config{
		Cache: structures.CacheConfig{
			Enabled: enabled,
			Size:    size,
			TTL:     ttl,
		},
	}
}

func TestCacheProvider_DisabledReturnsNoop(t *testing.T) {
	c := NewCacheProvider(cacheConfig(false, 10, 5*time.Second), &cacheTestLogger{})
	_, ok := c.Get("any")
	assert.False(t, ok)
	assert.IsType(t, &noopCache{}, c)
}

func TestCacheProvider_ZeroSizeReturnsNoop(t *testing.T) {
	c := NewCacheProvider(cacheConfig(true, 0, 5*time.Second), &cacheTestLogger{})
	assert.IsType(t, &noopCache{}, c)
}

func TestCacheProvider_EnabledReturnsCacheProvider(t *testing.T) {
	c := NewCacheProvider(cacheConfig(true, 1, 5*time.Second), &cacheTestLogger{})
	assert.IsType(t, &CacheProvider{}, c)
	assert.Equal(t, 5, c.(*CacheProvider).ttl)
}

func TestCacheProvider_DefaultTTL(t *testing.T) {
	c := NewCacheProvider(cacheConfig(true, 1, 0), &cacheTestLogger{})
	assert.Equal(t, defaultCacheTTLSeconds, c.(*CacheProvider).ttl)
}

func TestCacheProvider_SetAndGet(t *testing.T) {
	c := NewCacheProvider(cacheConfig(true, 1, 5*time.Second), &cacheTestLogger{})

	c.Set("weekly:u1:3:2026-10-19", []byte("value1"))
	val, ok := c.Get("weekly:u1:3:2026-10-19")
	assert.True(t, ok)
	assert.Equal(t, []byte("value1"), val)
}

func TestCacheProvider_Miss(t *testing.T) {
	c := NewCacheProvider(cacheConfig(true, 1, 5*time.Second), &cacheTestLogger{})

	val, ok := c.Get("nonexistent")
	assert.False(t, ok)
	assert.Nil(t, val)
}

func TestCacheProvider_Overwrite(t *testing.T) {
	c := NewCacheProvider(cacheConfig(true, 1, 5*time.Second), &cacheTestLogger{})

	c.Set("key1", []byte("v1"))
	c.Set("key1", []byte("v2"))

	val, ok := c.Get("key1")
	assert.True(t, ok)
	assert.Equal(t, []byte("v2"), val)
}

func TestNoopCache_AlwaysMiss(t *testing.T) {
	c := &noopCache{}
	c.Set("key1", []byte("value1"))

	val, ok := c.Get("key1")
	assert.False(t, ok)
	assert.Nil(t, val)
}

func TestCacheProvider_TTLExpiry(t *testing.T) {
	c := NewCacheProvider(cacheConfig(true, 1, 1*time.Second), &cacheTestLogger{})

	c.Set("key1", []byte("value1"))
	_, ok := c.Get("key1")
	assert.True(t, ok)

	time.Sleep(2100 * time.Millisecond)

	_, ok = c.Get("key1")
	assert.False(t, ok)
}
