package service

import (
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/rexora-cms/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCache() *ContentCache {
	return NewContentCache(config.Cache{TTL: time.Minute, Size: 16})
}

func TestNewContentCache_Disabled(t *testing.T) {
	assert.Nil(t, NewContentCache(config.Cache{TTL: 0, Size: 10}))
	assert.Nil(t, NewContentCache(config.Cache{TTL: time.Minute, Size: 0}))
}

func TestContentCache_NilIsUsable(t *testing.T) {
	var c *ContentCache

	c.set("k", 1)
	c.Invalidate("k")
	c.Invalidate()
	_, ok := c.get("k")

	assert.False(t, ok)
}

func TestCachedList_LoadsOnce(t *testing.T) {
	c := newTestCache()
	calls := 0
	load := func() ([]int, error) {
		calls++
		return []int{1, 2, 3}, nil
	}

	for range 3 {
		got, err := cachedList(c, "numbers", load)
		require.NoError(t, err)
		assert.Equal(t, []int{1, 2, 3}, got)
	}

	assert.Equal(t, 1, calls)
}

func TestCachedList_ErrorsAreNotCached(t *testing.T) {
	c := newTestCache()
	calls := 0
	load := func() ([]int, error) {
		calls++
		if calls == 1 {
			return nil, errors.New("boom")
		}
		return []int{7}, nil
	}

	_, err := cachedList(c, "numbers", load)
	require.Error(t, err)

	got, err := cachedList(c, "numbers", load)
	require.NoError(t, err)
	assert.Equal(t, []int{7}, got)
}

func TestContentCache_Invalidate(t *testing.T) {
	c := newTestCache()
	c.set("a", 1)
	c.set("b", 2)

	c.Invalidate("a")
	_, okA := c.get("a")
	_, okB := c.get("b")
	assert.False(t, okA)
	assert.True(t, okB)

	c.Invalidate()
	_, okB = c.get("b")
	assert.False(t, okB)
}
