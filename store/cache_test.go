package store

import (
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v7"
	"github.com/stretchr/testify/assert"

	"github.com/campuslink/peerhelp-api/schema"
)

func newTestCache(t *testing.T) (*FeedCache, *miniredis.Miniredis) {
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return NewFeedCache(client, time.Minute), mr
}

func TestFeedCacheMissThenHit(t *testing.T) {
	cache, _ := newTestCache(t)

	filter := FeedFilter{Urgency: schema.UrgencyCritical}
	_, ok := cache.Get(filter)
	assert.False(t, ok)

	cache.Set(filter, []schema.HelpRequest{{ID: "r1", Title: "Need a calculus study partner"}})

	cached, ok := cache.Get(filter)
	assert.True(t, ok)
	assert.Len(t, cached, 1)
	assert.Equal(t, "r1", cached[0].ID)
}

func TestFeedCacheKeysDifferPerFilter(t *testing.T) {
	cache, _ := newTestCache(t)

	remote := true
	a := cache.Key(FeedFilter{Urgency: schema.UrgencyHigh})
	b := cache.Key(FeedFilter{Urgency: schema.UrgencyHigh, IsRemote: &remote})
	c := cache.Key(FeedFilter{Urgency: schema.UrgencyHigh, Skills: []string{"go"}})

	assert.NotEqual(t, a, b)
	assert.NotEqual(t, a, c)
	assert.NotEqual(t, b, c)
}

func TestFeedCacheInvalidateFlushesEverything(t *testing.T) {
	cache, _ := newTestCache(t)

	first := FeedFilter{}
	second := FeedFilter{Urgency: schema.UrgencyLow}
	cache.Set(first, []schema.HelpRequest{{ID: "a"}})
	cache.Set(second, []schema.HelpRequest{{ID: "b"}})

	cache.Invalidate()

	_, ok := cache.Get(first)
	assert.False(t, ok)
	_, ok = cache.Get(second)
	assert.False(t, ok)
}

func TestFeedCacheEntriesExpire(t *testing.T) {
	cache, mr := newTestCache(t)

	filter := FeedFilter{}
	cache.Set(filter, []schema.HelpRequest{{ID: "a"}})
	mr.FastForward(2 * time.Minute)

	_, ok := cache.Get(filter)
	assert.False(t, ok)
}

func TestFeedCacheDoesNotLeakRealIdentity(t *testing.T) {
	cache, mr := newTestCache(t)

	filter := FeedFilter{}
	cache.Set(filter, []schema.HelpRequest{{
		ID:           "a",
		RequesterRef: "member-secret-ref",
	}})

	payload, err := mr.Get(cache.Key(filter))
	assert.NoError(t, err)
	assert.NotContains(t, payload, "member-secret-ref")
}
