package store

import (
	"crypto/sha1"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/go-redis/redis/v7"
	log "github.com/sirupsen/logrus"

	"github.com/campuslink/peerhelp-api/schema"
)

const (
	cacheLogPrefix  = "feed-cache"
	feedCachePrefix = "peerhelp:feed:"

	// DefaultFeedCacheTTL keeps cached feed pages for a few seconds
	// only; the feed is a live view and staleness beyond that is
	// user-visible.
	DefaultFeedCacheTTL = 15 * time.Second
)

// FeedCache is a seconds-scale read cache in front of ListOpenRequests.
// Reads may be served from it; every write path must call Invalidate.
// Cache failures are logged and treated as misses, never surfaced.
type FeedCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewFeedCache wraps a redis client as a feed cache. A zero ttl falls
// back to DefaultFeedCacheTTL.
func NewFeedCache(client *redis.Client, ttl time.Duration) *FeedCache {
	if ttl <= 0 {
		ttl = DefaultFeedCacheTTL
	}
	return &FeedCache{
		client: client,
		ttl:    ttl,
	}
}

// Key derives a deterministic cache key from a feed filter.
func (c *FeedCache) Key(filter FeedFilter) string {
	remote := "any"
	if filter.IsRemote != nil {
		remote = fmt.Sprintf("%t", *filter.IsRemote)
	}
	raw := fmt.Sprintf("u=%s;r=%s;a=%d;s=%s",
		filter.Urgency, remote, filter.MaxAgeHours,
		strings.ToLower(strings.Join(filter.Skills, ",")))
	return feedCachePrefix + fmt.Sprintf("%x", sha1.Sum([]byte(raw)))
}

// Get returns the cached open-request page for the filter, if any.
func (c *FeedCache) Get(filter FeedFilter) ([]schema.HelpRequest, bool) {
	payload, err := c.client.Get(c.Key(filter)).Bytes()
	if err != nil {
		if err != redis.Nil {
			log.WithField("prefix", cacheLogPrefix).WithError(err).Warn("cache read failed")
		}
		return nil, false
	}

	var requests []schema.HelpRequest
	if err := json.Unmarshal(payload, &requests); err != nil {
		log.WithField("prefix", cacheLogPrefix).WithError(err).Warn("dropping corrupt cache entry")
		_ = c.client.Del(c.Key(filter)).Err()
		return nil, false
	}

	return requests, true
}

// Set stores an open-request page under the filter's key.
func (c *FeedCache) Set(filter FeedFilter, requests []schema.HelpRequest) {
	payload, err := json.Marshal(requests)
	if err != nil {
		log.WithField("prefix", cacheLogPrefix).WithError(err).Warn("cache encode failed")
		return
	}

	if err := c.client.Set(c.Key(filter), payload, c.ttl).Err(); err != nil {
		log.WithField("prefix", cacheLogPrefix).WithError(err).Warn("cache write failed")
	}
}

// Invalidate flushes every cached feed page. Called on each mutation;
// the pages are cheap to rebuild and a stale page must never outlive a
// write.
func (c *FeedCache) Invalidate() {
	keys, err := c.client.Keys(feedCachePrefix + "*").Result()
	if err != nil {
		log.WithField("prefix", cacheLogPrefix).WithError(err).Warn("cache scan failed")
		return
	}
	if len(keys) == 0 {
		return
	}
	if err := c.client.Del(keys...).Err(); err != nil {
		log.WithField("prefix", cacheLogPrefix).WithError(err).Warn("cache invalidation failed")
	}
}
