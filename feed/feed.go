package feed

import (
	"github.com/campuslink/peerhelp-api/schema"
	"github.com/campuslink/peerhelp-api/score"
	"github.com/campuslink/peerhelp-api/store"
)

// Service composes the ranking engine over the store's open-request
// listing. Everything it returns carries cloaked identities only; the
// real member references never serialize outward.
type Service struct {
	store   store.PeerHelpStore
	cache   *store.FeedCache
	weights score.RankWeights
}

// NewService creates a feed service. cache may be nil to read straight
// through to the store.
func NewService(s store.PeerHelpStore, cache *store.FeedCache) *Service {
	return &Service{
		store:   s,
		cache:   cache,
		weights: score.DefaultRankWeights,
	}
}

// QueryFeed returns the open requests matching the filter, ordered for
// the given helper. Urgency, remoteness and the age window are applied
// by the store query; the free-text skill filter is OR-matched here
// with the engine's matcher. With helper skills the ordering is
// personalized, otherwise it is urgency-only.
func (s *Service) QueryFeed(filter store.FeedFilter, helperSkills []string) ([]schema.HelpRequest, error) {
	requests, hit := s.cachedList(filter)
	if !hit {
		err := store.WithRetry(func() error {
			var opErr error
			requests, opErr = s.store.ListOpenRequests(filter)
			return opErr
		})
		if err != nil {
			return nil, err
		}
		if s.cache != nil {
			s.cache.Set(filter, requests)
		}
	}

	if len(filter.Skills) > 0 {
		filtered := make([]schema.HelpRequest, 0, len(requests))
		for i := range requests {
			if score.MatchesAnySkill(&requests[i], filter.Skills) {
				filtered = append(filtered, requests[i])
			}
		}
		requests = filtered
	}

	return score.RankFeed(requests, helperSkills, s.weights), nil
}

// InvalidateCache flushes cached feed pages. Called by the API layer
// after every mutating operation so a write is never shadowed by a
// stale page.
func (s *Service) InvalidateCache() {
	if s.cache != nil {
		s.cache.Invalidate()
	}
}

func (s *Service) cachedList(filter store.FeedFilter) ([]schema.HelpRequest, bool) {
	if s.cache == nil {
		return nil, false
	}
	return s.cache.Get(filter)
}
